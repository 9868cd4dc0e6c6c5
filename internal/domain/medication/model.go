package medication

import (
	"time"

	"github.com/medtrack/medtrack/pkg/supply"
)

// Medication is a tracked supply of tablets belonging to one patient.
// Current is the tablet count on hand; Frequency is tablets consumed per day
// and may be fractional (0.5 for half a tablet daily). Added is stamped by
// the store at creation and immutable afterwards, as are all fields other
// than Current.
type Medication struct {
	ID        int64     `json:"id"`
	PatientID int64     `json:"patient_id"`
	Name      string    `json:"name"`
	Current   int       `json:"current"`
	Frequency float64   `json:"frequency"`
	Added     time.Time `json:"added"`
}

// Supply computes the reorder report for this medication's current figures.
func (m *Medication) Supply() supply.Report {
	return supply.Compute(m.Current, m.Frequency)
}
