package medication

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a medication id does not resolve.
var ErrNotFound = errors.New("medication not found")

type Repository interface {
	CreateMedication(ctx context.Context, m *Medication) error
	GetMedication(ctx context.Context, id int64) (*Medication, error)
	ListMedicationsByPatient(ctx context.Context, patientID int64) ([]*Medication, error)
	// UpdateMedicationCurrent replaces the current tablet count and nothing
	// else; name, frequency, owner and the creation timestamp are immutable.
	UpdateMedicationCurrent(ctx context.Context, id int64, current int) (*Medication, error)
	DeleteMedication(ctx context.Context, id int64) error
}
