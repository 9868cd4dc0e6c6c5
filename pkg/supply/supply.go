// Package supply derives reorder-urgency information from a medication's
// current tablet count and its daily dosing frequency. The computation is
// pure and total: every non-negative input pair has a defined result, and a
// frequency of zero is an explicit "no depletion" case, not an error.
package supply

import (
	"math"
	"time"
)

// Status classifies how urgently a supply needs reordering. The constants
// form a total severity order: Neutral < Good < Warning < Urgent.
type Status int

const (
	// Neutral means there is nothing to track (no medications).
	Neutral Status = iota
	// Good means the supply lasts more than a week.
	Good
	// Warning means the supply runs out within a week.
	Warning
	// Urgent means the supply runs out within three days.
	Urgent
)

func (s Status) String() string {
	switch s {
	case Neutral:
		return "neutral"
	case Good:
		return "good"
	case Warning:
		return "warning"
	case Urgent:
		return "urgent"
	}
	return "unknown"
}

// MarshalText makes statuses render as their lowercase names in JSON.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Label returns the fixed human-readable label for a status.
func (s Status) Label() string {
	switch s {
	case Neutral:
		return "no medications tracked"
	case Good:
		return "sufficient"
	case Warning:
		return "reorder soon"
	case Urgent:
		return "reorder urgently"
	}
	return ""
}

// Report is the computed supply state of a single medication.
type Report struct {
	DaysLeft float64
	Status   Status
}

// Compute derives days of supply remaining and its urgency classification.
// current is the tablet count on hand, frequency the tablets consumed per
// day (fractional doses such as 0.5 are valid). A zero frequency means the
// supply never depletes: DaysLeft is +Inf and the status is Good.
//
// Thresholds are inclusive on the lower classification: exactly 3 days left
// is Urgent, exactly 7 is Warning.
func Compute(current int, frequency float64) Report {
	if frequency == 0 {
		return Report{DaysLeft: math.Inf(1), Status: Good}
	}

	daysLeft := float64(current) / frequency

	status := Good
	switch {
	case daysLeft <= 3:
		status = Urgent
	case daysLeft <= 7:
		status = Warning
	}

	return Report{DaysLeft: daysLeft, Status: status}
}

// Depleted reports whether the remaining supply rounds down to zero days.
func (r Report) Depleted() bool {
	return !math.IsInf(r.DaysLeft, 1) && math.Floor(r.DaysLeft) == 0
}

// DisplayStatus returns the status name for presentation, substituting the
// "empty" alias when the supply rounds to zero days. The alias is a display
// overlay only and never feeds back into aggregation.
func (r Report) DisplayStatus() string {
	if r.Depleted() {
		return "empty"
	}
	return r.Status.String()
}

// ReorderDate returns the advisory date by which the supply should be
// reordered: now plus the whole days of supply remaining. ok is false when
// the supply never depletes.
func ReorderDate(daysLeft float64, now time.Time) (date time.Time, ok bool) {
	if math.IsInf(daysLeft, 1) {
		return time.Time{}, false
	}
	return now.AddDate(0, 0, int(math.Floor(daysLeft))), true
}

// Summary is the patient-level roll-up of per-medication reports.
type Summary struct {
	Status   Status
	DaysLeft float64
	Label    string
}

// Aggregate folds per-medication reports into one patient-level summary,
// taking the maximum severity and the minimum days remaining. An empty input
// yields Neutral, which is distinct from Good: a patient with no medications
// has nothing to track rather than a healthy supply.
func Aggregate(reports []Report) Summary {
	if len(reports) == 0 {
		return Summary{Status: Neutral, DaysLeft: math.Inf(1), Label: Neutral.Label()}
	}

	worst := Good
	minDays := math.Inf(1)
	for _, r := range reports {
		if r.Status > worst {
			worst = r.Status
		}
		if r.DaysLeft < minDays {
			minDays = r.DaysLeft
		}
	}

	return Summary{Status: worst, DaysLeft: minDays, Label: worst.Label()}
}
