package medication

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrPatientNotFound is returned when a medication references a patient id
// that does not resolve. The check runs before anything is stored so a
// failed creation can never leave an orphaned medication behind.
var ErrPatientNotFound = errors.New("patient not found")

// PatientChecker reports whether a patient id resolves to a live patient.
// The store satisfies it; the indirection keeps this package from importing
// the patient package.
type PatientChecker interface {
	PatientExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	meds     Repository
	patients PatientChecker
}

func NewService(meds Repository, patients PatientChecker) *Service {
	return &Service{meds: meds, patients: patients}
}

// CreateMedication validates the fields and the patient reference, then
// stores the medication. A zero tablet count is legal: a depleted supply can
// be recorded at creation time.
func (s *Service) CreateMedication(ctx context.Context, m *Medication) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if m.PatientID <= 0 {
		return fmt.Errorf("patient_id is required")
	}
	if m.Current < 0 {
		return fmt.Errorf("current must not be negative")
	}
	if m.Frequency < 0 {
		return fmt.Errorf("frequency must not be negative")
	}

	exists, err := s.patients.PatientExists(ctx, m.PatientID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPatientNotFound
	}

	return s.meds.CreateMedication(ctx, m)
}

func (s *Service) GetMedication(ctx context.Context, id int64) (*Medication, error) {
	return s.meds.GetMedication(ctx, id)
}

// ListByPatient returns the patient's medications in insertion order. The
// patient must exist; listing for an unknown patient is ErrPatientNotFound
// rather than an empty result.
func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Medication, error) {
	exists, err := s.patients.PatientExists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPatientNotFound
	}
	return s.meds.ListMedicationsByPatient(ctx, patientID)
}

// Refill replaces the current tablet count. The new count must be a positive
// integer; every other field stays untouched.
func (s *Service) Refill(ctx context.Context, id int64, current int) (*Medication, error) {
	if current <= 0 {
		return nil, fmt.Errorf("current must be a positive integer")
	}
	return s.meds.UpdateMedicationCurrent(ctx, id, current)
}

func (s *Service) DeleteMedication(ctx context.Context, id int64) error {
	return s.meds.DeleteMedication(ctx, id)
}
