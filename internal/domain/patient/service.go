package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/medtrack/medtrack/internal/domain/medication"
	"github.com/medtrack/medtrack/pkg/supply"
)

// MedicationSource provides the per-medication figures that drive the
// patient-level supply summary.
type MedicationSource interface {
	ListMedicationsByPatient(ctx context.Context, patientID int64) ([]*medication.Medication, error)
}

type Service struct {
	patients Repository
	meds     MedicationSource
}

func NewService(patients Repository, meds MedicationSource) *Service {
	return &Service{patients: patients, meds: meds}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(p.Room) == "" {
		return fmt.Errorf("room is required")
	}
	return s.patients.CreatePatient(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.GetPatient(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.patients.ListPatients(ctx)
}

// UpdatePatient replaces the mutable fields (name and room) of an existing
// patient.
func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(p.Room) == "" {
		return fmt.Errorf("room is required")
	}
	return s.patients.UpdatePatient(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	return s.patients.DeletePatient(ctx, id)
}

// Supply computes the patient-level reorder summary across all medications
// the patient owns. Nothing derived is stored; the summary is recomputed on
// every read.
func (s *Service) Supply(ctx context.Context, id int64) (supply.Summary, int, error) {
	if _, err := s.patients.GetPatient(ctx, id); err != nil {
		return supply.Summary{}, 0, err
	}

	meds, err := s.meds.ListMedicationsByPatient(ctx, id)
	if err != nil {
		return supply.Summary{}, 0, err
	}

	reports := make([]supply.Report, 0, len(meds))
	for _, m := range meds {
		reports = append(reports, supply.Compute(m.Current, m.Frequency))
	}
	return supply.Aggregate(reports), len(meds), nil
}
