package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a patient id does not resolve. Absence is an
// expected outcome, not a defect; callers branch on it with errors.Is.
var ErrNotFound = errors.New("patient not found")

type Repository interface {
	CreatePatient(ctx context.Context, p *Patient) error
	GetPatient(ctx context.Context, id int64) (*Patient, error)
	ListPatients(ctx context.Context) ([]*Patient, error)
	UpdatePatient(ctx context.Context, p *Patient) error
	DeletePatient(ctx context.Context, id int64) error
}
