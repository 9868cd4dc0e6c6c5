package sandbox

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medtrack/medtrack/internal/domain/medication"
	"github.com/medtrack/medtrack/internal/domain/patient"
	"github.com/medtrack/medtrack/internal/domain/user"
	"github.com/medtrack/medtrack/internal/store"
	"github.com/medtrack/medtrack/pkg/supply"
)

type staticIssuer struct{}

func (staticIssuer) Issue(int64, string) (string, error) { return "token", nil }

func TestSeed(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	patientSvc := patient.NewService(st, st)
	medSvc := medication.NewService(st, st)
	userSvc := user.NewService(st, staticIssuer{})

	seeder := NewSeeder(patientSvc, medSvc, userSvc, zerolog.Nop())
	if err := seeder.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	patients, err := patientSvc.ListPatients(ctx)
	if err != nil {
		t.Fatalf("ListPatients: %v", err)
	}
	if len(patients) != len(fixtures) {
		t.Fatalf("expected %d patients, got %d", len(fixtures), len(patients))
	}

	// The fixture set spans every patient-level status.
	seen := make(map[supply.Status]bool)
	for _, p := range patients {
		summary, _, err := patientSvc.Supply(ctx, p.ID)
		if err != nil {
			t.Fatalf("Supply for %q: %v", p.Name, err)
		}
		seen[summary.Status] = true
	}
	for _, want := range []supply.Status{supply.Neutral, supply.Good, supply.Warning, supply.Urgent} {
		if !seen[want] {
			t.Errorf("no seeded patient has status %s", want)
		}
	}

	if _, err := userSvc.GetUserByUsername(ctx, "demo"); err != nil {
		t.Errorf("expected seeded demo user: %v", err)
	}
}
