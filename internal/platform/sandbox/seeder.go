// Package sandbox seeds deterministic demo data for development and UI
// demos. The fixture set deliberately spans every supply status: an urgent
// medication, a warning one, a comfortable one and a zero-frequency one.
package sandbox

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/medtrack/medtrack/internal/domain/medication"
	"github.com/medtrack/medtrack/internal/domain/patient"
	"github.com/medtrack/medtrack/internal/domain/user"
)

type Seeder struct {
	patients *patient.Service
	meds     *medication.Service
	users    *user.Service
	log      zerolog.Logger
}

func NewSeeder(patients *patient.Service, meds *medication.Service, users *user.Service, log zerolog.Logger) *Seeder {
	return &Seeder{patients: patients, meds: meds, users: users, log: log}
}

type seedMedication struct {
	name      string
	current   int
	frequency float64
}

type seedPatient struct {
	name string
	room string
	meds []seedMedication
}

var fixtures = []seedPatient{
	{
		name: "Margarete Huber", room: "12A",
		meds: []seedMedication{
			{name: "Ramipril 5mg", current: 2, frequency: 1},     // urgent
			{name: "Metformin 850mg", current: 28, frequency: 2}, // good
		},
	},
	{
		name: "Karl-Heinz Brandt", room: "12B",
		meds: []seedMedication{
			{name: "ASS 100", current: 6, frequency: 1},         // warning
			{name: "Vitamin D 20000", current: 10, frequency: 0}, // taken on demand
		},
	},
	{
		name: "Elfriede Schuster", room: "14",
		meds: []seedMedication{
			{name: "L-Thyroxin 75", current: 45, frequency: 0.5}, // good, fractional dose
		},
	},
	{
		name: "Werner Ostermann", room: "15",
		// no medications yet: exercises the neutral patient summary
	},
}

// Seed loads the demo fixtures and one demo account. It is meant for a
// fresh in-memory store; seeding twice duplicates patients.
func (s *Seeder) Seed(ctx context.Context) error {
	for _, fp := range fixtures {
		p := &patient.Patient{Name: fp.name, Room: fp.room}
		if err := s.patients.CreatePatient(ctx, p); err != nil {
			return fmt.Errorf("seed patient %q: %w", fp.name, err)
		}
		for _, fm := range fp.meds {
			m := &medication.Medication{
				PatientID: p.ID,
				Name:      fm.name,
				Current:   fm.current,
				Frequency: fm.frequency,
			}
			if err := s.meds.CreateMedication(ctx, m); err != nil {
				return fmt.Errorf("seed medication %q: %w", fm.name, err)
			}
		}
		s.log.Info().Str("patient", fp.name).Int("medications", len(fp.meds)).Msg("seeded patient")
	}

	if _, err := s.users.Register(ctx, "demo", "demo-passwort"); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	s.log.Info().Str("username", "demo").Msg("seeded demo user")

	return nil
}
