// Package store is the authoritative in-memory registry for patients,
// medications and users. It implements the three domain repository
// interfaces behind a single mutex so that identity assignment stays unique
// and monotonic and a cascade delete is never observed half-done. State
// lives for the process lifetime only; durability is out of scope.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/medtrack/medtrack/internal/domain/medication"
	"github.com/medtrack/medtrack/internal/domain/patient"
	"github.com/medtrack/medtrack/internal/domain/user"
)

// Store holds every entity kind keyed by id. Listing order is insertion
// order, tracked explicitly per kind because map iteration order is not.
// Counters only ever increase, so a deleted id is never reused within a
// process lifetime.
type Store struct {
	mu sync.RWMutex

	patients     map[int64]*patient.Patient
	patientOrder []int64
	nextPatient  int64

	medications map[int64]*medication.Medication
	medOrder    []int64
	nextMed     int64

	users     map[int64]*user.User
	userOrder []int64
	nextUser  int64
}

func New() *Store {
	return &Store{
		patients:    make(map[int64]*patient.Patient),
		medications: make(map[int64]*medication.Medication),
		users:       make(map[int64]*user.User),
		nextPatient: 1,
		nextMed:     1,
		nextUser:    1,
	}
}

// -- Patients --

func (s *Store) CreatePatient(_ context.Context, p *patient.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextPatient
	s.nextPatient++

	cp := *p
	s.patients[cp.ID] = &cp
	s.patientOrder = append(s.patientOrder, cp.ID)
	return nil
}

func (s *Store) GetPatient(_ context.Context, id int64) (*patient.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patients[id]
	if !ok {
		return nil, patient.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Store) ListPatients(_ context.Context) ([]*patient.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*patient.Patient, 0, len(s.patientOrder))
	for _, id := range s.patientOrder {
		cp := *s.patients[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *Store) UpdatePatient(_ context.Context, p *patient.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[p.ID]; !ok {
		return patient.ErrNotFound
	}
	cp := *p
	s.patients[cp.ID] = &cp
	return nil
}

// DeletePatient removes the patient and every medication that references it.
// Owned medication ids are collected first and removed before the patient,
// all under one lock acquisition, so no reader ever sees an orphaned
// medication or a half-finished cascade.
func (s *Store) DeletePatient(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[id]; !ok {
		return patient.ErrNotFound
	}

	var owned []int64
	for _, mid := range s.medOrder {
		if s.medications[mid].PatientID == id {
			owned = append(owned, mid)
		}
	}
	for _, mid := range owned {
		s.removeMedicationLocked(mid)
	}

	delete(s.patients, id)
	s.patientOrder = removeID(s.patientOrder, id)
	return nil
}

// PatientExists satisfies medication.PatientChecker.
func (s *Store) PatientExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.patients[id]
	return ok, nil
}

// -- Medications --

func (s *Store) CreateMedication(_ context.Context, m *medication.Medication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextMed
	s.nextMed++
	m.Added = time.Now().UTC()

	cp := *m
	s.medications[cp.ID] = &cp
	s.medOrder = append(s.medOrder, cp.ID)
	return nil
}

func (s *Store) GetMedication(_ context.Context, id int64) (*medication.Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.medications[id]
	if !ok {
		return nil, medication.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *Store) ListMedicationsByPatient(_ context.Context, patientID int64) ([]*medication.Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*medication.Medication
	for _, id := range s.medOrder {
		if m := s.medications[id]; m.PatientID == patientID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *Store) UpdateMedicationCurrent(_ context.Context, id int64, current int) (*medication.Medication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.medications[id]
	if !ok {
		return nil, medication.ErrNotFound
	}
	m.Current = current
	cp := *m
	return &cp, nil
}

func (s *Store) DeleteMedication(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.medications[id]; !ok {
		return medication.ErrNotFound
	}
	s.removeMedicationLocked(id)
	return nil
}

func (s *Store) removeMedicationLocked(id int64) {
	delete(s.medications, id)
	s.medOrder = removeID(s.medOrder, id)
}

// -- Users --

func (s *Store) CreateUser(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return user.ErrDuplicateUsername
		}
	}

	u.ID = s.nextUser
	s.nextUser++

	cp := *u
	s.users[cp.ID] = &cp
	s.userOrder = append(s.userOrder, cp.ID)
	return nil
}

func (s *Store) GetUser(_ context.Context, id int64) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if u := s.users[id]; u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func removeID(ids []int64, id int64) []int64 {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
