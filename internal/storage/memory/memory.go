// Package memory keeps activities in process memory. It backs the API when no
// database is configured and is seeded with the school's default activities.
package memory

import (
	"activityBoard/internal/models"
	"activityBoard/internal/storage"
	"fmt"
	"slices"
	"sync"
)

type Storage struct {
	mu         sync.RWMutex
	activities models.Activities
}

func New(seed models.Activities) *Storage {
	s := &Storage{activities: make(models.Activities, 0, len(seed))}

	for _, a := range seed {
		a.Participants = slices.Clone(a.Participants)
		s.activities = append(s.activities, a)
	}

	return s
}

func (s *Storage) GetActivities() (models.Activities, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(models.Activities, 0, len(s.activities))
	for _, a := range s.activities {
		a.Participants = slices.Clone(a.Participants)
		out = append(out, a)
	}

	return out, nil
}

func (s *Storage) SignupParticipant(activityName, email string) error {
	const op = "storage.memory.SignupParticipant"

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.find(activityName)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if a.HasParticipant(email) {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadySignedUp)
	}

	if a.SpotsLeft() <= 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrActivityFull)
	}

	a.Participants = append(a.Participants, email)

	return nil
}

func (s *Storage) UnregisterParticipant(activityName, email string) error {
	const op = "storage.memory.UnregisterParticipant"

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.find(activityName)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotSignedUp)
	}

	a.Participants = slices.Delete(a.Participants, idx, idx+1)

	return nil
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) find(name string) (*models.Activity, error) {
	for i := range s.activities {
		if s.activities[i].Name == name {
			return &s.activities[i], nil
		}
	}

	return nil, storage.ErrActivityNotFound
}
