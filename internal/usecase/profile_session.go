package usecase

import (
	"context"
	"sync"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
)

// ProfileSession pins each signed-in user's profile for the life of the
// process, the server-side equivalent of the app's profile context. Entries
// are keyed by uid: one cell per signed-in user, and only Load and Refresh
// replace a cell, every other component reads it. The mutex makes the map
// safe from handler goroutines.
type ProfileSession struct {
	userRepo repository.UserRepository

	mu       sync.RWMutex
	profiles map[string]*entity.User
}

func NewProfileSession(userRepo repository.UserRepository) *ProfileSession {
	return &ProfileSession{
		userRepo: userRepo,
		profiles: make(map[string]*entity.User),
	}
}

// Load fetches and pins the profile for the given user.
func (s *ProfileSession) Load(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.profiles[userID] = user
	s.mu.Unlock()

	return user, nil
}

// Refresh re-reads the given user's pinned profile from the store. No-op
// when that user has nothing loaded.
func (s *ProfileSession) Refresh(ctx context.Context, userID string) (*entity.User, error) {
	s.mu.RLock()
	_, pinned := s.profiles[userID]
	s.mu.RUnlock()

	if !pinned {
		return nil, nil
	}
	return s.Load(ctx, userID)
}

func (s *ProfileSession) Current(userID string) *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[userID]
}

func (s *ProfileSession) Clear(userID string) {
	s.mu.Lock()
	delete(s.profiles, userID)
	s.mu.Unlock()
}
