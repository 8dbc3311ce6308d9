package memory

import (
	"context"
	"sync"

	"agencyx/contexts/campaign-studio/brand-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/brand-service/domain/errors"
	"agencyx/contexts/campaign-studio/brand-service/ports"
)

type Store struct {
	mu       sync.Mutex
	profiles map[string]entities.BrandProfile
}

func NewStore() *Store {
	return &Store{profiles: make(map[string]entities.BrandProfile)}
}

var _ ports.Repository = (*Store)(nil)

func (s *Store) UpsertBrand(_ context.Context, profile entities.BrandProfile) (entities.BrandProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.profiles[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
	}
	s.profiles[profile.UserID] = profile
	return profile, nil
}

func (s *Store) GetBrand(_ context.Context, userID string) (entities.BrandProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return entities.BrandProfile{}, domainerrors.ErrBrandNotFound
	}
	return profile, nil
}
