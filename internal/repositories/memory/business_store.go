// Package memory implements the repository interfaces over mutex-guarded,
// order-preserving slices. It is the default backend: collections are seeded
// from fixture files at startup and every mutation is lost at process exit.
package memory

import (
	"context"
	"sync"

	"bizdir/internal/models/db_models"
	"bizdir/internal/repositories"
)

type BusinessStore struct {
	mu         sync.RWMutex
	businesses []db_models.Business
	nextID     int
}

var _ repositories.BusinessRepository = (*BusinessStore)(nil)

// NewBusinessStore seeds the store and positions the id counter past every
// seeded record. Ids are monotonic and never reused after a delete.
func NewBusinessStore(seed []db_models.Business) *BusinessStore {
	s := &BusinessStore{
		businesses: append([]db_models.Business(nil), seed...),
		nextID:     len(seed),
	}
	for _, b := range seed {
		if b.ID >= s.nextID {
			s.nextID = b.ID + 1
		}
	}
	return s
}

func (s *BusinessStore) Create(ctx context.Context, business *db_models.Business) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	business.ID = s.nextID
	s.nextID++
	s.businesses = append(s.businesses, *business)
	return nil
}

func (s *BusinessStore) GetByID(ctx context.Context, id int) (*db_models.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.businesses {
		if s.businesses[i].ID == id {
			business := s.businesses[i]
			return &business, nil
		}
	}
	return nil, nil
}

func (s *BusinessStore) Update(ctx context.Context, business *db_models.Business) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.businesses {
		if s.businesses[i].ID == business.ID {
			s.businesses[i] = *business
			return nil
		}
	}
	return nil
}

func (s *BusinessStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.businesses {
		if s.businesses[i].ID == id {
			s.businesses = append(s.businesses[:i], s.businesses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *BusinessStore) List(ctx context.Context, offset, limit int) ([]db_models.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.businesses) {
		return []db_models.Business{}, nil
	}
	end := offset + limit
	if end > len(s.businesses) {
		end = len(s.businesses)
	}
	return append([]db_models.Business(nil), s.businesses[offset:end]...), nil
}

func (s *BusinessStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.businesses), nil
}

func (s *BusinessStore) ListByOwner(ctx context.Context, ownerID int) ([]db_models.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []db_models.Business{}
	for _, b := range s.businesses {
		if b.OwnerID == ownerID {
			matches = append(matches, b)
		}
	}
	return matches, nil
}
