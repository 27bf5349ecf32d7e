package memory

import (
	"context"
	"sync"

	"bizdir/internal/models/db_models"
	"bizdir/internal/repositories"
)

type ReviewStore struct {
	mu      sync.RWMutex
	reviews []db_models.Review
	nextID  int
}

var _ repositories.ReviewRepository = (*ReviewStore)(nil)

func NewReviewStore(seed []db_models.Review) *ReviewStore {
	s := &ReviewStore{
		reviews: append([]db_models.Review(nil), seed...),
		nextID:  len(seed),
	}
	for _, r := range seed {
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	return s
}

func (s *ReviewStore) Create(ctx context.Context, review *db_models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	review.ID = s.nextID
	s.nextID++
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *ReviewStore) Update(ctx context.Context, review *db_models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reviews {
		if s.reviews[i].ID == review.ID {
			s.reviews[i] = *review
			return nil
		}
	}
	return nil
}

func (s *ReviewStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *ReviewStore) GetByUserAndBusiness(ctx context.Context, userID, businessID int) (*db_models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.reviews {
		if s.reviews[i].UserID == userID && s.reviews[i].BusinessID == businessID {
			review := s.reviews[i]
			return &review, nil
		}
	}
	return nil, nil
}

func (s *ReviewStore) ListByBusiness(ctx context.Context, businessID int) ([]db_models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []db_models.Review{}
	for _, r := range s.reviews {
		if r.BusinessID == businessID {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

func (s *ReviewStore) ListByUser(ctx context.Context, userID int) ([]db_models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []db_models.Review{}
	for _, r := range s.reviews {
		if r.UserID == userID {
			matches = append(matches, r)
		}
	}
	return matches, nil
}
