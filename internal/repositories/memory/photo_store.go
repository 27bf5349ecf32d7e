package memory

import (
	"context"
	"sync"

	"bizdir/internal/models/db_models"
	"bizdir/internal/repositories"
)

type PhotoStore struct {
	mu     sync.RWMutex
	photos []db_models.Photo
	nextID int
}

var _ repositories.PhotoRepository = (*PhotoStore)(nil)

// NewPhotoStore assigns surrogate ids to seeded photos; fixture files carry
// none because the public contract never exposes a photo id.
func NewPhotoStore(seed []db_models.Photo) *PhotoStore {
	s := &PhotoStore{
		photos: append([]db_models.Photo(nil), seed...),
		nextID: len(seed),
	}
	for i := range s.photos {
		s.photos[i].ID = i
	}
	return s
}

func (s *PhotoStore) Create(ctx context.Context, photo *db_models.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	photo.ID = s.nextID
	s.nextID++
	s.photos = append(s.photos, *photo)
	return nil
}

func (s *PhotoStore) Update(ctx context.Context, photo *db_models.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.photos {
		if s.photos[i].ID == photo.ID {
			s.photos[i] = *photo
			return nil
		}
	}
	return nil
}

func (s *PhotoStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.photos {
		if s.photos[i].ID == id {
			s.photos = append(s.photos[:i], s.photos[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *PhotoStore) GetByUserAndBusiness(ctx context.Context, userID, businessID int) (*db_models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.photos {
		if s.photos[i].UserID == userID && s.photos[i].BusinessID == businessID {
			photo := s.photos[i]
			return &photo, nil
		}
	}
	return nil, nil
}

func (s *PhotoStore) ListByBusiness(ctx context.Context, businessID int) ([]db_models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []db_models.Photo{}
	for _, p := range s.photos {
		if p.BusinessID == businessID {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (s *PhotoStore) ListByUser(ctx context.Context, userID int) ([]db_models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []db_models.Photo{}
	for _, p := range s.photos {
		if p.UserID == userID {
			matches = append(matches, p)
		}
	}
	return matches, nil
}
