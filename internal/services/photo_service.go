package services

import (
	"context"

	"bizdir/internal/models/db_models"
	"bizdir/internal/models/request_models"
	"bizdir/internal/repositories"
	"bizdir/pkg/logger"
	"bizdir/pkg/utils"
)

type PhotoServiceInterface interface {
	CreatePhoto(ctx context.Context, req request_models.CreatePhotoRequest) (*db_models.Photo, error)
	UpdatePhoto(ctx context.Context, req request_models.UpdatePhotoRequest) (*db_models.Photo, error)
	DeletePhoto(ctx context.Context, userID, businessID int) error
	ListPhotosByUser(ctx context.Context, userID int) ([]db_models.Photo, error)
}

type PhotoService struct {
	photoRepo    repositories.PhotoRepository
	businessRepo repositories.BusinessRepository
}

func NewPhotoService(
	photoRepo repositories.PhotoRepository,
	businessRepo repositories.BusinessRepository) PhotoServiceInterface {
	return &PhotoService{
		photoRepo:    photoRepo,
		businessRepo: businessRepo,
	}
}

func (s *PhotoService) CreatePhoto(ctx context.Context, req request_models.CreatePhotoRequest) (*db_models.Photo, error) {
	business, err := s.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("fetching business")
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.ErrBusinessNotFound
	}

	photo := &db_models.Photo{
		UserID:     req.UserID,
		BusinessID: req.BusinessID,
		Caption:    req.Caption,
	}

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		logger.Log.Error().Err(err).Msg("creating photo")
		return nil, utils.ErrDatabaseError
	}

	return photo, nil
}

func (s *PhotoService) UpdatePhoto(ctx context.Context, req request_models.UpdatePhotoRequest) (*db_models.Photo, error) {
	existing, err := s.photoRepo.GetByUserAndBusiness(ctx, req.UserID, req.BusinessID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("fetching photo")
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrPhotoNotFound
	}

	if req.Caption != nil {
		existing.Caption = *req.Caption
	}

	if err := s.photoRepo.Update(ctx, existing); err != nil {
		logger.Log.Error().Err(err).Msg("updating photo")
		return nil, utils.ErrDatabaseError
	}

	return existing, nil
}

func (s *PhotoService) DeletePhoto(ctx context.Context, userID, businessID int) error {
	existing, err := s.photoRepo.GetByUserAndBusiness(ctx, userID, businessID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("fetching photo")
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrPhotoNotFound
	}

	if err := s.photoRepo.Delete(ctx, existing.ID); err != nil {
		logger.Log.Error().Err(err).Msg("deleting photo")
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *PhotoService) ListPhotosByUser(ctx context.Context, userID int) ([]db_models.Photo, error) {
	photos, err := s.photoRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("listing photos by user")
		return nil, utils.ErrDatabaseError
	}

	if len(photos) == 0 {
		return nil, utils.ErrNoPhotosForUser
	}

	return photos, nil
}
