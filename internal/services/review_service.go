package services

import (
	"context"

	"bizdir/internal/models/db_models"
	"bizdir/internal/models/request_models"
	"bizdir/internal/repositories"
	"bizdir/pkg/logger"
	"bizdir/pkg/utils"
)

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, req request_models.CreateReviewRequest) (*db_models.Review, error)
	UpdateReview(ctx context.Context, req request_models.UpdateReviewRequest) (*db_models.Review, error)
	DeleteReview(ctx context.Context, userID, businessID int) error
	ListReviewsByUser(ctx context.Context, userID int) ([]db_models.Review, error)
}

type ReviewService struct {
	reviewRepo   repositories.ReviewRepository
	businessRepo repositories.BusinessRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	businessRepo repositories.BusinessRepository) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		businessRepo: businessRepo,
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, req request_models.CreateReviewRequest) (*db_models.Review, error) {
	if req.Dollars == nil || req.Stars == nil {
		return nil, utils.ErrMissingRatingFields
	}

	business, err := s.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("fetching business")
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.ErrBusinessNotFound
	}

	review := &db_models.Review{
		UserID:     req.UserID,
		BusinessID: req.BusinessID,
		Dollars:    *req.Dollars,
		Stars:      *req.Stars,
		Review:     req.Review,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		logger.Log.Error().Err(err).Msg("creating review")
		return nil, utils.ErrDatabaseError
	}

	return review, nil
}

// UpdateReview addresses the review by the (userid, businessid) pair and
// applies the update to the first match in insertion order.
func (s *ReviewService) UpdateReview(ctx context.Context, req request_models.UpdateReviewRequest) (*db_models.Review, error) {
	existing, err := s.reviewRepo.GetByUserAndBusiness(ctx, req.UserID, req.BusinessID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("fetching review")
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrReviewNotFound
	}

	if req.Dollars != nil {
		existing.Dollars = *req.Dollars
	}
	if req.Stars != nil {
		existing.Stars = *req.Stars
	}
	if req.Review != nil {
		existing.Review = *req.Review
	}

	if err := s.reviewRepo.Update(ctx, existing); err != nil {
		logger.Log.Error().Err(err).Msg("updating review")
		return nil, utils.ErrDatabaseError
	}

	return existing, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, userID, businessID int) error {
	existing, err := s.reviewRepo.GetByUserAndBusiness(ctx, userID, businessID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("fetching review")
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrReviewNotFound
	}

	if err := s.reviewRepo.Delete(ctx, existing.ID); err != nil {
		logger.Log.Error().Err(err).Msg("deleting review")
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *ReviewService) ListReviewsByUser(ctx context.Context, userID int) ([]db_models.Review, error) {
	reviews, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("listing reviews by user")
		return nil, utils.ErrDatabaseError
	}

	if len(reviews) == 0 {
		return nil, utils.ErrNoReviewsForUser
	}

	return reviews, nil
}
