package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bizdir/internal/models/db_models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *db_models.Review) error
	Update(ctx context.Context, review *db_models.Review) error
	Delete(ctx context.Context, id int) error

	// GetByUserAndBusiness returns the first review matching the pair,
	// in insertion order, or nil when there is none.
	GetByUserAndBusiness(ctx context.Context, userID, businessID int) (*db_models.Review, error)
	ListByBusiness(ctx context.Context, businessID int) ([]db_models.Review, error)
	ListByUser(ctx context.Context, userID int) ([]db_models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) Update(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id int) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Review{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *reviewRepository) GetByUserAndBusiness(ctx context.Context, userID, businessID int) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND business_id = ?", userID, businessID).
		Order("id").
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByBusiness(ctx context.Context, businessID int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("id").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
