package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bizdir/internal/models/db_models"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *db_models.Photo) error
	Update(ctx context.Context, photo *db_models.Photo) error
	Delete(ctx context.Context, id int) error

	GetByUserAndBusiness(ctx context.Context, userID, businessID int) (*db_models.Photo, error)
	ListByBusiness(ctx context.Context, businessID int) ([]db_models.Photo, error)
	ListByUser(ctx context.Context, userID int) ([]db_models.Photo, error)
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *db_models.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *photoRepository) Update(ctx context.Context, photo *db_models.Photo) error {
	return r.db.WithContext(ctx).Save(photo).Error
}

func (r *photoRepository) Delete(ctx context.Context, id int) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Photo{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *photoRepository) GetByUserAndBusiness(ctx context.Context, userID, businessID int) (*db_models.Photo, error) {
	var photo db_models.Photo
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND business_id = ?", userID, businessID).
		Order("id").
		First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) ListByBusiness(ctx context.Context, businessID int) ([]db_models.Photo, error) {
	var photos []db_models.Photo
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("id").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *photoRepository) ListByUser(ctx context.Context, userID int) ([]db_models.Photo, error) {
	var photos []db_models.Photo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}
