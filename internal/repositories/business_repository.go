package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bizdir/internal/models/db_models"
)

type BusinessRepository interface {
	Create(ctx context.Context, business *db_models.Business) error
	GetByID(ctx context.Context, id int) (*db_models.Business, error)
	Update(ctx context.Context, business *db_models.Business) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, offset, limit int) ([]db_models.Business, error)
	Count(ctx context.Context) (int, error)
	ListByOwner(ctx context.Context, ownerID int) ([]db_models.Business, error)
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Create(ctx context.Context, business *db_models.Business) error {
	return r.db.WithContext(ctx).Create(business).Error
}

// ────────────────────────────────────────────────────────────────
// Read helpers return a default value + nil error when no rows
// are found; callers decide whether that is an error.
// ────────────────────────────────────────────────────────────────

func (r *businessRepository) GetByID(ctx context.Context, id int) (*db_models.Business, error) {
	var business db_models.Business
	err := r.db.WithContext(ctx).First(&business, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) Update(ctx context.Context, business *db_models.Business) error {
	return r.db.WithContext(ctx).Save(business).Error
}

func (r *businessRepository) Delete(ctx context.Context, id int) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Business{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *businessRepository) List(ctx context.Context, offset, limit int) ([]db_models.Business, error) {
	var businesses []db_models.Business
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&businesses).Error
	if err != nil {
		return nil, err
	}
	return businesses, nil
}

func (r *businessRepository) Count(ctx context.Context) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&db_models.Business{}).Count(&total).Error
	return int(total), err
}

func (r *businessRepository) ListByOwner(ctx context.Context, ownerID int) ([]db_models.Business, error) {
	var businesses []db_models.Business
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&businesses).Error
	if err != nil {
		return nil, err
	}
	return businesses, nil
}
