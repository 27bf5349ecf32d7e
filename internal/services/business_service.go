package services

import (
	"context"
	"fmt"

	"bizdir/internal/models/db_models"
	"bizdir/internal/models/request_models"
	"bizdir/internal/models/response_models"
	"bizdir/internal/repositories"
	"bizdir/pkg/logger"
	"bizdir/pkg/utils"
)

const businessPageSize = 10

type BusinessServiceInterface interface {
	CreateBusiness(ctx context.Context, req request_models.CreateBusinessRequest) (*db_models.Business, error)
	UpdateBusiness(ctx context.Context, id int, req request_models.UpdateBusinessRequest) (*db_models.Business, error)
	DeleteBusiness(ctx context.Context, id int) error
	ListBusinesses(ctx context.Context, page int) (*response_models.BusinessPage, error)
	GetBusinessDetail(ctx context.Context, id int) (*response_models.BusinessDetail, error)
	ListBusinessesByOwner(ctx context.Context, ownerID int) ([]db_models.Business, error)
}

type BusinessService struct {
	businessRepo repositories.BusinessRepository
	reviewRepo   repositories.ReviewRepository
	photoRepo    repositories.PhotoRepository
}

func NewBusinessService(
	businessRepo repositories.BusinessRepository,
	reviewRepo repositories.ReviewRepository,
	photoRepo repositories.PhotoRepository) BusinessServiceInterface {
	return &BusinessService{
		businessRepo: businessRepo,
		reviewRepo:   reviewRepo,
		photoRepo:    photoRepo,
	}
}

func (s *BusinessService) CreateBusiness(ctx context.Context, req request_models.CreateBusinessRequest) (*db_models.Business, error) {
	if req.Name == "" || req.Address == "" || req.City == "" || req.State == "" ||
		req.Zip == "" || req.Phone == "" || req.Category == "" || req.Subcategory == "" {
		return nil, utils.ErrMissingRequiredFields
	}

	business := &db_models.Business{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
		Phone:       req.Phone,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Website:     req.Website,
		Email:       req.Email,
		OwnerID:     req.OwnerID,
	}

	if err := s.businessRepo.Create(ctx, business); err != nil {
		logger.Log.Error().Err(err).Msg("creating business")
		return nil, utils.ErrDatabaseError
	}

	return business, nil
}

func (s *BusinessService) UpdateBusiness(ctx context.Context, id int, req request_models.UpdateBusinessRequest) (*db_models.Business, error) {
	existing, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Error().Err(err).Msg("fetching business")
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrBusinessNotFound
	}

	// nil means "field omitted"; a provided empty value is applied.
	applyString(&existing.Name, req.Name)
	applyString(&existing.Address, req.Address)
	applyString(&existing.City, req.City)
	applyString(&existing.State, req.State)
	applyString(&existing.Zip, req.Zip)
	applyString(&existing.Phone, req.Phone)
	applyString(&existing.Category, req.Category)
	applyString(&existing.Subcategory, req.Subcategory)
	applyString(&existing.Website, req.Website)
	applyString(&existing.Email, req.Email)

	if err := s.businessRepo.Update(ctx, existing); err != nil {
		logger.Log.Error().Err(err).Msg("updating business")
		return nil, utils.ErrDatabaseError
	}

	return existing, nil
}

func (s *BusinessService) DeleteBusiness(ctx context.Context, id int) error {
	existing, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Error().Err(err).Msg("fetching business")
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrBusinessNotFound
	}

	// Reviews and photos referencing the business are left untouched.
	if err := s.businessRepo.Delete(ctx, id); err != nil {
		logger.Log.Error().Err(err).Msg("deleting business")
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *BusinessService) ListBusinesses(ctx context.Context, page int) (*response_models.BusinessPage, error) {
	total, err := s.businessRepo.Count(ctx)
	if err != nil {
		logger.Log.Error().Err(err).Msg("counting businesses")
		return nil, utils.ErrDatabaseError
	}

	// Clamp to the last page first, then floor to 1 so an empty
	// collection (lastPage 0) still resolves to page 1 with no links.
	lastPage := (total + businessPageSize - 1) / businessPageSize
	if page > lastPage {
		page = lastPage
	}
	if page < 1 {
		page = 1
	}

	businesses, err := s.businessRepo.List(ctx, (page-1)*businessPageSize, businessPageSize)
	if err != nil {
		logger.Log.Error().Err(err).Msg("listing businesses")
		return nil, utils.ErrDatabaseError
	}

	links := response_models.PageLinks{}
	if page < lastPage {
		links.NextPage = fmt.Sprintf("/businesses?page=%d", page+1)
		links.LastPage = fmt.Sprintf("/businesses?page=%d", lastPage)
	}
	if page > 1 {
		links.PrevPage = fmt.Sprintf("/businesses?page=%d", page-1)
		links.FirstPage = "/businesses?page=1"
	}

	return &response_models.BusinessPage{
		Business: businesses,
		Page:     page,
		PageSize: businessPageSize,
		LastPage: lastPage,
		Total:    total,
		Links:    links,
	}, nil
}

func (s *BusinessService) GetBusinessDetail(ctx context.Context, id int) (*response_models.BusinessDetail, error) {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Error().Err(err).Msg("fetching business")
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.ErrBusinessNotFound
	}

	reviews, err := s.reviewRepo.ListByBusiness(ctx, id)
	if err != nil {
		logger.Log.Error().Err(err).Msg("listing reviews for business")
		return nil, utils.ErrDatabaseError
	}

	photos, err := s.photoRepo.ListByBusiness(ctx, id)
	if err != nil {
		logger.Log.Error().Err(err).Msg("listing photos for business")
		return nil, utils.ErrDatabaseError
	}

	if reviews == nil {
		reviews = []db_models.Review{}
	}
	if photos == nil {
		photos = []db_models.Photo{}
	}

	return &response_models.BusinessDetail{
		Business: *business,
		Reviews:  reviews,
		Photos:   photos,
	}, nil
}

func (s *BusinessService) ListBusinessesByOwner(ctx context.Context, ownerID int) ([]db_models.Business, error) {
	businesses, err := s.businessRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("listing businesses by owner")
		return nil, utils.ErrDatabaseError
	}

	if len(businesses) == 0 {
		return nil, utils.ErrNoBusinessesForOwner
	}

	return businesses, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
