package services

import (
	"context"
	"errors"
	"testing"

	"bizdir/internal/models/db_models"
	"bizdir/internal/models/request_models"
	"bizdir/internal/repositories/memory"
	"bizdir/pkg/utils"
)

func reviewFixtures() ([]db_models.Business, []db_models.Review) {
	businesses := []db_models.Business{{ID: 0, Name: "Cafe", Address: "1 Main", City: "X",
		State: "Y", Zip: "00000", Phone: "555", Category: "food", Subcategory: "cafe"}}
	reviews := []db_models.Review{
		{ID: 0, UserID: 10, BusinessID: 0, Dollars: 2, Stars: 4, Review: "fine"},
		{ID: 1, UserID: 11, BusinessID: 0, Dollars: 1, Stars: 3},
	}
	return businesses, reviews
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }

func TestCreateReviewRequiresBothRatings(t *testing.T) {
	ctx := context.Background()
	businesses, reviews := reviewFixtures()
	svc := NewReviewService(memory.NewReviewStore(reviews), memory.NewBusinessStore(businesses))

	_, err := svc.CreateReview(ctx, request_models.CreateReviewRequest{
		BusinessID: 0, UserID: 12, Stars: floatPtr(4),
	})
	if !errors.Is(err, utils.ErrMissingRatingFields) {
		t.Fatalf("expected ErrMissingRatingFields without dollars, got %v", err)
	}

	_, err = svc.CreateReview(ctx, request_models.CreateReviewRequest{
		BusinessID: 0, UserID: 12, Dollars: intPtr(2),
	})
	if !errors.Is(err, utils.ErrMissingRatingFields) {
		t.Fatalf("expected ErrMissingRatingFields without stars, got %v", err)
	}

	// explicit zero ratings count as present
	created, err := svc.CreateReview(ctx, request_models.CreateReviewRequest{
		BusinessID: 0, UserID: 12, Dollars: intPtr(0), Stars: floatPtr(0),
	})
	if err != nil {
		t.Fatalf("create with zero ratings: %v", err)
	}
	if created.ID != 2 {
		t.Fatalf("expected id 2, got %d", created.ID)
	}
}

func TestCreateReviewChecksBusinessExists(t *testing.T) {
	ctx := context.Background()
	businesses, reviews := reviewFixtures()
	svc := NewReviewService(memory.NewReviewStore(reviews), memory.NewBusinessStore(businesses))

	_, err := svc.CreateReview(ctx, request_models.CreateReviewRequest{
		BusinessID: 42, UserID: 12, Dollars: intPtr(2), Stars: floatPtr(4),
	})
	if !errors.Is(err, utils.ErrBusinessNotFound) {
		t.Fatalf("expected ErrBusinessNotFound, got %v", err)
	}
}

func TestUpdateReviewByUserAndBusiness(t *testing.T) {
	ctx := context.Background()
	businesses, reviews := reviewFixtures()
	svc := NewReviewService(memory.NewReviewStore(reviews), memory.NewBusinessStore(businesses))

	updated, err := svc.UpdateReview(ctx, request_models.UpdateReviewRequest{
		UserID: 10, BusinessID: 0, Stars: floatPtr(5), Review: stringPtr(""),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Stars != 5 {
		t.Fatalf("expected stars applied, got %v", updated.Stars)
	}
	if updated.Review != "" {
		t.Fatalf("explicitly empty body must be applied, got %q", updated.Review)
	}
	if updated.Dollars != 2 {
		t.Fatalf("omitted dollars must keep prior value, got %d", updated.Dollars)
	}

	_, err = svc.UpdateReview(ctx, request_models.UpdateReviewRequest{UserID: 99, BusinessID: 0})
	if !errors.Is(err, utils.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestDeleteReviewAffectsExactlyOne(t *testing.T) {
	ctx := context.Background()
	businesses, _ := reviewFixtures()
	reviews := []db_models.Review{
		{ID: 0, UserID: 10, BusinessID: 0, Dollars: 2, Stars: 4},
		{ID: 1, UserID: 10, BusinessID: 0, Dollars: 1, Stars: 1},
	}
	store := memory.NewReviewStore(reviews)
	svc := NewReviewService(store, memory.NewBusinessStore(businesses))

	if err := svc.DeleteReview(ctx, 10, 0); err != nil {
		t.Fatalf("delete: %v", err)
	}

	remaining, err := store.ListByUser(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != 1 {
		t.Fatalf("expected only the first match removed, got %+v", remaining)
	}

	if err := svc.DeleteReview(ctx, 77, 0); !errors.Is(err, utils.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound for no match, got %v", err)
	}
}

func TestListReviewsByUser(t *testing.T) {
	ctx := context.Background()
	businesses, reviews := reviewFixtures()
	svc := NewReviewService(memory.NewReviewStore(reviews), memory.NewBusinessStore(businesses))

	mine, err := svc.ListReviewsByUser(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != 10 {
		t.Fatalf("unexpected listing: %+v", mine)
	}

	if _, err := svc.ListReviewsByUser(ctx, 404); !errors.Is(err, utils.ErrNoReviewsForUser) {
		t.Fatalf("expected ErrNoReviewsForUser, got %v", err)
	}
}
