package reviewfx

import (
	"go.uber.org/fx"

	"bizdir/internal/repositories"
	"bizdir/internal/services"
)

var Module = fx.Provide(
	provideReviewService)

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	businessRepo repositories.BusinessRepository) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, businessRepo)
}
