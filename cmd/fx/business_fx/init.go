package businessfx

import (
	"go.uber.org/fx"

	"bizdir/internal/repositories"
	"bizdir/internal/services"
)

var Module = fx.Provide(
	provideBusinessService)

func provideBusinessService(
	businessRepo repositories.BusinessRepository,
	reviewRepo repositories.ReviewRepository,
	photoRepo repositories.PhotoRepository) services.BusinessServiceInterface {
	return services.NewBusinessService(businessRepo, reviewRepo, photoRepo)
}
