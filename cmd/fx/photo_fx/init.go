package photofx

import (
	"go.uber.org/fx"

	"bizdir/internal/repositories"
	"bizdir/internal/services"
)

var Module = fx.Provide(
	providePhotoService)

func providePhotoService(
	photoRepo repositories.PhotoRepository,
	businessRepo repositories.BusinessRepository) services.PhotoServiceInterface {
	return services.NewPhotoService(photoRepo, businessRepo)
}
