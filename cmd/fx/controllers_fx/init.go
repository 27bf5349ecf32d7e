package controllersfx

import (
	"go.uber.org/fx"

	"bizdir/internal/api/controllers"
	"bizdir/internal/services"
)

var Module = fx.Provide(
	controllers.NewBusinessController,
	controllers.NewReviewController,
	controllers.NewPhotoController,
	provideUsersController)

func provideUsersController(
	businessService services.BusinessServiceInterface,
	reviewService services.ReviewServiceInterface,
	photoService services.PhotoServiceInterface) *controllers.UsersController {
	return controllers.NewUsersController(businessService, reviewService, photoService)
}
