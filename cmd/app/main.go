package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	businessfx "bizdir/cmd/fx/business_fx"
	controllersfx "bizdir/cmd/fx/controllers_fx"
	photofx "bizdir/cmd/fx/photo_fx"
	reviewfx "bizdir/cmd/fx/review_fx"
	storefx "bizdir/cmd/fx/store_fx"
	"bizdir/internal/api"
	"bizdir/internal/api/controllers"
	"bizdir/internal/config"
	"bizdir/pkg/logger"
	"bizdir/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		storefx.Module,
		businessfx.Module,
		reviewfx.Module,
		photofx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Log.Info().Str("port", cfg.Port).Msg("starting HTTP server")
				if err := engine.Run(":" + cfg.Port); err != nil {
					logger.Log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Log.Info().Msg("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	businessController *controllers.BusinessController,
	reviewController *controllers.ReviewController,
	photoController *controllers.PhotoController,
	usersController *controllers.UsersController) *gin.Engine {

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.TraceIDMiddleware())

	var guard gin.HandlerFunc
	if cfg.JWTSecret != "" {
		guard = middleware.JWTAuthMiddleware()
	}

	api.RegisterRoutes(r, guard, businessController, reviewController, photoController, usersController)

	return r
}
