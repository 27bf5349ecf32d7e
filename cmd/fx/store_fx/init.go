package storefx

import (
	"context"

	"go.uber.org/fx"

	"bizdir/internal/config"
	"bizdir/internal/infra"
	"bizdir/internal/repositories"
	"bizdir/internal/repositories/memory"
	"bizdir/pkg/logger"
)

var Module = fx.Provide(
	provideStores)

type Stores struct {
	fx.Out

	Businesses repositories.BusinessRepository
	Reviews    repositories.ReviewRepository
	Photos     repositories.PhotoRepository
}

// provideStores selects the backend: postgres when POSTGRES_URL is set,
// otherwise fixture-seeded process memory.
func provideStores(lc fx.Lifecycle, cfg *config.Config) (Stores, error) {
	if cfg.PostgresURL != "" {
		db, err := infra.InitPostgresql(cfg.PostgresURL)
		if err != nil {
			return Stores{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.ClosePostgresql(db)
				return nil
			},
		})
		logger.Log.Info().Msg("using postgres backend")
		return Stores{
			Businesses: repositories.NewBusinessRepository(db),
			Reviews:    repositories.NewReviewRepository(db),
			Photos:     repositories.NewPhotoRepository(db),
		}, nil
	}

	seed, err := infra.LoadSeedData(cfg.SeedDir)
	if err != nil {
		return Stores{}, err
	}
	logger.Log.Info().Msg("using in-memory backend")
	return Stores{
		Businesses: memory.NewBusinessStore(seed.Businesses),
		Reviews:    memory.NewReviewStore(seed.Reviews),
		Photos:     memory.NewPhotoStore(seed.Photos),
	}, nil
}
