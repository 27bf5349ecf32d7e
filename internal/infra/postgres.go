package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bizdir/internal/models/db_models"
	"bizdir/pkg/logger"
)

func InitPostgresql(dsn string) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Error().Err(err).Msg("connecting to database")
		return nil, err
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Business{},
		&db_models.Review{},
		&db_models.Photo{},
	); err != nil {
		logger.Log.Error().Err(err).Msg("running migrations")
		return nil, err
	}

	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Error().Err(err).Msg("getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Log.Error().Err(err).Msg("closing database connection")
	} else {
		logger.Log.Info().Msg("PostgreSQL database connection closed")
	}
}
