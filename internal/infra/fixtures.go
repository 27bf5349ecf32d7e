package infra

import (
	"encoding/json"
	"os"
	"path/filepath"

	"bizdir/internal/models/db_models"
	"bizdir/pkg/logger"
)

type SeedData struct {
	Businesses []db_models.Business
	Reviews    []db_models.Review
	Photos     []db_models.Photo
}

// LoadSeedData reads the three fixture files from dir. A missing file is not
// fatal; the corresponding collection just starts empty.
func LoadSeedData(dir string) (*SeedData, error) {
	seed := &SeedData{}

	if err := loadFixture(filepath.Join(dir, "businesses.json"), &seed.Businesses); err != nil {
		return nil, err
	}
	if err := loadFixture(filepath.Join(dir, "reviews.json"), &seed.Reviews); err != nil {
		return nil, err
	}
	if err := loadFixture(filepath.Join(dir, "photos.json"), &seed.Photos); err != nil {
		return nil, err
	}

	logger.Log.Info().
		Int("businesses", len(seed.Businesses)).
		Int("reviews", len(seed.Reviews)).
		Int("photos", len(seed.Photos)).
		Msg("seed data loaded")

	return seed, nil
}

func loadFixture(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Log.Warn().Str("path", path).Msg("fixture file missing, collection starts empty")
			return nil
		}
		return err
	}
	return json.Unmarshal(raw, out)
}
