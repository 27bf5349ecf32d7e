package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	SeedDir     string
	PostgresURL string
	JWTSecret   string
}

// Load reads configuration from the environment, picking up a .env file
// when one is present. Only the port has a hard default; the postgres URL
// and JWT secret are opt-in switches for the persistence backend and the
// auth boundary respectively.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8000"),
		SeedDir:     getEnv("SEED_DIR", "data"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
