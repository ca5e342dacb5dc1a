package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads database settings for integration tests from TEST_DB_* variables.
//
// A .env file is optional. When any variable is missing the returned config has
// an empty Database section and ok is false, so tests can skip.
func LoadTestConfig() (cfg *Config, ok bool, err error) {
	_ = godotenv.Load("./../../.env")
	_ = godotenv.Load()

	cfg = &Config{}
	host := os.Getenv("TEST_DB_HOST")
	user := os.Getenv("TEST_DB_USER")
	name := os.Getenv("TEST_DB_NAME")
	if host == "" || user == "" || name == "" {
		return cfg, false, nil
	}

	port, err := intEnv("TEST_DB_PORT", 3306)
	if err != nil {
		return nil, false, err
	}

	cfg.Database = DatabaseConfig{
		Host:     host,
		Port:     port,
		User:     user,
		Password: os.Getenv("TEST_DB_PASSWORD"),
		DBName:   name,
	}
	cfg.MigrationsPath = envOr("TEST_MIGRATIONS_PATH", "../../migrations")
	return cfg, true, nil
}
