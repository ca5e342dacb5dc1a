// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultServerPort        = 8080
	defaultLogLevel          = "info"
	defaultAccessTokenExpiry = 30 * time.Minute
	defaultMigrationsPath    = "migrations"
	defaultMaxRequestSize    = 1 << 20 // 1MB
)

// Config holds all configuration for the application
type Config struct {
	Database       DatabaseConfig
	Server         ServerConfig
	Logging        LoggingConfig
	CORS           CORSConfig
	JWT            JWTConfig
	Admin          AdminConfig
	BcryptCost     int
	MigrationsPath string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port           int
	MaxRequestSize int64
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// AdminConfig holds the credentials of the admin account created at startup.
// Both fields empty disables seeding.
type AdminConfig struct {
	Email    string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	// Database configuration
	if cfg.Database.Host, err = requiredEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Port, err = requiredIntEnv("DB_PORT"); err != nil {
		return nil, err
	}
	if cfg.Database.User, err = requiredEnv("DB_USER"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requiredEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.DBName, err = requiredEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", defaultServerPort); err != nil {
		return nil, err
	}
	maxRequestSize, err := intEnv("MAX_REQUEST_SIZE", defaultMaxRequestSize)
	if err != nil {
		return nil, err
	}
	if maxRequestSize <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_SIZE must be positive")
	}
	cfg.Server.MaxRequestSize = int64(maxRequestSize)

	cfg.Logging.Level = envOr("LOG_LEVEL", defaultLogLevel)
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// JWT configuration
	if cfg.JWT.Secret, err = requiredEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.JWT.AccessTokenExpiry, err = durationEnv("JWT_ACCESS_TOKEN_EXPIRY", defaultAccessTokenExpiry); err != nil {
		return nil, err
	}
	if cfg.JWT.AccessTokenExpiry <= 0 {
		return nil, fmt.Errorf("JWT_ACCESS_TOKEN_EXPIRY must be positive")
	}

	if cfg.BcryptCost, err = intEnv("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
		return nil, err
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	// Admin seeding is all or nothing
	cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
	if (cfg.Admin.Email == "") != (cfg.Admin.Password == "") {
		return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}

	cfg.MigrationsPath = envOr("MIGRATIONS_PATH", defaultMigrationsPath)

	return cfg, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return c.Database.DSN()
}

// DSN returns the go-sql-driver/mysql connection string for these settings
func (d DatabaseConfig) DSN() string {
	mc := mysql.NewConfig()
	mc.User = d.User
	mc.Passwd = d.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", d.Host, d.Port)
	mc.DBName = d.DBName
	mc.ParseTime = true
	mc.MultiStatements = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// parseOrigins splits a comma-separated origin list, defaulting to "*"
func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requiredEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

func requiredIntEnv(key string) (int, error) {
	raw, err := requiredEnv(key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
