package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Environment represents the current runtime environment.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment. CI is detected
// automatically; the rest come from the ENV variable.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Document store configuration
	MongoURI string
	MongoDB  string

	// Redis configuration (rate limiting; optional)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Auth configuration
	JWTSecret  string
	BcryptCost int

	// S3 configuration (recipe image uploads; optional)
	S3Bucket  string
	AWSRegion string

	// Recipe consistency and authorization policy
	RecipeResolveOnRead bool
	RecipeOwnerOnly     bool
}

// LoadConfig builds a Config from environment variables, falling back to
// Docker secret files for sensitive values in production deployments.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:          getValue("SERVER_HOST", ""),
		ServerPort:          getValue("SERVER_PORT", "3000"),
		MongoURI:            getValue("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:             getValue("MONGO_DB", "forkful"),
		RedisHost:           getValue("REDIS_HOST", ""),
		RedisPort:           getValue("REDIS_PORT", "6379"),
		RedisPassword:       getValue("REDIS_PASSWORD", ""),
		RedisURL:            getValue("REDIS_URL", ""),
		JWTSecret:           getValue("JWT_SECRET", ""),
		S3Bucket:            getValue("S3_BUCKET_NAME", ""),
		AWSRegion:           getValue("AWS_REGION", ""),
		RecipeResolveOnRead: getBool("RECIPE_RESOLVE_ON_READ", true),
		RecipeOwnerOnly:     getBool("RECIPE_OWNER_ONLY", false),
	}

	var err error
	cfg.RedisDB, err = getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	cfg.BcryptCost, err = getInt("BCRYPT_COST", 10)
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// getValue reads an environment variable, then the matching Docker secret
// file, then falls back to the default.
func getValue(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	if v := readSecret(strings.ToLower(name)); v != "" {
		return v
	}
	return fallback
}

func getInt(name string, fallback int) (int, error) {
	raw := getValue(name, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return v, nil
}

func getBool(name string, fallback bool) bool {
	switch strings.ToLower(getValue(name, "")) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return fallback
	}
}

// readSecret reads a Docker secret from the secrets directory.
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

// ValidateConfig rejects configurations the server cannot safely run with.
func ValidateConfig(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < 16 && GetEnvironment() == Production {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters in production")
	}
	if cfg.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if cfg.MongoDB == "" {
		return fmt.Errorf("MONGO_DB is required")
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric, got %q", cfg.ServerPort)
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cfg.BcryptCost)
	}
	return nil
}
