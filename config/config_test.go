package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SECRETS_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "forkful", cfg.MongoDB)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.True(t, cfg.RecipeResolveOnRead)
	assert.False(t, cfg.RecipeOwnerOnly)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("MONGO_DB", "forkful_test")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("RECIPE_RESOLVE_ON_READ", "false")
	t.Setenv("RECIPE_OWNER_ONLY", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "forkful_test", cfg.MongoDB)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.False(t, cfg.RecipeResolveOnRead)
	assert.True(t, cfg.RecipeOwnerOnly)
}

func TestLoadConfigReadsSecretFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-secret-file\n"), 0o600))
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret-file", cfg.JWTSecret)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			JWTSecret:  "test-secret",
			MongoURI:   "mongodb://localhost:27017",
			MongoDB:    "forkful",
			ServerPort: "3000",
			BcryptCost: 10,
		}
	}

	require.NoError(t, ValidateConfig(valid()))

	cfg := valid()
	cfg.JWTSecret = ""
	assert.Error(t, ValidateConfig(cfg))

	cfg = valid()
	cfg.ServerPort = "not-a-port"
	assert.Error(t, ValidateConfig(cfg))

	cfg = valid()
	cfg.BcryptCost = 99
	assert.Error(t, ValidateConfig(cfg))
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}

func TestLoadConfigBadInteger(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("BCRYPT_COST", "plenty")

	_, err := LoadConfig()
	assert.Error(t, err)
}
