package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("APP_DB_USERNAME", "")
	t.Setenv("APP_DB_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_DB_USERNAME")
}

func TestLoadRequiresPassword(t *testing.T) {
	t.Setenv("APP_DB_USERNAME", "microblog")
	t.Setenv("APP_DB_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_DB_PASSWORD")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_DB_USERNAME", "microblog")
	t.Setenv("APP_DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Viper.GetString("APP_DB_HOST"))
	assert.Equal(t, 5432, cfg.Viper.GetInt("APP_DB_PORT"))
	assert.Equal(t, "microblog", cfg.Viper.GetString("APP_DB_NAME"))
	assert.Equal(t, "disable", cfg.Viper.GetString("APP_DB_SSLMODE"))
	assert.Equal(t, 8000, cfg.Viper.GetInt("APP_SERVER_PORT"))
}

func TestLoadEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("APP_DB_USERNAME", "microblog")
	t.Setenv("APP_DB_PASSWORD", "secret")
	t.Setenv("APP_DB_HOST", "db.internal")
	t.Setenv("APP_DB_PORT", "5433")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Viper.GetString("APP_DB_HOST"))
	assert.Equal(t, 5433, cfg.Viper.GetInt("APP_DB_PORT"))
}
