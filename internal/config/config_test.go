package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/commerce-mock/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		cfg, err := config.New[config.HTTP]()
		require.NoError(t, err)

		assert.Equal(t, uint32(3000), cfg.Port)
		assert.True(t, cfg.Swagger)
	})

	t.Run("Should read values from the environment", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "8080")
		t.Setenv("STORAGE_DIR", "/tmp/commerce")
		t.Setenv("STORAGE_SEED", "false")

		type Config struct {
			HTTP    config.HTTP
			Storage config.Storage
		}
		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, uint32(8080), cfg.HTTP.Port)
		assert.Equal(t, "/tmp/commerce", cfg.Storage.Dir)
		assert.False(t, cfg.Storage.Seed)
	})

	t.Run("Should reject an unknown log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "YAML")

		_, err := config.New[config.Log]()
		assert.Error(t, err)
	})
}

func TestSMTPEnabled(t *testing.T) {
	assert.False(t, config.SMTP{}.Enabled())
	assert.True(t, config.SMTP{Host: "mail.example.com"}.Enabled())
}
