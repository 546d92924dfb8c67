package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		os.Unsetenv("SERVER_HOST")
		os.Unsetenv("PORT")

		cfg := LoadServerConfigFromEnv()

		assert.Equal(t, "", cfg.Host)
		assert.Equal(t, ":5000", cfg.Port)
		assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 120*time.Second, cfg.IdleTimeout)
	})

	t.Run("port from environment", func(t *testing.T) {
		os.Setenv("PORT", "8080")
		defer os.Unsetenv("PORT")

		cfg := LoadServerConfigFromEnv()

		assert.Equal(t, "8080", cfg.Port)
	})
}

func TestServerConfig_GetAddress(t *testing.T) {
	t.Run("no host", func(t *testing.T) {
		cfg := ServerConfig{Port: ":5000"}
		assert.Equal(t, ":5000", cfg.GetAddress())
	})

	t.Run("port without colon", func(t *testing.T) {
		cfg := ServerConfig{Port: "5000"}
		assert.Equal(t, ":5000", cfg.GetAddress())
	})

	t.Run("host and port", func(t *testing.T) {
		cfg := ServerConfig{Host: "127.0.0.1", Port: ":5000"}
		assert.Equal(t, "127.0.0.1:5000", cfg.GetAddress())
	})
}

func TestServerConfig_Validate(t *testing.T) {
	valid := ServerConfig{
		Port:            ":5000",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     2 * time.Minute,
		ShutdownTimeout: 15 * time.Second,
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("empty port", func(t *testing.T) {
		cfg := valid
		cfg.Port = ":"
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive timeouts", func(t *testing.T) {
		for _, mutate := range []func(*ServerConfig){
			func(c *ServerConfig) { c.ReadTimeout = 0 },
			func(c *ServerConfig) { c.WriteTimeout = -time.Second },
			func(c *ServerConfig) { c.IdleTimeout = 0 },
			func(c *ServerConfig) { c.ShutdownTimeout = 0 },
		} {
			cfg := valid
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		}
	})
}
