package config

import (
	"fmt"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
	// RealtimeEnabled toggles the websocket broadcast layer. When false
	// the /ws endpoint is not registered and clients poll the feed.
	RealtimeEnabled bool
	// CORSAllowOrigins lists allowed origins; ["*"] allows all.
	CORSAllowOrigins []string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:           LoadServerConfigFromEnv(),
		Logger:           LoadLoggerConfigFromEnv(),
		GinMode:          GetEnv("GIN_MODE", "release"),
		RealtimeEnabled:  GetEnvBool("REALTIME_ENABLED", true),
		CORSAllowOrigins: splitOrigins(GetEnv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	if len(c.CORSAllowOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOW_ORIGINS must list at least one origin")
	}

	return nil
}
