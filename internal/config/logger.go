package config

import "fmt"

// LoggerConfig controls how the service logger is built.
type LoggerConfig struct {
	// Level is the minimum level emitted: debug, info, warn or error.
	Level string
	// Format selects the encoder: json for deployments, console for
	// local development.
	Format string
	// Output is where log lines go, stdout or stderr.
	Output string
}

// LoadLoggerConfigFromEnv reads LOG_* variables, defaulting to
// info-level json on stdout.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", "json"),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate rejects level and format values the logger cannot build.
func (c LoggerConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be: debug, info, warn, error)", c.Level)
	}

	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s (must be: json, console)", c.Format)
	}

	return nil
}

// IsProduction reports whether the configuration describes a production
// deployment, json encoding at info or quieter.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}
