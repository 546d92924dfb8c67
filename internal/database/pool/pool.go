// Package pool tunes the connection pool behind the GORM handle.
package pool

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	appConfig "github.com/trenchcomp/teams-service/internal/config"
)

// Config bounds the connections the service holds against Postgres.
type Config struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig returns limits sized for a single instance serving
// the registration and feed endpoints.
func DefaultPoolConfig() Config {
	return Config{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}
}

// LoadPoolConfigFromEnv reads DB_POOL_* overrides on top of the defaults.
func LoadPoolConfigFromEnv() Config {
	def := DefaultPoolConfig()
	return Config{
		MaxOpenConns:    appConfig.GetEnvInt("DB_POOL_MAX_OPEN_CONNS", def.MaxOpenConns),
		MaxIdleConns:    appConfig.GetEnvInt("DB_POOL_MAX_IDLE_CONNS", def.MaxIdleConns),
		ConnMaxLifetime: appConfig.GetEnvDuration("DB_POOL_CONN_MAX_LIFETIME", def.ConnMaxLifetime),
		ConnMaxIdleTime: appConfig.GetEnvDuration("DB_POOL_CONN_MAX_IDLE_TIME", def.ConnMaxIdleTime),
	}
}

// SetupConnectionPool applies cfg to the sql.DB behind db.
func SetupConnectionPool(db *gorm.DB, cfg Config) error {
	if cfg.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got %d", cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must not be negative, got %d", cfg.MaxIdleConns)
	}
	if cfg.MaxIdleConns > cfg.MaxOpenConns {
		return fmt.Errorf("max idle connections (%d) above max open connections (%d)",
			cfg.MaxIdleConns, cfg.MaxOpenConns)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return nil
}
