package config

import (
	"fmt"
	"os"
	"time"

	"levelup/utils"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port            string
	GinMode         string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

type RedisConfig struct {
	// URL is optional; without it activity logging is serialized in-process.
	URL     string
	LockTTL time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            utils.GetEnvAsString("PORT", "8001"),
			GinMode:         utils.GetEnvAsString("GIN_MODE", "release"),
			CORSOrigins:     utils.GetEnvAsSlice("CORS_ORIGINS", []string{"*"}),
			ShutdownTimeout: utils.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: LoadDatabaseConfig(),
		Redis: RedisConfig{
			URL:     utils.GetEnvAsString("REDIS_URL", ""),
			LockTTL: utils.GetEnvAsDuration("PROGRESS_LOCK_TTL", 5*time.Second),
		},
		Log: LogConfig{
			Level:  utils.GetEnvAsString("LOG_LEVEL", "info"),
			Format: utils.GetEnvAsString("LOG_FORMAT", "text"),
		},
	}

	switch cfg.Server.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q: must be debug, release or test", cfg.Server.GinMode)
	}
	return cfg, nil
}
