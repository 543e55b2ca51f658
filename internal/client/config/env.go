package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig uses pointer fields so that only variables actually present in
// the environment override earlier configuration layers.
type envConfig struct {
	APIBaseURL     *string        `env:"JOBDECK_API_BASE_URL"`
	DatabaseDSN    *string        `env:"JOBDECK_DATABASE_DSN"`
	RequestTimeout *time.Duration `env:"JOBDECK_REQUEST_TIMEOUT"`
	LogLevel       *string        `env:"JOBDECK_LOG_LEVEL"`
}

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; a missing file is fine.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != nil {
		cfg.APIBaseURL = *ec.APIBaseURL
	}
	if ec.DatabaseDSN != nil {
		cfg.DatabaseDSN = *ec.DatabaseDSN
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
}
