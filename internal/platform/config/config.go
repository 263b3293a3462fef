// Package config loads the chrono CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config captures process level settings. Flags override Zone.
type Config struct {
	Zone        string `env:"CHRONO_ZONE,default=UTC" validate:"required"`
	LogLevel    string `env:"CHRONO_LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	Workers     int    `env:"CHRONO_WORKERS,default=4" validate:"min=1,max=64"`
	MetricsFile string `env:"CHRONO_METRICS_FILE"`
}

var validate = validator.New()

// FromEnv reads an optional .env file, then the process environment.
func FromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return FromEnvSet(es)
}

// FromEnvSet decodes and validates es.
func FromEnvSet(es env.EnvSet) (Config, error) {
	var cfg Config
	if err := env.Unmarshal(es, &cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
