package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

var ErrSeedInProduction = errors.New("RANDOM_SEED must not be set in production environment")

type Config struct {
	Port            string        `env:"PORT"                 envDefault:"8080"`
	Env             string        `env:"ENV"                  envDefault:"development"`
	RandomSeed      *uint64       `env:"RANDOM_SEED"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	EnableGzip      bool          `env:"ENABLE_GZIP"          envDefault:"false"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED"      envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"     envDefault:"10s"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES"       envDefault:"1048576"`
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	// A fixed seed makes every response predictable.
	if cfg.Env == "production" && cfg.RandomSeed != nil {
		return Config{}, ErrSeedInProduction
	}

	return cfg, nil
}
