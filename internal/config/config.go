package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"3000"`
	Timezone     string `env:"TIMEZONE" envDefault:"Local"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"console" validate:"oneof=console json"`
	Storage      string `env:"STORAGE_BACKEND" envDefault:"sqlite" validate:"oneof=sqlite redis"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./data/shifts.db"`

	Redis struct {
		Addr      string `env:"ADDR" envDefault:"localhost:6379"`
		Password  string `env:"PASSWORD"`
		DB        int    `env:"DB" envDefault:"0" validate:"gte=0"`
		KeyPrefix string `env:"KEY_PREFIX" envDefault:"shift-cycle:"`
	} `envPrefix:"REDIS_"`

	Slack struct {
		BotToken      string `env:"BOT_TOKEN,required,notEmpty"`
		SigningSecret string `env:"SIGNING_SECRET,required,notEmpty"`
	} `envPrefix:"SLACK_"`

	Announce struct {
		ChannelID string `env:"CHANNEL_ID"`
		Schedule  string `env:"SCHEDULE" envDefault:"0 8 * * *"`
	} `envPrefix:"ANNOUNCE_"`
}

// Load reads the configuration from the environment. Call godotenv.Load
// first to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			// the first error is enough to fix the environment
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location resolves TIMEZONE, which decides what "today" means
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
