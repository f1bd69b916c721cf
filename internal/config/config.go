// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application.
// Values are populated by Load from environment variables, with a .env file
// honored when present.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	ServiceName string `env:"SERVICE_NAME" envDefault:"carpal"`

	// CurrentUser is the display name acting as the signed-in user.
	// There is no authentication layer; one logical user drives the app.
	CurrentUser string `env:"CURRENT_USER" envDefault:"Lyles Zhang"`

	// LinkScheme is the deep-link scheme for shared trips
	// (LinkScheme://trip/<trip-id>).
	LinkScheme string `env:"LINK_SCHEME" envDefault:"carpal"`

	// FinishPromptDelay is how long after acceptance the "did you finish the
	// ride?" prompt is delivered. Short on purpose: it simulates the trip
	// happening rather than tracking real elapsed trip time.
	FinishPromptDelay time.Duration `env:"FINISH_PROMPT_DELAY" envDefault:"3s"`

	// SnowflakeMachineID seeds the message-ID generator (0–1023).
	SnowflakeMachineID int64 `env:"SNOWFLAKE_MACHINE_ID" envDefault:"1"`

	LoggerLevel  string `env:"LOGGER_LEVEL" envDefault:"info"`
	LoggerFormat string `env:"LOGGER_FORMAT" envDefault:"text"` // text, json
}

// Load reads configuration from the environment and returns a Config.
// A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.FinishPromptDelay <= 0 {
		return Config{}, fmt.Errorf("config.Load: FINISH_PROMPT_DELAY must be positive")
	}
	return cfg, nil
}

// IsDevelopment reports whether the app runs in the development environment.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}
