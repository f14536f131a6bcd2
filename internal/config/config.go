package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"emerald-console/internal/config/configs"
)

// Config aggregates all configuration sections of the console. Fields are
// populated from environment variables; nested structs are parsed with the
// prefix given in their envPrefix tag. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (prod, dev). It is only logged.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the browser-facing server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// API points at the remote marketplace API (API_*).
	API configs.API `envPrefix:"API_"`

	// Console tunes sessions and the keyword search (CONSOLE_*).
	Console configs.Console `envPrefix:"CONSOLE_"`

	// Psql configures the optional activity log database (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Metrics toggles the Prometheus endpoint (METRICS_*).
	Metrics configs.Metrics `envPrefix:"METRICS_"`
}

// Load reads configuration from the environment. Variables from an
// optional .env file in the working directory are loaded first; variables
// already set in the environment win.
func Load(files ...string) (Config, error) {
	// A missing .env file is the normal case outside development.
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
