// Package config loads application settings from an optional YAML file,
// an optional .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/AkatukiSora/gto-poker-ref/internal/locale"
	"github.com/AkatukiSora/gto-poker-ref/internal/ranges"
)

// Config holds every tunable of the reference tool.
type Config struct {
	Debug    bool     `yaml:"debug" env:"GTOREF_DEBUG" env-default:"false"`
	LogFile  string   `yaml:"log_file" env:"GTOREF_LOG_FILE"`
	Locale   string   `yaml:"locale" env:"GTOREF_LOCALE" env-default:"en"`
	Currency string   `yaml:"currency" env:"GTOREF_CURRENCY" env-default:"€"`
	Defaults Defaults `yaml:"defaults"`
}

// Defaults are the values used when a command flag is not given.
type Defaults struct {
	Pot      float64 `yaml:"pot" env:"GTOREF_DEFAULT_POT" env-default:"100"`
	Bet      float64 `yaml:"bet" env:"GTOREF_DEFAULT_BET" env-default:"50"`
	Position string  `yaml:"position" env:"GTOREF_DEFAULT_POSITION" env-default:"BTN"`
	Action   string  `yaml:"action" env:"GTOREF_DEFAULT_ACTION" env-default:"RFI"`
}

// Load reads the configuration. Variables from dotenv (when the file exists)
// are exported first; the YAML file at path, if any, is then read and the
// environment overrides it.
func Load(path, dotenv string) (*Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	cfg := &Config{}
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated fields and numeric defaults.
func (c *Config) Validate() error {
	if _, err := locale.New(c.Locale); err != nil {
		return fmt.Errorf("config locale: %w", err)
	}
	if c.Defaults.Pot <= 0 {
		return fmt.Errorf("config defaults.pot must be positive, got %v", c.Defaults.Pot)
	}
	if c.Defaults.Bet < 0 {
		return fmt.Errorf("config defaults.bet must not be negative, got %v", c.Defaults.Bet)
	}
	if _, err := ranges.ParsePosition(c.Defaults.Position); err != nil {
		return fmt.Errorf("config defaults.position: %w", err)
	}
	if _, err := ranges.ParseAction(c.Defaults.Action); err != nil {
		return fmt.Errorf("config defaults.action: %w", err)
	}
	return nil
}
