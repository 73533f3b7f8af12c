// Package config loads the shop's runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Color modes accepted by JUNKMART_COLOR
const (
	ColorAuto      = "auto"
	Color256       = "256"
	ColorTrueColor = "truecolor"
)

// Valid frame rate range
const (
	MinFPS = 10
	MaxFPS = 120
)

type Config struct {
	Seed      uint64     `env:"JUNKMART_SEED" envDefault:"0"`
	Muted     bool       `env:"JUNKMART_MUTED" envDefault:"false"`
	Volume    float64    `env:"JUNKMART_VOLUME" envDefault:"0.6"`
	FPS       int        `env:"JUNKMART_FPS" envDefault:"30"`
	Debug     bool       `env:"JUNKMART_DEBUG" envDefault:"false"`
	LogLevel  slog.Level `env:"JUNKMART_LOG_LEVEL" envDefault:"INFO"`
	LogDir    string     `env:"JUNKMART_LOG_DIR" envDefault:"logs"`
	Color     string     `env:"JUNKMART_COLOR" envDefault:"auto"`
	SkipTitle bool       `env:"JUNKMART_SKIP_TITLE" envDefault:"false"`
}

// Load reads optional dotenv files, then parses and validates the environment
// Without arguments ./.env is tried; a missing file is not an error
// Variables already set in the environment win over dotenv values
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading dotenv: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges that the env tags cannot express
func (c *Config) Validate() error {
	var errs []error
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("JUNKMART_VOLUME %v out of range [0,1]", c.Volume))
	}
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		errs = append(errs, fmt.Errorf("JUNKMART_FPS %d out of range [%d,%d]", c.FPS, MinFPS, MaxFPS))
	}
	switch c.Color {
	case ColorAuto, Color256, ColorTrueColor:
	default:
		errs = append(errs, fmt.Errorf("JUNKMART_COLOR %q is not one of auto, 256, truecolor", c.Color))
	}
	if c.LogDir == "" {
		errs = append(errs, errors.New("JUNKMART_LOG_DIR is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// FrameInterval is the ticker period for the configured frame rate
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
