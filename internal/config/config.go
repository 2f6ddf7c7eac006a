package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" env-default:":8080"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Otel     Otel
	Game     Game
}

type Otel struct {
	Enabled       bool   `env:"OTEL_ENABLED" env-default:"true"`
	CollectorAddr string `env:"OTEL_COLLECTOR_ADDR" env-default:"otel-collector:4317"`
	TraceStdout   bool   `env:"TRACE_STDOUT" env-default:"false"`
}

// Game holds the defaults for new sessions.
type Game struct {
	Smart    bool          `env:"SMART_COMPUTER" env-default:"false"`
	DelayMin time.Duration `env:"COMPUTER_DELAY_MIN" env-default:"300ms"`
	DelayMax time.Duration `env:"COMPUTER_DELAY_MAX" env-default:"800ms"`
}

var ErrInvalidConfig = errors.New("invalid config")

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad is Load that panics.
func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}
	return config
}

func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Game.DelayMin < 0 || c.Game.DelayMax < 0 {
		return fmt.Errorf("%w: computer delay must not be negative", ErrInvalidConfig)
	}
	if c.Game.DelayMin > c.Game.DelayMax {
		return fmt.Errorf("%w: COMPUTER_DELAY_MIN %s is above COMPUTER_DELAY_MAX %s",
			ErrInvalidConfig, c.Game.DelayMin, c.Game.DelayMax)
	}
	return nil
}

func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown LOG_LEVEL %q", ErrInvalidConfig, c.LogLevel)
	}
}
