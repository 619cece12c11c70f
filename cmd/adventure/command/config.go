package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/logger"
	"github.com/pixil98/go-errors"
)

// EnvLogLevel overrides log_level when set.
const EnvLogLevel = "LOG_LEVEL"

type Config struct {
	LogLevel  string          `json:"log_level"`
	LogFormat string          `json:"log_format"`
	World     WorldConfig     `json:"world"`
	Interface InterfaceConfig `json:"interface"`
	Metrics   MetricsConfig   `json:"metrics"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if _, err := logger.ParseLevel(c.logLevel()); err != nil {
		el.Add(fmt.Errorf("log_level: %w", err))
	}
	if err := logger.ValidateFormat(c.LogFormat); err != nil {
		el.Add(fmt.Errorf("log_format: %w", err))
	}

	el.Add(c.World.validate())
	el.Add(c.Interface.validate())
	el.Add(c.Metrics.validate())

	return el.Err()
}

func (c *Config) logLevel() string {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		return lvl
	}
	return c.LogLevel
}
