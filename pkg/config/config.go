// Package config loads launcher settings from the environment.
package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the launcher's environment variables.
const EnvPrefix = "INVESALIUS"

// Config binds the launcher settings.
type Config struct {
	LogLevel          string `mapstructure:"LOG_LEVEL"`           // logrus level for progress tracing
	PropagateExitCode bool   `mapstructure:"PROPAGATE_EXIT_CODE"` // exit with the interpreter's status
}

// Load reads INVESALIUS_LOG_LEVEL and INVESALIUS_PROPAGATE_EXIT_CODE.
func Load() (cfg Config, err error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	// Defaults also register the keys so Unmarshal sees their env values.
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("PROPAGATE_EXIT_CODE", false)
	v.AutomaticEnv()

	if err = v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	if _, err = logrus.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid %s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	return cfg, nil
}

// NewLogger returns a logger writing to w at the configured level.
func NewLogger(cfg Config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}
