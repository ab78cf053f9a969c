// Package config provides configuration for the xadrez console.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/xadrez-go/internal/engine"
	"github.com/lgbarn/xadrez-go/internal/errors"
)

// Environment variables that disable coloured output.
const (
	EnvNoColor       = "NO_COLOR"
	EnvXadrezNoColor = "XADREZ_NO_COLOR"
)

// DefaultLogLevel keeps normal play quiet.
const DefaultLogLevel = "warn"

// Config holds all console configuration.
type Config struct {
	// Output controls how the board is drawn.
	Output *OutputConfig

	// StartFEN is the starting position; empty means the standard setup.
	StartFEN string

	// LogLevel is an apex/log level name.
	LogLevel string

	// LogFile is a path for log output; empty means stderr.
	LogFile string

	// Input is where squares are read from.
	Input io.Reader
}

// NewConfig creates a new Config with default values. Colour is disabled
// when NO_COLOR or XADREZ_NO_COLOR is set.
func NewConfig() *Config {
	output := NewOutputConfig()
	if colourDisabledByEnv() {
		output.Colour = false
	}
	return &Config{
		Output:   output,
		LogLevel: DefaultLogLevel,
		Input:    os.Stdin,
	}
}

// Validate checks the log level and the starting position.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.NewMatchFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	if c.Input == nil || c.Output == nil || c.Output.Writer == nil {
		return fmt.Errorf("input and output are required: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// NewMatch starts a match from StartFEN, or from the standard setup.
func (c *Config) NewMatch() (*engine.Match, error) {
	if c.StartFEN == "" {
		return engine.NewMatch(), nil
	}
	return engine.NewMatchFromFEN(c.StartFEN)
}

func colourDisabledByEnv() bool {
	for _, key := range []string{EnvNoColor, EnvXadrezNoColor} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}
