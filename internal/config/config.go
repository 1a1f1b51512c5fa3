// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Board dimensions used when a layout file is given.
	BoardWidth  int
	BoardHeight int

	// Output
	JSONFormat bool
	UseColour  bool
	ShowBoard  bool // Print the position after every applied move

	// Perft
	PerftDepth int
	Divide     bool
	Workers    int

	LayoutFilename string
	MovesFilename  string

	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:   1,
		BoardWidth:  chess.StandardWidth,
		BoardHeight: chess.StandardHeight,
		Workers:     runtime.NumCPU(),
		OutputFile:  os.Stdout,
		LogFile:     os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the settings can be used together.
func (c *Config) Validate() error {
	if c.BoardWidth < 1 || c.BoardHeight < 1 {
		return fmt.Errorf("board %dx%d: %w", c.BoardWidth, c.BoardHeight, errors.ErrInvalidConfig)
	}
	if c.BoardWidth > 26 {
		return fmt.Errorf("board width %d exceeds file letters a-z: %w", c.BoardWidth, errors.ErrInvalidConfig)
	}
	if c.PerftDepth < 0 {
		return fmt.Errorf("perft depth %d: %w", c.PerftDepth, errors.ErrInvalidConfig)
	}
	if c.Divide && c.PerftDepth == 0 {
		return fmt.Errorf("divide requires a perft depth: %w", errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
