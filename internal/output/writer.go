// Package output renders engine state as text or JSON.
package output

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// StateWriter is the interface for writing engine state to output.
type StateWriter interface {
	// WriteState writes the current position of e.
	WriteState(e *engine.Engine) error
}

// NewStateWriter returns the writer selected by cfg.
func NewStateWriter(w io.Writer, cfg *config.Config) StateWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.UseColour)
}
