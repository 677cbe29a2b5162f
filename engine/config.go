package engine

import (
	"github.com/charmbracelet/log"
)

// Config carries the loop tunables. Immutable once Run starts.
type Config struct {
	// FPS is the target frame rate. The per-frame time budget is derived
	// from it once at loop start. Default 30.
	FPS int

	// Logger receives frame-loop diagnostics. It must not write to the
	// terminal the loop owns; point it at a file. Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns the documented defaults
func DefaultConfig() Config {
	return Config{FPS: 30}
}
