// Package renderer defines the display hosts a session can run on.
package renderer

import (
	"context"
	"errors"
)

// ErrNoRenderer is returned when no renderer has been selected
var ErrNoRenderer = errors.New("no renderer selected")

// Renderer is a display backend. Implementations include the ebiten window
// and the terminal.
type Renderer interface {
	// Init prepares the backend (fonts, window, terminal)
	Init() error

	// Run drives the session until ctx is cancelled, the user quits or a
	// frame fails
	Run(ctx context.Context) error

	// GetViewportSize returns the visible grid dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current == nil {
		return ErrNoRenderer
	}
	return Current.Init()
}

// Run runs the current renderer
func Run(ctx context.Context) error {
	if Current == nil {
		return ErrNoRenderer
	}
	return Current.Run(ctx)
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 0, 0
}
