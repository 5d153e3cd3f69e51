package input

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Mover is the part of the engine handle the router needs
type Mover interface {
	MoveBy(dx, dy int32) error
}

// Router issues one move command per recognised key-down event.
// It must be driven from the same goroutine that drives the render loop.
type Router struct {
	engine Mover
	logger *log.Logger
}

// NewRouter creates a router sending commands to m
func NewRouter(m Mover, logger *log.Logger) *Router {
	return &Router{engine: m, logger: logger}
}

// KeyDown handles a single key-down event. It reports whether a move command
// was issued; unrecognised keys are ignored without side effects.
func (r *Router) KeyDown(code string) (bool, error) {
	intent, ok := Route(code)
	if !ok {
		return false, nil
	}
	if err := r.engine.MoveBy(intent.DX, intent.DY); err != nil {
		return true, fmt.Errorf("move %s: %w", ActionName(intent.Action), err)
	}
	r.logger.Debug("move", "key", code, "dx", intent.DX, "dy", intent.DY)
	return true, nil
}
