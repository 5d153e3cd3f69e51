// Package state wires one play session together: the engine, the
// compositor, the input router and the frame scheduler.
package state

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"glyphgrid/pkg/engine/handle"
	"glyphgrid/pkg/engine/input"
	"glyphgrid/pkg/game/compositor"
	"glyphgrid/pkg/game/config"
	"glyphgrid/pkg/game/loop"
	"glyphgrid/pkg/game/sim"
	"glyphgrid/pkg/game/wasmhost"
)

const maxMessages = 5

// closer is implemented by engines holding runtime resources
type closer interface {
	Close(ctx context.Context) error
}

// Session is a running game
type Session struct {
	Config     config.Config
	View       handle.View
	Engine     handle.Engine
	Compositor *compositor.Compositor
	Router     *input.Router
	Scheduler  *loop.Scheduler
	Logger     *log.Logger

	Messages []string
}

// EngineConstructor picks the engine implementation named by cfg
func EngineConstructor(ctx context.Context, cfg config.EngineConfig, logger *log.Logger) (handle.Constructor, error) {
	switch cfg.Kind {
	case config.EngineNative, "":
		return sim.Constructor, nil
	case config.EngineWasm:
		return wasmhost.Constructor(ctx, cfg.WasmPath, wasmhost.Options{WASI: cfg.WASI, Logger: logger}), nil
	default:
		return nil, fmt.Errorf("unknown engine kind %q", cfg.Kind)
	}
}

// NewSession constructs the engine and everything that drives it
func NewSession(ctx context.Context, cfg config.Config, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	ctor, err := EngineConstructor(ctx, cfg.Engine, logger)
	if err != nil {
		return nil, err
	}
	view := cfg.HandleView()
	e, err := ctor(cfg.Seed, view)
	if err != nil {
		return nil, fmt.Errorf("construct %s engine: %w", cfg.Engine.Kind, err)
	}
	logger.Info("engine constructed", "kind", cfg.Engine.Kind, "seed", cfg.Seed, "view", view)
	return Assemble(cfg, e, logger), nil
}

// Assemble builds a session around an already constructed engine
func Assemble(cfg config.Config, e handle.Engine, logger *log.Logger) *Session {
	view := cfg.HandleView()
	comp := compositor.New(cfg.TilePx, logger)
	return &Session{
		Config:     cfg,
		View:       view,
		Engine:     e,
		Compositor: comp,
		Router:     input.NewRouter(e, logger),
		Scheduler:  loop.New(e, view, comp, logger),
		Logger:     logger,
		Messages:   make([]string, 0),
	}
}

// KeyDown routes a key-down event to the engine
func (s *Session) KeyDown(code string) error {
	moved, err := s.Router.KeyDown(code)
	if err != nil {
		return err
	}
	if moved {
		s.AddMessage(code)
	}
	return nil
}

// Position returns the player's reported position
func (s *Session) Position() (x, y int32) {
	return s.Engine.PosX(), s.Engine.PosY()
}

// AddMessage appends to the session's short message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// Close releases engine resources
func (s *Session) Close(ctx context.Context) error {
	if c, ok := s.Engine.(closer); ok {
		return c.Close(ctx)
	}
	return nil
}
