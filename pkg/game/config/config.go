// Package config provides YAML-based session configuration for glyphgrid.
package config

import (
	"fmt"

	"glyphgrid/pkg/engine/handle"
)

// Backend names
const (
	BackendEbiten = "ebiten"
	BackendTUI    = "tui"
)

// Engine kinds
const (
	EngineNative = "native"
	EngineWasm   = "wasm"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
}

// Config is the full session configuration
type Config struct {
	Seed    uint32       `yaml:"seed"`
	View    ViewConfig   `yaml:"view"`
	TilePx  int          `yaml:"tile_px"`
	FPS     int          `yaml:"fps"`
	Title   string       `yaml:"title"`
	Backend string       `yaml:"backend"`
	Engine  EngineConfig `yaml:"engine"`
	Log     LogConfig    `yaml:"log"`
	Locale  LocaleConfig `yaml:"locale"`
}

// ViewConfig is the viewport size in tiles
type ViewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EngineConfig selects the simulation engine
type EngineConfig struct {
	Kind     string `yaml:"kind"`
	WasmPath string `yaml:"wasm_path"`
	WASI     bool   `yaml:"wasi"`
}

// LogConfig controls the logger
type LogConfig struct {
	Level string `yaml:"level"`
}

// LocaleConfig points at gettext catalogs
type LocaleConfig struct {
	Dir  string `yaml:"dir"`
	Lang string `yaml:"lang"`
}

// HandleView converts the configured view to engine geometry
func (c Config) HandleView() handle.View {
	return handle.View{Width: c.View.Width, Height: c.View.Height}
}

// Validate reports the first invalid field
func (c Config) Validate() error {
	if err := c.HandleView().Validate(); err != nil {
		return err
	}
	if c.TilePx <= 0 {
		return fmt.Errorf("tile_px must be positive, got %d", c.TilePx)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	switch c.Backend {
	case BackendEbiten, BackendTUI:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendEbiten, BackendTUI)
	}
	switch c.Engine.Kind {
	case EngineNative:
	case EngineWasm:
		if c.Engine.WasmPath == "" {
			return fmt.Errorf("engine.kind %s requires engine.wasm_path", EngineWasm)
		}
	default:
		return fmt.Errorf("unknown engine kind %q (want %s or %s)", c.Engine.Kind, EngineNative, EngineWasm)
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
