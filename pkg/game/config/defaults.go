package config

import (
	_ "embed"

	"glyphgrid/pkg/engine/handle"
)

//go:embed defaults/glyphgrid.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		Seed: 1,
		View: ViewConfig{
			Width:  handle.DefaultWidth,
			Height: handle.DefaultHeight,
		},
		TilePx:  handle.DefaultTilePx,
		FPS:     60,
		Title:   "glyphgrid",
		Backend: BackendEbiten,
		Engine: EngineConfig{
			Kind: EngineNative,
		},
		Log: LogConfig{
			Level: "info",
		},
		Locale: LocaleConfig{
			Dir:  "locales",
			Lang: "en_GB",
		},
	}
}

// DefaultYAML returns the embedded default configuration file
func DefaultYAML() []byte {
	return defaultYAML
}
