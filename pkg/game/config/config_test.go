package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glyphgrid.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultYAML_MatchesDefaultConfig(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(default) error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default = %+v, want %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default Validate() error = %v", err)
	}
}

func TestLoad_CustomPathOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "seed: 99\nview:\n  width: 20\nbackend: tui\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed != 99 || cfg.View.Width != 20 || cfg.Backend != BackendTUI {
		t.Errorf("Load() = %+v, want seed 99, width 20, backend tui", cfg)
	}
	if cfg.View.Height != 45 || cfg.TilePx != 16 {
		t.Errorf("omitted keys = height %d, tile_px %d, want defaults 45, 16", cfg.View.Height, cfg.TilePx)
	}
}

func TestLoad_MissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() error = nil, want read error")
	}
}

func TestLoad_MalformedCustomPath(t *testing.T) {
	path := writeConfig(t, "view: [unterminated\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestLoad_FallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_UserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	dir := filepath.Join(home, ".glyphgrid")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("fps: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("FPS = %d, want 30 from user config", cfg.FPS)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":      func(c *Config) { c.View.Width = 0 },
		"negative tile":   func(c *Config) { c.TilePx = -1 },
		"zero fps":        func(c *Config) { c.FPS = 0 },
		"unknown backend": func(c *Config) { c.Backend = "curses" },
		"unknown engine":  func(c *Config) { c.Engine.Kind = "lua" },
		"wasm no path":    func(c *Config) { c.Engine.Kind = EngineWasm },
		"bad level":       func(c *Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() error = nil for %s", name)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Engine = EngineConfig{Kind: EngineWasm, WasmPath: "engine.wasm"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil for wasm with path", err)
	}
}
