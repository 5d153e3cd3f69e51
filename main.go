// glyphgrid renders a tile-based simulation engine as a monospaced glyph
// grid, in a window or in the terminal.
//
// Usage:
//
//	glyphgrid                - Open the game window (same as run)
//	glyphgrid run            - Run with the configured backend
//	glyphgrid tui            - Run in the terminal
//	glyphgrid snapshot       - Render one frame to PNG, HTML, ANSI or text
//	glyphgrid demo           - Move the player once and print its position
//	glyphgrid version        - Print the build id
//
// Global flags:
//
//	--config <path>       - Config file (default search: ~/.glyphgrid/config.yaml, ./configs/glyphgrid.yaml)
//	--seed <value>        - World seed
//	--width, --height     - View size in tiles
//	--log-level <level>   - debug, info, warn or error
//	--engine-wasm <path>  - Load the engine from a WebAssembly module
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"glyphgrid/pkg/engine/input"
	"glyphgrid/pkg/game/config"
)

// Set at build time with -ldflags "-X main.version=... -X main.commit=..."
var (
	version = "dev"
	commit  = "none"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       uint32
	flagWidth      int
	flagHeight     int
	flagLogLevel   string
	flagEngineWasm string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "glyphgrid",
	Short:        "Glyph grid renderer for tile-based simulation engines",
	SilenceUsage: true,
	RunE:         runRun,
}

const rootIntro = `glyphgrid drives a simulation engine frame by frame and paints its
background, foreground and glyph buffers as a grid of coloured tiles.`

const rootExamples = `Examples:
  glyphgrid
  glyphgrid tui --seed 42
  glyphgrid run --engine-wasm ./engine.wasm
  glyphgrid snapshot --out frame.png`

// controlsHelp lists the key bindings, one action per line
func controlsHelp() string {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for act := range byAction {
		actions = append(actions, act)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	var b strings.Builder
	b.WriteString("Controls:\n")
	for _, act := range actions {
		fmt.Fprintf(&b, "  %-12s - %s\n", strings.Join(byAction[act], "/"), input.ActionName(act))
	}
	fmt.Fprintf(&b, "  %-12s - %s\n", "Esc/Q", "Quit (terminal)")
	return b.String()
}

func init() {
	rootCmd.Long = rootIntro + "\n\n" + controlsHelp() + "\n" + rootExamples

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.Uint32Var(&flagSeed, "seed", 0, "World seed (overrides config)")
	pf.IntVar(&flagWidth, "width", 0, "View width in tiles (overrides config)")
	pf.IntVar(&flagHeight, "height", 0, "View height in tiles (overrides config)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagEngineWasm, "engine-wasm", "", "Run the engine from a WebAssembly module")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildID identifies the binary in logs and version output
func buildID() string {
	return fmt.Sprintf("%s (%s)", version, commit)
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	applyOverrides(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyOverrides(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("width") {
		cfg.View.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.View.Height = flagHeight
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("engine-wasm") {
		cfg.Engine.Kind = config.EngineWasm
		cfg.Engine.WasmPath = flagEngineWasm
	}
}

func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "glyphgrid",
	})
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// initLocale loads gettext catalogs when the locale directory exists.
// Without them gotext returns message ids unchanged.
func initLocale(cfg config.Config, logger *log.Logger) {
	if cfg.Locale.Dir == "" {
		return
	}
	if _, err := os.Stat(cfg.Locale.Dir); err != nil {
		logger.Debug("locale directory not found, using built-in strings", "dir", cfg.Locale.Dir)
		return
	}
	gotext.Configure(cfg.Locale.Dir, cfg.Locale.Lang, "default")
}

// setup is shared by every command that runs a session
func setup(cmd *cobra.Command) (config.Config, *log.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, nil, err
	}
	logger := newLogger(cfg)
	initLocale(cfg, logger)
	logger.Info("glyphgrid starting", "build", buildID())
	return cfg, logger, nil
}
