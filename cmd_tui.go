package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glyphgrid/pkg/engine/terminal"
	"glyphgrid/pkg/game/config"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run in the terminal",
	Long: `Run the session in the terminal, one character cell per tile.

Controls:
  Arrow keys   - Move the player
  Esc/Q/Ctrl+C - Quit`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !terminal.IsTerminal(os.Stdout) {
		return fmt.Errorf("tui needs an interactive terminal")
	}
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	cfg.Backend = config.BackendTUI

	if !terminal.Fits(cfg.View.Width, cfg.View.Height) {
		w, h := terminal.GetSize()
		logger.Warn("terminal smaller than view", "terminal", fmt.Sprintf("%dx%d", w, h), "view", cfg.HandleView())
	}
	return runSession(cfg, logger)
}
