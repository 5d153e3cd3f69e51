package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"glyphgrid/pkg/game/config"
	"glyphgrid/pkg/game/renderer"
	"glyphgrid/pkg/game/renderer/ebiten"
	"glyphgrid/pkg/game/renderer/tui"
	"glyphgrid/pkg/game/state"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run with the configured backend",
	Long: `Open a session on the backend named by the config (ebiten window by
default, or the terminal when backend is tui).`,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	return runSession(cfg, logger)
}

func runSession(cfg config.Config, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := state.NewSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close(context.Background())

	switch cfg.Backend {
	case config.BackendTUI:
		renderer.SetRenderer(tui.New(s, nil))
	default:
		renderer.SetRenderer(ebiten.New(s))
	}

	if err := renderer.Init(); err != nil {
		return fmt.Errorf("init %s renderer: %w", cfg.Backend, err)
	}
	if err := renderer.Run(ctx); err != nil {
		logger.Error("session ended", "err", err)
		return err
	}

	x, y := s.Position()
	logger.Info("session ended", "frames", s.Scheduler.Frames(), "x", x, "y", y)
	return nil
}
