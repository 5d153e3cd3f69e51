package main

import (
	"fmt"
	"io"

	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"glyphgrid/pkg/engine/handle"
	"glyphgrid/pkg/game/state"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Move the player by (1, 6) and print its position",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		s, err := state.NewSession(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer s.Close(cmd.Context())
		return runDemo(cmd.OutOrStdout(), s.Engine)
	},
}

func runDemo(w io.Writer, e handle.Engine) error {
	if err := e.MoveBy(1, 6); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, gotext.Get("Player: %d %d", e.PosX(), e.PosY()))
	return err
}
