package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newWatchCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload definition files as they change until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := rootFlags.app
			patterns := app.Settings.Definitions
			if len(patterns) == 0 {
				return newCommandError("watch definitions", "no patterns", os.ErrInvalid, "Pass --definitions or set IDDL_DEFINITIONS.")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app.Log.WithFields(map[string]any{"patterns": patterns}).Info("watching definitions")
			return app.Engine.Watch(ctx, patterns...)
		},
	}
}
