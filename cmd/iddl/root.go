package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile  string
	verbose     bool
	logLevel    string
	storage     string
	storagePath string
	definitions []string
	metrics     bool

	app *AppContext
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "iddl",
		Short:         "iddl resolves design roles into atomic CSS and computes adaptive grid layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			app, err := newAppContext(cmd.Context(), cmd, flags)
			if err != nil {
				return err
			}
			flags.app = app
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if flags.app == nil {
				return nil
			}
			defer flags.app.Close()
			if flags.app.Settings.Metrics {
				return flags.app.WriteMetrics(cmd.ErrOrStderr())
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "Settings file (yaml, toml or json)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&flags.storage, "storage", "memory", "Layout state backend (memory, file, sqlite)")
	pf.StringVar(&flags.storagePath, "storage-path", "", "Path of the file or sqlite layout store")
	pf.StringSliceVarP(&flags.definitions, "definitions", "d", nil, "Glob patterns of role/preset definition files")
	pf.BoolVar(&flags.metrics, "metrics", false, "Print engine counters to stderr on exit")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newGridCmd(flags))
	cmd.AddCommand(newPresetsCmd(flags))
	cmd.AddCommand(newRolesCmd(flags))
	cmd.AddCommand(newStylesheetCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
