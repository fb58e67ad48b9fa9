package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/iddl/internal/layout/resize"
	"github.com/alexisbeaulieu97/iddl/internal/tui/preview"
)

type previewOptions struct {
	preset  string
	panel   string
	regions []string
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively resize and collapse the regions of a preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags.app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.preset, "preset", "Studio", "Layout preset name")
	cmd.Flags().StringVar(&opts.panel, "panel", "", "Panel definition to drive (default: first panel on the preset, else derived)")
	cmd.Flags().StringSliceVar(&opts.regions, "region", nil, "Initially present regions (default: all)")

	return cmd
}

func runPreview(cmd *cobra.Command, app *AppContext, opts *previewOptions) error {
	e := app.Engine
	p, ok := e.Grids().Preset(opts.preset)
	if !ok {
		return newCommandError("preview", fmt.Sprintf("preset %q", opts.preset), fmt.Errorf("unknown preset"), "Run `iddl presets` to list available presets.")
	}

	cfg := preview.PanelConfig(p)
	if opts.panel != "" {
		def, ok := app.Panel(opts.panel)
		if !ok {
			return newCommandError("preview", fmt.Sprintf("panel %q", opts.panel), fmt.Errorf("unknown panel"), "Define the panel in a definitions file passed with --definitions.")
		}
		cfg = def.PanelConfig()
	} else if def, ok := app.PanelForPreset(p.Name); ok {
		cfg = def.PanelConfig()
	}

	bus := resize.NewBus()
	h, err := e.UseResizablePanel(cmd.Context(), cfg, bus)
	if err != nil {
		return newCommandError("preview", "creating panel", err, "")
	}
	defer h.Close()

	m, err := preview.NewModel(e, p.Name, opts.regions, h, bus)
	if err != nil {
		return newCommandError("preview", "creating preview", err, "")
	}
	return preview.Run(cmd.Context(), m)
}
