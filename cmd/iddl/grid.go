package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
	"github.com/alexisbeaulieu97/iddl/internal/tui/preview"
)

const (
	defaultPreviewWidth  = 80
	defaultPreviewHeight = 20
)

type gridOptions struct {
	preset  string
	regions []string
	sizes   map[string]string
	panel   string
	preview bool
	width   int
	height  int
}

func newGridCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &gridOptions{}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Compute the grid template of a preset for the present regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, rootFlags.app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.preset, "preset", "", "Layout preset name")
	cmd.Flags().StringSliceVar(&opts.regions, "region", nil, "Present regions (default: every region of the preset)")
	cmd.Flags().StringToStringVar(&opts.sizes, "size", nil, "Size overrides, e.g. --size sidebar=320px")
	cmd.Flags().StringVar(&opts.panel, "panel", "", "Use the persisted sizes of a defined panel")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Draw the template as boxes")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Preview width in cells (default: terminal width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Preview height in cells")
	_ = cmd.MarkFlagRequired("preset")

	return cmd
}

func runGrid(cmd *cobra.Command, app *AppContext, opts *gridOptions) error {
	e := app.Engine
	p, ok := e.Grids().Preset(opts.preset)
	if !ok {
		return newCommandError("compute grid", fmt.Sprintf("preset %q", opts.preset), fmt.Errorf("unknown preset"), "Run `iddl presets` to list available presets.")
	}
	present := opts.regions
	if len(present) == 0 {
		present = p.Regions()
	}

	var (
		tpl grid.Template
		err error
	)
	if opts.panel != "" {
		def, ok := app.Panel(opts.panel)
		if !ok {
			return newCommandError("compute grid", fmt.Sprintf("panel %q", opts.panel), fmt.Errorf("unknown panel"), "Define the panel in a definitions file passed with --definitions.")
		}
		h, herr := e.UseResizablePanel(cmd.Context(), def.PanelConfig(), nil)
		if herr != nil {
			return newCommandError("compute grid", "restoring panel state", herr, "")
		}
		defer h.Close()
		for region, size := range opts.sizes {
			if err := h.SetSize(region, size); err != nil {
				return newCommandError("compute grid", "applying --size", err, "")
			}
		}
		tpl, err = e.Layout(opts.preset, present, h)
	} else {
		tpl, err = e.ComputeGridTemplate(opts.preset, present, opts.sizes)
	}
	if err != nil {
		return newCommandError("compute grid", "computing template", err, "")
	}

	w := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	decls := tpl.Declarations()
	props := make([]string, 0, len(decls))
	for prop := range decls {
		props = append(props, prop)
	}
	sort.Strings(props)
	for _, prop := range props {
		fmt.Fprintf(tw, "%s:\t%s;\n", prop, decls[prop])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if opts.preview {
		width, height := previewSize(opts.width, opts.height)
		fmt.Fprintln(w)
		fmt.Fprintln(w, preview.Snapshot(tpl, width, height))
	}
	return nil
}

// previewSize fills unset dimensions from the terminal when stdout is one.
func previewSize(width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th := defaultPreviewWidth, defaultPreviewHeight
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			tw, th = w, max(h-8, 4)
		}
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}

func newPresetsCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List layout presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := rootFlags.app.Engine
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PRESET\tREGIONS\tDESCRIPTION")
			for _, name := range e.Grids().Names() {
				p, _ := e.Grids().Preset(name)
				fmt.Fprintf(tw, "%s\t%d\t%s\n", p.Name, len(p.Regions()), p.Description)
			}
			return tw.Flush()
		},
	}
}
