package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/iddl/internal/axes"
	"github.com/alexisbeaulieu97/iddl/pkg/diff"
	"github.com/alexisbeaulieu97/iddl/pkg/iddl"
)

type stylesheetOptions struct {
	variants bool
	out      string
	check    string
	color    string
}

func newStylesheetCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &stylesheetOptions{}

	cmd := &cobra.Command{
		Use:   "stylesheet",
		Short: "Generate the atomic stylesheet for every registered role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStylesheet(cmd, rootFlags.app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.variants, "variants", false, "Resolve every prominence, density and intent combination")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the stylesheet to a file")
	cmd.Flags().StringVar(&opts.check, "check", "", "Fail if the file differs from the generated stylesheet")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Highlight output (auto, always, never)")

	return cmd
}

func runStylesheet(cmd *cobra.Command, app *AppContext, opts *stylesheetOptions) error {
	sheet := generateStylesheet(app.Engine, opts.variants)

	switch {
	case opts.check != "":
		data, err := os.ReadFile(opts.check)
		if err != nil {
			return newCommandError("check stylesheet", "reading "+opts.check, err, "")
		}
		out, sum := diff.Lines(string(data), sheet, opts.check, "generated")
		if !sum.Changed() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", opts.check)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return newCommandError("check stylesheet", opts.check,
			fmt.Errorf("%d rules added, %d removed", sum.Added, sum.Removed),
			"Regenerate it with `iddl stylesheet -o "+opts.check+"`.")

	case opts.out != "":
		if err := os.WriteFile(opts.out, []byte(sheet), 0o644); err != nil {
			return newCommandError("write stylesheet", opts.out, err, "Check the directory exists and is writable.")
		}
		app.Log.WithFields(map[string]any{"path": opts.out, "rules": app.Engine.Atoms().Len()}).Info("stylesheet written")
		return nil
	}

	w := cmd.OutOrStdout()
	if useColor(opts.color, w) {
		sheet = highlightCSS(sheet)
	}
	_, err := io.WriteString(w, sheet)
	return err
}

// generateStylesheet resolves every registered role at the root context and,
// with variants, under every prominence, density and intent combination.
func generateStylesheet(e *iddl.Engine, variants bool) string {
	contexts := []axes.Context{e.RootContext()}
	if variants {
		for _, p := range axes.Prominences() {
			for _, d := range axes.Densities() {
				for _, i := range axes.Intents() {
					contexts = append(contexts, e.DeriveContext(e.RootContext(), axes.Overrides{Prominence: p, Density: d, Intent: i}))
				}
			}
		}
	}

	reg := e.Roles()
	for _, domain := range reg.Domains() {
		for _, name := range reg.Roles(domain) {
			for _, ctx := range contexts {
				e.ResolveStyle(domain, name, ctx)
			}
		}
	}

	sheet := e.Stylesheet()
	if sheet != "" && !strings.HasSuffix(sheet, "\n") {
		sheet += "\n"
	}
	return sheet
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func highlightCSS(css string) string {
	lexer := lexers.Get("css")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, css)
	if err != nil {
		return css
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return css
	}
	return buf.String()
}
