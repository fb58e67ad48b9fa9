package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/iddl/internal/axes"
	"github.com/alexisbeaulieu97/iddl/internal/role"
	"github.com/alexisbeaulieu97/iddl/internal/variant"
	"github.com/alexisbeaulieu97/iddl/pkg/iddl"
)

type resolveOptions struct {
	domain     string
	role       string
	prominence string
	density    string
	intent     string
	align      string
	jsonOutput bool
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a role in a context and print its style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags.app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.domain, "domain", string(role.DomainText), "Role domain (text, container, overlay, page, action)")
	cmd.Flags().StringVar(&opts.role, "role", "", "Role name")
	cmd.Flags().StringVar(&opts.prominence, "prominence", "", "Prominence override")
	cmd.Flags().StringVar(&opts.density, "density", "", "Density override")
	cmd.Flags().StringVar(&opts.intent, "intent", "", "Intent override")
	cmd.Flags().StringVar(&opts.align, "align", "", "Align override")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func parseOverrides(prominence, density, intent, align string) (axes.Overrides, error) {
	var o axes.Overrides
	var err error
	if prominence != "" {
		if o.Prominence, err = axes.ParseProminence(prominence); err != nil {
			return o, err
		}
	}
	if density != "" {
		if o.Density, err = axes.ParseDensity(density); err != nil {
			return o, err
		}
	}
	if intent != "" {
		if o.Intent, err = axes.ParseIntent(intent); err != nil {
			return o, err
		}
	}
	if align != "" {
		if o.Align, err = axes.ParseAlign(align); err != nil {
			return o, err
		}
	}
	return o, nil
}

type resolveOutput struct {
	Domain       string            `json:"domain"`
	Role         string            `json:"role"`
	Tag          string            `json:"tag"`
	Renderer     string            `json:"renderer,omitempty"`
	Aria         map[string]string `json:"aria,omitempty"`
	Meta         map[string]string `json:"meta,omitempty"`
	Declarations []declaration     `json:"declarations"`
	Classes      []string          `json:"classes"`
	Rules        []string          `json:"rules"`
}

type declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
	Layer    string `json:"layer"`
	Source   string `json:"source"`
}

func runResolve(cmd *cobra.Command, app *AppContext, opts *resolveOptions) error {
	overrides, err := parseOverrides(opts.prominence, opts.density, opts.intent, opts.align)
	if err != nil {
		return newCommandError("resolve", "parsing axis overrides", err, "Run `iddl resolve --help` for accepted values.")
	}

	e := app.Engine
	ctx := e.DeriveContext(e.RootContext(), overrides)
	domain := role.Domain(opts.domain)

	resolved := e.Resolve(domain, opts.role, ctx)
	styled := e.StyleOf(resolved)

	out := buildResolveOutput(resolved, styled, e)
	if opts.jsonOutput {
		data, err := json.ConfigCompatibleWithStandardLibrary.MarshalIndent(out, "", "  ")
		if err != nil {
			return newCommandError("resolve", "encoding output", err, "")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	renderResolve(cmd.OutOrStdout(), out)
	return nil
}

func buildResolveOutput(r variant.Resolved, s iddl.Style, e *iddl.Engine) resolveOutput {
	out := resolveOutput{
		Domain:   string(r.Domain),
		Role:     r.Role,
		Tag:      s.Tag,
		Renderer: s.Renderer,
		Aria:     s.Aria,
		Meta:     s.Meta,
		Classes:  strings.Fields(s.ClassName),
	}
	for _, d := range r.Descriptor.Declarations() {
		out.Declarations = append(out.Declarations, declaration{
			Property: d.Property,
			Value:    d.Value,
			Layer:    d.Layer.String(),
			Source:   d.Source,
		})
	}
	rules := map[string]string{}
	for _, rule := range e.Atoms().Rules() {
		rules[rule.Class] = rule.String()
	}
	for _, class := range out.Classes {
		out.Rules = append(out.Rules, rules[class])
	}
	return out
}

func renderResolve(w io.Writer, out resolveOutput) {
	fmt.Fprintf(w, "%s/%s <%s>\n", out.Domain, out.Role, out.Tag)
	if out.Renderer != "" {
		fmt.Fprintf(w, "renderer: %s\n", out.Renderer)
	}
	writeMap(w, "aria", out.Aria)
	writeMap(w, "meta", out.Meta)

	fmt.Fprintln(w, "\ndeclarations:")
	for _, d := range out.Declarations {
		fmt.Fprintf(w, "  %s: %s  (%s, %s)\n", d.Property, d.Value, d.Layer, d.Source)
	}
	fmt.Fprintf(w, "\nclass: %s\n", strings.Join(out.Classes, " "))
	fmt.Fprintln(w, "\nrules:")
	for _, rule := range out.Rules {
		fmt.Fprintf(w, "  %s\n", rule)
	}
}

func writeMap(w io.Writer, label string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintf(w, "%s:", label)
	for _, k := range keys {
		fmt.Fprintf(w, " %s=%s", k, m[k])
	}
	fmt.Fprintln(w)
}
