package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/iddl/internal/config"
	"github.com/alexisbeaulieu97/iddl/internal/logger"
	"github.com/alexisbeaulieu97/iddl/internal/metrics"
	"github.com/alexisbeaulieu97/iddl/internal/storage"
	"github.com/alexisbeaulieu97/iddl/pkg/iddl"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Settings  *config.Settings
	Log       *logger.Logger
	Registry  *prometheus.Registry
	Metrics   *metrics.Collectors
	Engine    *iddl.Engine
	Documents []*config.Document

	closeStore func() error
}

func newAppContext(ctx context.Context, cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	v := config.NewViper()
	bindings := map[string]string{
		"log.level":       "log-level",
		"storage.backend": "storage",
		"storage.path":    "storage-path",
		"definitions":     "definitions",
		"metrics":         "metrics",
	}
	for key, flag := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, newCommandError("start", "binding flag --"+flag, err, "")
			}
		}
	}

	settings, err := config.LoadSettings(v, flags.configFile)
	if err != nil {
		return nil, newCommandError("start", "loading settings", err, "Check the settings file and IDDL_* environment variables.")
	}

	opts := settings.LoggerOptions()
	opts.Writer = cmd.ErrOrStderr()
	if flags.verbose {
		opts.Level = "debug"
	}
	log, err := logger.New(opts)
	if err != nil {
		return nil, newCommandError("start", "creating logger", err, "")
	}

	store, closeStore, err := storage.Open(storage.Backend(settings.Storage.Backend), settings.Storage.Path)
	if err != nil {
		return nil, newCommandError("start", "opening layout storage", err, "Check --storage-path and its permissions.")
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	engine, err := iddl.New(iddl.WithLogger(log), iddl.WithMetrics(m), iddl.WithStore(store))
	if err != nil {
		_ = closeStore()
		return nil, newCommandError("start", "registering builtin roles", err, "")
	}

	app := &AppContext{
		Settings:   settings,
		Log:        log,
		Registry:   reg,
		Metrics:    m,
		Engine:     engine,
		closeStore: closeStore,
	}

	if len(settings.Definitions) > 0 {
		docs, err := engine.LoadDefinitions(ctx, settings.Definitions...)
		app.Documents = docs
		if err != nil {
			_ = app.Close()
			return nil, newCommandError("start", "loading definitions", err, "Fix the reported definition files or narrow --definitions.")
		}
		log.WithFields(map[string]any{"documents": len(docs)}).Debug("definitions loaded")
	}
	return app, nil
}

// Panel returns the panel definition called name.
func (a *AppContext) Panel(name string) (config.PanelDefinition, bool) {
	for _, doc := range a.Documents {
		for _, p := range doc.Panels {
			if p.Name == name {
				return p, true
			}
		}
	}
	return config.PanelDefinition{}, false
}

// PanelForPreset returns the first panel definition built on preset.
func (a *AppContext) PanelForPreset(preset string) (config.PanelDefinition, bool) {
	for _, doc := range a.Documents {
		for _, p := range doc.Panels {
			if p.Preset == preset {
				return p, true
			}
		}
	}
	return config.PanelDefinition{}, false
}

// Close releases the layout store.
func (a *AppContext) Close() error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}

// WriteMetrics prints every non-zero counter, one per line.
func (a *AppContext) WriteMetrics(w io.Writer) error {
	families, err := a.Registry.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			value := metric.GetCounter().GetValue()
			if value == 0 {
				continue
			}
			var labels []string
			for _, l := range metric.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%s %g", name, value))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
