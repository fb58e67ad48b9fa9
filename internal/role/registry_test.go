package role

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/iddl/internal/axes"
	"github.com/alexisbeaulieu97/iddl/internal/logger"
	"github.com/alexisbeaulieu97/iddl/internal/metrics"
	"github.com/alexisbeaulieu97/iddl/internal/style"
	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

func newTestRegistry(t *testing.T, level string) (*Registry, *bytes.Buffer, *metrics.Collectors) {
	t.Helper()
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: level, Writer: buf})
	require.NoError(t, err)
	m := metrics.New(prometheus.NewRegistry())
	return NewRegistry(log, m), buf, m
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLookupUnknownRoleReturnsFallback(t *testing.T) {
	t.Parallel()

	reg, buf, m := newTestRegistry(t, "debug")

	cfg := reg.Lookup(DomainContainer, "Nonexistent")
	assert.Equal(t, "div", cfg.Tag)
	assert.Empty(t, cfg.Base)
	assert.Empty(t, cfg.Aria)

	text := reg.Lookup(DomainText, "Nonexistent")
	assert.Equal(t, "span", text.Tag)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "Nonexistent", entries[0]["role"])
	assert.Equal(t, "container", entries[0]["domain"])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UnknownRoles.WithLabelValues("container")))
}

func TestLookupUnknownRoleSilentAboveDebug(t *testing.T) {
	t.Parallel()

	reg, buf, _ := newTestRegistry(t, "info")
	_ = reg.Lookup(DomainOverlay, "Ghost")
	assert.Empty(t, strings.TrimSpace(buf.String()))
}

func TestRegisterReplacesAndWarns(t *testing.T) {
	t.Parallel()

	reg, buf, _ := newTestRegistry(t, "info")
	first := Config{Kind: KindSimple, Tag: "div", Base: style.Fragment{"display": "flex"}}
	second := Config{Kind: KindSimple, Tag: "section", Base: style.Fragment{"display": "grid"}}

	require.NoError(t, reg.Register(DomainContainer, "Card", first))
	assert.Empty(t, strings.TrimSpace(buf.String()))

	require.NoError(t, reg.Register(DomainContainer, "Card", second))
	got := reg.Lookup(DomainContainer, "Card")
	assert.Equal(t, "section", got.Tag)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "Card", entries[0]["role"])
}

func TestRegisterRejectsInvalidConfigs(t *testing.T) {
	t.Parallel()

	reg, _, _ := newTestRegistry(t, "info")

	tests := []struct {
		name string
		role string
		cfg  Config
	}{
		{name: "missing kind", role: "A", cfg: Config{Tag: "div"}},
		{name: "simple without tag", role: "A", cfg: Config{Kind: KindSimple}},
		{name: "complex without renderer", role: "A", cfg: Config{Kind: KindComplex, Tag: "button"}},
		{name: "bad property", role: "A", cfg: Config{Kind: KindSimple, Tag: "div", Base: style.Fragment{"bad prop": "x"}}},
		{name: "empty value", role: "A", cfg: Config{Kind: KindSimple, Tag: "div", Base: style.Fragment{"color": " "}}},
		{name: "unknown prominence", role: "A", cfg: Config{Kind: KindSimple, Tag: "div", Prominence: map[axes.Prominence]style.Fragment{"Loud": {"color": "red"}}}},
		{name: "empty predicate", role: "A", cfg: Config{Kind: KindSimple, Tag: "div", Compound: []CompoundOverride{{Style: style.Fragment{"color": "red"}}}}},
		{name: "override without style", role: "A", cfg: Config{Kind: KindSimple, Tag: "div", Compound: []CompoundOverride{{When: Predicate{Role: "A"}}}}},
		{name: "bad role name", role: "1bad name", cfg: Config{Kind: KindSimple, Tag: "div"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Register(DomainContainer, tt.role, tt.cfg)
			require.Error(t, err)

			var defErr *iddlerrors.DefinitionError
			require.True(t, errors.As(err, &defErr))
			var valErr *iddlerrors.ValidationError
			require.True(t, errors.As(err, &valErr))
		})
	}

	assert.Empty(t, reg.Roles(DomainContainer))
}

func TestPredicateMatches(t *testing.T) {
	t.Parallel()

	ctx := axes.Context{Prominence: axes.ProminenceHero, Density: axes.DensityCompact, Intent: axes.IntentNeutral}

	assert.True(t, Predicate{Role: "Title", Prominence: axes.ProminenceHero}.Matches("Title", ctx))
	assert.True(t, Predicate{Density: axes.DensityCompact}.Matches("Body", ctx))
	assert.False(t, Predicate{Role: "Body"}.Matches("Title", ctx))
	assert.False(t, Predicate{Role: "Title", Density: axes.DensityComfortable}.Matches("Title", ctx))
	assert.False(t, Predicate{Align: axes.AlignCenter}.Matches("Title", ctx))
}

func TestTagForProminence(t *testing.T) {
	t.Parallel()

	title := Builtins()[DomainText]["Title"]
	assert.Equal(t, "h1", title.TagFor(axes.ProminenceHero))
	assert.Equal(t, "h2", title.TagFor(axes.ProminenceStrong))
	assert.Equal(t, "h3", title.TagFor(axes.ProminenceStandard))
	assert.Equal(t, "h4", title.TagFor(axes.ProminenceSubtle))
}

func TestRegisterBuiltins(t *testing.T) {
	t.Parallel()

	reg, _, _ := newTestRegistry(t, "info")
	require.NoError(t, RegisterBuiltins(reg))

	assert.Equal(t, []Domain{DomainAction, DomainContainer, DomainOverlay, DomainPage, DomainText}, reg.Domains())
	assert.Equal(t, []string{"Body", "Caption", "Code", "Label", "Title"}, reg.Roles(DomainText))

	dialog := reg.Lookup(DomainOverlay, "Dialog")
	assert.Equal(t, "dialog", dialog.Aria["role"])
	assert.Equal(t, "true", dialog.Meta["backdrop"])

	button := reg.Lookup(DomainAction, "Button")
	assert.True(t, button.IsComplex())
	assert.Equal(t, "ButtonAction", button.Renderer)

	app := reg.Lookup(DomainPage, "Application")
	assert.Equal(t, "viewport", app.Meta["height"])
	assert.Equal(t, "grid", app.Base["display"])
}
