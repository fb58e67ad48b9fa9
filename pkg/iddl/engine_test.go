package iddl

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/iddl/internal/axes"
	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
	"github.com/alexisbeaulieu97/iddl/internal/layout/resize"
	"github.com/alexisbeaulieu97/iddl/internal/role"
	"github.com/alexisbeaulieu97/iddl/internal/storage"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	require.NoError(t, err)
	return e
}

func TestResolveStyleInjectsEveryClass(t *testing.T) {
	e := newEngine(t)

	ctx := e.DeriveContext(e.RootContext(), axes.Overrides{Prominence: axes.ProminenceHero, Density: axes.DensityCompact})
	s := e.ResolveStyle(role.DomainText, "Title", ctx)

	assert.Equal(t, "h1", s.Tag)
	assert.Equal(t, "var(--font-size-xl)", s.Style["font-size"])
	assert.False(t, s.IsComplex())

	classes := strings.Fields(s.ClassName)
	require.Len(t, classes, len(s.Style))
	sheet := e.Stylesheet()
	for _, class := range classes {
		assert.True(t, e.Atoms().Has(class), class)
	}
	assert.NotEmpty(t, sheet)
}

func TestResolveStyleIsStableAcrossCalls(t *testing.T) {
	e := newEngine(t)
	ctx := e.RootContext()

	first := e.ResolveStyle(role.DomainContainer, "Card", ctx)
	rules := e.Atoms().Len()
	second := e.ResolveStyle(role.DomainContainer, "Card", ctx)

	assert.Equal(t, first, second)
	assert.Equal(t, rules, e.Atoms().Len())
}

func TestResolveStyleUnknownRoleFallsBack(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "span", e.ResolveStyle(role.DomainText, "Nope", e.RootContext()).Tag)
	assert.Equal(t, "div", e.ResolveStyle(role.DomainContainer, "Nope", e.RootContext()).Tag)
}

func TestWithoutBuiltinRoles(t *testing.T) {
	e := newEngine(t, WithoutBuiltinRoles())
	assert.Empty(t, e.Roles().Domains())

	s := e.ResolveStyle(role.DomainText, "Title", e.RootContext())
	assert.Equal(t, "span", s.Tag)
}

func TestComputeGridTemplate(t *testing.T) {
	e := newEngine(t)

	tpl, err := e.ComputeGridTemplate(grid.Sidebar, []string{"content"}, nil)
	require.NoError(t, err)
	assert.Equal(t, `"content"`, tpl.AreasCSS())

	tpl, err = e.ComputeGridTemplate("missing", []string{"content"}, nil)
	require.Error(t, err)
	assert.Equal(t, grid.Degenerate(), tpl)
}

func TestPanelDrivesLayout(t *testing.T) {
	store := storage.NewMemoryStore()
	e := newEngine(t, WithStore(store))
	bus := resize.NewBus()

	h, err := e.UseResizablePanel(context.Background(), resize.Config{
		StorageKey: "sidebar-layout",
		Regions: map[string]resize.RegionSpec{
			"nav": {Default: "250px", Min: 200, Max: 400, Handle: resize.EdgeRight},
		},
	}, bus)
	require.NoError(t, err)
	defer h.Close()

	present := []string{"nav", "content"}
	tpl, err := e.Layout(grid.Sidebar, present, h)
	require.NoError(t, err)
	assert.Equal(t, []string{"250px", "1fr"}, tpl.Columns)

	_, err = h.OnDragStart("nav", 100)
	require.NoError(t, err)
	bus.Dispatch(resize.PointerEvent{Kind: resize.EventMove, X: 150})
	bus.Dispatch(resize.PointerEvent{Kind: resize.EventUp, X: 150})
	assert.Equal(t, "300px", h.Sizes()["nav"])
	assert.Zero(t, bus.Listeners())

	tpl, err = e.Layout(grid.Sidebar, present, h)
	require.NoError(t, err)
	assert.Equal(t, []string{"300px", "1fr"}, tpl.Columns)

	collapsed, err := h.ToggleCollapse("nav")
	require.NoError(t, err)
	assert.True(t, collapsed)
	assert.True(t, h.Collapsed()["nav"])

	tpl, err = e.Layout(grid.Sidebar, present, h)
	require.NoError(t, err)
	assert.Equal(t, []string{grid.DefaultCollapsedSize, "1fr"}, tpl.Columns)

	raw, ok, err := store.Get(context.Background(), "sidebar-layout")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"nav":"300px"}`, raw)
}

func TestLoadDefinitionsRegistersRoles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(`version: "1.0"
roles:
  - domain: text
    name: Eyebrow
    kind: simple
    tag: small
    base:
      text-transform: uppercase
`), 0o644))

	e := newEngine(t)
	docs, err := e.LoadDefinitions(context.Background(), filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	s := e.ResolveStyle(role.DomainText, "Eyebrow", e.RootContext())
	assert.Equal(t, "small", s.Tag)
	assert.Equal(t, "uppercase", s.Style["text-transform"])
}

func TestPanelStateSurvivesReinitialization(t *testing.T) {
	e := newEngine(t)
	cfg := resize.Config{
		StorageKey: "layout-x",
		Regions: map[string]resize.RegionSpec{
			"left": {Default: "200px", Min: 100, Max: 400, Handle: resize.EdgeRight},
		},
	}

	first, err := e.UseResizablePanel(context.Background(), cfg, resize.NewBus())
	require.NoError(t, err)
	require.NoError(t, first.SetSize("left", "240px"))
	first.Close()

	second, err := e.UseResizablePanel(context.Background(), cfg, resize.NewBus())
	require.NoError(t, err)
	defer second.Close()
	assert.Equal(t, "240px", second.Sizes()["left"])
	assert.False(t, second.Collapsed()["left"])
}
