package preview

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
	"github.com/alexisbeaulieu97/iddl/internal/layout/resize"
	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
	"github.com/alexisbeaulieu97/iddl/pkg/iddl"
)

// Rows taken by everything but the canvas: title, blank line, three CSS
// lines, status and help.
const chromeRows = 7

// canvasTop is the screen row of the canvas's first line.
const canvasTop = 2

// Model is the interactive preview of one preset backed by a resizable panel.
type Model struct {
	engine *iddl.Engine
	handle *iddl.PanelHandle
	bus    *resize.Bus
	preset grid.Preset

	order   []string
	present map[string]bool
	cursor  int

	dragging string
	template grid.Template
	frame    Frame
	err      error

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates a preview of preset. An empty present list shows every
// region of the preset. Pointer events from the terminal are dispatched on
// bus, which must be the source the handle was created with.
func NewModel(e *iddl.Engine, preset string, present []string, h *iddl.PanelHandle, bus *resize.Bus) (Model, error) {
	p, ok := e.Grids().Preset(preset)
	if !ok {
		return Model{}, iddlerrors.NewValidationError("preset", fmt.Sprintf("unknown preset %q", preset), nil)
	}
	m := Model{
		engine:  e,
		handle:  h,
		bus:     bus,
		preset:  p,
		order:   p.Regions(),
		present: map[string]bool{},
		keys:    defaultKeys(),
		help:    help.New(),
	}
	if len(present) == 0 {
		present = m.order
	}
	for _, name := range present {
		if p.Has(name) {
			m.present[name] = true
		}
	}
	m.refresh()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Template returns the template currently displayed.
func (m Model) Template() grid.Template { return m.template }

// Frame returns the measured frame currently displayed.
func (m Model) Frame() Frame { return m.frame }

// Selected returns the region under the cursor.
func (m Model) Selected() string {
	if len(m.order) == 0 {
		return ""
	}
	return m.order[m.cursor]
}

// Present lists the present regions in preset order.
func (m Model) Present() []string {
	var out []string
	for _, name := range m.order {
		if m.present[name] {
			out = append(out, name)
		}
	}
	return out
}

func (m *Model) refresh() {
	tpl, err := m.engine.Layout(m.preset.Name, m.Present(), m.handle)
	if err != nil {
		m.err = err
	}
	m.template = tpl
	m.frame = Layout(tpl, m.width, max(m.height-chromeRows, 0))
}

// Run starts the preview full screen with mouse support until the user quits
// or ctx is done.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
