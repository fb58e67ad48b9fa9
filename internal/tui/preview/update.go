package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/iddl/internal/layout/resize"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.handle.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Next):
		if len(m.order) > 0 {
			m.cursor = (m.cursor + 1) % len(m.order)
		}

	case key.Matches(msg, m.keys.Prev):
		if len(m.order) > 0 {
			m.cursor = (m.cursor - 1 + len(m.order)) % len(m.order)
		}

	case key.Matches(msg, m.keys.Present):
		if name := m.Selected(); name != "" {
			m.present[name] = !m.present[name]
		}

	case key.Matches(msg, m.keys.Collapse):
		_, m.err = m.handle.ToggleCollapse(m.Selected())

	case key.Matches(msg, m.keys.Grow):
		m.err = m.nudge(1)

	case key.Matches(msg, m.keys.Shrink):
		m.err = m.nudge(-1)

	case key.Matches(msg, m.keys.Reset):
		m.err = m.handle.ResetRegion(m.Selected())

	case key.Matches(msg, m.keys.ResetAll):
		m.handle.Panel().Reset()
	}
	m.refresh()
	return m, nil
}

// nudge grows or shrinks the selected region by one cell on its handle's
// axis. Handles on the left or top edge grow the region towards the pointer,
// so a grow step always widens the region whichever side the handle is on.
func (m *Model) nudge(dir float64) error {
	name := m.Selected()
	spec, ok := m.handle.Panel().Spec(name)
	if !ok {
		return fmt.Errorf("region %q is not resizable", name)
	}
	step := ColumnScale
	if spec.Handle.Vertical() {
		step = RowScale
	}
	current, ok := resize.ParsePx(m.handle.Sizes()[name])
	if !ok {
		current = spec.Min
	}
	return m.handle.SetSize(name, resize.FormatPx(current+dir*step))
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := msg.X, msg.Y-canvasTop
	pos := func() resize.PointerEvent {
		return resize.PointerEvent{X: float64(x) * ColumnScale, Y: float64(y) * RowScale}
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		region, ok := m.frame.HandleAt(m.handle.Panel(), x, y)
		if !ok {
			m.selectAt(x, y)
			return
		}
		spec, _ := m.handle.Panel().Spec(region)
		start := float64(x) * ColumnScale
		if spec.Handle.Vertical() {
			start = float64(y) * RowScale
		}
		if _, err := m.handle.OnDragStart(region, start); err != nil {
			m.err = err
			return
		}
		m.dragging = region

	case tea.MouseActionMotion:
		if m.dragging == "" {
			return
		}
		ev := pos()
		ev.Kind = resize.EventMove
		m.bus.Dispatch(ev)

	case tea.MouseActionRelease:
		if m.dragging == "" {
			return
		}
		ev := pos()
		ev.Kind = resize.EventUp
		m.bus.Dispatch(ev)
		m.dragging = ""
	}
	m.refresh()
}

func (m *Model) selectAt(x, y int) {
	for _, b := range m.frame.Boxes {
		if !b.Contains(x, y) {
			continue
		}
		for i, name := range m.order {
			if name == b.Region {
				m.cursor = i
				return
			}
		}
	}
}
