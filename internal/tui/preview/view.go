package preview

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s · %s", m.preset.Name, m.preset.Description)))
	b.WriteString("\n\n")

	b.WriteString(Render(m.frame, Highlight{Selected: m.Selected(), Dragging: m.dragging}))
	b.WriteString("\n")

	b.WriteString(cssStyle.Render("grid-template-areas: " + m.template.AreasCSS()))
	b.WriteString("\n")
	b.WriteString(cssStyle.Render("grid-template-columns: " + m.template.ColumnsCSS()))
	b.WriteString("\n")
	b.WriteString(cssStyle.Render("grid-template-rows: " + m.template.RowsCSS()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(statusStyle.Render(m.statusLine()))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) statusLine() string {
	name := m.Selected()
	if name == "" {
		return ""
	}
	parts := []string{Label(name)}
	if m.present[name] {
		parts = append(parts, "present")
	} else {
		parts = append(parts, "hidden")
	}
	if _, ok := m.handle.Panel().Spec(name); ok {
		parts = append(parts, m.handle.Sizes()[name])
		if m.handle.Collapsed()[name] {
			parts = append(parts, "collapsed")
		}
	}
	if m.dragging != "" {
		parts = append(parts, "dragging "+m.dragging)
	}
	return strings.Join(parts, " · ")
}

// Snapshot renders t once into a width x height area, for non-interactive
// output.
func Snapshot(t grid.Template, width, height int) string {
	return Render(Layout(t, width, height), Highlight{})
}
