package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Highlight marks regions drawn with emphasis.
type Highlight struct {
	Selected string
	Dragging string
}

type cell struct {
	ch    string
	owner int
}

// Render draws f as bordered boxes, one per region, labelled with the region
// name and its track sizes.
func Render(f Frame, hl Highlight) string {
	if f.Width == 0 || f.Height == 0 {
		return ""
	}

	canvas := make([][]cell, f.Height)
	for y := range canvas {
		canvas[y] = make([]cell, f.Width)
		for x := range canvas[y] {
			canvas[y][x] = cell{ch: " ", owner: -1}
		}
	}

	border := lipgloss.RoundedBorder()
	for i, b := range f.Boxes {
		put := func(x, y int, s string) {
			if y >= 0 && y < f.Height && x >= 0 && x < f.Width {
				canvas[y][x] = cell{ch: s, owner: i}
			}
		}
		right, bottom := b.X+b.W-1, b.Y+b.H-1
		for x := b.X + 1; x < right; x++ {
			put(x, b.Y, border.Top)
			put(x, bottom, border.Bottom)
		}
		for y := b.Y + 1; y < bottom; y++ {
			put(b.X, y, border.Left)
			put(right, y, border.Right)
		}
		put(b.X, b.Y, border.TopLeft)
		put(right, b.Y, border.TopRight)
		put(b.X, bottom, border.BottomLeft)
		put(right, bottom, border.BottomRight)

		inner := b.W - 2
		lines := []string{Label(b.Region), sizeLine(f, b)}
		for j, line := range lines {
			y := b.Y + 1 + j
			if y >= bottom || inner <= 0 {
				break
			}
			x := b.X + 1
			for _, r := range runewidth.Truncate(line, inner, "…") {
				w := runewidth.RuneWidth(r)
				put(x, y, string(r))
				if w == 2 {
					put(x+1, y, "")
				}
				x += max(w, 1)
			}
		}
	}

	styles := boxStyles(f, hl)
	var out strings.Builder
	for y, row := range canvas {
		if y > 0 {
			out.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].owner == row[start].owner {
				continue
			}
			var run strings.Builder
			for _, c := range row[start:x] {
				run.WriteString(c.ch)
			}
			if owner := row[start].owner; owner >= 0 {
				out.WriteString(styles[owner].Render(run.String()))
			} else {
				out.WriteString(run.String())
			}
			start = x
		}
	}
	return out.String()
}

// Label turns a region name into a display label, e.g. "top-left" into
// "Top Left".
func Label(region string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(region, "-", " "))
}

// sizeLine shows the CSS track sizes spanned by b.
func sizeLine(f Frame, b Box) string {
	col, row := trackIndex(f.Columns, b.X), trackIndex(f.Rows, b.Y)
	var parts []string
	if col >= 0 && col < len(f.Template.Columns) {
		parts = append(parts, f.Template.Columns[col])
	}
	if row >= 0 && row < len(f.Template.Rows) {
		parts = append(parts, f.Template.Rows[row])
	}
	return strings.Join(parts, " × ")
}

func trackIndex(tracks []int, offset int) int {
	at := 0
	for i, n := range tracks {
		if offset < at+n {
			return i
		}
		at += n
	}
	return -1
}

func boxStyles(f Frame, hl Highlight) []lipgloss.Style {
	out := make([]lipgloss.Style, len(f.Boxes))
	for i, b := range f.Boxes {
		s := regionStyle(i)
		switch b.Region {
		case hl.Dragging:
			s = s.Foreground(accentColor).Bold(true)
		case hl.Selected:
			s = s.Bold(true)
		}
		out[i] = s
	}
	return out
}
