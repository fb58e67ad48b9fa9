// Package grid computes CSS grid templates for layout presets from the set
// of regions actually present.
package grid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/iddl/internal/style"
)

// Empty marks a grid cell that belongs to no region.
const Empty = "."

// Template is a computed grid template.
type Template struct {
	Areas   [][]string
	Columns []string
	Rows    []string
}

// Degenerate is the template used when no region is present.
func Degenerate() Template {
	return Template{Areas: [][]string{{Empty}}, Columns: []string{"1fr"}, Rows: []string{"1fr"}}
}

// AreasCSS renders grid-template-areas.
func (t Template) AreasCSS() string {
	rows := make([]string, len(t.Areas))
	for i, row := range t.Areas {
		rows[i] = `"` + strings.Join(row, " ") + `"`
	}
	return strings.Join(rows, " ")
}

// ColumnsCSS renders grid-template-columns.
func (t Template) ColumnsCSS() string { return strings.Join(t.Columns, " ") }

// RowsCSS renders grid-template-rows.
func (t Template) RowsCSS() string { return strings.Join(t.Rows, " ") }

// Declarations returns the template as a style fragment.
func (t Template) Declarations() style.Fragment {
	return style.Fragment{
		"grid-template-areas":   t.AreasCSS(),
		"grid-template-columns": t.ColumnsCSS(),
		"grid-template-rows":    t.RowsCSS(),
	}
}

// Regions lists the region names referenced by the template, sorted.
func (t Template) Regions() []string {
	seen := map[string]struct{}{}
	for _, row := range t.Areas {
		for _, cell := range row {
			if cell != Empty {
				seen[cell] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Validate checks that the template is rectangular, that track lists match
// its dimensions and that every region occupies one contiguous rectangle.
func (t Template) Validate() error {
	if len(t.Areas) == 0 {
		return fmt.Errorf("template has no rows")
	}
	width := len(t.Areas[0])
	if width == 0 {
		return fmt.Errorf("template has no columns")
	}
	for i, row := range t.Areas {
		if len(row) != width {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), width)
		}
	}
	if len(t.Columns) != width {
		return fmt.Errorf("%d column tracks for %d columns", len(t.Columns), width)
	}
	if len(t.Rows) != len(t.Areas) {
		return fmt.Errorf("%d row tracks for %d rows", len(t.Rows), len(t.Areas))
	}
	return checkRectangles(t.Areas)
}

type bounds struct {
	top, left, bottom, right, cells int
}

func checkRectangles(areas [][]string) error {
	regions := map[string]*bounds{}
	for r, row := range areas {
		for c, cell := range row {
			if cell == "" {
				return fmt.Errorf("empty cell name at %d,%d", r, c)
			}
			if cell == Empty {
				continue
			}
			b, ok := regions[cell]
			if !ok {
				regions[cell] = &bounds{top: r, left: c, bottom: r, right: c, cells: 1}
				continue
			}
			b.top = min(b.top, r)
			b.left = min(b.left, c)
			b.bottom = max(b.bottom, r)
			b.right = max(b.right, c)
			b.cells++
		}
	}
	for name, b := range regions {
		if area := (b.bottom - b.top + 1) * (b.right - b.left + 1); area != b.cells {
			return fmt.Errorf("region %q is not a contiguous rectangle", name)
		}
	}
	return nil
}
