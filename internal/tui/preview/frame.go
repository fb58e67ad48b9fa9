// Package preview draws grid templates in the terminal and lets panels be
// resized with the mouse.
package preview

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
	"github.com/alexisbeaulieu97/iddl/internal/layout/resize"
)

// Pixels per terminal cell on each axis.
const (
	ColumnScale = 8.0
	RowScale    = 16.0
)

const minTrack = 3

// Box is the cell rectangle a region occupies.
type Box struct {
	Region     string
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Frame is a template measured into terminal cells.
type Frame struct {
	Template grid.Template
	Columns  []int
	Rows     []int
	Boxes    []Box
	Width    int
	Height   int
}

// Box returns the rectangle of region.
func (f Frame) Box(region string) (Box, bool) {
	for _, b := range f.Boxes {
		if b.Region == region {
			return b, true
		}
	}
	return Box{}, false
}

// Measure converts track sizes to cell counts. Pixel tracks are scaled and
// never shrink below a drawable width unless they are zero; percentages take
// their share of total; fr tracks split what remains by weight. Anything
// else counts as 1fr.
func Measure(tracks []string, total int, scale float64) []int {
	out := make([]int, len(tracks))
	weights := make([]float64, len(tracks))
	used, weight := 0, 0.0

	for i, tr := range tracks {
		tr = strings.TrimSpace(tr)
		if px, ok := resize.ParsePx(tr); ok {
			n := int(math.Round(px / scale))
			if px > 0 && n < minTrack {
				n = minTrack
			}
			out[i] = n
			used += n
			continue
		}
		if pct, ok := strings.CutSuffix(tr, "%"); ok {
			if v, err := strconv.ParseFloat(pct, 64); err == nil && v >= 0 {
				out[i] = int(float64(total) * v / 100)
				used += out[i]
				continue
			}
		}
		w := 1.0
		if fr, ok := strings.CutSuffix(tr, "fr"); ok {
			if v, err := strconv.ParseFloat(fr, 64); err == nil && v > 0 {
				w = v
			}
		}
		weights[i] = w
		weight += w
	}

	remaining := max(total-used, 0)
	last := -1
	assigned := 0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		out[i] = int(float64(remaining) * w / weight)
		assigned += out[i]
		last = i
	}
	if last >= 0 {
		out[last] += remaining - assigned
	}
	return out
}

// Layout measures t into a width x height cell area.
func Layout(t grid.Template, width, height int) Frame {
	f := Frame{
		Template: t,
		Columns:  Measure(t.Columns, width, ColumnScale),
		Rows:     Measure(t.Rows, height, RowScale),
	}
	f.Width = sum(f.Columns)
	f.Height = sum(f.Rows)

	type span struct{ r0, r1, c0, c1 int }
	spans := map[string]*span{}
	var order []string
	for r, row := range t.Areas {
		for c, name := range row {
			if name == grid.Empty {
				continue
			}
			s, ok := spans[name]
			if !ok {
				spans[name] = &span{r, r, c, c}
				order = append(order, name)
				continue
			}
			s.r0, s.r1 = min(s.r0, r), max(s.r1, r)
			s.c0, s.c1 = min(s.c0, c), max(s.c1, c)
		}
	}

	for _, name := range order {
		s := spans[name]
		b := Box{
			Region: name,
			X:      sum(f.Columns[:s.c0]),
			Y:      sum(f.Rows[:s.r0]),
			W:      sum(f.Columns[s.c0 : s.c1+1]),
			H:      sum(f.Rows[s.r0 : s.r1+1]),
		}
		if b.W < 2 || b.H < 2 {
			continue
		}
		f.Boxes = append(f.Boxes, b)
	}
	return f
}

// HandleAt returns the managed region whose resize handle passes through
// cell (x, y). Collapsed regions have no box and therefore no handle.
func (f Frame) HandleAt(p *resize.Panel, x, y int) (string, bool) {
	for _, b := range f.Boxes {
		spec, ok := p.Spec(b.Region)
		if !ok || spec.Handle == "" {
			continue
		}
		switch spec.Handle {
		case resize.EdgeRight:
			if x == b.X+b.W-1 && y >= b.Y && y < b.Y+b.H {
				return b.Region, true
			}
		case resize.EdgeLeft:
			if x == b.X && y >= b.Y && y < b.Y+b.H {
				return b.Region, true
			}
		case resize.EdgeBottom:
			if y == b.Y+b.H-1 && x >= b.X && x < b.X+b.W {
				return b.Region, true
			}
		case resize.EdgeTop:
			if y == b.Y && x >= b.X && x < b.X+b.W {
				return b.Region, true
			}
		}
	}
	return "", false
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
