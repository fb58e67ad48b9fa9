package grid

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Region is the per-render state of one region.
type Region struct {
	Name         string
	ExplicitSize string
	MinSize      int
	MaxSize      int
	Collapsed    bool
}

// Compute filters preset down to the present regions and sizes the surviving
// tracks. Rows, then columns, that contain no present region are dropped and
// cells of absent regions become Empty. A surviving track takes
// overrides[track.Region] when that region is present, otherwise the preset
// default. Override keys naming absent or unknown regions are ignored.
func Compute(p Preset, present []string, overrides map[string]string) Template {
	regions := make([]Region, 0, len(present))
	for _, name := range present {
		regions = append(regions, Region{Name: name, ExplicitSize: overrides[name]})
	}
	return ComputeRegions(p, regions)
}

// ComputeRegions is Compute over full region state. A collapsed region sizes
// its tracks with the preset's collapsed size.
func ComputeRegions(p Preset, regions []Region) Template {
	state := make(map[string]Region, len(regions))
	for _, r := range regions {
		if p.Has(r.Name) {
			state[r.Name] = r
		}
	}
	if len(state) == 0 {
		return Degenerate()
	}

	isPresent := func(cell string) bool {
		_, ok := state[cell]
		return ok
	}

	var keepRows []int
	for i, row := range p.Areas {
		for _, cell := range row {
			if isPresent(cell) {
				keepRows = append(keepRows, i)
				break
			}
		}
	}

	width := len(p.Areas[0])
	var keepCols []int
	for c := 0; c < width; c++ {
		for _, r := range keepRows {
			if isPresent(p.Areas[r][c]) {
				keepCols = append(keepCols, c)
				break
			}
		}
	}

	keepCols = dropSpanOnly(keepCols, axis{
		cells: func(c int) []string {
			cells := make([]string, 0, len(keepRows))
			for _, r := range keepRows {
				cells = append(cells, p.Areas[r][c])
			}
			return cells
		},
		track:   func(c int) Track { return p.Columns[c] },
		present: isPresent,
	})
	keepRows = dropSpanOnly(keepRows, axis{
		cells: func(r int) []string {
			cells := make([]string, 0, len(keepCols))
			for _, c := range keepCols {
				cells = append(cells, p.Areas[r][c])
			}
			return cells
		},
		track:   func(r int) Track { return p.Rows[r] },
		present: isPresent,
	})

	size := func(t Track) string {
		r, ok := state[t.Region]
		switch {
		case !ok:
			return t.Size
		case r.Collapsed:
			return p.collapsedSize()
		case r.ExplicitSize != "":
			return r.ExplicitSize
		default:
			return t.Size
		}
	}

	out := Template{
		Areas:   make([][]string, 0, len(keepRows)),
		Columns: make([]string, 0, len(keepCols)),
		Rows:    make([]string, 0, len(keepRows)),
	}
	for _, r := range keepRows {
		row := make([]string, 0, len(keepCols))
		for _, c := range keepCols {
			cell := p.Areas[r][c]
			if !isPresent(cell) {
				cell = Empty
			}
			row = append(row, cell)
		}
		out.Areas = append(out.Areas, row)
		out.Rows = append(out.Rows, size(p.Rows[r]))
	}
	for _, c := range keepCols {
		out.Columns = append(out.Columns, size(p.Columns[c]))
	}
	return out
}

type axis struct {
	cells   func(int) []string
	track   func(int) Track
	present func(string) bool
}

// dropSpanOnly removes tracks whose sizing region is absent and whose present
// cells all belong to regions that also occupy another kept track. Such a
// track exists only because a spanning region reaches into it. Fixed-size
// tracks go first so a lone spanning region keeps a flexible track.
func dropSpanOnly(keep []int, a axis) []int {
	for len(keep) > 1 {
		victim := -1
		for i, idx := range keep {
			if !a.spanOnly(idx, keep) {
				continue
			}
			if victim < 0 {
				victim = i
			}
			if !strings.Contains(a.track(idx).Size, "fr") {
				victim = i
				break
			}
		}
		if victim < 0 {
			break
		}
		keep = append(keep[:victim:victim], keep[victim+1:]...)
	}
	return keep
}

func (a axis) spanOnly(idx int, keep []int) bool {
	if a.present(a.track(idx).Region) {
		return false
	}
	for _, cell := range a.cells(idx) {
		if a.present(cell) && !a.occursElsewhere(cell, idx, keep) {
			return false
		}
	}
	return true
}

func (a axis) occursElsewhere(region string, idx int, keep []int) bool {
	for _, other := range keep {
		if other == idx {
			continue
		}
		for _, cell := range a.cells(other) {
			if cell == region {
				return true
			}
		}
	}
	return false
}
