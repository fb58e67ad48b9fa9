package grid

import (
	"fmt"
	"sort"

	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

// DefaultCollapsedSize is the track size of a collapsed region.
const DefaultCollapsedSize = "0px"

// Track is one column or row of a preset. Region names the region whose
// override, if present, sizes the track.
type Track struct {
	Region string `yaml:"region" toml:"region" validate:"required"`
	Size   string `yaml:"size" toml:"size" validate:"required"`
}

// Preset is the superset of regions a layout supports, their positions and
// default track sizes.
type Preset struct {
	Name          string     `yaml:"name" toml:"name" validate:"required"`
	Areas         [][]string `yaml:"areas" toml:"areas" validate:"required,min=1"`
	Columns       []Track    `yaml:"columns" toml:"columns" validate:"required,min=1,dive"`
	Rows          []Track    `yaml:"rows" toml:"rows" validate:"required,min=1,dive"`
	CollapsedSize string     `yaml:"collapsed_size,omitempty" toml:"collapsed_size"`
	Description   string     `yaml:"description,omitempty" toml:"description"`
}

// Regions lists every region the preset supports, sorted.
func (p Preset) Regions() []string {
	return p.full().Regions()
}

// Has reports whether the preset supports region.
func (p Preset) Has(region string) bool {
	for _, row := range p.Areas {
		for _, cell := range row {
			if cell == region {
				return true
			}
		}
	}
	return false
}

// DefaultSize returns the default track size for region: the size of the
// first column, then row, track it sizes.
func (p Preset) DefaultSize(region string) (string, bool) {
	for _, t := range p.Columns {
		if t.Region == region {
			return t.Size, true
		}
	}
	for _, t := range p.Rows {
		if t.Region == region {
			return t.Size, true
		}
	}
	return "", false
}

func (p Preset) collapsedSize() string {
	if p.CollapsedSize == "" {
		return DefaultCollapsedSize
	}
	return p.CollapsedSize
}

func (p Preset) full() Template {
	t := Template{Areas: p.Areas}
	for _, c := range p.Columns {
		t.Columns = append(t.Columns, c.Size)
	}
	for _, r := range p.Rows {
		t.Rows = append(t.Rows, r.Size)
	}
	return t
}

// Validate checks the preset's area matrix and tracks.
func (p Preset) Validate() error {
	if err := validatorInstance().Struct(p); err != nil {
		return iddlerrors.NewDefinitionError("preset", p.Name, err)
	}
	if err := p.full().Validate(); err != nil {
		return iddlerrors.NewDefinitionError("preset", p.Name, err)
	}
	for _, t := range append(append([]Track(nil), p.Columns...), p.Rows...) {
		if !p.Has(t.Region) {
			return iddlerrors.NewDefinitionError("preset", p.Name,
				fmt.Errorf("track region %q does not appear in areas", t.Region))
		}
	}
	return nil
}

// Builtin preset names.
const (
	Studio       = "Studio"
	Presentation = "Presentation"
	Sidebar      = "Sidebar"
	ThreeCol     = "3-col"
	ThreeColHead = "3-col-header"
	MasterDetail = "Master-Detail"
	Dialog       = "Dialog"
)

// Builtins returns the builtin presets keyed by name.
func Builtins() map[string]Preset {
	presets := []Preset{
		{
			Name:        Studio,
			Description: "IDE layout: activity bar, sidebar, editor, panel, right bar",
			Areas:       [][]string{{"activitybar", "sidebar", "editor", "panel", "rightbar"}},
			Columns: []Track{
				{Region: "activitybar", Size: "48px"},
				{Region: "sidebar", Size: "250px"},
				{Region: "editor", Size: "1fr"},
				{Region: "panel", Size: "300px"},
				{Region: "rightbar", Size: "48px"},
			},
			Rows: []Track{{Region: "editor", Size: "1fr"}},
		},
		{
			Name:        Presentation,
			Description: "Holy grail with corner regions",
			Areas: [][]string{
				{"top-left", "header", "top-right"},
				{"left", "main", "right"},
				{"bottom-left", "footer", "bottom-right"},
			},
			Columns: []Track{
				{Region: "left", Size: "200px"},
				{Region: "main", Size: "1fr"},
				{Region: "right", Size: "300px"},
			},
			Rows: []Track{
				{Region: "header", Size: "64px"},
				{Region: "main", Size: "1fr"},
				{Region: "footer", Size: "48px"},
			},
		},
		{
			Name:        Sidebar,
			Description: "Navigation beside content",
			Areas:       [][]string{{"nav", "content"}},
			Columns:     []Track{{Region: "nav", Size: "250px"}, {Region: "content", Size: "1fr"}},
			Rows:        []Track{{Region: "content", Size: "1fr"}},
		},
		{
			Name:        ThreeCol,
			Description: "Left, center and right columns",
			Areas:       [][]string{{"left", "center", "right"}},
			Columns: []Track{
				{Region: "left", Size: "200px"},
				{Region: "center", Size: "1fr"},
				{Region: "right", Size: "300px"},
			},
			Rows: []Track{{Region: "center", Size: "1fr"}},
		},
		{
			Name:        ThreeColHead,
			Description: "Three columns under a spanning header",
			Areas: [][]string{
				{"header", "header", "header"},
				{"left", "center", "right"},
			},
			Columns: []Track{
				{Region: "left", Size: "200px"},
				{Region: "center", Size: "1fr"},
				{Region: "right", Size: "300px"},
			},
			Rows: []Track{{Region: "header", Size: "64px"}, {Region: "center", Size: "1fr"}},
		},
		{
			Name:        MasterDetail,
			Description: "List with a detail pane",
			Areas:       [][]string{{"master", "detail"}},
			Columns:     []Track{{Region: "master", Size: "300px"}, {Region: "detail", Size: "1fr"}},
			Rows:        []Track{{Region: "detail", Size: "1fr"}},
		},
		{
			Name:        Dialog,
			Description: "Dialog header, content and footer",
			Areas:       [][]string{{"dialog-header"}, {"dialog-content"}, {"dialog-footer"}},
			Columns:     []Track{{Region: "dialog-content", Size: "1fr"}},
			Rows: []Track{
				{Region: "dialog-header", Size: "auto"},
				{Region: "dialog-content", Size: "1fr"},
				{Region: "dialog-footer", Size: "auto"},
			},
		},
	}

	out := make(map[string]Preset, len(presets))
	for _, p := range presets {
		out[p.Name] = p
	}
	return out
}

// BuiltinNames lists builtin preset names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, 7)
	for name := range Builtins() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
