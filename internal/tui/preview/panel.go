package preview

import (
	"strings"

	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
	"github.com/alexisbeaulieu97/iddl/internal/layout/resize"
)

// PanelConfig derives a resizable panel for p: every pixel track becomes a
// region that can shrink to half and grow to twice its default size. Tracks
// before the first fr track take their handle on the far edge, tracks after
// it on the near edge.
func PanelConfig(p grid.Preset) resize.Config {
	cfg := resize.Config{
		StorageKey: "preview-" + strings.ToLower(p.Name),
		Regions:    map[string]resize.RegionSpec{},
	}
	add := func(tracks []grid.Track, before, after resize.Edge) {
		flexSeen := false
		for _, t := range tracks {
			px, ok := resize.ParsePx(t.Size)
			if !ok {
				flexSeen = true
				continue
			}
			if _, dup := cfg.Regions[t.Region]; dup {
				continue
			}
			edge := before
			if flexSeen {
				edge = after
			}
			cfg.Regions[t.Region] = resize.RegionSpec{
				Default: t.Size,
				Min:     px / 2,
				Max:     px * 2,
				Handle:  edge,
			}
		}
	}
	add(p.Columns, resize.EdgeRight, resize.EdgeLeft)
	add(p.Rows, resize.EdgeBottom, resize.EdgeTop)
	return cfg
}
