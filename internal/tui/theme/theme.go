// Package theme maps the presentation axes onto terminal colors and spacing
// so previews render a context the way a stylesheet would.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/iddl/internal/axes"
)

// Shade indexes a ten-step scale from 50 (lightest) to 900 (darkest).
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
)

const shadeCount = int(Shade900) + 1

// Scale is one color family.
type Scale [shadeCount]lipgloss.Color

// Color returns the color at shade, or "" when shade is out of range.
func (s Scale) Color(shade Shade) lipgloss.Color {
	if shade < 0 || int(shade) >= shadeCount {
		return ""
	}
	return s[shade]
}

var (
	slate  = Scale{"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"}
	blue   = Scale{"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"}
	green  = Scale{"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"}
	red    = Scale{"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"}
	yellow = Scale{"#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"}
	purple = Scale{"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87"}
	cyan   = Scale{"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63"}
)

// Theme resolves contexts to terminal styles.
type Theme struct {
	Intents    map[axes.Intent]Scale
	Prominence map[axes.Prominence]Shade
	// Padding is the horizontal cell padding for each density.
	Padding map[axes.Density]int
	// Regions cycles through these scales to tell preview boxes apart.
	Regions []Scale
}

// Default is tuned for dark terminals: stronger prominence picks lighter
// shades.
func Default() Theme {
	return Theme{
		Intents: map[axes.Intent]Scale{
			axes.IntentNeutral:  slate,
			axes.IntentBrand:    purple,
			axes.IntentPositive: green,
			axes.IntentCaution:  yellow,
			axes.IntentCritical: red,
			axes.IntentInfo:     blue,
		},
		Prominence: map[axes.Prominence]Shade{
			axes.ProminenceHero:     Shade200,
			axes.ProminenceStrong:   Shade300,
			axes.ProminenceStandard: Shade400,
			axes.ProminenceSubtle:   Shade600,
		},
		Padding: map[axes.Density]int{
			axes.DensityCompact:     0,
			axes.DensityStandard:    1,
			axes.DensityComfortable: 2,
		},
		Regions: []Scale{blue, green, yellow, purple, cyan, red},
	}
}

// Color returns the foreground color for an intent at a prominence. Unknown
// values fall back to Neutral and Standard.
func (t Theme) Color(i axes.Intent, p axes.Prominence) lipgloss.Color {
	scale, ok := t.Intents[i]
	if !ok {
		scale = t.Intents[axes.IntentNeutral]
	}
	shade, ok := t.Prominence[p]
	if !ok {
		shade = t.Prominence[axes.ProminenceStandard]
	}
	return scale.Color(shade)
}

// Style renders ctx: intent and prominence pick the color, strong
// prominence is bold, subtle is faint, density sets padding and align sets
// horizontal alignment.
func (t Theme) Style(ctx axes.Context) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(t.Color(ctx.Intent, ctx.Prominence)).
		PaddingLeft(t.Padding[ctx.Density]).
		PaddingRight(t.Padding[ctx.Density])

	switch ctx.Prominence {
	case axes.ProminenceHero, axes.ProminenceStrong:
		s = s.Bold(true)
	case axes.ProminenceSubtle:
		s = s.Faint(true)
	}

	switch ctx.Align {
	case axes.AlignCenter:
		s = s.Align(lipgloss.Center)
	case axes.AlignRight:
		s = s.Align(lipgloss.Right)
	case axes.AlignLeft:
		s = s.Align(lipgloss.Left)
	}
	return s
}

// Region returns the color of the i-th preview box.
func (t Theme) Region(i int) lipgloss.Color {
	if len(t.Regions) == 0 {
		return ""
	}
	return t.Regions[i%len(t.Regions)].Color(Shade400)
}
