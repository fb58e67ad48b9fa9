package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/iddl/internal/axes"
	"github.com/alexisbeaulieu97/iddl/internal/tui/theme"
)

var (
	palette = theme.Default()

	accentColor = palette.Color(axes.IntentBrand, axes.ProminenceHero)

	titleStyle = palette.Style(axes.Root().Derive(axes.Overrides{
		Prominence: axes.ProminenceHero,
		Intent:     axes.IntentBrand,
		Density:    axes.DensityStandard,
	}))

	cssStyle = palette.Style(axes.Root().Derive(axes.Overrides{
		Prominence: axes.ProminenceSubtle,
		Density:    axes.DensityCompact,
	}))

	statusStyle = palette.Style(axes.Root().Derive(axes.Overrides{
		Intent:  axes.IntentInfo,
		Density: axes.DensityCompact,
	}))

	errorStyle = palette.Style(axes.Root().Derive(axes.Overrides{
		Prominence: axes.ProminenceStrong,
		Intent:     axes.IntentCritical,
		Density:    axes.DensityCompact,
	}))
)

func regionStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(palette.Region(i))
}
