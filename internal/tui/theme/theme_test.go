package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/iddl/internal/axes"
)

func TestColorFollowsIntentAndProminence(t *testing.T) {
	th := Default()

	assert.Equal(t, red.Color(Shade200), th.Color(axes.IntentCritical, axes.ProminenceHero))
	assert.Equal(t, slate.Color(Shade400), th.Color(axes.IntentNeutral, axes.ProminenceStandard))
	assert.Equal(t, slate.Color(Shade400), th.Color("Unknown", "Unknown"))
}

func TestScaleBounds(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#f8fafc"), slate.Color(Shade50))
	assert.Equal(t, lipgloss.Color("#0f172a"), slate.Color(Shade900))
	assert.Empty(t, slate.Color(Shade(-1)))
	assert.Empty(t, slate.Color(Shade(shadeCount)))
}

func TestStyleFromContext(t *testing.T) {
	th := Default()

	ctx := axes.Root().Derive(axes.Overrides{Prominence: axes.ProminenceHero, Density: axes.DensityComfortable, Align: axes.AlignCenter})
	s := th.Style(ctx)
	assert.True(t, s.GetBold())
	assert.Equal(t, 2, s.GetPaddingLeft())
	assert.Equal(t, lipgloss.Center, s.GetAlignHorizontal())

	subtle := th.Style(axes.Root().Derive(axes.Overrides{Prominence: axes.ProminenceSubtle, Density: axes.DensityCompact}))
	assert.True(t, subtle.GetFaint())
	assert.False(t, subtle.GetBold())
	assert.Zero(t, subtle.GetPaddingLeft())
}

func TestRegionCycles(t *testing.T) {
	th := Default()
	assert.Equal(t, th.Region(0), th.Region(len(th.Regions)))
	assert.NotEqual(t, th.Region(0), th.Region(1))
	assert.Empty(t, Theme{}.Region(3))
}
