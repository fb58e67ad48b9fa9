package axes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootDefaults(t *testing.T) {
	t.Parallel()

	root := Root()
	assert.Equal(t, ProminenceStandard, root.Prominence)
	assert.Equal(t, DensityStandard, root.Density)
	assert.Equal(t, IntentNeutral, root.Intent)
	assert.Equal(t, 0, root.Depth)
	assert.Empty(t, root.Role)
}

func TestDeriveWithoutOverridesReproducesParent(t *testing.T) {
	t.Parallel()

	parents := []Context{
		Root(),
		{Role: "Card", Prominence: ProminenceHero, Density: DensityCompact, Intent: IntentCritical, Align: AlignCenter, Depth: 4},
		{Prominence: ProminenceSubtle, Density: DensityComfortable, Intent: IntentInfo, Depth: 1},
	}

	for _, parent := range parents {
		child := Derive(parent, Overrides{})
		assert.Equal(t, parent.Role, child.Role)
		assert.Equal(t, parent.Prominence, child.Prominence)
		assert.Equal(t, parent.Density, child.Density)
		assert.Equal(t, parent.Intent, child.Intent)
		assert.Equal(t, parent.Align, child.Align)
		assert.Equal(t, parent.Depth+1, child.Depth)
	}
}

func TestDeriveOverridesOnlyNamedAxes(t *testing.T) {
	t.Parallel()

	parent := Context{Prominence: ProminenceStrong, Density: DensityCompact, Intent: IntentBrand, Depth: 2}
	child := Derive(parent, Overrides{Intent: IntentCritical})

	assert.Equal(t, ProminenceStrong, child.Prominence)
	assert.Equal(t, DensityCompact, child.Density)
	assert.Equal(t, IntentCritical, child.Intent)
	assert.Equal(t, 3, child.Depth)
	assert.Equal(t, IntentBrand, parent.Intent, "parent must not be mutated")
}

func TestChainAccumulatesDepth(t *testing.T) {
	t.Parallel()

	ctx := Chain(Root(),
		Overrides{Role: "Toolbar", Density: DensityCompact},
		Overrides{},
		Overrides{Prominence: ProminenceSubtle},
	)

	assert.Equal(t, 3, ctx.Depth)
	assert.Equal(t, "Toolbar", ctx.Role)
	assert.Equal(t, DensityCompact, ctx.Density)
	assert.Equal(t, ProminenceSubtle, ctx.Prominence)
	assert.Equal(t, IntentNeutral, ctx.Intent)
}

func TestOverridesIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, Overrides{}.IsZero())
	assert.False(t, Overrides{Align: AlignRight}.IsZero())
}

func TestParseAxes(t *testing.T) {
	t.Parallel()

	p, err := ParseProminence("hero")
	require.NoError(t, err)
	assert.Equal(t, ProminenceHero, p)

	d, err := ParseDensity(" Comfortable ")
	require.NoError(t, err)
	assert.Equal(t, DensityComfortable, d)

	i, err := ParseIntent("")
	require.NoError(t, err)
	assert.Equal(t, Intent(""), i)

	a, err := ParseAlign("CENTER")
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, a)

	_, err = ParseIntent("Danger")
	require.Error(t, err)
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, p := range Prominences() {
		assert.True(t, p.Valid())
	}
	for _, d := range Densities() {
		assert.True(t, d.Valid())
	}
	for _, i := range Intents() {
		assert.True(t, i.Valid())
	}
	assert.False(t, Prominence("Loud").Valid())
	assert.False(t, Align("").Valid())
}
