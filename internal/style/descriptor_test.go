package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrideBeatsAxisRegardlessOfOrder(t *testing.T) {
	t.Parallel()

	d := NewDescriptor()
	d.Apply(LayerOverride, "compound[0]", Fragment{"font-size": "var(--font-size-xl)"})
	d.Apply(LayerAxis, "prominence:Hero", Fragment{"font-size": "var(--font-size-3xl)", "font-weight": "600"})

	decl, ok := d.Get("font-size")
	require.True(t, ok)
	assert.Equal(t, "var(--font-size-xl)", decl.Value)
	assert.Equal(t, LayerOverride, decl.Layer)

	weight, ok := d.Get("fontWeight")
	require.True(t, ok)
	assert.Equal(t, "600", weight.Value)

	require.Len(t, d.Shadowed(), 1)
	assert.Equal(t, "prominence:Hero", d.Shadowed()[0].Source)
}

func TestSameLayerLaterWins(t *testing.T) {
	t.Parallel()

	d := NewDescriptor()
	d.Apply(LayerAxis, "prominence", Fragment{"padding": "4px"})
	d.Apply(LayerAxis, "density", Fragment{"padding": "2px", "gap": "2px"})

	want := map[string]string{"padding": "2px", "gap": "2px"}
	if diff := cmp.Diff(want, d.Map()); diff != "" {
		t.Errorf("unexpected declarations (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"prominence", "density"}, d.Sources())
}

func TestEqualComparesEffectiveValues(t *testing.T) {
	t.Parallel()

	a := NewDescriptor()
	a.Apply(LayerBase, "base", Fragment{"display": "flex"})
	a.Apply(LayerAxis, "intent", Fragment{"color": "var(--color-text)"})

	b := NewDescriptor()
	b.Apply(LayerAxis, "intent", Fragment{"color": "var(--color-text)"})
	b.Apply(LayerBase, "base", Fragment{"display": "flex"})

	assert.True(t, a.Equal(b))

	b.Apply(LayerOverride, "x", Fragment{"display": "grid"})
	assert.False(t, a.Equal(b))
}

func TestKebab(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"fontSize":            "font-size",
		"gridTemplateColumns": "grid-template-columns",
		"color":               "color",
		"border-radius":       "border-radius",
		"--accent":            "--accent",
	}
	for in, want := range cases {
		assert.Equal(t, want, Kebab(in), in)
	}
}

func TestMergeNormalizesKeys(t *testing.T) {
	t.Parallel()

	got := Merge(Fragment{"fontSize": "12px"}, Fragment{"font-size": "14px", "color": "red"})
	assert.Equal(t, Fragment{"font-size": "14px", "color": "red"}, got)
}
