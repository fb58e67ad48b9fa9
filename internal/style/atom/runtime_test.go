package atom

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/iddl/internal/metrics"
	"github.com/alexisbeaulieu97/iddl/internal/style"
)

func TestAtomIsIdempotent(t *testing.T) {
	t.Parallel()

	sink := &bytes.Buffer{}
	rt := NewRuntime(WithSink(sink))

	first := rt.Atom("fontSize", "var(--font-size-xl)")
	second := rt.Atom("font-size", "var(--font-size-xl)")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, rt.Len())
	assert.Equal(t, 1, strings.Count(sink.String(), "\n"), "exactly one stylesheet mutation")
	assert.True(t, rt.Has(first))
}

func TestRuleShape(t *testing.T) {
	t.Parallel()

	rt := NewRuntime()
	class := rt.Atom("width", "50%")

	assert.Equal(t, "w-50%", class)
	rules := rt.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, `.w-50\% { width: 50%; }`, rules[0].String())
	assert.Equal(t, rules[0].String()+"\n", rt.Stylesheet())
}

func TestClassNameFormatting(t *testing.T) {
	t.Parallel()

	rt := NewRuntime()

	assert.Equal(t, "gtc-200px_1fr_300px", rt.ClassName("gridTemplateColumns", "200px   1fr\t300px"))
	assert.Equal(t, "ff-Inter,sans-serif", rt.ClassName("font-family", "Inter , sans-serif"))
	assert.Equal(t, "ga-1/2", rt.ClassName("grid-area", "1 / 2"))
}

func TestEscapeClass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `fosi-var\(--font-size-xl\)`, EscapeClass("fosi-var(--font-size-xl)"))
	assert.Equal(t, `op-0\.5`, EscapeClass("op-0.5"))
	assert.Equal(t, `ga-1\/2`, EscapeClass("ga-1/2"))
	assert.Equal(t, `x-a\,b\|c`, EscapeClass("x-a,b|c"))
	assert.Equal(t, `gta-\"a_b\"`, EscapeClass(`gta-"a_b"`))
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"  1px   solid  red ":       "1px_solid_red",
		"rgb(0 , 0 , 0)":            "rgb(0,0,0)",
		"16px / 1.5":                "16px/1.5",
		"\"header header\"\n\"a b\"": "\"header_header\"_\"a_b\"",
		"snake_case  x":             `snake\_case_x`,
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatValue(in), in)
	}
	assert.Equal(t, "1px solid red", NormalizeValue("  1px \n solid  red"))
}

func TestAbbreviationsAreCollisionFree(t *testing.T) {
	t.Parallel()

	tab := BuildAbbreviations(KnownProperties)
	require.Equal(t, len(KnownProperties), tab.Len())

	seen := make(map[string]string)
	for prop, abbr := range tab.Entries() {
		if other, dup := seen[abbr]; dup {
			t.Fatalf("abbreviation %q used by %q and %q", abbr, prop, other)
		}
		seen[abbr] = prop
	}

	assert.Equal(t, "fosi", tab.Lookup("font-size"))
	assert.Equal(t, "fost", tab.Lookup("font-style"))
	assert.Equal(t, "co", tab.Lookup("color"))
	assert.Equal(t, "g", tab.Lookup("gap"))
}

func TestAbbreviationsNumericFallback(t *testing.T) {
	t.Parallel()

	tab := BuildAbbreviations([]string{"x-", "x"})
	assert.Equal(t, "x", tab.Lookup("x"))
	assert.Equal(t, "x2", tab.Lookup("x-"))
}

func TestUnknownPropertyFallsBackToFullName(t *testing.T) {
	t.Parallel()

	rt := NewRuntime()
	assert.Equal(t, "_scroll-snap-type_x_mandatory", rt.ClassName("scroll-snap-type", "x mandatory"))
	assert.Equal(t, "_--accent_var(--blue)", rt.ClassName("--accent", "var(--blue)"))
	assert.Equal(t, "_accent_var(--blue)", rt.ClassName("accent", "var(--blue)"))
}

func TestDistinctDeclarationsNeverShareAClass(t *testing.T) {
	t.Parallel()

	rt := NewRuntime()
	pairs := [][2]string{
		{"font-family", "Open Sans"},
		{"font-family", "Open_Sans"},
		{"font-family", `Open\_Sans`},
		{"font-family", "a_ b"},
		{"font-family", "a _b"},
		{"color", "x-red"},
		{"--c-x", "red"},
		{"co-x", "red"},
		{"co", "x-red"},
		{"--co", "x-red"},
	}
	seen := make(map[string][2]string, len(pairs))
	for _, pair := range pairs {
		class := rt.Atom(pair[0], pair[1])
		if other, dup := seen[class]; dup {
			t.Fatalf("class %q shared by %v and %v", class, pair, other)
		}
		seen[class] = pair
	}
	assert.Equal(t, len(pairs), rt.Len())

	assert.Equal(t, `ff-Open\_Sans`, rt.ClassName("font-family", "Open_Sans"))
	assert.Contains(t, rt.Stylesheet(), `.ff-Open\\_Sans { font-family: Open_Sans; }`)
	assert.Contains(t, rt.Stylesheet(), ".ff-Open_Sans { font-family: Open Sans; }")
}

func TestAtomsSortedByProperty(t *testing.T) {
	t.Parallel()

	rt := NewRuntime()
	classes := rt.Atoms(style.Fragment{"display": "flex", "color": "red"})
	assert.Equal(t, []string{"co-red", "d-flex"}, classes)
	assert.Equal(t, "co-red d-flex", rt.Join(style.Fragment{"display": "flex", "color": "red"}))
	assert.Equal(t, 2, rt.Len())
}

func TestConcurrentAtomsInjectOnce(t *testing.T) {
	t.Parallel()

	m := metrics.New(nil)
	rt := NewRuntime(WithMetrics(m))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rt.Atom("padding", fmt.Sprintf("%dpx", i%4))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, rt.Len())
	assert.Equal(t, 4.0, testutil.ToFloat64(m.AtomsInjected))
	assert.Equal(t, 28.0, testutil.ToFloat64(m.AtomCacheHits))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestSinkFailureKeepsRule(t *testing.T) {
	t.Parallel()

	rt := NewRuntime(WithSink(failingWriter{}))
	class := rt.Atom("opacity", "0.5")

	assert.True(t, rt.Has(class))
	assert.Equal(t, 1, rt.Len())
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
