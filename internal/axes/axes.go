// Package axes defines the semantic presentation axes (prominence, density,
// intent, alignment) and the attribute context that cascades them down a
// component tree.
package axes

import (
	"fmt"
	"strings"
)

// Prominence controls visual weight.
type Prominence string

const (
	ProminenceHero     Prominence = "Hero"
	ProminenceStrong   Prominence = "Strong"
	ProminenceStandard Prominence = "Standard"
	ProminenceSubtle   Prominence = "Subtle"
)

// Density controls the spacing scale.
type Density string

const (
	DensityCompact     Density = "Compact"
	DensityStandard    Density = "Standard"
	DensityComfortable Density = "Comfortable"
)

// Intent controls semantic color.
type Intent string

const (
	IntentNeutral  Intent = "Neutral"
	IntentBrand    Intent = "Brand"
	IntentPositive Intent = "Positive"
	IntentCaution  Intent = "Caution"
	IntentCritical Intent = "Critical"
	IntentInfo     Intent = "Info"
)

// Align controls text alignment. It has no root default.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

var (
	prominences = []Prominence{ProminenceHero, ProminenceStrong, ProminenceStandard, ProminenceSubtle}
	densities   = []Density{DensityCompact, DensityStandard, DensityComfortable}
	intents     = []Intent{IntentNeutral, IntentBrand, IntentPositive, IntentCaution, IntentCritical, IntentInfo}
	aligns      = []Align{AlignLeft, AlignCenter, AlignRight}
)

// Prominences lists every prominence value in declaration order.
func Prominences() []Prominence { return append([]Prominence(nil), prominences...) }

// Densities lists every density value in declaration order.
func Densities() []Density { return append([]Density(nil), densities...) }

// Intents lists every intent value in declaration order.
func Intents() []Intent { return append([]Intent(nil), intents...) }

// Valid reports whether p is one of the known prominence values.
func (p Prominence) Valid() bool { return contains(prominences, p) }

// Valid reports whether d is one of the known density values.
func (d Density) Valid() bool { return contains(densities, d) }

// Valid reports whether i is one of the known intent values.
func (i Intent) Valid() bool { return contains(intents, i) }

// Valid reports whether a is one of the known alignment values.
func (a Align) Valid() bool { return contains(aligns, a) }

// ParseProminence matches s case-insensitively. Empty input yields the unset value.
func ParseProminence(s string) (Prominence, error) {
	return parse(s, prominences, "prominence")
}

// ParseDensity matches s case-insensitively. Empty input yields the unset value.
func ParseDensity(s string) (Density, error) {
	return parse(s, densities, "density")
}

// ParseIntent matches s case-insensitively. Empty input yields the unset value.
func ParseIntent(s string) (Intent, error) {
	return parse(s, intents, "intent")
}

// ParseAlign matches s case-insensitively. Empty input yields the unset value.
func ParseAlign(s string) (Align, error) {
	return parse(s, aligns, "align")
}

func parse[T ~string](s string, values []T, axis string) (T, error) {
	var zero T
	s = strings.TrimSpace(s)
	if s == "" {
		return zero, nil
	}
	for _, v := range values {
		if strings.EqualFold(string(v), s) {
			return v, nil
		}
	}
	return zero, fmt.Errorf("unknown %s %q", axis, s)
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
