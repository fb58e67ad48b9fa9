package atom

import (
	"sort"
	"strconv"
	"strings"
)

// KnownProperties is the property set the abbreviation table is built from.
var KnownProperties = []string{
	"align-content", "align-items", "align-self", "aspect-ratio",
	"background", "background-color", "border", "border-bottom", "border-color",
	"border-left", "border-radius", "border-right", "border-style", "border-top",
	"border-width", "bottom", "box-shadow", "box-sizing", "color", "column-gap",
	"cursor", "display", "flex", "flex-basis", "flex-direction", "flex-grow",
	"flex-shrink", "flex-wrap", "font-family", "font-size", "font-style",
	"font-weight", "gap", "grid-area", "grid-column", "grid-row",
	"grid-template-areas", "grid-template-columns", "grid-template-rows",
	"height", "inset", "isolation", "justify-content", "justify-items", "left",
	"letter-spacing", "line-height", "margin", "margin-bottom", "margin-left",
	"margin-right", "margin-top", "max-height", "max-width", "min-height",
	"min-width", "opacity", "outline", "overflow", "overflow-x", "overflow-y",
	"padding", "padding-bottom", "padding-left", "padding-right", "padding-top",
	"pointer-events", "position", "resize", "right", "row-gap", "text-align",
	"text-decoration", "text-overflow", "text-transform", "top", "transition",
	"user-select", "vertical-align", "white-space", "width", "word-break",
	"z-index",
}

// Abbreviations maps property names to short, collision-free prefixes.
type Abbreviations struct {
	byProperty map[string]string
	taken      map[string]string
}

// BuildAbbreviations computes the table for properties. Each property starts
// from the first letter of every hyphen segment; colliding properties expand
// their segment prefixes one character at a time until they separate, and any
// that can no longer grow receive a numeric suffix in sorted order.
func BuildAbbreviations(properties []string) *Abbreviations {
	props := dedupeSorted(properties)
	segments := make(map[string][]string, len(props))
	level := make(map[string]int, len(props))
	for _, p := range props {
		segments[p] = strings.Split(p, "-")
		level[p] = 1
	}

	candidate := func(p string) string {
		var b strings.Builder
		for _, seg := range segments[p] {
			n := level[p]
			if n > len(seg) {
				n = len(seg)
			}
			b.WriteString(seg[:n])
		}
		return b.String()
	}
	maxLevel := func(p string) int {
		longest := 0
		for _, seg := range segments[p] {
			if len(seg) > longest {
				longest = len(seg)
			}
		}
		return longest
	}

	for {
		groups := make(map[string][]string)
		for _, p := range props {
			c := candidate(p)
			groups[c] = append(groups[c], p)
		}

		grew := false
		for _, members := range groups {
			if len(members) < 2 {
				continue
			}
			for _, p := range members {
				if level[p] < maxLevel(p) {
					level[p]++
					grew = true
				}
			}
		}
		if !grew {
			break
		}
	}

	a := &Abbreviations{
		byProperty: make(map[string]string, len(props)),
		taken:      make(map[string]string, len(props)),
	}
	for _, p := range props {
		base := candidate(p)
		abbr := base
		for n := 2; ; n++ {
			if _, clash := a.taken[abbr]; !clash {
				break
			}
			abbr = base + strconv.Itoa(n)
		}
		a.byProperty[p] = abbr
		a.taken[abbr] = p
	}
	return a
}

// Lookup returns the abbreviation for a kebab-case property. Properties
// outside the table fall back to '_' followed by their full name, which no
// table entry can start with.
func (a *Abbreviations) Lookup(property string) string {
	if abbr, ok := a.byProperty[property]; ok {
		return abbr
	}
	return "_" + escapeFragment(property)
}

// Prefix is the class-name prefix for property: the table entry and '-', or
// the fallback name and '_'. Property names hold no whitespace, so the first
// unescaped '_' after a fallback name always ends it.
func (a *Abbreviations) Prefix(property string) string {
	if abbr, ok := a.byProperty[property]; ok {
		return abbr + "-"
	}
	return a.Lookup(property) + "_"
}

// Len returns the number of tabled properties.
func (a *Abbreviations) Len() int {
	return len(a.byProperty)
}

// Entries returns property → abbreviation pairs.
func (a *Abbreviations) Entries() map[string]string {
	out := make(map[string]string, len(a.byProperty))
	for k, v := range a.byProperty {
		out[k] = v
	}
	return out
}

func dedupeSorted(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, p := range in {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
