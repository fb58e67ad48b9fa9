// Package style models resolved presentation as CSS declarations keyed by
// property, with explicit precedence between base, axis and override layers.
package style

import (
	"sort"
	"strings"
	"unicode"
)

// Fragment is a set of CSS declarations keyed by property name. Property
// names may be kebab-case or camelCase; they are normalized on application.
type Fragment map[string]string

// Clone returns an independent copy of the fragment.
func (f Fragment) Clone() Fragment {
	if f == nil {
		return nil
	}
	out := make(Fragment, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Merge layers fragments left to right; later values replace earlier ones.
func Merge(fragments ...Fragment) Fragment {
	out := Fragment{}
	for _, f := range fragments {
		for k, v := range f {
			out[Kebab(k)] = v
		}
	}
	return out
}

// Layer orders declaration sources. A declaration from a higher layer always
// wins over one from a lower layer for the same property, whatever order the
// fragments were applied in.
type Layer int

const (
	LayerBase Layer = iota
	LayerAxis
	LayerOverride
)

func (l Layer) String() string {
	switch l {
	case LayerBase:
		return "base"
	case LayerAxis:
		return "axis"
	case LayerOverride:
		return "override"
	default:
		return "unknown"
	}
}

// Declaration is one effective property/value pair.
type Declaration struct {
	Property string
	Value    string
	Layer    Layer
	Source   string
}

// Descriptor accumulates fragments into one effective declaration per property.
type Descriptor struct {
	decls    map[string]Declaration
	sources  []string
	shadowed []Declaration
}

// NewDescriptor returns an empty descriptor.
func NewDescriptor() *Descriptor {
	return &Descriptor{decls: make(map[string]Declaration)}
}

// Apply adds every declaration of f at the given layer. Properties are applied
// in sorted order so the result never depends on map iteration. A replaced
// declaration is kept in Shadowed rather than dropped silently.
func (d *Descriptor) Apply(layer Layer, source string, f Fragment) {
	if len(f) == 0 {
		return
	}
	d.sources = append(d.sources, source)

	props := make([]string, 0, len(f))
	for p := range f {
		props = append(props, p)
	}
	sort.Strings(props)

	for _, raw := range props {
		prop := Kebab(raw)
		next := Declaration{Property: prop, Value: strings.TrimSpace(f[raw]), Layer: layer, Source: source}
		existing, ok := d.decls[prop]
		switch {
		case !ok:
			d.decls[prop] = next
		case layer >= existing.Layer:
			d.shadowed = append(d.shadowed, existing)
			d.decls[prop] = next
		default:
			d.shadowed = append(d.shadowed, next)
		}
	}
}

// Get returns the effective declaration for property.
func (d *Descriptor) Get(property string) (Declaration, bool) {
	decl, ok := d.decls[Kebab(property)]
	return decl, ok
}

// Len returns the number of effective properties.
func (d *Descriptor) Len() int {
	return len(d.decls)
}

// Declarations returns the effective declarations sorted by property.
func (d *Descriptor) Declarations() []Declaration {
	out := make([]Declaration, 0, len(d.decls))
	for _, decl := range d.decls {
		out = append(out, decl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Property < out[j].Property })
	return out
}

// Map returns the effective property → value map.
func (d *Descriptor) Map() map[string]string {
	out := make(map[string]string, len(d.decls))
	for prop, decl := range d.decls {
		out[prop] = decl.Value
	}
	return out
}

// Sources lists the fragments applied, in application order.
func (d *Descriptor) Sources() []string {
	return append([]string(nil), d.sources...)
}

// Shadowed lists declarations that lost to another declaration for the same property.
func (d *Descriptor) Shadowed() []Declaration {
	return append([]Declaration(nil), d.shadowed...)
}

// Equal reports whether both descriptors yield the same effective properties.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.decls) != len(other.decls) {
		return false
	}
	for prop, decl := range d.decls {
		o, ok := other.decls[prop]
		if !ok || o.Value != decl.Value {
			return false
		}
	}
	return true
}

// Kebab converts a camelCase property name to kebab-case. Kebab-case and
// custom properties (--token) pass through unchanged.
func Kebab(property string) string {
	property = strings.TrimSpace(property)
	if strings.HasPrefix(property, "--") {
		return property
	}
	var b strings.Builder
	b.Grow(len(property) + 4)
	for i, r := range property {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
