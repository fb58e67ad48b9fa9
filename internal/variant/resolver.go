// Package variant turns a role name plus an attribute context into a concrete
// style descriptor, tag and ARIA attribute set.
package variant

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/iddl/internal/axes"
	"github.com/alexisbeaulieu97/iddl/internal/metrics"
	"github.com/alexisbeaulieu97/iddl/internal/role"
	"github.com/alexisbeaulieu97/iddl/internal/style"
	"github.com/alexisbeaulieu97/iddl/internal/style/atom"
)

// Resolved is the outcome of one resolution.
type Resolved struct {
	Domain     role.Domain
	Role       string
	Context    axes.Context
	Tag        string
	Aria       map[string]string
	Renderer   string
	Meta       map[string]string
	Descriptor *style.Descriptor
}

// Style returns the effective property → value map.
func (r Resolved) Style() map[string]string {
	if r.Descriptor == nil {
		return map[string]string{}
	}
	return r.Descriptor.Map()
}

// ClassNames injects each effective declaration through rt and returns the
// atom classes sorted by property.
func (r Resolved) ClassNames(rt *atom.Runtime) []string {
	if rt == nil {
		rt = atom.Default()
	}
	return rt.Atoms(r.Style())
}

// ClassName is ClassNames joined with single spaces.
func (r Resolved) ClassName(rt *atom.Runtime) string {
	return strings.Join(r.ClassNames(rt), " ")
}

// IsComplex reports whether rendering is delegated to Renderer.
func (r Resolved) IsComplex() bool {
	return r.Renderer != ""
}

// step applies one stage of resolution to the descriptor.
type step func(d *style.Descriptor, cfg role.Config, name string, ctx axes.Context)

// Resolver resolves roles against a registry. It holds no per-call state.
type Resolver struct {
	registry *role.Registry
	metrics  *metrics.Collectors
	steps    []step
}

// New creates a resolver over reg. m may be nil.
func New(reg *role.Registry, m *metrics.Collectors) *Resolver {
	return &Resolver{
		registry: reg,
		metrics:  m,
		steps:    []step{applyBase, applyProminence, applyDensity, applyIntent, applyAlign, applyCompound},
	}
}

// Resolve looks up (domain, name) and layers base, axis and compound
// fragments into a descriptor. Unknown roles resolve to the fallback config.
// The result depends only on the registry contents and the inputs.
func (r *Resolver) Resolve(domain role.Domain, name string, ctx axes.Context) Resolved {
	cfg := r.registry.Lookup(domain, name)
	r.metrics.IncResolution(string(domain))

	d := style.NewDescriptor()
	for _, s := range r.steps {
		s(d, cfg, name, ctx)
	}

	out := Resolved{
		Domain:     domain,
		Role:       name,
		Context:    ctx,
		Tag:        cfg.TagFor(ctx.Prominence),
		Aria:       copyMap(cfg.Aria),
		Meta:       copyMap(cfg.Meta),
		Descriptor: d,
	}
	if cfg.IsComplex() {
		out.Renderer = cfg.Renderer
	}
	return out
}

func applyBase(d *style.Descriptor, cfg role.Config, _ string, _ axes.Context) {
	d.Apply(style.LayerBase, "base", cfg.Base)
}

func applyProminence(d *style.Descriptor, cfg role.Config, _ string, ctx axes.Context) {
	if f, ok := cfg.Prominence[ctx.Prominence]; ok {
		d.Apply(style.LayerAxis, "prominence:"+string(ctx.Prominence), f)
	}
}

func applyDensity(d *style.Descriptor, cfg role.Config, _ string, ctx axes.Context) {
	if f, ok := cfg.Density[ctx.Density]; ok {
		d.Apply(style.LayerAxis, "density:"+string(ctx.Density), f)
	}
}

func applyIntent(d *style.Descriptor, cfg role.Config, _ string, ctx axes.Context) {
	if f, ok := cfg.Intent[ctx.Intent]; ok {
		d.Apply(style.LayerAxis, "intent:"+string(ctx.Intent), f)
	}
}

func applyAlign(d *style.Descriptor, cfg role.Config, _ string, ctx axes.Context) {
	if ctx.Align == "" {
		return
	}
	if f, ok := cfg.Align[ctx.Align]; ok {
		d.Apply(style.LayerAxis, "align:"+string(ctx.Align), f)
	}
}

// Compound overrides apply in registration order; among overrides a later
// match wins for the same property.
func applyCompound(d *style.Descriptor, cfg role.Config, name string, ctx axes.Context) {
	for i, o := range cfg.Compound {
		if o.When.Matches(name, ctx) {
			d.Apply(style.LayerOverride, fmt.Sprintf("compound[%d]", i), o.Style)
		}
	}
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
