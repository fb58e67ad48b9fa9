// Package metrics exposes prometheus collectors for the style and layout engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors groups every engine metric. A nil *Collectors is valid and
// records nothing, so components can take it as an optional dependency.
type Collectors struct {
	AtomsInjected   prometheus.Counter
	AtomCacheHits   prometheus.Counter
	Resolutions     *prometheus.CounterVec
	UnknownRoles    *prometheus.CounterVec
	GridComputes    *prometheus.CounterVec
	GridCacheHits   prometheus.Counter
	DragSessions    prometheus.Counter
	PersistFailures prometheus.Counter
}

// New creates the collectors and registers them with reg. Passing nil skips
// registration, which is convenient in tests.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		AtomsInjected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "iddl",
			Name:      "atoms_injected_total",
			Help:      "Style atoms appended to the shared stylesheet.",
		}),
		AtomCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "iddl",
			Name:      "atom_cache_hits_total",
			Help:      "Atom lookups served from the atom cache.",
		}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "iddl",
			Name:      "style_resolutions_total",
			Help:      "Variant resolutions by role domain.",
		}, []string{"domain"}),
		UnknownRoles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "iddl",
			Name:      "unknown_roles_total",
			Help:      "Role lookups that fell back to the minimal config.",
		}, []string{"domain"}),
		GridComputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "iddl",
			Name:      "grid_computes_total",
			Help:      "Grid template computations by preset.",
		}, []string{"preset"}),
		GridCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "iddl",
			Name:      "grid_cache_hits_total",
			Help:      "Grid templates served from the memo table.",
		}),
		DragSessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "iddl",
			Name:      "drag_sessions_total",
			Help:      "Resize drag sessions started.",
		}),
		PersistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "iddl",
			Name:      "layout_persist_failures_total",
			Help:      "Layout state writes that failed and were swallowed.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			c.AtomsInjected,
			c.AtomCacheHits,
			c.Resolutions,
			c.UnknownRoles,
			c.GridComputes,
			c.GridCacheHits,
			c.DragSessions,
			c.PersistFailures,
		)
	}
	return c
}

// IncAtomsInjected records one new stylesheet rule.
func (c *Collectors) IncAtomsInjected() {
	if c != nil {
		c.AtomsInjected.Inc()
	}
}

// IncAtomCacheHit records an atom served from cache.
func (c *Collectors) IncAtomCacheHit() {
	if c != nil {
		c.AtomCacheHits.Inc()
	}
}

// IncResolution records a variant resolution in domain.
func (c *Collectors) IncResolution(domain string) {
	if c != nil {
		c.Resolutions.WithLabelValues(domain).Inc()
	}
}

// IncUnknownRole records a fallback lookup in domain.
func (c *Collectors) IncUnknownRole(domain string) {
	if c != nil {
		c.UnknownRoles.WithLabelValues(domain).Inc()
	}
}

// IncGridCompute records a template computation for preset.
func (c *Collectors) IncGridCompute(preset string) {
	if c != nil {
		c.GridComputes.WithLabelValues(preset).Inc()
	}
}

// IncGridCacheHit records a memoized template.
func (c *Collectors) IncGridCacheHit() {
	if c != nil {
		c.GridCacheHits.Inc()
	}
}

// IncDragSession records a started drag.
func (c *Collectors) IncDragSession() {
	if c != nil {
		c.DragSessions.Inc()
	}
}

// IncPersistFailure records a swallowed storage failure.
func (c *Collectors) IncPersistFailure() {
	if c != nil {
		c.PersistFailures.Inc()
	}
}
