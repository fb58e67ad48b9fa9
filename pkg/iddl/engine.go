// Package iddl is the public entry point of the attribute resolution and
// adaptive layout engine. An Engine bundles the role registry, the variant
// resolver, the atomic style runtime, the grid engine and panel state
// persistence behind one value.
package iddl

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/iddl/internal/axes"
	"github.com/alexisbeaulieu97/iddl/internal/config"
	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
	"github.com/alexisbeaulieu97/iddl/internal/logger"
	"github.com/alexisbeaulieu97/iddl/internal/metrics"
	"github.com/alexisbeaulieu97/iddl/internal/role"
	"github.com/alexisbeaulieu97/iddl/internal/storage"
	"github.com/alexisbeaulieu97/iddl/internal/style/atom"
	"github.com/alexisbeaulieu97/iddl/internal/variant"
)

// Engine is safe for concurrent use.
type Engine struct {
	roles    *role.Registry
	resolver *variant.Resolver
	atoms    *atom.Runtime
	grids    *grid.Engine
	store    storage.Store
	log      *logger.Logger
	metrics  *metrics.Collectors
	builtins bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger shared by every component.
func WithLogger(log *Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithMetrics sets the collectors shared by every component.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithStore sets the store panels persist their state to.
func WithStore(s Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithAtomRuntime replaces the atom runtime. By default each Engine owns its
// own runtime and stylesheet.
func WithAtomRuntime(rt *AtomRuntime) Option {
	return func(e *Engine) { e.atoms = rt }
}

// WithoutBuiltinRoles starts from an empty role registry.
func WithoutBuiltinRoles() Option {
	return func(e *Engine) { e.builtins = false }
}

// New creates an Engine with the built-in roles and presets registered.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{builtins: true}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.Nop()
	}
	if e.store == nil {
		e.store = storage.NewMemoryStore()
	}
	if e.atoms == nil {
		e.atoms = atom.NewRuntime(atom.WithLogger(e.log), atom.WithMetrics(e.metrics))
	}

	e.roles = role.NewRegistry(e.log, e.metrics)
	if e.builtins {
		if err := role.RegisterBuiltins(e.roles); err != nil {
			return nil, err
		}
	}
	e.resolver = variant.New(e.roles, e.metrics)
	e.grids = grid.NewEngine(e.log, e.metrics)
	return e, nil
}

// Roles exposes the role registry for custom registrations.
func (e *Engine) Roles() *RoleRegistry { return e.roles }

// Grids exposes the preset registry and grid computation.
func (e *Engine) Grids() *GridEngine { return e.grids }

// Atoms exposes the atomic style runtime.
func (e *Engine) Atoms() *AtomRuntime { return e.atoms }

// LoadDefinitions registers the roles and presets of every definition
// document matched by patterns. Documents are applied in path order; an
// invalid document is skipped and its error joined into the result.
func (e *Engine) LoadDefinitions(ctx context.Context, patterns ...string) ([]*Document, error) {
	docs, err := config.Load(ctx, patterns...)
	if err != nil {
		return nil, err
	}
	var errs []error
	for _, doc := range docs {
		if err := config.Apply(doc, e.roles, e.grids); err != nil {
			errs = append(errs, err)
		}
	}
	return docs, errors.Join(errs...)
}

// Watch re-applies definitions matched by patterns whenever they change,
// until ctx is done.
func (e *Engine) Watch(ctx context.Context, patterns ...string) error {
	w, err := config.NewWatcher(patterns, func(doc *config.Document) error {
		return config.Apply(doc, e.roles, e.grids)
	}, e.log, 0)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

// RootContext returns the context at the top of every tree.
func (e *Engine) RootContext() Context { return axes.Root() }

// DeriveContext builds the child context for a container boundary.
func (e *Engine) DeriveContext(parent Context, o Overrides) Context {
	return axes.Derive(parent, o)
}
