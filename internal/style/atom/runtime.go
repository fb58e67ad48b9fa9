// Package atom maps (property, value) pairs to short class names and injects
// one rule per new class into a single, append-only stylesheet.
package atom

import (
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/iddl/internal/logger"
	"github.com/alexisbeaulieu97/iddl/internal/metrics"
	"github.com/alexisbeaulieu97/iddl/internal/style"
)

// Runtime owns the atom cache and the stylesheet it feeds.
type Runtime struct {
	mu      sync.Mutex
	abbrev  *Abbreviations
	cache   map[string]struct{}
	sheet   *Sheet
	sink    io.Writer
	log     *logger.Logger
	metrics *metrics.Collectors
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithSink mirrors every injected rule to w as it is appended.
func WithSink(w io.Writer) Option {
	return func(r *Runtime) { r.sink = w }
}

// WithLogger sets the logger used for sink write failures.
func WithLogger(log *logger.Logger) Option {
	return func(r *Runtime) { r.log = log }
}

// WithMetrics records injections and cache hits.
func WithMetrics(m *metrics.Collectors) Option {
	return func(r *Runtime) { r.metrics = m }
}

// WithProperties builds the abbreviation table from properties instead of KnownProperties.
func WithProperties(properties []string) Option {
	return func(r *Runtime) { r.abbrev = BuildAbbreviations(properties) }
}

// NewRuntime creates an isolated runtime. Most callers want Default.
func NewRuntime(opts ...Option) *Runtime {
	r := &Runtime{cache: make(map[string]struct{})}
	for _, opt := range opts {
		opt(r)
	}
	if r.abbrev == nil {
		r.abbrev = defaultAbbreviations()
	}
	if r.log == nil {
		r.log = logger.Nop()
	}
	return r
}

var (
	defaultOnce    sync.Once
	defaultRuntime *Runtime

	abbrevOnce sync.Once
	abbrevTab  *Abbreviations
)

func defaultAbbreviations() *Abbreviations {
	abbrevOnce.Do(func() { abbrevTab = BuildAbbreviations(KnownProperties) })
	return abbrevTab
}

// Default returns the process-wide runtime.
func Default() *Runtime {
	defaultOnce.Do(func() { defaultRuntime = NewRuntime() })
	return defaultRuntime
}

// ClassName computes the class for (property, value) without injecting anything.
func (r *Runtime) ClassName(property, value string) string {
	prop := style.Kebab(property)
	return r.abbrev.Prefix(prop) + FormatValue(value)
}

// Atom returns the class name for (property, value), appending its rule to
// the stylesheet the first time the class is seen.
func (r *Runtime) Atom(property, value string) string {
	prop := style.Kebab(property)
	class := r.ClassName(prop, value)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cache[class]; ok {
		r.metrics.IncAtomCacheHit()
		return class
	}
	if r.sheet == nil {
		r.sheet = &Sheet{sink: r.sink}
	}
	rule := Rule{Class: class, Property: prop, Value: NormalizeValue(value)}
	if err := r.sheet.append(rule); err != nil {
		r.log.WithFields(map[string]any{"class": class}).Error(err, "mirror stylesheet rule")
	}
	r.cache[class] = struct{}{}
	r.metrics.IncAtomsInjected()
	return class
}

// Atoms injects every declaration of f and returns the classes sorted by property.
func (r *Runtime) Atoms(f style.Fragment) []string {
	props := make([]string, 0, len(f))
	for p := range f {
		props = append(props, p)
	}
	sort.Strings(props)
	classes := make([]string, 0, len(props))
	for _, p := range props {
		classes = append(classes, r.Atom(p, f[p]))
	}
	return classes
}

// Join is Atoms joined into a class attribute value.
func (r *Runtime) Join(f style.Fragment) string {
	return strings.Join(r.Atoms(f), " ")
}

// Has reports whether class has been injected.
func (r *Runtime) Has(class string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.cache[class]
	return ok
}

// Len returns the number of injected rules.
func (r *Runtime) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sheet.Len()
}

// Rules returns the injected rules in first-use order.
func (r *Runtime) Rules() []Rule {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sheet.Rules()
}

// Stylesheet renders the current stylesheet.
func (r *Runtime) Stylesheet() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sheet.String()
}

// Abbreviation exposes the table entry used for property.
func (r *Runtime) Abbreviation(property string) string {
	return r.abbrev.Lookup(style.Kebab(property))
}
