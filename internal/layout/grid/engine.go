package grid

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/iddl/internal/logger"
	"github.com/alexisbeaulieu97/iddl/internal/metrics"
	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

// Engine holds named presets and memoizes computed templates. Results are
// keyed by preset, the sorted present set and the sorted override map.
type Engine struct {
	mu      sync.RWMutex
	presets map[string]Preset
	cache   map[string]Template
	gen     uint64
	log     *logger.Logger
	metrics *metrics.Collectors
}

// NewEngine creates an engine preloaded with the builtin presets.
func NewEngine(log *logger.Logger, m *metrics.Collectors) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{
		presets: Builtins(),
		cache:   make(map[string]Template),
		log:     log,
		metrics: m,
	}
}

// Register adds or replaces a preset. Replacing drops memoized templates.
func (e *Engine) Register(p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.presets[p.Name]; exists {
		e.log.WithFields(map[string]any{"preset": p.Name}).Warn("preset re-registered; replacing previous definition")
	}
	e.presets[p.Name] = p
	e.cache = make(map[string]Template)
	e.gen++
	return nil
}

// Preset returns the named preset.
func (e *Engine) Preset(name string) (Preset, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	p, ok := e.presets[name]
	return p, ok
}

// Names lists the registered preset names, sorted.
func (e *Engine) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.presets))
	for name := range e.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compute resolves the named preset and computes its template.
func (e *Engine) Compute(preset string, present []string, overrides map[string]string) (Template, error) {
	regions := make([]Region, 0, len(present))
	for _, name := range present {
		regions = append(regions, Region{Name: name, ExplicitSize: overrides[name]})
	}
	return e.ComputeRegions(preset, regions)
}

// ComputeRegions is Compute over full region state.
func (e *Engine) ComputeRegions(preset string, regions []Region) (Template, error) {
	key := cacheKey(preset, regions)

	e.mu.RLock()
	p, ok := e.presets[preset]
	cached, hit := e.cache[key]
	gen := e.gen
	e.mu.RUnlock()

	if !ok {
		return Degenerate(), iddlerrors.NewValidationError("preset", fmt.Sprintf("unknown preset %q", preset), nil)
	}
	if hit {
		e.metrics.IncGridCacheHit()
		return cached.clone(), nil
	}

	t := ComputeRegions(p, regions)
	e.metrics.IncGridCompute(preset)

	e.memoize(key, gen, t)
	return t.clone(), nil
}

// memoize stores t unless a Register ran since gen was read.
func (e *Engine) memoize(key string, gen uint64, t Template) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gen != gen {
		return
	}
	e.cache[key] = t
}

func cacheKey(preset string, regions []Region) string {
	parts := make([]string, 0, len(regions))
	for _, r := range regions {
		parts = append(parts, fmt.Sprintf("%s=%s/%t", r.Name, r.ExplicitSize, r.Collapsed))
	}
	sort.Strings(parts)
	parts = dedupe(parts)
	return preset + "|" + strings.Join(parts, ",")
}

func dedupe(sorted []string) []string {
	out := make([]string, 0, len(sorted))
	for _, s := range sorted {
		if len(out) == 0 || out[len(out)-1] != s {
			out = append(out, s)
		}
	}
	return out
}

func (t Template) clone() Template {
	out := Template{
		Areas:   make([][]string, len(t.Areas)),
		Columns: append([]string(nil), t.Columns...),
		Rows:    append([]string(nil), t.Rows...),
	}
	for i, row := range t.Areas {
		out.Areas[i] = append([]string(nil), row...)
	}
	return out
}
