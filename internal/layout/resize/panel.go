// Package resize holds resizable, collapsible panel state: pointer-driven
// drag sessions, collapse toggles and persistence of both.
package resize

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	json "github.com/json-iterator/go"

	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
	"github.com/alexisbeaulieu97/iddl/internal/logger"
	"github.com/alexisbeaulieu97/iddl/internal/metrics"
	"github.com/alexisbeaulieu97/iddl/internal/storage"
	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

// CollapsedSuffix is appended to the storage key for the collapsed map.
const CollapsedSuffix = "-collapsed"

const defaultPersistTimeout = 2 * time.Second

// Edge is the side of a region its resize handle sits on.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// Vertical reports whether dragging the handle moves along the Y axis.
func (e Edge) Vertical() bool {
	return e == EdgeTop || e == EdgeBottom
}

// inverted reports whether pointer motion and size change run opposite.
func (e Edge) inverted() bool {
	return e == EdgeLeft || e == EdgeTop
}

// RegionSpec configures one resizable region. Max of zero means unbounded.
type RegionSpec struct {
	Default string  `yaml:"default" toml:"default"`
	Min     float64 `yaml:"min" toml:"min"`
	Max     float64 `yaml:"max" toml:"max"`
	Handle  Edge    `yaml:"handle" toml:"handle"`
}

func (s RegionSpec) clamp(v float64) float64 {
	if v < s.Min {
		v = s.Min
	}
	if s.Max > 0 && v > s.Max {
		v = s.Max
	}
	return v
}

// Config describes a panel.
type Config struct {
	StorageKey string
	Regions    map[string]RegionSpec
}

// Option customizes a Panel.
type Option func(*Panel)

// WithStore sets the persistence store. The default is an in-memory store.
func WithStore(s storage.Store) Option {
	return func(p *Panel) { p.store = s }
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(p *Panel) { p.log = log }
}

// WithMetrics sets the metrics collectors.
func WithMetrics(m *metrics.Collectors) Option {
	return func(p *Panel) { p.metrics = m }
}

// WithPersistTimeout bounds each store write.
func WithPersistTimeout(d time.Duration) Option {
	return func(p *Panel) { p.timeout = d }
}

// Panel is the size and collapse state of a set of regions. Drag sessions
// move it between idle and dragging; collapse is orthogonal.
type Panel struct {
	mu        sync.Mutex
	cfg       Config
	sizes     map[string]string
	collapsed map[string]bool
	session   *Session
	closed    bool

	store   storage.Store
	log     *logger.Logger
	metrics *metrics.Collectors
	timeout time.Duration
}

// NewPanel creates a panel and restores persisted state for cfg.StorageKey.
// Missing or malformed persisted entries fall back to the region defaults.
func NewPanel(ctx context.Context, cfg Config, opts ...Option) (*Panel, error) {
	if strings.TrimSpace(cfg.StorageKey) == "" {
		return nil, iddlerrors.NewValidationError("storage_key", "panel requires a storage key", nil)
	}
	for name, spec := range cfg.Regions {
		if spec.Max > 0 && spec.Max < spec.Min {
			return nil, iddlerrors.NewValidationError("regions."+name, "max is below min", nil)
		}
		switch spec.Handle {
		case "", EdgeLeft, EdgeRight, EdgeTop, EdgeBottom:
		default:
			return nil, iddlerrors.NewValidationError("regions."+name, fmt.Sprintf("unknown handle edge %q", spec.Handle), nil)
		}
	}

	p := &Panel{
		cfg:     cfg,
		timeout: defaultPersistTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.store == nil {
		p.store = storage.NewMemoryStore()
	}
	if p.log == nil {
		p.log = logger.Nop()
	}
	p.log = p.log.WithFields(map[string]any{"storage_key": cfg.StorageKey})

	p.sizes = p.defaults()
	p.collapsed = map[string]bool{}
	p.restore(ctx)
	return p, nil
}

func (p *Panel) defaults() map[string]string {
	out := make(map[string]string, len(p.cfg.Regions))
	for name, spec := range p.cfg.Regions {
		if spec.Default != "" {
			out[name] = spec.Default
		}
	}
	return out
}

func (p *Panel) restore(ctx context.Context) {
	if raw, ok := p.load(ctx, p.cfg.StorageKey); ok {
		var stored map[string]any
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			p.log.Debug("discarding malformed persisted sizes")
		} else {
			for name, v := range stored {
				if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
					p.sizes[name] = s
				}
			}
		}
	}
	if raw, ok := p.load(ctx, p.cfg.StorageKey+CollapsedSuffix); ok {
		var stored map[string]any
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			p.log.Debug("discarding malformed persisted collapse state")
		} else {
			for name, v := range stored {
				if b, ok := v.(bool); ok {
					p.collapsed[name] = b
				}
			}
		}
	}
}

func (p *Panel) load(ctx context.Context, key string) (string, bool) {
	raw, ok, err := p.store.Get(ctx, key)
	if err != nil {
		p.log.Error(err, "read persisted layout state")
		return "", false
	}
	return raw, ok
}

// persist writes both maps. Failures are logged and counted; in-memory state
// is never rolled back. Caller holds p.mu.
func (p *Panel) persist() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	write := func(key string, v any) {
		data, err := json.Marshal(v)
		if err == nil {
			err = p.store.Set(ctx, key, string(data))
		}
		if err != nil {
			p.metrics.IncPersistFailure()
			p.log.Error(iddlerrors.NewStorageError(key, "persist", err), "persist layout state")
		}
	}
	write(p.cfg.StorageKey, p.sizes)
	write(p.cfg.StorageKey+CollapsedSuffix, p.collapsed)
}

func (p *Panel) spec(region string) (RegionSpec, error) {
	spec, ok := p.cfg.Regions[region]
	if !ok {
		return RegionSpec{}, iddlerrors.NewValidationError("region", fmt.Sprintf("unknown region %q", region), nil)
	}
	return spec, nil
}

// Spec returns the configuration of region.
func (p *Panel) Spec(region string) (RegionSpec, bool) {
	spec, ok := p.cfg.Regions[region]
	return spec, ok
}

// Sizes returns a copy of the current size map.
func (p *Panel) Sizes() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return copyMap(p.sizes)
}

// Collapsed returns a copy of the collapse map.
func (p *Panel) Collapsed() map[string]bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]bool, len(p.collapsed))
	for k, v := range p.collapsed {
		out[k] = v
	}
	return out
}

// IsCollapsed reports whether region is collapsed.
func (p *Panel) IsCollapsed(region string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.collapsed[region]
}

// Regions lists the configured regions, sorted.
func (p *Panel) Regions() []string {
	names := make([]string, 0, len(p.cfg.Regions))
	for name := range p.cfg.Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GridRegions returns grid state for the present regions. Regions the panel
// does not manage are passed through without a size.
func (p *Panel) GridRegions(present []string) []grid.Region {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]grid.Region, 0, len(present))
	for _, name := range present {
		spec := p.cfg.Regions[name]
		out = append(out, grid.Region{
			Name:         name,
			ExplicitSize: p.sizes[name],
			MinSize:      int(spec.Min),
			MaxSize:      int(spec.Max),
			Collapsed:    p.collapsed[name],
		})
	}
	return out
}

// SetSize commits an explicit size. Pixel sizes are clamped to the region's
// bounds. Setting a size expands a collapsed region.
func (p *Panel) SetSize(region, size string) error {
	spec, err := p.spec(region)
	if err != nil {
		return err
	}
	size = strings.TrimSpace(size)
	if size == "" {
		return iddlerrors.NewValidationError("size", "size is empty", nil)
	}
	if px, ok := ParsePx(size); ok {
		size = FormatPx(spec.clamp(px))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.commit(region, size)
	return nil
}

func (p *Panel) commit(region, size string) {
	p.sizes[region] = size
	if p.collapsed[region] {
		p.collapsed[region] = false
	}
	p.persist()
}

// ToggleCollapse flips the collapse flag of region and returns the new value.
// Sizes are untouched.
func (p *Panel) ToggleCollapse(region string) (bool, error) {
	if _, err := p.spec(region); err != nil {
		return false, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.collapsed[region] = !p.collapsed[region]
	p.persist()
	return p.collapsed[region], nil
}

// Reset restores every region to its default size and clears collapse state.
func (p *Panel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sizes = p.defaults()
	p.collapsed = map[string]bool{}
	p.persist()
}

// ResetRegion restores one region to its default size.
func (p *Panel) ResetRegion(region string) error {
	spec, err := p.spec(region)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if spec.Default == "" {
		delete(p.sizes, region)
	} else {
		p.sizes[region] = spec.Default
	}
	p.persist()
	return nil
}

// Dragging reports whether a drag session is active.
func (p *Panel) Dragging() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session != nil
}

// BeginDrag starts a drag session on region's handle at startPos, measured on
// the handle's axis. Any session already in progress is ended first. Move
// events resize the region; up and cancel end the session.
func (p *Panel) BeginDrag(region string, startPos float64, src PointerSource) (*Session, error) {
	spec, err := p.spec(region)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, iddlerrors.NewValidationError("source", "pointer source is nil", nil)
	}

	p.mu.Lock()
	prev := p.session
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return nil, iddlerrors.NewValidationError("panel", "panel is closed", nil)
	}
	if prev != nil {
		prev.Close()
	}

	p.mu.Lock()
	startSize, ok := ParsePx(p.sizes[region])
	collapsed := p.collapsed[region]
	p.mu.Unlock()
	if collapsed {
		startSize = 0
	} else if !ok {
		startSize = spec.Min
	}

	s := newSession(p, region, spec, startPos, startSize)
	releases := []func(){
		src.Subscribe(EventMove, s.onMove),
		src.Subscribe(EventUp, s.onEnd),
		src.Subscribe(EventCancel, s.onEnd),
	}

	p.mu.Lock()
	if !s.active || p.closed {
		// ended before it was installed
		s.active = false
		p.mu.Unlock()
		for _, release := range releases {
			release()
		}
		if p.isClosed() {
			return nil, iddlerrors.NewValidationError("panel", "panel is closed", nil)
		}
		return s, nil
	}
	s.releases = releases
	raced := p.session
	p.session = s
	p.mu.Unlock()
	if raced != nil {
		raced.Close()
	}

	p.metrics.IncDragSession()
	p.log.WithFields(map[string]any{"region": region, "session": s.ID}).Debug("drag started")
	return s, nil
}

func (p *Panel) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Close ends any live drag session and rejects new ones.
func (p *Panel) Close() {
	p.mu.Lock()
	p.closed = true
	s := p.session
	p.mu.Unlock()
	if s != nil {
		s.Close()
	}
}

// ParsePx parses "<number>px".
func ParsePx(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "px") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatPx renders v as "<number>px" without trailing zeros.
func FormatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
