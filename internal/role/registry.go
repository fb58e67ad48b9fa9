package role

import (
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/iddl/internal/logger"
	"github.com/alexisbeaulieu97/iddl/internal/metrics"
	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

// Registry stores role configs per domain. Registration is the only mutation;
// a repeated registration replaces the earlier one and is logged.
type Registry struct {
	mu      sync.RWMutex
	domains map[Domain]map[string]Config
	log     *logger.Logger
	metrics *metrics.Collectors
}

// NewRegistry creates an empty registry. log and m may be nil.
func NewRegistry(log *logger.Logger, m *metrics.Collectors) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		domains: make(map[Domain]map[string]Config),
		log:     log,
		metrics: m,
	}
}

// Register validates cfg and stores it under (domain, name).
func (r *Registry) Register(domain Domain, name string, cfg Config) error {
	if err := ValidateName(name); err != nil {
		return iddlerrors.NewDefinitionError("role", name, err)
	}
	if err := Validate(cfg); err != nil {
		return iddlerrors.NewDefinitionError("role", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	table, ok := r.domains[domain]
	if !ok {
		table = make(map[string]Config)
		r.domains[domain] = table
	}
	if _, exists := table[name]; exists {
		r.log.WithFields(map[string]any{"domain": string(domain), "role": name}).
			Warn("role re-registered; replacing previous config")
	}
	table[name] = cfg
	return nil
}

// Lookup returns the config for (domain, name), or the fallback config when
// the role is unknown. It never fails.
func (r *Registry) Lookup(domain Domain, name string) Config {
	cfg, ok := r.Get(domain, name)
	if ok {
		return cfg
	}
	r.metrics.IncUnknownRole(string(domain))
	r.log.WithFields(map[string]any{"domain": string(domain), "role": name}).
		Debug("unknown role; using fallback config")
	return Fallback(domain)
}

// Get returns the registered config without falling back.
func (r *Registry) Get(domain Domain, name string) (Config, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.domains[domain][name]
	return cfg, ok
}

// Roles lists the role names of domain in sorted order.
func (r *Registry) Roles(domain Domain) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.domains[domain]))
	for name := range r.domains[domain] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Domains lists the domains with at least one role, sorted.
func (r *Registry) Domains() []Domain {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Domain, 0, len(r.domains))
	for d := range r.domains {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
