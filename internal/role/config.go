// Package role holds the per-domain role tables that map a role name to its
// structural and style configuration.
package role

import (
	"github.com/alexisbeaulieu97/iddl/internal/axes"
	"github.com/alexisbeaulieu97/iddl/internal/style"
)

// Domain names one role table.
type Domain string

const (
	DomainText      Domain = "text"
	DomainContainer Domain = "container"
	DomainOverlay   Domain = "overlay"
	DomainPage      Domain = "page"
	DomainAction    Domain = "action"
)

// Kind discriminates simple configs (tag + styles) from complex ones that
// delegate to a named renderer.
type Kind string

const (
	KindSimple  Kind = "simple"
	KindComplex Kind = "complex"
)

// Predicate selects axis combinations. Zero-valued fields match anything.
type Predicate struct {
	Role       string          `yaml:"role,omitempty" toml:"role"`
	Prominence axes.Prominence `yaml:"prominence,omitempty" toml:"prominence"`
	Density    axes.Density    `yaml:"density,omitempty" toml:"density"`
	Intent     axes.Intent     `yaml:"intent,omitempty" toml:"intent"`
	Align      axes.Align      `yaml:"align,omitempty" toml:"align"`
}

// IsZero reports whether the predicate constrains nothing.
func (p Predicate) IsZero() bool {
	return p == Predicate{}
}

// Matches reports whether every constrained field equals the current value.
func (p Predicate) Matches(role string, ctx axes.Context) bool {
	if p.Role != "" && p.Role != role {
		return false
	}
	if p.Prominence != "" && p.Prominence != ctx.Prominence {
		return false
	}
	if p.Density != "" && p.Density != ctx.Density {
		return false
	}
	if p.Intent != "" && p.Intent != ctx.Intent {
		return false
	}
	if p.Align != "" && p.Align != ctx.Align {
		return false
	}
	return true
}

// CompoundOverride applies Style when When matches. Overrides always beat
// base and axis fragments touching the same property.
type CompoundOverride struct {
	When  Predicate      `yaml:"when" toml:"when"`
	Style style.Fragment `yaml:"style" toml:"style" validate:"required,min=1"`
}

// Config is the registered configuration for one role.
type Config struct {
	Kind            Kind                               `yaml:"kind" toml:"kind" validate:"required,oneof=simple complex"`
	Tag             string                             `yaml:"tag,omitempty" toml:"tag" validate:"required_if=Kind simple"`
	TagByProminence map[axes.Prominence]string         `yaml:"tag_by_prominence,omitempty" toml:"tag_by_prominence"`
	Aria            map[string]string                  `yaml:"aria,omitempty" toml:"aria"`
	Base            style.Fragment                     `yaml:"base,omitempty" toml:"base"`
	Prominence      map[axes.Prominence]style.Fragment `yaml:"prominence,omitempty" toml:"prominence"`
	Density         map[axes.Density]style.Fragment    `yaml:"density,omitempty" toml:"density"`
	Intent          map[axes.Intent]style.Fragment     `yaml:"intent,omitempty" toml:"intent"`
	Align           map[axes.Align]style.Fragment      `yaml:"align,omitempty" toml:"align"`
	Compound        []CompoundOverride                 `yaml:"compound,omitempty" toml:"compound" validate:"omitempty,dive"`
	Renderer        string                             `yaml:"renderer,omitempty" toml:"renderer" validate:"required_if=Kind complex"`
	Meta            map[string]string                  `yaml:"meta,omitempty" toml:"meta"`
	Description     string                             `yaml:"description,omitempty" toml:"description"`
}

// TagFor returns the element tag for the given prominence.
func (c Config) TagFor(p axes.Prominence) string {
	if tag, ok := c.TagByProminence[p]; ok && tag != "" {
		return tag
	}
	return c.Tag
}

// IsComplex reports whether rendering is delegated to a custom renderer.
func (c Config) IsComplex() bool {
	return c.Kind == KindComplex
}

// Fallback is the minimal config returned for unregistered roles: a bare tag,
// no styles and no ARIA attributes.
func Fallback(domain Domain) Config {
	tag := "div"
	if domain == DomainText {
		tag = "span"
	}
	return Config{Kind: KindSimple, Tag: tag, Description: "fallback"}
}
