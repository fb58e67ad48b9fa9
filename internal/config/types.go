// Package config loads role, preset and panel definition documents and the
// CLI settings.
package config

import (
	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
	"github.com/alexisbeaulieu97/iddl/internal/layout/resize"
	"github.com/alexisbeaulieu97/iddl/internal/role"
)

// Document is one definition file.
type Document struct {
	Version     string            `yaml:"version" toml:"version" validate:"required,semver"`
	Description string            `yaml:"description,omitempty" toml:"description"`
	Roles       []RoleDefinition  `yaml:"roles,omitempty" toml:"roles" validate:"omitempty,dive"`
	Presets     []grid.Preset     `yaml:"presets,omitempty" toml:"presets" validate:"-"`
	Panels      []PanelDefinition `yaml:"panels,omitempty" toml:"panels" validate:"omitempty,dive"`

	// Path is the file the document was read from.
	Path string `yaml:"-" toml:"-"`
}

// RoleDefinition registers Config under (Domain, Name). The role config
// itself is validated by the role registry on registration.
type RoleDefinition struct {
	Domain      role.Domain `yaml:"domain" toml:"domain" validate:"required,domain"`
	Name        string      `yaml:"name" toml:"name" validate:"required,role_name"`
	role.Config `yaml:",inline" validate:"-"`
}

// PanelDefinition describes a resizable layout: a preset plus the regions a
// user may drag or collapse.
type PanelDefinition struct {
	Name       string                       `yaml:"name" toml:"name" validate:"required"`
	Preset     string                       `yaml:"preset" toml:"preset" validate:"required"`
	StorageKey string                       `yaml:"storage_key" toml:"storage_key" validate:"required"`
	Regions    map[string]resize.RegionSpec `yaml:"regions" toml:"regions" validate:"dive,keys,region,endkeys"`
}

// PanelConfig converts the definition into a resize config.
func (p PanelDefinition) PanelConfig() resize.Config {
	return resize.Config{StorageKey: p.StorageKey, Regions: p.Regions}
}
