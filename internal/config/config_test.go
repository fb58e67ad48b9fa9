package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/iddl/internal/axes"
	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
	"github.com/alexisbeaulieu97/iddl/internal/layout/resize"
	"github.com/alexisbeaulieu97/iddl/internal/role"
	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseYAMLDocument(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument(filepath.Join("testdata", "roles.yaml"))
	require.NoError(t, err)

	require.Len(t, doc.Roles, 1)
	banner := doc.Roles[0]
	assert.Equal(t, role.DomainContainer, banner.Domain)
	assert.Equal(t, "Banner", banner.Name)
	assert.Equal(t, "section", banner.Tag)
	assert.Equal(t, "var(--color-error-subtle)", banner.Intent[axes.IntentCritical]["background-color"])
	require.Len(t, banner.Compound, 1)
	assert.Equal(t, axes.DensityCompact, banner.Compound[0].When.Density)

	require.Len(t, doc.Presets, 1)
	assert.Equal(t, [][]string{{"toolbar", "toolbar"}, {"tree", "props"}}, doc.Presets[0].Areas)

	require.Len(t, doc.Panels, 1)
	assert.Equal(t, resize.RegionSpec{Default: "280px", Min: 160, Max: 480, Handle: resize.EdgeRight}, doc.Panels[0].Regions["tree"])
	assert.Equal(t, "inspector-layout", doc.Panels[0].PanelConfig().StorageKey)
}

func TestParseTOMLDocument(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument(filepath.Join("testdata", "actions.toml"))
	require.NoError(t, err)
	require.Len(t, doc.Roles, 1)

	chip := doc.Roles[0]
	assert.Equal(t, role.KindComplex, chip.Kind)
	assert.Equal(t, "ChipAction", chip.Renderer)
	assert.Equal(t, "var(--radius-full)", chip.Base["border-radius"])
	assert.Equal(t, "20px", chip.Density[axes.DensityCompact]["height"])
	assert.Equal(t, "button", chip.Aria["role"])
}

func TestParseDocumentErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cases := []struct {
		name     string
		file     string
		contents string
		check    func(t *testing.T, err error)
	}{
		{
			name:     "malformed yaml reports line",
			file:     "bad.yaml",
			contents: "version: \"1.0\"\nroles:\n  - domain: [\n",
			check: func(t *testing.T, err error) {
				var parseErr *iddlerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "malformed toml reports line",
			file:     "bad.toml",
			contents: "version = \"1.0\"\n[[roles]\n",
			check: func(t *testing.T, err error) {
				var parseErr *iddlerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "missing version",
			file:     "noversion.yaml",
			contents: "roles: []\n",
			check: func(t *testing.T, err error) {
				var valErr *iddlerrors.ValidationError
				require.True(t, errors.As(err, &valErr))
				assert.Equal(t, "version", valErr.Field)
			},
		},
		{
			name:     "unknown domain",
			file:     "domain.yaml",
			contents: "version: \"1.0\"\nroles:\n  - domain: widget\n    name: X\n    kind: simple\n    tag: div\n",
			check: func(t *testing.T, err error) {
				var valErr *iddlerrors.ValidationError
				require.True(t, errors.As(err, &valErr))
				assert.Equal(t, "roles[0].domain", valErr.Field)
			},
		},
		{
			name:     "duplicate role",
			file:     "dup.yaml",
			contents: "version: \"1.0\"\nroles:\n  - {domain: text, name: A, kind: simple, tag: span}\n  - {domain: text, name: A, kind: simple, tag: em}\n",
			check: func(t *testing.T, err error) {
				var valErr *iddlerrors.ValidationError
				require.True(t, errors.As(err, &valErr))
				assert.Equal(t, "roles[1].name", valErr.Field)
			},
		},
		{
			name:     "non-rectangular preset",
			file:     "preset.yaml",
			contents: "version: \"1.0\"\npresets:\n  - name: P\n    areas: [[a, b], [a]]\n    columns: [{region: a, size: 1fr}, {region: b, size: 1fr}]\n    rows: [{region: a, size: 1fr}, {region: a, size: 1fr}]\n",
			check: func(t *testing.T, err error) {
				var defErr *iddlerrors.DefinitionError
				require.True(t, errors.As(err, &defErr))
			},
		},
		{
			name:     "unsupported extension",
			file:     "roles.json",
			contents: "{}",
			check: func(t *testing.T, err error) {
				var parseErr *iddlerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.file, tc.contents)
			_, err := ParseDocument(path)
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestLoadGlobAndApply(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlData, err := os.ReadFile(filepath.Join("testdata", "roles.yaml"))
	require.NoError(t, err)
	tomlData, err := os.ReadFile(filepath.Join("testdata", "actions.toml"))
	require.NoError(t, err)
	writeFile(t, dir, "a/roles.yaml", string(yamlData))
	writeFile(t, dir, "b/c/actions.toml", string(tomlData))
	writeFile(t, dir, "b/notes.txt", "ignored")

	docs, err := Load(context.Background(), filepath.Join(dir, "**", "*"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, filepath.Join(dir, "a", "roles.yaml"), docs[0].Path)
	assert.Equal(t, filepath.Join(dir, "b", "c", "actions.toml"), docs[1].Path)

	reg := role.NewRegistry(nil, nil)
	engine := grid.NewEngine(nil, nil)
	for _, doc := range docs {
		require.NoError(t, Apply(doc, reg, engine))
	}

	assert.Equal(t, "section", reg.Lookup(role.DomainContainer, "Banner").Tag)
	assert.Equal(t, "ChipAction", reg.Lookup(role.DomainAction, "Chip").Renderer)

	tmpl, err := engine.Compute("Inspector", []string{"tree", "props"}, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"tree", "props"}}, tmpl.Areas)
}

func TestLoadStopsOnFirstInvalidDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "ok.yaml", "version: \"1.0\"\n")
	writeFile(t, dir, "bad.yaml", "version: nope\n")

	_, err := Load(context.Background(), filepath.Join(dir, "*.yaml"))
	require.Error(t, err)
}

func TestApplyJoinsRegistrationErrors(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Version: "1.0",
		Roles: []RoleDefinition{
			{Domain: role.DomainText, Name: "Ok", Config: role.Config{Kind: role.KindSimple, Tag: "span"}},
			{Domain: role.DomainText, Name: "Broken", Config: role.Config{Kind: role.KindComplex}},
		},
	}
	reg := role.NewRegistry(nil, nil)
	err := Apply(doc, reg, grid.NewEngine(nil, nil))
	require.Error(t, err)

	_, ok := reg.Get(role.DomainText, "Ok")
	assert.True(t, ok)
	_, ok = reg.Get(role.DomainText, "Broken")
	assert.False(t, ok)
}

func TestGetValidator(t *testing.T) {
	t.Parallel()

	assert.Same(t, GetValidator(), GetValidator())

	v := GetValidator()
	assert.NoError(t, v.Var("left", "region"))
	assert.Error(t, v.Var("Left Side", "region"))
	assert.NoError(t, v.Var("--brand-color", "css_property"))
	assert.Error(t, v.Var("font size", "css_property"))
	assert.NoError(t, v.Var("1.2.3", "semver"))
}
