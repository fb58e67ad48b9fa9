package config

import (
	"context"
	"errors"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
	"github.com/alexisbeaulieu97/iddl/internal/role"
	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

const loadConcurrency = 4

// Expand resolves glob patterns (with ** support) to a sorted, de-duplicated
// file list.
func Expand(patterns ...string) ([]string, error) {
	seen := map[string]struct{}{}
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, iddlerrors.NewValidationError("definitions", "bad glob "+pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			if _, err := FormatFor(m); err != nil {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// Load parses every file matched by patterns concurrently. Documents come
// back in path order; the first failure cancels the rest.
func Load(ctx context.Context, patterns ...string) ([]*Document, error) {
	files, err := Expand(patterns...)
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := ParseDocument(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Apply registers the document's roles and presets. Every definition is
// attempted; failures are joined.
func Apply(doc *Document, roles *role.Registry, presets *grid.Engine) error {
	var errs []error
	for _, r := range doc.Roles {
		if err := roles.Register(r.Domain, r.Name, r.Config); err != nil {
			errs = append(errs, err)
		}
	}
	for _, p := range doc.Presets {
		if err := presets.Register(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
