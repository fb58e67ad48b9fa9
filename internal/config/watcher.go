package config

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/iddl/internal/logger"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher re-parses definition files matched by its patterns when they change
// and hands each valid document to apply. Invalid documents are logged and
// skipped; the previous definitions stay registered.
type Watcher struct {
	patterns []string
	apply    func(*Document) error
	log      *logger.Logger
	debounce time.Duration
	fsw      *fsnotify.Watcher
	pending  map[string]time.Time
}

// NewWatcher watches the base directories of patterns and of their current
// matches.
func NewWatcher(patterns []string, apply func(*Document) error, log *logger.Logger, debounce time.Duration) (*Watcher, error) {
	if log == nil {
		log = logger.Nop()
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		patterns: patterns,
		apply:    apply,
		log:      log,
		debounce: debounce,
		fsw:      fsw,
		pending:  make(map[string]time.Time),
	}

	dirs, err := w.dirs()
	if err != nil {
		fsw.Close()
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			w.log.WithFields(map[string]any{"dir": dir}).Warn("cannot watch definitions directory")
		}
	}
	return w, nil
}

func (w *Watcher) dirs() ([]string, error) {
	set := map[string]struct{}{}
	for _, pattern := range w.patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		if info, err := os.Stat(filepath.FromSlash(base)); err == nil && info.IsDir() {
			set[filepath.Clean(filepath.FromSlash(base))] = struct{}{}
		}
	}
	files, err := Expand(w.patterns...)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		set[filepath.Dir(f)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out, nil
}

// Watched lists the watched directories.
func (w *Watcher) Watched() []string {
	list := w.fsw.WatchList()
	sort.Strings(list)
	return list
}

func (w *Watcher) matches(path string) bool {
	if _, err := FormatFor(path); err != nil {
		return false
	}
	for _, pattern := range w.patterns {
		if ok, _ := doublestar.PathMatch(filepath.Clean(pattern), filepath.Clean(path)); ok {
			return true
		}
	}
	return false
}

// Run processes file events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !w.matches(event.Name) {
				continue
			}
			w.pending[event.Name] = time.Now()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "definitions watcher")

		case now := <-ticker.C:
			w.flush(now)
		}
	}
}

func (w *Watcher) flush(now time.Time) {
	var ready []string
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			ready = append(ready, path)
		}
	}
	sort.Strings(ready)

	for _, path := range ready {
		delete(w.pending, path)
		log := w.log.WithFields(map[string]any{"path": path})

		doc, err := ParseDocument(path)
		if err != nil {
			log.Error(err, "reload definitions")
			continue
		}
		if err := w.apply(doc); err != nil {
			log.Error(err, "apply reloaded definitions")
			continue
		}
		log.Info("definitions reloaded")
	}
}
