package checker

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for further writes before
// re-checking.
const DefaultDebounce = 100 * time.Millisecond

// Watcher re-checks files as they change.
type Watcher struct {
	checker  *Checker
	fs       *fsnotify.Watcher
	debounce time.Duration

	// files named as roots bypass the include patterns, as in Expand.
	files map[string]bool
	dirs  []string
}

// NewWatcher watches the given files and directories. Directories are
// watched recursively and filtered by the include patterns; files are
// always re-checked. The caller must call Run or Close.
func (c *Checker) NewWatcher(roots []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w := &Watcher{checker: c, fs: fw, debounce: DefaultDebounce, files: make(map[string]bool)}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		root = filepath.Clean(root)
		if !info.IsDir() {
			w.files[root] = true
			err = fw.Add(filepath.Dir(root))
		} else {
			w.dirs = append(w.dirs, root)
			err = w.watchDir(root)
		}
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", root, err)
		}
	}
	return w, nil
}

// SetDebounce changes the quiet period before a re-check.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// watchDir recursively adds a directory to the watcher.
func (w *Watcher) watchDir(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.fs.Add(path)
	})
}

// Run delivers a batch of results to fn each time matching files change,
// until ctx is done. It closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context, fn func([]Result)) error {
	defer func() { _ = w.fs.Close() }()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watchDir(event.Name); err != nil {
						w.checker.logger.Warn("watch new directory", "path", event.Name, "error", err)
					}
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.selects(name) {
				continue
			}
			pending[name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.checker.logger.Warn("watcher error", "error", err)

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			clear(pending)
			sort.Strings(paths)

			w.checker.logger.Debug("change detected", "files", len(paths))
			results, err := w.checker.CheckFiles(ctx, paths)
			if err != nil {
				return nil
			}
			fn(results)
		}
	}
}

// selects reports whether a changed path belongs to the watched set.
func (w *Watcher) selects(path string) bool {
	if w.files[path] {
		return true
	}
	for _, dir := range w.dirs {
		rel, err := filepath.Rel(dir, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		if w.checker.Matches(rel) {
			return true
		}
	}
	return false
}

// Close stops watching without running.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
