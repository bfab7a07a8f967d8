// Package checker validates SQL files against the MySQL grammar, several
// files at a time.
package checker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	"github.com/leapstack-labs/mysqlparse/pkg/parser"
)

// DefaultWorkers is the number of files parsed at once unless WithWorkers
// says otherwise.
const DefaultWorkers = 4

// Result is the outcome of checking one file.
type Result struct {
	Path       string
	Statements int
	Err        error
}

// OK reports whether the file parsed.
func (r Result) OK() bool { return r.Err == nil }

// SyntaxError returns the parse error, or nil when the file parsed or could
// not be read.
func (r Result) SyntaxError() *parser.SyntaxError {
	var serr *parser.SyntaxError
	if errors.As(r.Err, &serr) {
		return serr
	}
	return nil
}

// Checker parses files with a fixed parser configuration.
type Checker struct {
	cfg      parser.Config
	workers  int
	patterns []string
	include  []glob.Glob
	logger   *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithWorkers bounds the number of files parsed concurrently.
func WithWorkers(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithInclude sets the glob patterns selecting files inside directories.
func WithInclude(patterns ...string) Option {
	return func(c *Checker) { c.patterns = patterns }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Checker. Include patterns default to **/*.sql.
func New(cfg parser.Config, opts ...Option) (*Checker, error) {
	c := &Checker{
		cfg:      cfg,
		workers:  DefaultWorkers,
		patterns: []string{"**/*.sql"},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, p := range c.patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", p, err)
		}
		c.include = append(c.include, g)
	}
	return c, nil
}

// Matches reports whether path is selected by the include patterns. A
// pattern may match the whole slash-separated path or any trailing part of
// it, so "*.sql" selects files at any depth and "migrations/*.sql" selects
// files in any migrations directory.
func (c *Checker) Matches(path string) bool {
	p := "/" + strings.TrimPrefix(filepath.ToSlash(path), "/")
	for i := 0; i < len(p); i++ {
		if p[i] != '/' {
			continue
		}
		for _, candidate := range []string{p[i:], p[i+1:]} {
			for _, g := range c.include {
				if g.Match(candidate) {
					return true
				}
			}
		}
	}
	return false
}

// Expand turns files and directories into the list of files to check.
// Files named explicitly are always kept; directories are walked and
// filtered by the include patterns, skipping hidden directories.
func (c *Checker) Expand(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if c.Matches(rel) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	return files, nil
}

// CheckSource parses sql and reports the result under name.
func (c *Checker) CheckSource(name, sql string) Result {
	tree, err := parser.ParseString(sql, c.cfg)
	if err != nil {
		c.logger.Debug("check failed", "path", name, "error", err)
		return Result{Path: name, Err: err}
	}
	return Result{Path: name, Statements: countStatements(tree)}
}

// CheckFiles parses every file, at most workers at a time. Results keep
// the order of paths. Unreadable files produce a failed Result rather than
// an error; the returned error is only set when ctx ends early.
func (c *Checker) CheckFiles(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				results[i] = Result{Path: path, Err: fmt.Errorf("read %s: %w", path, err)}
				return nil
			}
			results[i] = c.CheckSource(path, string(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug("checked files", "files", len(paths), "workers", c.workers)
	return results, nil
}

func countStatements(tree *ast.Rule) int {
	n := 0
	for _, child := range tree.Children {
		if _, ok := child.(*ast.Rule); ok {
			n++
		}
	}
	return n
}
