package checker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/leapstack-labs/mysqlparse/internal/testutil"
	"github.com/leapstack-labs/mysqlparse/pkg/parser"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newChecker(t *testing.T, opts ...Option) *Checker {
	t.Helper()
	opts = append(opts, WithLogger(testutil.NewTestLogger(t)))
	c, err := New(parser.Config{ServerVersion: 80019}, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New(parser.Config{}, WithInclude("[a-"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid include pattern")
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"default top level", "**/*.sql", "a.sql", true},
		{"default nested", "**/*.sql", "db/schema/a.sql", true},
		{"default other extension", "**/*.sql", "db/readme.md", false},
		{"star any depth", "*.sql", "x/y/z.sql", true},
		{"directory pattern", "migrations/*.sql", "db/migrations/001.sql", true},
		{"directory pattern miss", "migrations/*.sql", "db/seeds/001.sql", false},
		{"absolute path", "**/*.sql", "/tmp/work/a.sql", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newChecker(t, WithInclude(tt.pattern))
			assert.Equal(t, tt.want, c.Matches(tt.path))
		})
	}
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.sql"), "SELECT 1;")
	writeFile(t, filepath.Join(dir, "sub", "b.sql"), "SELECT 2;")
	writeFile(t, filepath.Join(dir, "sub", "notes.txt"), "not sql")
	writeFile(t, filepath.Join(dir, ".hidden", "c.sql"), "SELECT 3;")
	explicit := filepath.Join(dir, "sub", "notes.txt")

	c := newChecker(t)
	files, err := c.Expand([]string{dir, explicit, filepath.Join(dir, "a.sql")})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.sql"),
		filepath.Join(dir, "sub", "b.sql"),
		explicit,
	}, files)
}

func TestExpand_Missing(t *testing.T) {
	c := newChecker(t)
	_, err := c.Expand([]string{filepath.Join(t.TempDir(), "missing.sql")})
	require.Error(t, err)
}

func TestCheckSource(t *testing.T) {
	c := newChecker(t)

	res := c.CheckSource("ok.sql", "CREATE TABLE t (a INT); INSERT INTO t VALUES (1);")
	assert.True(t, res.OK())
	assert.Equal(t, 2, res.Statements)
	assert.Nil(t, res.SyntaxError())

	res = c.CheckSource("bad.sql", "SELECT 1;\nSELECT FROM;")
	assert.False(t, res.OK())
	serr := res.SyntaxError()
	require.NotNil(t, serr)
	assert.Equal(t, 2, serr.Pos().Line)
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, sql := range []string{"SELECT 1;", "SELEC 1;", "DROP TABLE t;", "UPDATE t SET a = 1 WHERE b = 2;"} {
		p := filepath.Join(dir, string(rune('a'+i))+".sql")
		writeFile(t, p, sql)
		paths = append(paths, p)
	}
	paths = append(paths, filepath.Join(dir, "gone.sql"))

	c := newChecker(t, WithWorkers(2))
	results, err := c.CheckFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
	}
	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.NotNil(t, results[1].SyntaxError())
	assert.True(t, results[2].OK())
	assert.True(t, results[3].OK())
	assert.False(t, results[4].OK())
	assert.Nil(t, results[4].SyntaxError())
}

func TestCheckFiles_Cancelled(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.sql")
	writeFile(t, p, "SELECT 1;")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newChecker(t)
	_, err := c.CheckFiles(ctx, []string{p, p, p})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	c := newChecker(t)

	w, err := c.NewWatcher([]string{dir})
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	batches := make(chan []Result, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(results []Result) { batches <- results })
	}()

	target := filepath.Join(dir, "live.sql")
	writeFile(t, filepath.Join(dir, "ignored.txt"), "whatever")
	writeFile(t, target, "SELECT FROM")

	select {
	case results := <-batches:
		require.Len(t, results, 1)
		assert.Equal(t, target, results[0].Path)
		assert.False(t, results[0].OK())
	case <-time.After(5 * time.Second):
		t.Fatal("no results delivered after file change")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_ExplicitFileBypassesInclude(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "schema.ddl")
	writeFile(t, target, "SELECT 1")
	c := newChecker(t)

	w, err := c.NewWatcher([]string{target})
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	batches := make(chan []Result, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(results []Result) { batches <- results })
	}()

	// A sibling .sql file is not part of the watched set.
	writeFile(t, filepath.Join(dir, "sibling.sql"), "SELECT 1")
	writeFile(t, target, "SELECT 1 )")

	select {
	case results := <-batches:
		require.Len(t, results, 1)
		assert.Equal(t, target, results[0].Path)
		assert.False(t, results[0].OK())
	case <-time.After(5 * time.Second):
		t.Fatal("no results delivered after file change")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_Selects(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(t.TempDir(), "one.ddl")
	writeFile(t, file, "SELECT 1")
	c := newChecker(t)

	w, err := c.NewWatcher([]string{dir, file})
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	assert.True(t, w.selects(file))
	assert.True(t, w.selects(filepath.Join(dir, "a.sql")))
	assert.True(t, w.selects(filepath.Join(dir, "sub", "b.sql")))
	assert.False(t, w.selects(filepath.Join(dir, "notes.txt")))
	assert.False(t, w.selects(filepath.Join(filepath.Dir(file), "two.sql")))
}

func TestWatcher_Close(t *testing.T) {
	c := newChecker(t)
	w, err := c.NewWatcher([]string{t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = c.NewWatcher([]string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}
