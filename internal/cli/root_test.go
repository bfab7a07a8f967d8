package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/internal/cli/config"
	"github.com/leapstack-labs/mysqlparse/internal/cli/output"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	// Keep stray mysqlparse.yaml files and the environment out of the run.
	t.Chdir(t.TempDir())
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "MYSQLPARSE_") {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Help(t *testing.T) {
	out, _, err := run(t, "--help")
	require.NoError(t, err)

	for _, name := range []string{"parse", "tokens", "check", "repl", "lsp", "version", "completion"} {
		assert.Contains(t, out, name)
	}
	for _, flag := range []string{"--server-version", "--sql-mode", "--output", "--verbose", "--config"} {
		assert.Contains(t, out, flag)
	}
}

func TestRoot_Version(t *testing.T) {
	out, _, err := run(t, "version", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "mysqlparse v"+Version)

	out, _, err = run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "mysqlparse "+Version+"\n", out)
}

func TestRoot_FlagsReachCommands(t *testing.T) {
	out, _, err := run(t, "tokens", "--server-version", "5.7.20", "-o", "sexpr", "-e", "SELECT json_table")
	require.NoError(t, err)
	assert.Equal(t, "(SELECT_SYMBOL \"SELECT\")\n(IDENTIFIER \"json_table\")\n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server_version: 5.7.20\noutput: sexpr\n"), 0o600))

	out, _, err := run(t, "--config", cfgPath, "tokens", "-e", "SELECT json_table")
	require.NoError(t, err)
	assert.Contains(t, out, `(IDENTIFIER "json_table")`)
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, _, err := run(t, "parse", "--sql-mode", "NOPE", "-e", "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sql_mode")
}

func TestRoot_CheckFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.sql"), []byte("SELEC 1"), 0o600))

	out, _, err := run(t, "check", "-o", "markdown", dir)
	require.Error(t, err)
	assert.Contains(t, out, "bad.sql: failed")
}

func TestRoot_Completion(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "mysqlparse")
}

func TestGetConfigAndRenderer_Defaults(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, config.Default(), GetConfig(ctx))
	assert.NotNil(t, GetRenderer(ctx))

	r := output.NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, false, output.ModeJSON)
	ctx = context.WithValue(ctx, rendererKey{}, r)
	assert.Same(t, r, GetRenderer(ctx))
}
