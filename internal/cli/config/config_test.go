package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/pkg/lexer"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "mysqlparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("server-version", "", "")
	flags.String("sql-mode", "", "")
	flags.StringP("output", "o", "", "")
	flags.BoolP("verbose", "v", false, "")
	flags.Int("workers", 0, "")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	cfg, err := LoadConfigFromDir("", t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultServerVersion, cfg.ServerVersion)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.Verbose)
	require.NotNil(t, cfg.Check)
	assert.Equal(t, DefaultWorkers, cfg.Check.Workers)
	assert.Equal(t, []string{DefaultInclude}, cfg.Check.Include)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := writeConfig(t, dir, `
server_version: "5.7.30"
sql_mode: ANSI_QUOTES
output: json
check:
  include:
    - "migrations/*.sql"
  workers: 2
`)

	cfg, err := LoadConfigFromDir("", dir, nil)
	require.NoError(t, err)

	assert.Equal(t, path, GetConfigFileUsed())
	assert.Equal(t, "5.7.30", cfg.ServerVersion)
	assert.Equal(t, "ANSI_QUOTES", cfg.SQLMode)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, []string{"migrations/*.sql"}, cfg.Check.Include)
	assert.Equal(t, 2, cfg.Check.Workers)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: sexpr\n"), 0o600))

	cfg, err := LoadConfigFromDir(path, t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, "sexpr", cfg.OutputFormat)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfigFromDir(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_Precedence(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	writeConfig(t, dir, "server_version: \"5.6.10\"\noutput: yaml\ncheck:\n  workers: 2\n")
	t.Setenv("MYSQLPARSE_SERVER_VERSION", "5.7.8")
	t.Setenv("MYSQLPARSE_CHECK_WORKERS", "3")

	// Env beats file.
	cfg, err := LoadConfigFromDir("", dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "5.7.8", cfg.ServerVersion)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, 3, cfg.Check.Workers)

	// Changed flags beat env; unchanged ones do not.
	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--server-version", "8.0.17", "--workers", "6"}))
	cfg, err = LoadConfigFromDir("", dir, flags)
	require.NoError(t, err)
	assert.Equal(t, "8.0.17", cfg.ServerVersion)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, 6, cfg.Check.Workers)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{"bad version", "server_version: eight\n", "server_version"},
		{"bad sql mode", "sql_mode: NOT_A_MODE\n", "sql_mode"},
		{"bad output", "output: xml\n", "output"},
		{"bad log level", "log_level: chatty\n", "log_level"},
		{"negative workers", "check:\n  workers: -1\n", "check.workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := LoadConfigFromDir("", dir, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server_version", envKey("MYSQLPARSE_SERVER_VERSION"))
	assert.Equal(t, "check.workers", envKey("MYSQLPARSE_CHECK_WORKERS"))
	assert.Equal(t, "output", envKey("MYSQLPARSE_OUTPUT"))
}

func TestFlagKey(t *testing.T) {
	assert.Equal(t, "server_version", flagKey("server-version"))
	assert.Equal(t, "check.workers", flagKey("workers"))
	assert.Equal(t, "check.include", flagKey("include"))
	assert.Equal(t, "verbose", flagKey("verbose"))
}

func TestGetCheckConfig(t *testing.T) {
	cfg := &Config{}
	check := cfg.GetCheckConfig()
	assert.Equal(t, DefaultWorkers, check.Workers)
	assert.Equal(t, []string{DefaultInclude}, check.Include)

	cfg.Check = &CheckConfig{Workers: 8}
	assert.Equal(t, 8, cfg.GetCheckConfig().Workers)
}

func TestParserConfig(t *testing.T) {
	cfg := Default()
	cfg.ServerVersion = "5.7.30-log"
	cfg.SQLMode = "ansi"
	cfg.MaxDepth = 50

	pc, err := cfg.ParserConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 50730, pc.ServerVersion)
	assert.True(t, pc.SQLMode.Has(lexer.ANSIQuotes|lexer.PipesAsConcat))
	assert.Equal(t, 50, pc.MaxDepth)

	cfg.ServerVersion = "x"
	_, err = cfg.ParserConfig(nil)
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{LogLevel: "info"}, &buf)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger = NewLogger(&Config{LogLevel: "error", Verbose: true}, &buf)
	logger.Debug("verbose wins")
	assert.Contains(t, buf.String(), "verbose wins")
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := slog.New(slog.DiscardHandler)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))

	cfg := Default()
	cfg.ServerVersion = "5.7.30"
	ctx := WithConfig(context.Background(), cfg)
	assert.Same(t, cfg, FromContext(ctx))
}
