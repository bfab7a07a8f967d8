package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/internal/cli/config"
	"github.com/leapstack-labs/mysqlparse/internal/cli/output"
	clitestutil "github.com/leapstack-labs/mysqlparse/internal/cli/testutil"
	"github.com/leapstack-labs/mysqlparse/internal/testutil"
	"github.com/leapstack-labs/mysqlparse/pkg/format"
)

type result struct {
	out    string
	errOut string
	err    error
}

// execute runs cmd the way the root command would, with cfg and a test
// logger on the context.
func execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, stdin string, args ...string) result {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := config.WithConfig(context.Background(), cfg)
	ctx = context.WithValue(ctx, config.LoggerKey(), testutil.NewTestLogger(t))
	err := cmd.ExecuteContext(ctx)
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func withOutput(format string) *config.Config {
	cfg := config.Default()
	cfg.OutputFormat = format
	return cfg
}

func TestCommandDefinitions(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewParseCommand(), "parse [file|-]", []string{"execute", "normalize"}},
		{NewTokensCommand(), "tokens [file|-]", []string{"execute", "eof"}},
		{NewCheckCommand(), "check [paths...]", []string{"watch", "workers", "include"}},
		{NewREPLCommand(), "repl", nil},
		{NewLSPCommand("1.0.0"), "lsp", nil},
		{NewVersionCommand("1.0.0"), "version", nil},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

// ---------- parse ----------

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		output string
		check  func(t *testing.T, out string)
	}{
		{"text", func(t *testing.T, out string) {
			assert.True(t, strings.HasPrefix(out, "query\n"), out)
			assert.Contains(t, out, `SELECT_SYMBOL "SELECT"`)
			clitestutil.AssertNoANSI(t, out)
		}},
		{"markdown", func(t *testing.T, out string) {
			assert.Contains(t, out, "## <inline>\n")
			assert.Contains(t, out, "```\nquery\n")
		}},
		{"sexpr", func(t *testing.T, out string) {
			assert.True(t, strings.HasPrefix(out, "(query (selectStatement"), out)
			assert.Equal(t, 1, strings.Count(out, "\n"))
		}},
		{"json", func(t *testing.T, out string) {
			var node format.Node
			require.NoError(t, json.Unmarshal([]byte(out), &node))
			assert.Equal(t, "query", node.Kind)
			assert.NotEmpty(t, node.Children)
		}},
		{"yaml", func(t *testing.T, out string) {
			assert.True(t, strings.HasPrefix(out, "kind: query\n"), out)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			res := execute(t, NewParseCommand(), withOutput(tt.output), "", "-e", "SELECT 1")
			require.NoError(t, res.err)
			tt.check(t, res.out)
		})
	}
}

func TestParse_Inputs(t *testing.T) {
	dir := clitestutil.SetupSQLDir(t, map[string]string{"q.sql": "select a from t;"})

	t.Run("file", func(t *testing.T) {
		res := execute(t, NewParseCommand(), withOutput("markdown"), "", filepath.Join(dir, "q.sql"))
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "## "+filepath.Join(dir, "q.sql"))
	})

	t.Run("stdin", func(t *testing.T) {
		res := execute(t, NewParseCommand(), withOutput("markdown"), "SELECT 1;", "-")
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "## <stdin>")
	})

	t.Run("missing file", func(t *testing.T) {
		res := execute(t, NewParseCommand(), nil, "", filepath.Join(dir, "nope.sql"))
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "nope.sql")
		assert.NotErrorIs(t, res.err, ErrCheckFailed)
	})
}

func TestParse_Normalize(t *testing.T) {
	res := execute(t, NewParseCommand(), nil, "select a,b from t where x=1", "--normalize")
	require.NoError(t, res.err)
	assert.Equal(t, "SELECT a, b FROM t WHERE x = 1\n", res.out)
}

func TestParse_SyntaxError(t *testing.T) {
	res := execute(t, NewParseCommand(), nil, "", "-e", "SELECT 1 )")
	require.ErrorIs(t, res.err, ErrCheckFailed)
	assert.Empty(t, res.out)
	assert.Contains(t, res.errOut, "Error: <inline>:1:10: Unexpected token: )")
}

func TestParse_ServerVersion(t *testing.T) {
	sql := "SELECT * FROM JSON_TABLE('[]', '$[*]' COLUMNS (a INT PATH '$')) AS jt"

	require.NoError(t, execute(t, NewParseCommand(), nil, "", "-e", sql).err)

	cfg := config.Default()
	cfg.ServerVersion = "5.7.20"
	assert.ErrorIs(t, execute(t, NewParseCommand(), cfg, "", "-e", sql).err, ErrCheckFailed)
}

func TestParse_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.SQLMode = "NOT_A_MODE"
	res := execute(t, NewParseCommand(), cfg, "", "-e", "SELECT 1")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "sql_mode")
}

// ---------- tokens ----------

func tokenRows(t *testing.T, out string) []output.TokenRow {
	t.Helper()
	var rows []output.TokenRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	return rows
}

func TestTokens_JSON(t *testing.T) {
	res := execute(t, NewTokensCommand(), withOutput("json"), "", "-e", "SELECT\n  1")
	require.NoError(t, res.err)

	rows := tokenRows(t, res.out)
	require.Len(t, rows, 2)
	assert.Equal(t, output.TokenRow{Index: 0, Type: "SELECT_SYMBOL", Text: "SELECT", Line: 1, Column: 1}, rows[0])
	assert.Equal(t, output.TokenRow{Index: 1, Type: "INT_NUMBER", Text: "1", Line: 2, Column: 3}, rows[1])

	res = execute(t, NewTokensCommand(), withOutput("json"), "", "-e", "SELECT 1", "--eof")
	require.NoError(t, res.err)
	rows = tokenRows(t, res.out)
	require.Len(t, rows, 3)
	assert.Equal(t, "EOF", rows[2].Type)
}

func TestTokens_ServerVersion(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"8.0.19", "JSON_TABLE_SYMBOL"},
		{"5.7.20", "IDENTIFIER"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			cfg := withOutput("json")
			cfg.ServerVersion = tt.version
			res := execute(t, NewTokensCommand(), cfg, "", "-e", "SELECT json_table")
			require.NoError(t, res.err)

			rows := tokenRows(t, res.out)
			require.Len(t, rows, 2)
			assert.Equal(t, tt.want, rows[1].Type)
		})
	}
}

func TestTokens_Table(t *testing.T) {
	res := execute(t, NewTokensCommand(), withOutput("markdown"), "SELECT a FROM t")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "| SELECT_SYMBOL | SELECT |")
	assert.Contains(t, res.out, "| FROM_SYMBOL | FROM |")

	res = execute(t, NewTokensCommand(), withOutput("sexpr"), "", "-e", "SELECT 'a'")
	require.NoError(t, res.err)
	assert.Equal(t, "(SELECT_SYMBOL \"SELECT\")\n(SINGLE_QUOTED_TEXT \"'a'\")\n", res.out)
}

// ---------- check ----------

func checkDir(t *testing.T) string {
	return clitestutil.SetupSQLDir(t, map[string]string{
		"good.sql":    "CREATE TABLE t (a INT);\nSELECT a FROM t;\n",
		"sub/bad.sql": "SELECT 1;\nSELECT 2 )\n",
		"notes.txt":   "not sql",
	})
}

func TestCheck_JSON(t *testing.T) {
	dir := checkDir(t)

	res := execute(t, NewCheckCommand(), withOutput("json"), "", dir)
	require.ErrorIs(t, res.err, ErrCheckFailed)

	var report output.CheckOutput
	require.NoError(t, json.Unmarshal([]byte(res.out), &report))
	assert.Equal(t, "8.0.19", report.ServerVersion)
	assert.Equal(t, output.CheckSummary{Files: 2, Passed: 1, Failed: 1}, report.Summary)

	require.Len(t, report.Files, 2)
	assert.Equal(t, filepath.Join(dir, "good.sql"), report.Files[0].Path)
	assert.True(t, report.Files[0].OK)
	assert.Equal(t, 2, report.Files[0].Statements)

	bad := report.Files[1]
	assert.Equal(t, filepath.Join(dir, "sub", "bad.sql"), bad.Path)
	assert.False(t, bad.OK)
	require.NotNil(t, bad.Error)
	assert.Equal(t, output.CheckDiagnostic{Message: "Unexpected token: )", Line: 2, Column: 10}, *bad.Error)
}

func TestCheck_Markdown(t *testing.T) {
	dir := checkDir(t)

	res := execute(t, NewCheckCommand(), withOutput("markdown"), "", filepath.Join(dir, "good.sql"))
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "- "+filepath.Join(dir, "good.sql")+": success (2 statements)")
	assert.Contains(t, res.out, "**1 file checked against MySQL 8.0.19: 1 passed, 0 failed**")

	res = execute(t, NewCheckCommand(), withOutput("markdown"), "", dir)
	require.ErrorIs(t, res.err, ErrCheckFailed)
	assert.Contains(t, res.out, "- "+filepath.Join(dir, "sub", "bad.sql")+": failed\n")
	assert.Contains(t, res.out, "\n"+filepath.Join(dir, "sub", "bad.sql")+":2:10: Unexpected token: )\n")
	assert.Contains(t, res.out, "2 files checked against MySQL 8.0.19: 1 passed, 1 failed")
}

func TestCheck_Include(t *testing.T) {
	dir := checkDir(t)

	cfg := withOutput("json")
	cfg.Check.Include = []string{"good.sql"}
	res := execute(t, NewCheckCommand(), cfg, "", dir)
	require.NoError(t, res.err)

	var report output.CheckOutput
	require.NoError(t, json.Unmarshal([]byte(res.out), &report))
	assert.Equal(t, 1, report.Summary.Files)
}

func TestCheck_MissingPath(t *testing.T) {
	res := execute(t, NewCheckCommand(), nil, "", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, res.err)
	assert.NotErrorIs(t, res.err, ErrCheckFailed)
}

func TestDiagnosticLine(t *testing.T) {
	assert.Equal(t, "a.sql:2:10: Unexpected token: )", diagnosticLine("a.sql", 2, 10, "Unexpected token: )"))
	assert.Equal(t, "a.sql: permission denied", diagnosticLine("a.sql", 0, 0, "permission denied"))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 file", pluralize(1, "file"))
	assert.Equal(t, "0 files", pluralize(0, "file"))
	assert.Equal(t, "3 statements", pluralize(3, "statement"))
}

// ---------- version ----------

func TestVersion(t *testing.T) {
	res := execute(t, NewVersionCommand("1.2.3"), withOutput("json"), "")
	require.NoError(t, res.err)

	var info output.VersionInfo
	require.NoError(t, json.Unmarshal([]byte(res.out), &info))
	assert.Equal(t, output.VersionInfo{
		Version:              "1.2.3",
		DefaultServerVersion: "8.0.19",
		MinServerVersion:     "5.6.0",
		MaxServerVersion:     "8.0.19",
	}, info)

	res = execute(t, NewVersionCommand("1.2.3"), withOutput("text"), "")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "mysqlparse v1.2.3\n")
	assert.Contains(t, res.out, "5.6.0 to 8.0.19")
}

// ---------- lsp ----------

func TestLSP(t *testing.T) {
	var in strings.Builder
	for _, body := range []string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","method":"exit"}`,
	} {
		in.WriteString("Content-Length: ")
		in.WriteString(strconv.Itoa(len(body)))
		in.WriteString("\r\n\r\n")
		in.WriteString(body)
	}

	res := execute(t, NewLSPCommand("1.2.3"), nil, in.String())
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Content-Length: ")
	assert.Contains(t, res.out, `"serverInfo":{"name":"mysqlparse","version":"1.2.3"}`)
}
