package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/internal/cli/config"
	"github.com/leapstack-labs/mysqlparse/internal/cli/output"
	clitestutil "github.com/leapstack-labs/mysqlparse/internal/cli/testutil"
	"github.com/leapstack-labs/mysqlparse/internal/testutil"
	"github.com/leapstack-labs/mysqlparse/pkg/lexer"
)

func newSession(t *testing.T, mode output.Mode) (*replSession, *clitestutil.TestRenderer) {
	t.Helper()
	cfg := config.Default()
	logger := testutil.NewTestLogger(t)
	pcfg, err := cfg.ParserConfig(logger)
	require.NoError(t, err)

	tr := clitestutil.NewTestRenderer(mode, false)
	return &replSession{cc: &CommandContext{Cfg: cfg, Logger: logger, Parser: pcfg, Renderer: tr.Renderer}}, tr
}

func TestREPL_MultiLineStatement(t *testing.T) {
	s, tr := newSession(t, output.ModeSExpr)

	assert.False(t, s.handleLine("SELECT a"))
	assert.Empty(t, tr.Output())
	assert.False(t, s.handleLine("  FROM t;"))

	assert.Contains(t, tr.Output(), "(query (selectStatement")
	assert.Contains(t, tr.Output(), " FROM ")
	assert.Zero(t, s.buf.Len())
}

func TestREPL_SyntaxError(t *testing.T) {
	s, tr := newSession(t, output.ModeSExpr)

	s.handleLine("SELECT 1 );")
	assert.Empty(t, tr.Output())
	assert.Contains(t, tr.ErrorOutput(), "Error: input:1:10: Unexpected token: )")
}

func TestREPL_DotCommands(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		s, tr := newSession(t, output.ModeSExpr)

		s.handleLine(".version")
		assert.Equal(t, "8.0.19\n", tr.Output())

		s.handleLine(".version 5.7.20")
		assert.Equal(t, 50720, s.cc.Parser.ServerVersion)

		s.handleLine(".version banana")
		assert.Equal(t, 50720, s.cc.Parser.ServerVersion)
		assert.Contains(t, tr.ErrorOutput(), "Error: ")
	})

	t.Run("mode", func(t *testing.T) {
		s, tr := newSession(t, output.ModeSExpr)

		s.handleLine(".mode ansi_quotes")
		assert.True(t, s.cc.Parser.SQLMode.Has(lexer.ANSIQuotes))

		s.handleLine(".mode NOPE")
		assert.Contains(t, tr.ErrorOutput(), "Error: ")
		assert.True(t, s.cc.Parser.SQLMode.Has(lexer.ANSIQuotes))
	})

	t.Run("output", func(t *testing.T) {
		s, tr := newSession(t, output.ModeSExpr)

		s.handleLine(".output json")
		assert.Equal(t, output.ModeJSON, s.cc.Renderer.EffectiveMode())
		s.handleLine("SELECT 1;")
		assert.Contains(t, tr.Output(), `"kind": "query"`)

		s.handleLine(".output html")
		assert.Contains(t, tr.ErrorOutput(), "usage: .output")
	})

	t.Run("help and unknown", func(t *testing.T) {
		s, tr := newSession(t, output.ModeSExpr)

		s.handleLine(".help")
		assert.Contains(t, tr.Output(), ".version [v]")

		s.handleLine(".frobnicate")
		assert.Contains(t, tr.ErrorOutput(), "unknown command: .frobnicate")
	})

	t.Run("quit", func(t *testing.T) {
		s, _ := newSession(t, output.ModeSExpr)
		assert.True(t, s.handleLine(".quit"))
		assert.True(t, s.handleLine(".EXIT"))
	})
}

func TestREPL_DotInsideStatement(t *testing.T) {
	s, tr := newSession(t, output.ModeSExpr)

	// A line starting with "." continues a pending statement.
	s.handleLine("SELECT a")
	assert.False(t, s.handleLine(".help"))
	assert.Equal(t, "SELECT a\n.help", s.buf.String())
	assert.Empty(t, tr.Output())
	assert.Empty(t, tr.ErrorOutput())
}

func TestKeywordCompleter(t *testing.T) {
	c := newKeywordCompleter()
	assert.Greater(t, len(c.GetChildren()), 500)
}
