package format_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/mysqlparse/internal/testutil"
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	"github.com/leapstack-labs/mysqlparse/pkg/format"
	"github.com/leapstack-labs/mysqlparse/pkg/parser"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

func mustParse(t *testing.T, sql string) *ast.Rule {
	t.Helper()
	return testutil.MustParse(t, sql, parser.DefaultServerVersion)
}

func leaf(typ token.TokenType, text string, line, col int) *ast.Leaf {
	return ast.NewLeaf(token.Token{Type: typ, Text: text, Pos: token.Position{Line: line, Column: col}})
}

// ---------- Tree Tests ----------

func TestTree(t *testing.T) {
	tree := ast.NewRule("query",
		ast.NewRule("useCommand", leaf(token.USE, "use", 1, 1), ast.NewRule("identifier", leaf(token.IDENTIFIER, "db", 1, 5))),
	)

	expected := `query
  useCommand
    USE_SYMBOL "use"
    identifier
      IDENTIFIER "db"
`
	assert.Equal(t, expected, format.Tree(tree))
}

func TestTree_EOF(t *testing.T) {
	assert.Equal(t, "query\n  EOF\n", format.Tree(mustParse(t, "")))
}

// ---------- SExpr Tests ----------

func TestSExpr(t *testing.T) {
	tree := ast.NewRule("textLiteral", leaf(token.SINGLE_QUOTED_TEXT, "'a b'", 1, 1))
	assert.Equal(t, `(textLiteral "'a b'")`, format.SExpr(tree))

	assert.Equal(t, "(query <EOF>)", format.SExpr(mustParse(t, ";")))
}

func TestSExpr_ParsedTree(t *testing.T) {
	out := format.SExpr(mustParse(t, "SELECT 1"))

	assert.Contains(t, out, "(query (selectStatement")
	assert.Contains(t, out, " SELECT ")
	assert.Contains(t, out, " 1)")
}

// ---------- SQL Tests ----------

func TestSQL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keywords upper cased",
			input:    "select a,b from t where x=1",
			expected: "SELECT a, b FROM t WHERE x = 1",
		},
		{
			name:     "qualified names",
			input:    "select t . a from db.t",
			expected: "SELECT t.a FROM db.t",
		},
		{
			name:     "function call",
			input:    "select count( * ) from t",
			expected: "SELECT COUNT(*) FROM t",
		},
		{
			name:     "in list",
			input:    "select a from t where a in (1,2)",
			expected: "SELECT a FROM t WHERE a IN (1, 2)",
		},
		{
			name:     "account name",
			input:    "drop user 'u' @ 'h'",
			expected: "DROP USER 'u'@'h'",
		},
		{
			name:     "terminators dropped",
			input:    "start transaction; commit;",
			expected: "START TRANSACTION COMMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, format.SQL(mustParse(t, tt.input)))
		})
	}
}

func TestSQL_Reparses(t *testing.T) {
	inputs := []string{
		"select a, count(*) from t group by a having count(*) > 1",
		"insert into t (a, b) values (1, 'x')",
		"create table t (id int primary key, name varchar(10) not null)",
		"grant select on db.* to 'u'@'h'",
	}

	for _, sql := range inputs {
		t.Run(sql, func(t *testing.T) {
			first := mustParse(t, sql)
			text := format.SQL(first)
			second := mustParse(t, text)
			assert.Equal(t, text, format.SQL(second))
			assert.Equal(t, len(ast.Leaves(first)), len(ast.Leaves(second)))
		})
	}
}

// ---------- Encoding Tests ----------

func TestJSON(t *testing.T) {
	data, err := format.JSON(mustParse(t, "USE db"))
	require.NoError(t, err)

	var got format.Node
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "query", got.Kind)
	require.Len(t, got.Children, 1)
	assert.Equal(t, "utilityStatement", got.Children[0].Kind)

	first := got.Children[0].Children[0].Children[0]
	assert.Equal(t, "USE_SYMBOL", first.Kind)
	assert.Equal(t, "USE", first.Value)
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 1, first.Column)
}

func TestYAML(t *testing.T) {
	data, err := format.YAML(mustParse(t, "USE db"))
	require.NoError(t, err)

	var got format.Node
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "query", got.Kind)
	assert.Contains(t, string(data), "kind: USE_SYMBOL")
}
