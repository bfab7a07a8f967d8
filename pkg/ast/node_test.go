package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

func leaf(typ token.TokenType, text string) *ast.Leaf {
	return ast.NewLeaf(token.Token{Type: typ, Text: text, Pos: token.Position{Line: 1, Column: 1}})
}

// sample builds selectStatement(SELECT, selectItemList(selectItem(1)), fromClause(FROM, t)).
func sample() *ast.Rule {
	return ast.NewRule("selectStatement",
		leaf(token.SELECT, "SELECT"),
		ast.NewRule("selectItemList", ast.NewRule("selectItem", leaf(token.INT_NUMBER, "1"))),
		ast.NewRule("fromClause", leaf(token.FROM, "FROM"), leaf(token.IDENTIFIER, "t")),
	)
}

func TestNewRule_DropsNilChildren(t *testing.T) {
	var missingLeaf *ast.Leaf
	var missingRule *ast.Rule

	r := ast.NewRule("x", nil, missingLeaf, leaf(token.SELECT, "SELECT"), missingRule)
	require.Len(t, r.Children, 1)

	r.Add(missingRule, ast.NewRule("y"))
	assert.Len(t, r.Children, 2)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "SELECT_SYMBOL", leaf(token.SELECT, "select").Kind())
	assert.Equal(t, "fromClause", ast.NewRule("fromClause").Kind())
}

func TestChildLookup(t *testing.T) {
	r := sample()

	assert.Equal(t, "SELECT_SYMBOL", r.Child("SELECT_SYMBOL").Kind())
	assert.Nil(t, r.Child("WHERE_SYMBOL"))

	from := r.ChildRule("fromClause")
	require.NotNil(t, from)
	assert.Len(t, from.Children, 2)
	assert.Nil(t, r.ChildRule("selectItem"), "ChildRule only looks at direct children")
}

func TestFindAll(t *testing.T) {
	r := sample()

	assert.Len(t, r.FindAll("selectItem"), 1)
	assert.Empty(t, r.FindAll("selectStatement"), "the receiver is not included")
}

func TestLeavesAndText(t *testing.T) {
	r := sample()

	leaves := ast.Leaves(r)
	require.Len(t, leaves, 4)
	assert.Equal(t, "SELECT", r.FirstLeaf().Value)
	assert.Equal(t, "SELECT 1 FROM t", ast.Text(r))

	assert.Nil(t, ast.NewRule("empty").FirstLeaf())
}

func TestWalk_SkipChildren(t *testing.T) {
	var visited []string
	ast.Walk(sample(), func(n ast.Node) bool {
		visited = append(visited, n.Kind())
		return n.Kind() != "fromClause"
	})

	assert.Equal(t, []string{
		"selectStatement", "SELECT_SYMBOL", "selectItemList", "selectItem", "INT_NUMBER", "fromClause",
	}, visited)
}
