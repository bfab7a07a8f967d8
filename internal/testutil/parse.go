package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	"github.com/leapstack-labs/mysqlparse/pkg/parser"
)

// MustParse parses sql for the given server version and fails the test on
// a syntax error.
func MustParse(t testing.TB, sql string, version int) *ast.Rule {
	t.Helper()
	tree, err := parser.ParseString(sql, parser.Config{ServerVersion: version, Logger: NewTestLogger(t)})
	require.NoError(t, err, "sql: %s", sql)
	require.NotNil(t, tree)
	return tree
}
