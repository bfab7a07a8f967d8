package parser_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/internal/testutil"
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	"github.com/leapstack-labs/mysqlparse/pkg/format"
	"github.com/leapstack-labs/mysqlparse/pkg/lexer"
	"github.com/leapstack-labs/mysqlparse/pkg/parser"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

func parse(t *testing.T, sql string, version int) *ast.Rule {
	t.Helper()
	return testutil.MustParse(t, sql, version)
}

func parseErr(t *testing.T, sql string, version int) *parser.SyntaxError {
	t.Helper()
	tree, err := parser.ParseString(sql, parser.Config{ServerVersion: version})
	require.Error(t, err, "sql: %s", sql)
	assert.Nil(t, tree)
	var serr *parser.SyntaxError
	require.True(t, errors.As(err, &serr), "error %T is not a *SyntaxError", err)
	return serr
}

func childKinds(r *ast.Rule) []string {
	kinds := make([]string, len(r.Children))
	for i, c := range r.Children {
		kinds[i] = c.Kind()
	}
	return kinds
}

// ---------- Query Shape Tests ----------

func TestParse_SingleSelect(t *testing.T) {
	tree := parse(t, "SELECT 1;", 80017)

	assert.Equal(t, "query", tree.Name)
	assert.Equal(t, []string{"selectStatement"}, childKinds(tree))
}

func TestParse_EmptyInput(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t"},
		{"comment only", "/* nothing */ -- here\n"},
		{"terminator", ";"},
		{"several terminators", ";;  ;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, tt.sql, 80017)
			require.Len(t, tree.Children, 1)
			leaf, ok := tree.Children[0].(*ast.Leaf)
			require.True(t, ok)
			assert.Equal(t, token.EOF, leaf.Type)
		})
	}
}

func TestParse_MultipleStatements(t *testing.T) {
	tree := parse(t, "SELECT 1; START TRANSACTION; UPDATE t SET a = 1;; COMMIT", 80017)

	assert.Equal(t, []string{"selectStatement", "transactionOrLockingStatement", "updateStatement", "transactionOrLockingStatement"},
		childKinds(tree))
}

func TestParse_StatementsWithoutTerminator(t *testing.T) {
	tree := parse(t, "SELECT 1 SELECT 2", 80019)
	assert.Equal(t, []string{"selectStatement", "selectStatement"}, childKinds(tree))

	tree = parse(t, "DROP TABLE t\nCREATE TABLE t (a INT);", 80019)
	assert.Equal(t, []string{"dropStatement", "createStatement"}, childKinds(tree))
}

func TestParse_BeginWork(t *testing.T) {
	for _, sql := range []string{"BEGIN", "BEGIN;", "begin work;;"} {
		t.Run(sql, func(t *testing.T) {
			tree := parse(t, sql, 80019)
			assert.Equal(t, []string{"beginWork"}, childKinds(tree))
		})
	}

	tests := []struct {
		sql  string
		want token.TokenType
	}{
		{"SELECT 1; BEGIN", token.BEGIN},
		{"SELECT 1 BEGIN", token.BEGIN},
		{"BEGIN; SELECT 1", token.SELECT},
		{"BEGIN COMMIT", token.COMMIT},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			serr := parseErr(t, tt.sql, 80019)
			assert.Equal(t, tt.want, serr.Token.Type)
			assert.Empty(t, serr.Rule)
		})
	}
}

func TestParse_CreateTableAcrossVersions(t *testing.T) {
	for _, version := range []int{50600, 80017} {
		tree := parse(t, "CREATE TABLE t (a INT)", version)

		require.Equal(t, []string{"createStatement"}, childKinds(tree))
		assert.Len(t, tree.FindAll("createTable"), 1)
		assert.Len(t, tree.FindAll("columnDefinition"), 1)
	}
}

func TestParse_AlterTableTrailingAlgorithm(t *testing.T) {
	sql := "ALTER TABLE t ADD COLUMN b INT, ALGORITHM=INPLACE"

	serr := parseErr(t, sql, 50705)
	assert.Equal(t, "alterList", serr.Rule)

	tree := parse(t, sql, 50706)
	assert.Len(t, tree.FindAll("alterAlgorithmOption"), 1)
}

func TestParse_CommaJoin(t *testing.T) {
	tree := parse(t, "SELECT * FROM t1, t2", 80017)

	lists := tree.FindAll("tableReferenceList")
	require.Len(t, lists, 1)
	refs := lists[0].FindAll("tableReference")
	require.Len(t, refs, 2)
	for _, ref := range refs {
		assert.Len(t, ref.FindAll("singleTable"), 1)
	}
}

func TestParse_GrantTree(t *testing.T) {
	tree := parse(t, "GRANT SELECT, INSERT ON db.* TO 'u'@'h'", 80017)

	grants := tree.FindAll("grant")
	require.Len(t, grants, 1)
	grant := grants[0]

	privs := grant.ChildRule("roleOrPrivilegesList")
	require.NotNil(t, privs)
	assert.Len(t, privs.FindAll("roleOrPrivilege"), 2)

	assert.NotNil(t, grant.ChildRule("grantIdentifier"))

	targets := grant.ChildRule("grantTargetList")
	require.NotNil(t, targets)
	users := targets.ChildRule("userList")
	require.NotNil(t, users)
	assert.Len(t, users.FindAll("user"), 1)
}

func TestParse_GrantTargetsBeforeRoles(t *testing.T) {
	tree := parse(t, "GRANT SELECT ON db.* TO 'u'@'h' IDENTIFIED BY 'pw'", 50720)

	targets := tree.FindAll("grantTargetList")
	require.Len(t, targets, 1)
	assert.NotNil(t, targets[0].ChildRule("createUserList"))

	parseErr(t, "GRANT SELECT ON db.* TO 'u'@'h' IDENTIFIED BY 'pw'", 80011)
}

// ---------- Error Tests ----------

func TestParse_ErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		message string
	}{
		{
			name:    "unknown statement",
			sql:     "FROBNICATE t",
			message: "Unexpected token: FROBNICATE",
		},
		{
			name:    "unknown statement after another",
			sql:     "SELECT 1; FROBNICATE t",
			message: "Unexpected token: FROBNICATE",
		},
		{
			name:    "truncated input",
			sql:     "CREATE TABLE t (a INT",
			message: "Unexpected token: <EOF>, expected CLOSE_PAR_SYMBOL",
		},
		{
			name:    "stray token after statement",
			sql:     "SELECT 1 )",
			message: "Unexpected token: )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serr := parseErr(t, tt.sql, 80017)
			assert.Equal(t, tt.message, serr.Error())
		})
	}
}

func TestParse_VersionGatedStatementStart(t *testing.T) {
	serr := parseErr(t, "WITH x AS (SELECT 1) SELECT * FROM x", 50720)
	assert.Equal(t, "Unexpected token in simpleStatement: WITH", serr.Error())

	tree := parse(t, "WITH x AS (SELECT 1) SELECT * FROM x", 80000)
	assert.Equal(t, []string{"selectStatement"}, childKinds(tree))
}

func TestParse_ErrorPosition(t *testing.T) {
	serr := parseErr(t, "SELECT 1;\nSELECT 2 )", 80017)

	assert.Equal(t, 2, serr.Pos().Line)
	assert.Equal(t, 10, serr.Pos().Column)
}

func TestParse_TruncatedStatementsFail(t *testing.T) {
	tests := []string{
		"SELECT",
		"SELECT a FROM",
		"INSERT INTO t VALUES (",
		"UPDATE t SET",
		"DELETE FROM",
		"CREATE",
		"GRANT SELECT ON",
		"ALTER TABLE t ADD",
	}

	for _, sql := range tests {
		t.Run(sql, func(t *testing.T) {
			serr := parseErr(t, sql, 80017)
			assert.Equal(t, token.EOF, serr.Token.Type)
		})
	}
}

func TestParse_MaxDepth(t *testing.T) {
	sql := "SELECT ((((((((((1))))))))))"

	_, err := parser.ParseString(sql, parser.Config{ServerVersion: 80017})
	require.NoError(t, err)

	_, err = parser.ParseString(sql, parser.Config{ServerVersion: 80017, MaxDepth: 5})
	var serr *parser.SyntaxError
	require.ErrorAs(t, err, &serr)
}

// ---------- Tree Invariant Tests ----------

func TestParse_LeavesCoverTokens(t *testing.T) {
	tests := []string{
		"SELECT a, b AS c FROM t WHERE a > 1 ORDER BY b DESC LIMIT 5",
		"INSERT INTO t (a, b) VALUES (1, 'x'), (2, 'y') ON DUPLICATE KEY UPDATE b = VALUES(b)",
		"CREATE TABLE t (id INT NOT NULL AUTO_INCREMENT PRIMARY KEY, name VARCHAR(20) DEFAULT 'n') ENGINE=InnoDB",
		"GRANT SELECT, INSERT ON db.* TO 'u'@'h' WITH GRANT OPTION",
		"SET @a = 1, SESSION sql_mode = 'ANSI'",
	}

	for _, sql := range tests {
		t.Run(sql, func(t *testing.T) {
			tree := parse(t, sql, 80017)

			var want []string
			for _, tok := range lexer.Tokenize(sql, lexer.Config{ServerVersion: 80017}) {
				if tok.Type == token.EOF || tok.Type == token.SEMICOLON {
					continue
				}
				want = append(want, tok.Text)
			}
			var got []string
			for _, leaf := range ast.Leaves(tree) {
				got = append(got, leaf.Value)
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	sql := "WITH x AS (SELECT 1 AS a) SELECT a FROM x UNION ALL SELECT 2"

	first := format.Tree(parse(t, sql, 80017))
	second := format.Tree(parse(t, sql, 80017))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("reparse differs (-first +second):\n%s", diff)
	}
}

func TestParse_NoEmptyRules(t *testing.T) {
	tree := parse(t, "CREATE USER 'u'@'h'; SHOW SLAVE STATUS; SET autocommit = 1", 80017)

	ast.Walk(tree, func(n ast.Node) bool {
		if r, ok := n.(*ast.Rule); ok {
			assert.NotEmpty(t, r.Children, "rule %s has no children", r.Name)
		}
		return true
	})
}

// ---------- Parser API Tests ----------

func TestNew_Options(t *testing.T) {
	stream := lexer.NewStream("SELECT 1", lexer.Config{ServerVersion: 50720})
	p := parser.New(stream, parser.WithServerVersion(50720), parser.WithLogger(testutil.NewTestLogger(t)))

	assert.Equal(t, 50720, p.ServerVersion())
	tree, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"selectStatement"}, childKinds(tree))
}

func TestParseString_DefaultVersion(t *testing.T) {
	// JSON_TABLE needs 8.0.4, so this only parses under the default version.
	sql := "SELECT * FROM JSON_TABLE('[]', '$[*]' COLUMNS (a INT PATH '$')) AS jt"

	_, err := parser.ParseString(sql, parser.Config{})
	require.NoError(t, err)
	_, err = parser.ParseString(sql, parser.Config{ServerVersion: 50720})
	require.Error(t, err)
}

func TestParseString_SQLMode(t *testing.T) {
	sql := `SELECT "a" FROM t`

	tree := parse(t, sql, 80017)
	assert.Empty(t, tree.FindAll("columnRef"))

	tree, err := parser.ParseString(sql, parser.Config{ServerVersion: 80017, SQLMode: lexer.ANSIQuotes})
	require.NoError(t, err)
	assert.Len(t, tree.FindAll("columnRef"), 1)
}
