package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/pkg/lexer"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

func TestRecover(t *testing.T) {
	p := &Parser{}
	run := func(f func()) (err error) {
		defer p.recover(&err)
		f()
		return nil
	}

	err := run(func() {
		p.raise(&SyntaxError{Rule: "query", Token: token.Token{Type: token.IDENTIFIER, Text: "x"}})
	})
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Unexpected token in query: x", serr.Error())

	require.NoError(t, run(func() {}))

	assert.PanicsWithValue(t, "boom", func() {
		_ = run(func() { panic("boom") })
	})
}

func TestParse_StopsAtFirstError(t *testing.T) {
	src := lexer.NewStream("SELECT 1 ) SELECT FROM", lexer.Config{ServerVersion: 80019})
	tree, err := New(src, WithServerVersion(80019)).Parse()

	assert.Nil(t, tree)
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, token.CLOSE_PAR, serr.Token.Type)
}
