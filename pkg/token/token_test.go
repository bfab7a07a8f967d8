package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

func TestTokenType_String(t *testing.T) {
	tests := []struct {
		typ  token.TokenType
		want string
	}{
		{token.EOF, "EOF"},
		{token.IDENTIFIER, "IDENTIFIER"},
		{token.CLOSE_PAR, "CLOSE_PAR_SYMBOL"},
		{token.SELECT, "SELECT_SYMBOL"},
		{token.JSON_TABLE, "JSON_TABLE_SYMBOL"},
		{token.TokenType(-1), "TOKEN(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestTokenType_Classes(t *testing.T) {
	assert.True(t, token.SELECT.IsKeyword())
	assert.False(t, token.IDENTIFIER.IsKeyword())
	assert.Equal(t, "SELECT", token.SELECT.Keyword())
	assert.Equal(t, "", token.COMMA.Keyword())

	assert.True(t, token.EQUAL_OPERATOR.IsOperator())
	assert.False(t, token.COMMA.IsOperator())

	assert.True(t, token.HEX_NUMBER.IsNumber())
	assert.True(t, token.ULONGLONG_NUMBER.IsNumber())
	assert.False(t, token.SINGLE_QUOTED_TEXT.IsNumber())
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "<EOF>", token.Token{Type: token.EOF}.String())
	assert.Equal(t, "select", token.Token{Type: token.SELECT, Text: "select"}.String())
}

// ---------- Keyword Tests ----------

func TestLookupKeyword(t *testing.T) {
	kw, ok := token.LookupKeyword("select")
	require.True(t, ok)
	assert.Equal(t, token.SELECT, kw.Type)
	assert.False(t, kw.IsSynonym())

	kw, ok = token.LookupKeyword("Schema")
	require.True(t, ok)
	assert.Equal(t, token.DATABASE, kw.Type)
	assert.True(t, kw.IsSynonym())

	_, ok = token.LookupKeyword("frobnicate")
	assert.False(t, ok)
}

func TestKeywordInfo_ActiveIn(t *testing.T) {
	kw, ok := token.LookupKeyword("JSON_TABLE")
	require.True(t, ok)

	assert.False(t, kw.ActiveIn(50730))
	assert.True(t, kw.ActiveIn(80000))
	assert.True(t, kw.ActiveIn(80019))
}

func TestKeywords_SortedAndComplete(t *testing.T) {
	all := token.Keywords()
	require.NotEmpty(t, all)

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Word, all[i].Word)
	}
	for _, kw := range all {
		assert.True(t, kw.Type.IsKeyword(), kw.Word)
	}

	// The returned slice is a copy.
	all[0].Word = "changed"
	assert.NotEqual(t, "changed", token.Keywords()[0].Word)
}

// ---------- Position Tests ----------

func TestPosition(t *testing.T) {
	pos := token.Position{Line: 3, Column: 7, Offset: 20}
	assert.True(t, pos.IsValid())
	assert.Equal(t, "3:7", pos.String())
	assert.False(t, token.Position{}.IsValid())

	span := token.Span{Start: token.Position{Offset: 5}, End: token.Position{Offset: 10}}
	assert.True(t, span.Contains(5))
	assert.True(t, span.Contains(9))
	assert.False(t, span.Contains(10))
}
