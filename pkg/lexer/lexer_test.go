package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/pkg/lexer"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

func types(toks []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

// ---------- Tokenize Tests ----------

func TestTokenize_Basic(t *testing.T) {
	toks := lexer.Tokenize("SELECT a, 1 FROM t;", lexer.Config{ServerVersion: 80017})

	assert.Equal(t, []token.TokenType{
		token.SELECT, token.IDENTIFIER, token.COMMA, token.INT_NUMBER,
		token.FROM, token.IDENTIFIER, token.SEMICOLON, token.EOF,
	}, types(toks))
	assert.Equal(t, "a", toks[1].Text)
	for i, tok := range toks[:len(toks)-1] {
		assert.Equal(t, i, tok.Index)
	}
}

func TestTokenize_Operators(t *testing.T) {
	tests := []struct {
		input string
		want  token.TokenType
	}{
		{"<=>", token.NULL_SAFE_EQUAL_OPERATOR},
		{"<>", token.NOT_EQUAL_OPERATOR},
		{"!=", token.NOT_EQUAL_OPERATOR},
		{">=", token.GREATER_OR_EQUAL_OPERATOR},
		{"<<", token.SHIFT_LEFT_OPERATOR},
		{":=", token.ASSIGN_OPERATOR},
		{"&&", token.LOGICAL_AND_OPERATOR},
		{"||", token.LOGICAL_OR_OPERATOR},
		{"->", token.JSON_SEPARATOR},
		{"->>", token.JSON_UNQUOTED_SEPARATOR},
		{`\N`, token.NULL2},
		{"?", token.PARAM_MARKER},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := lexer.Tokenize(tt.input, lexer.Config{ServerVersion: 80017})
			require.Len(t, toks, 2)
			assert.Equal(t, tt.want, toks[0].Type)
		})
	}
}

func TestTokenize_Literals(t *testing.T) {
	tests := []struct {
		input string
		want  token.TokenType
	}{
		{"42", token.INT_NUMBER},
		{"3000000000", token.LONG_NUMBER},
		{"18446744073709551615", token.ULONGLONG_NUMBER},
		{"1.5", token.DECIMAL_NUMBER},
		{".5", token.DECIMAL_NUMBER},
		{"1e10", token.FLOAT_NUMBER},
		{"2.5E-3", token.FLOAT_NUMBER},
		{"0x1F", token.HEX_NUMBER},
		{"X'1F'", token.HEX_NUMBER},
		{"0b101", token.BIN_NUMBER},
		{"b'101'", token.BIN_NUMBER},
		{"'it''s'", token.SINGLE_QUOTED_TEXT},
		{`'a\'b'`, token.SINGLE_QUOTED_TEXT},
		{`"text"`, token.DOUBLE_QUOTED_TEXT},
		{"N'nat'", token.NCHAR_TEXT},
		{"`weird name`", token.BACK_TICK_QUOTED_ID},
		{"1col", token.IDENTIFIER},
		{"_utf8mb4", token.UNDERSCORE_CHARSET},
		{"@v", token.AT_TEXT_SUFFIX},
		{"@@", token.AT_AT_SIGN},
		{"'open", token.INVALID_INPUT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := lexer.Tokenize(tt.input, lexer.Config{ServerVersion: 80017})
			require.Len(t, toks, 2)
			assert.Equal(t, tt.want, toks[0].Type)
			assert.Equal(t, tt.input, toks[0].Text)
		})
	}
}

func TestTokenize_Positions(t *testing.T) {
	toks := lexer.Tokenize("SELECT\n  a", lexer.Config{ServerVersion: 80017})

	require.Len(t, toks, 3)
	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, toks[0].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 3, Offset: 9}, toks[1].Pos)
}

// ---------- Version Tests ----------

func TestTokenize_KeywordVersionWindow(t *testing.T) {
	// JSON_TABLE is a keyword from 8.0.
	assert.Equal(t, token.IDENTIFIER, lexer.Tokenize("json_table", lexer.Config{ServerVersion: 50730})[0].Type)
	assert.Equal(t, token.JSON_TABLE, lexer.Tokenize("json_table", lexer.Config{ServerVersion: 80017})[0].Type)
}

func TestTokenize_IdentifierAfterDot(t *testing.T) {
	toks := lexer.Tokenize("t.select", lexer.Config{ServerVersion: 80017})

	assert.Equal(t, []token.TokenType{token.IDENTIFIER, token.DOT, token.IDENTIFIER, token.EOF}, types(toks))
}

func TestTokenize_VersionedComments(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		version int
		want    []token.TokenType
	}{
		{
			name:    "active",
			input:   "SELECT /*!50700 1 */",
			version: 80017,
			want:    []token.TokenType{token.SELECT, token.INT_NUMBER, token.EOF},
		},
		{
			name:    "inactive",
			input:   "SELECT /*!80018 1 */",
			version: 80017,
			want:    []token.TokenType{token.SELECT, token.EOF},
		},
		{
			name:    "no version",
			input:   "SELECT /*! 1 */",
			version: 50600,
			want:    []token.TokenType{token.SELECT, token.INT_NUMBER, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexer.Tokenize(tt.input, lexer.Config{ServerVersion: tt.version})
			assert.Equal(t, tt.want, types(toks))
		})
	}
}

func TestLexer_Comments(t *testing.T) {
	l := lexer.New("-- one\nSELECT /* two */ 1 # three\n/*+ hint */", lexer.Config{ServerVersion: 80017})
	for l.NextToken().Type != token.EOF {
	}

	require.Len(t, l.Comments, 4)
	assert.Equal(t, token.DashComment, l.Comments[0].Kind)
	assert.Equal(t, "-- one", l.Comments[0].Text)
	assert.Equal(t, token.BlockComment, l.Comments[1].Kind)
	assert.Equal(t, token.HashComment, l.Comments[2].Kind)
	assert.True(t, l.Comments[2].IsLineComment())
	assert.Equal(t, token.HintComment, l.Comments[3].Kind)
}

// ---------- SQL Mode Tests ----------

func TestTokenize_SQLModes(t *testing.T) {
	concat := lexer.Tokenize("a || b", lexer.Config{ServerVersion: 80017, SQLMode: lexer.PipesAsConcat})
	assert.Equal(t, token.CONCAT_PIPES, concat[1].Type)

	not2 := lexer.Tokenize("NOT a", lexer.Config{ServerVersion: 80017, SQLMode: lexer.HighNotPrecedence})
	assert.Equal(t, token.NOT2, not2[0].Type)

	raw := lexer.Tokenize(`'a\'`, lexer.Config{ServerVersion: 80017, SQLMode: lexer.NoBackslashEscapes})
	require.Len(t, raw, 2)
	assert.Equal(t, token.SINGLE_QUOTED_TEXT, raw[0].Type)
}

func TestParseSQLMode(t *testing.T) {
	tests := []struct {
		input   string
		want    lexer.SQLMode
		wantErr bool
	}{
		{input: "", want: 0},
		{input: "ANSI_QUOTES", want: lexer.ANSIQuotes},
		{input: "ansi_quotes, strict_trans_tables", want: lexer.ANSIQuotes},
		{input: "ANSI", want: lexer.PipesAsConcat | lexer.ANSIQuotes | lexer.IgnoreSpace},
		{input: "MYSQL40", want: lexer.HighNotPrecedence},
		{input: "NOT_A_MODE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := lexer.ParseSQLMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSQLMode_String(t *testing.T) {
	assert.Equal(t, "ANSI_QUOTES,PIPES_AS_CONCAT", (lexer.ANSIQuotes | lexer.PipesAsConcat).String())
	assert.Equal(t, "", lexer.SQLMode(0).String())
}

// ---------- Stream Tests ----------

func TestStream_PeekAndConsume(t *testing.T) {
	s := lexer.NewStream("SELECT a FROM t", lexer.Config{ServerVersion: 80017})

	assert.Equal(t, token.SELECT, s.PeekNextToken(1).Type)
	assert.Equal(t, token.FROM, s.PeekNextToken(3).Type)
	assert.Equal(t, token.EOF, s.PeekNextToken(5).Type)

	assert.Equal(t, token.SELECT, s.GetNextToken().Type)
	assert.Equal(t, token.IDENTIFIER, s.PeekNextToken(1).Type)
	for range 3 {
		s.GetNextToken()
	}
	assert.Equal(t, token.EOF, s.GetNextToken().Type)
	assert.Equal(t, token.EOF, s.GetNextToken().Type)

	s.Reset()
	assert.Equal(t, token.SELECT, s.GetNextToken().Type)
	assert.Equal(t, 80017, s.ServerVersion())
}

func TestStream_SQLMode(t *testing.T) {
	s := lexer.NewStream("", lexer.Config{SQLMode: lexer.ANSIQuotes | lexer.IgnoreSpace})

	assert.True(t, s.IsSQLModeActive(lexer.ANSIQuotes))
	assert.False(t, s.IsSQLModeActive(lexer.PipesAsConcat))
}
