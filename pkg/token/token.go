// Package token defines the lexical vocabulary of MySQL.
//
// Punctuation, operators and literal classes are declared here. Keywords are
// generated from scripts/genkeywords/keywords.txt into keywords_gen.go and
// carry the server-version window in which the lexer recognises them.
package token

import "fmt"

// TokenType identifies the kind of a lexical token. The set is closed: every
// kind the grammar can ask for is a constant of this type.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // ALL_CAPS names follow the grammar's token vocabulary
const (
	EOF TokenType = iota
	INVALID_INPUT

	// Literal classes
	IDENTIFIER
	BACK_TICK_QUOTED_ID
	SINGLE_QUOTED_TEXT
	DOUBLE_QUOTED_TEXT
	NCHAR_TEXT         // N'...'
	UNDERSCORE_CHARSET // _utf8mb4
	HEX_NUMBER         // 0x1F, X'1F'
	BIN_NUMBER         // 0b01, B'01'
	INT_NUMBER
	LONG_NUMBER
	ULONGLONG_NUMBER
	DECIMAL_NUMBER
	FLOAT_NUMBER
	PARAM_MARKER   // ?
	AT_TEXT_SUFFIX // @name directly attached to the preceding token

	// Operators
	EQUAL_OPERATOR            // =
	ASSIGN_OPERATOR           // :=
	NULL_SAFE_EQUAL_OPERATOR  // <=>
	GREATER_OR_EQUAL_OPERATOR // >=
	GREATER_THAN_OPERATOR     // >
	LESS_OR_EQUAL_OPERATOR    // <=
	LESS_THAN_OPERATOR        // <
	NOT_EQUAL_OPERATOR        // != or <>
	PLUS_OPERATOR             // +
	MINUS_OPERATOR            // -
	MULT_OPERATOR             // *
	DIV_OPERATOR              // /
	MOD_OPERATOR              // %
	LOGICAL_NOT_OPERATOR      // !
	BITWISE_NOT_OPERATOR      // ~
	SHIFT_LEFT_OPERATOR       // <<
	SHIFT_RIGHT_OPERATOR      // >>
	LOGICAL_AND_OPERATOR      // &&
	BITWISE_AND_OPERATOR      // &
	BITWISE_XOR_OPERATOR      // ^
	LOGICAL_OR_OPERATOR       // ||
	BITWISE_OR_OPERATOR       // |

	// Punctuation
	DOT
	COMMA
	SEMICOLON
	COLON
	OPEN_PAR
	CLOSE_PAR
	OPEN_CURLY
	CLOSE_CURLY
	JSON_SEPARATOR          // ->
	JSON_UNQUOTED_SEPARATOR // ->>
	AT_SIGN                 // @
	AT_AT_SIGN              // @@
	NULL2                   // \N

	// Mode-dependent spellings produced by the lexer
	CONCAT_PIPES // || under PIPES_AS_CONCAT
	NOT2         // NOT under HIGH_NOT_PRECEDENCE

	// keywordBeg precedes the generated keyword constants.
	keywordBeg
)

var tokenNames = [keywordBeg]string{
	EOF:                       "EOF",
	INVALID_INPUT:             "INVALID_INPUT",
	IDENTIFIER:                "IDENTIFIER",
	BACK_TICK_QUOTED_ID:       "BACK_TICK_QUOTED_ID",
	SINGLE_QUOTED_TEXT:        "SINGLE_QUOTED_TEXT",
	DOUBLE_QUOTED_TEXT:        "DOUBLE_QUOTED_TEXT",
	NCHAR_TEXT:                "NCHAR_TEXT",
	UNDERSCORE_CHARSET:        "UNDERSCORE_CHARSET",
	HEX_NUMBER:                "HEX_NUMBER",
	BIN_NUMBER:                "BIN_NUMBER",
	INT_NUMBER:                "INT_NUMBER",
	LONG_NUMBER:               "LONG_NUMBER",
	ULONGLONG_NUMBER:          "ULONGLONG_NUMBER",
	DECIMAL_NUMBER:            "DECIMAL_NUMBER",
	FLOAT_NUMBER:              "FLOAT_NUMBER",
	PARAM_MARKER:              "PARAM_MARKER",
	AT_TEXT_SUFFIX:            "AT_TEXT_SUFFIX",
	EQUAL_OPERATOR:            "EQUAL_OPERATOR",
	ASSIGN_OPERATOR:           "ASSIGN_OPERATOR",
	NULL_SAFE_EQUAL_OPERATOR:  "NULL_SAFE_EQUAL_OPERATOR",
	GREATER_OR_EQUAL_OPERATOR: "GREATER_OR_EQUAL_OPERATOR",
	GREATER_THAN_OPERATOR:     "GREATER_THAN_OPERATOR",
	LESS_OR_EQUAL_OPERATOR:    "LESS_OR_EQUAL_OPERATOR",
	LESS_THAN_OPERATOR:        "LESS_THAN_OPERATOR",
	NOT_EQUAL_OPERATOR:        "NOT_EQUAL_OPERATOR",
	PLUS_OPERATOR:             "PLUS_OPERATOR",
	MINUS_OPERATOR:            "MINUS_OPERATOR",
	MULT_OPERATOR:             "MULT_OPERATOR",
	DIV_OPERATOR:              "DIV_OPERATOR",
	MOD_OPERATOR:              "MOD_OPERATOR",
	LOGICAL_NOT_OPERATOR:      "LOGICAL_NOT_OPERATOR",
	BITWISE_NOT_OPERATOR:      "BITWISE_NOT_OPERATOR",
	SHIFT_LEFT_OPERATOR:       "SHIFT_LEFT_OPERATOR",
	SHIFT_RIGHT_OPERATOR:      "SHIFT_RIGHT_OPERATOR",
	LOGICAL_AND_OPERATOR:      "LOGICAL_AND_OPERATOR",
	BITWISE_AND_OPERATOR:      "BITWISE_AND_OPERATOR",
	BITWISE_XOR_OPERATOR:      "BITWISE_XOR_OPERATOR",
	LOGICAL_OR_OPERATOR:       "LOGICAL_OR_OPERATOR",
	BITWISE_OR_OPERATOR:       "BITWISE_OR_OPERATOR",
	DOT:                       "DOT_SYMBOL",
	COMMA:                     "COMMA_SYMBOL",
	SEMICOLON:                 "SEMICOLON_SYMBOL",
	COLON:                     "COLON_SYMBOL",
	OPEN_PAR:                  "OPEN_PAR_SYMBOL",
	CLOSE_PAR:                 "CLOSE_PAR_SYMBOL",
	OPEN_CURLY:                "OPEN_CURLY_SYMBOL",
	CLOSE_CURLY:               "CLOSE_CURLY_SYMBOL",
	JSON_SEPARATOR:            "JSON_SEPARATOR_SYMBOL",
	JSON_UNQUOTED_SEPARATOR:   "JSON_UNQUOTED_SEPARATOR_SYMBOL",
	AT_SIGN:                   "AT_SIGN_SYMBOL",
	AT_AT_SIGN:                "AT_AT_SIGN_SYMBOL",
	NULL2:                     "NULL2_SYMBOL",
	CONCAT_PIPES:              "CONCAT_PIPES_SYMBOL",
	NOT2:                      "NOT2_SYMBOL",
}

// NumTokens is the number of token types, usable to size lookup tables.
const NumTokens = int(keywordEnd)

// String returns the canonical grammar name of the token type, e.g.
// SELECT_SYMBOL or OPEN_PAR_SYMBOL.
func (t TokenType) String() string {
	switch {
	case t >= 0 && t < keywordBeg:
		return tokenNames[t]
	case t > keywordBeg && t < keywordEnd:
		return keywordNames[t-keywordBeg-1] + "_SYMBOL"
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t TokenType) IsKeyword() bool {
	return t > keywordBeg && t < keywordEnd
}

// IsOperator reports whether t is an operator.
func (t TokenType) IsOperator() bool {
	return t >= EQUAL_OPERATOR && t <= BITWISE_OR_OPERATOR
}

// IsNumber reports whether t is one of the numeric literal classes.
func (t TokenType) IsNumber() bool {
	switch t {
	case HEX_NUMBER, BIN_NUMBER, INT_NUMBER, LONG_NUMBER, ULONGLONG_NUMBER, DECIMAL_NUMBER, FLOAT_NUMBER:
		return true
	}
	return false
}

// Keyword returns the keyword spelling for a keyword token type, or "" for
// any other type.
func (t TokenType) Keyword() string {
	if !t.IsKeyword() {
		return ""
	}
	return keywordNames[t-keywordBeg-1]
}

// Token is a lexical token. Text is the raw source text, so a synonym such as
// SCHEMA keeps its spelling while its Type is DATABASE.
type Token struct {
	Type  TokenType
	Text  string
	Pos   Position
	Index int // position in the token stream, 0-based
}

func (t Token) String() string {
	if t.Type == EOF {
		return "<EOF>"
	}
	return t.Text
}
