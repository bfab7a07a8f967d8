// Package lexer turns MySQL text into tokens for the parser.
//
// The lexer honours the target server version twice: keywords outside their
// version window lex as identifiers, and versioned comments /*!NNNNN ... */
// contribute their body only when the server version is at least NNNNN.
package lexer

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

// Config controls version and mode dependent tokenization.
type Config struct {
	ServerVersion int
	SQLMode       SQLMode
}

// Lexer tokenizes MySQL input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	cfg Config

	// inVersioned is set while lexing the body of an active versioned
	// comment; its closing */ is skipped.
	inVersioned bool

	// identAfterDot makes the next word an identifier even if it spells a
	// keyword, as in t.select.
	identAfterDot bool

	index int

	// Comments collected during lexing.
	Comments []*token.Comment
}

// New creates a Lexer for the given input.
func New(input string, cfg Config) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		cfg:   cfg,
	}
	l.readChar()
	return l
}

// Tokenize lexes the whole input, up to and including the EOF token.
func Tokenize(input string, cfg Config) []token.Token {
	l := New(input, cfg)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	return l.peekAt(1)
}

// peekAt returns the character n bytes past the current one.
func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// NextToken returns the next token. After the input is exhausted it keeps
// returning EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()
	start := l.pos
	typ := l.scan()

	tok := token.Token{
		Type:  typ,
		Text:  l.input[start:l.pos],
		Pos:   pos,
		Index: l.index,
	}
	if typ != token.EOF {
		l.index++
	}
	return tok
}

// scan consumes one token and returns its type. The token text is the input
// between the start offset and the offset after scan returns.
func (l *Lexer) scan() token.TokenType {
	afterDot := l.identAfterDot
	l.identAfterDot = false

	if l.atEOF() {
		return token.EOF
	}

	ch := l.ch
	switch ch {
	case '+':
		l.readChar()
		return token.PLUS_OPERATOR
	case '-':
		l.readChar()
		if l.ch == '>' {
			l.readChar()
			if l.ch == '>' {
				l.readChar()
				return token.JSON_UNQUOTED_SEPARATOR
			}
			return token.JSON_SEPARATOR
		}
		return token.MINUS_OPERATOR
	case '*':
		l.readChar()
		return token.MULT_OPERATOR
	case '/':
		l.readChar()
		return token.DIV_OPERATOR
	case '%':
		l.readChar()
		return token.MOD_OPERATOR
	case '=':
		l.readChar()
		return token.EQUAL_OPERATOR
	case ':':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return token.ASSIGN_OPERATOR
		}
		return token.COLON
	case '<':
		l.readChar()
		switch l.ch {
		case '=':
			l.readChar()
			if l.ch == '>' {
				l.readChar()
				return token.NULL_SAFE_EQUAL_OPERATOR
			}
			return token.LESS_OR_EQUAL_OPERATOR
		case '>':
			l.readChar()
			return token.NOT_EQUAL_OPERATOR
		case '<':
			l.readChar()
			return token.SHIFT_LEFT_OPERATOR
		}
		return token.LESS_THAN_OPERATOR
	case '>':
		l.readChar()
		switch l.ch {
		case '=':
			l.readChar()
			return token.GREATER_OR_EQUAL_OPERATOR
		case '>':
			l.readChar()
			return token.SHIFT_RIGHT_OPERATOR
		}
		return token.GREATER_THAN_OPERATOR
	case '!':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return token.NOT_EQUAL_OPERATOR
		}
		return token.LOGICAL_NOT_OPERATOR
	case '~':
		l.readChar()
		return token.BITWISE_NOT_OPERATOR
	case '^':
		l.readChar()
		return token.BITWISE_XOR_OPERATOR
	case '&':
		l.readChar()
		if l.ch == '&' {
			l.readChar()
			return token.LOGICAL_AND_OPERATOR
		}
		return token.BITWISE_AND_OPERATOR
	case '|':
		l.readChar()
		if l.ch == '|' {
			l.readChar()
			if l.cfg.SQLMode.Has(PipesAsConcat) {
				return token.CONCAT_PIPES
			}
			return token.LOGICAL_OR_OPERATOR
		}
		return token.BITWISE_OR_OPERATOR
	case ',':
		l.readChar()
		return token.COMMA
	case ';':
		l.readChar()
		return token.SEMICOLON
	case '(':
		l.readChar()
		return token.OPEN_PAR
	case ')':
		l.readChar()
		return token.CLOSE_PAR
	case '{':
		l.readChar()
		return token.OPEN_CURLY
	case '}':
		l.readChar()
		return token.CLOSE_CURLY
	case '?':
		l.readChar()
		return token.PARAM_MARKER
	case '\\':
		if l.peekChar() == 'N' {
			l.readChar()
			l.readChar()
			return token.NULL2
		}
		l.readChar()
		return token.INVALID_INPUT
	case '.':
		if isDigit(l.peekChar()) {
			return l.readNumber()
		}
		l.readChar()
		if isIdentStart(l.ch) {
			l.identAfterDot = true
		}
		return token.DOT
	case '@':
		return l.readAt()
	case '\'':
		return l.readQuoted('\'', token.SINGLE_QUOTED_TEXT)
	case '"':
		return l.readQuoted('"', token.DOUBLE_QUOTED_TEXT)
	case '`':
		return l.readQuoted('`', token.BACK_TICK_QUOTED_ID)
	}

	switch {
	case (ch == 'x' || ch == 'X') && l.peekChar() == '\'':
		return l.readPrefixedLiteral(token.HEX_NUMBER, isHexDigit)
	case (ch == 'b' || ch == 'B') && l.peekChar() == '\'':
		return l.readPrefixedLiteral(token.BIN_NUMBER, isBinDigit)
	case (ch == 'n' || ch == 'N') && l.peekChar() == '\'':
		l.readChar()
		if l.readQuoted('\'', token.NCHAR_TEXT) == token.INVALID_INPUT {
			return token.INVALID_INPUT
		}
		return token.NCHAR_TEXT
	case isDigit(ch):
		return l.readNumber()
	case isIdentStart(ch):
		return l.readWord(afterDot)
	}

	l.readChar()
	return token.INVALID_INPUT
}

// skipWhitespaceAndComments skips whitespace, collects comments and enters
// or leaves versioned comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEOF() {
		switch {
		case isSpace(l.ch):
			l.readChar()
		case l.ch == '#':
			l.collectLineComment(token.HashComment)
		case l.ch == '-' && l.peekChar() == '-' && (isSpace(l.peekAt(2)) || l.peekAt(2) == 0):
			l.collectLineComment(token.DashComment)
		case l.ch == '/' && l.peekChar() == '*':
			l.collectBlockComment()
		case l.ch == '*' && l.peekChar() == '/' && l.inVersioned:
			l.inVersioned = false
			l.readChar()
			l.readChar()
		default:
			return
		}
	}
}

func (l *Lexer) collectLineComment(kind token.CommentKind) {
	startPos := l.currentPos()
	startOffset := l.pos

	for l.ch != '\n' && !l.atEOF() {
		l.readChar()
	}

	l.Comments = append(l.Comments, &token.Comment{
		Kind: kind,
		Text: l.input[startOffset:l.pos],
		Span: token.Span{Start: startPos, End: l.currentPos()},
	})
}

// collectBlockComment handles /* */, /*+ */ and /*! */ comments. An active
// versioned comment is not collected: its body is lexed as SQL.
func (l *Lexer) collectBlockComment() {
	startPos := l.currentPos()
	startOffset := l.pos

	kind := token.BlockComment
	switch l.peekAt(2) {
	case '!':
		if !l.inVersioned {
			version, digits := l.versionPrefix()
			if version == 0 || l.cfg.ServerVersion >= version {
				for range 3 + digits {
					l.readChar()
				}
				l.inVersioned = true
				return
			}
		}
		kind = token.VersionedComment
	case '+':
		kind = token.HintComment
	}

	l.readChar() // skip '/'
	l.readChar() // skip '*'
	for !l.atEOF() {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			break
		}
		l.readChar()
	}

	l.Comments = append(l.Comments, &token.Comment{
		Kind: kind,
		Text: l.input[startOffset:l.pos],
		Span: token.Span{Start: startPos, End: l.currentPos()},
	})
}

// versionPrefix reads the version number after "/*!". Five digits are the
// classic form; six-digit versions are accepted for 8.0 and later.
func (l *Lexer) versionPrefix() (version, digits int) {
	offset := l.pos + 3
	for digits < 6 && offset+digits < len(l.input) && isDigit(l.input[offset+digits]) {
		digits++
	}
	if digits < 5 {
		return 0, 0
	}
	if digits == 6 && l.input[offset] == '0' {
		digits = 5
	}
	version, _ = strconv.Atoi(l.input[offset : offset+digits])
	return version, digits
}

// readQuoted reads a quoted string or identifier. Doubled quotes escape the
// quote character; backslash escapes apply to strings unless the
// NO_BACKSLASH_ESCAPES mode is active.
func (l *Lexer) readQuoted(quote byte, typ token.TokenType) token.TokenType {
	backslash := quote != '`' && !l.cfg.SQLMode.Has(NoBackslashEscapes)
	l.readChar() // skip opening quote
	for !l.atEOF() {
		switch {
		case backslash && l.ch == '\\':
			l.readChar()
			if l.atEOF() {
				return token.INVALID_INPUT
			}
			l.readChar()
		case l.ch == quote:
			l.readChar()
			if l.ch != quote {
				return typ
			}
			l.readChar()
		default:
			l.readChar()
		}
	}
	return token.INVALID_INPUT
}

// readPrefixedLiteral reads X'...' and B'...' literals.
func (l *Lexer) readPrefixedLiteral(typ token.TokenType, valid func(byte) bool) token.TokenType {
	l.readChar() // prefix
	l.readChar() // quote
	for !l.atEOF() && l.ch != '\'' {
		if !valid(l.ch) {
			typ = token.INVALID_INPUT
		}
		l.readChar()
	}
	if l.atEOF() {
		return token.INVALID_INPUT
	}
	l.readChar()
	return typ
}

// readNumber reads numeric literals: 0x/0b prefixed values, integers,
// decimals and floats. A digit run followed by identifier characters is an
// identifier, as in 1col.
func (l *Lexer) readNumber() token.TokenType {
	start := l.pos

	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'b') {
		valid, typ := isHexDigit, token.HEX_NUMBER
		if l.peekChar() == 'b' {
			valid, typ = isBinDigit, token.BIN_NUMBER
		}
		n := 2
		for valid(l.peekAt(n)) {
			n++
		}
		if n > 2 && !isIdentChar(l.peekAt(n)) {
			for range n {
				l.readChar()
			}
			return typ
		}
	}

	for isDigit(l.ch) {
		l.readChar()
	}

	typ := token.INT_NUMBER
	if l.ch == '.' {
		typ = token.DECIMAL_NUMBER
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if (l.ch == 'e' || l.ch == 'E') && (isDigit(l.peekChar()) ||
		((l.peekChar() == '+' || l.peekChar() == '-') && isDigit(l.peekAt(2)))) {
		typ = token.FLOAT_NUMBER
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if typ == token.INT_NUMBER {
		if isIdentChar(l.ch) {
			for isIdentChar(l.ch) {
				l.readChar()
			}
			return token.IDENTIFIER
		}
		return integerType(l.input[start:l.pos])
	}
	return typ
}

// integerType classifies an unsigned integer literal by magnitude.
func integerType(digits string) token.TokenType {
	trimmed := strings.TrimLeft(digits, "0")
	if len(trimmed) > 20 {
		return token.DECIMAL_NUMBER
	}
	v, err := strconv.ParseUint(trimmed, 10, 64)
	switch {
	case trimmed == "":
		return token.INT_NUMBER
	case err != nil:
		return token.DECIMAL_NUMBER
	case v <= 2147483647:
		return token.INT_NUMBER
	case v <= 9223372036854775807:
		return token.LONG_NUMBER
	default:
		return token.ULONGLONG_NUMBER
	}
}

// readAt reads @@, @name and a lone @.
func (l *Lexer) readAt() token.TokenType {
	l.readChar()
	if l.ch == '@' {
		l.readChar()
		return token.AT_AT_SIGN
	}
	if isIdentChar(l.ch) {
		for isIdentChar(l.ch) || l.ch == '.' {
			l.readChar()
		}
		return token.AT_TEXT_SUFFIX
	}
	return token.AT_SIGN
}

// readWord reads an unquoted word and classifies it as a keyword, a charset
// introducer or an identifier.
func (l *Lexer) readWord(forceIdent bool) token.TokenType {
	start := l.pos
	for isIdentChar(l.ch) {
		l.readChar()
	}
	word := l.input[start:l.pos]

	if forceIdent {
		return token.IDENTIFIER
	}

	if word[0] == '_' && len(word) > 1 && isCharset(word[1:]) {
		return token.UNDERSCORE_CHARSET
	}

	kw, ok := token.LookupKeyword(word)
	if !ok || !kw.ActiveIn(l.cfg.ServerVersion) {
		return token.IDENTIFIER
	}
	if kw.FunctionOnly && !l.followedByParen() {
		return token.IDENTIFIER
	}
	if kw.Type == token.NOT && l.cfg.SQLMode.Has(HighNotPrecedence) {
		return token.NOT2
	}
	return kw.Type
}

// followedByParen reports whether the next character is "(". Under
// IGNORE_SPACE whitespace may separate a function name from its arguments.
func (l *Lexer) followedByParen() bool {
	offset := l.pos
	if l.cfg.SQLMode.Has(IgnoreSpace) {
		for offset < len(l.input) && isSpace(l.input[offset]) {
			offset++
		}
	}
	return offset < len(l.input) && l.input[offset] == '('
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isBinDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isIdentStart accepts multi-byte UTF-8 sequences as identifier characters.
func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_' || ch == '$' || ch >= 0x80
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
