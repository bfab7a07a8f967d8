package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Literal parsing.
//
// Grammar:
//
//	literal           → textLiteral | numLiteral | temporalLiteral | nullLiteral
//	                  | boolLiteral | [UNDERSCORE_CHARSET] (HEX_NUMBER | BIN_NUMBER)
//	signedLiteral     → literal | ("+" | "-") ulong_number
//	textLiteral       → (textStringLiteral | NCHAR_TEXT | UNDERSCORE_CHARSET textStringLiteral)
//	                    textStringLiteral*
//	textStringLiteral → SINGLE_QUOTED_TEXT | DOUBLE_QUOTED_TEXT (not ANSI_QUOTES)
//	textString        → textStringLiteral | HEX_NUMBER | BIN_NUMBER
//	temporalLiteral   → (DATE | TIME | TIMESTAMP) SINGLE_QUOTED_TEXT

// ---------- Classification ----------

func (p *Parser) isNumLiteralToken(t TokenType) bool {
	switch t {
	case INT_NUMBER, LONG_NUMBER, ULONGLONG_NUMBER, DECIMAL_NUMBER, FLOAT_NUMBER:
		return true
	}
	return false
}

// isLiteralStart reports whether the input starts a literal.
func (p *Parser) isLiteralStart() bool {
	t := p.la(1)
	switch t {
	case NCHAR_TEXT, UNDERSCORE_CHARSET, HEX_NUMBER, BIN_NUMBER, NULL, NULL2, TRUE, FALSE:
		return true
	case DATE, TIME, TIMESTAMP:
		return p.la(2) == SINGLE_QUOTED_TEXT
	}
	return p.isTextStringLiteralToken(t) || p.isNumLiteralToken(t)
}

// ---------- Literals ----------

func (p *Parser) parseLiteral() *ast.Rule {
	t := p.la(1)
	switch {
	case t == UNDERSCORE_CHARSET && (p.la(2) == HEX_NUMBER || p.la(2) == BIN_NUMBER):
		return rule("literal", p.consume(), p.consume())
	case t == HEX_NUMBER || t == BIN_NUMBER:
		return rule("literal", p.consume())
	case t == NCHAR_TEXT || t == UNDERSCORE_CHARSET || p.isTextStringLiteralToken(t):
		return rule("literal", p.parseTextLiteral())
	case p.isNumLiteralToken(t):
		return rule("literal", p.parseNumLiteral())
	case t == DATE || t == TIME || t == TIMESTAMP:
		return rule("literal", p.parseTemporalLiteral())
	case t == NULL || t == NULL2:
		return rule("literal", p.parseNullLiteral())
	case t == TRUE || t == FALSE:
		return rule("literal", p.parseBoolLiteral())
	}
	return p.fail("literal")
}

func (p *Parser) parseSignedLiteral() *ast.Rule {
	if p.isAny(PLUS_OPERATOR, MINUS_OPERATOR) {
		return rule("signedLiteral", p.consume(), p.parseUlongNumber())
	}
	return rule("signedLiteral", p.parseLiteral())
}

func (p *Parser) parseNumLiteral() *ast.Rule {
	if !p.isNumLiteralToken(p.la(1)) {
		return p.fail("numLiteral")
	}
	return rule("numLiteral", p.consume())
}

func (p *Parser) parseBoolLiteral() *ast.Rule {
	return rule("boolLiteral", p.matchAny("boolLiteral", TRUE, FALSE))
}

func (p *Parser) parseNullLiteral() *ast.Rule {
	return rule("nullLiteral", p.matchAny("nullLiteral", NULL, NULL2))
}

func (p *Parser) parseTemporalLiteral() *ast.Rule {
	return rule("temporalLiteral",
		p.matchAny("temporalLiteral", DATE, TIME, TIMESTAMP), p.match(SINGLE_QUOTED_TEXT))
}

// parseTextLiteral parses a string with optional introducer followed by
// adjacent strings, which MySQL concatenates.
func (p *Parser) parseTextLiteral() *ast.Rule {
	n := rule("textLiteral")
	switch {
	case p.is(NCHAR_TEXT):
		n.Add(p.consume())
	case p.is(UNDERSCORE_CHARSET):
		n.Add(p.consume(), p.parseTextStringLiteral())
	default:
		n.Add(p.parseTextStringLiteral())
	}
	for p.isTextStringLiteralStart() {
		n.Add(p.parseTextStringLiteral())
	}
	return n
}

func (p *Parser) parseTextStringLiteral() *ast.Rule {
	if !p.isTextStringLiteralStart() {
		return p.fail("textStringLiteral")
	}
	return rule("textStringLiteral", p.consume())
}

func (p *Parser) parseTextStringLiteralList() *ast.Rule {
	n := rule("textStringLiteralList", p.parseTextStringLiteral())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseTextStringLiteral())
	}
	return n
}

func (p *Parser) parseTextStringNoLinebreak() *ast.Rule {
	return rule("textStringNoLinebreak", p.parseTextStringLiteral())
}

func (p *Parser) parseTextString() *ast.Rule {
	if p.isAny(HEX_NUMBER, BIN_NUMBER) {
		return rule("textString", p.consume())
	}
	return rule("textString", p.parseTextStringLiteral())
}

// parseTextStringHash parses a password hash; 8.0.17 added hex notation.
func (p *Parser) parseTextStringHash() *ast.Rule {
	if p.is(HEX_NUMBER) && p.version >= 80017 {
		return rule("textStringHash", p.consume())
	}
	return rule("textStringHash", p.parseTextStringLiteral())
}

func (p *Parser) parseStringList() *ast.Rule {
	n := rule("stringList", p.match(OPEN_PAR), p.parseTextString())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseTextString())
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

// ---------- Numbers ----------

func (p *Parser) parseUlongNumber() *ast.Rule {
	return rule("ulong_number", p.matchAny("ulong_number",
		INT_NUMBER, HEX_NUMBER, LONG_NUMBER, ULONGLONG_NUMBER, DECIMAL_NUMBER, FLOAT_NUMBER))
}

func (p *Parser) parseRealUlongNumber() *ast.Rule {
	return rule("real_ulong_number", p.matchAny("real_ulong_number",
		INT_NUMBER, HEX_NUMBER, LONG_NUMBER, ULONGLONG_NUMBER))
}

func (p *Parser) parseUlonglongNumber() *ast.Rule {
	return rule("ulonglong_number", p.matchAny("ulonglong_number",
		INT_NUMBER, HEX_NUMBER, ULONGLONG_NUMBER, LONG_NUMBER, DECIMAL_NUMBER, FLOAT_NUMBER))
}

// parseRealUlonglongNumber accepts hex from 8.0.17 on.
func (p *Parser) parseRealUlonglongNumber() *ast.Rule {
	if p.is(HEX_NUMBER) && p.version >= 80017 {
		return rule("real_ulonglong_number", p.consume())
	}
	return rule("real_ulonglong_number", p.matchAny("real_ulonglong_number",
		INT_NUMBER, ULONGLONG_NUMBER, LONG_NUMBER))
}

func (p *Parser) isUlongNumberStart() bool {
	return p.isAny(INT_NUMBER, HEX_NUMBER, LONG_NUMBER, ULONGLONG_NUMBER, DECIMAL_NUMBER, FLOAT_NUMBER)
}

// ---------- Lengths and precision ----------

func (p *Parser) parseFieldLength() *ast.Rule {
	n := rule("fieldLength", p.match(OPEN_PAR))
	if p.is(DECIMAL_NUMBER) {
		n.Add(p.consume())
	} else {
		n.Add(p.parseRealUlonglongNumber())
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parsePrecision() *ast.Rule {
	return rule("precision",
		p.match(OPEN_PAR), p.match(INT_NUMBER), p.match(COMMA), p.match(INT_NUMBER), p.match(CLOSE_PAR))
}

// parseFloatOptions parses (M) or (M,D).
func (p *Parser) parseFloatOptions() *ast.Rule {
	if p.isSeq(OPEN_PAR, INT_NUMBER, COMMA) {
		return rule("floatOptions", p.parsePrecision())
	}
	return rule("floatOptions", p.parseFieldLength())
}

func (p *Parser) parseStandardFloatOptions() *ast.Rule {
	return rule("standardFloatOptions", p.parsePrecision())
}

func (p *Parser) parseTypeDatetimePrecision() *ast.Rule {
	return rule("typeDatetimePrecision", p.match(OPEN_PAR), p.match(INT_NUMBER), p.match(CLOSE_PAR))
}
