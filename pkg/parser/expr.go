package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Expression parsing.
//
// Precedence from loosest to tightest: OR/||, XOR, AND/&&, NOT, IS, then
// boolPri (comparisons), predicate (IN, BETWEEN, LIKE, REGEXP) and bitExpr.
// bitExpr is right-recursive and does not rank its operators, so a + b * c
// is built as a + (b * c) and a - b - c as a - (b - c).
//
// Grammar:
//
//	expr       → expr (OR | "||") expr | expr XOR expr | expr (AND | "&&") expr
//	           | NOT expr | boolPri [IS [notRule] (TRUE | FALSE | UNKNOWN)]
//	boolPri    → predicate | boolPri IS [notRule] NULL
//	           | boolPri compOp predicate | boolPri compOp (ALL | ANY) subquery
//	predicate  → bitExpr [[notRule] predicateOperations
//	                     | MEMBER [OF] simpleExprWithParentheses | SOUNDS LIKE bitExpr]
//	predicateOperations → IN (subquery | "(" exprList ")")
//	           | BETWEEN bitExpr AND predicate
//	           | LIKE simpleExpr [ESCAPE simpleExpr] | REGEXP bitExpr
//	bitExpr    → simpleExpr [bitOp bitExpr | ("+" | "-") INTERVAL expr interval [bitOp bitExpr]]
//	simpleExpr → simpleExpr COLLATE textOrIdentifier | simpleExpr "||" simpleExpr
//	           | variable [":=" expr] | columnRef [jsonOperator]
//	           | runtimeFunctionCall | functionCall | literal | "?" | sumExpr
//	           | groupingOperation | windowFunctionCall
//	           | ("+" | "-" | "~") simpleExpr | not2Rule simpleExpr
//	           | [ROW] "(" exprList ")" | [EXISTS] subquery | "{" identifier expr "}"
//	           | MATCH identListArg AGAINST "(" bitExpr [fulltextOptions] ")"
//	           | BINARY simpleExpr | CAST "(" expr AS castType [ARRAY] ")"
//	           | CASE [expr] (whenExpression thenExpression)+ [elseExpression] END
//	           | CONVERT "(" expr ("," castType | USING charsetName) ")"
//	           | DEFAULT "(" simpleIdentifier ")" | VALUES "(" simpleIdentifier ")"
//	           | INTERVAL expr interval "+" expr

// ---------- Boolean level ----------

func (p *Parser) parseExpr() *ast.Rule {
	p.enter("expr")
	defer p.leave()
	return p.parseExprOr()
}

func (p *Parser) parseExprOr() *ast.Rule {
	left := p.parseExprXor()
	for p.isAny(OR, LOGICAL_OR_OPERATOR) {
		left = rule("expr", left, p.consume(), p.parseExprXor())
	}
	return left
}

func (p *Parser) parseExprXor() *ast.Rule {
	left := p.parseExprAnd()
	for p.is(XOR) {
		left = rule("expr", left, p.consume(), p.parseExprAnd())
	}
	return left
}

func (p *Parser) parseExprAnd() *ast.Rule {
	left := p.parseExprNot()
	for p.isAny(AND, LOGICAL_AND_OPERATOR) {
		left = rule("expr", left, p.consume(), p.parseExprNot())
	}
	return left
}

func (p *Parser) parseExprNot() *ast.Rule {
	if p.is(NOT) {
		return rule("expr", p.consume(), p.parseExprNot())
	}
	return p.parseExprIs()
}

func (p *Parser) parseExprIs() *ast.Rule {
	n := rule("expr", p.parseBoolPri())
	if p.is(IS) {
		switch {
		case p.isAnyAt(2, TRUE, FALSE, UNKNOWN):
			n.Add(p.consume(), p.consume())
		case p.isNotRuleAt(2) && p.isAnyAt(3, TRUE, FALSE, UNKNOWN):
			n.Add(p.consume(), p.parseNotRule(), p.consume())
		}
	}
	return n
}

// isAnyAt reports whether the token at offset n has one of the given types.
func (p *Parser) isAnyAt(n int, types ...TokenType) bool {
	t := p.la(n)
	for _, want := range types {
		if t == want {
			return true
		}
	}
	return false
}

func (p *Parser) isNotRuleAt(n int) bool {
	t := p.la(n)
	return t == NOT || t == NOT2
}

func (p *Parser) parseNotRule() *ast.Rule {
	return rule("notRule", p.matchAny("notRule", NOT, NOT2))
}

func (p *Parser) parseNot2Rule() *ast.Rule {
	return rule("not2Rule", p.matchAny("not2Rule", LOGICAL_NOT_OPERATOR, NOT2))
}

// ---------- Comparison level ----------

func (p *Parser) isCompOp(t TokenType) bool {
	switch t {
	case EQUAL_OPERATOR, NULL_SAFE_EQUAL_OPERATOR, GREATER_OR_EQUAL_OPERATOR, GREATER_THAN_OPERATOR,
		LESS_OR_EQUAL_OPERATOR, LESS_THAN_OPERATOR, NOT_EQUAL_OPERATOR:
		return true
	}
	return false
}

func (p *Parser) parseBoolPri() *ast.Rule {
	n := rule("boolPri", p.parsePredicate())
	for {
		switch {
		case p.is(IS) && p.la(2) == NULL:
			n = rule("boolPri", n, p.consume(), p.consume())
		case p.is(IS) && p.isNotRuleAt(2) && p.la(3) == NULL:
			n = rule("boolPri", n, p.consume(), p.parseNotRule(), p.consume())
		case p.isCompOp(p.la(1)):
			op := rule("compOp", p.consume())
			if p.isAny(ALL, ANY) && p.la(2) == OPEN_PAR {
				n = rule("boolPri", n, op, p.consume(), p.parseSubquery())
			} else {
				n = rule("boolPri", n, op, p.parsePredicate())
			}
		default:
			return n
		}
	}
}

// ---------- Predicate level ----------

func (p *Parser) isPredicateOperation(t TokenType) bool {
	switch t {
	case IN, BETWEEN, LIKE, REGEXP:
		return true
	}
	return false
}

func (p *Parser) parsePredicate() *ast.Rule {
	n := rule("predicate", p.parseBitExpr())
	switch {
	case p.isPredicateOperation(p.la(1)):
		n.Add(p.parsePredicateOperations())
	case p.isNotRuleAt(1) && p.isPredicateOperation(p.la(2)):
		n.Add(p.parseNotRule(), p.parsePredicateOperations())
	case p.is(MEMBER) && p.version >= 80017:
		n.Add(p.consume(), p.accept(OF), p.parseSimpleExprWithParentheses())
	case p.isSeq(SOUNDS, LIKE):
		n.Add(p.consume(), p.consume(), p.parseBitExpr())
	}
	return n
}

func (p *Parser) parsePredicateOperations() *ast.Rule {
	n := rule("predicateOperations")
	switch p.la(1) {
	case IN:
		n.Add(p.consume())
		if p.isSubqueryStart() {
			n.Add(p.parseSubquery())
		} else {
			n.Add(p.match(OPEN_PAR), p.parseExprList(), p.match(CLOSE_PAR))
		}
	case BETWEEN:
		n.Add(p.consume(), p.parseBitExpr(), p.match(AND), p.parsePredicate())
	case LIKE:
		n.Add(p.consume(), p.parseSimpleExpr())
		if p.is(ESCAPE) {
			n.Add(p.consume(), p.parseSimpleExpr())
		}
	case REGEXP:
		n.Add(p.consume(), p.parseBitExpr())
	default:
		return p.fail("predicateOperations")
	}
	return n
}

// ---------- Arithmetic and bit level ----------

func (p *Parser) isBitOperator(t TokenType) bool {
	switch t {
	case BITWISE_XOR_OPERATOR, MULT_OPERATOR, DIV_OPERATOR, MOD_OPERATOR, DIV, MOD,
		PLUS_OPERATOR, MINUS_OPERATOR, SHIFT_LEFT_OPERATOR, SHIFT_RIGHT_OPERATOR,
		BITWISE_AND_OPERATOR, BITWISE_OR_OPERATOR:
		return true
	}
	return false
}

func (p *Parser) parseBitExpr() *ast.Rule {
	n := rule("bitExpr", p.parseSimpleExpr())
	if !p.isBitOperator(p.la(1)) {
		return n
	}
	op := p.consume()
	if (op.Type == PLUS_OPERATOR || op.Type == MINUS_OPERATOR) && p.is(INTERVAL) {
		n.Add(op, p.consume(), p.parseExpr(), p.parseInterval())
		if p.isBitOperator(p.la(1)) {
			n.Add(p.consume(), p.parseBitExpr())
		}
		return n
	}
	n.Add(op, p.parseBitExpr())
	return n
}

// ---------- Simple expressions ----------

func (p *Parser) parseSimpleExpr() *ast.Rule {
	p.enter("simpleExpr")
	defer p.leave()

	n := p.parseSimpleExprPrimary()
	for {
		switch {
		case p.is(COLLATE):
			n = rule("simpleExpr", n, p.consume(), p.parseTextOrIdentifier())
		case p.is(CONCAT_PIPES):
			n = rule("simpleExpr", n, p.consume(), p.parseSimpleExprPrimary())
		default:
			return n
		}
	}
}

// parseSimpleExprPrimary parses every simpleExpr alternative that does not
// start with another simpleExpr.
func (p *Parser) parseSimpleExprPrimary() *ast.Rule {
	t := p.la(1)
	n := rule("simpleExpr")
	switch {
	case t == AT_SIGN || t == AT_TEXT_SUFFIX || t == AT_AT_SIGN:
		n.Add(p.parseVariable())
		if p.is(ASSIGN_OPERATOR) {
			n.Add(p.parseEqual(), p.parseExpr())
		}

	case t == PLUS_OPERATOR || t == MINUS_OPERATOR || t == BITWISE_NOT_OPERATOR:
		n.Add(p.consume(), p.parseSimpleExpr())

	case t == LOGICAL_NOT_OPERATOR || t == NOT2:
		n.Add(p.parseNot2Rule(), p.parseSimpleExpr())

	case t == PARAM_MARKER:
		n.Add(p.consume())

	case t == OPEN_PAR:
		if p.isSubqueryStart() {
			n.Add(p.parseSubquery())
		} else {
			n.Add(p.consume(), p.parseExprList(), p.match(CLOSE_PAR))
		}

	case t == ROW && p.la(2) == OPEN_PAR:
		n.Add(p.consume(), p.consume(), p.parseExprList(), p.match(CLOSE_PAR))

	case t == EXISTS:
		n.Add(p.consume(), p.parseSubquery())

	case t == OPEN_CURLY:
		n.Add(p.consume(), p.parseIdentifier(), p.parseExpr(), p.match(CLOSE_CURLY))

	case t == MATCH:
		n.Add(p.consume(), p.parseIdentListArg(), p.match(AGAINST),
			p.match(OPEN_PAR), p.parseBitExpr(), p.parseFulltextOptionsOpt(), p.match(CLOSE_PAR))

	case t == BINARY:
		n.Add(p.consume(), p.parseSimpleExpr())

	case t == CAST:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExpr(), p.match(AS), p.parseCastType())
		if p.is(ARRAY) && p.version >= 80017 {
			n.Add(rule("arrayCast", p.consume()))
		}
		n.Add(p.match(CLOSE_PAR))

	case t == CASE:
		n.Add(p.consume())
		if !p.is(WHEN) {
			n.Add(p.parseExpr())
		}
		for {
			n.Add(p.parseWhenExpression(), p.parseThenExpression())
			if !p.is(WHEN) {
				break
			}
		}
		if p.is(ELSE) {
			n.Add(p.parseElseExpression())
		}
		n.Add(p.match(END))

	case t == CONVERT:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExpr())
		if p.is(USING) {
			n.Add(p.consume(), p.parseCharsetName())
		} else {
			n.Add(p.match(COMMA), p.parseCastType())
		}
		n.Add(p.match(CLOSE_PAR))

	case t == DEFAULT && p.la(2) == OPEN_PAR:
		n.Add(p.consume(), p.consume(), p.parseSimpleIdentifier(), p.match(CLOSE_PAR))

	case t == INTERVAL && p.la(2) != OPEN_PAR:
		n.Add(p.consume(), p.parseExpr(), p.parseInterval(), p.match(PLUS_OPERATOR), p.parseExpr())

	case p.isLiteralStart():
		n.Add(p.parseLiteral())

	case p.isSumExprStart():
		n.Add(p.parseSumExpr())

	case t == GROUPING && p.la(2) == OPEN_PAR && p.version >= 80000:
		n.Add(p.parseGroupingOperation())

	case p.isWindowFunctionStart():
		n.Add(p.parseWindowFunctionCall())

	case p.isRuntimeFunctionStart():
		n.Add(p.parseRuntimeFunctionCall())

	case p.isFunctionCallStart():
		n.Add(p.parseFunctionCall())

	case p.isIdentifierToken(t) || t == DOT:
		n.Add(p.parseColumnRef())
		if p.isAny(JSON_SEPARATOR, JSON_UNQUOTED_SEPARATOR) {
			n.Add(p.parseJsonOperator())
		}

	default:
		return p.fail("simpleExpr")
	}
	return n
}

func (p *Parser) parseJsonOperator() *ast.Rule {
	return rule("jsonOperator",
		p.matchAny("jsonOperator", JSON_SEPARATOR, JSON_UNQUOTED_SEPARATOR), p.parseTextStringLiteral())
}

func (p *Parser) parseWhenExpression() *ast.Rule {
	return rule("whenExpression", p.match(WHEN), p.parseExpr())
}

func (p *Parser) parseThenExpression() *ast.Rule {
	return rule("thenExpression", p.match(THEN), p.parseExpr())
}

func (p *Parser) parseElseExpression() *ast.Rule {
	return rule("elseExpression", p.match(ELSE), p.parseExpr())
}

func (p *Parser) parseIdentListArg() *ast.Rule {
	if p.is(OPEN_PAR) {
		return rule("identListArg", p.consume(), p.parseIdentList(), p.match(CLOSE_PAR))
	}
	return rule("identListArg", p.parseIdentList())
}

func (p *Parser) parseIdentList() *ast.Rule {
	n := rule("identList", p.parseSimpleIdentifier())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseSimpleIdentifier())
	}
	return n
}

func (p *Parser) parseFulltextOptionsOpt() *ast.Rule {
	switch {
	case p.isSeq(IN, BOOLEAN, MODE):
		return rule("fulltextOptions", p.consume(), p.consume(), p.consume())
	case p.isSeq(IN, NATURAL, LANGUAGE, MODE):
		n := rule("fulltextOptions", p.consume(), p.consume(), p.consume(), p.consume())
		if p.isSeq(WITH, QUERY, EXPANSION) {
			n.Add(p.consume(), p.consume(), p.consume())
		}
		return n
	case p.isSeq(WITH, QUERY, EXPANSION):
		return rule("fulltextOptions", p.consume(), p.consume(), p.consume())
	}
	return nil
}

// ---------- Variables ----------

func (p *Parser) parseVariable() *ast.Rule {
	if p.is(AT_AT_SIGN) {
		return rule("variable", p.parseSystemVariable())
	}
	return rule("variable", p.parseUserVariable())
}

func (p *Parser) parseSystemVariable() *ast.Rule {
	n := rule("systemVariable", p.match(AT_AT_SIGN))
	if p.isAny(GLOBAL, LOCAL, SESSION) && p.la(2) == DOT {
		n.Add(p.parseVarIdentType())
	}
	n.Add(p.parseTextOrIdentifier())
	if p.is(DOT) {
		n.Add(p.parseDotIdentifier())
	}
	return n
}

// parseInternalVariableName parses the target of SET name = value. From
// 8.0.17 the unqualified name is an lValueIdentifier.
func (p *Parser) parseInternalVariableName() *ast.Rule {
	n := rule("internalVariableName")
	switch {
	case p.is(DEFAULT) && p.la(2) == DOT:
		n.Add(p.consume(), p.parseDotIdentifier())
		return n
	case p.version < 80017:
		n.Add(p.parseIdentifier())
	default:
		n.Add(p.parseLValueIdentifier())
	}
	if p.is(DOT) {
		n.Add(p.parseDotIdentifier())
	}
	return n
}

// ---------- Lists and wrappers ----------

func (p *Parser) parseExprList() *ast.Rule {
	n := rule("exprList", p.parseExpr())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseExpr())
	}
	return n
}

func (p *Parser) parseExprWithParentheses() *ast.Rule {
	return rule("exprWithParentheses", p.match(OPEN_PAR), p.parseExpr(), p.match(CLOSE_PAR))
}

func (p *Parser) parseExprListWithParentheses() *ast.Rule {
	return rule("exprListWithParentheses", p.match(OPEN_PAR), p.parseExprList(), p.match(CLOSE_PAR))
}

func (p *Parser) parseSimpleExprWithParentheses() *ast.Rule {
	return rule("simpleExprWithParentheses", p.match(OPEN_PAR), p.parseSimpleExpr(), p.match(CLOSE_PAR))
}

func (p *Parser) parseOrderList() *ast.Rule {
	n := rule("orderList", p.parseOrderExpression())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseOrderExpression())
	}
	return n
}

func (p *Parser) parseOrderExpression() *ast.Rule {
	n := rule("orderExpression", p.parseExpr())
	if p.isAny(ASC, DESC) {
		n.Add(p.parseDirection())
	}
	return n
}

func (p *Parser) parseDirection() *ast.Rule {
	return rule("direction", p.matchAny("direction", ASC, DESC))
}

// ---------- Intervals ----------

func (p *Parser) isIntervalTimeStamp(t TokenType) bool {
	switch t {
	case MICROSECOND, SECOND, MINUTE, HOUR, DAY, WEEK, MONTH, QUARTER, YEAR:
		return true
	}
	return false
}

func (p *Parser) parseInterval() *ast.Rule {
	switch t := p.la(1); {
	case p.isIntervalTimeStamp(t):
		return rule("interval", p.parseIntervalTimeStamp())
	case t == SECOND_MICROSECOND, t == MINUTE_MICROSECOND, t == MINUTE_SECOND, t == HOUR_MICROSECOND,
		t == HOUR_SECOND, t == HOUR_MINUTE, t == DAY_MICROSECOND, t == DAY_SECOND, t == DAY_MINUTE,
		t == DAY_HOUR, t == YEAR_MONTH:
		return rule("interval", p.consume())
	}
	return p.fail("interval")
}

func (p *Parser) parseIntervalTimeStamp() *ast.Rule {
	if !p.isIntervalTimeStamp(p.la(1)) {
		return p.fail("intervalTimeStamp")
	}
	return rule("intervalTimeStamp", p.consume())
}
