package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Function call parsing: aggregates, window functions, built-ins with
// irregular argument syntax and generic user-defined calls.
//
// Grammar:
//
//	sumExpr            → AVG "(" [DISTINCT] inSumExpr ")" [windowingClause]
//	                   | (BIT_AND | BIT_OR | BIT_XOR) "(" inSumExpr ")" [windowingClause]
//	                   | jsonFunction
//	                   | COUNT "(" ([ALL] "*" | inSumExpr | DISTINCT exprList) ")" [windowingClause]
//	                   | (MIN | MAX) "(" [DISTINCT] inSumExpr ")" [windowingClause]
//	                   | (STD | VARIANCE | STDDEV_SAMP | VAR_SAMP | SUM) "(" inSumExpr ")" [windowingClause]
//	                   | SUM "(" DISTINCT inSumExpr ")" [windowingClause]
//	                   | GROUP_CONCAT "(" [DISTINCT] exprList [orderClause] [SEPARATOR textString] ")"
//	                     [windowingClause]
//	windowFunctionCall → (ROW_NUMBER | RANK | DENSE_RANK | CUME_DIST | PERCENT_RANK) "(" ")" windowingClause
//	                   | NTILE simpleExprWithParentheses windowingClause
//	                   | (LEAD | LAG) "(" expr [leadLagInfo] ")" [nullTreatment] windowingClause
//	                   | (FIRST_VALUE | LAST_VALUE) exprWithParentheses [nullTreatment] windowingClause
//	                   | NTH_VALUE "(" expr "," simpleExpr ")" [FROM (FIRST | LAST)] [nullTreatment]
//	                     windowingClause
//	windowingClause    → OVER (windowName | windowSpec)
//	windowSpec         → "(" [windowName] [PARTITION BY orderList] [orderClause] [windowFrameClause] ")"
//	functionCall       → pureIdentifier "(" [udfExprList] ")" | qualifiedIdentifier "(" [exprList] ")"

// ---------- Aggregates ----------

func (p *Parser) isSumExprStart() bool {
	if p.la(2) != OPEN_PAR {
		return false
	}
	switch p.la(1) {
	case AVG, BIT_AND, BIT_OR, BIT_XOR, COUNT, MIN, MAX, STD, VARIANCE, STDDEV_SAMP, VAR_SAMP, SUM, GROUP_CONCAT:
		return true
	case JSON_ARRAYAGG, JSON_OBJECTAGG:
		return p.version >= 80000
	}
	return false
}

func (p *Parser) parseSumExpr() *ast.Rule {
	n := rule("sumExpr")
	switch p.la(1) {
	case AVG, MIN, MAX:
		n.Add(p.consume(), p.match(OPEN_PAR), p.accept(DISTINCT), p.parseInSumExpr(), p.match(CLOSE_PAR))

	case BIT_AND, BIT_OR, BIT_XOR, STD, VARIANCE, STDDEV_SAMP, VAR_SAMP:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseInSumExpr(), p.match(CLOSE_PAR))

	case SUM:
		n.Add(p.consume(), p.match(OPEN_PAR), p.accept(DISTINCT), p.parseInSumExpr(), p.match(CLOSE_PAR))

	case COUNT:
		n.Add(p.consume(), p.match(OPEN_PAR))
		switch {
		case p.is(MULT_OPERATOR):
			n.Add(p.consume())
		case p.isSeq(ALL, MULT_OPERATOR):
			n.Add(p.consume(), p.consume())
		case p.is(DISTINCT):
			n.Add(p.consume(), p.parseExprList())
		default:
			n.Add(p.parseInSumExpr())
		}
		n.Add(p.match(CLOSE_PAR))

	case GROUP_CONCAT:
		n.Add(p.consume(), p.match(OPEN_PAR), p.accept(DISTINCT), p.parseExprList())
		if p.is(ORDER) {
			n.Add(p.parseOrderClause())
		}
		if p.is(SEPARATOR) {
			n.Add(p.consume(), p.parseTextString())
		}
		n.Add(p.match(CLOSE_PAR))

	case JSON_ARRAYAGG, JSON_OBJECTAGG:
		n.Add(p.parseJsonFunction())
		return n

	default:
		return p.fail("sumExpr")
	}
	if p.is(OVER) {
		n.Add(p.parseWindowingClause())
	}
	return n
}

func (p *Parser) parseJsonFunction() *ast.Rule {
	n := rule("jsonFunction")
	if p.is(JSON_OBJECTAGG) {
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseInSumExpr(), p.match(COMMA), p.parseInSumExpr(), p.match(CLOSE_PAR))
	} else {
		n.Add(p.match(JSON_ARRAYAGG), p.match(OPEN_PAR), p.parseInSumExpr(), p.match(CLOSE_PAR))
	}
	if p.is(OVER) {
		n.Add(p.parseWindowingClause())
	}
	return n
}

func (p *Parser) parseInSumExpr() *ast.Rule {
	return rule("inSumExpr", p.accept(ALL), p.parseExpr())
}

func (p *Parser) parseGroupingOperation() *ast.Rule {
	return rule("groupingOperation", p.match(GROUPING), p.match(OPEN_PAR), p.parseExprList(), p.match(CLOSE_PAR))
}

// ---------- Window functions ----------

func (p *Parser) isWindowFunctionStart() bool {
	if p.version < 80000 || p.la(2) != OPEN_PAR {
		return false
	}
	switch p.la(1) {
	case ROW_NUMBER, RANK, DENSE_RANK, CUME_DIST, PERCENT_RANK, NTILE, LEAD, LAG,
		FIRST_VALUE, LAST_VALUE, NTH_VALUE:
		return true
	}
	return false
}

func (p *Parser) parseWindowFunctionCall() *ast.Rule {
	n := rule("windowFunctionCall")
	switch p.la(1) {
	case ROW_NUMBER, RANK, DENSE_RANK, CUME_DIST, PERCENT_RANK:
		n.Add(p.consume(), p.parseParentheses())

	case NTILE:
		n.Add(p.consume(), p.parseSimpleExprWithParentheses())

	case LEAD, LAG:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExpr())
		if p.is(COMMA) {
			n.Add(p.parseLeadLagInfo())
		}
		n.Add(p.match(CLOSE_PAR), p.parseNullTreatmentOpt())

	case FIRST_VALUE, LAST_VALUE:
		n.Add(p.consume(), p.parseExprWithParentheses(), p.parseNullTreatmentOpt())

	case NTH_VALUE:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExpr(), p.match(COMMA), p.parseSimpleExpr(), p.match(CLOSE_PAR))
		if p.is(FROM) {
			n.Add(p.consume(), p.matchAny("windowFunctionCall", FIRST, LAST))
		}
		n.Add(p.parseNullTreatmentOpt())

	default:
		return p.fail("windowFunctionCall")
	}
	n.Add(p.parseWindowingClause())
	return n
}

func (p *Parser) parseLeadLagInfo() *ast.Rule {
	n := rule("leadLagInfo", p.match(COMMA))
	if p.is(PARAM_MARKER) {
		n.Add(p.consume())
	} else {
		n.Add(p.parseUlonglongNumber())
	}
	if p.is(COMMA) {
		n.Add(p.consume(), p.parseExpr())
	}
	return n
}

func (p *Parser) parseNullTreatmentOpt() *ast.Rule {
	if p.isAny(RESPECT, IGNORE) && p.la(2) == NULLS {
		return rule("nullTreatment", p.consume(), p.consume())
	}
	return nil
}

func (p *Parser) parseWindowingClause() *ast.Rule {
	n := rule("windowingClause", p.match(OVER))
	if p.is(OPEN_PAR) {
		n.Add(p.parseWindowSpec())
	} else {
		n.Add(p.parseWindowName())
	}
	return n
}

func (p *Parser) parseWindowSpec() *ast.Rule {
	return rule("windowSpec", p.match(OPEN_PAR), p.parseWindowSpecDetails(), p.match(CLOSE_PAR))
}

func (p *Parser) parseWindowSpecDetails() *ast.Rule {
	n := rule("windowSpecDetails")
	if p.isIdentifierStart() && !p.isSeq(PARTITION, BY) && !p.isAny(ORDER, ROWS, RANGE, GROUPS) {
		n.Add(p.parseWindowName())
	}
	if p.isSeq(PARTITION, BY) {
		n.Add(p.consume(), p.consume(), p.parseOrderList())
	}
	if p.is(ORDER) {
		n.Add(p.parseOrderClause())
	}
	if p.isAny(ROWS, RANGE, GROUPS) {
		n.Add(p.parseWindowFrameClause())
	}
	return n
}

func (p *Parser) parseWindowFrameClause() *ast.Rule {
	n := rule("windowFrameClause",
		rule("windowFrameUnits", p.matchAny("windowFrameUnits", ROWS, RANGE, GROUPS)),
		p.parseWindowFrameExtent())
	if p.is(EXCLUDE) {
		n.Add(p.parseWindowFrameExclusion())
	}
	return n
}

func (p *Parser) parseWindowFrameExtent() *ast.Rule {
	if p.is(BETWEEN) {
		return rule("windowFrameExtent", rule("windowFrameBetween",
			p.consume(), p.parseWindowFrameBound(), p.match(AND), p.parseWindowFrameBound()))
	}
	return rule("windowFrameExtent", p.parseWindowFrameStart())
}

func (p *Parser) parseWindowFrameStart() *ast.Rule {
	n := rule("windowFrameStart")
	switch {
	case p.is(UNBOUNDED):
		n.Add(p.consume(), p.match(PRECEDING))
	case p.is(PARAM_MARKER):
		n.Add(p.consume(), p.match(PRECEDING))
	case p.is(INTERVAL):
		n.Add(p.consume(), p.parseExpr(), p.parseInterval(), p.match(PRECEDING))
	case p.isSeq(CURRENT, ROW):
		n.Add(p.consume(), p.consume())
	default:
		n.Add(p.parseUlonglongNumber(), p.match(PRECEDING))
	}
	return n
}

// parseWindowFrameBound parses a frame start or a FOLLOWING bound. The
// bound kind is decided by the token after the offset.
func (p *Parser) parseWindowFrameBound() *ast.Rule {
	if p.isSeq(CURRENT, ROW) {
		return rule("windowFrameBound", p.parseWindowFrameStart())
	}
	n := rule("windowFrameBound")
	switch {
	case p.is(UNBOUNDED), p.is(PARAM_MARKER):
		if p.la(2) == PRECEDING {
			return rule("windowFrameBound", p.parseWindowFrameStart())
		}
		n.Add(p.consume(), p.match(FOLLOWING))
	case p.is(INTERVAL):
		// The offset expression is unbounded in length; PRECEDING or
		// FOLLOWING is only known after it.
		iv := []ast.Node{p.consume(), p.parseExpr(), p.parseInterval()}
		if p.is(PRECEDING) {
			start := rule("windowFrameStart", iv...)
			start.Add(p.consume())
			return rule("windowFrameBound", start)
		}
		n.Add(iv...)
		n.Add(p.match(FOLLOWING))
	default:
		if p.la(2) == PRECEDING {
			return rule("windowFrameBound", p.parseWindowFrameStart())
		}
		n.Add(p.parseUlonglongNumber(), p.match(FOLLOWING))
	}
	return n
}

func (p *Parser) parseWindowFrameExclusion() *ast.Rule {
	n := rule("windowFrameExclusion", p.match(EXCLUDE))
	switch {
	case p.isSeq(CURRENT, ROW):
		n.Add(p.consume(), p.consume())
	case p.isAny(GROUP, TIES):
		n.Add(p.consume())
	case p.isSeq(NO, OTHERS):
		n.Add(p.consume(), p.consume())
	default:
		return p.fail("windowFrameExclusion")
	}
	return n
}

// ---------- Built-in functions ----------

// isRuntimeFunctionStart reports whether the input starts a built-in
// function whose name is a keyword.
func (p *Parser) isRuntimeFunctionStart() bool {
	paren := p.la(2) == OPEN_PAR
	switch p.la(1) {
	case CURRENT_USER, CURDATE, CURTIME, NOW, SYSDATE, UTC_DATE, UTC_TIME, UTC_TIMESTAMP:
		return true
	case CHAR, DATE, DAY, HOUR, INSERT, INTERVAL, LEFT, MINUTE, MONTH, RIGHT, SECOND, TIME,
		TIMESTAMP, TRIM, USER, VALUES, YEAR,
		ADDDATE, SUBDATE, DATE_ADD, DATE_SUB, EXTRACT, GET_FORMAT, POSITION, SUBSTRING,
		TIMESTAMP_ADD, TIMESTAMP_DIFF,
		ASCII, CHARSET, COALESCE, COLLATION, DATABASE, IF, FORMAT, MICROSECOND, MOD, QUARTER,
		REPEAT, REPLACE, REVERSE, ROW_COUNT, TRUNCATE, WEEK, WEIGHT_STRING,
		GEOMETRYCOLLECTION, LINESTRING, MULTILINESTRING, MULTIPOINT, MULTIPOLYGON, POINT, POLYGON:
		return paren
	case OLD_PASSWORD:
		return paren && p.version < 50607
	case PASSWORD:
		return paren && p.version < 80011
	case CONTAINS:
		return paren && p.version < 50706
	}
	return false
}

func (p *Parser) parseRuntimeFunctionCall() *ast.Rule {
	n := rule("runtimeFunctionCall")
	switch t := p.la(1); t {
	case CHAR:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExprList())
		if p.is(USING) {
			n.Add(p.consume(), p.parseCharsetName())
		}
		n.Add(p.match(CLOSE_PAR))

	case CURRENT_USER, CURDATE, UTC_DATE:
		n.Add(p.consume())
		if p.isSeq(OPEN_PAR, CLOSE_PAR) {
			n.Add(p.parseParentheses())
		}

	case CURTIME, NOW, SYSDATE, UTC_TIME, UTC_TIMESTAMP:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseTimeFunctionParameters())
		}

	case DATE, DAY, HOUR, MINUTE, MONTH, SECOND, TIME, VALUES, YEAR,
		ASCII, CHARSET, COLLATION, MICROSECOND, QUARTER, REVERSE, PASSWORD:
		n.Add(p.consume(), p.parseExprWithParentheses())

	case INSERT:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExpr(), p.match(COMMA), p.parseExpr(),
			p.match(COMMA), p.parseExpr(), p.match(COMMA), p.parseExpr(), p.match(CLOSE_PAR))

	case INTERVAL:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExpr())
		n.Add(p.match(COMMA), p.parseExpr())
		for p.is(COMMA) {
			n.Add(p.consume(), p.parseExpr())
		}
		n.Add(p.match(CLOSE_PAR))

	case LEFT, RIGHT, MOD, REPEAT, TRUNCATE, CONTAINS, POINT:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExpr(), p.match(COMMA), p.parseExpr(), p.match(CLOSE_PAR))

	case TIMESTAMP, WEEK:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExpr())
		if p.is(COMMA) {
			n.Add(p.consume(), p.parseExpr())
		}
		n.Add(p.match(CLOSE_PAR))

	case TRIM:
		n.Add(p.parseTrimFunction())

	case USER, DATABASE, ROW_COUNT:
		n.Add(p.consume(), p.parseParentheses())

	case ADDDATE, SUBDATE:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExpr(), p.match(COMMA))
		if p.is(INTERVAL) {
			n.Add(p.consume(), p.parseExpr(), p.parseInterval())
		} else {
			n.Add(p.parseExpr())
		}
		n.Add(p.match(CLOSE_PAR))

	case DATE_ADD, DATE_SUB:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExpr(), p.match(COMMA),
			p.match(INTERVAL), p.parseExpr(), p.parseInterval(), p.match(CLOSE_PAR))

	case EXTRACT:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseInterval(), p.match(FROM), p.parseExpr(), p.match(CLOSE_PAR))

	case GET_FORMAT:
		n.Add(p.consume(), p.match(OPEN_PAR),
			rule("dateTimeTtype", p.matchAny("dateTimeTtype", DATE, TIME, DATETIME, TIMESTAMP)),
			p.match(COMMA), p.parseExpr(), p.match(CLOSE_PAR))

	case POSITION:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseBitExpr(), p.match(IN), p.parseExpr(), p.match(CLOSE_PAR))

	case SUBSTRING:
		n.Add(p.parseSubstringFunction())

	case TIMESTAMP_ADD, TIMESTAMP_DIFF:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseIntervalTimeStamp(), p.match(COMMA),
			p.parseExpr(), p.match(COMMA), p.parseExpr(), p.match(CLOSE_PAR))

	case COALESCE, LINESTRING, MULTILINESTRING, MULTIPOINT, MULTIPOLYGON, POLYGON:
		n.Add(p.consume(), p.parseExprListWithParentheses())

	case GEOMETRYCOLLECTION:
		n.Add(p.consume(), p.match(OPEN_PAR))
		if !p.is(CLOSE_PAR) {
			n.Add(p.parseExprList())
		}
		n.Add(p.match(CLOSE_PAR))

	case IF, REPLACE:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExpr(), p.match(COMMA), p.parseExpr(),
			p.match(COMMA), p.parseExpr(), p.match(CLOSE_PAR))

	case FORMAT:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseExpr(), p.match(COMMA), p.parseExpr())
		if p.is(COMMA) {
			n.Add(p.consume(), p.parseExpr())
		}
		n.Add(p.match(CLOSE_PAR))

	case OLD_PASSWORD:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseTextLiteral(), p.match(CLOSE_PAR))

	case WEIGHT_STRING:
		n.Add(p.parseWeightString())

	default:
		return p.fail("runtimeFunctionCall")
	}
	return n
}

func (p *Parser) parseTimeFunctionParameters() *ast.Rule {
	n := rule("timeFunctionParameters", p.match(OPEN_PAR))
	if p.is(INT_NUMBER) && p.version >= 50604 {
		n.Add(rule("fractionalPrecision", p.consume()))
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parseTrimFunction() *ast.Rule {
	n := rule("trimFunction", p.match(TRIM), p.match(OPEN_PAR))
	if p.isAny(LEADING, TRAILING, BOTH) {
		n.Add(p.consume())
		if !p.is(FROM) {
			n.Add(p.parseExpr())
		}
		n.Add(p.match(FROM), p.parseExpr())
	} else {
		n.Add(p.parseExpr())
		if p.is(FROM) {
			n.Add(p.consume(), p.parseExpr())
		}
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parseSubstringFunction() *ast.Rule {
	n := rule("substringFunction", p.match(SUBSTRING), p.match(OPEN_PAR), p.parseExpr())
	if p.is(FROM) {
		n.Add(p.consume(), p.parseExpr())
		if p.is(FOR) {
			n.Add(p.consume(), p.parseExpr())
		}
	} else {
		n.Add(p.match(COMMA), p.parseExpr())
		if p.is(COMMA) {
			n.Add(p.consume(), p.parseExpr())
		}
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

// parseWeightString parses WEIGHT_STRING with its AS CHAR/BINARY, LEVEL and
// legacy three-number forms.
func (p *Parser) parseWeightString() *ast.Rule {
	n := rule("weightString", p.match(WEIGHT_STRING), p.match(OPEN_PAR), p.parseExpr())
	switch {
	case p.isSeq(AS, BINARY):
		n.Add(p.consume(), p.consume(), p.parseWsNumCodepoints())
	case p.is(COMMA):
		n.Add(p.consume(), p.parseUlongNumber(), p.match(COMMA), p.parseUlongNumber(),
			p.match(COMMA), p.parseUlongNumber())
	default:
		if p.isSeq(AS, CHAR) {
			n.Add(p.consume(), p.consume(), p.parseWsNumCodepoints())
		}
		if p.is(LEVEL) && p.version < 80000 {
			n.Add(p.parseWeightStringLevels())
		}
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parseWsNumCodepoints() *ast.Rule {
	return rule("wsNumCodepoints", p.match(OPEN_PAR), p.parseRealUlongNumber(), p.match(CLOSE_PAR))
}

func (p *Parser) parseWeightStringLevels() *ast.Rule {
	n := rule("weightStringLevels", p.match(LEVEL))
	if p.la(2) == MINUS_OPERATOR {
		n.Add(p.parseRealUlongNumber(), p.consume(), p.parseRealUlongNumber())
		return n
	}
	n.Add(p.parseWeightStringLevelListItem())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseWeightStringLevelListItem())
	}
	return n
}

func (p *Parser) parseWeightStringLevelListItem() *ast.Rule {
	n := rule("weightStringLevelListItem", p.parseRealUlongNumber())
	switch {
	case p.isAny(ASC, DESC):
		n.Add(p.consume(), p.accept(REVERSE))
	case p.is(REVERSE):
		n.Add(p.consume())
	}
	return n
}

// ---------- Generic calls ----------

// isFunctionCallStart reports whether the input is name( or qualifier.name(.
func (p *Parser) isFunctionCallStart() bool {
	if !p.isIdentifierToken(p.la(1)) {
		return false
	}
	if p.la(2) == OPEN_PAR {
		return true
	}
	return p.la(2) == DOT && p.isIdentifierToken(p.la(3)) && p.la(4) == OPEN_PAR
}

func (p *Parser) parseFunctionCall() *ast.Rule {
	if p.isPureIdentifierStart() && p.la(2) == OPEN_PAR {
		n := rule("functionCall", p.parsePureIdentifier(), p.consume())
		if !p.is(CLOSE_PAR) {
			n.Add(p.parseUdfExprList())
		}
		n.Add(p.match(CLOSE_PAR))
		return n
	}
	n := rule("functionCall", p.parseQualifiedIdentifier(), p.match(OPEN_PAR))
	if !p.is(CLOSE_PAR) {
		n.Add(p.parseExprList())
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parseUdfExprList() *ast.Rule {
	n := rule("udfExprList", p.parseUdfExpr())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseUdfExpr())
	}
	return n
}

func (p *Parser) parseUdfExpr() *ast.Rule {
	n := rule("udfExpr", p.parseExpr())
	if p.isSelectAliasStart() {
		n.Add(p.parseSelectAlias())
	}
	return n
}
