package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// SELECT parsing: query expressions, UNION chains, query specifications,
// CTEs, INTO targets and locking clauses.
//
// Grammar:
//
//	selectStatement         → queryExpression [lockingClauseList] | queryExpressionParens
//	                        | selectStatementWithInto
//	selectStatementWithInto → "(" selectStatementWithInto ")"
//	                        | queryExpression intoClause [lockingClauseList]
//	                        | queryExpression lockingClauseList intoClause
//	queryExpression         → [withClause] (queryExpressionBody | queryExpressionParens)
//	                          [orderClause] [limitClause] [procedureAnalyseClause]
//	queryExpressionBody     → (queryPrimary | queryExpressionParens)
//	                          (UNION [DISTINCT | ALL] (queryPrimary | queryExpressionParens))*
//	queryExpressionParens   → "(" (queryExpressionParens | queryExpression [lockingClauseList]) ")"
//	queryPrimary            → querySpecification | tableValueConstructor | explicitTable
//	querySpecification      → SELECT selectOption* selectItemList [intoClause] [fromClause]
//	                          [whereClause] [groupByClause] [havingClause] [windowClause]
//
// An INTO directly after the select list belongs to the query specification;
// INTO after the whole query expression makes a selectStatementWithInto.

// ---------- Statement level ----------

func (p *Parser) isSelectStart() bool {
	switch p.la(1) {
	case SELECT:
		return true
	case WITH:
		return p.version >= 80000
	case OPEN_PAR:
		return p.isSubqueryStart()
	case VALUES, TABLE:
		return p.version >= 80019
	}
	return false
}

func (p *Parser) parseSelectStatement() *ast.Rule {
	if p.is(OPEN_PAR) {
		parens := p.parseQueryExpressionParens()
		if !p.isQueryExpressionContinuation() && !p.is(INTO) && !p.isLockingClauseStart() {
			return rule("selectStatement", parens)
		}
		qe := p.parseQueryExpressionRest(rule("queryExpression"), parens)
		return p.finishSelectStatement(qe)
	}
	return p.finishSelectStatement(p.parseQueryExpression())
}

// finishSelectStatement handles the INTO and locking clauses that may follow
// a complete query expression.
func (p *Parser) finishSelectStatement(qe *ast.Rule) *ast.Rule {
	switch {
	case p.is(INTO):
		into := rule("selectStatementWithInto", qe, p.parseIntoClause())
		if p.isLockingClauseStart() {
			into.Add(p.parseLockingClauseList())
		}
		return rule("selectStatement", into)
	case p.isLockingClauseStart():
		locking := p.parseLockingClauseList()
		if p.is(INTO) {
			return rule("selectStatement", rule("selectStatementWithInto", qe, locking, p.parseIntoClause()))
		}
		return rule("selectStatement", qe, locking)
	}
	return rule("selectStatement", qe)
}

func (p *Parser) isQueryExpressionContinuation() bool {
	switch p.la(1) {
	case UNION, ORDER, LIMIT:
		return true
	case PROCEDURE:
		return p.version < 80000
	}
	return false
}

// ---------- Query expressions ----------

func (p *Parser) parseQueryExpression() *ast.Rule {
	var with *ast.Rule
	if p.is(WITH) && p.version >= 80000 {
		with = p.parseWithClause()
	}
	return p.parseQueryExpressionWith(with)
}

// parseQueryExpressionWith continues a query expression after an already
// parsed WITH clause, which may be nil.
func (p *Parser) parseQueryExpressionWith(with *ast.Rule) *ast.Rule {
	p.enter("queryExpression")
	defer p.leave()

	n := rule("queryExpression", with)
	if p.is(OPEN_PAR) {
		return p.parseQueryExpressionRest(n, p.parseQueryExpressionParens())
	}
	n.Add(p.parseQueryExpressionBody(nil))
	return p.parseQueryExpressionTail(n)
}

// parseQueryExpressionRest continues a query expression whose first operand
// was a parenthesized query.
func (p *Parser) parseQueryExpressionRest(n, parens *ast.Rule) *ast.Rule {
	if p.is(UNION) {
		n.Add(p.parseQueryExpressionBody(parens))
	} else {
		n.Add(parens)
	}
	return p.parseQueryExpressionTail(n)
}

func (p *Parser) parseQueryExpressionTail(n *ast.Rule) *ast.Rule {
	if p.is(ORDER) {
		n.Add(p.parseOrderClause())
	}
	if p.is(LIMIT) {
		n.Add(p.parseLimitClause())
	}
	if p.is(PROCEDURE) && p.version < 80000 {
		n.Add(p.parseProcedureAnalyseClause())
	}
	return n
}

func (p *Parser) parseQueryExpressionBody(first *ast.Rule) *ast.Rule {
	n := rule("queryExpressionBody")
	if first != nil {
		n.Add(first)
	} else {
		n.Add(p.parseQueryPrimaryOrParens())
	}
	for p.is(UNION) {
		n.Add(p.consume())
		if p.isAny(DISTINCT, ALL) {
			n.Add(rule("unionOption", p.consume()))
		}
		n.Add(p.parseQueryPrimaryOrParens())
	}
	return n
}

func (p *Parser) parseQueryPrimaryOrParens() *ast.Rule {
	if p.is(OPEN_PAR) {
		return p.parseQueryExpressionParens()
	}
	return p.parseQueryPrimary()
}

func (p *Parser) parseQueryExpressionParens() *ast.Rule {
	p.enter("queryExpressionParens")
	defer p.leave()

	n := rule("queryExpressionParens", p.match(OPEN_PAR))
	if p.is(OPEN_PAR) {
		inner := p.parseQueryExpressionParens()
		if p.is(CLOSE_PAR) {
			n.Add(inner, p.consume())
			return n
		}
		n.Add(p.parseQueryExpressionRest(rule("queryExpression"), inner))
	} else {
		n.Add(p.parseQueryExpression())
	}
	if p.isLockingClauseStart() {
		n.Add(p.parseLockingClauseList())
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

// parseQueryExpressionOrParens is used where a query may appear without a
// surrounding SELECT statement, such as INSERT ... SELECT or CREATE VIEW.
func (p *Parser) parseQueryExpressionOrParens() *ast.Rule {
	if p.is(OPEN_PAR) {
		parens := p.parseQueryExpressionParens()
		if !p.isQueryExpressionContinuation() {
			return rule("queryExpressionOrParens", parens)
		}
		return rule("queryExpressionOrParens", p.parseQueryExpressionRest(rule("queryExpression"), parens))
	}
	return rule("queryExpressionOrParens", p.parseQueryExpression())
}

func (p *Parser) parseQueryPrimary() *ast.Rule {
	switch {
	case p.is(SELECT):
		return rule("queryPrimary", p.parseQuerySpecification())
	case p.is(VALUES) && p.version >= 80019:
		return rule("queryPrimary", p.parseTableValueConstructor())
	case p.is(TABLE) && p.version >= 80019:
		return rule("queryPrimary", p.parseExplicitTable())
	}
	return p.fail("queryPrimary")
}

// isSubqueryStart reports whether the input is one or more "(" followed by
// the start of a query.
func (p *Parser) isSubqueryStart() bool {
	if !p.is(OPEN_PAR) {
		return false
	}
	for i := 2; i <= 6; i++ {
		switch p.la(i) {
		case OPEN_PAR:
			continue
		case SELECT:
			return true
		case WITH:
			return p.version >= 80000
		case VALUES, TABLE:
			return p.version >= 80019
		}
		return false
	}
	return false
}

func (p *Parser) parseSubquery() *ast.Rule {
	return rule("subquery", p.parseQueryExpressionParens())
}

// ---------- Query specification ----------

func (p *Parser) parseQuerySpecification() *ast.Rule {
	n := rule("querySpecification", p.match(SELECT))
	for p.isSelectOptionStart() {
		n.Add(p.parseSelectOption())
	}
	n.Add(p.parseSelectItemList())
	if p.is(INTO) {
		n.Add(p.parseIntoClause())
	}
	if p.is(FROM) {
		n.Add(p.parseFromClause())
	}
	if p.is(WHERE) {
		n.Add(p.parseWhereClause())
	}
	if p.isSeq(GROUP, BY) {
		n.Add(p.parseGroupByClause())
	}
	if p.is(HAVING) {
		n.Add(p.parseHavingClause())
	}
	if p.is(WINDOW) && p.version >= 80000 {
		n.Add(p.parseWindowClause())
	}
	return n
}

func (p *Parser) isSelectOptionStart() bool {
	switch p.la(1) {
	case ALL, DISTINCT, STRAIGHT_JOIN, HIGH_PRIORITY, SQL_SMALL_RESULT, SQL_BIG_RESULT,
		SQL_BUFFER_RESULT, SQL_CALC_FOUND_ROWS, SQL_NO_CACHE:
		return true
	case SQL_CACHE:
		return p.version < 80000
	case MAX_STATEMENT_TIME:
		return p.version >= 50704 && p.version < 50708 && p.la(2) == EQUAL_OPERATOR
	}
	return false
}

func (p *Parser) parseSelectOption() *ast.Rule {
	switch p.la(1) {
	case SQL_NO_CACHE, SQL_CACHE:
		return rule("selectOption", p.consume())
	case MAX_STATEMENT_TIME:
		return rule("selectOption", p.consume(), p.match(EQUAL_OPERATOR), p.parseRealUlongNumber())
	}
	return rule("selectOption", rule("querySpecOption", p.consume()))
}

func (p *Parser) parseSelectItemList() *ast.Rule {
	n := rule("selectItemList")
	if p.is(MULT_OPERATOR) {
		n.Add(p.consume())
	} else {
		n.Add(p.parseSelectItem())
	}
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseSelectItem())
	}
	return n
}

func (p *Parser) parseSelectItem() *ast.Rule {
	if p.isTableWildStart() {
		return rule("selectItem", p.parseTableWild())
	}
	n := rule("selectItem", p.parseExpr())
	if p.isSelectAliasStart() {
		n.Add(p.parseSelectAlias())
	}
	return n
}

func (p *Parser) isSelectAliasStart() bool {
	return p.is(AS) || p.isIdentifierStart() || p.isTextStringLiteralStart()
}

func (p *Parser) parseSelectAlias() *ast.Rule {
	n := rule("selectAlias", p.accept(AS))
	if p.isTextStringLiteralStart() {
		n.Add(p.parseTextStringLiteral())
	} else {
		n.Add(p.parseIdentifier())
	}
	return n
}

// ---------- WITH ----------

func (p *Parser) parseWithClause() *ast.Rule {
	n := rule("withClause", p.match(WITH), p.accept(RECURSIVE), p.parseCommonTableExpression())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseCommonTableExpression())
	}
	return n
}

func (p *Parser) parseCommonTableExpression() *ast.Rule {
	n := rule("commonTableExpression", p.parseIdentifier())
	if p.is(OPEN_PAR) {
		n.Add(p.parseColumnInternalRefList())
	}
	n.Add(p.match(AS), p.parseSubquery())
	return n
}

// ---------- Clauses ----------

func (p *Parser) parseWhereClause() *ast.Rule {
	return rule("whereClause", p.match(WHERE), p.parseExpr())
}

func (p *Parser) parseHavingClause() *ast.Rule {
	return rule("havingClause", p.match(HAVING), p.parseExpr())
}

func (p *Parser) parseGroupByClause() *ast.Rule {
	n := rule("groupByClause", p.match(GROUP), p.match(BY), p.parseOrderList())
	switch {
	case p.isSeq(WITH, ROLLUP):
		n.Add(rule("olapOption", p.consume(), p.consume()))
	case p.isSeq(WITH, CUBE) && p.version < 80000:
		n.Add(rule("olapOption", p.consume(), p.consume()))
	}
	return n
}

func (p *Parser) parseOrderClause() *ast.Rule {
	return rule("orderClause", p.match(ORDER), p.match(BY), p.parseOrderList())
}

func (p *Parser) parseWindowClause() *ast.Rule {
	n := rule("windowClause", p.match(WINDOW), p.parseWindowDefinition())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseWindowDefinition())
	}
	return n
}

func (p *Parser) parseWindowDefinition() *ast.Rule {
	return rule("windowDefinition", p.parseWindowName(), p.match(AS), p.parseWindowSpec())
}

func (p *Parser) parseLimitClause() *ast.Rule {
	return rule("limitClause", p.match(LIMIT), p.parseLimitOptions())
}

func (p *Parser) parseSimpleLimitClause() *ast.Rule {
	return rule("simpleLimitClause", p.match(LIMIT), p.parseLimitOption())
}

func (p *Parser) parseLimitOptions() *ast.Rule {
	n := rule("limitOptions", p.parseLimitOption())
	if p.isAny(COMMA, OFFSET) {
		n.Add(p.consume(), p.parseLimitOption())
	}
	return n
}

func (p *Parser) parseLimitOption() *ast.Rule {
	switch {
	case p.isAny(PARAM_MARKER, ULONGLONG_NUMBER, LONG_NUMBER, INT_NUMBER):
		return rule("limitOption", p.consume())
	case p.isIdentifierStart():
		return rule("limitOption", p.parseIdentifier())
	}
	return p.fail("limitOption")
}

func (p *Parser) parseProcedureAnalyseClause() *ast.Rule {
	n := rule("procedureAnalyseClause", p.match(PROCEDURE), p.match(ANALYSE), p.match(OPEN_PAR))
	if p.is(INT_NUMBER) {
		n.Add(p.consume())
		if p.is(COMMA) {
			n.Add(p.consume(), p.match(INT_NUMBER))
		}
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parseIntoClause() *ast.Rule {
	n := rule("intoClause", p.match(INTO))
	switch {
	case p.is(OUTFILE):
		n.Add(p.consume(), p.parseTextStringLiteral())
		if p.isCharsetStart() {
			n.Add(p.parseCharsetClause())
		}
		if p.is(COLUMNS) {
			n.Add(p.parseFieldsClause())
		}
		if p.is(LINES) {
			n.Add(p.parseLinesClause())
		}
	case p.is(DUMPFILE):
		n.Add(p.consume(), p.parseTextStringLiteral())
	default:
		n.Add(p.parseIntoTarget())
		for p.is(COMMA) {
			n.Add(p.consume(), p.parseIntoTarget())
		}
	}
	return n
}

func (p *Parser) parseIntoTarget() *ast.Rule {
	if p.isUserVariableStart() {
		return p.parseUserVariable()
	}
	return p.parseTextOrIdentifier()
}

// ---------- Locking ----------

func (p *Parser) isLockingClauseStart() bool {
	switch {
	case p.isSeq(FOR, UPDATE):
		return true
	case p.isSeq(FOR, SHARE):
		return p.version >= 80000
	case p.isSeq(LOCK, IN, SHARE, MODE):
		return true
	}
	return false
}

func (p *Parser) parseLockingClauseList() *ast.Rule {
	n := rule("lockingClauseList")
	for p.isLockingClauseStart() {
		n.Add(p.parseLockingClause())
	}
	return n
}

func (p *Parser) parseLockingClause() *ast.Rule {
	if p.is(LOCK) {
		return rule("lockingClause", p.consume(), p.match(IN), p.match(SHARE), p.match(MODE))
	}
	n := rule("lockingClause", p.match(FOR), rule("lockStrengh", p.matchAny("lockStrengh", UPDATE, SHARE)))
	if p.is(OF) {
		n.Add(p.consume(), p.parseTableAliasRefList())
	}
	switch {
	case p.isSeq(SKIP, LOCKED):
		n.Add(rule("lockedRowAction", p.consume(), p.consume()))
	case p.is(NOWAIT):
		n.Add(rule("lockedRowAction", p.consume()))
	}
	return n
}

// ---------- Table value constructors ----------

func (p *Parser) parseTableValueConstructor() *ast.Rule {
	n := rule("tableValueConstructor", p.match(VALUES), p.parseRowValueExplicit())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseRowValueExplicit())
	}
	return n
}

func (p *Parser) parseRowValueExplicit() *ast.Rule {
	n := rule("rowValueExplicit", p.match(ROW), p.match(OPEN_PAR))
	if !p.is(CLOSE_PAR) {
		n.Add(p.parseValues())
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parseExplicitTable() *ast.Rule {
	return rule("explicitTable", p.match(TABLE), p.parseTableRef())
}
