package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Table reference parsing: FROM lists, joins, derived tables, JSON_TABLE
// and index hints.
//
// Grammar:
//
//	fromClause         → FROM (DUAL | tableReferenceList)
//	tableReferenceList → tableReference ("," tableReference)*
//	tableReference     → (tableFactor | "{" (OJ | identifier) escapedTableReference "}") joinedTable*
//	tableFactor        → singleTable | singleTableParens | derivedTable
//	                   | tableReferenceListParens | tableFunction
//	singleTable        → tableRef [usePartition] [tableAlias] [indexHintList]
//	derivedTable       → subquery [tableAlias] [columnInternalRefList]
//	                   | LATERAL subquery [tableAlias] [columnInternalRefList]
//	joinedTable        → innerJoinType tableReference [ON expr | USING identifierListWithParentheses]
//	                   | outerJoinType tableReference (ON expr | USING identifierListWithParentheses)
//	                   | naturalJoinType tableFactor

func (p *Parser) parseFromClause() *ast.Rule {
	n := rule("fromClause", p.match(FROM))
	if p.is(DUAL) {
		n.Add(p.consume())
		return n
	}
	n.Add(p.parseTableReferenceList())
	return n
}

func (p *Parser) parseTableReferenceList() *ast.Rule {
	n := rule("tableReferenceList", p.parseTableReference())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseTableReference())
	}
	return n
}

func (p *Parser) parseTableReference() *ast.Rule {
	p.enter("tableReference")
	defer p.leave()

	n := rule("tableReference")
	if p.is(OPEN_CURLY) {
		n.Add(p.consume())
		if p.is(OJ) {
			n.Add(p.consume())
		} else if p.version >= 80017 {
			n.Add(p.parseIdentifier())
		} else {
			return p.fail("tableReference")
		}
		esc := rule("escapedTableReference", p.parseTableFactor())
		for p.isJoinStart() {
			esc.Add(p.parseJoinedTable())
		}
		n.Add(esc, p.match(CLOSE_CURLY))
	} else {
		n.Add(p.parseTableFactor())
	}
	for p.isJoinStart() {
		n.Add(p.parseJoinedTable())
	}
	return n
}

func (p *Parser) parseTableFactor() *ast.Rule {
	switch {
	case p.isSeq(JSON_TABLE, OPEN_PAR) && p.version >= 80004:
		return rule("tableFactor", p.parseTableFunction())
	case p.is(LATERAL) && p.version >= 80014:
		return rule("tableFactor", p.parseDerivedTable())
	case p.isSubqueryStart():
		return rule("tableFactor", p.parseDerivedTable())
	case p.is(OPEN_PAR):
		return rule("tableFactor", p.parseParenthesizedTableFactor())
	}
	return rule("tableFactor", p.parseSingleTable())
}

func (p *Parser) parseSingleTable() *ast.Rule {
	n := rule("singleTable", p.parseTableRef())
	if p.isUsePartitionStart() {
		n.Add(p.parseUsePartition())
	}
	if p.isTableAliasStart() {
		n.Add(p.parseTableAlias())
	}
	if p.isIndexHintStart() {
		n.Add(p.parseIndexHintList())
	}
	return n
}

// parseParenthesizedTableFactor parses "(" ... ")" in a FROM list. A lone
// single table inside the parentheses is a singleTableParens, anything else
// a tableReferenceListParens.
func (p *Parser) parseParenthesizedTableFactor() *ast.Rule {
	open := p.match(OPEN_PAR)
	list := p.parseTableReferenceList()
	closing := p.match(CLOSE_PAR)
	if single := soleSingleTable(list); single != nil {
		return rule("singleTableParens", open, single, closing)
	}
	if inner := soleListParens(list); inner != nil {
		return rule("tableReferenceListParens", open, inner, closing)
	}
	return rule("tableReferenceListParens", open, list, closing)
}

// soleFactorChild returns the only child of the only tableFactor in list,
// when list holds exactly one unjoined table factor.
func soleFactorChild(list *ast.Rule) *ast.Rule {
	if len(list.Children) != 1 {
		return nil
	}
	ref, ok := list.Children[0].(*ast.Rule)
	if !ok || len(ref.Children) != 1 {
		return nil
	}
	factor, ok := ref.Children[0].(*ast.Rule)
	if !ok || factor.Name != "tableFactor" || len(factor.Children) != 1 {
		return nil
	}
	child, _ := factor.Children[0].(*ast.Rule)
	return child
}

func soleSingleTable(list *ast.Rule) *ast.Rule {
	if c := soleFactorChild(list); c != nil && (c.Name == "singleTable" || c.Name == "singleTableParens") {
		return c
	}
	return nil
}

func soleListParens(list *ast.Rule) *ast.Rule {
	if c := soleFactorChild(list); c != nil && c.Name == "tableReferenceListParens" {
		return c
	}
	return nil
}

func (p *Parser) parseDerivedTable() *ast.Rule {
	n := rule("derivedTable", p.accept(LATERAL), p.parseSubquery())
	if p.isTableAliasStart() {
		n.Add(p.parseTableAlias())
	}
	if p.is(OPEN_PAR) && p.version >= 80000 {
		n.Add(p.parseColumnInternalRefList())
	}
	return n
}

// ---------- Joins ----------

func (p *Parser) isJoinStart() bool {
	switch p.la(1) {
	case JOIN, STRAIGHT_JOIN, NATURAL, LEFT, RIGHT:
		return true
	case INNER, CROSS:
		return p.la(2) == JOIN
	}
	return false
}

func (p *Parser) parseJoinedTable() *ast.Rule {
	switch p.la(1) {
	case NATURAL:
		return rule("joinedTable", p.parseNaturalJoinType(), p.parseTableFactor())
	case LEFT, RIGHT:
		n := rule("joinedTable", p.parseOuterJoinType(), p.parseTableReference())
		switch {
		case p.is(ON):
			n.Add(p.consume(), p.parseExpr())
		case p.is(USING):
			n.Add(p.consume(), p.parseIdentifierListWithParentheses())
		default:
			return p.fail("joinedTable")
		}
		return n
	}
	n := rule("joinedTable", p.parseInnerJoinType(), p.parseTableReference())
	switch {
	case p.is(ON):
		n.Add(p.consume(), p.parseExpr())
	case p.is(USING):
		n.Add(p.consume(), p.parseIdentifierListWithParentheses())
	}
	return n
}

func (p *Parser) parseNaturalJoinType() *ast.Rule {
	n := rule("naturalJoinType", p.match(NATURAL))
	if p.isAny(LEFT, RIGHT) {
		n.Add(p.consume(), p.accept(OUTER))
	} else {
		n.Add(p.accept(INNER))
	}
	n.Add(p.match(JOIN))
	return n
}

func (p *Parser) parseInnerJoinType() *ast.Rule {
	if p.is(STRAIGHT_JOIN) {
		return rule("innerJoinType", p.consume())
	}
	return rule("innerJoinType", p.acceptAny(INNER, CROSS), p.match(JOIN))
}

func (p *Parser) parseOuterJoinType() *ast.Rule {
	return rule("outerJoinType", p.matchAny("outerJoinType", LEFT, RIGHT), p.accept(OUTER), p.match(JOIN))
}

// ---------- Aliases and hints ----------

func (p *Parser) isTableAliasStart() bool {
	switch {
	case p.is(AS):
		return true
	case p.is(EQUAL_OPERATOR) && p.version < 80017:
		return true
	}
	return p.isIdentifierStart()
}

func (p *Parser) parseTableAlias() *ast.Rule {
	n := rule("tableAlias")
	if p.is(AS) || (p.is(EQUAL_OPERATOR) && p.version < 80017) {
		n.Add(p.consume())
	}
	n.Add(p.parseIdentifier())
	return n
}

func (p *Parser) isIndexHintStart() bool {
	return p.isAny(FORCE, IGNORE, USE) && (p.la(2) == INDEX || p.la(2) == KEY)
}

func (p *Parser) parseIndexHintList() *ast.Rule {
	n := rule("indexHintList", p.parseIndexHint())
	for {
		switch {
		case p.is(COMMA) && p.isAnyAt(2, FORCE, IGNORE, USE) && p.isAnyAt(3, INDEX, KEY):
			n.Add(p.consume(), p.parseIndexHint())
		case p.isIndexHintStart():
			n.Add(p.parseIndexHint())
		default:
			return n
		}
	}
}

func (p *Parser) parseIndexHint() *ast.Rule {
	n := rule("indexHint")
	use := p.is(USE)
	if use {
		n.Add(p.consume())
	} else {
		n.Add(rule("indexHintType", p.matchAny("indexHintType", FORCE, IGNORE)))
	}
	n.Add(p.parseKeyOrIndex())
	if p.is(FOR) {
		n.Add(p.parseIndexHintClause())
	}
	n.Add(p.match(OPEN_PAR))
	if !use || !p.is(CLOSE_PAR) {
		n.Add(p.parseIndexList())
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parseKeyOrIndex() *ast.Rule {
	return rule("keyOrIndex", p.matchAny("keyOrIndex", KEY, INDEX))
}

func (p *Parser) parseIndexHintClause() *ast.Rule {
	n := rule("indexHintClause", p.match(FOR))
	switch {
	case p.is(JOIN):
		n.Add(p.consume())
	case p.isAny(ORDER, GROUP):
		n.Add(p.consume(), p.match(BY))
	default:
		return p.fail("indexHintClause")
	}
	return n
}

func (p *Parser) parseIndexList() *ast.Rule {
	n := rule("indexList", p.parseIndexListElement())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseIndexListElement())
	}
	return n
}

func (p *Parser) parseIndexListElement() *ast.Rule {
	if p.is(PRIMARY) {
		return rule("indexListElement", p.consume())
	}
	return rule("indexListElement", p.parseIdentifier())
}

// ---------- JSON_TABLE ----------

func (p *Parser) parseTableFunction() *ast.Rule {
	n := rule("tableFunction",
		p.match(JSON_TABLE), p.match(OPEN_PAR), p.parseExpr(), p.match(COMMA),
		p.parseTextStringLiteral(), p.parseColumnsClause(), p.match(CLOSE_PAR))
	if p.isTableAliasStart() {
		n.Add(p.parseTableAlias())
	}
	return n
}

func (p *Parser) parseColumnsClause() *ast.Rule {
	n := rule("columnsClause", p.match(COLUMNS), p.match(OPEN_PAR), p.parseJtColumn())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseJtColumn())
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parseJtColumn() *ast.Rule {
	if p.isSeq(NESTED, PATH) {
		return rule("jtColumn", p.consume(), p.consume(), p.parseTextStringLiteral(), p.parseColumnsClause())
	}
	n := rule("jtColumn", p.parseIdentifier())
	if p.isSeq(FOR, ORDINALITY) {
		n.Add(p.consume(), p.consume())
		return n
	}
	n.Add(p.parseDataType())
	if p.is(COLLATE) && p.version >= 80014 {
		n.Add(p.parseCollate())
	}
	n.Add(p.accept(EXISTS), p.match(PATH), p.parseTextStringLiteral())
	if p.isJtOnResponseStart() {
		n.Add(p.parseOnEmptyOrError())
	}
	return n
}

func (p *Parser) isJtOnResponseStart() bool {
	return p.isAny(ERROR, NULL, DEFAULT)
}

func (p *Parser) parseOnEmptyOrError() *ast.Rule {
	n := rule("onEmptyOrError")
	first := p.parseOnEmptyOrErrorItem()
	n.Add(first)
	if p.isJtOnResponseStart() {
		second := p.parseOnEmptyOrErrorItem()
		if second.Name == first.Name {
			return p.fail("onEmptyOrError")
		}
		n.Add(second)
	}
	return n
}

// parseOnEmptyOrErrorItem parses "response ON EMPTY" or "response ON ERROR".
func (p *Parser) parseOnEmptyOrErrorItem() *ast.Rule {
	resp := p.parseJtOnResponse()
	on := p.match(ON)
	if p.is(EMPTY) {
		return rule("onEmpty", resp, on, p.consume())
	}
	return rule("onError", resp, on, p.match(ERROR))
}

func (p *Parser) parseJtOnResponse() *ast.Rule {
	switch p.la(1) {
	case ERROR, NULL:
		return rule("jtOnResponse", p.consume())
	case DEFAULT:
		return rule("jtOnResponse", p.consume(), p.parseTextStringLiteral())
	}
	return p.fail("jtOnResponse")
}
