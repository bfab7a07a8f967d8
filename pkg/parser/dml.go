package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Data manipulation statements other than SELECT.
//
// Grammar:
//
//	insertStatement  → INSERT [insertLockOption] [IGNORE] [INTO] tableRef [usePartition]
//	                   (insertFromConstructor [valuesReference] | SET updateList [valuesReference]
//	                   | insertQueryExpression) [insertUpdateList]
//	replaceStatement → REPLACE [LOW_PRIORITY | DELAYED] [INTO] tableRef [usePartition]
//	                   (insertFromConstructor | SET updateList | insertQueryExpression)
//	updateStatement  → [withClause] UPDATE [LOW_PRIORITY] [IGNORE] tableReferenceList
//	                   SET updateList [whereClause] [orderClause] [simpleLimitClause]
//	deleteStatement  → [withClause] DELETE deleteStatementOption*
//	                   (FROM (tableAliasRefList USING tableReferenceList [whereClause]
//	                         | tableRef [tableAlias] [partitionDelete] [whereClause]
//	                           [orderClause] [simpleLimitClause])
//	                   | tableAliasRefList FROM tableReferenceList [whereClause])
//	loadStatement    → LOAD (DATA | XML) [LOW_PRIORITY | CONCURRENT] [LOCAL] INFILE textLiteral
//	                   [REPLACE | IGNORE] INTO TABLE tableRef ... loadDataFileTail
//	callStatement    → CALL procedureRef ["(" [exprList] ")"]
//	doStatement      → DO (exprList | selectItemList)
//	handlerStatement → HANDLER (tableRef OPEN [tableAlias] | identifier (CLOSE | READ ...))

// ---------- INSERT / REPLACE ----------

func (p *Parser) parseInsertStatement() *ast.Rule {
	n := rule("insertStatement", p.match(INSERT))
	if p.isAny(LOW_PRIORITY, DELAYED, HIGH_PRIORITY) {
		n.Add(rule("insertLockOption", p.consume()))
	}
	n.Add(p.accept(IGNORE), p.accept(INTO), p.parseTableRef())
	if p.isUsePartitionStart() {
		n.Add(p.parseUsePartition())
	}
	switch {
	case p.is(SET):
		n.Add(p.consume(), p.parseUpdateList())
		if p.is(AS) && p.version >= 80018 {
			n.Add(p.parseValuesReference())
		}
	default:
		src := p.parseInsertSource()
		n.Add(src)
		if src.Name == "insertFromConstructor" && p.is(AS) && p.version >= 80018 {
			n.Add(p.parseValuesReference())
		}
	}
	if p.isSeq(ON, DUPLICATE) {
		n.Add(p.parseInsertUpdateList())
	}
	return n
}

func (p *Parser) parseReplaceStatement() *ast.Rule {
	n := rule("replaceStatement", p.match(REPLACE), p.acceptAny(LOW_PRIORITY, DELAYED), p.accept(INTO), p.parseTableRef())
	if p.isUsePartitionStart() {
		n.Add(p.parseUsePartition())
	}
	if p.is(SET) {
		n.Add(p.consume(), p.parseUpdateList())
		return n
	}
	n.Add(p.parseInsertSource())
	return n
}

// parseInsertSource chooses between a VALUES constructor and a query, both
// of which may start with a parenthesized column list.
func (p *Parser) parseInsertSource() *ast.Rule {
	if p.isAny(VALUES, VALUE) && !(p.is(VALUES) && p.la(2) == ROW) {
		return rule("insertFromConstructor", p.parseInsertValues())
	}
	if p.is(OPEN_PAR) && !p.isSubqueryStart() {
		open := p.consume()
		var fields *ast.Rule
		if !p.is(CLOSE_PAR) {
			fields = p.parseFields()
		}
		closing := p.match(CLOSE_PAR)
		if p.isAny(VALUES, VALUE) && !(p.is(VALUES) && p.la(2) == ROW) {
			return rule("insertFromConstructor", open, fields, closing, p.parseInsertValues())
		}
		return rule("insertQueryExpression", open, fields, closing, p.parseQueryExpressionOrParens())
	}
	return rule("insertQueryExpression", p.parseQueryExpressionOrParens())
}

func (p *Parser) parseFields() *ast.Rule {
	n := rule("fields", p.parseInsertIdentifier())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseInsertIdentifier())
	}
	return n
}

func (p *Parser) parseInsertIdentifier() *ast.Rule {
	if p.isTableWildStart() {
		return rule("insertIdentifier", p.parseTableWild())
	}
	return rule("insertIdentifier", p.parseColumnRef())
}

func (p *Parser) parseInsertValues() *ast.Rule {
	return rule("insertValues", p.matchAny("insertValues", VALUES, VALUE), p.parseValueList())
}

func (p *Parser) parseValueList() *ast.Rule {
	n := rule("valueList")
	for {
		n.Add(p.match(OPEN_PAR))
		if !p.is(CLOSE_PAR) {
			n.Add(p.parseValues())
		}
		n.Add(p.match(CLOSE_PAR))
		if !p.is(COMMA) {
			return n
		}
		n.Add(p.consume())
	}
}

func (p *Parser) parseValues() *ast.Rule {
	n := rule("values", p.parseValueItem())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseValueItem())
	}
	return n
}

// parseValueItem parses an expression or a bare DEFAULT.
func (p *Parser) parseValueItem() ast.Node {
	if p.is(DEFAULT) && p.la(2) != OPEN_PAR {
		return p.consume()
	}
	return p.parseExpr()
}

func (p *Parser) parseValuesReference() *ast.Rule {
	n := rule("valuesReference", p.match(AS), p.parseIdentifier())
	if p.is(OPEN_PAR) {
		n.Add(p.parseColumnInternalRefList())
	}
	return n
}

func (p *Parser) parseInsertUpdateList() *ast.Rule {
	return rule("insertUpdateList", p.match(ON), p.match(DUPLICATE), p.match(KEY), p.match(UPDATE), p.parseUpdateList())
}

func (p *Parser) parseUpdateList() *ast.Rule {
	n := rule("updateList", p.parseUpdateElement())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseUpdateElement())
	}
	return n
}

func (p *Parser) parseUpdateElement() *ast.Rule {
	return rule("updateElement", p.parseColumnRef(), p.match(EQUAL_OPERATOR), p.parseValueItem())
}

// ---------- UPDATE / DELETE ----------

func (p *Parser) parseUpdateStatement() *ast.Rule {
	var with *ast.Rule
	if p.is(WITH) {
		with = p.parseWithClause()
	}
	return p.parseUpdateStatementWith(with)
}

// parseUpdateStatementWith continues an UPDATE after an already parsed WITH
// clause, which may be nil.
func (p *Parser) parseUpdateStatementWith(with *ast.Rule) *ast.Rule {
	n := rule("updateStatement", with)
	n.Add(p.match(UPDATE), p.accept(LOW_PRIORITY), p.accept(IGNORE), p.parseTableReferenceList(),
		p.match(SET), p.parseUpdateList())
	if p.is(WHERE) {
		n.Add(p.parseWhereClause())
	}
	if p.is(ORDER) {
		n.Add(p.parseOrderClause())
	}
	if p.is(LIMIT) {
		n.Add(p.parseSimpleLimitClause())
	}
	return n
}

func (p *Parser) parseDeleteStatement() *ast.Rule {
	var with *ast.Rule
	if p.is(WITH) {
		with = p.parseWithClause()
	}
	return p.parseDeleteStatementWith(with)
}

func (p *Parser) parseDeleteStatementWith(with *ast.Rule) *ast.Rule {
	n := rule("deleteStatement", with)
	n.Add(p.match(DELETE))
	for p.isAny(QUICK, LOW_PRIORITY, IGNORE) {
		n.Add(rule("deleteStatementOption", p.consume()))
	}

	if !p.is(FROM) {
		n.Add(p.parseTableAliasRefList(), p.match(FROM), p.parseTableReferenceList())
		if p.is(WHERE) {
			n.Add(p.parseWhereClause())
		}
		return n
	}

	n.Add(p.consume())
	if p.isMultiTableDeleteTarget() {
		n.Add(p.parseTableAliasRefList(), p.match(USING), p.parseTableReferenceList())
		if p.is(WHERE) {
			n.Add(p.parseWhereClause())
		}
		return n
	}

	n.Add(p.parseTableRef())
	if p.version >= 80017 && p.isTableAliasStart() {
		n.Add(p.parseTableAlias())
	}
	if p.is(PARTITION) {
		n.Add(rule("partitionDelete", p.consume(), p.match(OPEN_PAR), p.parseIdentifierList(), p.match(CLOSE_PAR)))
	}
	if p.is(WHERE) {
		n.Add(p.parseWhereClause())
	}
	if p.is(ORDER) {
		n.Add(p.parseOrderClause())
	}
	if p.is(LIMIT) {
		n.Add(p.parseSimpleLimitClause())
	}
	return n
}

// isMultiTableDeleteTarget reports whether the table after DELETE FROM is
// the first of a USING-style target list: it carries a wildcard or is
// followed by a comma or USING.
func (p *Parser) isMultiTableDeleteTarget() bool {
	end := 2
	if p.la(2) == DOT {
		if p.la(3) == MULT_OPERATOR {
			return true
		}
		end = 4
		if p.la(4) == DOT {
			return p.la(5) == MULT_OPERATOR
		}
	}
	return p.isAnyAt(end, COMMA, USING)
}

// ---------- LOAD ----------

func (p *Parser) parseLoadStatement() *ast.Rule {
	n := rule("loadStatement", p.match(LOAD), rule("dataOrXml", p.matchAny("dataOrXml", DATA, XML)))
	xml := p.lastLeafType(n) == XML
	n.Add(p.acceptAny(LOW_PRIORITY, CONCURRENT), p.accept(LOCAL), p.match(INFILE), p.parseTextLiteral(),
		p.acceptAny(REPLACE, IGNORE), p.match(INTO), p.match(TABLE), p.parseTableRef())
	if p.isUsePartitionStart() {
		n.Add(p.parseUsePartition())
	}
	if p.isCharsetStart() {
		n.Add(p.parseCharsetClause())
	}
	if xml && p.isSeq(ROWS, IDENTIFIED) {
		n.Add(rule("xmlRowsIdentifiedBy", p.consume(), p.consume(), p.match(BY), p.parseTextString()))
	}
	if p.is(COLUMNS) {
		n.Add(p.parseFieldsClause())
	}
	if p.is(LINES) {
		n.Add(p.parseLinesClause())
	}
	n.Add(p.parseLoadDataFileTail())
	return n
}

// lastLeafType returns the type of the rightmost leaf under n.
func (p *Parser) lastLeafType(n *ast.Rule) TokenType {
	for len(n.Children) > 0 {
		switch c := n.Children[len(n.Children)-1].(type) {
		case *ast.Leaf:
			return c.Type
		case *ast.Rule:
			n = c
		}
	}
	return INVALID_INPUT
}

func (p *Parser) parseLoadDataFileTail() *ast.Rule {
	n := rule("loadDataFileTail")
	if p.is(IGNORE) {
		n.Add(p.consume(), p.match(INT_NUMBER), p.matchAny("loadDataFileTail", LINES, ROWS))
	}
	if p.is(OPEN_PAR) {
		t := rule("loadDataFileTargetList", p.consume())
		if !p.is(CLOSE_PAR) {
			t.Add(p.parseFieldOrVariableList())
		}
		t.Add(p.match(CLOSE_PAR))
		n.Add(t)
	}
	if p.is(SET) {
		n.Add(p.consume(), p.parseUpdateList())
	}
	return n
}

func (p *Parser) parseFieldOrVariableList() *ast.Rule {
	item := func() *ast.Rule {
		if p.isUserVariableStart() {
			return p.parseUserVariable()
		}
		return p.parseColumnRef()
	}
	n := rule("fieldOrVariableList", item())
	for p.is(COMMA) {
		n.Add(p.consume(), item())
	}
	return n
}

func (p *Parser) parseFieldsClause() *ast.Rule {
	n := rule("fieldsClause", p.match(COLUMNS))
	for p.isAny(TERMINATED, OPTIONALLY, ENCLOSED, ESCAPED) {
		n.Add(p.parseFieldTerm())
	}
	if len(n.Children) == 1 {
		return p.fail("fieldsClause")
	}
	return n
}

func (p *Parser) parseFieldTerm() *ast.Rule {
	switch p.la(1) {
	case TERMINATED, ESCAPED:
		return rule("fieldTerm", p.consume(), p.match(BY), p.parseTextString())
	case OPTIONALLY:
		return rule("fieldTerm", p.consume(), p.match(ENCLOSED), p.match(BY), p.parseTextString())
	}
	return rule("fieldTerm", p.match(ENCLOSED), p.match(BY), p.parseTextString())
}

func (p *Parser) parseLinesClause() *ast.Rule {
	n := rule("linesClause", p.match(LINES))
	for p.isAny(TERMINATED, STARTING) {
		n.Add(rule("lineTerm", p.consume(), p.match(BY), p.parseTextString()))
	}
	if len(n.Children) == 1 {
		return p.fail("linesClause")
	}
	return n
}

// ---------- CALL / DO / HANDLER ----------

func (p *Parser) parseCallStatement() *ast.Rule {
	n := rule("callStatement", p.match(CALL), p.parseProcedureRef())
	if p.is(OPEN_PAR) {
		n.Add(p.consume())
		if !p.is(CLOSE_PAR) {
			n.Add(p.parseExprList())
		}
		n.Add(p.match(CLOSE_PAR))
	}
	return n
}

// parseDoStatement takes a plain expression list before 5.7.9 and select
// items (with aliases) from then on.
func (p *Parser) parseDoStatement() *ast.Rule {
	n := rule("doStatement", p.match(DO))
	if p.version < 50709 {
		n.Add(p.parseExprList())
	} else {
		n.Add(p.parseSelectItemList())
	}
	return n
}

func (p *Parser) parseHandlerStatement() *ast.Rule {
	n := rule("handlerStatement", p.match(HANDLER))
	if p.isAnyAt(2, OPEN, DOT) {
		n.Add(p.parseTableRef(), p.match(OPEN))
		if p.isTableAliasStart() {
			n.Add(p.parseTableAlias())
		}
		return n
	}
	n.Add(p.parseIdentifier())
	if p.is(CLOSE) {
		n.Add(p.consume())
		return n
	}
	n.Add(p.match(READ), p.parseHandlerReadOrScan())
	if p.is(WHERE) {
		n.Add(p.parseWhereClause())
	}
	if p.is(LIMIT) {
		n.Add(p.parseLimitClause())
	}
	return n
}

func (p *Parser) parseHandlerReadOrScan() *ast.Rule {
	if p.isAny(FIRST, NEXT) && !p.isAnyAt(2, FIRST, NEXT, PREV, LAST, EQUAL_OPERATOR, LESS_THAN_OPERATOR,
		GREATER_THAN_OPERATOR, LESS_OR_EQUAL_OPERATOR, GREATER_OR_EQUAL_OPERATOR) {
		return rule("handlerReadOrScan", p.consume())
	}
	n := rule("handlerReadOrScan", p.parseIdentifier())
	switch p.la(1) {
	case FIRST, NEXT, PREV, LAST:
		n.Add(p.consume())
	case EQUAL_OPERATOR, LESS_THAN_OPERATOR, GREATER_THAN_OPERATOR, LESS_OR_EQUAL_OPERATOR, GREATER_OR_EQUAL_OPERATOR:
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseValues(), p.match(CLOSE_PAR))
	default:
		return p.fail("handlerReadOrScan")
	}
	return n
}
