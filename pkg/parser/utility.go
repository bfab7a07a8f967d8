package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Prepared statements, utility commands and diagnostics.
//
// Grammar:
//
//	preparedStatement    → PREPARE identifier FROM (textLiteral | userVariable)
//	                     | executeStatement
//	                     | (DEALLOCATE | DROP) PREPARE identifier
//	executeStatement     → EXECUTE identifier [USING userVariable ("," userVariable)*]
//	utilityStatement     → describeStatement | explainStatement | helpCommand | useCommand | restartServer
//	describeStatement    → (EXPLAIN | DESCRIBE | DESC) tableRef [textString | columnRef]
//	explainStatement     → (EXPLAIN | DESCRIBE | DESC) [EXTENDED | PARTITIONS | FORMAT "=" textOrIdentifier | ANALYZE]
//	                       explainableStatement
//	getDiagnostics       → GET [CURRENT | STACKED] DIAGNOSTICS
//	                       ( statementInformationItem ("," statementInformationItem)*
//	                       | CONDITION signalAllowedExpr conditionInformationItem ("," conditionInformationItem)* )
//	signalStatement      → SIGNAL (identifier | sqlstate) [SET signalInformationItem ("," signalInformationItem)*]
//	resignalStatement    → RESIGNAL [identifier | sqlstate] [SET signalInformationItem ("," signalInformationItem)*]

// ---------- Prepared statements ----------

func (p *Parser) parsePreparedStatement() *ast.Rule {
	n := rule("preparedStatement")
	switch p.la(1) {
	case PREPARE:
		n.Add(p.consume(), p.parseIdentifier(), p.match(FROM))
		if p.isUserVariableStart() {
			n.Add(p.parseUserVariable())
		} else {
			n.Add(p.parseTextLiteral())
		}
	case EXECUTE:
		n.Add(p.parseExecuteStatement())
	case DEALLOCATE, DROP:
		n.Add(p.consume(), p.match(PREPARE), p.parseIdentifier())
	default:
		return p.fail("preparedStatement")
	}
	return n
}

func (p *Parser) parseExecuteStatement() *ast.Rule {
	n := rule("executeStatement", p.match(EXECUTE), p.parseIdentifier())
	if p.is(USING) {
		n.Add(p.consume())
		list := rule("executeVarList", p.parseUserVariable())
		for p.is(COMMA) {
			list.Add(p.consume(), p.parseUserVariable())
		}
		n.Add(list)
	}
	return n
}

// ---------- DESCRIBE / EXPLAIN / HELP / USE ----------

func (p *Parser) parseUtilityStatement() *ast.Rule {
	n := rule("utilityStatement")
	switch p.la(1) {
	case EXPLAIN, DESCRIBE, DESC:
		if p.isExplainTail(2) {
			n.Add(p.parseExplainStatement())
		} else {
			n.Add(p.parseDescribeStatement())
		}
	case HELP:
		n.Add(rule("helpCommand", p.consume(), p.parseTextOrIdentifier()))
	case USE:
		n.Add(rule("useCommand", p.consume(), p.parseIdentifier()))
	case RESTART:
		if p.version < 80011 {
			return p.fail("utilityStatement")
		}
		n.Add(p.parseRestartServer())
	default:
		return p.fail("utilityStatement")
	}
	return n
}

// isExplainTail reports whether the tokens at i start an explain option or an
// explainable statement rather than a table name.
func (p *Parser) isExplainTail(i int) bool {
	switch p.la(i) {
	case SELECT, OPEN_PAR:
		return true
	case WITH:
		return p.version >= 80000
	case TABLE, VALUES:
		return p.version >= 80019
	case DELETE, INSERT, REPLACE, UPDATE:
		return p.version >= 50603
	case FOR:
		return p.version >= 50700 && p.la(i+1) == CONNECTION
	case EXTENDED, PARTITIONS:
		return p.version < 80000 && p.isExplainTail(i+1)
	case FORMAT:
		return p.version >= 50605 && p.la(i+1) == EQUAL_OPERATOR
	case ANALYZE:
		return p.version >= 80018
	}
	return false
}

func (p *Parser) parseDescribeStatement() *ast.Rule {
	n := rule("describeStatement", p.matchAny("describeStatement", EXPLAIN, DESCRIBE, DESC), p.parseTableRef())
	switch {
	case p.isTextStringLiteralStart() || p.isAny(HEX_NUMBER, BIN_NUMBER):
		n.Add(p.parseTextString())
	case p.isIdentifierStart():
		n.Add(p.parseColumnRef())
	}
	return n
}

func (p *Parser) parseExplainStatement() *ast.Rule {
	n := rule("explainStatement", p.matchAny("explainStatement", EXPLAIN, DESCRIBE, DESC))
	switch {
	case p.isAny(EXTENDED, PARTITIONS) && p.version < 80000:
		n.Add(p.consume())
	case p.is(FORMAT) && p.version >= 50605:
		n.Add(p.consume(), p.match(EQUAL_OPERATOR), p.parseTextOrIdentifier())
	case p.is(ANALYZE) && p.version >= 80018:
		n.Add(p.consume())
	}
	n.Add(p.parseExplainableStatement())
	return n
}

func (p *Parser) parseExplainableStatement() *ast.Rule {
	n := rule("explainableStatement")
	switch {
	case p.isSelectStart():
		n.Add(p.parseSelectStatement())
	case p.version >= 50603 && p.is(DELETE):
		n.Add(p.parseDeleteStatement())
	case p.version >= 50603 && p.is(INSERT):
		n.Add(p.parseInsertStatement())
	case p.version >= 50603 && p.is(REPLACE):
		n.Add(p.parseReplaceStatement())
	case p.version >= 50603 && p.is(UPDATE):
		n.Add(p.parseUpdateStatement())
	case p.version >= 50700 && p.isSeq(FOR, CONNECTION):
		n.Add(p.consume(), p.consume(), p.parseRealUlongNumber())
	default:
		return p.fail("explainableStatement")
	}
	return n
}

// ---------- Diagnostics and signals ----------

func (p *Parser) parseGetDiagnostics() *ast.Rule {
	n := rule("getDiagnostics", p.match(GET), p.acceptAny(CURRENT, STACKED), p.match(DIAGNOSTICS))
	if p.is(CONDITION) {
		n.Add(p.consume(), p.parseSignalAllowedExpr(), p.parseConditionInformationItem())
		for p.is(COMMA) {
			n.Add(p.consume(), p.parseConditionInformationItem())
		}
		return n
	}
	n.Add(p.parseStatementInformationItem())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseStatementInformationItem())
	}
	return n
}

func (p *Parser) parseInformationTarget() ast.Node {
	if p.isAny(AT_SIGN, AT_TEXT_SUFFIX, AT_AT_SIGN) {
		return p.parseVariable()
	}
	return p.parseIdentifier()
}

func (p *Parser) parseStatementInformationItem() *ast.Rule {
	return rule("statementInformationItem", p.parseInformationTarget(), p.match(EQUAL_OPERATOR),
		p.matchAny("statementInformationItem", NUMBER, ROW_COUNT))
}

func (p *Parser) parseConditionInformationItem() *ast.Rule {
	n := rule("conditionInformationItem", p.parseInformationTarget(), p.match(EQUAL_OPERATOR))
	if p.is(RETURNED_SQLSTATE) {
		n.Add(p.consume())
	} else {
		n.Add(p.parseSignalInformationItemName())
	}
	return n
}

func (p *Parser) isSignalInformationItemName() bool {
	return p.isAny(CLASS_ORIGIN, SUBCLASS_ORIGIN, CONSTRAINT_CATALOG, CONSTRAINT_SCHEMA, CONSTRAINT_NAME,
		CATALOG_NAME, SCHEMA_NAME, TABLE_NAME, COLUMN_NAME, CURSOR_NAME, MESSAGE_TEXT, MYSQL_ERRNO)
}

func (p *Parser) parseSignalInformationItemName() *ast.Rule {
	if !p.isSignalInformationItemName() {
		return p.fail("signalInformationItemName")
	}
	return rule("signalInformationItemName", p.consume())
}

func (p *Parser) parseSignalAllowedExpr() *ast.Rule {
	switch {
	case p.isLiteralStart():
		return rule("signalAllowedExpr", p.parseLiteral())
	case p.isAny(AT_SIGN, AT_TEXT_SUFFIX, AT_AT_SIGN):
		return rule("signalAllowedExpr", p.parseVariable())
	}
	return rule("signalAllowedExpr", p.parseQualifiedIdentifier())
}

func (p *Parser) parseSignalStatement() *ast.Rule {
	n := rule("signalStatement", p.match(SIGNAL))
	if p.is(SQLSTATE) {
		n.Add(p.parseSqlstate())
	} else {
		n.Add(p.parseIdentifier())
	}
	p.addSignalInformation(n)
	return n
}

func (p *Parser) parseResignalStatement() *ast.Rule {
	n := rule("resignalStatement", p.match(RESIGNAL))
	switch {
	case p.is(SQLSTATE):
		n.Add(p.parseSqlstate())
	case !p.is(SET) && p.isIdentifierStart():
		n.Add(p.parseIdentifier())
	}
	p.addSignalInformation(n)
	return n
}

func (p *Parser) addSignalInformation(n *ast.Rule) {
	if !p.is(SET) {
		return
	}
	n.Add(p.consume(), p.parseSignalInformationItem())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseSignalInformationItem())
	}
}

func (p *Parser) parseSignalInformationItem() *ast.Rule {
	return rule("signalInformationItem", p.parseSignalInformationItemName(), p.match(EQUAL_OPERATOR),
		p.parseSignalAllowedExpr())
}

func (p *Parser) parseSqlstate() *ast.Rule {
	return rule("sqlstate", p.match(SQLSTATE), p.accept(VALUE), p.parseTextLiteral())
}
