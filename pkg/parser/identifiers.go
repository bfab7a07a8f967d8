package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	"github.com/leapstack-labs/mysqlparse/pkg/lexer"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Identifier parsing: plain and quoted names, keyword-as-identifier
// classification, qualified names and the object name/reference rules.
//
// Grammar:
//
//	pureIdentifier   → IDENTIFIER | BACK_TICK_QUOTED_ID | DOUBLE_QUOTED_TEXT (ANSI_QUOTES)
//	identifier       → pureIdentifier | identifierKeyword
//	labelIdentifier  → pureIdentifier | labelKeyword
//	roleIdentifier   → pureIdentifier | roleKeyword
//	lValueIdentifier → pureIdentifier | lValueKeyword
//	qualifiedIdentifier → identifier [dotIdentifier]
//	dotIdentifier    → "." identifier
//	fieldIdentifier  → dotIdentifier | qualifiedIdentifier [dotIdentifier]
//	textOrIdentifier → identifier | textStringLiteral
//	user             → userIdentifierOrText | CURRENT_USER ["(" ")"]

// ---------- Classification ----------

// isPureIdentifierToken reports whether t is an identifier that is not a
// keyword.
func (p *Parser) isPureIdentifierToken(t TokenType) bool {
	switch t {
	case IDENTIFIER, BACK_TICK_QUOTED_ID:
		return true
	case DOUBLE_QUOTED_TEXT:
		return p.sqlMode(lexer.ANSIQuotes)
	}
	return false
}

// isIdentifierToken reports whether t can be an identifier.
func (p *Parser) isIdentifierToken(t TokenType) bool {
	return p.isPureIdentifierToken(t) || p.isIdentifierKeyword(t)
}

func (p *Parser) isIdentifierStart() bool {
	return p.isIdentifierToken(p.la(1))
}

func (p *Parser) isPureIdentifierStart() bool {
	return p.isPureIdentifierToken(p.la(1))
}

func (p *Parser) isLabelIdentifierStart() bool {
	t := p.la(1)
	return p.isPureIdentifierToken(t) || p.isLabelKeyword(t)
}

func (p *Parser) isRoleIdentifierStart() bool {
	t := p.la(1)
	return p.isPureIdentifierToken(t) || p.isRoleKeyword(t)
}

// isTextStringLiteralToken reports whether t is a quoted string literal.
// Double quotes are strings unless ANSI_QUOTES makes them identifiers.
func (p *Parser) isTextStringLiteralToken(t TokenType) bool {
	switch t {
	case SINGLE_QUOTED_TEXT:
		return true
	case DOUBLE_QUOTED_TEXT:
		return !p.sqlMode(lexer.ANSIQuotes)
	}
	return false
}

func (p *Parser) isTextStringLiteralStart() bool {
	return p.isTextStringLiteralToken(p.la(1))
}

func (p *Parser) isTextOrIdentifierStart() bool {
	return p.isIdentifierStart() || p.isTextStringLiteralStart()
}

// ---------- Identifiers ----------

func (p *Parser) parsePureIdentifier() *ast.Rule {
	if !p.isPureIdentifierStart() {
		return p.fail("pureIdentifier")
	}
	return rule("pureIdentifier", p.consume())
}

func (p *Parser) parseIdentifier() *ast.Rule {
	switch t := p.la(1); {
	case p.isPureIdentifierToken(t):
		return rule("identifier", p.parsePureIdentifier())
	case p.isIdentifierKeyword(t):
		return rule("identifier", rule("identifierKeyword", p.consume()))
	}
	return p.fail("identifier")
}

func (p *Parser) parseIdentifierList() *ast.Rule {
	n := rule("identifierList", p.parseIdentifier())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseIdentifier())
	}
	return n
}

func (p *Parser) parseIdentifierListWithParentheses() *ast.Rule {
	return rule("identifierListWithParentheses",
		p.match(OPEN_PAR), p.parseIdentifierList(), p.match(CLOSE_PAR))
}

func (p *Parser) parseLabelIdentifier() *ast.Rule {
	switch t := p.la(1); {
	case p.isPureIdentifierToken(t):
		return rule("labelIdentifier", p.parsePureIdentifier())
	case p.isLabelKeyword(t):
		return rule("labelIdentifier", rule("labelKeyword", p.consume()))
	}
	return p.fail("labelIdentifier")
}

func (p *Parser) parseLabelRef() *ast.Rule {
	return rule("labelRef", p.parseLabelIdentifier())
}

func (p *Parser) parseRoleIdentifier() *ast.Rule {
	switch t := p.la(1); {
	case p.isPureIdentifierToken(t):
		return rule("roleIdentifier", p.parsePureIdentifier())
	case p.isRoleKeyword(t):
		return rule("roleIdentifier", rule("roleKeyword", p.consume()))
	}
	return p.fail("roleIdentifier")
}

func (p *Parser) parseRoleIdentifierOrText() *ast.Rule {
	if p.isTextStringLiteralStart() {
		return rule("roleIdentifierOrText", p.parseTextStringLiteral())
	}
	return rule("roleIdentifierOrText", p.parseRoleIdentifier())
}

func (p *Parser) parseLValueIdentifier() *ast.Rule {
	switch t := p.la(1); {
	case p.isPureIdentifierToken(t):
		return rule("lValueIdentifier", p.parsePureIdentifier())
	case p.isLValueKeyword(t):
		return rule("lValueIdentifier", rule("lValueKeyword", p.consume()))
	}
	return p.fail("lValueIdentifier")
}

func (p *Parser) parseDotIdentifier() *ast.Rule {
	return rule("dotIdentifier", p.match(DOT), p.parseIdentifier())
}

func (p *Parser) parseQualifiedIdentifier() *ast.Rule {
	n := rule("qualifiedIdentifier", p.parseIdentifier())
	if p.is(DOT) {
		n.Add(p.parseDotIdentifier())
	}
	return n
}

// parseSimpleIdentifier parses up to three dotted parts. Servers before 8.0
// also accept a leading dot.
func (p *Parser) parseSimpleIdentifier() *ast.Rule {
	n := rule("simpleIdentifier")
	if p.is(DOT) && p.version < 80000 {
		n.Add(p.parseDotIdentifier(), p.parseDotIdentifier())
		return n
	}
	n.Add(p.parseIdentifier())
	if p.is(DOT) {
		n.Add(p.parseDotIdentifier())
		if p.is(DOT) {
			n.Add(p.parseDotIdentifier())
		}
	}
	return n
}

func (p *Parser) parseFieldIdentifier() *ast.Rule {
	if p.is(DOT) {
		return rule("fieldIdentifier", p.parseDotIdentifier())
	}
	n := rule("fieldIdentifier", p.parseQualifiedIdentifier())
	if p.is(DOT) {
		n.Add(p.parseDotIdentifier())
	}
	return n
}

func (p *Parser) parseTextOrIdentifier() *ast.Rule {
	if p.isTextStringLiteralStart() {
		return rule("textOrIdentifier", p.parseTextStringLiteral())
	}
	if p.isIdentifierStart() {
		return rule("textOrIdentifier", p.parseIdentifier())
	}
	return p.fail("textOrIdentifier")
}

// ---------- Object names and references ----------

// named wraps a single sub-production under an object-name rule such as
// schemaName or columnRef.
func named(name string, child ast.Node) *ast.Rule {
	return rule(name, child)
}

func (p *Parser) parseSchemaName() *ast.Rule { return named("schemaName", p.parseIdentifier()) }
func (p *Parser) parseSchemaRef() *ast.Rule  { return named("schemaRef", p.parseIdentifier()) }

func (p *Parser) parseProcedureName() *ast.Rule {
	return named("procedureName", p.parseQualifiedIdentifier())
}

func (p *Parser) parseProcedureRef() *ast.Rule {
	return named("procedureRef", p.parseQualifiedIdentifier())
}

func (p *Parser) parseFunctionName() *ast.Rule {
	return named("functionName", p.parseQualifiedIdentifier())
}

func (p *Parser) parseFunctionRef() *ast.Rule {
	return named("functionRef", p.parseQualifiedIdentifier())
}

func (p *Parser) parseTriggerName() *ast.Rule {
	return named("triggerName", p.parseQualifiedIdentifier())
}

func (p *Parser) parseTriggerRef() *ast.Rule {
	return named("triggerRef", p.parseQualifiedIdentifier())
}

func (p *Parser) parseEventName() *ast.Rule {
	return named("eventName", p.parseQualifiedIdentifier())
}

func (p *Parser) parseEventRef() *ast.Rule {
	return named("eventRef", p.parseQualifiedIdentifier())
}

// parseQualifiedOrDot covers the table and view name forms, which also
// accept a bare ".name".
func (p *Parser) parseQualifiedOrDot(name string) *ast.Rule {
	if p.is(DOT) {
		return named(name, p.parseDotIdentifier())
	}
	return named(name, p.parseQualifiedIdentifier())
}

func (p *Parser) parseTableName() *ast.Rule { return p.parseQualifiedOrDot("tableName") }
func (p *Parser) parseTableRef() *ast.Rule  { return p.parseQualifiedOrDot("tableRef") }
func (p *Parser) parseViewName() *ast.Rule  { return p.parseQualifiedOrDot("viewName") }
func (p *Parser) parseViewRef() *ast.Rule   { return p.parseQualifiedOrDot("viewRef") }

func (p *Parser) parseTableRefList() *ast.Rule {
	n := rule("tableRefList", p.parseTableRef())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseTableRef())
	}
	return n
}

func (p *Parser) parseViewRefList() *ast.Rule {
	n := rule("viewRefList", p.parseViewRef())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseViewRef())
	}
	return n
}

// parseTableRefWithWildcard parses the multi-table DELETE target forms
// t, t.* and db.t.*.
func (p *Parser) parseTableRefWithWildcard() *ast.Rule {
	n := rule("tableRefWithWildcard", p.parseIdentifier())
	if p.is(DOT) {
		if p.la(2) == MULT_OPERATOR {
			n.Add(p.consume(), p.consume())
			return n
		}
		n.Add(p.parseDotIdentifier())
		if p.is(DOT) {
			n.Add(p.consume(), p.match(MULT_OPERATOR))
		}
	}
	return n
}

func (p *Parser) parseTableAliasRefList() *ast.Rule {
	n := rule("tableAliasRefList", p.parseTableRefWithWildcard())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseTableRefWithWildcard())
	}
	return n
}

func (p *Parser) parseTablespaceName() *ast.Rule {
	return named("tablespaceName", p.parseIdentifier())
}

func (p *Parser) parseTablespaceRef() *ast.Rule {
	return named("tablespaceRef", p.parseIdentifier())
}

func (p *Parser) parseLogfileGroupName() *ast.Rule {
	return named("logfileGroupName", p.parseIdentifier())
}

func (p *Parser) parseLogfileGroupRef() *ast.Rule {
	return named("logfileGroupRef", p.parseIdentifier())
}

func (p *Parser) parseUdfName() *ast.Rule       { return named("udfName", p.parseIdentifier()) }
func (p *Parser) parseServerName() *ast.Rule    { return named("serverName", p.parseTextOrIdentifier()) }
func (p *Parser) parseServerRef() *ast.Rule     { return named("serverRef", p.parseTextOrIdentifier()) }
func (p *Parser) parseEngineRef() *ast.Rule     { return named("engineRef", p.parseTextOrIdentifier()) }
func (p *Parser) parsePluginRef() *ast.Rule     { return named("pluginRef", p.parseIdentifier()) }
func (p *Parser) parseParameterName() *ast.Rule { return named("parameterName", p.parseIdentifier()) }
func (p *Parser) parseWindowName() *ast.Rule    { return named("windowName", p.parseIdentifier()) }
func (p *Parser) parseIndexName() *ast.Rule     { return named("indexName", p.parseIdentifier()) }
func (p *Parser) parseIndexRef() *ast.Rule      { return named("indexRef", p.parseFieldIdentifier()) }
func (p *Parser) parseColumnRef() *ast.Rule     { return named("columnRef", p.parseFieldIdentifier()) }

func (p *Parser) parseComponentRef() *ast.Rule {
	return named("componentRef", p.parseTextStringLiteral())
}

func (p *Parser) parseResourceGroupRef() *ast.Rule {
	return named("resourceGroupRef", p.parseIdentifier())
}

func (p *Parser) parseFilterTableRef() *ast.Rule {
	return rule("filterTableRef", p.parseSchemaRef(), p.parseDotIdentifier())
}

func (p *Parser) parseFilterTableList() *ast.Rule {
	n := rule("filterTableList", p.parseFilterTableRef())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseFilterTableRef())
	}
	return n
}

// parseColumnName parses a column being defined. Before 8.0 the name may be
// qualified.
func (p *Parser) parseColumnName() *ast.Rule {
	if p.version >= 80000 {
		return named("columnName", p.parseIdentifier())
	}
	return named("columnName", p.parseFieldIdentifier())
}

func (p *Parser) parseColumnInternalRef() *ast.Rule {
	return named("columnInternalRef", p.parseIdentifier())
}

func (p *Parser) parseColumnInternalRefList() *ast.Rule {
	n := rule("columnInternalRefList", p.match(OPEN_PAR), p.parseColumnInternalRef())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseColumnInternalRef())
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

// parseTableWild parses t.* or db.t.*.
func (p *Parser) parseTableWild() *ast.Rule {
	n := rule("tableWild", p.parseIdentifier(), p.match(DOT))
	if p.isIdentifierStart() {
		n.Add(p.parseIdentifier(), p.match(DOT))
	}
	n.Add(p.match(MULT_OPERATOR))
	return n
}

// isTableWildStart reports whether the input starts with t.* or db.t.*.
func (p *Parser) isTableWildStart() bool {
	if !p.isIdentifierStart() || p.la(2) != DOT {
		return false
	}
	if p.la(3) == MULT_OPERATOR {
		return true
	}
	return p.isIdentifierToken(p.la(3)) && p.la(4) == DOT && p.la(5) == MULT_OPERATOR
}

// ---------- Users and variables ----------

func (p *Parser) parseUserIdentifierOrText() *ast.Rule {
	n := rule("userIdentifierOrText", p.parseTextOrIdentifier())
	switch {
	case p.is(AT_SIGN):
		n.Add(p.consume(), p.parseTextOrIdentifier())
	case p.is(AT_TEXT_SUFFIX):
		n.Add(p.consume())
	}
	return n
}

func (p *Parser) parseUser() *ast.Rule {
	if p.is(CURRENT_USER) {
		n := rule("user", p.consume())
		if p.isSeq(OPEN_PAR, CLOSE_PAR) {
			n.Add(p.parseParentheses())
		}
		return n
	}
	return rule("user", p.parseUserIdentifierOrText())
}

func (p *Parser) parseUserList() *ast.Rule {
	n := rule("userList", p.parseUser())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseUser())
	}
	return n
}

func (p *Parser) parseUserVariable() *ast.Rule {
	switch {
	case p.is(AT_SIGN):
		return rule("userVariable", p.consume(), p.parseTextOrIdentifier())
	case p.is(AT_TEXT_SUFFIX):
		return rule("userVariable", p.consume())
	}
	return p.fail("userVariable")
}

func (p *Parser) isUserVariableStart() bool {
	return p.isAny(AT_SIGN, AT_TEXT_SUFFIX)
}

// ---------- Small shared productions ----------

func (p *Parser) parseParentheses() *ast.Rule {
	return rule("parentheses", p.match(OPEN_PAR), p.match(CLOSE_PAR))
}

func (p *Parser) parseEqual() *ast.Rule {
	return rule("equal", p.matchAny("equal", EQUAL_OPERATOR, ASSIGN_OPERATOR))
}

func (p *Parser) isEqual() bool {
	return p.isAny(EQUAL_OPERATOR, ASSIGN_OPERATOR)
}

func (p *Parser) parseOptionType() *ast.Rule {
	return rule("optionType", p.matchAny("optionType", PERSIST, PERSIST_ONLY, GLOBAL, LOCAL, SESSION))
}

func (p *Parser) parseVarIdentType() *ast.Rule {
	return rule("varIdentType", p.matchAny("varIdentType", GLOBAL, LOCAL, SESSION), p.match(DOT))
}

func (p *Parser) parseSetVarIdentType() *ast.Rule {
	return rule("setVarIdentType",
		p.matchAny("setVarIdentType", PERSIST, PERSIST_ONLY, GLOBAL, LOCAL, SESSION), p.match(DOT))
}

// parseSizeNumber parses a plain number or a suffixed size such as 10M,
// which lexes as an identifier.
func (p *Parser) parseSizeNumber() *ast.Rule {
	if p.isPureIdentifierStart() {
		return rule("sizeNumber", p.parsePureIdentifier())
	}
	return rule("sizeNumber", p.parseRealUlonglongNumber())
}

func (p *Parser) parseNoWriteToBinLog() *ast.Rule {
	return rule("noWriteToBinLog", p.matchAny("noWriteToBinLog", LOCAL, NO_WRITE_TO_BINLOG))
}

func (p *Parser) parseUsePartition() *ast.Rule {
	return rule("usePartition", p.match(PARTITION), p.parseIdentifierListWithParentheses())
}

func (p *Parser) isUsePartitionStart() bool {
	return p.is(PARTITION) && p.version >= 50602
}

func (p *Parser) parseLikeClause() *ast.Rule {
	return rule("likeClause", p.match(LIKE), p.parseTextStringLiteral())
}

func (p *Parser) parseLikeOrWhere() *ast.Rule {
	if p.is(LIKE) {
		return rule("likeOrWhere", p.parseLikeClause())
	}
	return rule("likeOrWhere", p.parseWhereClause())
}

// parseLikeOrWhereOpt parses an optional LIKE or WHERE suffix of SHOW.
func (p *Parser) parseLikeOrWhereOpt() *ast.Rule {
	if p.isAny(LIKE, WHERE) {
		return p.parseLikeOrWhere()
	}
	return nil
}

func (p *Parser) parseNoWriteToBinLogOpt() *ast.Rule {
	if !p.isAny(LOCAL, NO_WRITE_TO_BINLOG) {
		return nil
	}
	return p.parseNoWriteToBinLog()
}
