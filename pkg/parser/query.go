package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Top level: the statement list and the simpleStatement dispatch.
//
// Grammar:
//
//	query                      → EOF | ";" ... | beginWork [";"] EOF | (simpleStatement [";"])* EOF
//	accountManagementStatement → alterUser | createUser | dropUser | grant | renameUser | revoke | setRole
//	resourceGroupManagement    → createResourceGroup | alterResourceGroup | setResourceGroup | dropResourceGroup
//
// Statements need no separator between them. BEGIN starts a transaction only
// as the first token of the input, and nothing but terminators may follow it.
// Terminators are consumed but not kept in the tree. Input made of nothing but
// terminators yields a query holding the EOF leaf.

// simpleStatementStarts holds every token simpleStatement dispatches on.
// Version gates are checked by the dispatch itself, so a gated token still
// counts as a start and fails inside simpleStatement.
var simpleStatementStarts = newTokenSet(
	ALTER, CREATE, DROP, RENAME, TRUNCATE, IMPORT,
	CALL, DELETE, DO, HANDLER, INSERT, REPLACE, UPDATE, LOAD, WITH, SELECT, OPEN_PAR, VALUES, TABLE,
	START, STOP, PURGE, CHANGE, RESET,
	COMMIT, SAVEPOINT, ROLLBACK, RELEASE, LOCK, UNLOCK, XA,
	PREPARE, EXECUTE, DEALLOCATE, CLONE,
	GRANT, REVOKE, SET, ANALYZE, CHECK, CHECKSUM, OPTIMIZE, REPAIR, INSTALL, UNINSTALL, SHOW,
	BINLOG, CACHE, FLUSH, KILL, SHUTDOWN,
	EXPLAIN, DESCRIBE, DESC, HELP, USE, RESTART, GET, SIGNAL, RESIGNAL,
)

func (p *Parser) isSimpleStatementStart() bool {
	return simpleStatementStarts.has(p.la(1))
}

func (p *Parser) parseQuery() *ast.Rule {
	n := rule("query")
	p.skipTerminators()

	if p.is(BEGIN) {
		n.Add(p.parseBeginWork())
		p.skipTerminators()
	} else {
		for p.isSimpleStatementStart() {
			stmt := p.parseSimpleStatement()
			p.logger.Debug("parsed statement", "kind", stmt.Name, "line", p.peek().Pos.Line)
			n.Add(stmt)
			p.skipTerminators()
		}
	}

	if !p.is(EOF) {
		return p.failToken()
	}
	if len(n.Children) == 0 {
		n.Add(p.consume())
	}
	return n
}

func (p *Parser) skipTerminators() {
	for p.is(SEMICOLON) {
		p.consume()
	}
}

// parseSimpleStatement returns the node of the statement itself; there is no
// simpleStatement wrapper in the tree.
func (p *Parser) parseSimpleStatement() *ast.Rule {
	switch p.la(1) {
	// DDL, plus the account and resource group forms sharing its keywords.
	case ALTER:
		switch {
		case p.la(2) == USER && p.version >= 50606:
			return rule("accountManagementStatement", p.parseAlterUser())
		case p.la(2) == RESOURCE && p.version >= 80000:
			return rule("resourceGroupManagement", p.parseAlterResourceGroup())
		}
		return p.parseAlterStatement()
	case CREATE:
		switch {
		case p.la(2) == USER:
			return rule("accountManagementStatement", p.parseCreateUser())
		case p.la(2) == RESOURCE && p.version >= 80000:
			return rule("resourceGroupManagement", p.parseCreateResourceGroup())
		}
		return p.parseCreateStatement()
	case DROP:
		switch {
		case p.la(2) == USER:
			return rule("accountManagementStatement", p.parseDropUser())
		case p.la(2) == RESOURCE && p.version >= 80000:
			return rule("resourceGroupManagement", p.parseDropResourceGroup())
		case p.la(2) == PREPARE:
			return p.parsePreparedStatement()
		}
		return p.parseDropStatement()
	case RENAME:
		if p.la(2) == USER {
			return rule("accountManagementStatement", p.parseRenameUser())
		}
		return p.parseRenameTableStatement()
	case TRUNCATE:
		return p.parseTruncateTableStatement()
	case IMPORT:
		if p.version < 80000 {
			return p.fail("simpleStatement")
		}
		return p.parseImportStatement()

	// DML
	case CALL:
		return p.parseCallStatement()
	case DELETE:
		return p.parseDeleteStatement()
	case DO:
		return p.parseDoStatement()
	case HANDLER:
		return p.parseHandlerStatement()
	case INSERT:
		return p.parseInsertStatement()
	case REPLACE:
		return p.parseReplaceStatement()
	case UPDATE:
		return p.parseUpdateStatement()
	case LOAD:
		switch {
		case p.la(2) == INDEX:
			return p.parseOtherAdministrativeStatement()
		case p.la(2) == TABLE, p.la(2) == DATA && p.la(3) == FROM:
			return p.parseReplicationStatement()
		}
		return p.parseLoadStatement()
	case WITH:
		if p.version < 80000 {
			return p.fail("simpleStatement")
		}
		return p.parseWithStatement()
	case SELECT, OPEN_PAR, VALUES, TABLE:
		if !p.isSelectStart() {
			return p.fail("simpleStatement")
		}
		return p.parseSelectStatement()

	// Transactions and replication.
	case START:
		if p.la(2) == TRANSACTION {
			return p.parseTransactionOrLockingStatement()
		}
		return p.parseReplicationStatement()
	case STOP, PURGE, CHANGE, RESET:
		return p.parseReplicationStatement()
	case COMMIT, SAVEPOINT, ROLLBACK, RELEASE, LOCK, UNLOCK, XA:
		return p.parseTransactionOrLockingStatement()
	case PREPARE, EXECUTE, DEALLOCATE:
		return p.parsePreparedStatement()
	case CLONE:
		if p.version < 80000 {
			return p.fail("simpleStatement")
		}
		return p.parseCloneStatement()

	// Administration.
	case GRANT:
		return rule("accountManagementStatement", p.parseGrant())
	case REVOKE:
		return rule("accountManagementStatement", p.parseRevoke())
	case SET:
		return p.parseSetFamily()
	case ANALYZE, CHECK, CHECKSUM, OPTIMIZE, REPAIR:
		return p.parseTableAdministrationStatement()
	case INSTALL, UNINSTALL:
		return p.parseInstallUninstallStatement()
	case SHOW:
		return p.parseShowStatement()
	case BINLOG, CACHE, FLUSH, KILL, SHUTDOWN:
		return p.parseOtherAdministrativeStatement()

	// Utility.
	case EXPLAIN, DESCRIBE, DESC, HELP, USE, RESTART:
		return p.parseUtilityStatement()
	case GET:
		if p.version < 50604 {
			return p.fail("simpleStatement")
		}
		return p.parseGetDiagnostics()
	case SIGNAL:
		return p.parseSignalStatement()
	case RESIGNAL:
		return p.parseResignalStatement()
	}
	return p.fail("simpleStatement")
}

// parseSetFamily separates SET ROLE and SET RESOURCE GROUP from ordinary
// variable assignment.
func (p *Parser) parseSetFamily() *ast.Rule {
	if p.version >= 80000 {
		switch {
		case p.la(2) == ROLE, p.la(2) == DEFAULT && p.la(3) == ROLE:
			return rule("accountManagementStatement", p.parseSetRole())
		case p.la(2) == RESOURCE:
			return rule("resourceGroupManagement", p.parseSetResourceGroup())
		}
	}
	return p.parseSetStatement()
}

// parseWithStatement parses the common table expressions first and then
// picks the statement they belong to.
func (p *Parser) parseWithStatement() *ast.Rule {
	with := p.parseWithClause()
	switch p.la(1) {
	case UPDATE:
		return p.parseUpdateStatementWith(with)
	case DELETE:
		return p.parseDeleteStatementWith(with)
	}
	return p.finishSelectStatement(p.parseQueryExpressionWith(with))
}
