package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// DROP, RENAME TABLE, TRUNCATE and IMPORT TABLE.
//
// Grammar:
//
//	dropStatement → DROP ( dropDatabase | dropEvent | dropFunction | dropProcedure | dropIndex
//	                | dropLogfileGroup | dropServer | dropTable | dropTableSpace | dropTrigger
//	                | dropView | dropRole | dropSpatialReference | dropUndoTablespace )
//	dropTable     → [TEMPORARY] (TABLE | TABLES) [ifExists] tableRefList [RESTRICT | CASCADE]
//	dropIndex     → INDEX indexRef ON tableRef [indexLockAndAlgorithm]
//	renameTableStatement → RENAME (TABLE | TABLES) renamePair ("," renamePair)*

func (p *Parser) parseDropStatement() *ast.Rule {
	n := rule("dropStatement", p.match(DROP))
	switch p.la(1) {
	case DATABASE:
		n.Add(p.parseDropNamed("dropDatabase", p.parseSchemaRef))
	case EVENT:
		n.Add(p.parseDropNamed("dropEvent", p.parseEventRef))
	case FUNCTION:
		n.Add(p.parseDropNamed("dropFunction", p.parseFunctionRef))
	case PROCEDURE:
		n.Add(p.parseDropNamed("dropProcedure", p.parseProcedureRef))
	case TRIGGER:
		n.Add(p.parseDropNamed("dropTrigger", p.parseTriggerRef))
	case SERVER:
		n.Add(p.parseDropNamed("dropServer", p.parseServerRef))
	case INDEX:
		n.Add(p.parseDropIndex())
	case LOGFILE:
		r := rule("dropLogfileGroup", p.consume(), p.match(GROUP), p.parseLogfileGroupRef())
		p.addDropLogfileGroupOptions(r)
		n.Add(r)
	case TABLE, TABLES, TEMPORARY:
		n.Add(p.parseDropTable())
	case TABLESPACE:
		r := rule("dropTableSpace", p.consume(), p.parseTablespaceRef())
		p.addDropLogfileGroupOptions(r)
		n.Add(r)
	case VIEW:
		r := rule("dropView", p.consume())
		if p.isSeq(IF, EXISTS) {
			r.Add(p.parseIfExists())
		}
		r.Add(p.parseViewRefList(), p.acceptAny(RESTRICT, CASCADE))
		n.Add(r)
	case ROLE:
		if p.version < 80000 {
			return p.fail("dropStatement")
		}
		r := rule("dropRole", p.consume())
		if p.isSeq(IF, EXISTS) {
			r.Add(p.parseIfExists())
		}
		r.Add(p.parseRoleList())
		n.Add(r)
	case SPATIAL:
		if p.version < 80011 {
			return p.fail("dropStatement")
		}
		r := rule("dropSpatialReference", p.consume(), p.match(REFERENCE), p.match(SYSTEM))
		if p.isSeq(IF, EXISTS) {
			r.Add(p.parseIfExists())
		}
		r.Add(p.parseRealUlonglongNumber())
		n.Add(r)
	case UNDO:
		if p.version < 80014 {
			return p.fail("dropStatement")
		}
		r := rule("dropUndoTablespace", p.consume(), p.match(TABLESPACE), p.parseTablespaceRef())
		if p.isAny(STORAGE, ENGINE) {
			r.Add(p.parseUndoTableSpaceOptions())
		}
		n.Add(r)
	default:
		return p.fail("dropStatement")
	}
	return n
}

// parseDropNamed parses the common "KEYWORD [IF EXISTS] ref" shape.
func (p *Parser) parseDropNamed(name string, ref func() *ast.Rule) *ast.Rule {
	n := rule(name, p.consume())
	if p.isSeq(IF, EXISTS) {
		n.Add(p.parseIfExists())
	}
	n.Add(ref())
	return n
}

func (p *Parser) parseDropIndex() *ast.Rule {
	n := rule("dropIndex", p.match(INDEX), p.parseIndexRef(), p.match(ON), p.parseTableRef())
	if p.isAny(ALGORITHM, LOCK) {
		n.Add(p.parseIndexLockAndAlgorithm())
	}
	return n
}

func (p *Parser) parseDropTable() *ast.Rule {
	n := rule("dropTable", p.accept(TEMPORARY), p.matchAny("dropTable", TABLE, TABLES))
	if p.isSeq(IF, EXISTS) {
		n.Add(p.parseIfExists())
	}
	n.Add(p.parseTableRefList(), p.acceptAny(RESTRICT, CASCADE))
	return n
}

func (p *Parser) isDropLogfileGroupOptionStart(i int) bool {
	switch p.la(i) {
	case WAIT, NO_WAIT, ENGINE:
		return true
	case STORAGE:
		return p.la(i+1) == ENGINE
	}
	return false
}

func (p *Parser) addDropLogfileGroupOptions(n *ast.Rule) {
	if !p.isDropLogfileGroupOptionStart(1) {
		return
	}
	n.Add(rule("dropLogfileGroupOption", p.parseTablespaceOptionItem()))
	for p.isDropLogfileGroupOptionStart(1) || (p.is(COMMA) && p.isDropLogfileGroupOptionStart(2)) {
		n.Add(p.accept(COMMA), rule("dropLogfileGroupOption", p.parseTablespaceOptionItem()))
	}
}

// ---------- RENAME / TRUNCATE / IMPORT ----------

func (p *Parser) parseRenameTableStatement() *ast.Rule {
	n := rule("renameTableStatement", p.match(RENAME), p.matchAny("renameTableStatement", TABLE, TABLES),
		p.parseRenamePair())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseRenamePair())
	}
	return n
}

func (p *Parser) parseRenamePair() *ast.Rule {
	return rule("renamePair", p.parseTableRef(), p.match(TO), p.parseTableName())
}

func (p *Parser) parseTruncateTableStatement() *ast.Rule {
	return rule("truncateTableStatement", p.match(TRUNCATE), p.accept(TABLE), p.parseTableRef())
}

func (p *Parser) parseImportStatement() *ast.Rule {
	return rule("importStatement", p.match(IMPORT), p.match(TABLE), p.match(FROM), p.parseTextStringLiteralList())
}
