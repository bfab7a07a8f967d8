package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// ALTER statements for schema objects. ALTER USER and ALTER RESOURCE GROUP
// are dispatched separately from query.go.
//
// Grammar:
//
//	alterStatement    → ALTER ( alterTable | alterDatabase | PROCEDURE procedureRef [routineAlterOptions]
//	                    | FUNCTION functionRef [routineAlterOptions] | alterView | alterEvent
//	                    | alterTablespace | alterUndoTablespace | alterLogfileGroup | alterServer
//	                    | INSTANCE ROTATE textOrIdentifier MASTER KEY )
//	alterTable        → [IGNORE] TABLE tableRef [alterTableActions]
//	alterTableActions → alterCommandList [partitionClause | removePartitioning]
//	                  | partitionClause | removePartitioning
//	                  | [alterCommandsModifierList ","] standaloneAlterCommands
//	alterCommandList  → alterCommandsModifierList | [alterCommandsModifierList ","] alterList
//	alterList         → (alterListItem | createTableOptionsSpaceSeparated)
//	                    ("," (alterListItem | alterCommandsModifier | createTableOptionsSpaceSeparated))*

func (p *Parser) parseAlterStatement() *ast.Rule {
	n := rule("alterStatement", p.match(ALTER))
	switch p.la(1) {
	case TABLE:
		n.Add(p.parseAlterTable())
	case IGNORE:
		if p.version >= 50700 {
			return p.fail("alterStatement")
		}
		n.Add(p.parseAlterTable())
	case DATABASE:
		n.Add(p.parseAlterDatabase())
	case PROCEDURE:
		n.Add(p.consume(), p.parseProcedureRef())
		if p.isRoutineCreateOptionStart() {
			n.Add(p.parseRoutineAlterOptions())
		}
	case FUNCTION:
		n.Add(p.consume(), p.parseFunctionRef())
		if p.isRoutineCreateOptionStart() {
			n.Add(p.parseRoutineAlterOptions())
		}
	case EVENT:
		n.Add(p.parseAlterEvent(nil))
	case VIEW, ALGORITHM, SQL:
		n.Add(p.parseAlterView(nil))
	case DEFINER:
		def := p.parseDefinerClause()
		if p.is(EVENT) {
			n.Add(p.parseAlterEvent(def))
		} else {
			n.Add(p.parseAlterView(def))
		}
	case TABLESPACE:
		n.Add(p.parseAlterTablespace())
	case UNDO:
		if p.version < 80014 {
			return p.fail("alterStatement")
		}
		n.Add(p.parseAlterUndoTablespace())
	case LOGFILE:
		n.Add(p.parseAlterLogfileGroup())
	case SERVER:
		n.Add(p.consume(), p.parseServerRef(), p.parseServerOptions())
	case INSTANCE:
		if p.version < 50713 {
			return p.fail("alterStatement")
		}
		n.Add(p.consume(), p.match(ROTATE), p.parseTextOrIdentifier(), p.match(MASTER), p.match(KEY))
	default:
		return p.fail("alterStatement")
	}
	return n
}

func (p *Parser) parseAlterDatabase() *ast.Rule {
	n := rule("alterDatabase", p.match(DATABASE))
	if p.isIdentifierStart() && !p.isCreateDatabaseOptionStart() && !(p.is(UPGRADE) && p.version < 80000) {
		n.Add(p.parseSchemaRef())
	}
	if p.is(UPGRADE) && p.version < 80000 {
		n.Add(p.consume(), p.match(DATA), p.match(DIRECTORY), p.match(NAME))
		return n
	}
	if !p.isCreateDatabaseOptionStart() {
		return p.fail("alterDatabase")
	}
	for p.isCreateDatabaseOptionStart() {
		n.Add(p.parseCreateDatabaseOption())
	}
	return n
}

func (p *Parser) parseAlterEvent(def *ast.Rule) *ast.Rule {
	n := rule("alterEvent", def, p.match(EVENT), p.parseEventRef())
	if p.isSeq(ON, SCHEDULE) {
		n.Add(p.consume(), p.consume(), p.parseSchedule())
	}
	if p.isSeq(ON, COMPLETION) {
		n.Add(p.consume(), p.consume(), p.accept(NOT), p.match(PRESERVE))
	}
	if p.isSeq(RENAME, TO) {
		n.Add(p.consume(), p.consume(), p.parseIdentifier())
	}
	p.addEventStatus(n)
	if p.is(COMMENT) {
		n.Add(p.consume(), p.parseTextLiteral())
	}
	if p.is(DO) {
		n.Add(p.consume(), p.parseCompoundStatement())
	}
	return n
}

func (p *Parser) parseAlterLogfileGroup() *ast.Rule {
	n := rule("alterLogfileGroup", p.match(LOGFILE), p.match(GROUP), p.parseLogfileGroupRef(),
		p.match(ADD), p.match(UNDOFILE), p.parseTextLiteral())
	if p.isAny(INITIAL_SIZE, STORAGE, ENGINE, WAIT, NO_WAIT) {
		opts := rule("alterLogfileGroupOptions")
		for {
			if p.is(COMMA) && p.isAnyAt(2, INITIAL_SIZE, STORAGE, ENGINE, WAIT, NO_WAIT) {
				opts.Add(p.consume())
			} else if !p.isAny(INITIAL_SIZE, STORAGE, ENGINE, WAIT, NO_WAIT) {
				break
			}
			opts.Add(rule("alterLogfileGroupOption", p.parseTablespaceOptionItem()))
		}
		n.Add(opts)
	}
	return n
}

func (p *Parser) parseAlterView(def *ast.Rule) *ast.Rule {
	n := rule("alterView")
	if def == nil {
		if p.is(ALGORITHM) {
			n.Add(p.parseViewAlgorithm())
		}
		if p.is(DEFINER) {
			n.Add(p.parseDefinerClause())
		}
	} else {
		n.Add(def)
	}
	if p.is(SQL) {
		n.Add(p.parseViewSuid())
	}
	n.Add(p.match(VIEW), p.parseViewRef(), p.parseViewTail())
	return n
}

// ---------- ALTER TABLE ----------

func (p *Parser) parseAlterTable() *ast.Rule {
	n := rule("alterTable")
	if p.is(IGNORE) && p.version < 50700 {
		n.Add(p.consume())
	}
	n.Add(p.match(TABLE), p.parseTableRef())
	if !p.isStatementEnd() {
		n.Add(p.parseAlterTableActions())
	}
	return n
}

// isStatementEnd reports whether the current statement has no more input.
func (p *Parser) isStatementEnd() bool {
	return p.isAny(EOF, SEMICOLON)
}

func (p *Parser) parseAlterTableActions() *ast.Rule {
	n := rule("alterTableActions")
	switch {
	case p.isSeq(PARTITION, BY):
		n.Add(p.parsePartitionClause())
		return n
	case p.isSeq(REMOVE, PARTITIONING):
		n.Add(p.parseRemovePartitioning())
		return n
	case p.isStandaloneAlterCommandStart(1):
		n.Add(p.parseStandaloneAlterCommands())
		return n
	}

	if p.isAlterCommandsModifierStart(1) {
		mods := p.parseAlterCommandsModifierList()
		if !p.is(COMMA) {
			n.Add(rule("alterCommandList", mods))
			return p.finishAlterTableActions(n)
		}
		if p.isStandaloneAlterCommandStart(2) {
			n.Add(mods, p.consume(), p.parseStandaloneAlterCommands())
			return n
		}
		n.Add(rule("alterCommandList", mods, p.consume(), p.parseAlterList()))
		return p.finishAlterTableActions(n)
	}

	n.Add(rule("alterCommandList", p.parseAlterList()))
	return p.finishAlterTableActions(n)
}

func (p *Parser) finishAlterTableActions(n *ast.Rule) *ast.Rule {
	switch {
	case p.isSeq(PARTITION, BY):
		n.Add(p.parsePartitionClause())
	case p.isSeq(REMOVE, PARTITIONING):
		n.Add(p.parseRemovePartitioning())
	}
	return n
}

func (p *Parser) parseRemovePartitioning() *ast.Rule {
	return rule("removePartitioning", p.match(REMOVE), p.match(PARTITIONING))
}

// isAlterCommandsModifierStart checks for ALGORITHM, LOCK or a validation
// clause at lookahead position i.
func (p *Parser) isAlterCommandsModifierStart(i int) bool {
	switch p.la(i) {
	case ALGORITHM, LOCK:
		return true
	case WITH, WITHOUT:
		return p.version >= 50706 && p.la(i+1) == VALIDATION
	}
	return false
}

func (p *Parser) parseAlterCommandsModifierList() *ast.Rule {
	n := rule("alterCommandsModifierList", p.parseAlterCommandsModifier())
	for p.is(COMMA) && p.isAlterCommandsModifierStart(2) {
		n.Add(p.consume(), p.parseAlterCommandsModifier())
	}
	return n
}

func (p *Parser) parseAlterCommandsModifier() *ast.Rule {
	switch p.la(1) {
	case ALGORITHM:
		return rule("alterCommandsModifier", p.parseAlterAlgorithmOption())
	case LOCK:
		return rule("alterCommandsModifier", p.parseAlterLockOption())
	}
	return rule("alterCommandsModifier", p.parseWithValidation())
}

func (p *Parser) parseAlterAlgorithmOption() *ast.Rule {
	n := rule("alterAlgorithmOption", p.match(ALGORITHM), p.accept(EQUAL_OPERATOR))
	if p.is(DEFAULT) {
		n.Add(p.consume())
	} else {
		n.Add(p.parseIdentifier())
	}
	return n
}

func (p *Parser) parseAlterLockOption() *ast.Rule {
	n := rule("alterLockOption", p.match(LOCK), p.accept(EQUAL_OPERATOR))
	if p.is(DEFAULT) {
		n.Add(p.consume())
	} else {
		n.Add(p.parseIdentifier())
	}
	return n
}

func (p *Parser) parseWithValidation() *ast.Rule {
	if p.version < 50706 {
		return p.fail("withValidation")
	}
	return rule("withValidation", p.matchAny("withValidation", WITH, WITHOUT), p.match(VALIDATION))
}

// parseIndexLockAndAlgorithm parses the ALGORITHM and LOCK options of
// CREATE INDEX and DROP INDEX, in either order.
func (p *Parser) parseIndexLockAndAlgorithm() *ast.Rule {
	if p.is(ALGORITHM) {
		n := rule("indexLockAndAlgorithm", p.parseAlterAlgorithmOption())
		if p.is(LOCK) {
			n.Add(p.parseAlterLockOption())
		}
		return n
	}
	n := rule("indexLockAndAlgorithm", p.parseAlterLockOption())
	if p.is(ALGORITHM) {
		n.Add(p.parseAlterAlgorithmOption())
	}
	return n
}

// isStandaloneAlterCommandStart checks for a partition maintenance or
// tablespace command at lookahead position i.
func (p *Parser) isStandaloneAlterCommandStart(i int) bool {
	switch p.la(i) {
	case DISCARD, IMPORT:
		switch p.la(i + 1) {
		case TABLESPACE:
			return true
		case PARTITION:
			return p.version >= 50704
		}
		return false
	case ADD, DROP, REBUILD, OPTIMIZE, ANALYZE, CHECK, REPAIR, COALESCE, TRUNCATE, REORGANIZE, EXCHANGE:
		return p.la(i+1) == PARTITION
	case SECONDARY_LOAD, SECONDARY_UNLOAD:
		return p.version >= 80014
	}
	return false
}

func (p *Parser) parseStandaloneAlterCommands() *ast.Rule {
	switch {
	case p.isAny(DISCARD, IMPORT) && p.la(2) == TABLESPACE:
		return rule("standaloneAlterCommands", p.consume(), p.consume())
	case p.isAny(SECONDARY_LOAD, SECONDARY_UNLOAD):
		return rule("standaloneAlterCommands", p.consume())
	}
	return rule("standaloneAlterCommands", p.parseAlterPartition())
}

func (p *Parser) parseAlterPartition() *ast.Rule {
	n := rule("alterPartition")
	op := p.la(1)
	n.Add(p.consume(), p.match(PARTITION))
	switch op {
	case ADD:
		if p.isAny(LOCAL, NO_WRITE_TO_BINLOG) {
			n.Add(p.parseNoWriteToBinLog())
		}
		if p.is(PARTITIONS) {
			n.Add(p.consume(), p.parseRealUlongNumber())
		} else {
			n.Add(p.parsePartitionDefinitions())
		}
	case DROP:
		n.Add(p.parseIdentifierList())
	case REBUILD, ANALYZE:
		if p.isAny(LOCAL, NO_WRITE_TO_BINLOG) {
			n.Add(p.parseNoWriteToBinLog())
		}
		n.Add(p.parseAllOrPartitionNameList())
	case OPTIMIZE:
		if p.isAny(LOCAL, NO_WRITE_TO_BINLOG) {
			n.Add(p.parseNoWriteToBinLog())
		}
		n.Add(p.parseAllOrPartitionNameList())
		if p.isAny(LOCAL, NO_WRITE_TO_BINLOG) {
			n.Add(p.parseNoWriteToBinLog())
		}
	case CHECK:
		n.Add(p.parseAllOrPartitionNameList())
		for p.isCheckOptionStart() {
			n.Add(p.parseCheckOption())
		}
	case REPAIR:
		if p.isAny(LOCAL, NO_WRITE_TO_BINLOG) {
			n.Add(p.parseNoWriteToBinLog())
		}
		n.Add(p.parseAllOrPartitionNameList())
		for p.isAny(QUICK, EXTENDED, USE_FRM) {
			n.Add(rule("repairType", p.consume()))
		}
	case COALESCE:
		if p.isAny(LOCAL, NO_WRITE_TO_BINLOG) {
			n.Add(p.parseNoWriteToBinLog())
		}
		n.Add(p.parseRealUlongNumber())
	case TRUNCATE:
		n.Add(p.parseAllOrPartitionNameList())
	case REORGANIZE:
		if p.isAny(LOCAL, NO_WRITE_TO_BINLOG) {
			n.Add(p.parseNoWriteToBinLog())
		}
		if p.isIdentifierStart() {
			n.Add(p.parseIdentifierList(), p.match(INTO), p.parsePartitionDefinitions())
		}
	case EXCHANGE:
		n.Add(p.parseIdentifier(), p.match(WITH), p.match(TABLE), p.parseTableRef())
		if p.isAny(WITH, WITHOUT) {
			n.Add(p.parseWithValidation())
		}
	case DISCARD, IMPORT:
		n.Add(p.parseAllOrPartitionNameList(), p.match(TABLESPACE))
	}
	return n
}

func (p *Parser) parseAllOrPartitionNameList() *ast.Rule {
	if p.is(ALL) {
		return rule("allOrPartitionNameList", p.consume())
	}
	return rule("allOrPartitionNameList", p.parseIdentifierList())
}

func (p *Parser) parseAlterList() *ast.Rule {
	n := rule("alterList")
	if p.isCreateTableOptionStart() {
		n.Add(p.parseCreateTableOptionsSpaceSeparated())
	} else {
		n.Add(p.parseAlterListItem())
	}
	for p.is(COMMA) {
		n.Add(p.consume())
		switch {
		case p.isAlterCommandsModifierStart(1):
			if p.version < 50706 {
				return p.fail("alterList")
			}
			n.Add(p.parseAlterCommandsModifier())
		case p.isCreateTableOptionStart():
			n.Add(p.parseCreateTableOptionsSpaceSeparated())
		case p.isAlterListItemStart():
			n.Add(p.parseAlterListItem())
		default:
			return p.fail("alterList")
		}
	}
	return n
}

func (p *Parser) isAlterListItemStart() bool {
	switch p.la(1) {
	case ADD, CHANGE, MODIFY, DROP, ALTER, RENAME, CONVERT, FORCE, ORDER:
		return true
	case DISABLE, ENABLE:
		return p.la(2) == KEYS
	case UPGRADE:
		return p.version >= 50708 && p.version < 80000
	}
	return false
}

func (p *Parser) parseAlterListItem() *ast.Rule {
	n := rule("alterListItem")
	switch p.la(1) {
	case ADD:
		n.Add(p.consume())
		if p.isTableConstraintStart() {
			n.Add(p.parseTableConstraintDef())
			return n
		}
		n.Add(p.accept(COLUMN))
		if p.is(OPEN_PAR) {
			n.Add(p.consume(), p.parseTableElementList(), p.match(CLOSE_PAR))
			return n
		}
		n.Add(p.parseIdentifier(), p.parseFieldDefinition())
		if p.isCheckOrReferencesStart() {
			n.Add(p.parseCheckOrReferences())
		}
		n.Add(p.parsePlaceOpt())

	case CHANGE:
		n.Add(p.consume(), p.accept(COLUMN), p.parseColumnInternalRef(), p.parseIdentifier(),
			p.parseFieldDefinition(), p.parsePlaceOpt())

	case MODIFY:
		n.Add(p.consume(), p.accept(COLUMN), p.parseColumnInternalRef(), p.parseFieldDefinition(), p.parsePlaceOpt())

	case DROP:
		n.Add(p.consume())
		switch {
		case p.is(FOREIGN):
			n.Add(p.consume(), p.match(KEY))
			if p.version >= 80000 || p.isIdentifierStart() {
				n.Add(p.parseColumnInternalRef())
			}
		case p.is(PRIMARY):
			n.Add(p.consume(), p.match(KEY))
		case p.isAny(KEY, INDEX):
			n.Add(p.parseKeyOrIndex(), p.parseIndexRef())
		case p.is(CHECK) && p.version >= 80017:
			n.Add(p.consume(), p.parseIdentifier())
		case p.is(CONSTRAINT) && p.version >= 80019:
			n.Add(p.consume(), p.parseIdentifier())
		default:
			n.Add(p.accept(COLUMN), p.parseColumnInternalRef())
			if p.isAny(RESTRICT, CASCADE) {
				n.Add(rule("restrict", p.consume()))
			}
		}

	case DISABLE, ENABLE:
		n.Add(p.consume(), p.match(KEYS))

	case ALTER:
		n.Add(p.consume())
		switch {
		case p.is(INDEX) && p.version >= 80000:
			n.Add(p.consume(), p.parseIndexRef(), p.parseVisibility())
		case p.is(CHECK) && p.version >= 80017:
			n.Add(p.consume(), p.parseIdentifier(), p.parseConstraintEnforcement())
		case p.is(CONSTRAINT) && p.version >= 80019:
			n.Add(p.consume(), p.parseIdentifier(), p.parseConstraintEnforcement())
		default:
			n.Add(p.accept(COLUMN), p.parseColumnInternalRef())
			switch {
			case p.isSeq(SET, DEFAULT):
				n.Add(p.consume(), p.consume())
				if p.is(OPEN_PAR) && p.version >= 80014 {
					n.Add(p.parseExprWithParentheses())
				} else {
					n.Add(p.parseSignedLiteral())
				}
			case p.isSeq(DROP, DEFAULT):
				n.Add(p.consume(), p.consume())
			default:
				return p.fail("alterListItem")
			}
		}

	case RENAME:
		n.Add(p.consume())
		switch {
		case p.is(COLUMN) && p.version >= 80000:
			n.Add(p.consume(), p.parseColumnInternalRef(), p.match(TO), p.parseIdentifier())
		case p.isAny(KEY, INDEX) && p.version >= 50700:
			n.Add(p.parseKeyOrIndex(), p.parseIndexRef(), p.match(TO), p.parseIndexName())
		default:
			n.Add(p.acceptAny(TO, AS), p.parseTableName())
		}

	case CONVERT:
		n.Add(p.consume(), p.match(TO), p.parseCharset())
		if p.is(DEFAULT) && p.version >= 80014 {
			n.Add(p.consume())
		} else {
			n.Add(p.parseCharsetName())
		}
		if p.is(COLLATE) {
			n.Add(p.parseCollate())
		}

	case FORCE:
		n.Add(p.consume())

	case ORDER:
		n.Add(p.consume(), p.match(BY), p.parseAlterOrderList())

	case UPGRADE:
		if p.version < 50708 || p.version >= 80000 {
			return p.fail("alterListItem")
		}
		n.Add(p.consume(), p.match(PARTITIONING))

	default:
		return p.fail("alterListItem")
	}
	return n
}

func (p *Parser) parsePlaceOpt() *ast.Rule {
	switch {
	case p.is(AFTER):
		return rule("place", p.consume(), p.parseIdentifier())
	case p.is(FIRST):
		return rule("place", p.consume())
	}
	return nil
}

func (p *Parser) parseAlterOrderList() *ast.Rule {
	n := rule("alterOrderList")
	for {
		n.Add(p.parseIdentifier())
		if p.isAny(ASC, DESC) {
			n.Add(p.parseDirection())
		}
		if !p.is(COMMA) {
			return n
		}
		n.Add(p.consume())
	}
}

// ---------- ALTER TABLESPACE ----------

func (p *Parser) parseAlterTablespace() *ast.Rule {
	n := rule("alterTablespace", p.match(TABLESPACE), p.parseTablespaceRef())
	switch {
	case p.isAny(ADD, DROP):
		n.Add(p.consume(), p.match(DATAFILE), p.parseTextLiteral())
		if p.isAlterTablespaceOptionStart(1) {
			n.Add(p.parseAlterTablespaceOptions())
		}
	case p.is(CHANGE) && p.version < 80000:
		n.Add(p.consume(), p.match(DATAFILE), p.parseTextLiteral())
		for p.isChangeTablespaceOptionStart(1) || (p.is(COMMA) && p.isChangeTablespaceOptionStart(2)) {
			n.Add(p.accept(COMMA), p.parseChangeTablespaceOption())
		}
	case p.isAny(READ_ONLY, READ_WRITE) && p.version < 80000:
		n.Add(p.consume())
	case p.isSeq(NOT, ACCESSIBLE) && p.version < 80000:
		n.Add(p.consume(), p.consume())
	case p.is(RENAME):
		n.Add(p.consume(), p.match(TO), p.parseIdentifier())
	case p.version >= 80014 && p.isAlterTablespaceOptionStart(1):
		n.Add(p.parseAlterTablespaceOptions())
	default:
		return p.fail("alterTablespace")
	}
	return n
}

func (p *Parser) isChangeTablespaceOptionStart(i int) bool {
	return p.isAnyAt(i, INITIAL_SIZE, AUTOEXTEND_SIZE, MAX_SIZE)
}

func (p *Parser) parseChangeTablespaceOption() *ast.Rule {
	return rule("changeTablespaceOption", p.parseTablespaceOptionItem())
}

func (p *Parser) isAlterTablespaceOptionStart(i int) bool {
	switch p.la(i) {
	case INITIAL_SIZE, AUTOEXTEND_SIZE, MAX_SIZE, ENGINE, WAIT, NO_WAIT, ENCRYPTION:
		return true
	case STORAGE:
		return p.la(i+1) == ENGINE
	}
	return false
}

func (p *Parser) parseAlterTablespaceOptions() *ast.Rule {
	n := rule("alterTablespaceOptions", rule("alterTablespaceOption", p.parseTablespaceOptionItem()))
	for {
		switch {
		case p.is(COMMA) && p.isAlterTablespaceOptionStart(2):
			n.Add(p.consume(), rule("alterTablespaceOption", p.parseTablespaceOptionItem()))
		case p.isAlterTablespaceOptionStart(1):
			n.Add(rule("alterTablespaceOption", p.parseTablespaceOptionItem()))
		default:
			return n
		}
	}
}

func (p *Parser) parseAlterUndoTablespace() *ast.Rule {
	n := rule("alterUndoTablespace", p.match(UNDO), p.match(TABLESPACE), p.parseTablespaceRef(),
		p.match(SET), p.matchAny("alterUndoTablespace", ACTIVE, INACTIVE))
	if p.isAny(STORAGE, ENGINE) {
		n.Add(p.parseUndoTableSpaceOptions())
	}
	return n
}

func (p *Parser) parseUndoTableSpaceOptions() *ast.Rule {
	n := rule("undoTableSpaceOptions", rule("undoTableSpaceOption", p.parseTsOptionEngine()))
	for p.isAny(STORAGE, ENGINE) || (p.is(COMMA) && p.isAnyAt(2, STORAGE, ENGINE)) {
		n.Add(p.accept(COMMA), rule("undoTableSpaceOption", p.parseTsOptionEngine()))
	}
	return n
}
