package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// CREATE statements for every object other than users and resource
// groups, plus the routine, view, event and tablespace pieces that ALTER
// reuses.
//
// Grammar:
//
//	createStatement → CREATE ( createDatabase | createTable | createFunction | createProcedure
//	                  | createUdf | createLogfileGroup | createView | createTrigger | createIndex
//	                  | createServer | createTablespace | createRole | createSpatialReference
//	                  | createUndoTablespace | createEvent )
//	createEvent     → [definerClause] EVENT [ifNotExists] eventName ON SCHEDULE schedule
//	                  [ON COMPLETION [NOT] PRESERVE] [ENABLE | DISABLE [ON SLAVE]]
//	                  [COMMENT textLiteral] DO compoundStatement
//	schedule        → AT expr | EVERY expr interval [STARTS expr] [ENDS expr]
//
// DEFINER may precede PROCEDURE, FUNCTION, TRIGGER, EVENT and VIEW, so it is
// parsed first and handed to the chosen production.

func (p *Parser) parseCreateStatement() *ast.Rule {
	n := rule("createStatement", p.match(CREATE))
	switch p.la(1) {
	case DATABASE:
		n.Add(p.parseCreateDatabase())
	case TABLE, TEMPORARY:
		n.Add(p.parseCreateTable())
	case PROCEDURE:
		n.Add(p.parseCreateProcedure(nil))
	case FUNCTION:
		if p.la(3) == RETURNS {
			n.Add(p.parseCreateUdf())
		} else {
			n.Add(p.parseCreateFunction(nil))
		}
	case AGGREGATE:
		n.Add(p.parseCreateUdf())
	case LOGFILE:
		n.Add(p.parseCreateLogfileGroup())
	case TRIGGER:
		n.Add(p.parseCreateTrigger(nil))
	case EVENT:
		n.Add(p.parseCreateEvent(nil))
	case INDEX, UNIQUE, FULLTEXT:
		n.Add(p.parseCreateIndex())
	case SPATIAL:
		if p.la(2) == REFERENCE {
			if p.version < 80011 {
				return p.fail("createStatement")
			}
			n.Add(p.parseCreateSpatialReference())
		} else {
			n.Add(p.parseCreateIndex())
		}
	case SERVER:
		n.Add(p.parseCreateServer())
	case TABLESPACE:
		n.Add(p.parseCreateTablespace())
	case UNDO:
		if p.version < 80014 {
			return p.fail("createStatement")
		}
		n.Add(p.parseCreateUndoTablespace())
	case ROLE:
		if p.version < 80000 {
			return p.fail("createStatement")
		}
		n.Add(p.parseCreateRole())
	case OR:
		if p.isSeq(OR, REPLACE, SPATIAL) {
			if p.version < 80011 {
				return p.fail("createStatement")
			}
			n.Add(p.parseCreateSpatialReference())
		} else {
			n.Add(p.parseCreateView(nil))
		}
	case ALGORITHM, VIEW, SQL:
		n.Add(p.parseCreateView(nil))
	case DEFINER:
		def := p.parseDefinerClause()
		switch p.la(1) {
		case PROCEDURE:
			n.Add(p.parseCreateProcedure(def))
		case FUNCTION:
			n.Add(p.parseCreateFunction(def))
		case TRIGGER:
			n.Add(p.parseCreateTrigger(def))
		case EVENT:
			n.Add(p.parseCreateEvent(def))
		case VIEW, SQL:
			n.Add(p.parseCreateView(def))
		default:
			return p.fail("createStatement")
		}
	default:
		return p.fail("createStatement")
	}
	return n
}

func (p *Parser) parseDefinerClause() *ast.Rule {
	return rule("definerClause", p.match(DEFINER), p.match(EQUAL_OPERATOR), p.parseUser())
}

// ---------- Databases ----------

func (p *Parser) parseCreateDatabase() *ast.Rule {
	n := rule("createDatabase", p.match(DATABASE))
	if p.isSeq(IF, NOT, EXISTS) {
		n.Add(p.parseIfNotExists())
	}
	n.Add(p.parseSchemaName())
	for p.isCreateDatabaseOptionStart() {
		n.Add(p.parseCreateDatabaseOption())
	}
	return n
}

// isCreateDatabaseOptionStart accepts ENCRYPTION only from 8.0.16.
func (p *Parser) isCreateDatabaseOptionStart() bool {
	if p.isDefaultEncryptionStart() {
		return p.version >= 80016
	}
	return p.isDefaultCharsetStart() || p.isDefaultCollationStart()
}

func (p *Parser) parseCreateDatabaseOption() *ast.Rule {
	switch {
	case p.isDefaultEncryptionStart() && p.version >= 80016:
		return rule("createDatabaseOption", p.parseDefaultEncryption())
	case p.isDefaultCollationStart():
		return rule("createDatabaseOption", p.parseDefaultCollation())
	case p.isDefaultCharsetStart():
		return rule("createDatabaseOption", p.parseDefaultCharset())
	}
	return p.fail("createDatabaseOption")
}

// ---------- Stored routines ----------

func (p *Parser) parseCreateProcedure(def *ast.Rule) *ast.Rule {
	n := rule("createProcedure", def, p.match(PROCEDURE), p.parseProcedureName(), p.match(OPEN_PAR))
	if !p.is(CLOSE_PAR) {
		n.Add(p.parseProcedureParameter())
		for p.is(COMMA) {
			n.Add(p.consume(), p.parseProcedureParameter())
		}
	}
	n.Add(p.match(CLOSE_PAR))
	for p.isRoutineCreateOptionStart() {
		n.Add(p.parseRoutineCreateOption())
	}
	n.Add(p.parseCompoundStatement())
	return n
}

func (p *Parser) parseCreateFunction(def *ast.Rule) *ast.Rule {
	n := rule("createFunction", def, p.match(FUNCTION), p.parseFunctionName(), p.match(OPEN_PAR))
	if !p.is(CLOSE_PAR) {
		n.Add(p.parseFunctionParameter())
		for p.is(COMMA) {
			n.Add(p.consume(), p.parseFunctionParameter())
		}
	}
	n.Add(p.match(CLOSE_PAR), p.match(RETURNS), p.parseTypeWithOptCollate())
	for p.isRoutineCreateOptionStart() {
		n.Add(p.parseRoutineCreateOption())
	}
	n.Add(p.parseCompoundStatement())
	return n
}

func (p *Parser) parseCreateUdf() *ast.Rule {
	return rule("createUdf", p.accept(AGGREGATE), p.match(FUNCTION), p.parseUdfName(), p.match(RETURNS),
		p.matchAny("createUdf", STRING, INT, REAL, DECIMAL), p.match(SONAME), p.parseTextLiteral())
}

func (p *Parser) parseProcedureParameter() *ast.Rule {
	return rule("procedureParameter", p.acceptAny(IN, OUT, INOUT), p.parseFunctionParameter())
}

func (p *Parser) parseFunctionParameter() *ast.Rule {
	return rule("functionParameter", p.parseParameterName(), p.parseTypeWithOptCollate())
}

func (p *Parser) parseTypeWithOptCollate() *ast.Rule {
	n := rule("typeWithOptCollate", p.parseDataType())
	if p.is(COLLATE) {
		n.Add(p.parseCollate())
	}
	return n
}

func (p *Parser) isRoutineCreateOptionStart() bool {
	switch p.la(1) {
	case COMMENT, LANGUAGE, CONTAINS, READS, MODIFIES, DETERMINISTIC:
		return true
	case NO:
		return p.la(2) == SQL
	case SQL:
		return p.la(2) == SECURITY
	case NOT:
		return p.la(2) == DETERMINISTIC
	}
	return false
}

func (p *Parser) parseRoutineCreateOption() *ast.Rule {
	if p.isAny(NOT, DETERMINISTIC) {
		return rule("routineCreateOption", p.accept(NOT), p.match(DETERMINISTIC))
	}
	return rule("routineCreateOption", p.parseRoutineOption())
}

func (p *Parser) parseRoutineAlterOptions() *ast.Rule {
	n := rule("routineAlterOptions", p.parseRoutineCreateOption())
	for p.isRoutineCreateOptionStart() {
		n.Add(p.parseRoutineCreateOption())
	}
	return n
}

func (p *Parser) parseRoutineOption() *ast.Rule {
	switch p.la(1) {
	case COMMENT:
		return rule("routineOption", p.consume(), p.parseTextLiteral())
	case LANGUAGE, NO, CONTAINS:
		return rule("routineOption", p.consume(), p.match(SQL))
	case READS, MODIFIES:
		return rule("routineOption", p.consume(), p.match(SQL), p.match(DATA))
	case SQL:
		return rule("routineOption", p.consume(), p.match(SECURITY), p.matchAny("routineOption", DEFINER, INVOKER))
	}
	return p.fail("routineOption")
}

// ---------- Indexes ----------

func (p *Parser) parseCreateIndex() *ast.Rule {
	n := rule("createIndex")
	switch p.la(1) {
	case FULLTEXT:
		n.Add(p.consume(), p.match(INDEX), p.parseIndexName(), p.parseCreateIndexTarget())
		for p.isFulltextIndexOptionStart() {
			n.Add(p.parseFulltextIndexOption())
		}
	case SPATIAL:
		n.Add(p.consume(), p.match(INDEX), p.parseIndexName(), p.parseCreateIndexTarget())
		for p.isCommonIndexOptionStart() {
			n.Add(rule("spatialIndexOption", p.parseCommonIndexOption()))
		}
	default:
		n.Add(p.accept(UNIQUE), p.match(INDEX))
		if p.version < 80014 {
			n.Add(p.parseIndexName())
			if p.isAny(USING, TYPE) {
				n.Add(p.parseIndexTypeClause())
			}
		} else if !p.is(ON) {
			n.Add(p.parseIndexNameAndType())
		}
		n.Add(p.parseCreateIndexTarget())
		for p.isIndexOptionStart() {
			n.Add(p.parseIndexOption())
		}
	}
	if p.isAny(ALGORITHM, LOCK) {
		n.Add(p.parseIndexLockAndAlgorithm())
	}
	return n
}

func (p *Parser) parseCreateIndexTarget() *ast.Rule {
	return rule("createIndexTarget", p.match(ON), p.parseTableRef(), p.parseKeyListVariants())
}

// ---------- Logfile groups, servers and tablespaces ----------

func (p *Parser) parseCreateLogfileGroup() *ast.Rule {
	n := rule("createLogfileGroup", p.match(LOGFILE), p.match(GROUP), p.parseLogfileGroupName(),
		p.match(ADD), p.matchAny("createLogfileGroup", UNDOFILE, REDOFILE), p.parseTextLiteral())
	if p.isLogfileGroupOptionStart(1) {
		opts := rule("logfileGroupOptions", rule("logfileGroupOption", p.parseTablespaceOptionItem()))
		for p.isLogfileGroupOptionStart(1) || (p.is(COMMA) && p.isLogfileGroupOptionStart(2)) {
			opts.Add(p.accept(COMMA), rule("logfileGroupOption", p.parseTablespaceOptionItem()))
		}
		n.Add(opts)
	}
	return n
}

func (p *Parser) isLogfileGroupOptionStart(i int) bool {
	switch p.la(i) {
	case INITIAL_SIZE, UNDO_BUFFER_SIZE, REDO_BUFFER_SIZE, NODEGROUP, ENGINE, WAIT, NO_WAIT, COMMENT:
		return true
	case STORAGE:
		return p.la(i+1) == ENGINE
	}
	return false
}

func (p *Parser) parseCreateServer() *ast.Rule {
	return rule("createServer", p.match(SERVER), p.parseServerName(), p.match(FOREIGN), p.match(DATA),
		p.match(WRAPPER), p.parseTextOrIdentifier(), p.parseServerOptions())
}

func (p *Parser) parseServerOptions() *ast.Rule {
	n := rule("serverOptions", p.match(OPTIONS), p.match(OPEN_PAR), p.parseServerOption())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseServerOption())
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parseServerOption() *ast.Rule {
	switch p.la(1) {
	case HOST, DATABASE, USER, PASSWORD, SOCKET, OWNER:
		return rule("serverOption", p.consume(), p.parseTextLiteral())
	case PORT:
		return rule("serverOption", p.consume(), p.parseUlongNumber())
	}
	return p.fail("serverOption")
}

func (p *Parser) parseCreateTablespace() *ast.Rule {
	n := rule("createTablespace", p.match(TABLESPACE), p.parseTablespaceName())
	switch {
	case p.is(ADD):
		n.Add(rule("tsDataFileName", p.consume(), p.parseTsDataFile()))
	case p.version < 80014:
		return p.fail("tsDataFileName")
	}
	if p.isSeq(USE, LOGFILE) {
		n.Add(p.consume(), p.consume(), p.match(GROUP), p.parseLogfileGroupRef())
	}
	if p.isTablespaceOptionStart(1) {
		opts := rule("tablespaceOptions", rule("tablespaceOption", p.parseTablespaceOptionItem()))
		for p.isTablespaceOptionStart(1) || (p.is(COMMA) && p.isTablespaceOptionStart(2)) {
			opts.Add(p.accept(COMMA), rule("tablespaceOption", p.parseTablespaceOptionItem()))
		}
		n.Add(opts)
	}
	return n
}

func (p *Parser) parseCreateUndoTablespace() *ast.Rule {
	n := rule("createUndoTablespace", p.match(UNDO), p.match(TABLESPACE), p.parseTablespaceName(),
		p.match(ADD), p.parseTsDataFile())
	if p.isAny(STORAGE, ENGINE) {
		n.Add(p.parseUndoTableSpaceOptions())
	}
	return n
}

func (p *Parser) parseTsDataFile() *ast.Rule {
	return rule("tsDataFile", p.match(DATAFILE), p.parseTextLiteral())
}

func (p *Parser) isTablespaceOptionStart(i int) bool {
	switch p.la(i) {
	case INITIAL_SIZE, AUTOEXTEND_SIZE, MAX_SIZE, EXTENT_SIZE, NODEGROUP, ENGINE, WAIT, NO_WAIT,
		COMMENT, FILE_BLOCK_SIZE:
		return true
	case STORAGE:
		return p.la(i+1) == ENGINE
	case ENCRYPTION:
		return p.version >= 80014
	}
	return false
}

// parseTablespaceOptionItem parses one tsOption* production; the option
// lists of tablespaces, logfile groups and undo tablespaces all draw from it.
func (p *Parser) parseTablespaceOptionItem() *ast.Rule {
	switch p.la(1) {
	case INITIAL_SIZE:
		return rule("tsOptionInitialSize", p.consume(), p.accept(EQUAL_OPERATOR), p.parseSizeNumber())
	case UNDO_BUFFER_SIZE, REDO_BUFFER_SIZE:
		return rule("tsOptionUndoRedoBufferSize", p.consume(), p.accept(EQUAL_OPERATOR), p.parseSizeNumber())
	case AUTOEXTEND_SIZE:
		return rule("tsOptionAutoextendSize", p.consume(), p.accept(EQUAL_OPERATOR), p.parseSizeNumber())
	case MAX_SIZE:
		return rule("tsOptionMaxSize", p.consume(), p.accept(EQUAL_OPERATOR), p.parseSizeNumber())
	case EXTENT_SIZE:
		return rule("tsOptionExtentSize", p.consume(), p.accept(EQUAL_OPERATOR), p.parseSizeNumber())
	case NODEGROUP:
		return rule("tsOptionNodegroup", p.consume(), p.accept(EQUAL_OPERATOR), p.parseRealUlongNumber())
	case STORAGE, ENGINE:
		return p.parseTsOptionEngine()
	case WAIT, NO_WAIT:
		return rule("tsOptionWait", p.consume())
	case COMMENT:
		return rule("tsOptionComment", p.consume(), p.accept(EQUAL_OPERATOR), p.parseTextLiteral())
	case FILE_BLOCK_SIZE:
		return rule("tsOptionFileblockSize", p.consume(), p.accept(EQUAL_OPERATOR), p.parseSizeNumber())
	case ENCRYPTION:
		return rule("tsOptionEncryption", p.consume(), p.accept(EQUAL_OPERATOR), p.parseTextStringLiteral())
	}
	return p.fail("tablespaceOption")
}

func (p *Parser) parseTsOptionEngine() *ast.Rule {
	return rule("tsOptionEngine", p.accept(STORAGE), p.match(ENGINE), p.accept(EQUAL_OPERATOR), p.parseEngineRef())
}

// ---------- Views ----------

func (p *Parser) parseCreateView(def *ast.Rule) *ast.Rule {
	n := rule("createView")
	if def == nil {
		switch {
		case p.is(OR):
			r := rule("viewReplaceOrAlgorithm", p.consume(), p.match(REPLACE))
			if p.is(ALGORITHM) {
				r.Add(p.parseViewAlgorithm())
			}
			n.Add(r)
		case p.is(ALGORITHM):
			n.Add(rule("viewReplaceOrAlgorithm", p.parseViewAlgorithm()))
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
	n.Add(p.match(VIEW), p.parseViewName(), p.parseViewTail())
	return n
}

func (p *Parser) parseViewAlgorithm() *ast.Rule {
	return rule("viewAlgorithm", p.match(ALGORITHM), p.match(EQUAL_OPERATOR),
		p.matchAny("viewAlgorithm", UNDEFINED, MERGE, TEMPTABLE))
}

func (p *Parser) parseViewSuid() *ast.Rule {
	return rule("viewSuid", p.match(SQL), p.match(SECURITY), p.matchAny("viewSuid", DEFINER, INVOKER))
}

func (p *Parser) parseViewTail() *ast.Rule {
	n := rule("viewTail")
	if p.is(OPEN_PAR) {
		n.Add(p.parseColumnInternalRefList())
	}
	n.Add(p.match(AS))
	sel := rule("viewSelect", p.parseQueryExpressionOrParens())
	if p.is(WITH) {
		c := rule("viewCheckOption", p.consume(), p.acceptAny(CASCADED, LOCAL), p.match(CHECK), p.match(OPTION))
		sel.Add(c)
	}
	n.Add(sel)
	return n
}

// ---------- Triggers and events ----------

func (p *Parser) parseCreateTrigger(def *ast.Rule) *ast.Rule {
	n := rule("createTrigger", def, p.match(TRIGGER), p.parseTriggerName(),
		p.matchAny("createTrigger", BEFORE, AFTER), p.matchAny("createTrigger", INSERT, UPDATE, DELETE),
		p.match(ON), p.parseTableRef(), p.match(FOR), p.match(EACH), p.match(ROW))
	if p.isAny(FOLLOWS, PRECEDES) && p.version >= 50700 {
		n.Add(rule("triggerFollowsPrecedesClause", p.consume(), p.parseTextOrIdentifier()))
	}
	n.Add(p.parseCompoundStatement())
	return n
}

func (p *Parser) parseCreateEvent(def *ast.Rule) *ast.Rule {
	n := rule("createEvent", def, p.match(EVENT))
	if p.isSeq(IF, NOT, EXISTS) {
		n.Add(p.parseIfNotExists())
	}
	n.Add(p.parseEventName(), p.match(ON), p.match(SCHEDULE), p.parseSchedule())
	if p.isSeq(ON, COMPLETION) {
		n.Add(p.consume(), p.consume(), p.accept(NOT), p.match(PRESERVE))
	}
	p.addEventStatus(n)
	if p.is(COMMENT) {
		n.Add(p.consume(), p.parseTextLiteral())
	}
	n.Add(p.match(DO), p.parseCompoundStatement())
	return n
}

// addEventStatus appends ENABLE or DISABLE [ON SLAVE] when present.
func (p *Parser) addEventStatus(n *ast.Rule) {
	switch {
	case p.is(ENABLE):
		n.Add(p.consume())
	case p.isSeq(DISABLE, ON, SLAVE):
		n.Add(p.consume(), p.consume(), p.consume())
	case p.is(DISABLE):
		n.Add(p.consume())
	}
}

func (p *Parser) parseSchedule() *ast.Rule {
	if p.is(AT) {
		return rule("schedule", p.consume(), p.parseExpr())
	}
	n := rule("schedule", p.match(EVERY), p.parseExpr(), p.parseInterval())
	if p.is(STARTS) {
		n.Add(p.consume(), p.parseExpr())
	}
	if p.is(ENDS) {
		n.Add(p.consume(), p.parseExpr())
	}
	return n
}

// ---------- Roles and spatial reference systems ----------

func (p *Parser) parseCreateRole() *ast.Rule {
	n := rule("createRole", p.match(ROLE))
	if p.isSeq(IF, NOT, EXISTS) {
		n.Add(p.parseIfNotExists())
	}
	n.Add(p.parseRoleList())
	return n
}

func (p *Parser) parseCreateSpatialReference() *ast.Rule {
	n := rule("createSpatialReference")
	if p.is(OR) {
		n.Add(p.consume(), p.match(REPLACE), p.match(SPATIAL), p.match(REFERENCE), p.match(SYSTEM))
	} else {
		n.Add(p.match(SPATIAL), p.match(REFERENCE), p.match(SYSTEM))
		if p.isSeq(IF, NOT, EXISTS) {
			n.Add(p.parseIfNotExists())
		}
	}
	n.Add(p.parseRealUlonglongNumber())
	for p.isAny(NAME, DEFINITION, ORGANIZATION, DESCRIPTION) {
		n.Add(p.parseSrsAttribute())
	}
	return n
}

func (p *Parser) parseSrsAttribute() *ast.Rule {
	if p.is(ORGANIZATION) {
		return rule("srsAttribute", p.consume(), p.parseTextStringNoLinebreak(),
			p.match(IDENTIFIED), p.match(BY), p.parseRealUlonglongNumber())
	}
	return rule("srsAttribute", p.matchAny("srsAttribute", NAME, DEFINITION, DESCRIPTION),
		p.match(TEXT), p.parseTextStringNoLinebreak())
}
