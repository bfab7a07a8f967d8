package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// CREATE TABLE and the pieces ALTER TABLE shares with it: column
// definitions, constraints, key lists, table options and partitioning.
//
// Grammar:
//
//	createTable      → [TEMPORARY] TABLE [ifNotExists] tableName
//	                   ( ["(" tableElementList ")"] [createTableOptions] [partitionClause]
//	                     [duplicateAsQueryExpression]
//	                   | LIKE tableRef | "(" LIKE tableRef ")" )
//	tableElement     → columnDefinition | tableConstraintDef
//	columnDefinition → columnName fieldDefinition [checkOrReferences]
//	fieldDefinition  → dataType ( columnAttribute*
//	                   | [collate] [GENERATED ALWAYS] AS exprWithParentheses [VIRTUAL | STORED]
//	                     (gcolAttribute* | columnAttribute*) )
//	partitionClause  → PARTITION BY partitionTypeDef [PARTITIONS n] [subPartitions]
//	                   [partitionDefinitions]

func (p *Parser) parseCreateTable() *ast.Rule {
	n := rule("createTable", p.accept(TEMPORARY), p.match(TABLE))
	if p.isSeq(IF, NOT, EXISTS) {
		n.Add(p.parseIfNotExists())
	}
	n.Add(p.parseTableName())

	switch {
	case p.is(LIKE):
		n.Add(p.consume(), p.parseTableRef())
		return n
	case p.isSeq(OPEN_PAR, LIKE):
		n.Add(p.consume(), p.consume(), p.parseTableRef(), p.match(CLOSE_PAR))
		return n
	case p.is(OPEN_PAR) && !p.isSubqueryStart():
		n.Add(p.consume(), p.parseTableElementList(), p.match(CLOSE_PAR))
	}
	if p.isCreateTableOptionStart() {
		n.Add(p.parseCreateTableOptions())
	}
	if p.isSeq(PARTITION, BY) {
		n.Add(p.parsePartitionClause())
	}
	if p.isDuplicateAsQueryStart() {
		n.Add(p.parseDuplicateAsQueryExpression())
	}
	return n
}

func (p *Parser) parseIfNotExists() *ast.Rule {
	return rule("ifNotExists", p.match(IF), p.match(NOT), p.match(EXISTS))
}

func (p *Parser) parseIfExists() *ast.Rule {
	return rule("ifExists", p.match(IF), p.match(EXISTS))
}

func (p *Parser) isDuplicateAsQueryStart() bool {
	return p.isAny(REPLACE, IGNORE, AS) || p.isSelectStart()
}

func (p *Parser) parseDuplicateAsQueryExpression() *ast.Rule {
	return rule("duplicateAsQueryExpression",
		p.acceptAny(REPLACE, IGNORE), p.accept(AS), p.parseQueryExpressionOrParens())
}

// ---------- Table elements ----------

func (p *Parser) parseTableElementList() *ast.Rule {
	n := rule("tableElementList", p.parseTableElement())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseTableElement())
	}
	return n
}

func (p *Parser) parseTableElement() *ast.Rule {
	if p.isTableConstraintStart() {
		return rule("tableElement", p.parseTableConstraintDef())
	}
	return rule("tableElement", p.parseColumnDefinition())
}

func (p *Parser) parseColumnDefinition() *ast.Rule {
	n := rule("columnDefinition", p.parseColumnName(), p.parseFieldDefinition())
	if p.isCheckOrReferencesStart() {
		n.Add(p.parseCheckOrReferences())
	}
	return n
}

func (p *Parser) isCheckOrReferencesStart() bool {
	return p.is(REFERENCES) || (p.is(CHECK) && p.version < 80016)
}

func (p *Parser) parseCheckOrReferences() *ast.Rule {
	if p.is(CHECK) && p.version < 80016 {
		return rule("checkOrReferences", p.parseCheckConstraint())
	}
	return rule("checkOrReferences", p.parseReferences())
}

func (p *Parser) parseCheckConstraint() *ast.Rule {
	return rule("checkConstraint", p.match(CHECK), p.parseExprWithParentheses())
}

func (p *Parser) isConstraintEnforcementStart() bool {
	return p.is(ENFORCED) || p.isSeq(NOT, ENFORCED)
}

func (p *Parser) parseConstraintEnforcement() *ast.Rule {
	return rule("constraintEnforcement", p.accept(NOT), p.match(ENFORCED))
}

func (p *Parser) isTableConstraintStart() bool {
	switch p.la(1) {
	case KEY, INDEX, FULLTEXT, SPATIAL, CONSTRAINT, PRIMARY, UNIQUE, FOREIGN, CHECK:
		return true
	}
	return false
}

func (p *Parser) parseTableConstraintDef() *ast.Rule {
	n := rule("tableConstraintDef")
	switch p.la(1) {
	case KEY, INDEX:
		n.Add(p.consume())
		if !p.is(OPEN_PAR) {
			n.Add(p.parseIndexNameAndType())
		}
		n.Add(p.parseKeyListVariants())
		for p.isIndexOptionStart() {
			n.Add(p.parseIndexOption())
		}
		return n

	case FULLTEXT, SPATIAL:
		fulltext := p.is(FULLTEXT)
		n.Add(p.consume())
		if p.isAny(KEY, INDEX) {
			n.Add(p.parseKeyOrIndex())
		}
		if !p.is(OPEN_PAR) {
			n.Add(p.parseIndexName())
		}
		n.Add(p.parseKeyListVariants())
		for {
			switch {
			case fulltext && p.isFulltextIndexOptionStart():
				n.Add(p.parseFulltextIndexOption())
			case !fulltext && p.isCommonIndexOptionStart():
				n.Add(rule("spatialIndexOption", p.parseCommonIndexOption()))
			default:
				return n
			}
		}
	}

	if p.is(CONSTRAINT) {
		n.Add(p.parseConstraintName())
	}
	switch p.la(1) {
	case PRIMARY, UNIQUE:
		if p.is(PRIMARY) {
			n.Add(p.consume(), p.match(KEY))
		} else {
			n.Add(p.consume())
			if p.isAny(KEY, INDEX) {
				n.Add(p.parseKeyOrIndex())
			}
		}
		if !p.is(OPEN_PAR) {
			n.Add(p.parseIndexNameAndType())
		}
		n.Add(p.parseKeyListVariants())
		for p.isIndexOptionStart() {
			n.Add(p.parseIndexOption())
		}
	case FOREIGN:
		n.Add(p.consume(), p.match(KEY))
		if !p.is(OPEN_PAR) {
			n.Add(p.parseIndexName())
		}
		n.Add(p.parseKeyList(), p.parseReferences())
	case CHECK:
		n.Add(p.parseCheckConstraint())
		if p.version >= 80017 && p.isConstraintEnforcementStart() {
			n.Add(p.parseConstraintEnforcement())
		}
	default:
		return p.fail("tableConstraintDef")
	}
	return n
}

// parseConstraintName parses CONSTRAINT with its optional symbol.
func (p *Parser) parseConstraintName() *ast.Rule {
	n := rule("constraintName", p.match(CONSTRAINT))
	if p.isIdentifierStart() {
		n.Add(p.parseIdentifier())
	}
	return n
}

// ---------- Column definitions ----------

func (p *Parser) parseFieldDefinition() *ast.Rule {
	n := rule("fieldDefinition", p.parseDataType())
	if p.version >= 50707 && p.isGeneratedColumnStart() {
		if p.is(COLLATE) {
			n.Add(p.parseCollate())
		}
		if p.is(GENERATED) {
			n.Add(p.consume(), p.match(ALWAYS))
		}
		n.Add(p.match(AS), p.parseExprWithParentheses(), p.acceptAny(VIRTUAL, STORED))
		if p.version < 80000 {
			for p.isGcolAttributeStart() {
				n.Add(p.parseGcolAttribute())
			}
			return n
		}
	}
	for p.isColumnAttributeStart() {
		n.Add(p.parseColumnAttribute())
	}
	return n
}

// isGeneratedColumnStart looks past an optional COLLATE name for the
// GENERATED ALWAYS AS or AS that starts a generated column.
func (p *Parser) isGeneratedColumnStart() bool {
	i := 1
	if p.is(COLLATE) {
		i = 3
	}
	switch p.la(i) {
	case GENERATED:
		return p.la(i+1) == ALWAYS
	case AS:
		return p.la(i+1) == OPEN_PAR
	}
	return false
}

func (p *Parser) isColumnAttributeStart() bool {
	switch p.la(1) {
	case NULL, NULL2, DEFAULT, AUTO_INCREMENT, KEY, UNIQUE, COMMENT, COLLATE, COLUMN_FORMAT, STORAGE:
		return true
	case NOT:
		switch p.la(2) {
		case NULL, NULL2:
			return true
		case SECONDARY:
			return p.version >= 80014
		case ENFORCED:
			return p.version >= 80017
		}
		return false
	case ON:
		return p.la(2) == UPDATE
	case SERIAL:
		return p.la(2) == DEFAULT
	case PRIMARY:
		return p.la(2) == KEY
	case SRID:
		return p.version >= 80000
	case CONSTRAINT, CHECK, ENFORCED:
		return p.version >= 80017
	}
	return false
}

func (p *Parser) parseColumnAttribute() *ast.Rule {
	n := rule("columnAttribute")
	switch p.la(1) {
	case NOT:
		switch p.la(2) {
		case SECONDARY:
			n.Add(p.consume(), p.consume())
		case ENFORCED:
			n.Add(p.parseConstraintEnforcement())
		default:
			n.Add(p.consume(), p.parseNullLiteral())
		}
	case NULL, NULL2:
		n.Add(p.parseNullLiteral())
	case DEFAULT:
		n.Add(p.consume())
		switch {
		case p.is(NOW):
			n.Add(p.consume())
			if p.is(OPEN_PAR) {
				n.Add(p.parseTimeFunctionParameters())
			}
		case p.is(OPEN_PAR) && p.version >= 80013:
			n.Add(p.parseExprWithParentheses())
		default:
			n.Add(p.parseSignedLiteral())
		}
	case ON:
		n.Add(p.consume(), p.match(UPDATE), p.match(NOW))
		if p.is(OPEN_PAR) {
			n.Add(p.parseTimeFunctionParameters())
		}
	case AUTO_INCREMENT:
		n.Add(p.consume())
	case SERIAL:
		n.Add(p.consume(), p.match(DEFAULT), p.match(VALUE))
	case PRIMARY:
		n.Add(p.consume(), p.match(KEY))
	case KEY:
		n.Add(p.consume())
	case UNIQUE:
		n.Add(p.consume(), p.accept(KEY))
	case COMMENT:
		n.Add(p.consume(), p.parseTextLiteral())
	case COLLATE:
		n.Add(p.parseCollate())
	case COLUMN_FORMAT:
		n.Add(p.consume(), rule("columnFormat", p.matchAny("columnFormat", FIXED, DYNAMIC, DEFAULT)))
	case STORAGE:
		n.Add(p.consume(), rule("storageMedia", p.matchAny("storageMedia", DISK, MEMORY, DEFAULT)))
	case SRID:
		n.Add(p.consume(), p.parseRealUlonglongNumber())
	case CONSTRAINT, CHECK:
		if p.is(CONSTRAINT) {
			n.Add(p.parseConstraintName())
		}
		n.Add(p.parseCheckConstraint())
	case ENFORCED:
		n.Add(p.parseConstraintEnforcement())
	default:
		return p.fail("columnAttribute")
	}
	return n
}

func (p *Parser) isGcolAttributeStart() bool {
	switch p.la(1) {
	case UNIQUE, COMMENT, NULL, KEY:
		return true
	case NOT:
		return p.la(2) == NULL
	case PRIMARY:
		return p.la(2) == KEY
	}
	return false
}

func (p *Parser) parseGcolAttribute() *ast.Rule {
	switch p.la(1) {
	case UNIQUE:
		return rule("gcolAttribute", p.consume(), p.accept(KEY))
	case COMMENT:
		return rule("gcolAttribute", p.consume(), p.parseTextString())
	case NOT:
		return rule("gcolAttribute", p.consume(), p.match(NULL))
	case NULL:
		return rule("gcolAttribute", p.consume())
	}
	return rule("gcolAttribute", p.accept(PRIMARY), p.match(KEY))
}

func (p *Parser) parseReferences() *ast.Rule {
	n := rule("references", p.match(REFERENCES), p.parseTableRef())
	if p.is(OPEN_PAR) {
		n.Add(p.parseIdentifierListWithParentheses())
	}
	if p.is(MATCH) {
		n.Add(p.consume(), p.matchAny("references", FULL, PARTIAL, SIMPLE))
	}
	switch {
	case p.isSeq(ON, UPDATE):
		n.Add(p.consume(), p.consume(), p.parseDeleteOption())
		if p.isSeq(ON, DELETE) {
			n.Add(p.consume(), p.consume(), p.parseDeleteOption())
		}
	case p.isSeq(ON, DELETE):
		n.Add(p.consume(), p.consume(), p.parseDeleteOption())
		if p.isSeq(ON, UPDATE) {
			n.Add(p.consume(), p.consume(), p.parseDeleteOption())
		}
	}
	return n
}

func (p *Parser) parseDeleteOption() *ast.Rule {
	switch p.la(1) {
	case RESTRICT, CASCADE:
		return rule("deleteOption", p.consume())
	case SET:
		return rule("deleteOption", p.consume(), p.parseNullLiteral())
	case NO:
		return rule("deleteOption", p.consume(), p.match(ACTION))
	}
	return p.fail("deleteOption")
}

// ---------- Keys and index options ----------

func (p *Parser) parseKeyList() *ast.Rule {
	n := rule("keyList", p.match(OPEN_PAR), p.parseKeyPart())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseKeyPart())
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

// parseKeyListVariants allows functional key parts from 8.0.13.
func (p *Parser) parseKeyListVariants() *ast.Rule {
	if p.version < 80013 {
		return rule("keyListVariants", p.parseKeyList())
	}
	kl := rule("keyListWithExpression", p.match(OPEN_PAR), p.parseKeyPartOrExpression())
	for p.is(COMMA) {
		kl.Add(p.consume(), p.parseKeyPartOrExpression())
	}
	kl.Add(p.match(CLOSE_PAR))
	return rule("keyListVariants", kl)
}

func (p *Parser) parseKeyPart() *ast.Rule {
	n := rule("keyPart", p.parseIdentifier())
	if p.is(OPEN_PAR) {
		n.Add(p.parseFieldLength())
	}
	if p.isAny(ASC, DESC) {
		n.Add(p.parseDirection())
	}
	return n
}

func (p *Parser) parseKeyPartOrExpression() *ast.Rule {
	if p.is(OPEN_PAR) {
		n := rule("keyPartOrExpression", p.parseExprWithParentheses())
		if p.isAny(ASC, DESC) {
			n.Add(p.parseDirection())
		}
		return n
	}
	return rule("keyPartOrExpression", p.parseKeyPart())
}

func (p *Parser) parseIndexType() *ast.Rule {
	return rule("indexType", p.matchAny("indexType", BTREE, RTREE, HASH))
}

func (p *Parser) parseIndexTypeClause() *ast.Rule {
	return rule("indexTypeClause", p.matchAny("indexTypeClause", USING, TYPE), p.parseIndexType())
}

// parseIndexNameAndType parses "name [USING type]" or "[name] TYPE type".
func (p *Parser) parseIndexNameAndType() *ast.Rule {
	n := rule("indexNameAndType")
	if p.is(TYPE) && p.isAnyAt(2, BTREE, RTREE, HASH) {
		n.Add(p.consume(), p.parseIndexType())
		return n
	}
	n.Add(p.parseIndexName())
	if p.isAny(USING, TYPE) && p.isAnyAt(2, BTREE, RTREE, HASH) {
		n.Add(p.consume(), p.parseIndexType())
	}
	return n
}

func (p *Parser) isCommonIndexOptionStart() bool {
	switch p.la(1) {
	case KEY_BLOCK_SIZE, COMMENT:
		return true
	case VISIBLE, INVISIBLE:
		return p.version >= 80000
	}
	return false
}

func (p *Parser) parseCommonIndexOption() *ast.Rule {
	switch p.la(1) {
	case KEY_BLOCK_SIZE:
		return rule("commonIndexOption", p.consume(), p.accept(EQUAL_OPERATOR), p.parseUlongNumber())
	case COMMENT:
		return rule("commonIndexOption", p.consume(), p.parseTextLiteral())
	}
	return rule("commonIndexOption", p.parseVisibility())
}

func (p *Parser) parseVisibility() *ast.Rule {
	return rule("visibility", p.matchAny("visibility", VISIBLE, INVISIBLE))
}

func (p *Parser) isIndexOptionStart() bool {
	return p.isCommonIndexOptionStart() || (p.isAny(USING, TYPE) && p.isAnyAt(2, BTREE, RTREE, HASH))
}

func (p *Parser) parseIndexOption() *ast.Rule {
	if p.isAny(USING, TYPE) {
		return rule("indexOption", p.parseIndexTypeClause())
	}
	return rule("indexOption", p.parseCommonIndexOption())
}

func (p *Parser) isFulltextIndexOptionStart() bool {
	return p.isCommonIndexOptionStart() || p.isSeq(WITH, PARSER)
}

func (p *Parser) parseFulltextIndexOption() *ast.Rule {
	if p.is(WITH) {
		return rule("fulltextIndexOption", p.consume(), p.match(PARSER), p.parseIdentifier())
	}
	return rule("fulltextIndexOption", p.parseCommonIndexOption())
}

// ---------- Table options ----------

func (p *Parser) isCreateTableOptionStart() bool {
	switch p.la(1) {
	case ENGINE, MAX_ROWS, MIN_ROWS, AVG_ROW_LENGTH, PASSWORD, COMMENT, AUTO_INCREMENT, PACK_KEYS,
		STATS_AUTO_RECALC, STATS_PERSISTENT, STATS_SAMPLE_PAGES, CHECKSUM, TABLE_CHECKSUM,
		DELAY_KEY_WRITE, ROW_FORMAT, UNION, CHARSET, COLLATE, INSERT_METHOD, TABLESPACE,
		CONNECTION, KEY_BLOCK_SIZE:
		return true
	case SECONDARY_ENGINE:
		return p.version >= 80014
	case COMPRESSION:
		return p.version >= 50708
	case ENCRYPTION:
		return p.version >= 50711
	case CHAR:
		return p.la(2) == SET
	case DEFAULT:
		return p.la(2) == CHARSET || p.la(2) == COLLATE || (p.la(2) == CHAR && p.la(3) == SET)
	case DATA, INDEX:
		return p.la(2) == DIRECTORY
	case STORAGE:
		return p.la(2) == DISK || p.la(2) == MEMORY
	}
	return false
}

// parseCreateTableOptions parses options optionally separated by commas.
func (p *Parser) parseCreateTableOptions() *ast.Rule {
	n := rule("createTableOptions", p.parseCreateTableOption())
	for {
		switch {
		case p.is(COMMA) && p.peekCreateTableOptionAfterComma():
			n.Add(p.consume(), p.parseCreateTableOption())
		case p.isCreateTableOptionStart():
			n.Add(p.parseCreateTableOption())
		default:
			return n
		}
	}
}

// peekCreateTableOptionAfterComma checks the token after a comma without
// consuming it; only the leading keyword is needed to decide.
func (p *Parser) peekCreateTableOptionAfterComma() bool {
	switch p.la(2) {
	case ENGINE, MAX_ROWS, MIN_ROWS, AVG_ROW_LENGTH, PASSWORD, COMMENT, AUTO_INCREMENT, PACK_KEYS,
		STATS_AUTO_RECALC, STATS_PERSISTENT, STATS_SAMPLE_PAGES, CHECKSUM, TABLE_CHECKSUM,
		DELAY_KEY_WRITE, ROW_FORMAT, UNION, CHARSET, COLLATE, INSERT_METHOD, TABLESPACE,
		CONNECTION, KEY_BLOCK_SIZE:
		return true
	case SECONDARY_ENGINE:
		return p.version >= 80014
	case COMPRESSION:
		return p.version >= 50708
	case ENCRYPTION:
		return p.version >= 50711
	case CHAR:
		return p.la(3) == SET
	case DEFAULT:
		return p.la(3) == CHARSET || p.la(3) == COLLATE || (p.la(3) == CHAR && p.la(4) == SET)
	case DATA, INDEX:
		return p.la(3) == DIRECTORY
	case STORAGE:
		return p.la(3) == DISK || p.la(3) == MEMORY
	}
	return false
}

// parseCreateTableOptionsSpaceSeparated is the ALTER TABLE form, where
// commas separate alter list items instead.
func (p *Parser) parseCreateTableOptionsSpaceSeparated() *ast.Rule {
	n := rule("createTableOptionsSpaceSeparated", p.parseCreateTableOption())
	for p.isCreateTableOptionStart() {
		n.Add(p.parseCreateTableOption())
	}
	return n
}

func (p *Parser) parseCreateTableOption() *ast.Rule {
	n := rule("createTableOption")
	switch p.la(1) {
	case ENGINE:
		n.Add(p.consume(), p.accept(EQUAL_OPERATOR), p.parseEngineRef())
	case SECONDARY_ENGINE:
		n.Add(p.consume())
		if p.isEqual() {
			n.Add(p.parseEqual())
		}
		if p.is(NULL) {
			n.Add(p.consume())
		} else {
			n.Add(p.parseTextOrIdentifier())
		}
	case MAX_ROWS, MIN_ROWS, AUTO_INCREMENT:
		n.Add(p.consume(), p.accept(EQUAL_OPERATOR), p.parseUlonglongNumber())
	case AVG_ROW_LENGTH, CHECKSUM, TABLE_CHECKSUM, DELAY_KEY_WRITE, KEY_BLOCK_SIZE:
		n.Add(p.consume(), p.accept(EQUAL_OPERATOR), p.parseUlongNumber())
	case PASSWORD, COMMENT:
		n.Add(p.consume(), p.accept(EQUAL_OPERATOR), p.parseTextStringLiteral())
	case COMPRESSION, ENCRYPTION, CONNECTION:
		n.Add(p.consume(), p.accept(EQUAL_OPERATOR), p.parseTextString())
	case PACK_KEYS, STATS_AUTO_RECALC, STATS_PERSISTENT, STATS_SAMPLE_PAGES:
		n.Add(p.consume(), p.accept(EQUAL_OPERATOR), p.parseTernaryOption())
	case ROW_FORMAT:
		n.Add(p.consume(), p.accept(EQUAL_OPERATOR),
			p.matchAny("createTableOption", DEFAULT, DYNAMIC, FIXED, COMPRESSED, REDUNDANT, COMPACT))
	case UNION:
		n.Add(p.consume(), p.accept(EQUAL_OPERATOR), p.match(OPEN_PAR), p.parseTableRefList(), p.match(CLOSE_PAR))
	case INSERT_METHOD:
		n.Add(p.consume(), p.accept(EQUAL_OPERATOR), p.matchAny("createTableOption", NO, FIRST, LAST))
	case DATA, INDEX:
		n.Add(p.consume(), p.match(DIRECTORY), p.accept(EQUAL_OPERATOR), p.parseTextString())
	case TABLESPACE:
		n.Add(p.consume())
		if p.version >= 50707 {
			n.Add(p.accept(EQUAL_OPERATOR))
		} else {
			n.Add(p.match(EQUAL_OPERATOR))
		}
		n.Add(p.parseIdentifier())
	case STORAGE:
		n.Add(p.consume(), p.matchAny("createTableOption", DISK, MEMORY))
	default:
		if p.isDefaultCollationStart() {
			n.Add(p.parseDefaultCollation())
		} else {
			n.Add(p.parseDefaultCharset())
		}
	}
	return n
}

func (p *Parser) parseTernaryOption() *ast.Rule {
	if p.is(DEFAULT) {
		return rule("ternaryOption", p.consume())
	}
	return rule("ternaryOption", p.parseUlongNumber())
}

func (p *Parser) isDefaultCollationStart() bool {
	return p.is(COLLATE) || p.isSeq(DEFAULT, COLLATE)
}

func (p *Parser) parseDefaultCollation() *ast.Rule {
	return rule("defaultCollation", p.accept(DEFAULT), p.match(COLLATE), p.accept(EQUAL_OPERATOR), p.parseCollationName())
}

func (p *Parser) isDefaultCharsetStart() bool {
	return p.isCharsetStart() || (p.is(DEFAULT) && (p.la(2) == CHARSET || (p.la(2) == CHAR && p.la(3) == SET)))
}

func (p *Parser) parseDefaultCharset() *ast.Rule {
	return rule("defaultCharset", p.accept(DEFAULT), p.parseCharset(), p.accept(EQUAL_OPERATOR), p.parseCharsetName())
}

func (p *Parser) isDefaultEncryptionStart() bool {
	return p.is(ENCRYPTION) || p.isSeq(DEFAULT, ENCRYPTION)
}

func (p *Parser) parseDefaultEncryption() *ast.Rule {
	return rule("defaultEncryption",
		p.accept(DEFAULT), p.match(ENCRYPTION), p.accept(EQUAL_OPERATOR), p.parseTextStringLiteral())
}

// ---------- Partitioning ----------

func (p *Parser) parsePartitionClause() *ast.Rule {
	n := rule("partitionClause", p.match(PARTITION), p.match(BY), p.parsePartitionTypeDef())
	if p.is(PARTITIONS) {
		n.Add(p.consume(), p.parseRealUlongNumber())
	}
	if p.is(SUBPARTITION) {
		n.Add(p.parseSubPartitions())
	}
	if p.is(OPEN_PAR) {
		n.Add(p.parsePartitionDefinitions())
	}
	return n
}

func (p *Parser) parsePartitionTypeDef() *ast.Rule {
	n := rule("partitionTypeDef")
	switch {
	case p.is(KEY) || p.isSeq(LINEAR, KEY):
		n.Add(p.accept(LINEAR), p.consume())
		if p.is(ALGORITHM) {
			n.Add(p.parsePartitionKeyAlgorithm())
		}
		n.Add(p.match(OPEN_PAR))
		if !p.is(CLOSE_PAR) {
			n.Add(p.parseIdentifierList())
		}
		n.Add(p.match(CLOSE_PAR))
	case p.is(HASH) || p.isSeq(LINEAR, HASH):
		n.Add(p.accept(LINEAR), p.consume(), p.match(OPEN_PAR), p.parseBitExpr(), p.match(CLOSE_PAR))
	case p.isAny(RANGE, LIST):
		n.Add(p.consume())
		if p.is(COLUMNS) {
			n.Add(p.consume(), p.match(OPEN_PAR))
			if !p.is(CLOSE_PAR) {
				n.Add(p.parseIdentifierList())
			}
			n.Add(p.match(CLOSE_PAR))
		} else {
			n.Add(p.match(OPEN_PAR), p.parseBitExpr(), p.match(CLOSE_PAR))
		}
	default:
		return p.fail("partitionTypeDef")
	}
	return n
}

// parsePartitionKeyAlgorithm accepts ALGORITHM = n from 5.7.0.
func (p *Parser) parsePartitionKeyAlgorithm() *ast.Rule {
	if p.version < 50700 {
		return p.fail("partitionKeyAlgorithm")
	}
	return rule("partitionKeyAlgorithm", p.match(ALGORITHM), p.match(EQUAL_OPERATOR), p.parseRealUlongNumber())
}

func (p *Parser) parseSubPartitions() *ast.Rule {
	n := rule("subPartitions", p.match(SUBPARTITION), p.match(BY), p.accept(LINEAR))
	switch {
	case p.is(HASH):
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseBitExpr(), p.match(CLOSE_PAR))
	case p.is(KEY):
		n.Add(p.consume())
		if p.is(ALGORITHM) {
			n.Add(p.parsePartitionKeyAlgorithm())
		}
		n.Add(p.parseIdentifierListWithParentheses())
	default:
		return p.fail("subPartitions")
	}
	if p.is(SUBPARTITIONS) {
		n.Add(p.consume(), p.parseRealUlongNumber())
	}
	return n
}

func (p *Parser) parsePartitionDefinitions() *ast.Rule {
	n := rule("partitionDefinitions", p.match(OPEN_PAR), p.parsePartitionDefinition())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parsePartitionDefinition())
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parsePartitionDefinition() *ast.Rule {
	n := rule("partitionDefinition", p.match(PARTITION), p.parseIdentifier())
	switch {
	case p.isSeq(VALUES, LESS):
		n.Add(p.consume(), p.consume(), p.match(THAN))
		if p.is(MAXVALUE) {
			n.Add(p.consume())
		} else {
			n.Add(p.parsePartitionValueItemListParen())
		}
	case p.isSeq(VALUES, IN):
		n.Add(p.consume(), p.consume(), p.parsePartitionValuesIn())
	}
	for p.isPartitionOptionStart() {
		n.Add(p.parsePartitionOption())
	}
	if p.is(OPEN_PAR) {
		n.Add(p.consume(), p.parseSubpartitionDefinition())
		for p.is(COMMA) {
			n.Add(p.consume(), p.parseSubpartitionDefinition())
		}
		n.Add(p.match(CLOSE_PAR))
	}
	return n
}

func (p *Parser) parsePartitionValuesIn() *ast.Rule {
	if p.isSeq(OPEN_PAR, OPEN_PAR) {
		n := rule("partitionValuesIn", p.consume(), p.parsePartitionValueItemListParen())
		for p.is(COMMA) {
			n.Add(p.consume(), p.parsePartitionValueItemListParen())
		}
		n.Add(p.match(CLOSE_PAR))
		return n
	}
	return rule("partitionValuesIn", p.parsePartitionValueItemListParen())
}

func (p *Parser) parsePartitionValueItemListParen() *ast.Rule {
	item := func() *ast.Rule {
		if p.is(MAXVALUE) {
			return rule("partitionValueItem", p.consume())
		}
		return rule("partitionValueItem", p.parseBitExpr())
	}
	n := rule("partitionValueItemListParen", p.match(OPEN_PAR), item())
	for p.is(COMMA) {
		n.Add(p.consume(), item())
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) isPartitionOptionStart() bool {
	switch p.la(1) {
	case TABLESPACE, ENGINE, NODEGROUP, MAX_ROWS, MIN_ROWS, COMMENT:
		return true
	case STORAGE:
		return p.la(2) == ENGINE
	case DATA, INDEX:
		return p.la(2) == DIRECTORY
	}
	return false
}

func (p *Parser) parsePartitionOption() *ast.Rule {
	n := rule("partitionOption")
	switch p.la(1) {
	case TABLESPACE:
		n.Add(p.consume(), p.accept(EQUAL_OPERATOR), p.parseIdentifier())
	case STORAGE, ENGINE:
		n.Add(p.accept(STORAGE), p.match(ENGINE), p.accept(EQUAL_OPERATOR), p.parseEngineRef())
	case NODEGROUP, MAX_ROWS, MIN_ROWS:
		n.Add(p.consume(), p.accept(EQUAL_OPERATOR), p.parseRealUlongNumber())
	case DATA, INDEX:
		n.Add(p.consume(), p.match(DIRECTORY), p.accept(EQUAL_OPERATOR), p.parseTextLiteral())
	case COMMENT:
		n.Add(p.consume(), p.accept(EQUAL_OPERATOR), p.parseTextLiteral())
	default:
		return p.fail("partitionOption")
	}
	return n
}

func (p *Parser) parseSubpartitionDefinition() *ast.Rule {
	n := rule("subpartitionDefinition", p.match(SUBPARTITION), p.parseTextOrIdentifier())
	for p.isPartitionOptionStart() {
		n.Add(p.parsePartitionOption())
	}
	return n
}
