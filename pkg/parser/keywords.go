package parser

import (
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // keyword tables read better unqualified
)

// Keyword tiers.
//
// MySQL lets most non-reserved keywords double as identifiers, but a few
// groups are excluded in particular contexts because they would make the
// grammar ambiguous there:
//
//	tier                      identifier  label  role  lvalue
//	unambiguous                   yes      yes   yes    yes
//	ambiguous1 roles+labels       yes      no    no     yes
//	ambiguous2 labels             yes      no    yes    yes
//	ambiguous3 roles              yes      yes   no     yes
//	ambiguous4 system variables   yes      yes   yes    no
//
// Servers before 8.0.17 used two coarser groups instead,
// roleOrIdentifierKeywords and roleOrLabelKeywords.

// tokenSet is a bitset over token types.
type tokenSet [(NumTokens + 63) / 64]uint64

func newTokenSet(types ...TokenType) *tokenSet {
	s := &tokenSet{}
	for _, t := range types {
		s[t/64] |= 1 << (uint(t) % 64)
	}
	return s
}

func (s *tokenSet) has(t TokenType) bool {
	if t < 0 || int(t) >= NumTokens {
		return false
	}
	return s[t/64]&(1<<(uint(t)%64)) != 0
}

var identifierKeywordsUnambiguous = newTokenSet(
	ACTION, ACCOUNT, ACTIVE, ADDDATE, ADMIN, AFTER, AGAINST, AGGREGATE, ALGORITHM, ALWAYS,
	ANY, AT, AUTOEXTEND_SIZE, AUTO_INCREMENT, AVG_ROW_LENGTH, AVG, BACKUP, BINLOG, BIT, BLOCK,
	BOOLEAN, BOOL, BTREE, BUCKETS, CASCADED, CATALOG_NAME, CHAIN, CHANGED, CHANNEL, CIPHER,
	CLASS_ORIGIN, CLIENT, CLOSE, COALESCE, CODE, COLLATION, COLUMNS, COLUMN_FORMAT, COLUMN_NAME,
	COMMITTED, COMPACT, COMPLETION, COMPONENT, COMPRESSED, COMPRESSION, CONCURRENT, CONNECTION,
	CONSISTENT, CONSTRAINT_CATALOG, CONSTRAINT_NAME, CONSTRAINT_SCHEMA, CONTEXT, CPU, CURRENT,
	CURSOR_NAME, DATAFILE, DATA, DATETIME, DATE, DAY, DEFAULT_AUTH, DEFINER, DEFINITION,
	DELAY_KEY_WRITE, DESCRIPTION, DIAGNOSTICS, DIRECTORY, DISABLE, DISCARD, DISK, DUMPFILE,
	DUPLICATE, DYNAMIC, ENABLE, ENCRYPTION, ENDS, ENFORCED, ENGINES, ENGINE, ENUM, ERRORS,
	ERROR, ESCAPE, EVENTS, EVERY, EXCHANGE, EXCLUDE, EXPANSION, EXPIRE, EXPORT, EXTENDED,
	EXTENT_SIZE, FAST, FAULTS, FILE_BLOCK_SIZE, FILTER, FIRST, FIXED, FOLLOWING, FORMAT, FOUND,
	FULL, GENERAL, GEOMETRYCOLLECTION, GEOMETRY, GET_FORMAT, GET_MASTER_PUBLIC_KEY, GRANTS,
	GROUP_REPLICATION, HASH, HISTOGRAM, HISTORY, HOSTS, HOST, HOUR, IDENTIFIED,
	IGNORE_SERVER_IDS, INACTIVE, INDEXES, INITIAL_SIZE, INSERT_METHOD, INSTANCE, INVISIBLE,
	INVOKER, IO, IPC, ISOLATION, ISSUER, JSON, KEY_BLOCK_SIZE, LAST, LEAVES, LESS, LEVEL,
	LINESTRING, LIST, LOCKED, LOCKS, LOGFILE, LOGS, MASTER_AUTO_POSITION,
	MASTER_COMPRESSION_ALGORITHM, MASTER_CONNECT_RETRY, MASTER_DELAY, MASTER_HEARTBEAT_PERIOD,
	MASTER_HOST, NETWORK_NAMESPACE, MASTER_LOG_FILE, MASTER_LOG_POS, MASTER_PASSWORD,
	MASTER_PORT, MASTER_PUBLIC_KEY_PATH, MASTER_RETRY_COUNT, MASTER_SERVER_ID,
	MASTER_SSL_CAPATH, MASTER_SSL_CA, MASTER_SSL_CERT, MASTER_SSL_CIPHER, MASTER_SSL_CRLPATH,
	MASTER_SSL_CRL, MASTER_SSL_KEY, MASTER_SSL, MASTER, MASTER_TLS_CIPHERSUITES,
	MASTER_TLS_VERSION, MASTER_USER, MASTER_ZSTD_COMPRESSION_LEVEL, MAX_CONNECTIONS_PER_HOUR,
	MAX_QUERIES_PER_HOUR, MAX_ROWS, MAX_SIZE, MAX_UPDATES_PER_HOUR, MAX_USER_CONNECTIONS,
	MEDIUM, MEMORY, MERGE, MESSAGE_TEXT, MICROSECOND, MIGRATE, MINUTE, MIN_ROWS, MODE, MODIFY,
	MONTH, MULTILINESTRING, MULTIPOINT, MULTIPOLYGON, MUTEX, MYSQL_ERRNO, NAMES, NAME, NATIONAL,
	NCHAR, NDBCLUSTER, NESTED, NEVER, NEW, NEXT, NODEGROUP, NOWAIT, NO_WAIT, NULLS, NUMBER,
	NVARCHAR, OFFSET, OJ, OLD, ONE, ONLY, OPEN, OPTIONAL, OPTIONS, ORDINALITY, ORGANIZATION,
	OTHERS, OWNER, PACK_KEYS, PAGE, PARSER, PARTIAL, PARTITIONING, PARTITIONS, PASSWORD, PATH,
	PHASE, PLUGINS, PLUGIN_DIR, PLUGIN, POINT, POLYGON, PORT, PRECEDING, PRESERVE, PREV,
	PRIVILEGES, PRIVILEGE_CHECKS_USER, PROCESSLIST, PROFILES, PROFILE, QUARTER, QUERY, QUICK,
	READ_ONLY, REBUILD, RECOVER, REDO_BUFFER_SIZE, REDUNDANT, REFERENCE, RELAY, RELAYLOG,
	RELAY_LOG_FILE, RELAY_LOG_POS, RELAY_THREAD, REMOVE, REORGANIZE, REPEATABLE,
	REPLICATE_DO_DB, REPLICATE_DO_TABLE, REPLICATE_IGNORE_DB, REPLICATE_IGNORE_TABLE,
	REPLICATE_REWRITE_DB, REPLICATE_WILD_DO_TABLE, REPLICATE_WILD_IGNORE_TABLE, USER_RESOURCES,
	RESPECT, RESTORE, RESUME, RETAIN, RETURNED_SQLSTATE, RETURNS, REUSE, REVERSE, ROLE, ROLLUP,
	ROTATE, ROUTINE, ROW_COUNT, ROW_FORMAT, RTREE, SCHEDULE, SCHEMA_NAME, SECONDARY_ENGINE,
	SECONDARY_LOAD, SECONDARY, SECONDARY_UNLOAD, SECOND, SECURITY, SERIALIZABLE, SERIAL,
	SERVER, SHARE, SIMPLE, SKIP, SLOW, SNAPSHOT, SOCKET, SONAME, SOUNDS, SOURCE,
	SQL_AFTER_GTIDS, SQL_AFTER_MTS_GAPS, SQL_BEFORE_GTIDS, SQL_BUFFER_RESULT, SQL_NO_CACHE,
	SQL_THREAD, SRID, STACKED, STARTS, STATS_AUTO_RECALC, STATS_PERSISTENT, STATS_SAMPLE_PAGES,
	STATUS, STORAGE, STRING, SUBCLASS_ORIGIN, SUBDATE, SUBJECT, SUBPARTITIONS, SUBPARTITION,
	SUSPEND, SWAPS, SWITCHES, TABLES, TABLESPACE, TABLE_CHECKSUM, TABLE_NAME, TEMPORARY,
	TEMPTABLE, TEXT, THAN, THREAD_PRIORITY, TIES, TIMESTAMP_ADD, TIMESTAMP_DIFF, TIMESTAMP,
	TIME, TRANSACTION, TRIGGERS, TYPES, TYPE, UNBOUNDED, UNCOMMITTED, UNDEFINED, UNDOFILE,
	UNDO_BUFFER_SIZE, UNKNOWN, UNTIL, UPGRADE, USER, USE_FRM, VALIDATION, VALUE, VARIABLES,
	VCPU, VIEW, VISIBLE, WAIT, WARNINGS, WEEK, WEIGHT_STRING, WITHOUT, WORK, WRAPPER, X509, XID,
	XML, YEAR,
)

// Unambiguous from 8.0.19 on.
var identifierKeywordsUnambiguous80019 = newTokenSet(
	ARRAY, FAILED_LOGIN_ATTEMPTS, MEMBER, OFF, PASSWORD_LOCK_TIME, RANDOM, REQUIRE_ROW_FORMAT,
	REQUIRE_TABLE_PRIMARY_KEY_CHECK, STREAM,
)

var identifierKeywordsAmbiguous1RolesAndLabels = newTokenSet(
	EXECUTE, RESTART, SHUTDOWN,
)

var identifierKeywordsAmbiguous2Labels = newTokenSet(
	ASCII, BEGIN, BYTE, CACHE, CHARSET, CHECKSUM, CLONE, COMMENT, COMMIT, CONTAINS, DEALLOCATE,
	DO, END, FLUSH, FOLLOWS, HANDLER, HELP, IMPORT, INSTALL, LANGUAGE, NO, PRECEDES, PREPARE,
	REPAIR, RESET, ROLLBACK, SAVEPOINT, SIGNED, SLAVE, START, STOP, TRUNCATE, UNICODE,
	UNINSTALL, XA,
)

var identifierKeywordsAmbiguous3Roles = newTokenSet(
	EVENT, FILE, NONE, PROCESS, PROXY, RELOAD, REPLICATION, RESOURCE, SUPER,
)

var identifierKeywordsAmbiguous4SystemVariables = newTokenSet(
	GLOBAL, LOCAL, PERSIST, PERSIST_ONLY, SESSION,
)

// roleOrIdentifierKeywords may be identifiers and roles but not labels
// (servers before 8.0.17).
var roleOrIdentifierKeywords = newTokenSet(
	ACCOUNT, ASCII, ALWAYS, BACKUP, BEGIN, BYTE, CACHE, CHARSET, CHECKSUM, CLONE, CLOSE, COMMENT,
	COMMIT, CONTAINS, DEALLOCATE, DO, END, FLUSH, FOLLOWS, FORMAT, GROUP_REPLICATION, HANDLER,
	HELP, HOST, INSTALL, INVISIBLE, LANGUAGE, NO, OPEN, OPTIONS, OWNER, PARSER, PARTITION, PORT,
	PRECEDES, PREPARE, REMOVE, REPAIR, RESET, RESTORE, ROLE, ROLLBACK, SAVEPOINT, SECONDARY,
	SECONDARY_ENGINE, SECONDARY_LOAD, SECONDARY_UNLOAD, SECURITY, SERVER, SIGNED, SOCKET, SLAVE,
	SONAME, START, STOP, TRUNCATE, UNICODE, UNINSTALL, UPGRADE, VISIBLE, WRAPPER, XA,
)

// roleOrLabelKeywords may be roles and labels (servers before 8.0.17).
var roleOrLabelKeywords = newTokenSet(
	ACTION, ACTIVE, ADDDATE, AFTER, AGAINST, AGGREGATE, ALGORITHM, ANALYSE, ANY, AT, AUTHORS,
	AUTO_INCREMENT, AUTOEXTEND_SIZE, AVG_ROW_LENGTH, AVG, BINLOG, BIT, BLOCK, BOOL, BOOLEAN,
	BTREE, BUCKETS, CASCADED, CATALOG_NAME, CHAIN, CHANGED, CHANNEL, CIPHER, CLIENT,
	CLASS_ORIGIN, COALESCE, CODE, COLLATION, COLUMN_NAME, COLUMN_FORMAT, COLUMNS, COMMITTED,
	COMPACT, COMPLETION, COMPONENT, COMPRESSED, COMPRESSION, CONCURRENT, CONNECTION, CONSISTENT,
	CONSTRAINT_CATALOG, CONSTRAINT_SCHEMA, CONSTRAINT_NAME, CONTEXT, CONTRIBUTORS, CPU, CURRENT,
	CURSOR_NAME, DATA, DATAFILE, DATETIME, DATE, DAY, DEFAULT_AUTH, DEFINER, DELAY_KEY_WRITE,
	DES_KEY_FILE, DESCRIPTION, DIAGNOSTICS, DIRECTORY, DISABLE, DISCARD, DISK, DUMPFILE,
	DUPLICATE, DYNAMIC, ENCRYPTION, ENDS, ENUM, ENGINE, ENGINES, ERROR, ERRORS, ESCAPE, EVENTS,
	EVERY, EXCLUDE, EXPANSION, EXPORT, EXTENDED, EXTENT_SIZE, FAULTS, FAST, FOLLOWING, FOUND,
	ENABLE, FULL, FILE_BLOCK_SIZE, FILTER, FIRST, FIXED, GENERAL, GEOMETRY, GEOMETRYCOLLECTION,
	GET_FORMAT, GRANTS, GLOBAL, HASH, HISTOGRAM, HISTORY, HOSTS, HOUR, IDENTIFIED,
	IGNORE_SERVER_IDS, INVOKER, INDEXES, INITIAL_SIZE, INSTANCE, INACTIVE, IO, IPC, ISOLATION,
	ISSUER, INSERT_METHOD, JSON, KEY_BLOCK_SIZE, LAST, LEAVES, LESS, LEVEL, LINESTRING, LIST,
	LOCAL, LOCKED, LOCKS, LOGFILE, LOGS, MAX_ROWS, MASTER, MASTER_HEARTBEAT_PERIOD, MASTER_HOST,
	MASTER_PORT, MASTER_LOG_FILE, MASTER_LOG_POS, MASTER_USER, MASTER_PASSWORD,
	MASTER_PUBLIC_KEY_PATH, MASTER_SERVER_ID, MASTER_CONNECT_RETRY, MASTER_RETRY_COUNT,
	MASTER_DELAY, MASTER_SSL, MASTER_SSL_CA, MASTER_SSL_CAPATH, MASTER_TLS_VERSION,
	MASTER_SSL_CERT, MASTER_SSL_CIPHER, MASTER_SSL_CRL, MASTER_SSL_CRLPATH, MASTER_SSL_KEY,
	MASTER_AUTO_POSITION, MAX_CONNECTIONS_PER_HOUR, MAX_QUERIES_PER_HOUR, MAX_STATEMENT_TIME,
	MAX_SIZE, MAX_UPDATES_PER_HOUR, MAX_USER_CONNECTIONS, MEDIUM, MEMORY, MERGE, MESSAGE_TEXT,
	MICROSECOND, MIGRATE, MINUTE, MIN_ROWS, MODIFY, MODE, MONTH, MULTILINESTRING, MULTIPOINT,
	MULTIPOLYGON, MUTEX, MYSQL_ERRNO, NAME, NAMES, NATIONAL, NCHAR, NDBCLUSTER, NESTED, NEVER,
	NEXT, NEW, NO_WAIT, NODEGROUP, NULLS, NOWAIT, NUMBER, NVARCHAR, OFFSET, OLD, OLD_PASSWORD,
	ONE, OPTIONAL, ORDINALITY, ORGANIZATION, OTHERS, PACK_KEYS, PAGE, PARTIAL, PARTITIONING,
	PARTITIONS, PASSWORD, PATH, PHASE, PLUGIN_DIR, PLUGIN, PLUGINS, POINT, POLYGON, PRECEDING,
	PRESERVE, PREV, THREAD_PRIORITY, PRIVILEGES, PROCESSLIST, PROFILE, PROFILES, QUARTER, QUERY,
	QUICK, READ_ONLY, REBUILD, RECOVER, REDO_BUFFER_SIZE, REDOFILE, REDUNDANT, RELAY, RELAYLOG,
	RELAY_LOG_FILE, RELAY_LOG_POS, RELAY_THREAD, REMOTE, REORGANIZE, REPEATABLE,
	REPLICATE_DO_DB, REPLICATE_IGNORE_DB, REPLICATE_DO_TABLE, REPLICATE_IGNORE_TABLE,
	REPLICATE_WILD_DO_TABLE, REPLICATE_WILD_IGNORE_TABLE, REPLICATE_REWRITE_DB, USER_RESOURCES,
	RESPECT, RESUME, RETAIN, RETURNED_SQLSTATE, RETURNS, REUSE, REVERSE, ROLLUP, ROTATE,
	ROUTINE, ROW_COUNT, ROW_FORMAT, RTREE, SCHEDULE, SCHEMA_NAME, SECOND, SERIAL, SERIALIZABLE,
	SESSION, SHARE, SIMPLE, SKIP, SLOW, SNAPSHOT, SOUNDS, SOURCE, SQL_AFTER_GTIDS,
	SQL_AFTER_MTS_GAPS, SQL_BEFORE_GTIDS, SQL_CACHE, SQL_BUFFER_RESULT, SQL_NO_CACHE,
	SQL_THREAD, SRID, STACKED, STARTS, STATS_AUTO_RECALC, STATS_PERSISTENT, STATS_SAMPLE_PAGES,
	STATUS, STORAGE, STRING, SUBCLASS_ORIGIN, SUBDATE, SUBJECT, SUBPARTITION, SUBPARTITIONS,
	SUPER, SUSPEND, SWAPS, SWITCHES, TABLE_NAME, TABLES, TABLE_CHECKSUM, TABLESPACE, TEMPORARY,
	TEMPTABLE, TEXT, THAN, TIES, TRANSACTION, TRIGGERS, TIMESTAMP, TIMESTAMP_ADD,
	TIMESTAMP_DIFF, TIME, TYPES, TYPE, UNBOUNDED, UNCOMMITTED, UNDEFINED, UNDO_BUFFER_SIZE,
	UNDOFILE, UNKNOWN, UNTIL, USER, USE_FRM, VARIABLES, VCPU, VIEW, VALUE, WARNINGS, WAIT, WEEK,
	WORK, WEIGHT_STRING, X509, XID, XML, YEAR,
)

var roleOrLabelKeywordsBefore80000 = newTokenSet(CUBE, IMPORT, FUNCTION, ROWS, ROW)

var roleOrLabelKeywordsSince80000 = newTokenSet(EXCHANGE, EXPIRE, ONLY, SUPER, VALIDATION, WITHOUT)

// ---------- Tier predicates ----------

func (p *Parser) isUnambiguousKeyword(t TokenType) bool {
	return identifierKeywordsUnambiguous.has(t) ||
		(p.version >= 80019 && identifierKeywordsUnambiguous80019.has(t))
}

// isRoleOrIdentifierKeyword is the pre-8.0.17 group of keywords usable as
// identifiers and role names.
func (p *Parser) isRoleOrIdentifierKeyword(t TokenType) bool {
	switch {
	case roleOrIdentifierKeywords.has(t):
		return true
	case t == SHUTDOWN:
		return p.version >= 50709
	case t == IMPORT:
		return p.version >= 80000
	}
	return false
}

// isRoleOrLabelKeyword is the pre-8.0.17 group of keywords usable as role
// names and labels.
func (p *Parser) isRoleOrLabelKeyword(t TokenType) bool {
	switch {
	case roleOrLabelKeywords.has(t):
		return true
	case t == SHUTDOWN:
		return p.version < 50709
	case roleOrLabelKeywordsBefore80000.has(t):
		return p.version < 80000
	case roleOrLabelKeywordsSince80000.has(t):
		return p.version >= 80000
	case t == ADMIN:
		return p.version >= 80014
	}
	return false
}

// isIdentifierKeyword reports whether keyword t can be a plain identifier.
func (p *Parser) isIdentifierKeyword(t TokenType) bool {
	if p.version < 80017 {
		switch {
		case p.isLabelKeyword(t), p.isRoleOrIdentifierKeyword(t), t == EXECUTE:
			return true
		case t == SHUTDOWN:
			return p.version >= 50709
		case t == RESTART:
			return p.version >= 80011
		}
		return false
	}
	return p.isUnambiguousKeyword(t) ||
		identifierKeywordsAmbiguous1RolesAndLabels.has(t) ||
		identifierKeywordsAmbiguous2Labels.has(t) ||
		identifierKeywordsAmbiguous3Roles.has(t) ||
		identifierKeywordsAmbiguous4SystemVariables.has(t)
}

// isLabelKeyword reports whether keyword t can name a stored program label.
func (p *Parser) isLabelKeyword(t TokenType) bool {
	if p.version < 80017 {
		switch t {
		case EVENT, FILE, NONE, PROCESS, PROXY, RELOAD, REPLICATION, RESOURCE, SUPER:
			return true
		}
		return p.isRoleOrLabelKeyword(t)
	}
	return p.isUnambiguousKeyword(t) ||
		identifierKeywordsAmbiguous3Roles.has(t) ||
		identifierKeywordsAmbiguous4SystemVariables.has(t)
}

// isRoleKeyword reports whether keyword t can be an unquoted role name.
func (p *Parser) isRoleKeyword(t TokenType) bool {
	if p.version < 80017 {
		return p.isRoleOrLabelKeyword(t) || p.isRoleOrIdentifierKeyword(t)
	}
	return p.isUnambiguousKeyword(t) ||
		identifierKeywordsAmbiguous2Labels.has(t) ||
		identifierKeywordsAmbiguous4SystemVariables.has(t)
}

// isLValueKeyword reports whether keyword t can be the target of a SET
// assignment without a scope prefix.
func (p *Parser) isLValueKeyword(t TokenType) bool {
	return p.isUnambiguousKeyword(t) ||
		identifierKeywordsAmbiguous1RolesAndLabels.has(t) ||
		identifierKeywordsAmbiguous2Labels.has(t) ||
		identifierKeywordsAmbiguous3Roles.has(t)
}
