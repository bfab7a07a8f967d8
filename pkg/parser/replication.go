package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Replication statements.
//
// Grammar:
//
//	replicationStatement → PURGE (BINARY | MASTER) LOGS (TO textLiteral | BEFORE expr)
//	                     | changeMaster
//	                     | RESET resetOption ("," resetOption)*
//	                     | RESET PERSIST [ifExists identifier]
//	                     | slave
//	                     | changeReplication
//	                     | replicationLoad
//	                     | groupReplication
//	changeMaster         → CHANGE MASTER TO masterOption ("," masterOption)* [channel]
//	changeReplication    → CHANGE REPLICATION FILTER filterDefinition ("," filterDefinition)* [channel]
//	slave                → START SLAVE [slaveThreadOptions] [UNTIL slaveUntilOptions] slaveConnectionOptions [channel]
//	                     | STOP SLAVE [slaveThreadOptions] [channel]
//	groupReplication     → (START | STOP) GROUP_REPLICATION
//	channel              → FOR CHANNEL textStringNoLinebreak

func (p *Parser) parseReplicationStatement() *ast.Rule {
	n := rule("replicationStatement")
	switch p.la(1) {
	case PURGE:
		n.Add(p.consume(), p.matchAny("replicationStatement", BINARY, MASTER), p.match(LOGS))
		switch {
		case p.is(TO):
			n.Add(p.consume(), p.parseTextLiteral())
		case p.is(BEFORE):
			n.Add(p.consume(), p.parseExpr())
		default:
			return p.fail("replicationStatement")
		}
	case CHANGE:
		switch {
		case p.la(2) == MASTER:
			n.Add(p.parseChangeMaster())
		case p.la(2) == REPLICATION && p.version >= 50700:
			n.Add(p.parseChangeReplication())
		default:
			return p.fail("replicationStatement")
		}
	case RESET:
		n.Add(p.consume())
		if p.is(PERSIST) && p.version > 80000 {
			n.Add(p.consume())
			if p.isSeq(IF, EXISTS) {
				n.Add(p.parseIfExists(), p.parseIdentifier())
			} else if p.isIdentifierStart() {
				n.Add(p.parseIdentifier())
			}
			break
		}
		n.Add(p.parseResetOption())
		for p.is(COMMA) {
			n.Add(p.consume(), p.parseResetOption())
		}
	case START, STOP:
		switch {
		case p.la(2) == SLAVE:
			n.Add(p.parseSlave())
		case p.la(2) == GROUP_REPLICATION && p.version > 50706:
			n.Add(rule("groupReplication", p.consume(), p.consume()))
		default:
			return p.fail("replicationStatement")
		}
	case LOAD:
		if p.version >= 80000 {
			return p.fail("replicationStatement")
		}
		r := rule("replicationLoad", p.consume())
		if p.is(DATA) {
			r.Add(p.consume())
		} else {
			r.Add(p.match(TABLE), p.parseTableRef())
		}
		r.Add(p.match(FROM), p.match(MASTER))
		n.Add(r)
	default:
		return p.fail("replicationStatement")
	}
	return n
}

func (p *Parser) parseResetOption() *ast.Rule {
	n := rule("resetOption")
	switch {
	case p.is(MASTER):
		n.Add(p.consume())
		if p.is(TO) && p.version >= 80000 {
			n.Add(rule("masterResetOptions", p.consume(), p.parseRealUlonglongNumber()))
		}
	case p.is(QUERY) && p.version < 80000:
		n.Add(p.consume(), p.match(CACHE))
	case p.is(SLAVE):
		n.Add(p.consume(), p.accept(ALL))
		if p.isChannelStart() {
			n.Add(p.parseChannel())
		}
	default:
		return p.fail("resetOption")
	}
	return n
}

func (p *Parser) isChannelStart() bool {
	return p.version >= 50706 && p.isSeq(FOR, CHANNEL)
}

func (p *Parser) parseChannel() *ast.Rule {
	if p.version < 50706 {
		return p.fail("channel")
	}
	return rule("channel", p.match(FOR), p.match(CHANNEL), p.parseTextStringNoLinebreak())
}

// ---------- CHANGE MASTER ----------

type masterValue int

const (
	masterText masterValue = iota
	masterTextLiteral
	masterTextStringLiteral
	masterUlong
	masterServerIDs
	masterCiphersuites
	masterPrivilegeUser
	masterPrimaryKeyCheck
)

// masterOptionValues maps each CHANGE MASTER option to the shape of its
// value.
var masterOptionValues = map[TokenType]masterValue{
	MASTER_HOST:                     masterText,
	NETWORK_NAMESPACE:               masterText,
	MASTER_BIND:                     masterText,
	MASTER_USER:                     masterText,
	MASTER_PASSWORD:                 masterText,
	MASTER_PORT:                     masterUlong,
	MASTER_CONNECT_RETRY:            masterUlong,
	MASTER_RETRY_COUNT:              masterUlong,
	MASTER_DELAY:                    masterUlong,
	MASTER_SSL:                      masterUlong,
	MASTER_SSL_CA:                   masterText,
	MASTER_SSL_CAPATH:               masterText,
	MASTER_TLS_VERSION:              masterText,
	MASTER_SSL_CERT:                 masterText,
	MASTER_TLS_CIPHERSUITES:         masterCiphersuites,
	MASTER_SSL_CIPHER:               masterText,
	MASTER_SSL_KEY:                  masterText,
	MASTER_SSL_VERIFY_SERVER_CERT:   masterUlong,
	MASTER_SSL_CRL:                  masterTextLiteral,
	MASTER_SSL_CRLPATH:              masterText,
	MASTER_PUBLIC_KEY_PATH:          masterText,
	GET_MASTER_PUBLIC_KEY:           masterUlong,
	MASTER_HEARTBEAT_PERIOD:         masterUlong,
	IGNORE_SERVER_IDS:               masterServerIDs,
	MASTER_COMPRESSION_ALGORITHM:    masterTextStringLiteral,
	MASTER_ZSTD_COMPRESSION_LEVEL:   masterUlong,
	MASTER_AUTO_POSITION:            masterUlong,
	PRIVILEGE_CHECKS_USER:           masterPrivilegeUser,
	REQUIRE_ROW_FORMAT:              masterUlong,
	REQUIRE_TABLE_PRIMARY_KEY_CHECK: masterPrimaryKeyCheck,
}

func (p *Parser) parseChangeMaster() *ast.Rule {
	n := rule("changeMaster", p.match(CHANGE), p.match(MASTER), p.match(TO))
	opts := rule("changeMasterOptions", p.parseMasterOption())
	for p.is(COMMA) {
		opts.Add(p.consume(), p.parseMasterOption())
	}
	n.Add(opts)
	if p.isChannelStart() {
		n.Add(p.parseChannel())
	}
	return n
}

func (p *Parser) parseMasterOption() *ast.Rule {
	if p.isMasterFileDefStart() {
		return rule("masterOption", p.parseMasterFileDef())
	}
	kind, ok := masterOptionValues[p.la(1)]
	if !ok {
		return p.fail("masterOption")
	}
	n := rule("masterOption", p.consume(), p.match(EQUAL_OPERATOR))
	switch kind {
	case masterText:
		n.Add(p.parseTextStringNoLinebreak())
	case masterTextLiteral:
		n.Add(p.parseTextLiteral())
	case masterTextStringLiteral:
		n.Add(p.parseTextStringLiteral())
	case masterUlong:
		n.Add(p.parseUlongNumber())
	case masterServerIDs:
		n.Add(p.parseServerIDList())
	case masterCiphersuites:
		if p.is(NULL) {
			n.Add(rule("masterTlsCiphersuitesDef", p.consume()))
		} else {
			n.Add(rule("masterTlsCiphersuitesDef", p.parseTextStringNoLinebreak()))
		}
	case masterPrivilegeUser:
		if p.is(NULL) {
			n.Add(rule("privilegeCheckDef", p.consume()))
		} else {
			n.Add(rule("privilegeCheckDef", p.parseUserIdentifierOrText()))
		}
	case masterPrimaryKeyCheck:
		n.Add(rule("tablePrimaryKeyCheckDef", p.matchAny("tablePrimaryKeyCheckDef", STREAM, ON, OFF)))
	}
	return n
}

func (p *Parser) isMasterFileDefStart() bool {
	return p.isAny(MASTER_LOG_FILE, MASTER_LOG_POS, RELAY_LOG_FILE, RELAY_LOG_POS)
}

func (p *Parser) parseMasterFileDef() *ast.Rule {
	n := rule("masterFileDef")
	switch p.la(1) {
	case MASTER_LOG_FILE, RELAY_LOG_FILE:
		n.Add(p.consume(), p.match(EQUAL_OPERATOR), p.parseTextStringNoLinebreak())
	case MASTER_LOG_POS:
		n.Add(p.consume(), p.match(EQUAL_OPERATOR), p.parseUlonglongNumber())
	case RELAY_LOG_POS:
		n.Add(p.consume(), p.match(EQUAL_OPERATOR), p.parseUlongNumber())
	default:
		return p.fail("masterFileDef")
	}
	return n
}

func (p *Parser) parseServerIDList() *ast.Rule {
	n := rule("serverIdList", p.match(OPEN_PAR))
	if !p.is(CLOSE_PAR) {
		n.Add(p.parseUlongNumber())
		for p.is(COMMA) {
			n.Add(p.consume(), p.parseUlongNumber())
		}
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

// ---------- CHANGE REPLICATION FILTER ----------

func (p *Parser) parseChangeReplication() *ast.Rule {
	n := rule("changeReplication", p.match(CHANGE), p.match(REPLICATION), p.match(FILTER), p.parseFilterDefinition())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseFilterDefinition())
	}
	if p.version >= 80000 && p.isChannelStart() {
		n.Add(p.parseChannel())
	}
	return n
}

func (p *Parser) parseFilterDefinition() *ast.Rule {
	n := rule("filterDefinition")
	kind := p.la(1)
	switch kind {
	case REPLICATE_DO_DB, REPLICATE_IGNORE_DB, REPLICATE_DO_TABLE, REPLICATE_IGNORE_TABLE,
		REPLICATE_WILD_DO_TABLE, REPLICATE_WILD_IGNORE_TABLE, REPLICATE_REWRITE_DB:
	default:
		return p.fail("filterDefinition")
	}
	n.Add(p.consume(), p.match(EQUAL_OPERATOR), p.match(OPEN_PAR))
	if !p.is(CLOSE_PAR) {
		switch kind {
		case REPLICATE_DO_DB, REPLICATE_IGNORE_DB:
			list := rule("filterDbList", p.parseSchemaRef())
			for p.is(COMMA) {
				list.Add(p.consume(), p.parseSchemaRef())
			}
			n.Add(list)
		case REPLICATE_DO_TABLE, REPLICATE_IGNORE_TABLE:
			n.Add(p.parseFilterTableList())
		case REPLICATE_WILD_DO_TABLE, REPLICATE_WILD_IGNORE_TABLE:
			list := rule("filterStringList", rule("filterWildDbTableString", p.parseTextStringNoLinebreak()))
			for p.is(COMMA) {
				list.Add(p.consume(), rule("filterWildDbTableString", p.parseTextStringNoLinebreak()))
			}
			n.Add(list)
		default:
			list := rule("filterDbPairList", p.parseSchemaIdentifierPair())
			for p.is(COMMA) {
				list.Add(p.consume(), p.parseSchemaIdentifierPair())
			}
			n.Add(list)
		}
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parseSchemaIdentifierPair() *ast.Rule {
	return rule("schemaIdentifierPair", p.match(OPEN_PAR), p.parseSchemaRef(), p.match(COMMA), p.parseSchemaRef(),
		p.match(CLOSE_PAR))
}

// ---------- START / STOP SLAVE ----------

func (p *Parser) parseSlave() *ast.Rule {
	n := rule("slave")
	if p.is(STOP) {
		n.Add(p.consume(), p.match(SLAVE))
		if p.isAny(RELAY_THREAD, SQL_THREAD) {
			n.Add(p.parseSlaveThreadOptions())
		}
		if p.isChannelStart() {
			n.Add(p.parseChannel())
		}
		return n
	}
	n.Add(p.match(START), p.match(SLAVE))
	if p.isAny(RELAY_THREAD, SQL_THREAD) {
		n.Add(p.parseSlaveThreadOptions())
	}
	if p.is(UNTIL) {
		n.Add(p.consume(), p.parseSlaveUntilOptions())
	}
	n.Add(p.parseSlaveConnectionOptions())
	if p.isChannelStart() {
		n.Add(p.parseChannel())
	}
	return n
}

func (p *Parser) parseSlaveThreadOptions() *ast.Rule {
	n := rule("slaveThreadOptions", rule("slaveThreadOption", p.matchAny("slaveThreadOption", RELAY_THREAD, SQL_THREAD)))
	for p.is(COMMA) {
		n.Add(p.consume(), rule("slaveThreadOption", p.matchAny("slaveThreadOption", RELAY_THREAD, SQL_THREAD)))
	}
	return n
}

func (p *Parser) parseSlaveUntilOptions() *ast.Rule {
	n := rule("slaveUntilOptions")
	switch {
	case p.isMasterFileDefStart():
		n.Add(p.parseMasterFileDef())
	case p.isAny(SQL_BEFORE_GTIDS, SQL_AFTER_GTIDS) && p.version >= 50606:
		n.Add(p.consume(), p.match(EQUAL_OPERATOR), p.parseTextString())
	case p.is(SQL_AFTER_MTS_GAPS) && p.version >= 50606:
		n.Add(p.consume())
	default:
		return p.fail("slaveUntilOptions")
	}
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseMasterFileDef())
	}
	return n
}

// parseSlaveConnectionOptions returns nil when no option is present.
func (p *Parser) parseSlaveConnectionOptions() *ast.Rule {
	if p.version < 50604 {
		return nil
	}
	n := rule("slaveConnectionOptions")
	for _, t := range []TokenType{USER, PASSWORD, DEFAULT_AUTH, PLUGIN_DIR} {
		if p.is(t) {
			n.Add(p.consume(), p.match(EQUAL_OPERATOR), p.parseTextString())
		}
	}
	if len(n.Children) == 0 {
		return nil
	}
	return n
}
