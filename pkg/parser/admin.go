package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Administrative statements.
//
// Grammar:
//
//	tableAdministrationStatement → ANALYZE [noWriteToBinLog] TABLE tableRefList [histogram]
//	                             | CHECK TABLE tableRefList checkOption*
//	                             | CHECKSUM TABLE tableRefList [QUICK | EXTENDED]
//	                             | OPTIMIZE [noWriteToBinLog] TABLE tableRefList
//	                             | REPAIR [noWriteToBinLog] TABLE tableRefList repairType*
//	installUninstallStatment     → INSTALL PLUGIN identifier SONAME textStringLiteral
//	                             | INSTALL COMPONENT textStringLiteralList
//	                             | UNINSTALL PLUGIN pluginRef
//	                             | UNINSTALL COMPONENT componentRef ("," componentRef)*
//	otherAdministrativeStatement → BINLOG textLiteral
//	                             | CACHE INDEX keyCacheListOrParts IN (identifier | DEFAULT)
//	                             | FLUSH [noWriteToBinLog] (flushTables | flushOption ("," flushOption)*)
//	                             | KILL [CONNECTION | QUERY] expr
//	                             | LOAD INDEX INTO CACHE preloadTail
//	                             | SHUTDOWN
//
// The production name installUninstallStatment keeps MySQL's spelling.

func (p *Parser) parseTableAdministrationStatement() *ast.Rule {
	n := rule("tableAdministrationStatement")
	switch p.la(1) {
	case ANALYZE:
		n.Add(p.consume(), p.parseNoWriteToBinLogOpt(), p.parseTableOrTables(), p.parseTableRefList())
		if p.version >= 80000 && p.isAny(UPDATE, DROP) && p.isAnyAt(2, HISTOGRAM) {
			n.Add(p.parseHistogram())
		}
	case CHECK:
		n.Add(p.consume(), p.parseTableOrTables(), p.parseTableRefList())
		for p.isCheckOptionStart() {
			n.Add(p.parseCheckOption())
		}
	case CHECKSUM:
		n.Add(p.consume(), p.parseTableOrTables(), p.parseTableRefList(), p.acceptAny(QUICK, EXTENDED))
	case OPTIMIZE:
		n.Add(p.consume(), p.parseNoWriteToBinLogOpt(), p.parseTableOrTables(), p.parseTableRefList())
	case REPAIR:
		n.Add(p.consume(), p.parseNoWriteToBinLogOpt(), p.parseTableOrTables(), p.parseTableRefList())
		for p.isAny(QUICK, EXTENDED, USE_FRM) {
			n.Add(rule("repairType", p.consume()))
		}
	default:
		return p.fail("tableAdministrationStatement")
	}
	return n
}

func (p *Parser) parseTableOrTables() *ast.Leaf {
	return p.matchAny("tableAdministrationStatement", TABLE, TABLES)
}

func (p *Parser) parseHistogram() *ast.Rule {
	n := rule("histogram")
	if p.is(DROP) {
		n.Add(p.consume(), p.match(HISTOGRAM), p.match(ON), p.parseIdentifierList())
		return n
	}
	n.Add(p.match(UPDATE), p.match(HISTOGRAM), p.match(ON), p.parseIdentifierList())
	if p.is(WITH) {
		n.Add(p.consume(), p.match(INT_NUMBER), p.match(BUCKETS))
	}
	return n
}

func (p *Parser) isCheckOptionStart() bool {
	return p.isSeq(FOR, UPGRADE) || p.isAny(QUICK, FAST, MEDIUM, EXTENDED, CHANGED)
}

func (p *Parser) parseCheckOption() *ast.Rule {
	if p.is(FOR) {
		return rule("checkOption", p.consume(), p.match(UPGRADE))
	}
	return rule("checkOption", p.matchAny("checkOption", QUICK, FAST, MEDIUM, EXTENDED, CHANGED))
}

// ---------- INSTALL / UNINSTALL ----------

func (p *Parser) parseInstallUninstallStatement() *ast.Rule {
	n := rule("installUninstallStatment")
	if p.is(INSTALL) {
		n.Add(p.consume())
		switch {
		case p.is(PLUGIN):
			n.Add(p.consume(), p.parseIdentifier(), p.match(SONAME), p.parseTextStringLiteral())
		case p.is(COMPONENT):
			n.Add(p.consume(), p.parseTextStringLiteralList())
		default:
			return p.fail("installUninstallStatment")
		}
		return n
	}
	n.Add(p.match(UNINSTALL))
	switch {
	case p.is(PLUGIN):
		n.Add(p.consume(), p.parsePluginRef())
	case p.is(COMPONENT):
		n.Add(p.consume(), p.parseComponentRef())
		for p.is(COMMA) {
			n.Add(p.consume(), p.parseComponentRef())
		}
	default:
		return p.fail("installUninstallStatment")
	}
	return n
}

// ---------- Resource groups ----------

func (p *Parser) parseCreateResourceGroup() *ast.Rule {
	n := rule("createResourceGroup", p.match(CREATE), p.match(RESOURCE), p.match(GROUP), p.parseIdentifier(),
		p.match(TYPE))
	if p.isEqual() {
		n.Add(p.parseEqual())
	}
	n.Add(p.matchAny("createResourceGroup", USER, SYSTEM))
	p.addResourceGroupOptions(n)
	return n
}

func (p *Parser) parseAlterResourceGroup() *ast.Rule {
	n := rule("alterResourceGroup", p.match(ALTER), p.match(RESOURCE), p.match(GROUP), p.parseResourceGroupRef())
	p.addResourceGroupOptions(n)
	n.Add(p.accept(FORCE))
	return n
}

func (p *Parser) addResourceGroupOptions(n *ast.Rule) {
	if p.is(VCPU) {
		n.Add(p.parseResourceGroupVcpuList())
	}
	if p.is(THREAD_PRIORITY) {
		pr := rule("resourceGroupPriority", p.consume())
		if p.isEqual() {
			pr.Add(p.parseEqual())
		}
		pr.Add(p.accept(MINUS_OPERATOR), p.match(INT_NUMBER))
		n.Add(pr)
	}
	if p.isAny(ENABLE, DISABLE) {
		n.Add(rule("resourceGroupEnableDisable", p.consume()))
	}
}

func (p *Parser) parseResourceGroupVcpuList() *ast.Rule {
	n := rule("resourceGroupVcpuList", p.match(VCPU))
	if p.isEqual() {
		n.Add(p.parseEqual())
	}
	n.Add(p.parseVcpuNumOrRange())
	for p.is(INT_NUMBER) || (p.is(COMMA) && p.isAnyAt(2, INT_NUMBER)) {
		n.Add(p.accept(COMMA), p.parseVcpuNumOrRange())
	}
	return n
}

func (p *Parser) parseVcpuNumOrRange() *ast.Rule {
	n := rule("vcpuNumOrRange", p.match(INT_NUMBER))
	if p.is(MINUS_OPERATOR) {
		n.Add(p.consume(), p.match(INT_NUMBER))
	}
	return n
}

func (p *Parser) parseSetResourceGroup() *ast.Rule {
	n := rule("setResourceGroup", p.match(SET), p.match(RESOURCE), p.match(GROUP), p.parseIdentifier())
	if p.is(FOR) {
		n.Add(p.consume())
		list := rule("threadIdList", p.parseRealUlongNumber())
		for p.isUlongNumberStart() || (p.is(COMMA) && p.isAnyAt(2, INT_NUMBER, LONG_NUMBER, HEX_NUMBER, DECIMAL_NUMBER, FLOAT_NUMBER)) {
			list.Add(p.accept(COMMA), p.parseRealUlongNumber())
		}
		n.Add(list)
	}
	return n
}

func (p *Parser) parseDropResourceGroup() *ast.Rule {
	return rule("dropResourceGroup", p.match(DROP), p.match(RESOURCE), p.match(GROUP), p.parseResourceGroupRef(),
		p.accept(FORCE))
}

// ---------- CLONE ----------

func (p *Parser) parseCloneStatement() *ast.Rule {
	n := rule("cloneStatement", p.match(CLONE))
	switch {
	case p.is(LOCAL):
		n.Add(p.consume(), p.match(DATA), p.match(DIRECTORY))
		if p.isEqual() {
			n.Add(p.parseEqual())
		}
		n.Add(p.parseTextLiteral())
	case p.is(REMOTE):
		n.Add(p.consume())
		if p.is(FOR) {
			n.Add(p.consume(), p.match(REPLICATION))
		}
	case p.is(INSTANCE) && p.version >= 80014:
		n.Add(p.consume(), p.match(FROM), p.parseUser(), p.match(COLON), p.parseUlongNumber(),
			p.match(IDENTIFIED), p.match(BY), p.parseTextStringLiteral())
		if p.isAny(REQUIRE, DATA) {
			n.Add(p.parseDataDirSSL())
		}
	default:
		return p.fail("cloneStatement")
	}
	return n
}

func (p *Parser) parseDataDirSSL() *ast.Rule {
	n := rule("dataDirSSL")
	if p.is(DATA) {
		n.Add(p.consume(), p.match(DIRECTORY))
		if p.isEqual() {
			n.Add(p.parseEqual())
		}
		n.Add(p.parseTextStringLiteral())
	}
	if p.is(REQUIRE) {
		n.Add(rule("ssl", p.consume(), p.accept(NO), p.match(SSL)))
	}
	return n
}

// ---------- Other ----------

func (p *Parser) parseOtherAdministrativeStatement() *ast.Rule {
	n := rule("otherAdministrativeStatement")
	switch p.la(1) {
	case BINLOG:
		n.Add(p.consume(), p.parseTextLiteral())
	case CACHE:
		n.Add(p.consume(), p.match(INDEX), p.parseKeyCacheListOrParts(), p.match(IN))
		if p.is(DEFAULT) {
			n.Add(p.consume())
		} else {
			n.Add(p.parseIdentifier())
		}
	case FLUSH:
		n.Add(p.consume(), p.parseNoWriteToBinLogOpt())
		if p.isAny(TABLE, TABLES) {
			n.Add(p.parseFlushTables())
			break
		}
		n.Add(p.parseFlushOption())
		for p.is(COMMA) {
			n.Add(p.consume(), p.parseFlushOption())
		}
	case KILL:
		n.Add(p.consume(), p.acceptAny(CONNECTION, QUERY), p.parseExpr())
	case LOAD:
		n.Add(p.consume(), p.match(INDEX), p.match(INTO), p.match(CACHE), p.parsePreloadTail())
	case SHUTDOWN:
		if p.version < 50709 {
			return p.fail("otherAdministrativeStatement")
		}
		n.Add(p.consume())
	default:
		return p.fail("otherAdministrativeStatement")
	}
	return n
}

func (p *Parser) parseRestartServer() *ast.Rule {
	return rule("restartServer", p.match(RESTART))
}

func (p *Parser) parseKeyCacheListOrParts() *ast.Rule {
	first := p.parseTableRef()
	if p.is(PARTITION) {
		n := rule("assignToKeycachePartition", first, p.consume(), p.match(OPEN_PAR), p.parseAllOrPartitionNameList(),
			p.match(CLOSE_PAR))
		if p.isAny(KEY, INDEX) {
			n.Add(p.parseCacheKeyList())
		}
		return rule("keyCacheListOrParts", n)
	}
	list := rule("keyCacheList", p.finishAssignToKeycache(first))
	for p.is(COMMA) {
		list.Add(p.consume(), p.finishAssignToKeycache(p.parseTableRef()))
	}
	return rule("keyCacheListOrParts", list)
}

func (p *Parser) finishAssignToKeycache(ref *ast.Rule) *ast.Rule {
	n := rule("assignToKeycache", ref)
	if p.isAny(KEY, INDEX) {
		n.Add(p.parseCacheKeyList())
	}
	return n
}

func (p *Parser) parseCacheKeyList() *ast.Rule {
	n := rule("cacheKeyList", p.parseKeyOrIndex(), p.match(OPEN_PAR))
	if !p.is(CLOSE_PAR) {
		list := rule("keyUsageList", p.parseKeyUsageElement())
		for p.is(COMMA) {
			list.Add(p.consume(), p.parseKeyUsageElement())
		}
		n.Add(list)
	}
	n.Add(p.match(CLOSE_PAR))
	return n
}

func (p *Parser) parseKeyUsageElement() *ast.Rule {
	if p.is(PRIMARY) {
		return rule("keyUsageElement", p.consume())
	}
	return rule("keyUsageElement", p.parseIdentifier())
}

func (p *Parser) parseFlushTables() *ast.Rule {
	n := rule("flushTables", p.matchAny("flushTables", TABLE, TABLES))
	switch {
	case p.isSeq(WITH, READ, LOCK):
		n.Add(p.consume(), p.consume(), p.consume())
	case p.isIdentifierStart():
		n.Add(p.parseTableRefList())
		switch {
		case p.is(FOR) && p.version >= 50606:
			n.Add(rule("flushTablesOptions", p.consume(), p.match(EXPORT)))
		case p.isSeq(WITH, READ, LOCK):
			n.Add(rule("flushTablesOptions", p.consume(), p.consume(), p.consume()))
		}
	}
	return n
}

func (p *Parser) parseFlushOption() *ast.Rule {
	n := rule("flushOption")
	switch p.la(1) {
	case DES_KEY_FILE:
		if p.version >= 80000 {
			return p.fail("flushOption")
		}
		n.Add(p.consume())
	case HOSTS, PRIVILEGES, STATUS, USER_RESOURCES, LOGS:
		n.Add(p.consume())
	case BINARY, ENGINE, ERROR, GENERAL, SLOW:
		n.Add(rule("logType", p.consume()), p.match(LOGS))
	case RELAY:
		n.Add(p.consume(), p.match(LOGS))
		if p.isChannelStart() {
			n.Add(p.parseChannel())
		}
	case QUERY:
		if p.version >= 80000 {
			return p.fail("flushOption")
		}
		n.Add(p.consume(), p.match(CACHE))
	case OPTIMIZER_COSTS:
		if p.version < 50706 {
			return p.fail("flushOption")
		}
		n.Add(p.consume())
	default:
		return p.fail("flushOption")
	}
	return n
}

func (p *Parser) parsePreloadTail() *ast.Rule {
	first := p.parseTableRef()
	if p.is(PARTITION) {
		n := rule("preloadTail", first, rule("adminPartition", p.consume(), p.match(OPEN_PAR),
			p.parseAllOrPartitionNameList(), p.match(CLOSE_PAR)))
		if p.isAny(KEY, INDEX) {
			n.Add(p.parseCacheKeyList())
		}
		if p.is(IGNORE) {
			n.Add(p.consume(), p.match(LEAVES))
		}
		return n
	}
	list := rule("preloadList", p.finishPreloadKeys(first))
	for p.is(COMMA) {
		list.Add(p.consume(), p.finishPreloadKeys(p.parseTableRef()))
	}
	return rule("preloadTail", list)
}

func (p *Parser) finishPreloadKeys(ref *ast.Rule) *ast.Rule {
	n := rule("preloadKeys", ref)
	if p.isAny(KEY, INDEX) {
		n.Add(p.parseCacheKeyList())
	}
	if p.is(IGNORE) {
		n.Add(p.consume(), p.match(LEAVES))
	}
	return n
}
