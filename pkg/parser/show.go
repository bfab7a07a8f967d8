package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// SHOW statements.
//
// Grammar (abridged):
//
//	showStatement → SHOW ( DATABASES [likeOrWhere]
//	              | [showCommandType] TABLES [inDb] [likeOrWhere]
//	              | [FULL] TRIGGERS [inDb] [likeOrWhere]
//	              | [showCommandType] COLUMNS fromOrIn tableRef [inDb] [likeOrWhere]
//	              | [EXTENDED] (INDEX | INDEXES | KEYS) fromOrIn tableRef [inDb] [whereClause]
//	              | [optionType] (STATUS | VARIABLES) [likeOrWhere]
//	              | CREATE (DATABASE | EVENT | FUNCTION | PROCEDURE | TABLE | TRIGGER | VIEW | USER) ...
//	              | ... )
//	inDb          → fromOrIn identifier
//
// The sub-forms overlap on their leading tokens, so they are tried in a
// fixed order; the first whose predicate holds wins.

type showForm struct {
	match func(p *Parser) bool
	parse func(p *Parser, n *ast.Rule)
}

var showForms []showForm

func init() {
	showForms = []showForm{
		{
			match: func(p *Parser) bool { return p.is(AUTHORS) && p.version < 50700 },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume()) },
		},
		{
			match: func(p *Parser) bool { return p.is(DATABASES) },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume(), p.parseLikeOrWhereOpt()) },
		},
		{
			match: func(p *Parser) bool { return p.la(p.showCommandTypeLen()+1) == TABLES },
			parse: func(p *Parser, n *ast.Rule) {
				n.Add(p.parseShowCommandTypeOpt(), p.consume(), p.parseInDbOpt(), p.parseLikeOrWhereOpt())
			},
		},
		{
			match: func(p *Parser) bool { return p.is(TRIGGERS) || p.isSeq(FULL, TRIGGERS) },
			parse: func(p *Parser, n *ast.Rule) {
				n.Add(p.accept(FULL), p.consume(), p.parseInDbOpt(), p.parseLikeOrWhereOpt())
			},
		},
		{
			match: func(p *Parser) bool { return p.is(EVENTS) },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume(), p.parseInDbOpt(), p.parseLikeOrWhereOpt()) },
		},
		{
			match: func(p *Parser) bool { return p.isSeq(TABLE, STATUS) || p.isSeq(OPEN, TABLES) },
			parse: func(p *Parser, n *ast.Rule) {
				n.Add(p.consume(), p.consume(), p.parseInDbOpt(), p.parseLikeOrWhereOpt())
			},
		},
		{
			match: func(p *Parser) bool { return p.is(PLUGINS) },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume()) },
		},
		{
			match: func(p *Parser) bool { return p.is(ENGINE) },
			parse: func(p *Parser, n *ast.Rule) {
				n.Add(p.consume())
				if p.is(ALL) {
					n.Add(p.consume())
				} else {
					n.Add(p.parseEngineRef())
				}
				n.Add(p.matchAny("showStatement", STATUS, MUTEX, LOGS))
			},
		},
		{
			match: func(p *Parser) bool { return p.la(p.showCommandTypeLen()+1) == COLUMNS },
			parse: func(p *Parser, n *ast.Rule) {
				n.Add(p.parseShowCommandTypeOpt(), p.consume(), p.parseFromOrIn(), p.parseTableRef(),
					p.parseInDbOpt(), p.parseLikeOrWhereOpt())
			},
		},
		{
			match: func(p *Parser) bool { return p.isAny(BINARY, MASTER) && p.la(2) == LOGS },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume(), p.consume()) },
		},
		{
			match: func(p *Parser) bool { return p.is(SLAVE) },
			parse: func(p *Parser, n *ast.Rule) {
				n.Add(p.consume())
				if p.is(HOSTS) {
					n.Add(p.consume())
					return
				}
				n.Add(p.match(STATUS))
				if p.is(NONBLOCKING) && p.version >= 50700 && p.version < 50706 {
					n.Add(rule("nonBlocking", p.consume()))
				}
				if p.isChannelStart() {
					n.Add(p.parseChannel())
				}
			},
		},
		{
			match: func(p *Parser) bool { return p.isAny(BINLOG, RELAYLOG) && p.la(2) == EVENTS },
			parse: func(p *Parser, n *ast.Rule) {
				n.Add(p.consume(), p.consume())
				if p.is(IN) {
					n.Add(p.consume(), p.parseTextString())
				}
				if p.is(FROM) {
					n.Add(p.consume(), p.parseUlonglongNumber())
				}
				if p.is(LIMIT) {
					n.Add(p.parseLimitClause())
				}
				if p.isChannelStart() {
					n.Add(p.parseChannel())
				}
			},
		},
		{
			match: func(p *Parser) bool {
				if p.is(EXTENDED) && p.version >= 80000 {
					return p.isAnyAt(2, INDEX, INDEXES, KEYS)
				}
				return p.isAny(INDEX, INDEXES, KEYS)
			},
			parse: func(p *Parser, n *ast.Rule) {
				n.Add(p.accept(EXTENDED), p.consume(), p.parseFromOrIn(), p.parseTableRef(), p.parseInDbOpt())
				if p.is(WHERE) {
					n.Add(p.parseWhereClause())
				}
			},
		},
		{
			match: func(p *Parser) bool { return p.is(ENGINES) || p.isSeq(STORAGE, ENGINES) },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.accept(STORAGE), p.consume()) },
		},
		{
			match: func(p *Parser) bool { return p.isSeq(COUNT, OPEN_PAR, MULT_OPERATOR, CLOSE_PAR) },
			parse: func(p *Parser, n *ast.Rule) {
				n.Add(p.consume(), p.consume(), p.consume(), p.consume(),
					p.matchAny("showStatement", WARNINGS, ERRORS))
			},
		},
		{
			match: func(p *Parser) bool { return p.isAny(WARNINGS, ERRORS) },
			parse: func(p *Parser, n *ast.Rule) {
				n.Add(p.consume())
				if p.is(LIMIT) {
					n.Add(p.parseLimitClause())
				}
			},
		},
		{
			match: func(p *Parser) bool { return p.is(PROFILES) },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume()) },
		},
		{
			match: func(p *Parser) bool { return p.is(PROFILE) },
			parse: func(p *Parser, n *ast.Rule) {
				n.Add(p.consume())
				if p.isProfileTypeStart() {
					n.Add(p.parseProfileType())
					for p.is(COMMA) {
						n.Add(p.consume(), p.parseProfileType())
					}
				}
				if p.is(FOR) {
					n.Add(p.consume(), p.match(QUERY), p.match(INT_NUMBER))
				}
				if p.is(LIMIT) {
					n.Add(p.parseLimitClause())
				}
			},
		},
		{
			match: func(p *Parser) bool {
				if p.isOptionTypeStart() {
					return p.isAnyAt(2, STATUS, VARIABLES)
				}
				return p.isAny(STATUS, VARIABLES)
			},
			parse: func(p *Parser, n *ast.Rule) {
				if p.isOptionTypeStart() {
					n.Add(p.parseOptionType())
				}
				n.Add(p.consume(), p.parseLikeOrWhereOpt())
			},
		},
		{
			match: func(p *Parser) bool { return p.is(PROCESSLIST) || p.isSeq(FULL, PROCESSLIST) },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.accept(FULL), p.consume()) },
		},
		{
			match: func(p *Parser) bool { return p.isCharsetStart() },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.parseCharset(), p.parseLikeOrWhereOpt()) },
		},
		{
			match: func(p *Parser) bool { return p.is(COLLATION) },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume(), p.parseLikeOrWhereOpt()) },
		},
		{
			match: func(p *Parser) bool { return p.is(CONTRIBUTORS) && p.version < 50700 },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume()) },
		},
		{
			match: func(p *Parser) bool { return p.is(PRIVILEGES) },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume()) },
		},
		{
			match: func(p *Parser) bool { return p.is(GRANTS) },
			parse: func(p *Parser, n *ast.Rule) {
				n.Add(p.consume())
				if p.is(FOR) {
					n.Add(p.consume(), p.parseUser())
					if p.is(USING) {
						n.Add(p.consume(), p.parseUserList())
					}
				}
			},
		},
		{
			match: func(p *Parser) bool { return p.isSeq(MASTER, STATUS) },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume(), p.consume()) },
		},
		{
			match: func(p *Parser) bool { return p.is(CREATE) },
			parse: func(p *Parser, n *ast.Rule) { p.addShowCreate(n) },
		},
		{
			match: func(p *Parser) bool { return p.isAny(PROCEDURE, FUNCTION) && p.la(2) == STATUS },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume(), p.consume(), p.parseLikeOrWhereOpt()) },
		},
		{
			match: func(p *Parser) bool { return p.isSeq(PROCEDURE, CODE) },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume(), p.consume(), p.parseProcedureRef()) },
		},
		{
			match: func(p *Parser) bool { return p.isSeq(FUNCTION, CODE) },
			parse: func(p *Parser, n *ast.Rule) { n.Add(p.consume(), p.consume(), p.parseFunctionRef()) },
		},
	}
}

func (p *Parser) parseShowStatement() *ast.Rule {
	n := rule("showStatement", p.match(SHOW))
	for _, f := range showForms {
		if f.match(p) {
			f.parse(p, n)
			return n
		}
	}
	return p.fail("showStatement")
}

// showCommandTypeLen returns how many tokens a FULL or EXTENDED [FULL]
// prefix occupies.
func (p *Parser) showCommandTypeLen() int {
	switch {
	case p.is(FULL):
		return 1
	case p.is(EXTENDED) && p.version >= 80000:
		if p.la(2) == FULL {
			return 2
		}
		return 1
	}
	return 0
}

func (p *Parser) parseShowCommandTypeOpt() *ast.Rule {
	switch p.showCommandTypeLen() {
	case 1:
		return rule("showCommandType", p.consume())
	case 2:
		return rule("showCommandType", p.consume(), p.consume())
	}
	return nil
}

func (p *Parser) parseFromOrIn() *ast.Rule {
	return rule("fromOrIn", p.matchAny("fromOrIn", FROM, IN))
}

func (p *Parser) parseInDbOpt() *ast.Rule {
	if !p.isAny(FROM, IN) {
		return nil
	}
	return rule("inDb", p.parseFromOrIn(), p.parseIdentifier())
}

func (p *Parser) isProfileTypeStart() bool {
	switch p.la(1) {
	case BLOCK:
		return p.la(2) == IO
	case CONTEXT:
		return p.la(2) == SWITCHES
	case PAGE:
		return p.la(2) == FAULTS
	case ALL, CPU, IPC, MEMORY, SOURCE, SWAPS:
		return true
	}
	return false
}

func (p *Parser) parseProfileType() *ast.Rule {
	switch p.la(1) {
	case BLOCK:
		return rule("profileType", p.consume(), p.match(IO))
	case CONTEXT:
		return rule("profileType", p.consume(), p.match(SWITCHES))
	case PAGE:
		return rule("profileType", p.consume(), p.match(FAULTS))
	}
	return rule("profileType", p.matchAny("profileType", ALL, CPU, IPC, MEMORY, SOURCE, SWAPS))
}

func (p *Parser) addShowCreate(n *ast.Rule) {
	n.Add(p.match(CREATE))
	switch p.la(1) {
	case DATABASE:
		n.Add(p.consume())
		if p.isSeq(IF, NOT, EXISTS) {
			n.Add(p.parseIfNotExists())
		}
		n.Add(p.parseSchemaRef())
	case EVENT:
		n.Add(p.consume(), p.parseEventRef())
	case FUNCTION:
		n.Add(p.consume(), p.parseFunctionRef())
	case PROCEDURE:
		n.Add(p.consume(), p.parseProcedureRef())
	case TABLE:
		n.Add(p.consume(), p.parseTableRef())
	case TRIGGER:
		n.Add(p.consume(), p.parseTriggerRef())
	case VIEW:
		n.Add(p.consume(), p.parseViewRef())
	case USER:
		if p.version < 50704 {
			p.fail("showStatement")
		}
		n.Add(p.consume(), p.parseUser())
	default:
		p.fail("showStatement")
	}
}
