package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Transactions, savepoints, table locks and XA.
//
// Grammar:
//
//	beginWork                     → BEGIN [WORK]
//	transactionOrLockingStatement → transactionStatement | savepointStatement | lockStatement | xaStatement
//	transactionStatement          → START TRANSACTION [transactionCharacteristic ("," transactionCharacteristic)*]
//	                              | COMMIT [WORK] [AND [NO] CHAIN] [[NO] RELEASE]
//	savepointStatement            → SAVEPOINT identifier
//	                              | ROLLBACK [WORK] (TO [SAVEPOINT] identifier | [AND [NO] CHAIN] [[NO] RELEASE])
//	                              | RELEASE SAVEPOINT identifier
//	lockStatement                 → LOCK (TABLES | TABLE) lockItem ("," lockItem)*
//	                              | LOCK INSTANCE FOR BACKUP
//	                              | UNLOCK (TABLES | TABLE | INSTANCE)
//	xaStatement                   → XA ( (START | BEGIN) xid [JOIN | RESUME]
//	                              | END xid [SUSPEND [FOR MIGRATE]] | PREPARE xid
//	                              | COMMIT xid [ONE PHASE] | ROLLBACK xid | RECOVER xaConvert )

func (p *Parser) parseBeginWork() *ast.Rule {
	return rule("beginWork", p.match(BEGIN), p.accept(WORK))
}

func (p *Parser) parseTransactionOrLockingStatement() *ast.Rule {
	n := rule("transactionOrLockingStatement")
	switch p.la(1) {
	case START, COMMIT:
		n.Add(p.parseTransactionStatement())
	case SAVEPOINT, ROLLBACK, RELEASE:
		n.Add(p.parseSavepointStatement())
	case LOCK, UNLOCK:
		n.Add(p.parseLockStatement())
	case XA:
		n.Add(p.parseXaStatement())
	default:
		return p.fail("transactionOrLockingStatement")
	}
	return n
}

func (p *Parser) parseTransactionStatement() *ast.Rule {
	n := rule("transactionStatement")
	if p.is(START) {
		n.Add(p.consume(), p.match(TRANSACTION))
		if p.isTransactionCharacteristicStart() {
			n.Add(p.parseTransactionCharacteristic())
			for p.is(COMMA) {
				n.Add(p.consume(), p.parseTransactionCharacteristic())
			}
		}
		return n
	}
	n.Add(p.match(COMMIT), p.accept(WORK))
	p.addChainAndRelease(n)
	return n
}

func (p *Parser) isTransactionCharacteristicStart() bool {
	return p.isSeq(WITH, CONSISTENT) || (p.is(READ) && p.version >= 50605)
}

func (p *Parser) parseTransactionCharacteristic() *ast.Rule {
	if p.is(WITH) {
		return rule("transactionCharacteristic", p.consume(), p.match(CONSISTENT), p.match(SNAPSHOT))
	}
	if p.is(READ) && p.version >= 50605 {
		return rule("transactionCharacteristic", p.consume(), p.matchAny("transactionCharacteristic", WRITE, ONLY))
	}
	return p.fail("transactionCharacteristic")
}

// addChainAndRelease appends the optional [AND [NO] CHAIN] [[NO] RELEASE]
// tail of COMMIT and ROLLBACK.
func (p *Parser) addChainAndRelease(n *ast.Rule) {
	if p.is(AND) {
		n.Add(p.consume(), p.accept(NO), p.match(CHAIN))
	}
	if p.is(RELEASE) || p.isSeq(NO, RELEASE) {
		n.Add(p.accept(NO), p.consume())
	}
}

func (p *Parser) parseSavepointStatement() *ast.Rule {
	n := rule("savepointStatement")
	switch p.la(1) {
	case SAVEPOINT:
		n.Add(p.consume(), p.parseIdentifier())
	case ROLLBACK:
		n.Add(p.consume(), p.accept(WORK))
		if p.is(TO) {
			n.Add(p.consume(), p.accept(SAVEPOINT), p.parseIdentifier())
		} else {
			p.addChainAndRelease(n)
		}
	case RELEASE:
		n.Add(p.consume(), p.match(SAVEPOINT), p.parseIdentifier())
	default:
		return p.fail("savepointStatement")
	}
	return n
}

func (p *Parser) parseLockStatement() *ast.Rule {
	n := rule("lockStatement")
	if p.is(UNLOCK) {
		n.Add(p.consume())
		switch {
		case p.isAny(TABLES, TABLE):
			n.Add(p.consume())
		case p.is(INSTANCE) && p.version >= 80000:
			n.Add(p.consume())
		default:
			return p.fail("lockStatement")
		}
		return n
	}
	n.Add(p.match(LOCK))
	switch {
	case p.isAny(TABLES, TABLE):
		n.Add(p.consume(), p.parseLockItem())
		for p.is(COMMA) {
			n.Add(p.consume(), p.parseLockItem())
		}
	case p.is(INSTANCE) && p.version >= 80000:
		n.Add(p.consume(), p.match(FOR), p.match(BACKUP))
	default:
		return p.fail("lockStatement")
	}
	return n
}

func (p *Parser) parseLockItem() *ast.Rule {
	n := rule("lockItem", p.parseTableRef())
	if p.isTableAliasStart() {
		n.Add(p.parseTableAlias())
	}
	opt := rule("lockOption")
	switch {
	case p.is(READ):
		opt.Add(p.consume(), p.accept(LOCAL))
	case p.isAny(LOW_PRIORITY, WRITE):
		opt.Add(p.accept(LOW_PRIORITY), p.match(WRITE))
	default:
		return p.fail("lockOption")
	}
	n.Add(opt)
	return n
}

func (p *Parser) parseXaStatement() *ast.Rule {
	n := rule("xaStatement", p.match(XA))
	switch p.la(1) {
	case START, BEGIN:
		n.Add(p.consume(), p.parseXid(), p.acceptAny(JOIN, RESUME))
	case END:
		n.Add(p.consume(), p.parseXid())
		if p.is(SUSPEND) {
			n.Add(p.consume())
			if p.is(FOR) {
				n.Add(p.consume(), p.match(MIGRATE))
			}
		}
	case PREPARE, ROLLBACK:
		n.Add(p.consume(), p.parseXid())
	case COMMIT:
		n.Add(p.consume(), p.parseXid())
		if p.is(ONE) {
			n.Add(p.consume(), p.match(PHASE))
		}
	case RECOVER:
		n.Add(p.consume())
		if p.is(CONVERT) && p.version >= 50704 {
			n.Add(rule("xaConvert", p.consume(), p.match(XID)))
		}
	default:
		return p.fail("xaStatement")
	}
	return n
}

func (p *Parser) parseXid() *ast.Rule {
	n := rule("xid", p.parseTextString())
	if p.is(COMMA) {
		n.Add(p.consume(), p.parseTextString())
		if p.is(COMMA) {
			n.Add(p.consume(), p.parseUlongNumber())
		}
	}
	return n
}
