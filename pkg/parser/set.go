package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// SET statements. SET ROLE and SET RESOURCE GROUP are dispatched elsewhere.
//
// Grammar:
//
//	setStatement            → SET startOptionValueList
//	startOptionValueList    → optionValueNoOptionType ("," optionValue)*
//	                        | TRANSACTION transactionCharacteristics
//	                        | optionType (optionValueFollowingOptionType ("," optionValue)* | TRANSACTION transactionCharacteristics)
//	                        | PASSWORD [FOR user] equal (textString [replacePassword] [retainCurrentPassword]
//	                                                    | PASSWORD "(" textString ")")
//	                        | PASSWORD [FOR user] TO RANDOM [replacePassword] [retainCurrentPassword]
//	optionValueNoOptionType → internalVariableName equal setExprOrDefault
//	                        | charsetClause
//	                        | userVariable equal expr
//	                        | setSystemVariable equal setExprOrDefault
//	                        | NAMES (equal expr | charsetName [collate] | DEFAULT)
//	optionValue             → optionType internalVariableName equal setExprOrDefault | optionValueNoOptionType

func (p *Parser) parseSetStatement() *ast.Rule {
	return rule("setStatement", p.match(SET), p.parseStartOptionValueList())
}

func (p *Parser) isOptionTypeStart() bool {
	return p.isAny(PERSIST, PERSIST_ONLY, GLOBAL, LOCAL, SESSION)
}

func (p *Parser) parseStartOptionValueList() *ast.Rule {
	n := rule("startOptionValueList")
	switch {
	case p.is(TRANSACTION):
		n.Add(p.consume(), p.parseTransactionCharacteristics())
	case p.isOptionTypeStart():
		n.Add(p.parseOptionType())
		f := rule("startOptionValueListFollowingOptionType")
		if p.is(TRANSACTION) {
			f.Add(p.consume(), p.parseTransactionCharacteristics())
		} else {
			f.Add(rule("optionValueFollowingOptionType", p.parseInternalVariableName(), p.parseEqual(),
				p.parseSetExprOrDefault()))
			f.Add(p.parseOptionValueListContinued())
		}
		n.Add(f)
	case p.is(PASSWORD):
		p.addSetPassword(n)
	default:
		n.Add(p.parseOptionValueNoOptionType(), p.parseOptionValueListContinued())
	}
	return n
}

func (p *Parser) addSetPassword(n *ast.Rule) {
	n.Add(p.match(PASSWORD))
	if p.is(FOR) {
		n.Add(p.consume(), p.parseUser())
	}
	if p.is(TO) && p.version >= 80018 {
		n.Add(p.consume(), p.match(RANDOM))
		p.addPasswordChangeTail(n)
		return
	}
	n.Add(p.parseEqual())
	if p.is(PASSWORD) && p.version < 80014 {
		n.Add(p.consume(), p.match(OPEN_PAR), p.parseTextString(), p.match(CLOSE_PAR))
		return
	}
	n.Add(p.parseTextString())
	p.addPasswordChangeTail(n)
}

func (p *Parser) addPasswordChangeTail(n *ast.Rule) {
	if p.is(REPLACE) {
		n.Add(rule("replacePassword", p.consume(), p.parseTextString()))
	}
	n.Add(p.parseRetainCurrentPasswordOpt())
}

// parseOptionValueListContinued returns nil when no comma follows.
func (p *Parser) parseOptionValueListContinued() *ast.Rule {
	if !p.is(COMMA) {
		return nil
	}
	n := rule("optionValueListContinued")
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseOptionValue())
	}
	return n
}

func (p *Parser) parseOptionValue() *ast.Rule {
	if p.isOptionTypeStart() {
		return rule("optionValue", p.parseOptionType(), p.parseInternalVariableName(), p.parseEqual(),
			p.parseSetExprOrDefault())
	}
	return rule("optionValue", p.parseOptionValueNoOptionType())
}

func (p *Parser) parseOptionValueNoOptionType() *ast.Rule {
	n := rule("optionValueNoOptionType")
	switch {
	case p.isUserVariableStart():
		n.Add(p.parseUserVariable(), p.parseEqual(), p.parseExpr())
	case p.is(AT_AT_SIGN):
		sv := rule("setSystemVariable", p.consume())
		if p.isOptionTypeStart() && p.la(2) == DOT {
			sv.Add(p.parseSetVarIdentType())
		}
		sv.Add(p.parseInternalVariableName())
		n.Add(sv, p.parseEqual(), p.parseSetExprOrDefault())
	case p.is(NAMES):
		n.Add(p.consume())
		switch {
		case p.isEqual():
			n.Add(p.parseEqual(), p.parseExpr())
		case p.is(DEFAULT) && p.version >= 80011:
			n.Add(p.consume())
		default:
			n.Add(p.parseCharsetName())
			if p.is(COLLATE) {
				n.Add(p.parseCollate())
			}
		}
	case p.isCharsetStart():
		cc := rule("charsetClause", p.parseCharset())
		if p.is(DEFAULT) {
			cc.Add(p.consume())
		} else {
			cc.Add(p.parseCharsetName())
		}
		n.Add(cc)
	default:
		n.Add(p.parseInternalVariableName(), p.parseEqual(), p.parseSetExprOrDefault())
	}
	return n
}

// parseSetExprOrDefault takes the keyword forms only where they cannot
// begin an expression.
func (p *Parser) parseSetExprOrDefault() *ast.Rule {
	switch p.la(1) {
	case ON, ALL, SYSTEM:
		return rule("setExprOrDefault", p.consume())
	case DEFAULT, ROW:
		if p.la(2) != OPEN_PAR {
			return rule("setExprOrDefault", p.consume())
		}
	case BINARY:
		if p.isAnyAt(2, COMMA, SEMICOLON, EOF) {
			return rule("setExprOrDefault", p.consume())
		}
	}
	return rule("setExprOrDefault", p.parseExpr())
}

func (p *Parser) parseTransactionCharacteristics() *ast.Rule {
	n := rule("transactionCharacteristics")
	if p.is(READ) {
		n.Add(p.parseTransactionAccessMode())
		if p.is(ISOLATION) {
			n.Add(p.parseIsolationLevel())
		}
		return n
	}
	n.Add(p.parseIsolationLevel())
	if p.is(COMMA) {
		n.Add(p.consume(), p.parseTransactionAccessMode())
	}
	return n
}

func (p *Parser) parseTransactionAccessMode() *ast.Rule {
	return rule("transactionAccessMode", p.match(READ), p.matchAny("transactionAccessMode", WRITE, ONLY))
}

func (p *Parser) parseIsolationLevel() *ast.Rule {
	n := rule("isolationLevel", p.match(ISOLATION), p.match(LEVEL))
	switch p.la(1) {
	case REPEATABLE:
		n.Add(p.consume(), p.match(READ))
	case READ:
		n.Add(p.consume(), p.matchAny("isolationLevel", COMMITTED, UNCOMMITTED))
	case SERIALIZABLE:
		n.Add(p.consume())
	default:
		return p.fail("isolationLevel")
	}
	return n
}
