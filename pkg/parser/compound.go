package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Stored program bodies.
//
// Grammar:
//
//	compoundStatement     → simpleStatement | returnStatement | ifStatement | caseStatement
//	                      | labeledBlock | unlabeledBlock | labeledControl | unlabeledControl
//	                      | leaveStatement | iterateStatement | cursorOpen | cursorClose | cursorFetch
//	compoundStatementList → (compoundStatement ";")+
//	ifStatement           → IF ifBody END IF
//	ifBody                → expr thenStatement [ELSEIF ifBody | ELSE compoundStatementList]
//	caseStatement         → CASE [expr] (whenExpression thenStatement)+ [elseStatement] END CASE
//	beginEndBlock         → BEGIN [spDeclarations] [compoundStatementList] END
//	unlabeledControl      → loopBlock | whileDoBlock | repeatUntilBlock
//	spDeclaration         → variableDeclaration | conditionDeclaration | handlerDeclaration | cursorDeclaration

func (p *Parser) parseCompoundStatement() *ast.Rule {
	p.enter("compoundStatement")
	defer p.leave()

	n := rule("compoundStatement")
	switch p.la(1) {
	case RETURN:
		n.Add(rule("returnStatement", p.consume(), p.parseExpr()))
	case IF:
		n.Add(p.parseIfStatement())
	case CASE:
		n.Add(p.parseCaseStatement())
	case BEGIN:
		n.Add(rule("unlabeledBlock", p.parseBeginEndBlock()))
	case LOOP, WHILE, REPEAT:
		n.Add(p.parseUnlabeledControl())
	case LEAVE:
		n.Add(rule("leaveStatement", p.consume(), p.parseLabelRef()))
	case ITERATE:
		n.Add(rule("iterateStatement", p.consume(), p.parseLabelRef()))
	case OPEN:
		n.Add(rule("cursorOpen", p.consume(), p.parseIdentifier()))
	case CLOSE:
		n.Add(rule("cursorClose", p.consume(), p.parseIdentifier()))
	case FETCH:
		n.Add(p.parseCursorFetch())
	default:
		if p.isLabelIdentifierStart() && p.la(2) == COLON {
			n.Add(p.parseLabeled())
		} else {
			n.Add(p.parseSimpleStatement())
		}
	}
	return n
}

// isCompoundListEnd reports whether the next token closes the enclosing
// statement list.
func (p *Parser) isCompoundListEnd() bool {
	return p.isAny(END, ELSEIF, ELSE, WHEN, UNTIL, EOF)
}

func (p *Parser) parseCompoundStatementList() *ast.Rule {
	n := rule("compoundStatementList", p.parseCompoundStatement(), p.match(SEMICOLON))
	for !p.isCompoundListEnd() {
		n.Add(p.parseCompoundStatement(), p.match(SEMICOLON))
	}
	return n
}

func (p *Parser) parseIfStatement() *ast.Rule {
	return rule("ifStatement", p.match(IF), p.parseIfBody(), p.match(END), p.match(IF))
}

func (p *Parser) parseIfBody() *ast.Rule {
	n := rule("ifBody", p.parseExpr(), p.parseThenStatement())
	switch {
	case p.is(ELSEIF):
		n.Add(p.consume(), p.parseIfBody())
	case p.is(ELSE):
		n.Add(p.consume(), p.parseCompoundStatementList())
	}
	return n
}

func (p *Parser) parseThenStatement() *ast.Rule {
	return rule("thenStatement", p.match(THEN), p.parseCompoundStatementList())
}

func (p *Parser) parseCaseStatement() *ast.Rule {
	n := rule("caseStatement", p.match(CASE))
	if !p.is(WHEN) {
		n.Add(p.parseExpr())
	}
	n.Add(p.parseWhenExpression(), p.parseThenStatement())
	for p.is(WHEN) {
		n.Add(p.parseWhenExpression(), p.parseThenStatement())
	}
	if p.is(ELSE) {
		n.Add(rule("elseStatement", p.consume(), p.parseCompoundStatementList()))
	}
	n.Add(p.match(END), p.match(CASE))
	return n
}

// parseLabeled parses "label:" followed by a block or a loop, with an
// optional closing label.
func (p *Parser) parseLabeled() *ast.Rule {
	label := rule("label", p.parseLabelIdentifier(), p.match(COLON))
	var n *ast.Rule
	if p.is(BEGIN) {
		n = rule("labeledBlock", label, p.parseBeginEndBlock())
	} else {
		n = rule("labeledControl", label, p.parseUnlabeledControl())
	}
	if p.isLabelIdentifierStart() {
		n.Add(p.parseLabelRef())
	}
	return n
}

func (p *Parser) parseBeginEndBlock() *ast.Rule {
	n := rule("beginEndBlock", p.match(BEGIN))
	if p.is(DECLARE) {
		decls := rule("spDeclarations")
		for p.is(DECLARE) {
			decls.Add(p.parseSpDeclaration(), p.match(SEMICOLON))
		}
		n.Add(decls)
	}
	if !p.is(END) {
		n.Add(p.parseCompoundStatementList())
	}
	n.Add(p.match(END))
	return n
}

func (p *Parser) parseUnlabeledControl() *ast.Rule {
	n := rule("unlabeledControl")
	switch p.la(1) {
	case LOOP:
		n.Add(rule("loopBlock", p.consume(), p.parseCompoundStatementList(), p.match(END), p.match(LOOP)))
	case WHILE:
		n.Add(rule("whileDoBlock", p.consume(), p.parseExpr(), p.match(DO), p.parseCompoundStatementList(),
			p.match(END), p.match(WHILE)))
	case REPEAT:
		n.Add(rule("repeatUntilBlock", p.consume(), p.parseCompoundStatementList(), p.match(UNTIL), p.parseExpr(),
			p.match(END), p.match(REPEAT)))
	default:
		return p.fail("unlabeledControl")
	}
	return n
}

func (p *Parser) parseCursorFetch() *ast.Rule {
	n := rule("cursorFetch", p.match(FETCH))
	switch {
	case p.isSeq(NEXT, FROM):
		n.Add(p.consume(), p.consume())
	case p.is(FROM):
		n.Add(p.consume())
	}
	n.Add(p.parseIdentifier(), p.match(INTO), p.parseIdentifierList())
	return n
}

// ---------- Declarations ----------

func (p *Parser) parseSpDeclaration() *ast.Rule {
	n := rule("spDeclaration")
	switch {
	case p.isAnyAt(2, CONTINUE, EXIT, UNDO) && p.la(3) == HANDLER:
		n.Add(p.parseHandlerDeclaration())
	case p.la(3) == CONDITION:
		n.Add(rule("conditionDeclaration", p.match(DECLARE), p.parseIdentifier(), p.consume(), p.match(FOR),
			p.parseSpCondition()))
	case p.la(3) == CURSOR:
		n.Add(rule("cursorDeclaration", p.match(DECLARE), p.parseIdentifier(), p.consume(), p.match(FOR),
			p.parseSelectStatement()))
	default:
		v := rule("variableDeclaration", p.match(DECLARE), p.parseIdentifierList(), p.parseDataType())
		if p.is(COLLATE) {
			v.Add(p.parseCollate())
		}
		if p.is(DEFAULT) {
			v.Add(p.consume(), p.parseExpr())
		}
		n.Add(v)
	}
	return n
}

func (p *Parser) parseHandlerDeclaration() *ast.Rule {
	n := rule("handlerDeclaration", p.match(DECLARE), p.matchAny("handlerDeclaration", CONTINUE, EXIT, UNDO),
		p.match(HANDLER), p.match(FOR), p.parseHandlerCondition())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseHandlerCondition())
	}
	n.Add(p.parseCompoundStatement())
	return n
}

func (p *Parser) parseSpCondition() *ast.Rule {
	if p.is(SQLSTATE) {
		return rule("spCondition", p.parseSqlstate())
	}
	return rule("spCondition", p.parseUlongNumber())
}

func (p *Parser) parseHandlerCondition() *ast.Rule {
	n := rule("handlerCondition")
	switch {
	case p.is(SQLSTATE) || p.isUlongNumberStart():
		n.Add(p.parseSpCondition())
	case p.isAny(SQLWARNING, SQLEXCEPTION):
		n.Add(p.consume())
	case p.isNotRuleAt(1) && p.la(2) == FOUND:
		n.Add(p.parseNotRule(), p.consume())
	default:
		n.Add(p.parseIdentifier())
	}
	return n
}
