package parser

import (
	"fmt"

	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

// SyntaxError reports the first grammar violation of a parse. The parser
// stops at the first error; there is no recovery and no partial tree.
type SyntaxError struct {
	// Rule is the production that found no matching alternative. It is
	// empty for errors raised while matching a single expected token.
	Rule string

	// Token is the offending token.
	Token token.Token

	// Expected is the token type a failed match asked for.
	Expected    token.TokenType
	HasExpected bool
}

func (e *SyntaxError) Error() string {
	switch {
	case e.HasExpected:
		return fmt.Sprintf("Unexpected token: %s, expected %s", e.Token, e.Expected)
	case e.Rule != "":
		return fmt.Sprintf("Unexpected token in %s: %s", e.Rule, e.Token)
	default:
		return fmt.Sprintf("Unexpected token: %s", e.Token)
	}
}

// Pos returns the source position of the offending token.
func (e *SyntaxError) Pos() token.Position {
	return e.Token.Pos
}

// raise aborts the parse. The panic is recovered by Parse.
func (p *Parser) raise(err *SyntaxError) {
	panic(err)
}

// recover turns a raised SyntaxError into the returned error. Runtime
// panics are not ours and propagate unchanged.
func (p *Parser) recover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	serr, ok := e.(*SyntaxError)
	if !ok {
		panic(e)
	}
	*errp = serr
}

// fail raises "Unexpected token in <rule>" for the next token. It never
// returns; the result type lets callers write return p.fail(rule).
func (p *Parser) fail(rule string) *ast.Rule {
	p.raise(&SyntaxError{Rule: rule, Token: p.peek()})
	return nil
}

// failToken raises "Unexpected token" for the next token.
func (p *Parser) failToken() *ast.Rule {
	p.raise(&SyntaxError{Token: p.peek()})
	return nil
}
