// Package format renders concrete syntax trees for people and tools.
//
// Tree and SExpr show the structure, SQL shows the text the tree covers, and
// JSON and YAML export the tree for other programs.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

// Tree renders n as an indented outline with one node per line. Rules show
// their production name, leaves their token name and quoted text:
//
//	query
//	  selectStatement
//	    ...
//	      SELECT_SYMBOL "SELECT"
func Tree(n ast.Node) string {
	p := newPrinter()
	p.tree(n)
	return p.String()
}

func (p *printer) tree(n ast.Node) {
	switch v := n.(type) {
	case *ast.Leaf:
		if v.Type == token.EOF {
			p.write("EOF")
		} else {
			p.write(v.Kind() + " " + strconv.Quote(v.Value))
		}
		p.writeln()
	case *ast.Rule:
		p.write(v.Name)
		p.writeln()
		p.indent()
		for _, c := range v.Children {
			p.tree(c)
		}
		p.dedent()
	}
}

// SExpr renders n on a single line, as in
// (query (selectStatement (queryExpression ... SELECT ...))).
// Leaves appear as their text, quoted when the text would be ambiguous.
func SExpr(n ast.Node) string {
	var b strings.Builder
	sexpr(&b, n)
	return b.String()
}

func sexpr(b *strings.Builder, n ast.Node) {
	switch v := n.(type) {
	case *ast.Leaf:
		b.WriteString(atom(v))
	case *ast.Rule:
		b.WriteByte('(')
		b.WriteString(v.Name)
		for _, c := range v.Children {
			b.WriteByte(' ')
			sexpr(b, c)
		}
		b.WriteByte(')')
	}
}

func atom(l *ast.Leaf) string {
	if l.Type == token.EOF {
		return "<EOF>"
	}
	if l.Value == "" || strings.ContainsAny(l.Value, " \t\n()\"") {
		return strconv.Quote(l.Value)
	}
	return l.Value
}

// SQL rebuilds statement text from the leaves below n. Keywords are upper
// cased and tokens are separated by single spaces except around
// punctuation, so SQL(tree) is a normalised rendering of the input.
func SQL(n ast.Node) string {
	upper := cases.Upper(language.Und)

	var b strings.Builder
	var prev *ast.Leaf
	for _, l := range ast.Leaves(n) {
		if l.Type == token.EOF {
			continue
		}
		text := l.Value
		if l.Type.IsKeyword() {
			text = upper.String(text)
		}
		if prev != nil && spaceBetween(prev, l) {
			b.WriteByte(' ')
		}
		b.WriteString(text)
		prev = l
	}
	return b.String()
}

// spaceBetween decides whether a separator goes between two adjacent leaves.
func spaceBetween(prev, next *ast.Leaf) bool {
	switch prev.Type {
	case token.OPEN_PAR, token.DOT, token.AT_SIGN, token.AT_AT_SIGN:
		return false
	}
	switch next.Type {
	case token.COMMA, token.CLOSE_PAR, token.DOT, token.SEMICOLON:
		return false
	case token.OPEN_PAR:
		return !isCallee(prev)
	case token.AT_SIGN, token.AT_TEXT_SUFFIX:
		return !isQuotedOrName(prev)
	}
	return true
}

// isCallee reports whether an opening parenthesis after l starts an
// argument list rather than a parenthesised expression.
func isCallee(l *ast.Leaf) bool {
	switch l.Type {
	case token.IDENTIFIER, token.BACK_TICK_QUOTED_ID:
		return true
	}
	if kw, ok := token.LookupKeyword(l.Value); ok {
		return kw.FunctionOnly
	}
	return false
}

// isQuotedOrName reports whether l can be the user part of user@host.
func isQuotedOrName(l *ast.Leaf) bool {
	switch l.Type {
	case token.SINGLE_QUOTED_TEXT, token.DOUBLE_QUOTED_TEXT, token.BACK_TICK_QUOTED_ID, token.IDENTIFIER:
		return true
	}
	return false
}
