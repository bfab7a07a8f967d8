// Package ast defines the concrete syntax tree produced by the parser.
//
// A tree has two kinds of nodes. A Leaf wraps one consumed token and is named
// after its token type (SELECT_SYMBOL, IDENTIFIER). A Rule is named after the
// grammar production that built it (selectStatement, columnDefinition) and
// holds its children in source order. Trees are built once and never
// mutated.
package ast

import (
	"strings"

	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

// Node is a node of the concrete syntax tree.
type Node interface {
	// Kind is the token name for leaves and the production name for rules.
	Kind() string
	node()
}

// Leaf is a node created from a single token.
type Leaf struct {
	Type  token.TokenType
	Value string // raw token text
	Pos   token.Position
}

// Rule is a node created by a grammar production. Children may be empty
// for productions that matched no input.
type Rule struct {
	Name     string
	Children []Node
}

func (*Leaf) node() {}
func (*Rule) node() {}

// Kind returns the token name, e.g. SELECT_SYMBOL.
func (l *Leaf) Kind() string { return l.Type.String() }

// Kind returns the production name.
func (r *Rule) Kind() string { return r.Name }

// NewLeaf creates a leaf for tok.
func NewLeaf(tok token.Token) *Leaf {
	return &Leaf{Type: tok.Type, Value: tok.Text, Pos: tok.Pos}
}

// NewRule creates a rule node with the given children. Nil children are
// dropped so optional parts can be passed unconditionally.
func NewRule(name string, children ...Node) *Rule {
	r := &Rule{Name: name}
	r.Add(children...)
	return r
}

// Add appends children while the rule is being built, dropping nil ones.
func (r *Rule) Add(children ...Node) {
	for _, c := range children {
		if !isNil(c) {
			r.Children = append(r.Children, c)
		}
	}
}

func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Leaf:
		return v == nil
	case *Rule:
		return v == nil
	}
	return false
}

// Child returns the first direct child of the given kind, or nil.
func (r *Rule) Child(kind string) Node {
	for _, c := range r.Children {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// ChildRule returns the first direct child rule with the given name, or nil.
func (r *Rule) ChildRule(name string) *Rule {
	for _, c := range r.Children {
		if rr, ok := c.(*Rule); ok && rr.Name == name {
			return rr
		}
	}
	return nil
}

// FindAll returns every descendant rule with the given name, in pre-order.
// The receiver itself is not included.
func (r *Rule) FindAll(name string) []*Rule {
	var out []*Rule
	for _, c := range r.Children {
		Walk(c, func(n Node) bool {
			if rr, ok := n.(*Rule); ok && rr.Name == name {
				out = append(out, rr)
			}
			return true
		})
	}
	return out
}

// FirstLeaf returns the left-most leaf below r, or nil for an empty rule.
func (r *Rule) FirstLeaf() *Leaf {
	leaves := Leaves(r)
	if len(leaves) == 0 {
		return nil
	}
	return leaves[0]
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the current node.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	if r, ok := n.(*Rule); ok {
		for _, c := range r.Children {
			Walk(c, fn)
		}
	}
}

// Leaves returns the leaves below n in source order.
func Leaves(n Node) []*Leaf {
	var out []*Leaf
	Walk(n, func(n Node) bool {
		if l, ok := n.(*Leaf); ok {
			out = append(out, l)
		}
		return true
	})
	return out
}

// Text joins the values of all leaves below n with single spaces.
func Text(n Node) string {
	leaves := Leaves(n)
	parts := make([]string, len(leaves))
	for i, l := range leaves {
		parts[i] = l.Value
	}
	return strings.Join(parts, " ")
}
