// Package parser implements a predictive recursive-descent parser for MySQL.
//
// # Usage
//
//	tree, err := parser.ParseString("SELECT 1", parser.Config{ServerVersion: 80017})
//	if err != nil {
//	    var serr *parser.SyntaxError
//	    if errors.As(err, &serr) { ... serr.Pos() ... }
//	}
//
// The result is a concrete syntax tree (package ast) whose rule nodes carry
// the names of MySQL's grammar productions and whose leaves are the consumed
// tokens, so every token of the input appears in the tree.
//
// # Grammar Overview
//
//	query           → EOF | statement (";" statement)* [";"] EOF
//	statement       → beginWork | simpleStatement
//	simpleStatement → alterStatement | createStatement | dropStatement | ...
//	                  | selectStatement | insertStatement | ... | showStatement
//
// Each production is one method. Alternatives are chosen by looking at up to
// four tokens ahead and at the configured server version, so a construct
// introduced in, say, 8.0.16 is only recognised when the parser targets
// 80016 or later. See each file for the grammar of that area.
//
// The first grammar violation aborts the parse with a *SyntaxError.
package parser

import (
	"io"
	"log/slog"

	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	"github.com/leapstack-labs/mysqlparse/pkg/lexer"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

// DefaultServerVersion is the server version used when none is configured.
const DefaultServerVersion = 80019

// TokenSource is the view of the lexer the grammar consumes.
type TokenSource interface {
	// PeekNextToken returns the token n positions ahead (n >= 1) without
	// consuming it.
	PeekNextToken(n int) token.Token
	// GetNextToken consumes the next token.
	GetNextToken() token.Token
	// IsSQLModeActive reports whether a sql_mode flag is in effect.
	IsSQLModeActive(mode lexer.SQLMode) bool
}

// Parser parses one token stream. It is not safe for concurrent use; run
// independent parses with independent parsers.
type Parser struct {
	src      TokenSource
	version  int
	logger   *slog.Logger
	maxDepth int
	depth    int
}

// Option configures a Parser.
type Option func(*Parser)

// WithServerVersion sets the MySQL version whose grammar is accepted, in
// packed form (80017 for 8.0.17).
func WithServerVersion(v int) Option {
	return func(p *Parser) {
		p.version = v
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMaxDepth limits how deeply expressions, subqueries and compound
// statements may nest. Zero means no limit.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// New creates a parser reading from src.
func New(src TokenSource, opts ...Option) *Parser {
	p := &Parser{
		src:     src,
		version: DefaultServerVersion,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ServerVersion returns the version the parser targets.
func (p *Parser) ServerVersion() int {
	return p.version
}

// Parse parses the whole input as a query: zero or more statements
// separated by semicolons. On error the tree is nil.
func (p *Parser) Parse() (tree *ast.Rule, err error) {
	defer func() {
		if err != nil {
			p.logger.Debug("parse failed", "server_version", p.version, "error", err)
		}
	}()
	defer p.recover(&err)

	tree = p.parseQuery()
	p.logger.Debug("parsed query", "server_version", p.version, "statements", len(tree.Children))
	return tree, nil
}

// Config bundles the settings for ParseString.
type Config struct {
	ServerVersion int
	SQLMode       lexer.SQLMode
	Logger        *slog.Logger
	MaxDepth      int
}

// ParseString lexes and parses sql. A zero ServerVersion selects
// DefaultServerVersion.
func ParseString(sql string, cfg Config) (*ast.Rule, error) {
	if cfg.ServerVersion == 0 {
		cfg.ServerVersion = DefaultServerVersion
	}
	stream := lexer.NewStream(sql, lexer.Config{ServerVersion: cfg.ServerVersion, SQLMode: cfg.SQLMode})
	p := New(stream,
		WithServerVersion(cfg.ServerVersion),
		WithLogger(cfg.Logger),
		WithMaxDepth(cfg.MaxDepth),
	)
	return p.Parse()
}

// ---------- Token Helpers ----------

// peek returns the next token without consuming it.
func (p *Parser) peek() token.Token {
	return p.src.PeekNextToken(1)
}

// la returns the type of the token n positions ahead.
func (p *Parser) la(n int) token.TokenType {
	return p.src.PeekNextToken(n).Type
}

// is reports whether the next token has type t.
func (p *Parser) is(t token.TokenType) bool {
	return p.la(1) == t
}

// isAny reports whether the next token has one of the given types.
func (p *Parser) isAny(types ...token.TokenType) bool {
	next := p.la(1)
	for _, t := range types {
		if next == t {
			return true
		}
	}
	return false
}

// isSeq reports whether the next tokens are exactly types, in order. It is
// how multi-word phrases such as IF NOT EXISTS are recognised.
func (p *Parser) isSeq(types ...token.TokenType) bool {
	for i, t := range types {
		if p.la(i+1) != t {
			return false
		}
	}
	return true
}

// match consumes the next token, which must have type t.
func (p *Parser) match(t token.TokenType) *ast.Leaf {
	tok := p.src.GetNextToken()
	if tok.Type != t {
		p.raise(&SyntaxError{Token: tok, Expected: t, HasExpected: true})
	}
	return ast.NewLeaf(tok)
}

// consume takes the next token whatever its type. Callers have already
// checked it.
func (p *Parser) consume() *ast.Leaf {
	return ast.NewLeaf(p.src.GetNextToken())
}

// accept consumes the next token if it has type t and returns nil otherwise.
func (p *Parser) accept(t token.TokenType) *ast.Leaf {
	if p.is(t) {
		return p.consume()
	}
	return nil
}

// acceptAny consumes the next token if it has one of the given types.
func (p *Parser) acceptAny(types ...token.TokenType) *ast.Leaf {
	if p.isAny(types...) {
		return p.consume()
	}
	return nil
}

// matchAny consumes one of the given token types or fails in rule.
func (p *Parser) matchAny(rule string, types ...token.TokenType) *ast.Leaf {
	if !p.isAny(types...) {
		p.fail(rule)
	}
	return p.consume()
}

// sqlMode reports whether a sql_mode flag is active on the token source.
func (p *Parser) sqlMode(mode lexer.SQLMode) bool {
	return p.src.IsSQLModeActive(mode)
}

// enter guards recursion depth when a limit is configured. Every enter is
// paired with a deferred leave.
func (p *Parser) enter(rule string) {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.fail(rule)
	}
}

func (p *Parser) leave() {
	p.depth--
}

// rule builds an interior node; nil children are dropped.
func rule(name string, children ...ast.Node) *ast.Rule {
	return ast.NewRule(name, children...)
}
