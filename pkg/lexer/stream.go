package lexer

import "github.com/leapstack-labs/mysqlparse/pkg/token"

// maxLookahead bounds PeekNextToken. The grammar needs at most four tokens.
const maxLookahead = 8

// Stream is the token source the parser reads from. It keeps a ring buffer
// of pre-read tokens so the parser can look ahead without consuming input.
// A Stream is not safe for concurrent use; give each parse its own.
type Stream struct {
	input string
	cfg   Config
	lexer *Lexer

	buf   [maxLookahead]token.Token
	head  int // index of the next token in buf
	count int // number of buffered tokens from head onward
}

// NewStream creates a Stream over input.
func NewStream(input string, cfg Config) *Stream {
	return &Stream{
		input: input,
		cfg:   cfg,
		lexer: New(input, cfg),
	}
}

// fill ensures at least n tokens are buffered.
func (s *Stream) fill(n int) {
	if n > maxLookahead {
		panic("lexer: lookahead exceeds buffer size")
	}
	for s.count < n {
		s.buf[(s.head+s.count)%maxLookahead] = s.lexer.NextToken()
		s.count++
	}
}

// PeekNextToken returns the token n positions ahead of the cursor without
// consuming anything; PeekNextToken(1) is the next token.
func (s *Stream) PeekNextToken(n int) token.Token {
	if n < 1 {
		n = 1
	}
	s.fill(n)
	return s.buf[(s.head+n-1)%maxLookahead]
}

// GetNextToken consumes and returns the next token. At the end of input it
// returns EOF without advancing.
func (s *Stream) GetNextToken() token.Token {
	s.fill(1)
	tok := s.buf[s.head]
	if tok.Type == token.EOF {
		return tok
	}
	s.head = (s.head + 1) % maxLookahead
	s.count--
	return tok
}

// IsSQLModeActive reports whether the stream was configured with mode.
func (s *Stream) IsSQLModeActive(mode SQLMode) bool {
	return s.cfg.SQLMode.Has(mode)
}

// ServerVersion returns the version the stream lexes for.
func (s *Stream) ServerVersion() int {
	return s.cfg.ServerVersion
}

// Comments returns the comments skipped so far.
func (s *Stream) Comments() []*token.Comment {
	return s.lexer.Comments
}

// Reset rewinds the stream to the start of its input.
func (s *Stream) Reset() {
	s.lexer = New(s.input, s.cfg)
	s.head, s.count = 0, 0
}
