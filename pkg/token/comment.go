package token

// CommentKind distinguishes the comment syntaxes MySQL accepts.
type CommentKind int

// Comment kinds.
const (
	DashComment      CommentKind = iota // -- comment
	HashComment                         // # comment
	BlockComment                        // /* comment */
	VersionedComment                    // /*!50708 ... */ skipped for the target server
	HintComment                         // /*+ ... */ optimizer hint
)

// Comment is a comment the lexer skipped. Versioned comments whose body was
// lexed as SQL are not recorded.
type Comment struct {
	Kind CommentKind
	Text string // includes delimiters
	Span Span
}

// IsLineComment reports whether the comment runs to the end of the line.
func (c *Comment) IsLineComment() bool {
	return c.Kind == DashComment || c.Kind == HashComment
}
