package lsp

import (
	"errors"

	"github.com/leapstack-labs/mysqlparse/pkg/parser"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

const (
	diagnosticSource = "mysqlparse"
	codeSyntax       = "syntax"
)

// publishDiagnostics parses the document and publishes its syntax error,
// or an empty list when it parses.
func (s *Server) publishDiagnostics(uri string) {
	doc := s.documents.Get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.diagnose(doc)
	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Version:     doc.Version,
		Diagnostics: diagnostics,
	})
}

// diagnose parses doc, records the result on it and returns the
// diagnostics to publish. The parser stops at the first error, so there is
// at most one.
func (s *Server) diagnose(doc *Document) []Diagnostic {
	doc.SyntaxErr = nil
	_, err := parser.ParseString(doc.Content, s.cfg)
	if err == nil {
		return []Diagnostic{}
	}

	var serr *parser.SyntaxError
	if !errors.As(err, &serr) {
		s.logger.Error("Unexpected parse failure", "uri", doc.URI, "error", err)
		return []Diagnostic{{
			Severity: DiagnosticSeverityError,
			Source:   diagnosticSource,
			Message:  err.Error(),
		}}
	}

	doc.SyntaxErr = serr
	return []Diagnostic{syntaxErrorToDiagnostic(doc, serr)}
}

// syntaxErrorToDiagnostic covers the offending token. At end of input the
// range is empty and sits at the end of the document.
func syntaxErrorToDiagnostic(doc *Document, serr *parser.SyntaxError) Diagnostic {
	return Diagnostic{
		Range:    tokenRange(doc, serr.Token),
		Severity: DiagnosticSeverityError,
		Code:     codeSyntax,
		Source:   diagnosticSource,
		Message:  serr.Error(),
	}
}

func tokenRange(doc *Document, tok token.Token) Range {
	if tok.Type == token.EOF || !tok.Pos.IsValid() {
		end := doc.OffsetToPosition(len(doc.Content))
		return Range{Start: end, End: end}
	}
	return Range{
		Start: doc.OffsetToPosition(tok.Pos.Offset),
		End:   doc.OffsetToPosition(tok.Pos.Offset + len(tok.Text)),
	}
}
