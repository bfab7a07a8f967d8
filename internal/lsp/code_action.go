package lsp

import (
	"encoding/json"

	"github.com/leapstack-labs/mysqlparse/pkg/parser"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

// insertText spells punctuation tokens a quick fix may insert. Keywords are
// spelled from the token table.
var insertText = map[token.TokenType]string{
	token.CLOSE_PAR:      ")",
	token.OPEN_PAR:       "(",
	token.COMMA:          ",",
	token.SEMICOLON:      ";",
	token.DOT:            ".",
	token.EQUAL_OPERATOR: "=",
}

// handleCodeAction handles the textDocument/codeAction request.
func (s *Server) handleCodeAction(msg *JSONRPCMessage) error {
	var params CodeActionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.sendResponse(msg.ID, nil, &JSONRPCError{Code: codeInvalidParams, Message: err.Error()})
		return err
	}

	actions := s.getCodeActions(params)
	s.sendResponse(msg.ID, actions, nil)
	return nil
}

// getCodeActions offers to insert the token the parser expected when the
// document's syntax error names one.
func (s *Server) getCodeActions(params CodeActionParams) []CodeAction {
	actions := []CodeAction{}

	if len(params.Context.Only) > 0 && !containsKind(params.Context.Only, CodeActionKindQuickFix) {
		return actions
	}

	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil || doc.SyntaxErr == nil {
		return actions
	}
	text, ok := expectedText(doc.SyntaxErr)
	if !ok {
		return actions
	}

	diag := syntaxErrorToDiagnostic(doc, doc.SyntaxErr)
	at := diag.Range.Start
	newText := text
	if doc.SyntaxErr.Token.Type != token.EOF && needsSpace(text) {
		newText += " "
	}

	actions = append(actions, CodeAction{
		Title:       "Insert '" + text + "'",
		Kind:        CodeActionKindQuickFix,
		Diagnostics: []Diagnostic{diag},
		IsPreferred: true,
		Edit: &WorkspaceEdit{
			Changes: map[string][]TextEdit{
				params.TextDocument.URI: {{Range: Range{Start: at, End: at}, NewText: newText}},
			},
		},
	})
	return actions
}

func expectedText(serr *parser.SyntaxError) (string, bool) {
	if !serr.HasExpected {
		return "", false
	}
	if kw := serr.Expected.Keyword(); kw != "" {
		return kw, true
	}
	text, ok := insertText[serr.Expected]
	return text, ok
}

// needsSpace reports whether inserted text must be separated from the
// following token.
func needsSpace(text string) bool {
	switch text {
	case "(", ".":
		return false
	}
	return true
}

func containsKind(kinds []CodeActionKind, kind CodeActionKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
