package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantMsg string
		want    Range
	}{
		{
			name:    "stray token on second line",
			text:    "SELECT 1;\nSELECT 2 )",
			wantMsg: "Unexpected token: )",
			want:    Range{Start: Position{Line: 1, Character: 9}, End: Position{Line: 1, Character: 10}},
		},
		{
			name:    "end of input",
			text:    "CREATE TABLE t (a INT",
			wantMsg: "<EOF>",
			want:    Range{Start: Position{Character: 21}, End: Position{Character: 21}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, 80019)
			s.documents.Open("file:///d.sql", tt.text, 1)
			doc := s.documents.Get("file:///d.sql")

			diags := s.diagnose(doc)
			require.Len(t, diags, 1)
			assert.Contains(t, diags[0].Message, tt.wantMsg)
			assert.Equal(t, tt.want, diags[0].Range)
			assert.Equal(t, codeSyntax, diags[0].Code)
			require.NotNil(t, doc.SyntaxErr)
		})
	}
}

func TestDiagnose_Clean(t *testing.T) {
	s := newTestServer(t, 80019)
	s.documents.Open("file:///d.sql", "SELECT 1 )", 1)
	doc := s.documents.Get("file:///d.sql")
	require.Len(t, s.diagnose(doc), 1)

	s.documents.Update("file:///d.sql", "SELECT 1", 2)
	diags := s.diagnose(doc)
	assert.NotNil(t, diags)
	assert.Empty(t, diags)
	assert.Nil(t, doc.SyntaxErr)
}

func TestGetCodeActions(t *testing.T) {
	uri := "file:///a.sql"

	t.Run("insert expected token", func(t *testing.T) {
		s := newTestServer(t, 80019)
		s.documents.Open(uri, "CREATE TABLE t (a INT", 1)
		s.diagnose(s.documents.Get(uri))

		actions := s.getCodeActions(CodeActionParams{TextDocument: TextDocumentIdentifier{URI: uri}})
		require.Len(t, actions, 1)
		assert.Equal(t, "Insert ')'", actions[0].Title)
		assert.Equal(t, CodeActionKindQuickFix, actions[0].Kind)
		assert.Len(t, actions[0].Diagnostics, 1)
	})

	t.Run("filtered by kind", func(t *testing.T) {
		s := newTestServer(t, 80019)
		s.documents.Open(uri, "CREATE TABLE t (a INT", 1)
		s.diagnose(s.documents.Get(uri))

		actions := s.getCodeActions(CodeActionParams{
			TextDocument: TextDocumentIdentifier{URI: uri},
			Context:      CodeActionContext{Only: []CodeActionKind{"refactor"}},
		})
		assert.NotNil(t, actions)
		assert.Empty(t, actions)
	})

	t.Run("no error", func(t *testing.T) {
		s := newTestServer(t, 80019)
		s.documents.Open(uri, "SELECT 1", 1)
		s.diagnose(s.documents.Get(uri))

		assert.Empty(t, s.getCodeActions(CodeActionParams{TextDocument: TextDocumentIdentifier{URI: uri}}))
	})

	t.Run("unknown document", func(t *testing.T) {
		s := newTestServer(t, 80019)
		assert.Empty(t, s.getCodeActions(CodeActionParams{TextDocument: TextDocumentIdentifier{URI: uri}}))
	})
}

func TestNeedsSpace(t *testing.T) {
	assert.False(t, needsSpace("("))
	assert.False(t, needsSpace("."))
	assert.True(t, needsSpace(")"))
	assert.True(t, needsSpace("FROM"))
}
