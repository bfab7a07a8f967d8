package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/internal/testutil"
)

func newTestServer(t *testing.T, version int) *Server {
	t.Helper()
	s := NewServerWithLogger(nil, nil, testutil.NewTestLogger(t))
	s.cfg.ServerVersion = version
	return s
}

func findItem(items []CompletionItem, label string) (CompletionItem, bool) {
	for _, item := range items {
		if item.Label == label {
			return item, true
		}
	}
	return CompletionItem{}, false
}

func TestKeywordCompletions(t *testing.T) {
	t.Run("prefix", func(t *testing.T) {
		items := keywordCompletions("SEL", 80019)
		require.Len(t, items, 1)
		assert.Equal(t, "SELECT", items[0].Label)
		assert.Equal(t, CompletionItemKindKeyword, items[0].Kind)
		assert.Equal(t, "keyword", items[0].Detail)
	})

	t.Run("function only", func(t *testing.T) {
		item, ok := findItem(keywordCompletions("COUNT", 80019), "COUNT")
		require.True(t, ok)
		assert.Equal(t, CompletionItemKindFunction, item.Kind)
		assert.Equal(t, "COUNT(", item.InsertText)
	})

	t.Run("synonym", func(t *testing.T) {
		item, ok := findItem(keywordCompletions("SCHEMA", 80019), "SCHEMA")
		require.True(t, ok)
		assert.Equal(t, "synonym for DATABASE", item.Detail)
	})

	t.Run("version window", func(t *testing.T) {
		_, ok := findItem(keywordCompletions("JSON_T", 80019), "JSON_TABLE")
		assert.True(t, ok)
		_, ok = findItem(keywordCompletions("JSON_T", 50720), "JSON_TABLE")
		assert.False(t, ok)

		_, ok = findItem(keywordCompletions("ANALYS", 50720), "ANALYSE")
		assert.True(t, ok)
		_, ok = findItem(keywordCompletions("ANALYS", 80019), "ANALYSE")
		assert.False(t, ok)
	})

	t.Run("empty prefix lists everything active", func(t *testing.T) {
		items := keywordCompletions("", 80019)
		assert.Greater(t, len(items), 500)
	})
}

func TestGetCompletions(t *testing.T) {
	s := newTestServer(t, 80019)
	s.documents.Open("file:///q.sql", "SELECT id FROM t WH", 1)

	items := s.getCompletions(CompletionParams{
		TextDocumentPositionParams: TextDocumentPositionParams{
			TextDocument: TextDocumentIdentifier{URI: "file:///q.sql"},
			Position:     Position{Line: 0, Character: 19},
		},
	})
	_, ok := findItem(items, "WHERE")
	assert.True(t, ok)
	_, ok = findItem(items, "WHEN")
	assert.True(t, ok)
	_, ok = findItem(items, "SELECT")
	assert.False(t, ok)

	assert.Nil(t, s.getCompletions(CompletionParams{
		TextDocumentPositionParams: TextDocumentPositionParams{TextDocument: TextDocumentIdentifier{URI: "file:///missing.sql"}},
	}))
}

func TestExtractPrefix(t *testing.T) {
	content := "SELECT a.co\nFROM `t` wh"
	doc := &Document{Content: content, Lines: computeLineOffsets(content)}

	tests := []struct {
		pos  Position
		want string
	}{
		{Position{Line: 0, Character: 11}, "co"},
		{Position{Line: 0, Character: 6}, "SELECT"},
		{Position{Line: 0, Character: 7}, ""},
		{Position{Line: 1, Character: 11}, "wh"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractPrefix(doc, tt.pos), "position %+v", tt.pos)
	}
}

func TestGetHover(t *testing.T) {
	uri := "file:///h.sql"

	tests := []struct {
		name     string
		version  int
		text     string
		char     uint32
		contains []string
		absent   []string
	}{
		{
			name:     "plain keyword",
			version:  80019,
			text:     "select 1",
			char:     2,
			contains: []string{"**SELECT** (SELECT_SYMBOL)"},
			absent:   []string{"Known from", "identifier"},
		},
		{
			name:     "not yet introduced",
			version:  50720,
			text:     "SELECT * FROM json_table",
			char:     16,
			contains: []string{"**JSON_TABLE**", "Known from 8.0.0.", "_Read as an identifier by server 5.7.20._"},
		},
		{
			name:     "removed",
			version:  80019,
			text:     "ANALYSE",
			char:     0,
			contains: []string{"Removed in 8.0.0.", "identifier by server 8.0.19"},
		},
		{
			name:     "bounded window",
			version:  50705,
			text:     "MAX_STATEMENT_TIME",
			char:     3,
			contains: []string{"Known from 5.7.4 until 5.7.8."},
			absent:   []string{"identifier"},
		},
		{
			name:     "synonym",
			version:  80019,
			text:     "CREATE SCHEMA s",
			char:     9,
			contains: []string{"Synonym for `DATABASE`."},
		},
		{
			name:     "function only",
			version:  80019,
			text:     "count",
			char:     5,
			contains: []string{"A keyword only when directly followed by `(`."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.version)
			s.documents.Open(uri, tt.text, 1)

			hover := s.getHover(HoverParams{TextDocumentPositionParams{
				TextDocument: TextDocumentIdentifier{URI: uri},
				Position:     Position{Character: tt.char},
			}})
			require.NotNil(t, hover)
			assert.Equal(t, MarkupKindMarkdown, hover.Contents.Kind)
			for _, want := range tt.contains {
				assert.Contains(t, hover.Contents.Value, want)
			}
			for _, not := range tt.absent {
				assert.NotContains(t, hover.Contents.Value, not)
			}
		})
	}
}

func TestGetHover_NotAKeyword(t *testing.T) {
	s := newTestServer(t, 80019)
	s.documents.Open("file:///h.sql", "SELECT customer_id", 1)

	assert.Nil(t, s.getHover(HoverParams{TextDocumentPositionParams{
		TextDocument: TextDocumentIdentifier{URI: "file:///h.sql"},
		Position:     Position{Character: 10},
	}}))
}
