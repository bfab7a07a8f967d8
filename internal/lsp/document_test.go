package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/pkg/parser"
)

func newDocument(content string) *Document {
	return &Document{Content: content, Lines: computeLineOffsets(content)}
}

func TestDocumentStore_OpenGetClose(t *testing.T) {
	store := NewDocumentStore()
	uri := "file:///test/schema.sql"

	store.Open(uri, "SELECT * FROM users", 1)

	doc := store.Get(uri)
	require.NotNil(t, doc)
	assert.Equal(t, uri, doc.URI)
	assert.Equal(t, "SELECT * FROM users", doc.Content)
	assert.Equal(t, 1, doc.Version)

	store.Close(uri)
	assert.Nil(t, store.Get(uri))
}

func TestDocumentStore_Update(t *testing.T) {
	store := NewDocumentStore()
	uri := "file:///test/schema.sql"
	store.Open(uri, "SELECT", 1)
	store.Get(uri).SyntaxErr = &parser.SyntaxError{Rule: "selectItemList"}

	store.Update(uri, "SELECT 2\nFROM t", 2)

	doc := store.Get(uri)
	assert.Equal(t, "SELECT 2\nFROM t", doc.Content)
	assert.Equal(t, 2, doc.Version)
	assert.Equal(t, []int{0, 9}, doc.Lines)
	assert.Nil(t, doc.SyntaxErr)

	// Updating an unknown document is a no-op.
	store.Update("file:///other.sql", "x", 1)
	assert.Nil(t, store.Get("file:///other.sql"))
}

func TestDocumentStore_List(t *testing.T) {
	store := NewDocumentStore()
	store.Open("file:///a.sql", "SELECT a", 1)
	store.Open("file:///b.sql", "SELECT b", 1)

	assert.ElementsMatch(t, []string{"file:///a.sql", "file:///b.sql"}, store.List())
}

func TestComputeLineOffsets(t *testing.T) {
	tests := []struct {
		content  string
		expected []int
	}{
		{"", []int{0}},
		{"abc", []int{0}},
		{"a\nb", []int{0, 2}},
		{"\n\n\n", []int{0, 1, 2, 3}},
		{"line1\nline2\nline3", []int{0, 6, 12}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, computeLineOffsets(tt.content), "content %q", tt.content)
	}
}

func TestDocument_PositionOffsetRoundTrip(t *testing.T) {
	doc := newDocument("line0\nline1\nline2")

	tests := []struct {
		pos    Position
		offset int
	}{
		{Position{Line: 0, Character: 0}, 0},
		{Position{Line: 0, Character: 5}, 5},
		{Position{Line: 1, Character: 0}, 6},
		{Position{Line: 1, Character: 4}, 10},
		{Position{Line: 2, Character: 5}, 17},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.offset, doc.PositionToOffset(tt.pos))
		assert.Equal(t, tt.pos, doc.OffsetToPosition(tt.offset))
	}

	// Out of range positions and offsets are clamped.
	assert.Equal(t, 17, doc.PositionToOffset(Position{Line: 100}))
	assert.Equal(t, 17, doc.PositionToOffset(Position{Line: 0, Character: 100}))
	assert.Equal(t, Position{}, doc.OffsetToPosition(-1))
	assert.Equal(t, Position{Line: 2, Character: 5}, doc.OffsetToPosition(100))
}

func TestDocument_GetWordAtPosition(t *testing.T) {
	doc := newDocument("SELECT id, @@sql_mode FROM `t` WHERE total$")

	tests := []struct {
		character uint32
		word      string
	}{
		{0, "SELECT"},
		{3, "SELECT"},
		{6, "SELECT"},
		{8, "id"},
		{15, "sql_mode"},
		{22, "FROM"},
		{28, "t"},
		{43, "total$"},
		{10, ""},
	}

	for _, tt := range tests {
		word, _ := doc.GetWordAtPosition(Position{Character: tt.character})
		assert.Equal(t, tt.word, word, "character %d", tt.character)
	}

	_, rng := doc.GetWordAtPosition(Position{Character: 8})
	assert.Equal(t, Range{Start: Position{Character: 7}, End: Position{Character: 9}}, rng)
}

func TestDocument_GetTextBefore(t *testing.T) {
	doc := newDocument("SELECT * FROM users")

	assert.Equal(t, "", doc.GetTextBefore(Position{Character: 0}))
	assert.Equal(t, "SELECT", doc.GetTextBefore(Position{Character: 6}))
	assert.Equal(t, "SELECT * ", doc.GetTextBefore(Position{Character: 9}))
}

func TestURIToPath(t *testing.T) {
	assert.Equal(t, "/home/user/file.sql", URIToPath("file:///home/user/file.sql"))
	assert.Equal(t, "/already/a/path.sql", URIToPath("/already/a/path.sql"))
}

func TestIsWordChar(t *testing.T) {
	for _, c := range "azAZ09_$" {
		assert.True(t, isWordChar(byte(c)), "%q", c)
	}
	for _, c := range " \t\n!@#%^&*()-+=[]{}|;':\",./<>?`" {
		assert.False(t, isWordChar(byte(c)), "%q", c)
	}
}
