package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{"auto on tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"empty is auto", "", false, ModeMarkdown},
		{"explicit text piped", ModeText, false, ModeText},
		{"json", ModeJSON, true, ModeJSON},
		{"sexpr", ModeSExpr, false, ModeSExpr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_Markdown(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)

	r.Header(2, "Files")
	r.StatusLine("a.sql", "success", "")
	r.StatusLine("b.sql", "failed", "line 3")
	r.Success("done")

	assert.Equal(t, "## Files\n\n- a.sql: success\n- b.sql: failed (line 3)\n**done**\n", out.String())
}

func TestRenderer_TextWithoutColor(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeText, false)

	r.StatusLine("a.sql", "success", "")
	r.StatusLine("b.sql", "failed", "1:8")
	r.Error("boom")

	assert.Equal(t, "ok a.sql\nFAIL b.sql 1:8\n", out.String())
	assert.Equal(t, "Error: boom\n", errOut.String())
}

func TestRenderer_JSON(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON, false)

	require.NoError(t, r.JSON(CheckSummary{Files: 2, Passed: 1, Failed: 1}))

	var got CheckSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, CheckSummary{Files: 2, Passed: 1, Failed: 1}, got)
}

func TestRenderer_YAML(t *testing.T) {
	r, out, _ := newTestRenderer(ModeYAML, false)

	require.NoError(t, r.YAML(CheckSummary{Files: 1, Passed: 1}))
	assert.Equal(t, "files: 1\npassed: 1\nfailed: 0\n", out.String())
}

func TestRenderer_Table(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)

	tbl := r.NewTable("Type", "Text")
	tbl.AppendRow([]any{"SELECT_SYMBOL", "SELECT"})
	r.RenderTable(tbl)

	assert.Contains(t, out.String(), "| SELECT_SYMBOL | SELECT |")

	r, out, _ = newTestRenderer(ModeText, true)
	tbl = r.NewTable("Type")
	tbl.AppendRow([]any{"IDENTIFIER"})
	r.RenderTable(tbl)
	assert.Contains(t, out.String(), "IDENTIFIER")
	assert.Contains(t, out.String(), "┌")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "### Deep", FormatHeader(3, "Deep"))
	assert.Equal(t, "# Clamped", FormatHeader(0, "Clamped"))
	assert.Equal(t, "```sql\nSELECT 1\n```", FormatCodeBlock("sql", "SELECT 1\n"))
	assert.Equal(t, "Files: 3", FormatKeyValue("Files", "3"))
}
