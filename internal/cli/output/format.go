package output

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatHeader returns a markdown header of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatCodeBlock returns a fenced markdown code block.
func FormatCodeBlock(lang, code string) string {
	return "```" + lang + "\n" + strings.TrimRight(code, "\n") + "\n```"
}

// FormatKeyValue returns a "key: value" line.
func FormatKeyValue(key, value string) string {
	return key + ": " + value
}

// NewTable returns a table writer that renders to the renderer's output.
func (r *Renderer) NewTable(header ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	if len(header) > 0 {
		t.AppendHeader(table.Row(header))
	}
	return t
}

// RenderTable renders t as a box table in text mode and as a markdown table
// otherwise.
func (r *Renderer) RenderTable(t table.Writer) {
	if r.EffectiveMode() == ModeText {
		t.Render()
		return
	}
	t.RenderMarkdown()
}
