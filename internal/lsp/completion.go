package lsp

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/mysqlparse/pkg/parser"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

// getCompletions offers the keywords of the configured server version that
// start with the word being typed.
func (s *Server) getCompletions(params CompletionParams) []CompletionItem {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}

	prefix := strings.ToUpper(extractPrefix(doc, params.Position))
	return keywordCompletions(prefix, s.cfg.ServerVersion)
}

// keywordCompletions lists keywords active in serverVersion whose spelling
// starts with prefix (upper case).
func keywordCompletions(prefix string, serverVersion int) []CompletionItem {
	var items []CompletionItem
	for _, kw := range token.Keywords() {
		if !kw.ActiveIn(serverVersion) || !strings.HasPrefix(kw.Word, prefix) {
			continue
		}
		item := CompletionItem{
			Label:  kw.Word,
			Kind:   CompletionItemKindKeyword,
			Detail: "keyword",
		}
		switch {
		case kw.FunctionOnly:
			item.Kind = CompletionItemKindFunction
			item.Detail = "function"
			item.InsertText = kw.Word + "("
		case kw.IsSynonym():
			item.Detail = "synonym for " + kw.Type.Keyword()
		}
		items = append(items, item)
	}
	return items
}

// extractPrefix returns the identifier characters immediately before pos.
func extractPrefix(doc *Document, pos Position) string {
	before := doc.GetTextBefore(pos)
	i := len(before)
	for i > 0 && isWordChar(before[i-1]) {
		i--
	}
	return before[i:]
}

// getHover describes the keyword under the cursor.
func (s *Server) getHover(params HoverParams) *Hover {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}

	word, rng := doc.GetWordAtPosition(params.Position)
	if word == "" {
		return nil
	}
	kw, ok := token.LookupKeyword(word)
	if !ok {
		return nil
	}

	return &Hover{
		Contents: MarkupContent{
			Kind:  MarkupKindMarkdown,
			Value: describeKeyword(kw, s.cfg.ServerVersion),
		},
		Range: &rng,
	}
}

func describeKeyword(kw token.KeywordInfo, serverVersion int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s)", kw.Word, kw.Type)

	if kw.IsSynonym() {
		fmt.Fprintf(&b, "\n\nSynonym for `%s`.", kw.Type.Keyword())
	}
	if kw.FunctionOnly {
		b.WriteString("\n\nA keyword only when directly followed by `(`.")
	}
	switch {
	case kw.MinVersion != 0 && kw.MaxVersion != 0:
		fmt.Fprintf(&b, "\n\nKnown from %s until %s.",
			parser.FormatServerVersion(kw.MinVersion), parser.FormatServerVersion(kw.MaxVersion))
	case kw.MinVersion != 0:
		fmt.Fprintf(&b, "\n\nKnown from %s.", parser.FormatServerVersion(kw.MinVersion))
	case kw.MaxVersion != 0:
		fmt.Fprintf(&b, "\n\nRemoved in %s.", parser.FormatServerVersion(kw.MaxVersion))
	}
	if !kw.ActiveIn(serverVersion) {
		fmt.Fprintf(&b, "\n\n_Read as an identifier by server %s._", parser.FormatServerVersion(serverVersion))
	}
	return b.String()
}
