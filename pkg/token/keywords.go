package token

import "strings"

// KeywordInfo describes a word the lexer may classify as a keyword.
type KeywordInfo struct {
	Word string
	Type TokenType

	// MinVersion and MaxVersion bound the servers that know the word:
	// MinVersion <= serverVersion < MaxVersion. Zero means unbounded.
	MinVersion int
	MaxVersion int

	// FunctionOnly words are keywords only when directly followed by "(".
	FunctionOnly bool
}

// ActiveIn reports whether the keyword exists in the given server version.
func (k KeywordInfo) ActiveIn(serverVersion int) bool {
	if k.MinVersion != 0 && serverVersion < k.MinVersion {
		return false
	}
	if k.MaxVersion != 0 && serverVersion >= k.MaxVersion {
		return false
	}
	return true
}

// IsSynonym reports whether the word lexes as another keyword's type.
func (k KeywordInfo) IsSynonym() bool {
	return k.Type.Keyword() != k.Word
}

var keywordIndex = func() map[string]*KeywordInfo {
	m := make(map[string]*KeywordInfo, len(keywordTable))
	for i := range keywordTable {
		m[keywordTable[i].Word] = &keywordTable[i]
	}
	return m
}()

// LookupKeyword finds a keyword by its spelling, case-insensitively. It does
// not consult version windows; callers check ActiveIn.
func LookupKeyword(word string) (KeywordInfo, bool) {
	if kw, ok := keywordIndex[strings.ToUpper(word)]; ok {
		return *kw, true
	}
	return KeywordInfo{}, false
}

// Keywords returns every keyword definition in alphabetical order.
func Keywords() []KeywordInfo {
	out := make([]KeywordInfo, len(keywordTable))
	copy(out, keywordTable[:])
	return out
}
