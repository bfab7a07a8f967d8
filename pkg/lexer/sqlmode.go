package lexer

import (
	"fmt"
	"strings"
)

// SQLMode is the subset of the server's sql_mode that changes how text is
// tokenized or how the grammar reads tokens.
type SQLMode uint32

// SQL modes that influence lexing and parsing.
const (
	ANSIQuotes SQLMode = 1 << iota
	PipesAsConcat
	HighNotPrecedence
	NoBackslashEscapes
	IgnoreSpace
)

var modeNames = []struct {
	mode SQLMode
	name string
}{
	{ANSIQuotes, "ANSI_QUOTES"},
	{PipesAsConcat, "PIPES_AS_CONCAT"},
	{HighNotPrecedence, "HIGH_NOT_PRECEDENCE"},
	{NoBackslashEscapes, "NO_BACKSLASH_ESCAPES"},
	{IgnoreSpace, "IGNORE_SPACE"},
}

// Combination modes expand to the lexer-relevant parts of their definition.
var combinationModes = map[string]SQLMode{
	"ANSI":       PipesAsConcat | ANSIQuotes | IgnoreSpace,
	"DB2":        PipesAsConcat | ANSIQuotes | IgnoreSpace,
	"MAXDB":      PipesAsConcat | ANSIQuotes | IgnoreSpace,
	"MSSQL":      PipesAsConcat | ANSIQuotes | IgnoreSpace,
	"ORACLE":     PipesAsConcat | ANSIQuotes | IgnoreSpace,
	"POSTGRESQL": PipesAsConcat | ANSIQuotes | IgnoreSpace,
	"MYSQL323":   HighNotPrecedence,
	"MYSQL40":    HighNotPrecedence,
}

// Server modes that are valid but have no effect on tokenization.
var passiveModes = map[string]bool{
	"ALLOW_INVALID_DATES":        true,
	"ERROR_FOR_DIVISION_BY_ZERO": true,
	"NO_AUTO_CREATE_USER":        true,
	"NO_AUTO_VALUE_ON_ZERO":      true,
	"NO_DIR_IN_CREATE":           true,
	"NO_ENGINE_SUBSTITUTION":     true,
	"NO_FIELD_OPTIONS":           true,
	"NO_KEY_OPTIONS":             true,
	"NO_TABLE_OPTIONS":           true,
	"NO_UNSIGNED_SUBTRACTION":    true,
	"NO_ZERO_DATE":               true,
	"NO_ZERO_IN_DATE":            true,
	"ONLY_FULL_GROUP_BY":         true,
	"PAD_CHAR_TO_FULL_LENGTH":    true,
	"REAL_AS_FLOAT":              true,
	"STRICT_ALL_TABLES":          true,
	"STRICT_TRANS_TABLES":        true,
	"TIME_TRUNCATE_FRACTIONAL":   true,
	"TRADITIONAL":                true,
}

// ParseSQLMode parses a comma-separated sql_mode value such as
// "ANSI_QUOTES,STRICT_TRANS_TABLES". Names are case-insensitive.
func ParseSQLMode(s string) (SQLMode, error) {
	var mode SQLMode
	for _, part := range strings.Split(s, ",") {
		name := strings.ToUpper(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if m, ok := lookupMode(name); ok {
			mode |= m
			continue
		}
		if m, ok := combinationModes[name]; ok {
			mode |= m
			continue
		}
		if !passiveModes[name] {
			return 0, fmt.Errorf("unknown sql mode %q", part)
		}
	}
	return mode, nil
}

func lookupMode(name string) (SQLMode, bool) {
	for _, m := range modeNames {
		if m.name == name {
			return m.mode, true
		}
	}
	return 0, false
}

// Has reports whether every flag in flags is set.
func (m SQLMode) Has(flags SQLMode) bool {
	return m&flags == flags
}

func (m SQLMode) String() string {
	var names []string
	for _, n := range modeNames {
		if m.Has(n.mode) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}
