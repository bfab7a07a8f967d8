// Package main generates pkg/token/keywords_gen.go from keywords.txt.
//
// Usage:
//
//	go run ./scripts/genkeywords -in=scripts/genkeywords/keywords.txt -out=pkg/token/keywords_gen.go
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strconv"
	"strings"
)

var (
	inFlag  = flag.String("in", "scripts/genkeywords/keywords.txt", "keyword definition file")
	outFlag = flag.String("out", "pkg/token/keywords_gen.go", "output file path")
)

// keyword is one parsed line of the definition file.
type keyword struct {
	Word       string
	Const      string // Go constant for words that own a token type
	Target     string // token type for synonyms
	MinVersion int
	MaxVersion int
	Function   bool
}

func main() {
	flag.Parse()

	f, err := os.Open(*inFlag)
	if err != nil {
		log.Fatalf("failed to open %s: %v", *inFlag, err)
	}
	keywords, err := parseDefinitions(bufio.NewScanner(f))
	_ = f.Close()
	if err != nil {
		log.Fatalf("failed to parse %s: %v", *inFlag, err)
	}
	log.Printf("Parsed %d keywords", len(keywords))

	code := generateCode(keywords)

	formatted, err := format.Source([]byte(code))
	if err != nil {
		log.Printf("Warning: failed to format generated code: %v", err)
		formatted = []byte(code)
	}

	if err := os.WriteFile(*outFlag, formatted, 0o600); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("Generated %s", *outFlag)
}

func parseDefinitions(sc *bufio.Scanner) ([]keyword, error) {
	var result []keyword
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		kw := keyword{Word: fields[0], Const: fields[0]}
		for _, field := range fields[1:] {
			var err error
			switch {
			case strings.HasPrefix(field, "="):
				kw.Target = field[1:]
				kw.Const = ""
			case strings.HasPrefix(field, "@"):
				kw.Const = field[1:]
			case strings.HasPrefix(field, "min="):
				kw.MinVersion, err = strconv.Atoi(field[4:])
			case strings.HasPrefix(field, "max="):
				kw.MaxVersion, err = strconv.Atoi(field[4:])
			case field == "fn":
				kw.Function = true
			default:
				err = fmt.Errorf("unknown attribute %q", field)
			}
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		result = append(result, kw)
	}
	return result, sc.Err()
}

func generateCode(keywords []keyword) string {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by scripts/genkeywords. DO NOT EDIT.\n\n")
	buf.WriteString("package token\n\n")

	buf.WriteString("//nolint:revive // ALL_CAPS names follow the grammar's token vocabulary\n")
	buf.WriteString("const (\n")
	first := true
	for _, kw := range keywords {
		if kw.Const == "" {
			continue
		}
		if first {
			fmt.Fprintf(&buf, "\t%s TokenType = keywordBeg + 1 + iota\n", kw.Const)
			first = false
			continue
		}
		fmt.Fprintf(&buf, "\t%s\n", kw.Const)
	}
	buf.WriteString("\n\tkeywordEnd\n")
	buf.WriteString(")\n\n")

	buf.WriteString("// keywordNames holds the grammar spelling of each keyword token, in\n")
	buf.WriteString("// declaration order.\n")
	buf.WriteString("var keywordNames = [...]string{\n")
	for _, kw := range keywords {
		if kw.Const != "" {
			fmt.Fprintf(&buf, "\t%q,\n", kw.Const)
		}
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// keywordTable lists every word the lexer may turn into a keyword token.\n")
	buf.WriteString("var keywordTable = [...]KeywordInfo{\n")
	for _, kw := range keywords {
		typ := kw.Const
		if typ == "" {
			typ = kw.Target
		}
		fmt.Fprintf(&buf, "\t{%q, %s, %d, %d, %t},\n", kw.Word, typ, kw.MinVersion, kw.MaxVersion, kw.Function)
	}
	buf.WriteString("}\n")

	return buf.String()
}
