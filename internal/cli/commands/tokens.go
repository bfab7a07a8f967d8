package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mysqlparse/internal/cli/output"
	"github.com/leapstack-labs/mysqlparse/pkg/lexer"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

// TokensOptions holds options for the tokens command.
type TokensOptions struct {
	Execute string
	EOF     bool
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	opts := &TokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Print the token stream of SQL input",
		Long: `Lex MySQL input and print one row per token: its index, type,
source text and position. Keyword recognition follows --server-version and
--sql-mode, so the same text can lex differently across versions.`,
		Example: `  # Tokens of a statement
  mysqlparse tokens -e "SELECT json_table FROM t"

  # The same under MySQL 5.7, where JSON_TABLE is an identifier
  mysqlparse tokens --server-version 5.7 -e "SELECT json_table FROM t"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Execute, "execute", "e", "", "SQL to lex instead of a file")
	cmd.Flags().BoolVar(&opts.EOF, "eof", false, "Include the end of input token")

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, opts *TokensOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	_, sql, err := readInput(cmd, args, opts.Execute)
	if err != nil {
		return err
	}

	toks := lexer.Tokenize(sql, lexer.Config{ServerVersion: cc.Parser.ServerVersion, SQLMode: cc.Parser.SQLMode})
	rows := make([]output.TokenRow, 0, len(toks))
	for _, tok := range toks {
		if tok.Type == token.EOF && !opts.EOF {
			continue
		}
		rows = append(rows, output.TokenRow{
			Index:  tok.Index,
			Type:   tok.Type.String(),
			Text:   tok.Text,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		})
	}

	r := cc.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rows)
	case output.ModeYAML:
		return r.YAML(rows)
	case output.ModeSExpr:
		for _, row := range rows {
			r.Printf("(%s %s)\n", row.Type, strconv.Quote(row.Text))
		}
		return nil
	}

	t := r.NewTable("#", "Type", "Text", "Position")
	for _, row := range rows {
		t.AppendRow([]any{row.Index, row.Type, row.Text, strconv.Itoa(row.Line) + ":" + strconv.Itoa(row.Column)})
	}
	r.RenderTable(t)
	return nil
}
