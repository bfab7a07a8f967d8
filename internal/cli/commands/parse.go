package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mysqlparse/internal/cli/output"
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	"github.com/leapstack-labs/mysqlparse/pkg/format"
	"github.com/leapstack-labs/mysqlparse/pkg/parser"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Execute   string
	Normalize bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse SQL and print its syntax tree",
		Long: `Parse MySQL statements and print the concrete syntax tree.

Input is read from the named file, from standard input when the file is
"-" or omitted, or from --execute. The tree format follows --output:
text and markdown print an indented outline, json and yaml export the
tree, sexpr prints it on one line.`,
		Example: `  # Print the tree of a file
  mysqlparse parse schema.sql

  # Check a statement against MySQL 5.7
  mysqlparse parse --server-version 5.7.30 -e "SELECT * FROM t"

  # Normalised SQL from the tree
  echo "select a from t" | mysqlparse parse --normalize`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Execute, "execute", "e", "", "SQL to parse instead of a file")
	cmd.Flags().BoolVar(&opts.Normalize, "normalize", false, "Print SQL rebuilt from the tree instead of the tree")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	name, sql, err := readInput(cmd, args, opts.Execute)
	if err != nil {
		return err
	}

	tree, err := parser.ParseString(sql, cc.Parser)
	if err != nil {
		cc.Renderer.Error(describeError(name, err))
		return ErrCheckFailed
	}
	cc.Logger.Debug("parsed", "input", name, "bytes", len(sql))

	if opts.Normalize {
		cc.Renderer.Println(format.SQL(tree))
		return nil
	}
	return renderTree(cc.Renderer, name, tree)
}

// renderTree writes tree in the renderer's output mode.
func renderTree(r *output.Renderer, name string, tree *ast.Rule) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(format.Export(tree))
	case output.ModeYAML:
		return r.YAML(format.Export(tree))
	case output.ModeSExpr:
		r.Println(format.SExpr(tree))
	case output.ModeMarkdown:
		r.Header(2, name)
		r.Println(output.FormatCodeBlock("", format.Tree(tree)))
	default:
		r.Printf("%s", format.Tree(tree))
	}
	return nil
}
