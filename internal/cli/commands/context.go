package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mysqlparse/internal/cli/config"
	"github.com/leapstack-labs/mysqlparse/internal/cli/output"
	"github.com/leapstack-labs/mysqlparse/pkg/parser"
)

// ErrCheckFailed is returned when at least one checked input has a syntax
// error. The message has already been rendered, so callers only set the
// exit status.
var ErrCheckFailed = errors.New("syntax errors found")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Parser   parser.Config
	Renderer *output.Renderer
}

// NewCommandContext collects the config and logger stored on the command
// context by the root command and builds the parser settings and renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	pcfg, err := cfg.ParserConfig(logger)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Parser:   pcfg,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}, nil
}

// readInput returns the SQL to work on and a name for it in messages. An
// inline statement wins over arguments; no argument or "-" reads standard
// input.
func readInput(cmd *cobra.Command, args []string, inline string) (name, sql string, err error) {
	if inline != "" {
		return "<inline>", inline, nil
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return args[0], string(data), nil
}

// describeError prefixes a syntax error with its source location.
func describeError(name string, err error) string {
	var serr *parser.SyntaxError
	if errors.As(err, &serr) && serr.Pos().IsValid() {
		return diagnosticLine(name, serr.Pos().Line, serr.Pos().Column, serr.Error())
	}
	return diagnosticLine(name, 0, 0, err.Error())
}

// diagnosticLine renders "name:line:col: message", dropping the position
// when line is 0.
func diagnosticLine(name string, line, col int, msg string) string {
	if line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", name, line, col, msg)
	}
	return fmt.Sprintf("%s: %s", name, msg)
}
