package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mysqlparse/internal/cli/output"
	"github.com/leapstack-labs/mysqlparse/pkg/lexer"
	"github.com/leapstack-labs/mysqlparse/pkg/parser"
	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

const (
	replPrompt         = "mysql> "
	replContinuePrompt = "    -> "
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse statements interactively",
		Long: `Start an interactive session that parses each statement as it is typed.

Input is collected until a line ends with ";", then parsed and printed in
the --output format. Dot commands change the session: .version switches the
server version, .mode the SQL mode, .output the tree format.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

// replSession is the state of one interactive session. It is separate from
// readline so it can be driven line by line in tests.
type replSession struct {
	cc  *CommandContext
	buf strings.Builder
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile(),
		AutoComplete:    newKeywordCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	s := &replSession{cc: cc}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mysqlparse REPL (server version %s)\n",
		parser.FormatServerVersion(cc.Parser.ServerVersion))
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.buf.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit := s.handleLine(line)
		if quit {
			return nil
		}
		if s.buf.Len() > 0 {
			rl.SetPrompt(replContinuePrompt)
		} else {
			rl.SetPrompt(replPrompt)
		}
	}
}

// historyFile keeps history in the user's cache directory; without one
// history is not saved.
func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "mysqlparse")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return ""
	}
	return filepath.Join(dir, "repl_history")
}

// handleLine processes one input line and reports whether the session ends.
func (s *replSession) handleLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	if s.buf.Len() == 0 && strings.HasPrefix(trimmed, ".") {
		return s.handleDotCommand(trimmed)
	}

	// Accumulate multi-line SQL until semicolon
	if s.buf.Len() > 0 {
		s.buf.WriteByte('\n')
	}
	s.buf.WriteString(line)
	if !strings.HasSuffix(trimmed, ";") {
		return false
	}

	sql := s.buf.String()
	s.buf.Reset()
	s.parse(sql)
	return false
}

func (s *replSession) parse(sql string) {
	r := s.cc.Renderer
	tree, err := parser.ParseString(sql, s.cc.Parser)
	if err != nil {
		r.Error(describeError("input", err))
		return
	}
	if err := renderTree(r, "input", tree); err != nil {
		r.Error(err.Error())
	}
}

func (s *replSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	arg := ""
	if len(parts) > 1 {
		arg = parts[1]
	}
	r := s.cc.Renderer

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(r.Writer())

	case ".version":
		if arg == "" {
			r.Println(parser.FormatServerVersion(s.cc.Parser.ServerVersion))
			return false
		}
		v, err := parser.ParseServerVersion(arg)
		if err != nil {
			r.Error(err.Error())
			return false
		}
		s.cc.Parser.ServerVersion = v
		r.Println("server version " + parser.FormatServerVersion(v))

	case ".mode":
		if arg == "" {
			r.Println(s.cc.Parser.SQLMode.String())
			return false
		}
		mode, err := lexer.ParseSQLMode(arg)
		if err != nil {
			r.Error(err.Error())
			return false
		}
		s.cc.Parser.SQLMode = mode
		r.Println("sql mode " + mode.String())

	case ".output":
		if !validMode(arg) {
			r.Error("usage: .output text|markdown|json|yaml|sexpr")
			return false
		}
		s.cc.Renderer = output.NewRendererWithTTY(r.Writer(), r.ErrWriter(), r.IsTTY(), output.Mode(arg))

	default:
		r.Error(fmt.Sprintf("unknown command: %s (type .help for commands)", command))
	}
	return false
}

func validMode(s string) bool {
	switch output.Mode(s) {
	case output.ModeAuto, output.ModeText, output.ModeMarkdown, output.ModeJSON, output.ModeYAML, output.ModeSExpr:
		return true
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help              Show this help message
  .version [v]       Show or set the server version, e.g. 5.7.30
  .mode [modes]      Show or set the SQL mode, e.g. ANSI_QUOTES,NO_BACKSLASH_ESCAPES
  .output <format>   Set the tree format (text, markdown, json, yaml, sexpr)
  .quit / .exit      Exit the REPL

Tips:
  - Statements must end with a semicolon (;)
  - Use arrow keys to navigate history
  - Tab completion works for keywords
`
	_, _ = fmt.Fprintln(w, help)
}

// newKeywordCompleter completes keywords and dot commands.
func newKeywordCompleter() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".version"),
		readline.PcItem(".mode"),
		readline.PcItem(".output",
			readline.PcItem("text"), readline.PcItem("markdown"), readline.PcItem("json"),
			readline.PcItem("yaml"), readline.PcItem("sexpr")),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	}
	for _, kw := range token.Keywords() {
		items = append(items, readline.PcItem(kw.Word))
	}
	return readline.NewPrefixCompleter(items...)
}
