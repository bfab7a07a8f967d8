package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mysqlparse/internal/checker"
	"github.com/leapstack-labs/mysqlparse/internal/cli/output"
	"github.com/leapstack-labs/mysqlparse/pkg/parser"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Watch bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check SQL files for syntax errors",
		Long: `Parse every SQL file under the given paths and report the first syntax
error of each file. Directories are searched for files matching the include
patterns (default "**/*.sql"); files named explicitly are always checked.

The command exits with status 1 when any file fails to parse. With --watch
it keeps running and re-checks files as they change.`,
		Example: `  # Check the current directory
  mysqlparse check

  # Check migrations against MySQL 5.7 with 8 workers
  mysqlparse check migrations/ --server-version 5.7.30 --workers 8

  # Re-check on every save
  mysqlparse check --watch db/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-check files when they change")
	cmd.Flags().Int("workers", 0, "Number of files parsed concurrently")
	cmd.Flags().StringSlice("include", nil, "Glob patterns selecting files inside directories")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	checkCfg := cc.Cfg.GetCheckConfig()
	chk, err := checker.New(cc.Parser,
		checker.WithWorkers(checkCfg.Workers),
		checker.WithInclude(checkCfg.Include...),
		checker.WithLogger(cc.Logger),
	)
	if err != nil {
		return err
	}

	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	paths, err := chk.Expand(roots)
	if err != nil {
		return err
	}
	cc.Logger.Debug("expanded paths", "roots", roots, "files", len(paths))

	ctx := cmd.Context()
	results, err := chk.CheckFiles(ctx, paths)
	if err != nil {
		return err
	}
	if err := renderCheckResults(cc, results); err != nil {
		return err
	}

	if opts.Watch {
		return watchAndCheck(ctx, cc, chk, roots)
	}

	if failed(results) > 0 {
		return ErrCheckFailed
	}
	return nil
}

// watchAndCheck re-checks changed files until interrupted.
func watchAndCheck(ctx context.Context, cc *CommandContext, chk *checker.Checker, roots []string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := chk.NewWatcher(roots)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	cc.Renderer.Muted("Watching for changes. Press Ctrl+C to stop.")
	err = w.Run(ctx, func(results []checker.Result) {
		if err := renderCheckResults(cc, results); err != nil {
			cc.Logger.Error("render results", "error", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func failed(results []checker.Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// checkOutput converts results into the exported report.
func checkOutput(cc *CommandContext, results []checker.Result) output.CheckOutput {
	out := output.CheckOutput{
		ServerVersion: parser.FormatServerVersion(cc.Parser.ServerVersion),
		Files:         make([]output.CheckFileResult, 0, len(results)),
	}
	for _, res := range results {
		file := output.CheckFileResult{Path: res.Path, OK: res.OK(), Statements: res.Statements}
		if !res.OK() {
			diag := &output.CheckDiagnostic{Message: res.Err.Error()}
			if serr := res.SyntaxError(); serr != nil {
				diag.Rule = serr.Rule
				diag.Line = serr.Pos().Line
				diag.Column = serr.Pos().Column
			}
			file.Error = diag
			out.Summary.Failed++
		} else {
			out.Summary.Passed++
		}
		out.Summary.Files++
		out.Files = append(out.Files, file)
	}
	return out
}

func renderCheckResults(cc *CommandContext, results []checker.Result) error {
	report := checkOutput(cc, results)
	r := cc.Renderer

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(report)
	case output.ModeYAML:
		return r.YAML(report)
	}

	var diagnostics []string
	for _, f := range report.Files {
		if f.OK {
			r.StatusLine(f.Path, "success", pluralize(f.Statements, "statement"))
			continue
		}
		r.StatusLine(f.Path, "failed", "")
		diagnostics = append(diagnostics, diagnosticLine(f.Path, f.Error.Line, f.Error.Column, f.Error.Message))
	}

	summary := fmt.Sprintf("%s checked against MySQL %s: %d passed, %d failed",
		pluralize(report.Summary.Files, "file"), report.ServerVersion, report.Summary.Passed, report.Summary.Failed)
	if len(diagnostics) > 0 {
		r.Println()
		for _, d := range diagnostics {
			r.Println(d)
		}
		r.Println()
		r.Println(summary)
		return nil
	}
	r.Success(summary)
	return nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
