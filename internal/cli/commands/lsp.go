package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mysqlparse/internal/lsp"
)

// NewLSPCommand creates the lsp command.
func NewLSPCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the LSP server for editor integration.

The server communicates over stdin/stdout using JSON-RPC and publishes the
syntax error of each open document. The server version and SQL mode come
from the configuration and may be overridden by the client's
initializationOptions (serverVersion, sqlMode).`,
		Example: `  # Start LSP server (usually called by an editor)
  mysqlparse lsp --server-version 5.7.30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLSP(cmd, version)
		},
	}

	return cmd
}

func runLSP(cmd *cobra.Command, version string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	server := lsp.NewServerWithLogger(cmd.InOrStdin(), cmd.OutOrStdout(), cc.Logger)
	server.SetParserConfig(cc.Parser)
	server.SetVersion(version)
	return server.Run()
}
