package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mysqlparse/internal/cli/output"
	"github.com/leapstack-labs/mysqlparse/pkg/parser"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the mysqlparse version and the MySQL server versions the grammar covers.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			info := output.VersionInfo{
				Version:              version,
				DefaultServerVersion: parser.FormatServerVersion(parser.DefaultServerVersion),
				MinServerVersion:     parser.FormatServerVersion(parser.MinServerVersion),
				MaxServerVersion:     parser.FormatServerVersion(parser.MaxServerVersion),
			}

			r := cc.Renderer
			switch r.EffectiveMode() {
			case output.ModeJSON:
				return r.JSON(info)
			case output.ModeYAML:
				return r.YAML(info)
			}
			r.Printf("mysqlparse v%s\n", info.Version)
			r.Printf("MySQL grammar for server versions %s to %s (default %s)\n",
				info.MinServerVersion, info.MaxServerVersion, info.DefaultServerVersion)
			return nil
		},
	}
}
