package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/mysqlparse/pkg/lexer"
	"github.com/leapstack-labs/mysqlparse/pkg/parser"
)

// OutputFormats lists the accepted values of the output setting.
var OutputFormats = []string{"auto", "text", "markdown", "json", "yaml", "sexpr"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := parser.ParseServerVersion(c.ServerVersion); err != nil {
		return fmt.Errorf("server_version: %w", err)
	}
	if _, err := lexer.ParseSQLMode(c.SQLMode); err != nil {
		return fmt.Errorf("sql_mode: %w", err)
	}
	if c.OutputFormat != "" && !validOutput(c.OutputFormat) {
		return fmt.Errorf("output: unknown format %q (want one of %s)", c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative")
	}
	if c.Check != nil && c.Check.Workers < 0 {
		return fmt.Errorf("check.workers must not be negative")
	}
	return nil
}

// ParserConfig converts the settings into parser options. Validate has
// already rejected malformed values, so errors here only arise for configs
// built by hand.
func (c *Config) ParserConfig(logger *slog.Logger) (parser.Config, error) {
	version, err := parser.ParseServerVersion(c.ServerVersion)
	if err != nil {
		return parser.Config{}, fmt.Errorf("server_version: %w", err)
	}
	mode, err := lexer.ParseSQLMode(c.SQLMode)
	if err != nil {
		return parser.Config{}, fmt.Errorf("sql_mode: %w", err)
	}
	return parser.Config{
		ServerVersion: version,
		SQLMode:       mode,
		Logger:        logger,
		MaxDepth:      c.MaxDepth,
	}, nil
}

func validOutput(s string) bool {
	for _, f := range OutputFormats {
		if f == s {
			return true
		}
	}
	return false
}

func parseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown level %q", s)
	}
	return level, nil
}
