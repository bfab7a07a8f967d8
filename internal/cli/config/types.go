// Package config provides configuration management for the mysqlparse CLI.
//
// Settings are layered with koanf: built-in defaults, then mysqlparse.yaml,
// then MYSQLPARSE_* environment variables, then explicitly set flags.
package config

// CheckConfig holds settings for the check command.
type CheckConfig struct {
	Include []string `koanf:"include"`
	Workers int      `koanf:"workers"`
}

// Config holds all CLI configuration options.
type Config struct {
	ServerVersion string       `koanf:"server_version"`
	SQLMode       string       `koanf:"sql_mode"`
	OutputFormat  string       `koanf:"output"`
	Verbose       bool         `koanf:"verbose"`
	LogLevel      string       `koanf:"log_level"`
	MaxDepth      int          `koanf:"max_depth"`
	Check         *CheckConfig `koanf:"check"`
}

// Default configuration values.
const (
	DefaultServerVersion = "8.0.19"
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel      = "warn"
	DefaultWorkers       = 4
	DefaultInclude       = "**/*.sql"
)

// Config file names searched in the working directory, in order.
var configFileNames = []string{"mysqlparse.yaml", "mysqlparse.yml"}

// GetCheckConfig returns the check config with defaults applied for any unset values.
func (c *Config) GetCheckConfig() *CheckConfig {
	if c.Check == nil {
		return &CheckConfig{Include: []string{DefaultInclude}, Workers: DefaultWorkers}
	}
	check := c.Check
	if len(check.Include) == 0 {
		check.Include = []string{DefaultInclude}
	}
	if check.Workers == 0 {
		check.Workers = DefaultWorkers
	}
	return check
}

// Default returns the configuration used when nothing was loaded.
func Default() *Config {
	return &Config{
		ServerVersion: DefaultServerVersion,
		OutputFormat:  DefaultOutput,
		LogLevel:      DefaultLogLevel,
		Check:         &CheckConfig{Include: []string{DefaultInclude}, Workers: DefaultWorkers},
	}
}
