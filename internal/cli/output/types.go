package output

// TokenRow is the JSON shape of one token in `mysqlparse tokens`.
type TokenRow struct {
	Index  int    `json:"index" yaml:"index"`
	Type   string `json:"type" yaml:"type"`
	Text   string `json:"text" yaml:"text"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// CheckDiagnostic is a syntax error found by `mysqlparse check`.
type CheckDiagnostic struct {
	Message string `json:"message" yaml:"message"`
	Rule    string `json:"rule,omitempty" yaml:"rule,omitempty"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

// CheckFileResult holds the outcome for one checked file.
type CheckFileResult struct {
	Path       string           `json:"path" yaml:"path"`
	OK         bool             `json:"ok" yaml:"ok"`
	Statements int              `json:"statements" yaml:"statements"`
	Error      *CheckDiagnostic `json:"error,omitempty" yaml:"error,omitempty"`
}

// CheckSummary aggregates a check run.
type CheckSummary struct {
	Files  int `json:"files" yaml:"files"`
	Passed int `json:"passed" yaml:"passed"`
	Failed int `json:"failed" yaml:"failed"`
}

// CheckOutput is the JSON document printed by `mysqlparse check -o json`.
type CheckOutput struct {
	ServerVersion string            `json:"server_version" yaml:"server_version"`
	Summary       CheckSummary      `json:"summary" yaml:"summary"`
	Files         []CheckFileResult `json:"files" yaml:"files"`
}

// VersionInfo is the JSON shape of `mysqlparse version`.
type VersionInfo struct {
	Version              string `json:"version" yaml:"version"`
	DefaultServerVersion string `json:"default_server_version" yaml:"default_server_version"`
	MinServerVersion     string `json:"min_server_version" yaml:"min_server_version"`
	MaxServerVersion     string `json:"max_server_version" yaml:"max_server_version"`
}
