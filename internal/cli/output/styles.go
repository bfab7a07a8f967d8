package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	FilePath lipgloss.Style
	Keyword  lipgloss.Style

	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
	StatusSkipped lipgloss.Style
}

// NewStyles builds the style set. Without a terminal every style renders
// its input unchanged, so piped output stays free of escape codes.
func NewStyles(re *lipgloss.Renderer, color bool) *Styles {
	if !color {
		plain := re.NewStyle()
		return &Styles{
			Header1:       plain,
			Header2:       plain,
			Bold:          plain,
			Muted:         plain,
			Success:       plain,
			Warning:       plain,
			Error:         plain,
			Info:          plain,
			FilePath:      plain,
			Keyword:       plain,
			StatusSuccess: plain.SetString("ok"),
			StatusFailed:  plain.SetString("FAIL"),
			StatusSkipped: plain.SetString("-"),
		}
	}

	return &Styles{
		Header1:       re.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2:       re.NewStyle().Bold(true),
		Bold:          re.NewStyle().Bold(true),
		Muted:         re.NewStyle().Foreground(lipgloss.Color("8")),
		Success:       re.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:       re.NewStyle().Foreground(lipgloss.Color("11")),
		Error:         re.NewStyle().Foreground(lipgloss.Color("9")),
		Info:          re.NewStyle().Foreground(lipgloss.Color("14")),
		FilePath:      re.NewStyle().Foreground(lipgloss.Color("13")),
		Keyword:       re.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		StatusSuccess: re.NewStyle().Foreground(lipgloss.Color("10")).SetString("✓"),
		StatusFailed:  re.NewStyle().Foreground(lipgloss.Color("9")).SetString("✗"),
		StatusSkipped: re.NewStyle().Foreground(lipgloss.Color("8")).SetString("-"),
	}
}
