package ui

import "github.com/charmbracelet/lipgloss"

// Palette shared by every create-uikit style.
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	colorWarn    = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}
	colorError   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	colorText    = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#E5E7EB"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
)

// Status symbols.
const (
	SymSuccess = "\u2713"
	SymError   = "\u2717"
	SymWarning = "!"
	SymStep    = "\u2022"
)

// Styles groups the lipgloss styles used for output.
type Styles struct {
	NoColor bool

	Primary lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Card    lipgloss.Style
}

// NewStyles returns the coloured styles, or plain ones when noColor is set.
func NewStyles(noColor bool) *Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return &Styles{
			NoColor: true,
			Primary: plain,
			Success: plain,
			Warn:    plain,
			Error:   plain,
			Info:    plain,
			Muted:   plain,
			Bold:    plain,
			Card:    plain.Border(lipgloss.NormalBorder()).Padding(0, 2),
		}
	}
	return &Styles{
		Primary: lipgloss.NewStyle().Foreground(colorPrimary),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Warn:    lipgloss.NewStyle().Foreground(colorWarn),
		Error:   lipgloss.NewStyle().Foreground(colorError),
		Info:    lipgloss.NewStyle().Foreground(colorInfo),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Bold:    lipgloss.NewStyle().Bold(true).Foreground(colorText),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2),
	}
}
