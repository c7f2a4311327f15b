package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen = lipgloss.Color("#6BCB77")
	colorRed   = lipgloss.Color("#E74C3C")
	colorAmber = lipgloss.Color("#F0AD4E")
	colorCyan  = lipgloss.Color("#5B9BD5")
	colorDim   = lipgloss.Color("#7F8C8D")

	headerStyle = lipgloss.NewStyle().Bold(true)
	allowStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	denyStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(colorAmber)
	agentStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	pathStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// Styler renders text through a lipgloss style when colors are enabled.
type Styler struct {
	enabled bool
}

// NewStyler creates a new Styler.
func NewStyler(enabled bool) *Styler {
	return &Styler{enabled: enabled}
}

func (s *Styler) apply(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// Header formats text as a section header.
func (s *Styler) Header(text string) string { return s.apply(headerStyle, text) }

// Allow formats an allow/ok marker.
func (s *Styler) Allow(text string) string { return s.apply(allowStyle, text) }

// Deny formats a deny/error marker.
func (s *Styler) Deny(text string) string { return s.apply(denyStyle, text) }

// Warn formats a warning.
func (s *Styler) Warn(text string) string { return s.apply(warnStyle, text) }

// Agent formats an agent name.
func (s *Styler) Agent(text string) string { return s.apply(agentStyle, text) }

// Path formats a filesystem path.
func (s *Styler) Path(text string) string { return s.apply(pathStyle, text) }
