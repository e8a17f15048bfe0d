package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claraval/serein/internal/domain"
)

// Muted, low-stimulation palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#83a598")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityColor returns the lipgloss style for a severity bucket.
func SeverityColor(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityElevated:
		return StyleRed
	case domain.SeverityModerate:
		return StyleYellow
	case domain.SeverityMild:
		return StyleBlue
	default:
		return StyleGreen
	}
}

// SeverityIndicator returns a colored indicator string such as "● ÉLEVÉ".
func SeverityIndicator(s domain.Severity) string {
	switch s {
	case domain.SeverityElevated:
		return StyleRed.Render("● ÉLEVÉ")
	case domain.SeverityModerate:
		return StyleYellow.Render("● MODÉRÉ")
	case domain.SeverityMild:
		return StyleBlue.Render("● LÉGER")
	default:
		return StyleGreen.Render("● FAIBLE")
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
