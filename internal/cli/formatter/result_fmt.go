package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claraval/serein/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatScenario renders one scenario variant inside a titled box.
func FormatScenario(variant domain.VariantKey, text string) string {
	return RenderBox(variantTitle(variant), StyleFg.Render(text))
}

func variantTitle(v domain.VariantKey) string {
	switch v {
	case domain.VariantStep:
		return "Par petits pas"
	case domain.VariantCalm:
		return "En douceur"
	case domain.VariantNorm:
		return "Vous n'êtes pas seul·e"
	default:
		return "Votre bilan"
	}
}

// FormatDiagnostic renders the diagnostic: headline, per-domain breakdown
// and the energy note.
func FormatDiagnostic(d domain.Diagnostic) string {
	var b strings.Builder

	b.WriteString(Header("Diagnostic"))
	b.WriteString("\n")
	if d.Urgent {
		b.WriteString(StyleRed.Render(d.Headline))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(SeverityIndicator(d.Severity))
	b.WriteString("  ")
	b.WriteString(StyleBold.Render(d.Headline))
	b.WriteString("\n")
	for _, line := range d.Breakdown {
		b.WriteString("  • ")
		b.WriteString(StyleFg.Render(line))
		b.WriteString("\n")
	}
	if d.EnergyNote != "" {
		b.WriteString(Dim(d.EnergyNote))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPlan renders the 7-day schedule as one line per slot, grouped by day.
func FormatPlan(p domain.Plan) string {
	var b strings.Builder

	b.WriteString(Header("Plan sur 7 jours"))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Intensité %d · Adhérence %.0f%% · Série %d jour(s)",
		p.Intensity, p.Adherence*100, p.Streak)))
	b.WriteString("\n\n")

	for _, day := range p.Days {
		b.WriteString(StyleBold.Render(fmt.Sprintf("Jour %d", day.Day)))
		b.WriteString("\n")
		for _, slot := range day.Slots {
			b.WriteString(fmt.Sprintf("  %d. %s %s\n",
				slot.Slot,
				StyleFg.Render(slot.Title),
				Dim(fmt.Sprintf("(%d min)", slot.Minutes)),
			))
		}
	}
	return b.String()
}

// ProgressBar renders a simple questionnaire progress indicator.
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return StyleBlue.Render(bar) + Dim(fmt.Sprintf(" %.0f%%", fraction*100))
}
