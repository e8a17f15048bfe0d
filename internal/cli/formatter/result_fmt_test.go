package formatter

import (
	"strings"
	"testing"

	"github.com/claraval/serein/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatScenario_TitlesPerVariant(t *testing.T) {
	out := FormatScenario(domain.VariantStep, "Premier paragraphe.\n\nDeuxième paragraphe.")
	assert.Contains(t, out, "PAR PETITS PAS")
	assert.Contains(t, out, "Premier paragraphe.")

	out = FormatScenario(domain.VariantMain, "Texte.")
	assert.Contains(t, out, "VOTRE BILAN")
}

func TestFormatDiagnostic_ShowsBreakdownAndEnergyNote(t *testing.T) {
	d := domain.Diagnostic{
		Headline:   "Le domaine le plus chargé aujourd'hui : charge.",
		Severity:   domain.SeverityElevated,
		Breakdown:  []string{"charge : 82/100 (élevé)", "travail : 55/100 (modéré)"},
		EnergyNote: "Votre énergie est basse en ce moment : visez des pas très courts.",
	}

	out := FormatDiagnostic(d)
	assert.Contains(t, out, "DIAGNOSTIC")
	assert.Contains(t, out, "charge : 82/100")
	assert.Contains(t, out, "travail : 55/100")
	assert.Contains(t, out, "énergie est basse")
}

func TestFormatDiagnostic_UrgentShowsOnlyHeadline(t *testing.T) {
	d := domain.Diagnostic{
		Urgent:    true,
		Headline:  "Parlez-en dès maintenant ou appelez le 3114.",
		Severity:  domain.SeverityElevated,
		Breakdown: []string{"charge : 90/100 (élevé)"},
	}

	out := FormatDiagnostic(d)
	assert.Contains(t, out, "3114")
	assert.NotContains(t, out, "90/100", "scores are hidden on urgency")
}

func TestFormatPlan_ListsEveryDayAndSlot(t *testing.T) {
	p := domain.Plan{
		Intensity: 2,
		Adherence: 0.5,
		Streak:    3,
		Days: []domain.PlanDay{
			{Day: 1, Slots: []domain.PlanSlot{
				{Day: 1, Slot: 1, ModuleID: "resp", Title: "Respiration 4-7-8", Minutes: 3},
				{Day: 1, Slot: 2, ModuleID: "tri", Title: "Tri des tâches", Minutes: 10},
			}},
			{Day: 2, Slots: []domain.PlanSlot{
				{Day: 2, Slot: 1, ModuleID: "scan", Title: "Scan corporel", Minutes: 4},
			}},
		},
	}

	out := FormatPlan(p)
	assert.Contains(t, out, "Jour 1")
	assert.Contains(t, out, "Jour 2")
	assert.Contains(t, out, "Respiration 4-7-8")
	assert.Contains(t, out, "(10 min)")
	assert.Contains(t, out, "Intensité 2")
	assert.Contains(t, out, "Série 3 jour(s)")
}

func TestProgressBar_FillMatchesFraction(t *testing.T) {
	out := ProgressBar(0.5, 10)
	assert.Equal(t, 5, strings.Count(out, "█"))
	assert.Equal(t, 5, strings.Count(out, "░"))
	assert.Contains(t, out, "50%")

	full := ProgressBar(1.0, 10)
	assert.Equal(t, 10, strings.Count(full, "█"))

	empty := ProgressBar(0, 10)
	assert.Equal(t, 0, strings.Count(empty, "█"))
	assert.Contains(t, empty, "0%")
}

func TestRenderBox_WithoutTitle(t *testing.T) {
	out := RenderBox("", "contenu")
	assert.Contains(t, out, "contenu")
}

func TestSeverityIndicator_FrenchLabels(t *testing.T) {
	assert.Contains(t, SeverityIndicator(domain.SeverityElevated), "ÉLEVÉ")
	assert.Contains(t, SeverityIndicator(domain.SeverityModerate), "MODÉRÉ")
	assert.Contains(t, SeverityIndicator(domain.SeverityMild), "LÉGER")
	assert.Contains(t, SeverityIndicator(domain.SeverityLow), "FAIBLE")
}
