package plan

import (
	"fmt"
	"sort"

	"github.com/claraval/serein/internal/domain"
)

// maxDiagnosticDomains caps the bulleted breakdown.
const maxDiagnosticDomains = 4

const safetyHeadline = "Ce que vous traversez semble très lourd. Vous n'avez pas à rester seul·e avec ça : parlez-en dès maintenant à une personne de confiance ou appelez le 3114 (numéro national de prévention, gratuit, 24h/24)."

var energyNotes = map[domain.EnergyLevel]string{
	domain.EnergyLow:    "Votre énergie est basse en ce moment : visez des pas très courts, sans exigence de résultat.",
	domain.EnergyMedium: "Votre énergie est moyenne : avancez à un rythme régulier, sans forcer.",
	domain.EnergyHigh:   "Votre énergie est bonne : c'est un bon moment pour consolider ce qui compte pour vous.",
}

// SeverityFor buckets a normalized domain score.
func SeverityFor(score int) domain.Severity {
	switch {
	case score >= 75:
		return domain.SeverityElevated
	case score >= 45:
		return domain.SeverityModerate
	case score >= 20:
		return domain.SeverityMild
	default:
		return domain.SeverityLow
	}
}

// BuildDiagnostic labels the top domains by score. An urgency flag overrides
// all scoring output with the fixed safety-first diagnostic.
func BuildDiagnostic(p domain.Profile) domain.Diagnostic {
	if p.Urgent {
		return domain.Diagnostic{
			Urgent:   true,
			Headline: safetyHeadline,
			Severity: domain.SeverityElevated,
		}
	}

	top := RankDomains(p.Scores, maxDiagnosticDomains)
	d := domain.Diagnostic{
		Top:        top,
		EnergyNote: energyNotes[p.Energy],
	}
	if len(top) == 0 {
		d.Severity = domain.SeverityLow
		d.Headline = "Rien ne ressort fortement aujourd'hui."
		return d
	}

	d.Severity = top[0].Severity
	d.Headline = fmt.Sprintf("Le domaine le plus chargé aujourd'hui : %s.", top[0].Domain)
	for _, t := range top {
		d.Breakdown = append(d.Breakdown, fmt.Sprintf("%s : %d/100 (%s)", t.Domain, t.Score, severityLabel(t.Severity)))
	}
	return d
}

// RankDomains sorts domains by score descending (name ascending as
// tie-break) and keeps up to limit non-zero entries.
func RankDomains(scores map[string]int, limit int) []domain.DomainScore {
	var ranked []domain.DomainScore
	for name, score := range scores {
		if score <= 0 {
			continue
		}
		ranked = append(ranked, domain.DomainScore{
			Domain:   name,
			Score:    score,
			Severity: SeverityFor(score),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Domain < ranked[j].Domain
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func severityLabel(s domain.Severity) string {
	switch s {
	case domain.SeverityElevated:
		return "élevé"
	case domain.SeverityModerate:
		return "modéré"
	case domain.SeverityMild:
		return "léger"
	default:
		return "faible"
	}
}
