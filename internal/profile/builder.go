// Package profile derives the read-only profile snapshot from a completed
// answer set: dominant tone, themes, focus, posture, needs, energy, root
// category and normalized per-domain scores.
package profile

import (
	"math"

	"github.com/claraval/serein/internal/domain"
	"github.com/claraval/serein/internal/rules"
)

// scoreScale is the fixed multiplicative factor applied to raw domain totals
// before clamping into [0, 100].
const scoreScale = 4

// distressThreshold is the normalized score above which the charge domain
// counts as high distress for root derivation.
const distressThreshold = 75

// OptionManyThings is the stable option id that sets the many-things flag.
// Keyed off the identifier, not the option text, so content edits cannot
// silently break the trigger.
const OptionManyThings = "plusieurs"

// stopOptions are the exit-role option ids that signal a wish to stop.
var stopOptions = map[string]bool{
	"arreter": true,
	"stop":    true,
	"pause":   true,
}

// Build derives a Profile from the answers. Scores are accumulated per
// domain over every scored block, then normalized into [0, 100]; a domain
// with no contributing answers stays at 0.
func Build(blocks []domain.Block, answers domain.AnswerSet) domain.Profile {
	p := domain.Profile{
		Scores: buildScores(blocks, answers),
		Urgent: HasUrgencySignal(answers),
	}

	for _, b := range blocks {
		a, ok := answers[b.ID]
		if !ok || a.IsEmpty() {
			continue
		}
		switch b.Role {
		case domain.RoleTone:
			if p.Tone == "" {
				p.Tone = a.First()
			}
		case domain.RoleThemes:
			p.Themes = append(p.Themes, a.OptionIDs...)
		case domain.RolePosture:
			p.Postures = append(p.Postures, a.OptionIDs...)
		case domain.RoleVecu:
			p.Vecu = append(p.Vecu, a.OptionIDs...)
		case domain.RoleBesoin:
			p.Besoins = append(p.Besoins, a.OptionIDs...)
		case domain.RoleEnergy:
			if p.Energy == "" {
				p.Energy = domain.EnergyLevel(a.First())
			}
		}
	}

	p.LowEnergy = p.Energy == domain.EnergyLow
	p.ManyThings = contains(p.Themes, OptionManyThings)
	p.Focus = narrowFocus(p.Themes)
	p.Root = deriveRoot(blocks, answers, p)
	return p
}

func buildScores(blocks []domain.Block, answers domain.AnswerSet) map[string]int {
	ctx := rules.Context{Answers: answers, Vars: rules.BuildVars(blocks, answers)}

	totals := map[string]float64{}
	for _, b := range blocks {
		a, ok := answers[b.ID]
		if !ok || a.IsEmpty() {
			continue
		}
		for _, rule := range b.Scoring {
			if rule.When != nil && !rules.Evaluate(rule.When, ctx) {
				continue
			}
			totals[rule.Domain] += ruleValue(rule, a)
		}
	}

	scores := make(map[string]int, len(totals))
	for d, raw := range totals {
		scores[d] = normalizeScore(raw)
	}
	return scores
}

func ruleValue(rule domain.ScoringRule, a domain.Answer) float64 {
	switch {
	case len(rule.ValueMap) > 0:
		sum := 0.0
		for _, id := range a.OptionIDs {
			sum += float64(rule.ValueMap[id])
		}
		return sum
	case rule.ScalePer != 0:
		if a.Number == nil {
			return 0
		}
		return *a.Number * rule.ScalePer
	default:
		return float64(rule.Points)
	}
}

// normalizeScore applies the fixed multiplicative-then-clamp transform.
func normalizeScore(raw float64) int {
	s := int(math.Round(raw * scoreScale))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// narrowFocus keeps at most two themes, promoting the many-things theme to
// the front when selected.
func narrowFocus(themes []string) []string {
	ordered := make([]string, 0, len(themes))
	if contains(themes, OptionManyThings) {
		ordered = append(ordered, OptionManyThings)
	}
	for _, t := range themes {
		if t != OptionManyThings {
			ordered = append(ordered, t)
		}
	}
	if len(ordered) > 2 {
		ordered = ordered[:2]
	}
	return ordered
}

// deriveRoot walks the fixed priority chain. Safety and disengagement
// signals outrank generic themes; the ordering must not be rearranged.
func deriveRoot(blocks []domain.Block, answers domain.AnswerSet, p domain.Profile) domain.RootCategory {
	if hasExitSignal(blocks, answers) {
		return domain.RootSortie
	}
	if p.LowEnergy || p.Scores["charge"] >= distressThreshold {
		return domain.RootFatigue
	}
	if p.Tone == "flou" || contains(p.Themes, "flou") || contains(p.Postures, "confusion") {
		return domain.RootFlou
	}
	if contains(p.Postures, "retrait") || contains(p.Besoins, "protection") {
		return domain.RootProtection
	}
	if contains(p.Postures, "effort") || p.Tone == "determination" {
		return domain.RootEffort
	}
	return domain.RootClarification
}

func hasExitSignal(blocks []domain.Block, answers domain.AnswerSet) bool {
	for _, b := range blocks {
		if b.Role != domain.RoleExit {
			continue
		}
		a := answers[b.ID]
		for _, id := range a.OptionIDs {
			if stopOptions[id] {
				return true
			}
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
