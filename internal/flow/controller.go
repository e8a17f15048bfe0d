// Package flow is the state machine that chooses the next questionnaire
// block. States are block ids plus the terminal finished state.
package flow

import (
	"sort"

	"github.com/claraval/serein/internal/domain"
	"github.com/claraval/serein/internal/profile"
	"github.com/claraval/serein/internal/rules"
)

// Next returns the next block id to show, or finished=true when no candidate
// remains. The transition order is fixed:
//  1. urgency override to the safety block, exactly once;
//  2. configured start block when nothing has been shown, unless its own
//     visibility predicate already fails;
//  3. base order, then domain-relevant blocks, then any remaining block,
//     filtered by visibility and energy, in deterministic sort order.
func Next(q *domain.Questionnaire, answers domain.AnswerSet, shown []string, energy domain.EnergyLevel) (string, bool) {
	shownSet := make(map[string]bool, len(shown))
	for _, id := range shown {
		shownSet[id] = true
	}

	if q.SafetyBlock != "" && !shownSet[q.SafetyBlock] && profile.HasUrgencySignal(answers) {
		if q.BlockByID(q.SafetyBlock) != nil {
			return q.SafetyBlock, false
		}
	}

	vars := rules.BuildVars(q.Blocks, answers)

	if len(shown) == 0 {
		if start := startBlock(q); start != "" {
			b := q.BlockByID(start)
			if b == nil || rules.Evaluate(b.Visible, rules.Context{Answers: answers, Energy: energy, Vars: vars}) {
				return start, false
			}
		}
	}

	p := profile.Build(q.Blocks, answers)
	ctx := rules.Context{Answers: answers, Scores: p.Scores, Energy: energy, Vars: vars}

	candidates := collectCandidates(q, p, shownSet)
	eligible := candidates[:0]
	for _, b := range candidates {
		if !rules.Evaluate(b.Visible, ctx) {
			continue
		}
		if energy == domain.EnergyLow && (b.HasTag("deep") || b.HasTag("long")) {
			continue
		}
		eligible = append(eligible, b)
	}
	if len(eligible) == 0 {
		return "", true
	}

	sortCandidates(eligible)
	return eligible[0].ID, false
}

func startBlock(q *domain.Questionnaire) string {
	if q.Start != "" {
		return q.Start
	}
	if len(q.BaseOrder) > 0 {
		return q.BaseOrder[0]
	}
	if len(q.Blocks) > 0 {
		return q.Blocks[0].ID
	}
	return ""
}

// collectCandidates builds the ordered, deduplicated candidate list:
// explicit base-order blocks, then blocks whose domain tag matches an active
// focus theme, then any remaining unshown block.
func collectCandidates(q *domain.Questionnaire, p domain.Profile, shownSet map[string]bool) []domain.Block {
	seen := map[string]bool{}
	var out []domain.Block

	add := func(b *domain.Block) {
		if b == nil || shownSet[b.ID] || seen[b.ID] {
			return
		}
		// The safety block is only reachable through the urgency override.
		if b.ID == q.SafetyBlock {
			return
		}
		seen[b.ID] = true
		out = append(out, *b)
	}

	for _, id := range q.BaseOrder {
		add(q.BlockByID(id))
	}

	focus := make(map[string]bool, len(p.Focus))
	for _, t := range p.Focus {
		focus[t] = true
	}
	for i := range q.Blocks {
		if q.Blocks[i].Domain != "" && focus[q.Blocks[i].Domain] {
			add(&q.Blocks[i])
		}
	}

	for i := range q.Blocks {
		add(&q.Blocks[i])
	}
	return out
}

// sortCandidates orders by required flag descending, priority descending,
// id ascending. The tie-break makes the transition fully deterministic.
func sortCandidates(blocks []domain.Block) {
	sort.SliceStable(blocks, func(i, j int) bool {
		a, b := blocks[i], blocks[j]
		if a.Required != b.Required {
			return a.Required
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.ID < b.ID
	})
}

// Progress returns the completion fraction for display, in [0, 1].
func Progress(q *domain.Questionnaire, shown []string) float64 {
	if len(q.Blocks) == 0 {
		return 0
	}
	f := float64(len(shown)) / float64(len(q.Blocks))
	if f > 1 {
		return 1
	}
	return f
}
