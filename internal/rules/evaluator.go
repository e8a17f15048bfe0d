// Package rules interprets the small predicate language used by block
// visibility rules and conditional scoring.
package rules

import (
	"strconv"
	"strings"

	"github.com/claraval/serein/internal/domain"
)

// Context exposes everything a condition may reference: answers, per-domain
// scores and ambient signals.
type Context struct {
	Answers domain.AnswerSet
	Scores  map[string]int
	Energy  domain.EnergyLevel
	Vars    map[string]string
}

// BuildVars runs the assignment rules of every answered block, in block
// order, and returns the resulting ambient variables. Each rule's condition
// sees the variables assigned before it; a later assignment to the same
// variable wins.
func BuildVars(blocks []domain.Block, answers domain.AnswerSet) map[string]string {
	vars := map[string]string{}
	for _, b := range blocks {
		if len(b.Assigns) == 0 {
			continue
		}
		a, ok := answers[b.ID]
		if !ok || a.IsEmpty() {
			continue
		}
		for _, rule := range b.Assigns {
			if !Evaluate(rule.When, Context{Answers: answers, Vars: vars}) {
				continue
			}
			vars[rule.Var] = rule.Value
		}
	}
	return vars
}

// Evaluate returns the truth value of a condition tree against the context.
// An absent condition and an unrecognized node both evaluate to true: the
// default is deliberately fail-open so that the absence of a rule never
// blocks visibility.
func Evaluate(c *domain.Condition, ctx Context) bool {
	if c == nil {
		return true
	}

	switch {
	case len(c.All) > 0:
		for i := range c.All {
			if !Evaluate(&c.All[i], ctx) {
				return false
			}
		}
		return true
	case len(c.Any) > 0:
		for i := range c.Any {
			if Evaluate(&c.Any[i], ctx) {
				return true
			}
		}
		return false
	case c.Not != nil:
		return !Evaluate(c.Not, ctx)
	}

	return evaluateLeaf(c, ctx)
}

func evaluateLeaf(c *domain.Condition, ctx Context) bool {
	switch c.Op {
	case domain.OpEq:
		return leafValue(c, ctx) == operandString(c.Value)
	case domain.OpNeq:
		return leafValue(c, ctx) != operandString(c.Value)
	case domain.OpGte:
		return compareNumeric(c, ctx, func(a, b float64) bool { return a >= b })
	case domain.OpLte:
		return compareNumeric(c, ctx, func(a, b float64) bool { return a <= b })
	case domain.OpIncludes:
		return evalIncludes(c, ctx)
	case domain.OpIn:
		v := leafValue(c, ctx)
		for _, candidate := range c.Values {
			if v == candidate {
				return true
			}
		}
		return false
	case domain.OpAnswered:
		a, ok := ctx.Answers[c.Answer]
		return ok && !a.IsEmpty()
	case domain.OpScoreGte:
		threshold, ok := asNumber(c.Value)
		if !ok {
			return false
		}
		return float64(ctx.Scores[c.Domain]) >= threshold
	case domain.OpScoreLte:
		threshold, ok := asNumber(c.Value)
		if !ok {
			return false
		}
		return float64(ctx.Scores[c.Domain]) <= threshold
	case domain.OpEnergyEq:
		return string(ctx.Energy) == operandString(c.Value)
	}

	// Unknown operator: permissive default.
	return true
}

// leafValue resolves the single value a leaf compares against: an ambient
// variable if one matches, otherwise the referenced answer's first value.
func leafValue(c *domain.Condition, ctx Context) string {
	if v, ok := ctx.Vars[c.Answer]; ok {
		return v
	}
	return ctx.Answers[c.Answer].First()
}

// evalIncludes checks array membership for multi-valued answers and substring
// containment for free text, depending on the answer's shape.
func evalIncludes(c *domain.Condition, ctx Context) bool {
	a := ctx.Answers[c.Answer]
	want := operandString(c.Value)
	if len(a.OptionIDs) > 0 {
		return a.Has(want)
	}
	if a.Text != "" {
		return strings.Contains(strings.ToLower(a.Text), strings.ToLower(want))
	}
	return false
}

// compareNumeric coerces the answer value and operand to numbers. Non-numeric
// input fails closed.
func compareNumeric(c *domain.Condition, ctx Context, cmp func(a, b float64) bool) bool {
	operand, ok := asNumber(c.Value)
	if !ok {
		return false
	}

	a := ctx.Answers[c.Answer]
	var got float64
	switch {
	case a.Number != nil:
		got = *a.Number
	default:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(a.First()), 64)
		if err != nil {
			return false
		}
		got = parsed
	}
	return cmp(got, operand)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func operandString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	}
	return ""
}
