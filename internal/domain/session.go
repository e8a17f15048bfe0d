package domain

import "time"

// Session is a frozen, completed questionnaire with everything derived from
// it: profile, the four scenario variants, diagnostic and plan.
type Session struct {
	ID          string
	CompletedAt time.Time
	Answers     AnswerSet
	Shown       []string
	Profile     Profile
	Scenarios   map[VariantKey]string
	Diagnostic  Diagnostic
	Plan        Plan
}
