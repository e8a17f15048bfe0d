package domain

type ConditionOp string

const (
	OpEq       ConditionOp = "eq"
	OpNeq      ConditionOp = "neq"
	OpGte      ConditionOp = "gte"
	OpLte      ConditionOp = "lte"
	OpIncludes ConditionOp = "includes"
	OpIn       ConditionOp = "in"
	OpAnswered ConditionOp = "answered"
	OpScoreGte ConditionOp = "score_gte"
	OpScoreLte ConditionOp = "score_lte"
	OpEnergyEq ConditionOp = "energy_eq"
)

// Condition is a predicate tree over answers, domain scores and ambient
// context. A node is composite when All, Any or Not is set; otherwise it is a
// leaf identified by Op. Leaves reference exactly one answer id (Answer) or
// one score domain (Domain).
type Condition struct {
	All []Condition `json:"all,omitempty"`
	Any []Condition `json:"any,omitempty"`
	Not *Condition  `json:"not,omitempty"`

	Op     ConditionOp `json:"op,omitempty"`
	Answer string      `json:"answer,omitempty"`
	Domain string      `json:"domain,omitempty"`
	Value  any         `json:"value,omitempty"`
	Values []string    `json:"values,omitempty"` // operand set for "in"
}
