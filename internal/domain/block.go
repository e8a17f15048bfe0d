package domain

type Option struct {
	ID    string
	Label string
}

// ScoringRule accumulates points into a per-domain total when its block is
// answered. Exactly one of Points, ValueMap or ScalePer is expected to be set.
type ScoringRule struct {
	Domain   string
	Points   int            // flat addition when the block is answered
	ValueMap map[string]int // option id -> points, summed over selections
	ScalePer float64        // multiplier applied to a numeric answer
	When     *Condition     // optional gate, evaluated against current answers
}

// AssignRule sets an ambient context variable when its condition holds.
type AssignRule struct {
	Var   string
	Value string
	When  *Condition
}

// Block is one step of the questionnaire. Immutable once loaded.
type Block struct {
	ID     string
	Role   Role
	Type   BlockType
	Prompt string
	Help   string

	Options   []Option
	MinSelect int
	MaxSelect int
	ScaleMin  int
	ScaleMax  int

	Required bool
	Priority int
	Domain   string   // relevance tag matched against profile focus themes
	Tags     []string // e.g. "deep", "long"

	Visible *Condition
	Scoring []ScoringRule
	Assigns []AssignRule
}

func (b Block) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// OptionLabel resolves an option id to its display label, falling back to the
// id itself for unknown options.
func (b Block) OptionLabel(id string) string {
	for _, o := range b.Options {
		if o.ID == id {
			return o.Label
		}
	}
	return id
}

// Questionnaire is a loaded question set with its flow configuration.
type Questionnaire struct {
	ID          string
	Name        string
	Start       string
	SafetyBlock string
	BaseOrder   []string
	Blocks      []Block
}

// BlockByID returns the block with the given id, or nil.
func (q *Questionnaire) BlockByID(id string) *Block {
	for i := range q.Blocks {
		if q.Blocks[i].ID == id {
			return &q.Blocks[i]
		}
	}
	return nil
}
