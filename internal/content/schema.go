package content

import "github.com/claraval/serein/internal/domain"

// QuestionnaireSchema is the top-level questionnaire JSON structure.
type QuestionnaireSchema struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Version     string        `json:"version,omitempty"`
	Start       string        `json:"start,omitempty"`
	SafetyBlock string        `json:"safety_block,omitempty"`
	BaseOrder   []string      `json:"base_order,omitempty"`
	Blocks      []BlockConfig `json:"blocks"`
}

type BlockConfig struct {
	ID        string         `json:"id"`
	Role      string         `json:"role"`
	Type      string         `json:"type"`
	Prompt    string         `json:"prompt"`
	Help      string         `json:"help,omitempty"`
	Options   []OptionConfig `json:"options,omitempty"`
	MinSelect int            `json:"min_select,omitempty"`
	MaxSelect int            `json:"max_select,omitempty"`
	ScaleMin  int            `json:"scale_min,omitempty"`
	ScaleMax  int            `json:"scale_max,omitempty"`
	Required  bool           `json:"required,omitempty"`
	Priority  int            `json:"priority,omitempty"`
	Domain    string         `json:"domain,omitempty"`
	Tags      []string       `json:"tags,omitempty"`

	Visible *domain.Condition `json:"visible,omitempty"`
	Scoring []ScoringConfig   `json:"scoring,omitempty"`
	Assigns []AssignConfig    `json:"assigns,omitempty"`
}

type OptionConfig struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type ScoringConfig struct {
	Domain   string            `json:"domain"`
	Points   int               `json:"points,omitempty"`
	ValueMap map[string]int    `json:"value_map,omitempty"`
	ScalePer float64           `json:"scale_per,omitempty"`
	When     *domain.Condition `json:"when,omitempty"`
}

type AssignConfig struct {
	Var   string            `json:"var"`
	Value string            `json:"value"`
	When  *domain.Condition `json:"when,omitempty"`
}

// PacksSchema is the content-pack JSON structure.
type PacksSchema struct {
	MinSentences int                 `json:"min_sentences,omitempty"`
	MaxSentences int                 `json:"max_sentences,omitempty"`
	Roots        map[string][]string `json:"roots,omitempty"`
	Openings     map[string][]string `json:"openings,omitempty"`
	Themes       map[string][]string `json:"themes,omitempty"`
	Postures     map[string][]string `json:"postures,omitempty"`
	Vecu         map[string][]string `json:"vecu,omitempty"`
	Besoins      map[string][]string `json:"besoins,omitempty"`
	Energy       map[string][]string `json:"energy,omitempty"`
	Variants     map[string][]string `json:"variants,omitempty"`
	Closings     []string            `json:"closings"`
	Combos       []ComboConfig       `json:"combos,omitempty"`
}

type ComboConfig struct {
	LeftKind  string   `json:"left_kind"`
	Left      string   `json:"left"`
	RightKind string   `json:"right_kind"`
	Right     string   `json:"right"`
	Weight    int      `json:"weight,omitempty"`
	Lines     []string `json:"lines"`
}

// ModulesSchema is the module-library JSON structure.
type ModulesSchema struct {
	Modules []ModuleConfig `json:"modules"`
}

type ModuleConfig struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Minutes      int      `json:"minutes"`
	Instructions string   `json:"instructions,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Domain       string   `json:"domain"`
	Weight       int      `json:"weight,omitempty"`
}
