// Package content loads and validates the static configuration the engine
// runs on: the questionnaire, the content packs and the module library.
// Loading happens once, before any engine call.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claraval/serein/internal/domain"
)

// Store holds all loaded configuration.
type Store struct {
	Questionnaire *domain.Questionnaire
	Packs         *domain.PackSet
	Modules       []domain.Module
}

// Load reads questionnaire.json, packs.json and modules.json from dir.
func Load(dir string) (*Store, error) {
	q, err := LoadQuestionnaire(filepath.Join(dir, "questionnaire.json"))
	if err != nil {
		return nil, fmt.Errorf("loading questionnaire: %w", err)
	}
	packs, err := LoadPacks(filepath.Join(dir, "packs.json"))
	if err != nil {
		return nil, fmt.Errorf("loading content packs: %w", err)
	}
	modules, err := LoadModules(filepath.Join(dir, "modules.json"))
	if err != nil {
		return nil, fmt.Errorf("loading module library: %w", err)
	}
	return &Store{Questionnaire: q, Packs: packs, Modules: modules}, nil
}

// LoadQuestionnaire reads and validates one questionnaire file.
func LoadQuestionnaire(path string) (*domain.Questionnaire, error) {
	var schema QuestionnaireSchema
	if err := readJSON(path, &schema); err != nil {
		return nil, err
	}
	if errs := ValidateQuestionnaire(&schema); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	q := &domain.Questionnaire{
		ID:          schema.ID,
		Name:        schema.Name,
		Start:       schema.Start,
		SafetyBlock: schema.SafetyBlock,
		BaseOrder:   schema.BaseOrder,
	}
	for _, bc := range schema.Blocks {
		q.Blocks = append(q.Blocks, toBlock(bc))
	}
	return q, nil
}

func toBlock(bc BlockConfig) domain.Block {
	b := domain.Block{
		ID:        bc.ID,
		Role:      domain.Role(bc.Role),
		Type:      domain.BlockType(bc.Type),
		Prompt:    bc.Prompt,
		Help:      bc.Help,
		MinSelect: bc.MinSelect,
		MaxSelect: bc.MaxSelect,
		ScaleMin:  bc.ScaleMin,
		ScaleMax:  bc.ScaleMax,
		Required:  bc.Required,
		Priority:  bc.Priority,
		Domain:    bc.Domain,
		Tags:      bc.Tags,
		Visible:   bc.Visible,
	}
	for _, oc := range bc.Options {
		b.Options = append(b.Options, domain.Option{ID: oc.ID, Label: oc.Label})
	}
	for _, sc := range bc.Scoring {
		b.Scoring = append(b.Scoring, domain.ScoringRule{
			Domain:   sc.Domain,
			Points:   sc.Points,
			ValueMap: sc.ValueMap,
			ScalePer: sc.ScalePer,
			When:     sc.When,
		})
	}
	for _, ac := range bc.Assigns {
		b.Assigns = append(b.Assigns, domain.AssignRule{Var: ac.Var, Value: ac.Value, When: ac.When})
	}
	return b
}

// LoadPacks reads and validates one content-pack file.
func LoadPacks(path string) (*domain.PackSet, error) {
	var schema PacksSchema
	if err := readJSON(path, &schema); err != nil {
		return nil, err
	}
	if errs := ValidatePacks(&schema); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	packs := &domain.PackSet{
		MinSentences: schema.MinSentences,
		MaxSentences: schema.MaxSentences,
		Roots:        map[domain.RootCategory][]string{},
		Openings:     schema.Openings,
		Themes:       schema.Themes,
		Postures:     schema.Postures,
		Vecu:         schema.Vecu,
		Besoins:      schema.Besoins,
		Energy:       map[domain.EnergyLevel][]string{},
		Variants:     map[domain.VariantKey][]string{},
		Closings:     schema.Closings,
	}
	for k, v := range schema.Roots {
		packs.Roots[domain.RootCategory(k)] = v
	}
	for k, v := range schema.Energy {
		packs.Energy[domain.EnergyLevel(k)] = v
	}
	for k, v := range schema.Variants {
		packs.Variants[domain.VariantKey(k)] = v
	}
	for _, cc := range schema.Combos {
		packs.Combos = append(packs.Combos, domain.ComboEntry{
			Key: domain.NewComboKey(
				domain.FacetKind(cc.LeftKind), cc.Left,
				domain.FacetKind(cc.RightKind), cc.Right,
			),
			Weight: cc.Weight,
			Lines:  cc.Lines,
		})
	}
	return packs, nil
}

// LoadModules reads and validates one module-library file.
func LoadModules(path string) ([]domain.Module, error) {
	var schema ModulesSchema
	if err := readJSON(path, &schema); err != nil {
		return nil, err
	}
	if errs := ValidateModules(&schema); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var modules []domain.Module
	for _, mc := range schema.Modules {
		modules = append(modules, domain.Module{
			ID:           mc.ID,
			Title:        mc.Title,
			Minutes:      mc.Minutes,
			Instructions: mc.Instructions,
			Tags:         mc.Tags,
			Domain:       mc.Domain,
			Weight:       mc.Weight,
		})
	}
	return modules, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// FindDir resolves the content directory: $SEREIN_CONTENT, then ./content
// (development), then ~/.serein/content.
func FindDir() (string, error) {
	if dir := os.Getenv("SEREIN_CONTENT"); dir != "" {
		return dir, nil
	}
	if stat, err := os.Stat("./content"); err == nil && stat.IsDir() {
		return "./content", nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".serein", "content"), nil
}
