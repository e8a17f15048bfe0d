package content

import (
	"fmt"

	"github.com/claraval/serein/internal/domain"
)

// ValidateQuestionnaire checks a questionnaire schema for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateQuestionnaire(schema *QuestionnaireSchema) []error {
	var errs []error

	if schema.ID == "" {
		errs = append(errs, fmt.Errorf("questionnaire id is required"))
	}
	if len(schema.Blocks) == 0 {
		errs = append(errs, fmt.Errorf("at least one block is required"))
	}

	blockIDs := map[string]bool{}
	for i, b := range schema.Blocks {
		if b.ID == "" {
			errs = append(errs, fmt.Errorf("block[%d]: id is required", i))
		}
		if b.Prompt == "" {
			errs = append(errs, fmt.Errorf("block[%d]: prompt is required", i))
		}
		if !domain.ValidBlockTypes[b.Type] {
			errs = append(errs, fmt.Errorf("block[%d]: unknown type %q", i, b.Type))
		}
		if b.Role != "" && !domain.ValidRoles[b.Role] {
			errs = append(errs, fmt.Errorf("block[%d]: unknown role %q", i, b.Role))
		}
		if blockIDs[b.ID] {
			errs = append(errs, fmt.Errorf("block[%d]: duplicate id %q", i, b.ID))
		}
		blockIDs[b.ID] = true

		switch domain.BlockType(b.Type) {
		case domain.BlockSingleChoice, domain.BlockMultiChoice:
			if len(b.Options) == 0 {
				errs = append(errs, fmt.Errorf("block[%d]: choice block needs options", i))
			}
		case domain.BlockScale:
			if b.ScaleMax <= b.ScaleMin {
				errs = append(errs, fmt.Errorf("block[%d]: scale_max must exceed scale_min", i))
			}
		}
		if b.MinSelect > 0 && b.MaxSelect > 0 && b.MinSelect > b.MaxSelect {
			errs = append(errs, fmt.Errorf("block[%d]: min_select exceeds max_select", i))
		}

		optionIDs := map[string]bool{}
		for j, o := range b.Options {
			if o.ID == "" {
				errs = append(errs, fmt.Errorf("block[%d].option[%d]: id is required", i, j))
			}
			if optionIDs[o.ID] {
				errs = append(errs, fmt.Errorf("block[%d].option[%d]: duplicate id %q", i, j, o.ID))
			}
			optionIDs[o.ID] = true
		}
		for j, s := range b.Scoring {
			if s.Domain == "" {
				errs = append(errs, fmt.Errorf("block[%d].scoring[%d]: domain is required", i, j))
			}
		}
	}

	if schema.Start != "" && !blockIDs[schema.Start] {
		errs = append(errs, fmt.Errorf("start block %q does not exist", schema.Start))
	}
	if schema.SafetyBlock != "" && !blockIDs[schema.SafetyBlock] {
		errs = append(errs, fmt.Errorf("safety block %q does not exist", schema.SafetyBlock))
	}
	for i, id := range schema.BaseOrder {
		if !blockIDs[id] {
			errs = append(errs, fmt.Errorf("base_order[%d]: block %q does not exist", i, id))
		}
	}
	return errs
}

// ValidatePacks checks a content-pack schema. The closings pool is the only
// mandatory pool: every other composition step may be omitted, but padding
// to the minimum sentence count needs closings.
func ValidatePacks(schema *PacksSchema) []error {
	var errs []error

	if len(schema.Closings) == 0 {
		errs = append(errs, fmt.Errorf("closings pool is required"))
	}
	if schema.MinSentences < 0 || schema.MaxSentences < 0 {
		errs = append(errs, fmt.Errorf("sentence bounds must not be negative"))
	}
	if schema.MinSentences > 0 && schema.MaxSentences > 0 && schema.MinSentences > schema.MaxSentences {
		errs = append(errs, fmt.Errorf("min_sentences exceeds max_sentences"))
	}

	for i, c := range schema.Combos {
		if c.Left == "" || c.Right == "" || c.LeftKind == "" || c.RightKind == "" {
			errs = append(errs, fmt.Errorf("combo[%d]: both key sides are required", i))
		}
		if len(c.Lines) == 0 {
			errs = append(errs, fmt.Errorf("combo[%d]: at least one line is required", i))
		}
	}
	return errs
}

// ValidateModules checks a module-library schema.
func ValidateModules(schema *ModulesSchema) []error {
	var errs []error

	if len(schema.Modules) == 0 {
		errs = append(errs, fmt.Errorf("at least one module is required"))
	}
	ids := map[string]bool{}
	for i, m := range schema.Modules {
		if m.ID == "" {
			errs = append(errs, fmt.Errorf("module[%d]: id is required", i))
		}
		if m.Title == "" {
			errs = append(errs, fmt.Errorf("module[%d]: title is required", i))
		}
		if m.Minutes <= 0 {
			errs = append(errs, fmt.Errorf("module[%d]: minutes must be positive", i))
		}
		if m.Domain == "" {
			errs = append(errs, fmt.Errorf("module[%d]: domain is required", i))
		}
		if ids[m.ID] {
			errs = append(errs, fmt.Errorf("module[%d]: duplicate id %q", i, m.ID))
		}
		ids[m.ID] = true
	}
	return errs
}
