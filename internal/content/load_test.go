package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/claraval/serein/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_ShippedContent loads the content directory that ships with the
// binary and checks the pieces the engine depends on.
func TestLoad_ShippedContent(t *testing.T) {
	store, err := Load(filepath.Join("..", "..", "content"))
	require.NoError(t, err)

	q := store.Questionnaire
	require.NotNil(t, q)
	assert.NotEmpty(t, q.ID)
	assert.NotEmpty(t, q.Blocks)
	require.NotEmpty(t, q.Start)
	assert.NotNil(t, q.BlockByID(q.Start))
	require.NotEmpty(t, q.SafetyBlock)
	assert.NotNil(t, q.BlockByID(q.SafetyBlock))

	packs := store.Packs
	require.NotNil(t, packs)
	assert.NotEmpty(t, packs.Closings)
	for _, root := range []domain.RootCategory{
		domain.RootSortie, domain.RootFatigue, domain.RootFlou,
		domain.RootProtection, domain.RootEffort, domain.RootClarification,
	} {
		assert.NotEmpty(t, packs.Roots[root], "missing root pool %s", root)
	}
	for _, v := range domain.Variants {
		assert.GreaterOrEqual(t, len(packs.Variants[v]), 2, "variant pool %s needs two signature lines", v)
	}
	for _, e := range []domain.EnergyLevel{domain.EnergyLow, domain.EnergyMedium, domain.EnergyHigh} {
		assert.NotEmpty(t, packs.Energy[e])
	}

	require.NotEmpty(t, store.Modules)
	hasCore := false
	for _, m := range store.Modules {
		if m.IsCore() {
			hasCore = true
		}
		assert.Positive(t, m.Minutes)
	}
	assert.True(t, hasCore, "module library needs a core fallback pool")
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadQuestionnaire_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questionnaire.json")
	require.NoError(t, os.WriteFile(path, []byte("{pas du json"), 0o644))

	_, err := LoadQuestionnaire(path)
	assert.Error(t, err)
}

func TestValidateQuestionnaire_CollectsAllErrors(t *testing.T) {
	schema := &QuestionnaireSchema{
		Start:       "inconnu",
		SafetyBlock: "inconnu",
		BaseOrder:   []string{"inconnu"},
		Blocks: []BlockConfig{
			{ID: "a", Type: "single_choice", Prompt: "Q ?"}, // no options
			{ID: "a", Type: "mystere", Prompt: ""},          // dup id, bad type, no prompt
			{ID: "b", Type: "scale", Prompt: "Q ?", ScaleMin: 5, ScaleMax: 5},
		},
	}

	errs := ValidateQuestionnaire(schema)
	assert.GreaterOrEqual(t, len(errs), 6)
}

func TestValidateQuestionnaire_AcceptsMinimalValidSchema(t *testing.T) {
	schema := &QuestionnaireSchema{
		ID: "q",
		Blocks: []BlockConfig{
			{ID: "a", Type: "free_text", Prompt: "Quelque chose à poser ?"},
		},
	}
	assert.Empty(t, ValidateQuestionnaire(schema))
}

func TestValidatePacks_RequiresClosings(t *testing.T) {
	errs := ValidatePacks(&PacksSchema{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "closings")
}

func TestValidatePacks_ComboKeysComplete(t *testing.T) {
	schema := &PacksSchema{
		Closings: []string{"Fin."},
		Combos: []ComboConfig{
			{LeftKind: "theme", Left: "travail", RightKind: "theme", Right: ""},
		},
	}

	errs := ValidatePacks(schema)
	assert.Len(t, errs, 2, "missing key side and missing lines")
}

func TestValidatePacks_SentenceBounds(t *testing.T) {
	schema := &PacksSchema{
		Closings:     []string{"Fin."},
		MinSentences: 10,
		MaxSentences: 4,
	}
	assert.NotEmpty(t, ValidatePacks(schema))
}

func TestValidateModules_RejectsBadEntries(t *testing.T) {
	schema := &ModulesSchema{
		Modules: []ModuleConfig{
			{ID: "a", Title: "A", Minutes: 5, Domain: "core"},
			{ID: "a", Title: "", Minutes: 0, Domain: ""},
		},
	}

	errs := ValidateModules(schema)
	assert.Len(t, errs, 4)
}

func TestLoadPacks_BuildsTypedComboKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "packs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"closings": ["Fin."],
		"combos": [
			{"left_kind": "posture", "left": " Fatigue ", "right_kind": "theme", "right": "Travail", "weight": 3, "lines": ["L."]}
		]
	}`), 0o644))

	packs, err := LoadPacks(path)
	require.NoError(t, err)

	entry, ok := packs.Combo(domain.NewComboKey(domain.FacetPosture, "fatigue", domain.FacetTheme, "travail"))
	require.True(t, ok, "key sides must be normalized on load")
	assert.Equal(t, 3, entry.Weight)
}

func TestFindDir_EnvOverrideWins(t *testing.T) {
	t.Setenv("SEREIN_CONTENT", "/tmp/contenu")

	dir, err := FindDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/contenu", dir)
}
