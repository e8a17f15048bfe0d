package repository

import (
	"context"
	"testing"
	"time"

	"github.com/claraval/serein/internal/domain"
	"github.com/claraval/serein/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(id string, completed time.Time) *domain.Session {
	return &domain.Session{
		ID:          id,
		CompletedAt: completed,
		Answers: domain.AnswerSet{
			"accueil": {BlockID: "accueil", OptionIDs: []string{"charge"}, Labels: []string{"Sous pression"}},
			"themes":  {BlockID: "themes", OptionIDs: []string{"travail", "finances"}},
		},
		Shown: []string{"accueil", "themes"},
		Profile: domain.Profile{
			Tone:   "charge",
			Themes: []string{"travail", "finances"},
			Focus:  []string{"travail", "finances"},
			Energy: domain.EnergyMedium,
			Root:   domain.RootClarification,
			Scores: map[string]int{"charge": 64},
		},
		Scenarios: map[domain.VariantKey]string{
			domain.VariantMain: "Texte principal.",
			domain.VariantCalm: "Texte apaisé.",
		},
		Diagnostic: domain.Diagnostic{
			Headline: "Le domaine le plus chargé aujourd'hui : charge.",
			Severity: domain.SeverityModerate,
		},
		Plan: domain.Plan{
			Intensity: 2,
			Adherence: 0.5,
			Days: []domain.PlanDay{
				{Day: 1, Slots: []domain.PlanSlot{{Day: 1, Slot: 1, ModuleID: "resp-478", Title: "Respiration", Minutes: 3}}},
			},
		},
	}
}

func TestSQLiteSessionRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	completed := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, testSession("s-1", completed)))

	got, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "s-1", got.ID)
	assert.True(t, got.CompletedAt.Equal(completed))
	assert.Equal(t, []string{"travail", "finances"}, got.Answers["themes"].OptionIDs)
	assert.Equal(t, []string{"Sous pression"}, got.Answers["accueil"].Labels)
	assert.Equal(t, domain.RootClarification, got.Profile.Root)
	assert.Equal(t, 64, got.Profile.Scores["charge"])
	assert.Equal(t, "Texte apaisé.", got.Scenarios[domain.VariantCalm])
	assert.Equal(t, domain.SeverityModerate, got.Diagnostic.Severity)
	require.Len(t, got.Plan.Days, 1)
	assert.Equal(t, "resp-478", got.Plan.Days[0].Slots[0].ModuleID)
}

func TestSQLiteSessionRepo_GetByIDNotFound(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "absente")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteSessionRepo_LatestPicksMostRecent(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession("vieille", time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))))
	require.NoError(t, repo.Create(ctx, testSession("recente", time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "recente", got.ID)
}

func TestSQLiteSessionRepo_LatestOnEmptyDB(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))

	_, err := repo.Latest(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteSessionRepo_ListOrdersNewestFirst(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession("a", time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))))
	require.NoError(t, repo.Create(ctx, testSession("b", time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC))))
	require.NoError(t, repo.Create(ctx, testSession("c", time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))))

	sessions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "c", sessions[0].ID)
	assert.Equal(t, "a", sessions[2].ID)
}

func TestSQLiteSessionRepo_Delete(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession("s-1", time.Now().UTC())))
	require.NoError(t, repo.Delete(ctx, "s-1"))

	_, err := repo.GetByID(ctx, "s-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing session is not an error.
	assert.NoError(t, repo.Delete(ctx, "absente"))
}

func TestSQLiteSessionRepo_MalformedJSONDecodesToZeroValues(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO sessions
		(id, completed_at, answers_json, shown_json, profile_json, scenarios_json, diagnostic_json, plan_json)
		VALUES ('cassee', '2026-09-01T10:00:00Z', '{invalid', 'xx', '[]', '', 'nope', '{}')`)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "cassee")
	require.NoError(t, err, "stored garbage must never break the read path")
	assert.Empty(t, got.Answers)
	assert.Empty(t, got.Shown)
	assert.Equal(t, domain.Profile{}, got.Profile)
}
