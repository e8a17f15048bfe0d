package service

import (
	"context"
	"testing"

	"github.com/claraval/serein/internal/content"
	"github.com/claraval/serein/internal/contract"
	"github.com/claraval/serein/internal/domain"
	"github.com/claraval/serein/internal/repository"
	"github.com/claraval/serein/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *content.Store {
	return &content.Store{
		Questionnaire: testutil.Questionnaire(),
		Packs:         testutil.Packs(),
		Modules:       testutil.Modules(),
	}
}

func testAnswers() domain.AnswerSet {
	return domain.AnswerSet{
		"accueil": {BlockID: "accueil", OptionIDs: []string{"charge"}, Labels: []string{"Sous pression, chargé·e"}},
		"themes":  {BlockID: "themes", OptionIDs: []string{"travail", "finances"}},
		"posture": {BlockID: "posture", OptionIDs: []string{"fatigue"}},
		"energie": {BlockID: "energie", OptionIDs: []string{"faible"}},
	}
}

func TestBuildResult_EndToEnd(t *testing.T) {
	db := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(db)
	checkins := repository.NewSQLiteCheckInRepo(db)
	svc := NewResultService(testStore(), sessions, checkins)
	ctx := context.Background()

	shown := []string{"accueil", "themes", "posture", "energie"}
	result, err := svc.BuildResult(ctx, testAnswers(), shown)
	require.NoError(t, err)

	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, domain.RootFatigue, result.Profile.Root)
	assert.Equal(t, []string{"travail", "finances"}, result.Profile.Focus)

	require.Len(t, result.Scenarios, 4)
	for _, v := range domain.Variants {
		assert.NotEmpty(t, result.Scenarios[v])
	}

	assert.Contains(t, result.Diagnostic.EnergyNote, "énergie est basse")
	assert.Equal(t, 1, result.Plan.Intensity, "low energy forces minimal intensity")
	require.Len(t, result.Plan.Days, domain.PlanDays)

	// The session is frozen in storage.
	stored, err := sessions.GetByID(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, result.Scenarios[domain.VariantMain], stored.Scenarios[domain.VariantMain])
	assert.Equal(t, shown, stored.Shown)
	assert.Equal(t, result.Profile.Root, stored.Profile.Root)
}

func TestBuildResult_EmptyAnswersRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewResultService(testStore(), repository.NewSQLiteSessionRepo(db), repository.NewSQLiteCheckInRepo(db))

	_, err := svc.BuildResult(context.Background(), domain.AnswerSet{}, nil)

	var rerr *contract.ResultError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, contract.ErrEmptyAnswers, rerr.Code)
}

func TestBuildResult_MissingContentRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewResultService(nil, repository.NewSQLiteSessionRepo(db), repository.NewSQLiteCheckInRepo(db))

	_, err := svc.BuildResult(context.Background(), testAnswers(), nil)

	var rerr *contract.ResultError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, contract.ErrNoContent, rerr.Code)
}

func TestBuildResult_UrgencyYieldsSafetyDiagnostic(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewResultService(testStore(), repository.NewSQLiteSessionRepo(db), repository.NewSQLiteCheckInRepo(db))

	answers := testAnswers()
	answers["securite"] = domain.Answer{BlockID: "securite", Text: "j'ai envie de me faire du mal"}

	result, err := svc.BuildResult(context.Background(), answers, nil)
	require.NoError(t, err)

	assert.True(t, result.Diagnostic.Urgent)
	assert.Contains(t, result.Diagnostic.Headline, "3114")
	assert.Empty(t, result.Diagnostic.Breakdown)
}

func TestBuildResult_TwoSessionsGetDistinctIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(db)
	svc := NewResultService(testStore(), sessions, repository.NewSQLiteCheckInRepo(db))
	ctx := context.Background()

	a, err := svc.BuildResult(ctx, testAnswers(), nil)
	require.NoError(t, err)
	b, err := svc.BuildResult(ctx, testAnswers(), nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.SessionID, b.SessionID)

	list, err := sessions.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
