package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/claraval/serein/internal/content"
	"github.com/claraval/serein/internal/contract"
	"github.com/claraval/serein/internal/domain"
	"github.com/claraval/serein/internal/plan"
	"github.com/claraval/serein/internal/profile"
	"github.com/claraval/serein/internal/repository"
	"github.com/claraval/serein/internal/scenario"
)

type resultService struct {
	store    *content.Store
	sessions repository.SessionRepo
	checkins repository.CheckInRepo
	now      func() time.Time
}

func NewResultService(store *content.Store, sessions repository.SessionRepo, checkins repository.CheckInRepo) ResultService {
	return &resultService{
		store:    store,
		sessions: sessions,
		checkins: checkins,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *resultService) BuildResult(ctx context.Context, answers domain.AnswerSet, shown []string) (*contract.Result, error) {
	if s.store == nil || s.store.Questionnaire == nil || s.store.Packs == nil {
		return nil, &contract.ResultError{Code: contract.ErrNoContent, Message: "content packs are not loaded"}
	}
	if len(answers) == 0 {
		return nil, &contract.ResultError{Code: contract.ErrEmptyAnswers, Message: "no answers to build a result from"}
	}

	p := profile.Build(s.store.Questionnaire.Blocks, answers)

	composer := scenario.NewComposer(s.store.Packs)
	scenarios := make(map[domain.VariantKey]string, len(domain.Variants))
	for _, v := range domain.Variants {
		scenarios[v] = composer.Compose(p, v)
	}

	// Unreadable history reads as empty, never as a failure.
	checkins, err := s.checkins.List(ctx)
	if err != nil {
		checkins = nil
	}

	now := s.now()
	result := &contract.Result{
		SessionID:   uuid.New().String(),
		CompletedAt: now,
		Profile:     p,
		Scenarios:   scenarios,
		Diagnostic:  plan.BuildDiagnostic(p),
		Plan:        plan.Build(p, s.store.Modules, checkins, plan.Options{Now: now}),
	}

	session := &domain.Session{
		ID:          result.SessionID,
		CompletedAt: now,
		Answers:     answers.Clone(),
		Shown:       append([]string(nil), shown...),
		Profile:     p,
		Scenarios:   scenarios,
		Diagnostic:  result.Diagnostic,
		Plan:        result.Plan,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return result, nil
}
