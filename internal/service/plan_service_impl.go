package service

import (
	"context"
	"errors"
	"time"

	"github.com/claraval/serein/internal/content"
	"github.com/claraval/serein/internal/contract"
	"github.com/claraval/serein/internal/domain"
	"github.com/claraval/serein/internal/plan"
	"github.com/claraval/serein/internal/repository"
)

type planService struct {
	store    *content.Store
	sessions repository.SessionRepo
	checkins repository.CheckInRepo
	now      func() time.Time
}

func NewPlanService(store *content.Store, sessions repository.SessionRepo, checkins repository.CheckInRepo) PlanService {
	return &planService{
		store:    store,
		sessions: sessions,
		checkins: checkins,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Rebuild regenerates the plan for the latest session's profile against the
// current check-in history, so adherence changes reshape the week.
func (s *planService) Rebuild(ctx context.Context) (*domain.Plan, error) {
	session, err := s.sessions.Latest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.ResultError{Code: contract.ErrNoSession, Message: "no completed session yet"}
		}
		return nil, err
	}

	checkins, err := s.checkins.List(ctx)
	if err != nil {
		checkins = nil
	}

	p := plan.Build(session.Profile, s.store.Modules, checkins, plan.Options{Now: s.now()})
	return &p, nil
}
