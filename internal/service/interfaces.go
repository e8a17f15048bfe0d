package service

import (
	"context"

	"github.com/claraval/serein/internal/contract"
	"github.com/claraval/serein/internal/domain"
)

// ResultService freezes a completed questionnaire into a stored session:
// profile, four scenario variants, diagnostic and plan.
type ResultService interface {
	BuildResult(ctx context.Context, answers domain.AnswerSet, shown []string) (*contract.Result, error)
}

type SessionService interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Latest(ctx context.Context) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type CheckInService interface {
	Log(ctx context.Context, date string, done bool, note string) error
	History(ctx context.Context, days int) ([]domain.CheckIn, error)
}

// PlanService rebuilds the 7-day plan for the latest stored session using
// current check-in adherence.
type PlanService interface {
	Rebuild(ctx context.Context) (*domain.Plan, error)
}
