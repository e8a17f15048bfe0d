package repository

import (
	"context"
	"errors"

	"github.com/claraval/serein/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Latest(ctx context.Context) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type CheckInRepo interface {
	Upsert(ctx context.Context, c *domain.CheckIn) error
	Get(ctx context.Context, date string) (*domain.CheckIn, error)
	ListRecent(ctx context.Context, days int) ([]domain.CheckIn, error)
	List(ctx context.Context) ([]domain.CheckIn, error)
}
