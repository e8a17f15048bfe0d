package service

import (
	"context"
	"fmt"
	"time"

	"github.com/claraval/serein/internal/domain"
	"github.com/claraval/serein/internal/repository"
)

type checkInService struct {
	checkins repository.CheckInRepo
	now      func() time.Time
}

func NewCheckInService(checkins repository.CheckInRepo) CheckInService {
	return &checkInService{
		checkins: checkins,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *checkInService) Log(ctx context.Context, date string, done bool, note string) error {
	if date == "" {
		date = s.now().Format(domain.DateLayout)
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return s.checkins.Upsert(ctx, &domain.CheckIn{
		Date:      date,
		Done:      done,
		Note:      note,
		CreatedAt: s.now(),
	})
}

func (s *checkInService) History(ctx context.Context, days int) ([]domain.CheckIn, error) {
	if days <= 0 {
		return s.checkins.List(ctx)
	}
	return s.checkins.ListRecent(ctx, days)
}
