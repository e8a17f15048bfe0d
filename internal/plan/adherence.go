// Package plan turns domain scores into a labeled diagnostic and an
// adherence-aware 7-day module schedule.
package plan

import (
	"time"

	"github.com/claraval/serein/internal/domain"
)

// adherenceWindowDays is the number of recent calendar days considered.
const adherenceWindowDays = 14

// defaultAdherence is the "no data yet" fallback, deliberately distinct from
// 0: an empty history is not evidence of non-adherence.
const defaultAdherence = 0.5

// Adherence computes the done-fraction over the most recent 14 calendar days
// and the streak of consecutive done days counting backward from today.
// Duplicate records for a day keep the latest done flag.
func Adherence(checkins []domain.CheckIn, now time.Time) (float64, int) {
	byDate := make(map[string]bool, len(checkins))
	for _, c := range checkins {
		if c.Day().IsZero() {
			continue // malformed entries are treated as absent
		}
		byDate[c.Date] = c.Done
	}
	if len(byDate) == 0 {
		return defaultAdherence, 0
	}

	today := now.UTC().Truncate(24 * time.Hour)
	done := 0
	inWindow := 0
	for i := 0; i < adherenceWindowDays; i++ {
		key := today.AddDate(0, 0, -i).Format(domain.DateLayout)
		if d, ok := byDate[key]; ok {
			inWindow++
			if d {
				done++
			}
		}
	}
	if inWindow == 0 {
		return defaultAdherence, 0
	}
	adherence := float64(done) / float64(adherenceWindowDays)

	streak := 0
	for i := 0; ; i++ {
		key := today.AddDate(0, 0, -i).Format(domain.DateLayout)
		if !byDate[key] {
			break
		}
		streak++
	}
	return adherence, streak
}

// Intensity maps energy and adherence to the daily module quota.
func Intensity(p domain.Profile, adherence float64) int {
	switch {
	case p.LowEnergy || adherence < 0.35:
		return 1
	case adherence < 0.7:
		return 2
	default:
		return 3
	}
}
