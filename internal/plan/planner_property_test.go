package plan

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/claraval/serein/internal/domain"
	"github.com/stretchr/testify/assert"
)

// TestBuild_Invariants_ShapeAndUniqueness property-tests the scheduler over
// random libraries and profiles: fixed 7x3 shape, only known module ids, and
// no repetition while the eligible pool is large enough.
func TestBuild_Invariants_ShapeAndUniqueness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	domains := []string{"core", "charge", "travail", "finances", "famille", "sante"}
	tagSets := [][]string{nil, {"respiration"}, {"corps"}, {"stabilisateur"}, {"micro"}, {"micro", "respiration"}}
	energies := []domain.EnergyLevel{domain.EnergyLow, domain.EnergyMedium, domain.EnergyHigh}

	for trial := 0; trial < 200; trial++ {
		numModules := rng.Intn(40) + 1
		library := make([]domain.Module, numModules)
		for i := range library {
			library[i] = domain.Module{
				ID:      fmt.Sprintf("m-%03d", i),
				Title:   "Module",
				Minutes: rng.Intn(20) + 1,
				Tags:    tagSets[rng.Intn(len(tagSets))],
				Domain:  domains[rng.Intn(len(domains))],
				Weight:  rng.Intn(10),
			}
		}

		energy := energies[rng.Intn(len(energies))]
		p := domain.Profile{
			Energy:    energy,
			LowEnergy: energy == domain.EnergyLow,
			Scores:    map[string]int{},
		}
		for _, d := range domains[1:] {
			if rng.Intn(2) == 1 {
				p.Scores[d] = rng.Intn(101)
			}
		}

		var checkins []domain.CheckIn
		now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
		for i := 0; i < rng.Intn(20); i++ {
			checkins = append(checkins, domain.CheckIn{
				Date: now.AddDate(0, 0, -rng.Intn(20)).Format(domain.DateLayout),
				Done: rng.Intn(2) == 1,
			})
		}

		result := Build(p, library, checkins, Options{Now: now})

		assert.Len(t, result.Days, domain.PlanDays, "trial %d", trial)
		known := map[string]bool{}
		for _, m := range library {
			known[m.ID] = true
		}

		counts := map[string]int{}
		for _, d := range result.Days {
			assert.Len(t, d.Slots, domain.PlanSlots, "trial %d day %d", trial, d.Day)
			for _, s := range d.Slots {
				assert.True(t, known[s.ModuleID], "trial %d: unknown module %s", trial, s.ModuleID)
				assert.Positive(t, s.Minutes, "trial %d", trial)
				counts[s.ModuleID]++
			}
		}

		// Repetition is only allowed once the library is smaller than the
		// schedule.
		if numModules >= domain.PlanDays*domain.PlanSlots {
			for id, n := range counts {
				assert.Equal(t, 1, n, "trial %d: module %s scheduled %d times", trial, id, n)
			}
		}

		assert.GreaterOrEqual(t, result.Intensity, 1, "trial %d", trial)
		assert.LessOrEqual(t, result.Intensity, 3, "trial %d", trial)
	}
}

// TestBuild_Invariants_Deterministic re-runs the same random inputs and
// expects identical plans.
func TestBuild_Invariants_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	for trial := 0; trial < 50; trial++ {
		numModules := rng.Intn(25) + 1
		library := make([]domain.Module, numModules)
		for i := range library {
			library[i] = domain.Module{
				ID:      fmt.Sprintf("m-%03d", i),
				Title:   "Module",
				Minutes: rng.Intn(15) + 1,
				Domain:  "core",
				Weight:  rng.Intn(5),
			}
		}
		p := domain.Profile{
			Energy: domain.EnergyMedium,
			Scores: map[string]int{"charge": rng.Intn(101)},
		}

		a := Build(p, library, nil, Options{Now: now})
		b := Build(p, library, nil, Options{Now: now})
		assert.Equal(t, a, b, "trial %d", trial)
	}
}
