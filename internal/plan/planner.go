package plan

import (
	"sort"
	"strconv"
	"time"

	"github.com/claraval/serein/internal/domain"
	"github.com/claraval/serein/internal/selection"
)

// maxPlanDomains is how many top-ranked domains feed the daily quota.
const maxPlanDomains = 5

// lowEnergyMaxMinutes filters domain pools when energy is low.
const lowEnergyMaxMinutes = 6

type Options struct {
	Now time.Time // defaults to time.Now().UTC()
}

// Build generates the 7-day, 3-slot schedule. Modules are never repeated
// across the whole plan unless the library is smaller than the schedule.
func Build(p domain.Profile, library []domain.Module, checkins []domain.CheckIn, opts Options) domain.Plan {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	adherence, streak := Adherence(checkins, now)
	intensity := Intensity(p, adherence)
	result := domain.Plan{
		Intensity: intensity,
		Adherence: adherence,
		Streak:    streak,
	}
	if len(library) == 0 {
		return result
	}

	var topDomains []string
	for _, d := range RankDomains(p.Scores, maxPlanDomains) {
		topDomains = append(topDomains, d.Domain)
	}

	used := map[string]bool{}
	for day := 1; day <= domain.PlanDays; day++ {
		daily := dailyQuota(p, library, topDomains, intensity, used, day)

		planDay := domain.PlanDay{Day: day}
		for slot := 1; slot <= domain.PlanSlots; slot++ {
			m, ok := takeSlot(&daily, library, used, slot)
			if !ok {
				// Entire library consumed: completeness outranks novelty,
				// fall back to the full pool.
				m, ok = shortest(library, nil)
				if !ok {
					continue
				}
			}
			used[m.ID] = true
			planDay.Slots = append(planDay.Slots, domain.PlanSlot{
				Day:      day,
				Slot:     slot,
				ModuleID: m.ID,
				Title:    m.Title,
				Minutes:  m.Minutes,
			})
		}
		result.Days = append(result.Days, planDay)

		// Quota picks that found no slot return to the pool.
		for _, m := range daily {
			delete(used, m.ID)
		}
	}
	return result
}

// dailyQuota picks up to intensity modules for one day via weighted draws
// over the top domains' pools, falling back to the universal core pool when
// a domain has no qualifying module. Picked modules are reserved in used.
func dailyQuota(p domain.Profile, library []domain.Module, topDomains []string, intensity int, used map[string]bool, day int) []domain.Module {
	var picks []domain.Module
	if len(topDomains) == 0 {
		topDomains = []string{domain.CoreDomain}
	}

	for it := 0; len(picks) < intensity && it < intensity*len(topDomains); it++ {
		name := topDomains[it%len(topDomains)]
		pool := eligible(library, name, p, used)
		if len(pool) == 0 {
			pool = eligible(library, domain.CoreDomain, p, used)
		}
		if len(pool) == 0 {
			continue
		}

		weights := make([]int, len(pool))
		for i, m := range pool {
			weights[i] = m.Weight
		}
		seed := selection.Hash32("plan", name, strconv.Itoa(day), strconv.Itoa(it))
		idx := selection.PickWeighted(weights, seed)
		picks = append(picks, pool[idx])
		used[pool[idx].ID] = true
	}
	return picks
}

// eligible filters a domain's pool to unused modules, respecting the
// low-energy duration cap.
func eligible(library []domain.Module, name string, p domain.Profile, used map[string]bool) []domain.Module {
	var pool []domain.Module
	for _, m := range library {
		if m.Domain != name || used[m.ID] {
			continue
		}
		if p.LowEnergy && m.Minutes > lowEnergyMaxMinutes {
			continue
		}
		pool = append(pool, m)
	}
	return pool
}

// takeSlot applies the per-slot role preference: a stabilizer
// (breathing/body) module for slot 1, something of at least 4 minutes for
// slot 2, a short or micro module for slot 3. Daily quota picks are
// preferred; otherwise any unused role-matched module; otherwise the
// shortest remaining unused module.
func takeSlot(daily *[]domain.Module, library []domain.Module, used map[string]bool, slot int) (domain.Module, bool) {
	match := slotPreference(slot)

	for i, m := range *daily {
		if match(m) {
			*daily = append((*daily)[:i], (*daily)[i+1:]...)
			return m, true
		}
	}

	unused := remaining(library, used)
	for _, m := range unused {
		if match(m) {
			return m, true
		}
	}

	if len(*daily) > 0 {
		m := (*daily)[0]
		*daily = (*daily)[1:]
		return m, true
	}
	return shortest(library, used)
}

func slotPreference(slot int) func(domain.Module) bool {
	switch slot {
	case 1:
		return func(m domain.Module) bool {
			return m.HasTag("respiration") || m.HasTag("corps") || m.HasTag("stabilisateur")
		}
	case 2:
		return func(m domain.Module) bool { return m.Minutes >= 4 }
	default:
		return func(m domain.Module) bool { return m.Minutes <= 3 || m.HasTag("micro") }
	}
}

// remaining returns unused modules sorted by duration then id, so the
// role-preference and shortest-module fallbacks are deterministic.
func remaining(library []domain.Module, used map[string]bool) []domain.Module {
	var out []domain.Module
	for _, m := range library {
		if used == nil || !used[m.ID] {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes < out[j].Minutes
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func shortest(library []domain.Module, used map[string]bool) (domain.Module, bool) {
	pool := remaining(library, used)
	if len(pool) == 0 {
		return domain.Module{}, false
	}
	return pool[0], true
}
