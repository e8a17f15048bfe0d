package selection

import "strings"

// maxProbes bounds the number of deterministic candidate offsets tried by
// PickUnique before falling back to a linear scan.
const maxProbes = 14

var quoteReplacer = strings.NewReplacer(
	"’", "'", "‘", "'",
	"“", `"`, "”", `"`,
)

// Normalize lowercases text, collapses whitespace runs and normalizes curly
// quotes, so that near-identical lines dedupe against each other.
func Normalize(s string) string {
	s = strings.ToLower(quoteReplacer.Replace(s))
	return strings.Join(strings.Fields(s), " ")
}

// PickUnique deterministically selects one entry from pool whose normalized
// text is not already in used. It probes up to min(14, len(pool)) offsets
// derived from the seed, then falls back to a linear scan. Returns false only
// when the entire pool is already used. The chosen entry is recorded in used.
func PickUnique(pool []string, seed uint32, used map[string]bool) (string, bool) {
	if len(pool) == 0 {
		return "", false
	}

	probes := len(pool)
	if probes > maxProbes {
		probes = maxProbes
	}
	for k := 0; k < probes; k++ {
		idx := int((seed + uint32(k)*9) % uint32(len(pool)))
		if key := Normalize(pool[idx]); !used[key] {
			used[key] = true
			return pool[idx], true
		}
	}

	for _, candidate := range pool {
		if key := Normalize(candidate); !used[key] {
			used[key] = true
			return candidate, true
		}
	}
	return "", false
}

// PickUniqueMany selects up to n unique entries, varying the seed per pick so
// successive picks spread across the pool.
func PickUniqueMany(pool []string, seed uint32, used map[string]bool, n int) []string {
	var out []string
	for i := 0; i < n; i++ {
		line, ok := PickUnique(pool, seed+uint32(i)*17, used)
		if !ok {
			break
		}
		out = append(out, line)
	}
	return out
}

// PickWeighted draws one index proportional to the declared weights using the
// seed-derived generator. Weights below 1 count as 1 so that an all-zero pool
// still yields a uniform draw. Returns -1 for an empty pool.
func PickWeighted(weights []int, seed uint32) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0
	for _, w := range weights {
		if w < 1 {
			w = 1
		}
		total += w
	}

	target := NewRNG(seed).Float64() * float64(total)
	acc := 0.0
	for i, w := range weights {
		if w < 1 {
			w = 1
		}
		acc += float64(w)
		if target < acc {
			return i
		}
	}
	return len(weights) - 1
}
