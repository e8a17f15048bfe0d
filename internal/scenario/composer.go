// Package scenario assembles the narrative text shown after a completed
// questionnaire. Composition is deterministic: the same profile and variant
// key always produce byte-identical output, while the four variant keys
// produce texturally distinct renderings of the same profile.
package scenario

import (
	"strings"

	"github.com/claraval/serein/internal/domain"
	"github.com/claraval/serein/internal/selection"
)

// Default sentence bounds, used when the pack set does not override them.
const (
	defaultMinSentences = 6
	defaultMaxSentences = 12
)

// lineCat tags each composed line with its origin, which drives the
// overflow-avoidance removal order.
type lineCat int

const (
	catRoot lineCat = iota
	catOpening
	catCombo
	catComboSecondary
	catTheme
	catContext
	catNormalization
	catVariant
	catClosing
)

type line struct {
	text string
	cat  lineCat
}

type Composer struct {
	packs *domain.PackSet
}

func NewComposer(packs *domain.PackSet) *Composer {
	return &Composer{packs: packs}
}

// Compose builds the scenario text for a profile and variant key. Every step
// is optional except the closing pool: a missing content-pack key silently
// omits that segment.
func (c *Composer) Compose(p domain.Profile, variant domain.VariantKey) string {
	seed := selection.Hash32(ProfileKey(p), string(variant))
	used := map[string]bool{}
	var lines []line

	// 1. Root-category lines.
	for _, t := range selection.PickUniqueMany(c.packs.Roots[p.Root], seed+1, used, 2) {
		lines = append(lines, line{t, catRoot})
	}

	// 2. Opening keyed by dominant tone; a single line when energy is low.
	openCount := 2
	if p.LowEnergy {
		openCount = 1
	}
	for _, t := range selection.PickUniqueMany(c.packs.Openings[p.Tone], seed+2, used, openCount) {
		lines = append(lines, line{t, catOpening})
	}

	// 3. Combo-pack injection, spliced roughly one third into the output.
	lines = c.injectCombos(lines, p, seed, used)

	// 4. Per-theme elaboration for each focus theme.
	themeCount := 2
	if p.LowEnergy || variant != domain.VariantMain {
		themeCount = 1
	}
	for _, theme := range p.Focus {
		themeSeed := seed + selection.Hash32("theme", theme)
		for _, t := range selection.PickUniqueMany(c.packs.Themes[theme], themeSeed, used, themeCount) {
			lines = append(lines, line{t, catTheme})
		}
	}

	// 5. Optional posture, vécu, needs and energy lines.
	lines = appendFirstMatch(lines, c.packs.Postures, p.Postures, seed+5, used, catContext)
	lines = appendFirstMatch(lines, c.packs.Vecu, p.Vecu, seed+6, used, catContext)
	lines = appendFirstMatch(lines, c.packs.Besoins, p.Besoins, seed+7, used, catContext)
	if t, ok := selection.PickUnique(c.packs.Energy[p.Energy], seed+8, used); ok {
		lines = append(lines, line{t, catNormalization})
	}

	// 6. Variant signature at a variant-specific insertion point.
	lines = c.insertVariantSignature(lines, variant, seed, used)

	// 7. Closing line.
	if t, ok := selection.PickUnique(c.packs.Closings, seed+9, used); ok {
		lines = append(lines, line{t, catClosing})
	}

	lines = c.clamp(lines, used)

	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.text
	}
	return strings.Join(parts, "\n\n")
}

// injectCombos looks up every applicable combo key, ranks the hits by weight
// and splices one unique line (two when the many-things flag is set) at the
// one-third position.
func (c *Composer) injectCombos(lines []line, p domain.Profile, seed uint32, used map[string]bool) []line {
	entries := c.comboEntries(p)
	if len(entries) == 0 {
		return lines
	}

	want := 1
	if p.ManyThings {
		want = 2
	}

	var picked []line
	for i, e := range entries {
		if len(picked) >= want {
			break
		}
		t, ok := selection.PickUnique(e.Lines, seed+3+uint32(i), used)
		if !ok {
			continue
		}
		cat := catCombo
		if len(picked) > 0 {
			cat = catComboSecondary
		}
		picked = append(picked, line{t, cat})
	}
	if len(picked) == 0 {
		return lines
	}

	at := len(lines) / 3
	out := make([]line, 0, len(lines)+len(picked))
	out = append(out, lines[:at]...)
	out = append(out, picked...)
	out = append(out, lines[at:]...)
	return out
}

// comboEntries computes all applicable combo keys for the profile,
// deduplicates by key and ranks by weight descending (key string as
// tie-break to keep ranking deterministic).
func (c *Composer) comboEntries(p domain.Profile) []domain.ComboEntry {
	var keys []domain.ComboKey

	for i := 0; i < len(p.Themes); i++ {
		for j := i + 1; j < len(p.Themes); j++ {
			keys = append(keys, domain.NewComboKey(domain.FacetTheme, p.Themes[i], domain.FacetTheme, p.Themes[j]))
		}
	}
	for _, t := range p.Focus {
		if p.Tone != "" {
			keys = append(keys, domain.NewComboKey(domain.FacetTone, p.Tone, domain.FacetTheme, t))
		}
	}
	if focus := p.FocusTheme(); focus != "" {
		if p.Energy != "" {
			keys = append(keys, domain.NewComboKey(domain.FacetEnergy, string(p.Energy), domain.FacetTheme, focus))
		}
		for _, posture := range p.Postures {
			keys = append(keys, domain.NewComboKey(domain.FacetPosture, posture, domain.FacetTheme, focus))
		}
		for _, v := range p.Vecu {
			keys = append(keys, domain.NewComboKey(domain.FacetVecu, v, domain.FacetTheme, focus))
		}
		for _, b := range p.Besoins {
			keys = append(keys, domain.NewComboKey(domain.FacetBesoin, b, domain.FacetTheme, focus))
		}
	}
	for _, posture := range p.Postures {
		for _, v := range p.Vecu {
			keys = append(keys, domain.NewComboKey(domain.FacetPosture, posture, domain.FacetVecu, v))
		}
	}
	if p.ManyThings {
		for _, t := range p.Focus {
			if t != "plusieurs" {
				keys = append(keys, domain.NewComboKey(domain.FacetTheme, "plusieurs", domain.FacetTheme, t))
				break
			}
		}
	}

	seen := map[domain.ComboKey]bool{}
	var entries []domain.ComboEntry
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		if e, ok := c.packs.Combo(k); ok {
			entries = append(entries, e)
		}
	}

	// Highest weight first; stable key order breaks ties.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0; j-- {
			a, b := entries[j-1], entries[j]
			if b.Weight > a.Weight || (b.Weight == a.Weight && b.Key.String() < a.Key.String()) {
				entries[j-1], entries[j] = b, a
			} else {
				break
			}
		}
	}
	return entries
}

// insertVariantSignature adds the two variant-specific lines at an insertion
// point that differs per variant, guaranteeing the four outputs stay
// distinguishable for the same profile.
func (c *Composer) insertVariantSignature(lines []line, variant domain.VariantKey, seed uint32, used map[string]bool) []line {
	picks := selection.PickUniqueMany(c.packs.Variants[variant], seed+4, used, 2)
	if len(picks) == 0 {
		return lines
	}

	var at int
	switch variant {
	case domain.VariantStep:
		at = 1
	case domain.VariantCalm:
		at = len(lines) / 2
	case domain.VariantNorm:
		at = len(lines) * 2 / 3
	default: // main
		at = len(lines) - 1
	}
	if at < 0 {
		at = 0
	}
	if at > len(lines) {
		at = len(lines)
	}

	sig := make([]line, len(picks))
	for i, t := range picks {
		sig[i] = line{t, catVariant}
	}
	out := make([]line, 0, len(lines)+len(sig))
	out = append(out, lines[:at]...)
	out = append(out, sig...)
	out = append(out, lines[at:]...)
	return out
}

// clamp enforces the [min, max] sentence bounds. Overflow removes lines in
// priority order (normalization, then context, then combo-secondary) before
// truncating; underflow pads from the closings pool, skipping used text.
func (c *Composer) clamp(lines []line, used map[string]bool) []line {
	minS, maxS := c.bounds()

	for _, cat := range []lineCat{catNormalization, catContext, catComboSecondary} {
		for len(lines) > maxS {
			idx := -1
			for i, l := range lines {
				if l.cat == cat {
					idx = i
					break
				}
			}
			if idx < 0 {
				break
			}
			lines = append(lines[:idx], lines[idx+1:]...)
		}
	}
	if len(lines) > maxS {
		lines = lines[:maxS]
	}

	for len(lines) < minS {
		t, ok := selection.PickUnique(c.packs.Closings, uint32(len(lines))*7, used)
		if !ok {
			break
		}
		lines = append(lines, line{t, catClosing})
	}
	return lines
}

func (c *Composer) bounds() (int, int) {
	minS, maxS := c.packs.MinSentences, c.packs.MaxSentences
	if minS <= 0 {
		minS = defaultMinSentences
	}
	if maxS < minS {
		maxS = defaultMaxSentences
	}
	return minS, maxS
}

func appendFirstMatch(lines []line, pools map[string][]string, values []string, seed uint32, used map[string]bool, cat lineCat) []line {
	for _, v := range values {
		pool := pools[v]
		if len(pool) == 0 {
			continue
		}
		if t, ok := selection.PickUnique(pool, seed, used); ok {
			return append(lines, line{t, cat})
		}
	}
	return lines
}
