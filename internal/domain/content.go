package domain

import "strings"

// FacetKind identifies which profile dimension a combo key side refers to.
type FacetKind string

const (
	FacetTone    FacetKind = "tone"
	FacetTheme   FacetKind = "theme"
	FacetEnergy  FacetKind = "energy"
	FacetPosture FacetKind = "posture"
	FacetVecu    FacetKind = "vecu"
	FacetBesoin  FacetKind = "besoin"
)

// ComboKey is a typed composite key for content that applies when two profile
// facets co-occur. The pair is ordered: posture+theme and theme+posture are
// distinct keys.
type ComboKey struct {
	LeftKind  FacetKind
	Left      string
	RightKind FacetKind
	Right     string
}

// NewComboKey builds a normalized combo key (values lowercased and trimmed).
func NewComboKey(lk FacetKind, left string, rk FacetKind, right string) ComboKey {
	return ComboKey{
		LeftKind:  lk,
		Left:      strings.ToLower(strings.TrimSpace(left)),
		RightKind: rk,
		Right:     strings.ToLower(strings.TrimSpace(right)),
	}
}

func (k ComboKey) String() string {
	return string(k.LeftKind) + ":" + k.Left + "+" + string(k.RightKind) + ":" + k.Right
}

// ComboEntry is one cross-cutting content pool with a ranking weight.
type ComboEntry struct {
	Key    ComboKey
	Weight int
	Lines  []string
}

// PackSet holds every content pool the scenario composer draws from.
// Every pool except Closings is optional; a missing key simply omits that
// segment of the scenario.
type PackSet struct {
	Roots    map[RootCategory][]string
	Openings map[string][]string // keyed by dominant tone
	Themes   map[string][]string
	Postures map[string][]string
	Vecu     map[string][]string
	Besoins  map[string][]string
	Energy   map[EnergyLevel][]string
	Variants map[VariantKey][]string
	Closings []string
	Combos   []ComboEntry

	MinSentences int
	MaxSentences int
}

// Combo looks up the entry for a combo key.
func (p *PackSet) Combo(key ComboKey) (ComboEntry, bool) {
	for _, e := range p.Combos {
		if e.Key == key {
			return e, true
		}
	}
	return ComboEntry{}, false
}
