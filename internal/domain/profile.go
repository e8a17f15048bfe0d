package domain

// Profile is the derived, read-only snapshot of a completed questionnaire.
// Created once by the profile builder and never mutated afterward.
type Profile struct {
	Tone     string
	Themes   []string
	Focus    []string // narrowed to at most two themes
	Postures []string
	Vecu     []string
	Besoins  []string
	Energy   EnergyLevel
	Root     RootCategory
	Scores   map[string]int // per-domain, 0-100

	LowEnergy  bool
	ManyThings bool
	Urgent     bool
}

// FocusTheme returns the first focus theme, or "".
func (p Profile) FocusTheme() string {
	if len(p.Focus) > 0 {
		return p.Focus[0]
	}
	return ""
}
