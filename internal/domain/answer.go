package domain

import "strconv"

// Answer holds the user's response to one block, retaining both raw option
// ids and resolved labels.
type Answer struct {
	BlockID   string
	OptionIDs []string
	Labels    []string
	Number    *float64
	Text      string
}

// IsEmpty reports whether the answer carries no value at all.
func (a Answer) IsEmpty() bool {
	return len(a.OptionIDs) == 0 && a.Number == nil && a.Text == ""
}

// First returns the first option id, or the free text, or the numeric value
// rendered as a string. Empty answers return "".
func (a Answer) First() string {
	if len(a.OptionIDs) > 0 {
		return a.OptionIDs[0]
	}
	if a.Text != "" {
		return a.Text
	}
	if a.Number != nil {
		return strconv.FormatFloat(*a.Number, 'f', -1, 64)
	}
	return ""
}

// Values returns all raw values of the answer as strings.
func (a Answer) Values() []string {
	if len(a.OptionIDs) > 0 {
		return a.OptionIDs
	}
	if a.Text != "" {
		return []string{a.Text}
	}
	if a.Number != nil {
		return []string{strconv.FormatFloat(*a.Number, 'f', -1, 64)}
	}
	return nil
}

// Has reports whether the answer contains the given option id.
func (a Answer) Has(optionID string) bool {
	for _, id := range a.OptionIDs {
		if id == optionID {
			return true
		}
	}
	return false
}

// AnswerSet maps block ids to answers. Append-only while the questionnaire is
// in progress, then frozen into a Session.
type AnswerSet map[string]Answer

// Clone returns a shallow copy of the set.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
