package profile

import (
	"strings"

	"github.com/claraval/serein/internal/domain"
)

// urgencyMarkers are matched as lowercase substrings against every answer
// value and label. One hit is enough to flag the session.
var urgencyMarkers = []string{
	"suicid",
	"me faire du mal",
	"mettre fin",
	"plus envie de vivre",
	"danger immédiat",
	"me blesser",
}

// HasUrgencySignal scans all answers for self-harm or danger markers. Both
// the flow controller (safety block override) and the diagnostic (safety-first
// output) rely on this.
func HasUrgencySignal(answers domain.AnswerSet) bool {
	for _, a := range answers {
		for _, v := range a.Values() {
			if matchesMarker(v) {
				return true
			}
		}
		for _, l := range a.Labels {
			if matchesMarker(l) {
				return true
			}
		}
	}
	return false
}

func matchesMarker(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range urgencyMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
