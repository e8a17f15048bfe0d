package scenario

import (
	"sort"
	"strconv"
	"strings"

	"github.com/claraval/serein/internal/domain"
)

// ProfileKey serializes a profile into a stable seed string. Map iteration
// order must not leak into the key, so scores are emitted sorted.
func ProfileKey(p domain.Profile) string {
	domains := make([]string, 0, len(p.Scores))
	for d := range p.Scores {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	scores := make([]string, len(domains))
	for i, d := range domains {
		scores[i] = d + "=" + strconv.Itoa(p.Scores[d])
	}

	parts := []string{
		p.Tone,
		strings.Join(p.Themes, ","),
		strings.Join(p.Focus, ","),
		strings.Join(p.Postures, ","),
		strings.Join(p.Vecu, ","),
		strings.Join(p.Besoins, ","),
		string(p.Energy),
		string(p.Root),
		strings.Join(scores, ","),
		strconv.FormatBool(p.LowEnergy),
		strconv.FormatBool(p.ManyThings),
	}
	return strings.Join(parts, "|")
}
