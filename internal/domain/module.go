package domain

// CoreDomain is the universal module pool used as fallback when no
// domain-specific module qualifies.
const CoreDomain = "core"

// Module is a schedulable unit of content. Immutable, sourced from the
// module library configuration.
type Module struct {
	ID           string
	Title        string
	Minutes      int
	Instructions string
	Tags         []string
	Domain       string
	Weight       int
}

func (m Module) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (m Module) IsCore() bool {
	return m.Domain == CoreDomain
}
