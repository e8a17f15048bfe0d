package domain

// PlanDays and PlanSlots fix the shape of every generated plan.
const (
	PlanDays  = 7
	PlanSlots = 3
)

type PlanSlot struct {
	Day      int // 1-based
	Slot     int // 1-based
	ModuleID string
	Title    string
	Minutes  int
}

type PlanDay struct {
	Day   int
	Slots []PlanSlot
}

type Plan struct {
	Days      []PlanDay
	Intensity int
	Adherence float64
	Streak    int
}

// ModuleIDs returns every module id referenced by the plan, in schedule order.
func (p Plan) ModuleIDs() []string {
	var ids []string
	for _, d := range p.Days {
		for _, s := range d.Slots {
			ids = append(ids, s.ModuleID)
		}
	}
	return ids
}

type DomainScore struct {
	Domain   string
	Score    int
	Severity Severity
}

type Diagnostic struct {
	Urgent     bool
	Headline   string
	Severity   Severity
	Top        []DomainScore
	Breakdown  []string
	EnergyNote string
}
