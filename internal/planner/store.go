package planner

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicatePeriod is returned when a period id is already stored
var ErrDuplicatePeriod = errors.New("period id already exists")

// Period is a committed vacation range with metrics frozen at commit time
type Period struct {
	ID    string
	Range DateRange
	Metrics
	Color string
}

// PeriodStore keeps committed periods in insertion order.
// Periods may overlap; each one is charged in full.
type PeriodStore struct {
	periods []Period
}

// NewPeriodStore creates an empty store
func NewPeriodStore() *PeriodStore {
	return &PeriodStore{}
}

// Add appends the period
func (ps *PeriodStore) Add(p Period) error {
	if p.ID == "" {
		return fmt.Errorf("add period %s: empty id", p.Range)
	}
	for _, existing := range ps.periods {
		if existing.ID == p.ID {
			return fmt.Errorf("add period %s: %w", p.ID, ErrDuplicatePeriod)
		}
	}

	ps.periods = append(ps.periods, p)
	return nil
}

// Remove deletes the period with the given id. Removing an unknown id is a no-op.
func (ps *PeriodStore) Remove(id string) bool {
	for i, p := range ps.periods {
		if p.ID == id {
			ps.periods = append(ps.periods[:i:i], ps.periods[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the period with the given id
func (ps *PeriodStore) Get(id string) (Period, bool) {
	for _, p := range ps.periods {
		if p.ID == id {
			return p, true
		}
	}
	return Period{}, false
}

// List returns a copy of all periods in insertion order
func (ps *PeriodStore) List() []Period {
	periods := make([]Period, len(ps.periods))
	copy(periods, ps.periods)
	return periods
}

// Len returns the number of periods
func (ps *PeriodStore) Len() int {
	return len(ps.periods)
}

// Covering returns the first period, in insertion order, that contains the date
func (ps *PeriodStore) Covering(date time.Time) (Period, bool) {
	for _, p := range ps.periods {
		if p.Range.Contains(date) {
			return p, true
		}
	}
	return Period{}, false
}

// UsedDays sums vacation days over all periods
func (ps *PeriodStore) UsedDays() int {
	used := 0
	for _, p := range ps.periods {
		used += p.VacationDays
	}
	return used
}
