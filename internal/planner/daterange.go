package planner

import (
	"fmt"
	"time"

	"github.com/username/vacation-planner/pkg/dateutil"
)

// DateRange is an inclusive range of calendar dates with Start <= End
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two dates given in any order.
// Both ends are truncated to the calendar date.
func NewDateRange(a, b time.Time) DateRange {
	a = dateutil.StartOfDay(a)
	b = dateutil.StartOfDay(b)
	if b.Before(a) {
		a, b = b, a
	}
	return DateRange{Start: a, End: b}
}

// Contains reports whether the date falls inside the range
func (r DateRange) Contains(date time.Time) bool {
	date = dateutil.StartOfDay(date)
	return !date.Before(r.Start) && !date.After(r.End)
}

// Len returns the number of calendar days in the range
func (r DateRange) Len() int {
	return dateutil.DaysBetween(r.Start, r.End) + 1
}

// Days calls fn for every date in the range, in order
func (r DateRange) Days(fn func(date time.Time)) {
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// String returns "2026-01-01..2026-01-09"
func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", dateutil.FormatISO(r.Start), dateutil.FormatISO(r.End))
}
