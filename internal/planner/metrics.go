package planner

import (
	"time"

	"github.com/username/vacation-planner/internal/calendar"
)

// Metrics are the day counts of a date range.
//
// VacationDays is what the range costs against the allowance: every day that
// is not a declared holiday, weekends included. WorkingDays is informational
// and excludes both weekends and holidays.
type Metrics struct {
	VacationDays int `yaml:"vacation_days"`
	WorkingDays  int `yaml:"working_days"`
	CalendarDays int `yaml:"calendar_days"`
	HolidayDays  int `yaml:"holiday_days"`
}

// ComputeMetrics counts the days of r using the given classifier
func ComputeMetrics(cls calendar.Classifier, r DateRange) Metrics {
	m := Metrics{CalendarDays: r.Len()}

	r.Days(func(date time.Time) {
		info := cls.Classify(date)
		if info.IsHoliday {
			m.HolidayDays++
			return
		}
		m.VacationDays++
		if !info.IsWeekend {
			m.WorkingDays++
		}
	})

	return m
}
