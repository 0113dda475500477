package calendar

import (
	"sort"
	"time"

	"github.com/username/vacation-planner/pkg/dateutil"
)

const isoLayout = "2006-01-02"

// Year is an immutable production calendar for exactly one year.
// Dates outside the year are classified by weekday only.
type Year struct {
	year      int
	holidays  map[string]string // ISO date → label
	shortened map[string]int    // ISO date → working hours
}

// Year returns the calendar year
func (y *Year) Year() int {
	return y.year
}

// Contains reports whether the date lies within the calendar year
func (y *Year) Contains(date time.Time) bool {
	return date.Year() == y.year
}

// Classify returns the classification of the given date
func (y *Year) Classify(date time.Time) DayInfo {
	date = dateutil.StartOfDay(date)
	key := date.Format(isoLayout)

	label, isHoliday := y.holidays[key]
	shortHours, isShortened := y.shortened[key]
	isWeekend := dateutil.IsWeekend(date)

	info := DayInfo{
		Date:        date,
		IsHoliday:   isHoliday,
		IsWeekend:   isWeekend,
		IsShortened: isShortened,
	}

	switch {
	case isHoliday:
		info.Type = DayTypeHoliday
		info.Note = label
	case isWeekend:
		info.Type = DayTypeWeekend
	case isShortened:
		info.Type = DayTypeShortened
		info.WorkingHours = shortHours
		info.IsWorkday = true
	default:
		info.Type = DayTypeWorkday
		info.WorkingHours = regularWorkingHours
		info.IsWorkday = true
	}

	return info
}

// IsHoliday reports whether the date is a declared holiday
func (y *Year) IsHoliday(date time.Time) bool {
	_, ok := y.holidays[dateutil.StartOfDay(date).Format(isoLayout)]
	return ok
}

// Holidays returns all declared holidays sorted by date
func (y *Year) Holidays() []Holiday {
	holidays := make([]Holiday, 0, len(y.holidays))
	for key, label := range y.holidays {
		date, _ := time.Parse(isoLayout, key)
		holidays = append(holidays, Holiday{Date: date, Label: label})
	}

	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	return holidays
}

// ShortDays returns all shortened working days sorted by date
func (y *Year) ShortDays() []time.Time {
	days := make([]time.Time, 0, len(y.shortened))
	for key := range y.shortened {
		date, _ := time.Parse(isoLayout, key)
		days = append(days, date)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	return days
}

// MonthInfo returns calendar info for the entire month
func (y *Year) MonthInfo(month time.Month) MonthInfo {
	first := dateutil.Date(y.year, month, 1)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	monthInfo := MonthInfo{
		Year:  y.year,
		Month: month,
		Days:  make([]DayInfo, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		info := y.Classify(dateutil.Date(y.year, month, day))

		switch info.Type {
		case DayTypeHoliday:
			monthInfo.Holidays++
		case DayTypeWeekend:
			monthInfo.Weekends++
		case DayTypeShortened:
			monthInfo.Shortened++
		}
		if info.IsWorkday {
			monthInfo.WorkDays++
		}
		monthInfo.WorkingHours += info.WorkingHours

		monthInfo.Days = append(monthInfo.Days, info)
	}

	return monthInfo
}

// Summary returns statistics for the whole year
func (y *Year) Summary() YearSummary {
	summary := YearSummary{
		Year:   y.year,
		Months: make([]MonthInfo, 0, 12),
	}

	for month := time.January; month <= time.December; month++ {
		info := y.MonthInfo(month)

		summary.CalendarDays += len(info.Days)
		summary.WorkDays += info.WorkDays
		summary.Weekends += info.Weekends
		summary.Holidays += info.Holidays
		summary.ShortenedDays += info.Shortened
		summary.WorkingHours += info.WorkingHours
		summary.Months = append(summary.Months, info)
	}

	return summary
}
