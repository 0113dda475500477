package calendar

import "time"

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeShortened
)

const (
	regularWorkingHours   = 8
	shortenedWorkingHours = 7
)

// String returns the day type name as used in calendar files
func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeShortened:
		return "shortened"
	default:
		return "unknown"
	}
}

// DayInfo is the classification of a single date.
// IsHoliday and IsWeekend are independent: a holiday on a Saturday has both set,
// while Type reports the dominant kind (holiday over weekend over shortened).
type DayInfo struct {
	Date         time.Time
	Type         DayType
	WorkingHours int
	IsWorkday    bool
	IsHoliday    bool
	IsWeekend    bool
	IsShortened  bool
	Note         string // holiday label, empty unless IsHoliday
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year         int
	Month        time.Month
	WorkingHours int // Total working hours in the month
	WorkDays     int
	Weekends     int // weekend days that are not holidays
	Holidays     int
	Shortened    int
	Days         []DayInfo
}

// YearSummary aggregates the months of a calendar year
type YearSummary struct {
	Year          int
	CalendarDays  int
	WorkDays      int
	Weekends      int
	Holidays      int
	ShortenedDays int
	WorkingHours  int
	Months        []MonthInfo
}

// Holiday is a declared non-working date with its label
type Holiday struct {
	Date  time.Time
	Label string
}

// Classifier answers what kind of day a date is
type Classifier interface {
	// Classify returns the classification of the given date
	Classify(date time.Time) DayInfo
}
