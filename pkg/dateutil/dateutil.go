package dateutil

import (
	"fmt"
	"time"
)

const isoLayout = "2006-01-02"

var shortMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Date returns midnight UTC of the given calendar date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns midnight UTC of the calendar date seen in t's own location.
// The wall-clock part and the zone are dropped so that day arithmetic never
// crosses a daylight-saving boundary.
func StartOfDay(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)).Hours() / 24)
}

// FormatISO formats the date as YYYY-MM-DD
func FormatISO(date time.Time) string {
	return date.Format(isoLayout)
}

// FormatShort formats the date as "12 Jun"
func FormatShort(date time.Time) string {
	return fmt.Sprintf("%d %s", date.Day(), shortMonths[date.Month()-1])
}

// ParseDate parses a calendar date in ISO (2006-01-02) or Russian (02.01.2006) form
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		isoLayout,
		"02.01.2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return StartOfDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}
