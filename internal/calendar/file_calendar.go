package calendar

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultYear is the year covered by the embedded production calendar
const DefaultYear = 2026

//go:embed data/ru-2026.txt
var ru2026 string

var (
	defaultOnce sync.Once
	defaultCal  *Year
	defaultErr  error
)

// Default returns the embedded Russian production calendar for DefaultYear.
// It is parsed once and shared; Year is read-only so sharing is safe.
func Default() (*Year, error) {
	defaultOnce.Do(func() {
		defaultCal, defaultErr = Parse(strings.NewReader(ru2026), DefaultYear, zap.NewNop())
	})
	return defaultCal, defaultErr
}

// MustDefault is like Default but panics if the embedded calendar is broken
func MustDefault() *Year {
	y, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded calendar: %v", err))
	}
	return y
}

// Parse reads a calendar for the given year from r.
//
// Format: YYYY-MM-DD type working_hours [note]
// Example: 2026-01-01 holiday 0 Новогодние каникулы
//
// Only "holiday" and "shortened" types are meaningful; regular workdays and
// weekends are derived from the weekday. Blank lines and lines starting with
// '#' are ignored.
func Parse(r io.Reader, year int, logger *zap.Logger) (*Year, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cal := &Year{
		year:      year,
		holidays:  make(map[string]string),
		shortened: make(map[string]int),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, " ", 4)
		if len(parts) < 3 {
			return nil, fmt.Errorf("line %d: invalid format %q", lineNo, line)
		}

		dateStr := parts[0]
		typeStr := parts[1]
		hoursStr := parts[2]
		note := ""
		if len(parts) == 4 {
			note = strings.TrimSpace(parts[3])
		}

		date, err := time.Parse(isoLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: failed to parse date: %w", lineNo, err)
		}
		if date.Year() != year {
			return nil, fmt.Errorf("line %d: date %s is outside calendar year %d", lineNo, dateStr, year)
		}

		hours, err := strconv.Atoi(hoursStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: failed to parse hours: %w", lineNo, err)
		}

		if _, dup := cal.holidays[dateStr]; dup {
			return nil, fmt.Errorf("line %d: duplicate date %s", lineNo, dateStr)
		}
		if _, dup := cal.shortened[dateStr]; dup {
			return nil, fmt.Errorf("line %d: duplicate date %s", lineNo, dateStr)
		}

		switch typeStr {
		case "holiday":
			if note == "" {
				note = "Holiday"
			}
			cal.holidays[dateStr] = note
		case "shortened":
			if hours <= 0 || hours >= regularWorkingHours {
				return nil, fmt.Errorf("line %d: shortened day must have 1..%d hours, got %d",
					lineNo, regularWorkingHours-1, hours)
			}
			cal.shortened[dateStr] = hours
		default:
			return nil, fmt.Errorf("line %d: unknown day type %q", lineNo, typeStr)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading calendar: %w", err)
	}

	logger.Info("Calendar loaded",
		zap.Int("year", year),
		zap.Int("holidays", len(cal.holidays)),
		zap.Int("shortened_days", len(cal.shortened)))

	return cal, nil
}
