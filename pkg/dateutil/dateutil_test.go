package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2026, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestStartOfDay_KeepsLocalCalendarDate(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	input := time.Date(2026, 3, 1, 1, 0, 0, 0, moscow) // 2026-02-28 22:00 UTC

	result := StartOfDay(input)

	if FormatISO(result) != "2026-03-01" {
		t.Errorf("StartOfDay(%v) = %v, want 2026-03-01", input, FormatISO(result))
	}
	if result.Location() != time.UTC {
		t.Errorf("StartOfDay location = %v, want UTC", result.Location())
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Saturday is weekend", Date(2026, 1, 3), true},
		{"Sunday is weekend", Date(2026, 3, 8), true},
		{"Monday is not weekend", Date(2026, 2, 23), false},
		{"Friday is not weekend", Date(2026, 6, 12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		berlin = time.FixedZone("CET", 60*60)
	}

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{"same day", Date(2026, 6, 12), Date(2026, 6, 12), 0},
		{"one week", Date(2026, 1, 1), Date(2026, 1, 8), 7},
		{"whole year", Date(2026, 1, 1), Date(2026, 12, 31), 364},
		{"reversed", Date(2026, 1, 9), Date(2026, 1, 1), -8},
		{
			"across DST change",
			time.Date(2026, 3, 28, 0, 0, 0, 0, berlin),
			time.Date(2026, 3, 30, 0, 0, 0, 0, berlin),
			2,
		},
		{
			"late evening to early morning",
			time.Date(2026, 5, 1, 23, 30, 0, 0, time.UTC),
			time.Date(2026, 5, 2, 0, 15, 0, 0, time.UTC),
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFormatShort(t *testing.T) {
	if got := FormatShort(Date(2026, 6, 12)); got != "12 Jun" {
		t.Errorf("FormatShort() = %q, want %q", got, "12 Jun")
	}
	if got := FormatShort(Date(2026, 1, 1)); got != "1 Jan" {
		t.Errorf("FormatShort() = %q, want %q", got, "1 Jan")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"ISO format YYYY-MM-DD", "2026-01-15", Date(2026, 1, 15), false},
		{"Russian format DD.MM.YYYY", "15.01.2026", Date(2026, 1, 15), false},
		{"Garbage", "tomorrow", time.Time{}, true},
		{"Impossible date", "2026-02-30", time.Time{}, true},
		{"Empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}
