package timezone_test

import (
	"hotelbooking/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	if parsed.Location() != time.UTC {
		t.Errorf("expected UTC location, got %s", parsed.Location())
	}

	if timezone.FormatDate(parsed) != "2024-06-01" {
		t.Errorf("expected round trip to 2024-06-01, got %s", timezone.FormatDate(parsed))
	}

	if _, err := timezone.ParseDate("2024/06/01"); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected int
	}{
		{name: "three nights", from: "2024-06-01", to: "2024-06-04", expected: 3},
		{name: "same day", from: "2024-06-01", to: "2024-06-01", expected: 0},
		{name: "inverted", from: "2024-06-04", to: "2024-06-01", expected: -3},
		{name: "across month end", from: "2024-01-30", to: "2024-02-02", expected: 3},
		{name: "across leap day", from: "2024-02-28", to: "2024-03-01", expected: 2},
		{name: "across dst change", from: "2024-03-09", to: "2024-03-11", expected: 2},
		{name: "four centuries", from: "1700-01-01", to: "2100-01-01", expected: 146097},
		{name: "four centuries inverted", from: "2100-01-01", to: "1700-01-01", expected: -146097},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, _ := timezone.ParseDate(tt.from)
			to, _ := timezone.ParseDate(tt.to)

			if got := timezone.DaysBetween(from, to); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
