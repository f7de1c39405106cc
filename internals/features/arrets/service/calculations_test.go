package service

import (
	"testing"
	"time"

	helper "suiviarrets_backend/internals/helpers"
)

func clock(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := helper.ParseClock(s)
	if err != nil {
		t.Fatalf("parse clock %q: %v", s, err)
	}
	return v
}

func TestCalculateDurationSameDay(t *testing.T) {
	got := CalculateDuration(clock(t, "06:00"), clock(t, "14:00"))
	if got != 8.0 {
		t.Fatalf("expected 8.0h, got %v", got)
	}
	if IsOvernight(clock(t, "06:00"), clock(t, "14:00")) {
		t.Fatal("06:00-14:00 must not be overnight")
	}
}

func TestCalculateDurationOvernight(t *testing.T) {
	got := CalculateDuration(clock(t, "22:00"), clock(t, "02:00"))
	if got != 4.0 {
		t.Fatalf("expected 4.0h, got %v", got)
	}
	if !IsOvernight(clock(t, "22:00"), clock(t, "02:00")) {
		t.Fatal("22:00-02:00 must be overnight")
	}
}

func TestCalculateDurationEqualTimesIsFullDay(t *testing.T) {
	got := CalculateDuration(clock(t, "08:00"), clock(t, "08:00"))
	if got != 24.0 {
		t.Fatalf("expected 24.0h for equal times, got %v", got)
	}
}

func TestCalculateDurationRounding(t *testing.T) {
	// 6h30 -> 6.5, 6h20 -> 6.33
	if got := CalculateDuration(clock(t, "08:00"), clock(t, "14:30")); got != 6.5 {
		t.Fatalf("expected 6.5h, got %v", got)
	}
	if got := CalculateDuration(clock(t, "08:00"), clock(t, "14:20")); got != 6.33 {
		t.Fatalf("expected 6.33h, got %v", got)
	}
}

func TestISOWeekString(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2026-01-19", "2026-S04"},
		{"2026-01-01", "2026-S01"},
		// Dec 29, 2025 belongs to ISO week 1 of 2026.
		{"2025-12-29", "2026-S01"},
		// Jan 1, 2027 belongs to ISO week 53 of 2026.
		{"2027-01-01", "2026-S53"},
	}
	for _, tc := range cases {
		d, err := time.Parse("2006-01-02", tc.date)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.date, err)
		}
		if got := ISOWeekString(d); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.date, tc.want, got)
		}
	}
}

func TestMonthString(t *testing.T) {
	d := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	if got := MonthString(d); got != "2026-M01" {
		t.Fatalf("expected 2026-M01, got %s", got)
	}
}

func TestWeekBoundariesRoundTrip(t *testing.T) {
	dates := []string{"2026-01-19", "2025-12-29", "2024-02-29", "2026-06-15"}
	for _, ds := range dates {
		d, _ := time.Parse("2006-01-02", ds)
		label := ISOWeekString(d)
		start, end, err := WeekBoundaries(label)
		if err != nil {
			t.Fatalf("boundaries for %s (%s): %v", ds, label, err)
		}
		if start.Weekday() != time.Monday {
			t.Fatalf("%s: start %s is not a Monday", label, start)
		}
		if end.Sub(start) != 6*24*time.Hour {
			t.Fatalf("%s: span is not 7 days", label)
		}
		if d.Before(start) || d.After(end) {
			t.Fatalf("%s: %s outside [%s, %s]", label, ds, start, end)
		}
	}
}

func TestWeekBoundariesMalformed(t *testing.T) {
	for _, bad := range []string{"", "2026", "2026-W04", "abcd-S04", "2026-S00", "2026-S54", "2025-S53"} {
		if _, _, err := WeekBoundaries(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestCalculateImpact(t *testing.T) {
	facteur := 20.0
	impact := CalculateImpact(5.0, &facteur)
	if impact == nil || *impact != 0.25 {
		t.Fatalf("expected 0.25, got %v", impact)
	}

	if CalculateImpact(5.0, nil) != nil {
		t.Fatal("expected nil impact without a factor")
	}

	zero := 0.0
	if CalculateImpact(5.0, &zero) != nil {
		t.Fatal("expected nil impact with a zero factor")
	}
}

func TestCalculateImpactRounding(t *testing.T) {
	facteur := 3.0
	impact := CalculateImpact(1.0, &facteur)
	if impact == nil || *impact != 0.333333 {
		t.Fatalf("expected 0.333333, got %v", impact)
	}
}
