// Duration, calendar-bucket and impact arithmetic for arrêts.
// Pure functions: deterministic, no database access.
package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// CalculateDuration returns the elapsed hours between two times of day,
// rounded to 2 decimals. When fin <= debut the stoppage crosses midnight and
// a day is added before differencing, so the result is always non-negative.
func CalculateDuration(debut, fin time.Time) float64 {
	if !fin.After(debut) {
		fin = fin.Add(24 * time.Hour)
	}
	hours := fin.Sub(debut).Hours()
	return Round2(hours)
}

// IsOvernight reports whether a stoppage crosses midnight (fin <= debut).
func IsOvernight(debut, fin time.Time) bool {
	return !fin.After(debut)
}

// ISOWeekString formats a date as "YYYY-SWW" on the ISO calendar,
// e.g. "2026-S04" for week 4 of 2026.
func ISOWeekString(d time.Time) string {
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-S%02d", year, week)
}

// MonthString formats a date as "YYYY-MMM", e.g. "2026-M01".
func MonthString(d time.Time) string {
	return fmt.Sprintf("%d-M%02d", d.Year(), int(d.Month()))
}

// CurrentWeek returns the ISO week string for today.
func CurrentWeek() string {
	return ISOWeekString(time.Now())
}

// PreviousWeek returns the ISO week string for seven days ago.
func PreviousWeek() string {
	return ISOWeekString(time.Now().AddDate(0, 0, -7))
}

// WeekBoundaries resolves a "YYYY-SWW" label to the Monday of that ISO week
// and the Sunday six days later. Malformed labels and out-of-range weeks are
// errors.
func WeekBoundaries(semaine string) (time.Time, time.Time, error) {
	parts := strings.SplitN(semaine, "-S", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("semaine invalide: %q", semaine)
	}
	year, errY := strconv.Atoi(parts[0])
	week, errW := strconv.Atoi(parts[1])
	if errY != nil || errW != nil || week < 1 || week > 53 {
		return time.Time{}, time.Time{}, fmt.Errorf("semaine invalide: %q", semaine)
	}

	// January 4 is always inside ISO week 1.
	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	monday := jan4.AddDate(0, 0, 1-weekday)
	start := monday.AddDate(0, 0, (week-1)*7)

	// Week 53 does not exist every year.
	if y, w := start.ISOWeek(); y != year || w != week {
		return time.Time{}, time.Time{}, fmt.Errorf("semaine inexistante: %q", semaine)
	}

	return start, start.AddDate(0, 0, 6), nil
}

// CalculateImpact derives the fractional productivity loss from a stoppage
// duration and a matrix factor. A missing or zero factor means the impact is
// not calculable (nil), never a division by zero.
func CalculateImpact(dureeHeures float64, facteur *float64) *float64 {
	if facteur == nil || *facteur == 0 {
		return nil
	}
	impact := Round6(dureeHeures / *facteur)
	return &impact
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
