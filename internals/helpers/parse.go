// file: internals/helpers/parse.go
package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock values are anchored to a shared reference date so two times of day
// can be subtracted directly.
var RefDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

var clockLayouts = []string{"15:04:05", "15:04", "15:04:05.000"}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// ParseClock coerces the time-of-day encodings seen in the field:
//   - "14:30", "14:30:00", "14:30:00.000"
//   - "6h00" / "6h" (legacy journal notation)
//   - "0.25" (spreadsheet fraction of a day)
//
// The result is anchored to RefDate.
func ParseClock(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("heure vide")
	}

	if i := strings.IndexAny(s, "hH"); i >= 0 {
		hourPart := s[:i]
		minPart := strings.TrimSpace(s[i+1:])
		hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
		if err == nil && hour >= 0 && hour < 24 {
			minute := 0
			if minPart != "" {
				minute, err = strconv.Atoi(minPart)
			}
			if err == nil && minute >= 0 && minute < 60 {
				return RefDate.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
			}
		}
		return time.Time{}, fmt.Errorf("format d'heure invalide: %q", raw)
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return RefDate.Add(time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second), nil
		}
	}

	// Spreadsheet cells sometimes hold the raw day fraction.
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 {
		total := int(f * 24 * 3600)
		hours := (total / 3600) % 24
		minutes := (total % 3600) / 60
		seconds := total % 60
		return RefDate.Add(time.Duration(hours)*time.Hour +
			time.Duration(minutes)*time.Minute +
			time.Duration(seconds)*time.Second), nil
	}

	return time.Time{}, fmt.Errorf("format d'heure invalide: %q", raw)
}

// FormatClock renders a clock value as stored in the database.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// ParseDate coerces the date encodings seen in imports: ISO, French slash
// and dash forms.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("date vide")
	}
	// Datetime cells keep only the date part.
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("format de date invalide: %q", raw)
}

// CleanString trims whitespace and maps empty to nil.
func CleanString(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}
