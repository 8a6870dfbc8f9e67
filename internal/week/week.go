/*
Package week implements the current-week filter and week labels used across
the pipeline. Week boundaries follow ISO calendar semantics: Monday through
Sunday in the configured timezone.
*/
package week

import (
	"fmt"
	"time"
)

// IsCurrentWeek reports whether t falls inside the current ISO calendar week
// in loc. A zero time is never current. Timestamps in other zones are
// converted before comparison.
func IsCurrentWeek(t time.Time, loc *time.Location) bool {
	if t.IsZero() {
		return false
	}
	if loc == nil {
		loc = time.UTC
	}
	py, pw := t.In(loc).ISOWeek()
	ny, nw := time.Now().In(loc).ISOWeek()
	return py == ny && pw == nw
}

// Label formats the current week as YYYY-W<2-digit week> in loc.
func Label(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	_, w := now.ISOWeek()
	return fmt.Sprintf("%s-W%02d", now.Format("2006"), w)
}

// DateRange formats the Monday through Sunday span of the current ISO week in
// loc for display, e.g. "Jan 06 - Jan 12, 2025".
func DateRange(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	offset := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return fmt.Sprintf("%s - %s", monday.Format("Jan 02"), sunday.Format("Jan 02, 2006"))
}
