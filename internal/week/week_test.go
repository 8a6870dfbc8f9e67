package week_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/week"
)

func TestIsCurrentWeek(t *testing.T) {
	now := time.Now().UTC()

	require.True(t, week.IsCurrentWeek(now, time.UTC))
	require.False(t, week.IsCurrentWeek(time.Time{}, time.UTC))
	require.False(t, week.IsCurrentWeek(now.AddDate(0, 0, -8), time.UTC))
	require.False(t, week.IsCurrentWeek(now.AddDate(0, 0, 8), time.UTC))
	require.False(t, week.IsCurrentWeek(now.AddDate(-1, 0, 0), time.UTC))
}

func TestIsCurrentWeekConvertsZone(t *testing.T) {
	// The same instant is current-week regardless of the zone it is
	// expressed in.
	now := time.Now().UTC()
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	require.Equal(t,
		week.IsCurrentWeek(now, time.UTC),
		week.IsCurrentWeek(now.In(tokyo), time.UTC))
}

func TestIsCurrentWeekNilLocation(t *testing.T) {
	require.True(t, week.IsCurrentWeek(time.Now(), nil))
}

func TestLabel(t *testing.T) {
	now := time.Now().UTC()
	_, w := now.ISOWeek()
	want := fmt.Sprintf("%s-W%02d", now.Format("2006"), w)

	require.Equal(t, want, week.Label(time.UTC))
}

func TestDateRangeSpansMondayToSunday(t *testing.T) {
	got := week.DateRange(time.UTC)
	require.Contains(t, got, " - ")

	now := time.Now().UTC()
	offset := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -offset)
	require.Contains(t, got, monday.Format("Jan 02"))
	require.Contains(t, got, monday.AddDate(0, 0, 6).Format("Jan 02, 2006"))
}
