package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want WeekID
	}{
		{
			name: "quarta-feira",
			in:   time.Date(2025, 11, 5, 14, 3, 0, 0, time.UTC),
			want: "2025-11-03_2025-11-09",
		},
		{
			name: "segunda-feira à meia-noite",
			in:   time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
			want: "2025-11-03_2025-11-09",
		},
		{
			name: "domingo no último segundo",
			in:   time.Date(2025, 11, 9, 23, 59, 59, 0, time.UTC),
			want: "2025-11-03_2025-11-09",
		},
		{
			name: "semana atravessando o ano",
			in:   time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
			want: "2025-12-29_2026-01-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekOf(tt.in, time.UTC))
		})
	}
}

func TestWeekOfUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	// segunda 03:00 UTC ainda é domingo em UTC-5
	in := time.Date(2025, 11, 10, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, WeekID("2025-11-10_2025-11-16"), WeekOf(in, time.UTC))
	assert.Equal(t, WeekID("2025-11-03_2025-11-09"), WeekOf(in, loc))
}

func TestWeekOfSpansMondayToSunday(t *testing.T) {
	start := time.Date(2024, 1, 1, 7, 30, 0, 0, time.UTC)
	for i := 0; i < 800; i++ {
		day := start.AddDate(0, 0, i)
		week := WeekOf(day, time.UTC)

		_, err := ParseWeekID(string(week))
		require.NoError(t, err, week)

		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Monday, week.Start().Weekday())
		assert.Equal(t, time.Sunday, week.End().Weekday())
		assert.False(t, dayStart.Before(week.Start()), week)
		assert.False(t, dayStart.After(week.End()), week)
	}
}

func TestParseWeekID(t *testing.T) {
	_, err := ParseWeekID("2025-11-03_2025-11-09")
	assert.NoError(t, err)

	for _, bad := range []string{"", "2025-11-03", "2025-11-04_2025-11-10", "2025-11-03_2025-11-10", "x_y"} {
		_, err := ParseWeekID(bad)
		assert.Error(t, err, bad)
	}
}

func TestWeekMonth(t *testing.T) {
	assert.Equal(t, "2025-09", WeekID("2025-09-29_2025-10-05").Month())
}
