package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC)

func TestRoundToStartAndEnd(t *testing.T) {
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), RoundToStart(now))
	assert.Equal(t, time.Date(2026, 10, 17, 23, 59, 59, 0, time.UTC), RoundToEnd(now))
}

func TestDaysInclusive(t *testing.T) {
	cases := []struct {
		name  string
		since time.Time
		want  int
	}{
		{name: "same day", since: now.Add(-time.Hour), want: 1},
		{name: "yesterday late", since: time.Date(2026, 10, 16, 23, 0, 0, 0, time.UTC), want: 2},
		{name: "two weeks", since: now.AddDate(0, 0, -13), want: 14},
		{name: "future", since: now.AddDate(0, 0, 3), want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysInclusive(tc.since, now))
		})
	}
}

func TestPeriodDays(t *testing.T) {
	assert.Equal(t, 1, PeriodDays(PeriodToday))
	assert.Equal(t, 7, PeriodDays(Period7Days))
	assert.Equal(t, 14, PeriodDays(Period14Days))
	assert.Equal(t, 0, PeriodDays("fortnight"))
}

func TestFromStr(t *testing.T) {
	got, err := FromStr("2026-10-01", now)
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.October, got.Month())
	assert.Equal(t, 1, got.Day())

	got, err = FromStr("3 days ago", now)
	require.NoError(t, err)
	assert.Equal(t, 14, got.Day())

	_, err = FromStr("not a date at all", now)
	assert.ErrorIs(t, err, errParseDate)
}
