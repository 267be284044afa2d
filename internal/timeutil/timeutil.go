// Package timeutil provides utility functions and types for working with
// calendar days and reporting periods.
package timeutil

import (
	"strings"
	"time"

	dateparser "github.com/markusmobius/go-dateparser"

	"github.com/rehabtrack/rehab/internal/apperr"
)

type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
)

// Range maps a period to the offset in days of its first day.
var Range = map[Period]int{
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
}

var PeriodCollection = []Period{
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
}

var errParseDate = &apperr.Error{
	Message: "unable to understand the date %q",
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// DaysInclusive counts the calendar days from the day of since up to and
// including the day of now. It is at least 1.
func DaysInclusive(since, now time.Time) int {
	start := RoundToStart(since.In(now.Location()))
	end := RoundToStart(now)

	n := 1
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		n++
	}

	return n
}

// PeriodDays returns the number of days covered by p, or 0 if p is unknown.
func PeriodDays(p Period) int {
	offset, ok := Range[p]
	if !ok {
		return 0
	}

	return 1 - offset
}

// FromStr parses absolute or relative dates such as "2026-10-01" or
// "2 weeks ago" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	d, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errParseDate.Fmt(s)
	}

	return d.Time, nil
}
