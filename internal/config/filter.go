package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rehabtrack/rehab/internal/timeutil"
)

// HistoryFilter selects how much history to show.
type HistoryFilter struct {
	Days  int
	Limit int
}

// Filter builds a HistoryFilter from the --period, --since and --limit flags,
// falling back to the display settings. An explicit period wins over since.
func (c *Config) Filter(ctx *cli.Context, now time.Time) (HistoryFilter, error) {
	f := HistoryFilter{
		Days:  c.Display.HistoryDays,
		Limit: c.Display.RecentLimit,
	}

	if ctx.IsSet("limit") {
		f.Limit = ctx.Int("limit")
		if f.Limit < 0 {
			return f, errInvalidRange.Fmt("limit", 0, maxRecentLimit, f.Limit)
		}
	}

	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))
	if period != "" {
		if !slices.Contains(timeutil.PeriodCollection, period) {
			names := make([]string, len(timeutil.PeriodCollection))
			for i, p := range timeutil.PeriodCollection {
				names[i] = string(p)
			}

			return f, errInvalidPeriod.Fmt(strings.Join(names, ", "))
		}

		f.Days = timeutil.PeriodDays(period)

		return f, nil
	}

	if since := ctx.String("since"); since != "" {
		start, err := timeutil.FromStr(since, now)
		if err != nil {
			return f, err
		}

		if timeutil.RoundToStart(start).After(now) {
			return f, errSinceInFuture.Fmt(start.Format(time.DateOnly))
		}

		f.Days = timeutil.DaysInclusive(start, now)
	}

	return f, nil
}
