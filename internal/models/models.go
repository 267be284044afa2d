package models

import (
	"strings"
	"time"
)

// keySep separates the date and exercise ID in a log key.
const keySep = "__"

// DateLayout is the ISO date format used in log keys.
const DateLayout = "2006-01-02"

// LogRecord is the progress recorded for one exercise on one day.
//
//nolint:govet // field order fixes the persisted key order
type LogRecord struct {
	Done bool `json:"done"`
	// TS is the epoch time in milliseconds when the record was saved
	TS   int64  `json:"ts"`
	Sets string `json:"sets,omitempty"`
	Reps string `json:"reps,omitempty"`
	Pain int    `json:"pain,omitempty"`
	// Difficulty is the perceived effort from 1 (easy) to 5 (max); 0 is unset
	Difficulty int    `json:"difficulty,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// HasDetail reports whether anything beyond a plain check-off was recorded.
func (r LogRecord) HasDetail() bool {
	return r.Sets != "" || r.Reps != "" || r.Notes != "" ||
		r.Pain > 0 || r.Difficulty > 0
}

// Time returns the save time of the record.
func (r LogRecord) Time() time.Time {
	return time.UnixMilli(r.TS)
}

// PainBand groups pain levels for display.
type PainBand int

const (
	PainNone PainBand = iota
	PainLow
	PainMedium
	PainHigh
)

// PainLevel returns the band of a 0-10 pain score.
func PainLevel(p int) PainBand {
	switch {
	case p <= 0:
		return PainNone
	case p <= 3:
		return PainLow
	case p <= 6:
		return PainMedium
	default:
		return PainHigh
	}
}

// KeyedRecord pairs a log record with its key.
type KeyedRecord struct {
	Key    string    `json:"key"`
	Record LogRecord `json:"record"`
}

// DateKey formats t as the date segment of a log key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// LogKey builds the key of the record for exerciseID on the day of t.
func LogKey(t time.Time, exerciseID string) string {
	return DateKey(t) + keySep + exerciseID
}

// SplitKey separates a log key into its date and exercise ID.
func SplitKey(key string) (date, exerciseID string, ok bool) {
	return strings.Cut(key, keySep)
}

// HasDate reports whether key belongs to the given date.
func HasDate(key, date string) bool {
	return strings.HasPrefix(key, date+keySep)
}
