// Package reporting computes period summaries and goal progress.
//
// Everything in this package is pure: callers fetch a user-scoped snapshot
// of transactions and pass it in, and the functions here never touch storage,
// the clock, or shared state.
package reporting

import (
	"fmt"
	"time"
)

// Period is a named date-range shorthand.
type Period string

const (
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodYear   Period = "year"
	PeriodCustom Period = "custom"
)

// DefaultPeriod is used when the caller does not name one.
const DefaultPeriod = PeriodMonth

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParsePeriod converts untrusted input into a Period. An empty string yields
// DefaultPeriod.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return DefaultPeriod, nil
	}
	switch p := Period(s); p {
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodCustom:
		return p, nil
	}
	return "", fmt.Errorf("invalid period %q, must be week, month, year or custom", s)
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar date of t lies within the range.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// DateOnly strips the time of day, keeping the calendar date as seen in t's
// own location, and returns midnight UTC of that date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return t, nil
}

// ResolveRange computes the date range for period relative to today. A
// non-nil start or end replaces the matching computed bound on its own.
// PeriodCustom has no computed bounds of its own and falls back to the
// current month for whichever side is missing.
func ResolveRange(period Period, today time.Time, start, end *time.Time) DateRange {
	today = DateOnly(today)

	var r DateRange
	switch period {
	case PeriodWeek:
		offset := (int(today.Weekday()) + 6) % 7 // days since Monday
		r.Start = today.AddDate(0, 0, -offset)
		r.End = r.Start.AddDate(0, 0, 6)
	case PeriodYear:
		r.Start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		r.End = time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		r.Start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		r.End = r.Start.AddDate(0, 1, -1)
	}

	if start != nil {
		r.Start = DateOnly(*start)
	}
	if end != nil {
		r.End = DateOnly(*end)
	}
	return r
}
