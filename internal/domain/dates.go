package domain

import (
	"sort"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses YYYY-MM-DD into a date-only value at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOf drops the clock part of t as seen in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func SortDates(dates []time.Time) []time.Time {
	out := make([]time.Time, len(dates))
	copy(out, dates)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// DatesKey is the canonical identity of a date set.
func DatesKey(dates []time.Time) string {
	return JoinDates(SortDates(dates))
}

func RateKindOf(d time.Time) RateKind {
	switch d.Weekday() {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
		return RateWeekday
	default:
		return RateWeekend
	}
}
