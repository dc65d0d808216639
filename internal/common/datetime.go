package common

import "time"

// DateFormatYYYYMMDD is the calendar date layout of query filters and chart buckets.
const DateFormatYYYYMMDD = "2006-01-02"

// Now is replaceable in tests.
var Now = time.Now

// SameCalendarDay compares the calendar dates of a and b in loc.
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}

	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()

	return ay == by && am == bm && ad == bd
}

// ParseDate parses a YYYY-MM-DD value as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	t, err := time.ParseInLocation(DateFormatYYYYMMDD, value, loc)
	if err != nil {
		return time.Time{}, ErrInvalidFormatDate
	}

	return t, nil
}
