// Package dates holds calendar-day helpers shared by the absence store and
// the request lifecycle. All dates are handled at day granularity in UTC.
package dates

import "time"

const Layout = "2006-01-02"

// Normalize truncates t to midnight UTC so date comparisons are exact.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ExpandWeekdays returns every Monday-Friday date in [start, end] inclusive,
// ascending. The result is empty when the range contains no weekday or when
// start is after end.
func ExpandWeekdays(start, end time.Time) []time.Time {
	start = Normalize(start)
	end = Normalize(end)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			continue
		}
		days = append(days, d)
	}
	return days
}

// Overlaps reports whether the inclusive ranges [aStart, aEnd] and
// [bStart, bEnd] share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !Normalize(aStart).After(Normalize(bEnd)) && !Normalize(aEnd).Before(Normalize(bStart))
}

// Within reports whether day d falls inside [start, end] inclusive.
func Within(d, start, end time.Time) bool {
	d = Normalize(d)
	return !d.Before(Normalize(start)) && !d.After(Normalize(end))
}
