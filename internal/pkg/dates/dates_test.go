package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse(Layout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExpandWeekdays(t *testing.T) {
	// Mon 2026-03-09 .. Sun 2026-03-15 has exactly five weekdays.
	got := ExpandWeekdays(day("2026-03-09"), day("2026-03-15"))
	assert.Len(t, got, 5)
	for _, d := range got {
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
	assert.Equal(t, day("2026-03-09"), got[0])
	assert.Equal(t, day("2026-03-13"), got[4])
}

func TestExpandWeekdays_WeekendOnly(t *testing.T) {
	// Sat 2026-06-06 .. Sun 2026-06-07 contains no weekday.
	got := ExpandWeekdays(day("2026-06-06"), day("2026-06-07"))
	assert.Empty(t, got)

	// A single Saturday.
	got = ExpandWeekdays(day("2026-06-06"), day("2026-06-06"))
	assert.Empty(t, got)
}

func TestExpandWeekdays_InvertedRange(t *testing.T) {
	got := ExpandWeekdays(day("2026-03-13"), day("2026-03-09"))
	assert.Empty(t, got)
}

func TestExpandWeekdays_SingleWeekday(t *testing.T) {
	got := ExpandWeekdays(day("2026-03-11"), day("2026-03-11"))
	assert.Len(t, got, 1)
	assert.Equal(t, time.Wednesday, got[0].Weekday())
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "2026-03-09", "2026-03-11", "2026-03-09", "2026-03-11", true},
		{"touching end", "2026-03-09", "2026-03-11", "2026-03-11", "2026-03-14", true},
		{"contained", "2026-03-01", "2026-03-31", "2026-03-10", "2026-03-12", true},
		{"disjoint before", "2026-03-01", "2026-03-05", "2026-03-06", "2026-03-10", false},
		{"disjoint after", "2026-03-11", "2026-03-15", "2026-03-01", "2026-03-10", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Overlaps(day(c.aStart), day(c.aEnd), day(c.bStart), day(c.bEnd))
			assert.Equal(t, c.want, got)
		})
	}
}

func TestWithin(t *testing.T) {
	assert.True(t, Within(day("2026-03-10"), day("2026-03-09"), day("2026-03-11")))
	assert.True(t, Within(day("2026-03-09"), day("2026-03-09"), day("2026-03-11")))
	assert.False(t, Within(day("2026-03-12"), day("2026-03-09"), day("2026-03-11")))
}
