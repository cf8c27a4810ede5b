package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A Wednesday afternoon. The surrounding Sunday is June 15, the previous
// week runs June 8-14.
var wednesday = time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func eod(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, 999*int(time.Millisecond), time.UTC)
}

func TestResolveRecognizedPhrases(t *testing.T) {
	tests := []struct {
		phrase string
		start  time.Time
		end    time.Time
		title  string
	}{
		{"today", day(2025, 6, 18), eod(2025, 6, 18), "Today's Journal"},
		{"yesterday", day(2025, 6, 17), eod(2025, 6, 17), "Yesterday's Journal"},
		{"this week", day(2025, 6, 15), eod(2025, 6, 18), "This Week's Journal"},
		{"last week", day(2025, 6, 8), eod(2025, 6, 14), "Last Week's Journal"},
		{"this month", day(2025, 6, 1), eod(2025, 6, 18), "Journal for June 2025"},
		{"last month", day(2025, 5, 1), eod(2025, 5, 31), "Journal for May 2025"},
		{"last 7 days", day(2025, 6, 11), eod(2025, 6, 18), "Last 7 Days Journal"},
		{"last 30 days", day(2025, 5, 19), eod(2025, 6, 18), "Last 30 Days Journal"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			r := Resolve(tt.phrase, wednesday)
			assert.Equal(t, tt.start, r.Start)
			assert.Equal(t, tt.end, r.End)
			assert.Equal(t, tt.title, r.Title)
			assert.False(t, r.Start.After(r.End), "start must not exceed end")
		})
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Resolve("today", wednesday), Resolve("  ToDaY ", wednesday))
}

func TestResolveUnrecognizedFallsBackToThisWeek(t *testing.T) {
	r := Resolve("whenever you feel like it", wednesday)
	thisWeek := Resolve("this week", wednesday)

	assert.Equal(t, thisWeek.Start, r.Start)
	assert.Equal(t, thisWeek.End, r.End)
	assert.Equal(t, "Weekly Journal", r.Title)
}

func TestResolveOnSunday(t *testing.T) {
	// On a Sunday, "this week" starts the same day.
	sunday := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	r := Resolve("this week", sunday)
	assert.Equal(t, day(2025, 6, 15), r.Start)

	last := Resolve("last week", sunday)
	assert.Equal(t, day(2025, 6, 8), last.Start)
	assert.Equal(t, eod(2025, 6, 14), last.End)
}

func TestResolveLastMonthAcrossYear(t *testing.T) {
	january := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	r := Resolve("last month", january)
	assert.Equal(t, day(2025, 12, 1), r.Start)
	assert.Equal(t, eod(2025, 12, 31), r.End)
	assert.Equal(t, "Journal for December 2025", r.Title)
}

func TestContainsDay(t *testing.T) {
	r := Resolve("last week", wednesday) // June 8-14

	assert.True(t, r.ContainsDay(20250608))
	assert.True(t, r.ContainsDay(20250611))
	assert.True(t, r.ContainsDay(20250614))
	assert.False(t, r.ContainsDay(20250607))
	assert.False(t, r.ContainsDay(20250615))
}
