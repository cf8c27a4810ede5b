package query

import (
	"fmt"
	"strings"
	"time"
)

// Range is a resolved journal time window. Start and End sit on full-day
// boundaries (00:00:00.000 and 23:59:59.999) and Start never exceeds End.
type Range struct {
	Start time.Time
	End   time.Time
	Title string
}

// Resolve maps a natural-language time phrase to a concrete range,
// relative to now. Weeks start on Sunday. An unrecognized phrase never
// fails: it resolves to the current week with the title "Weekly Journal",
// which keeps conversational callers moving at the cost of a possibly
// surprising default.
func Resolve(phrase string, now time.Time) Range {
	switch strings.ToLower(strings.TrimSpace(phrase)) {
	case "today":
		return Range{startOfDay(now), endOfDay(now), "Today's Journal"}

	case "yesterday":
		y := now.AddDate(0, 0, -1)
		return Range{startOfDay(y), endOfDay(y), "Yesterday's Journal"}

	case "this week":
		return Range{startOfWeek(now), endOfDay(now), "This Week's Journal"}

	case "last week":
		thisSunday := startOfWeek(now)
		return Range{
			thisSunday.AddDate(0, 0, -7),
			endOfDay(thisSunday.AddDate(0, 0, -1)),
			"Last Week's Journal",
		}

	case "this month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Range{first, endOfDay(now), fmt.Sprintf("Journal for %s", now.Format("January 2006"))}

	case "last month":
		firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		firstOfPrev := firstOfThis.AddDate(0, -1, 0)
		return Range{
			firstOfPrev,
			endOfDay(firstOfThis.AddDate(0, 0, -1)),
			fmt.Sprintf("Journal for %s", firstOfPrev.Format("January 2006")),
		}

	case "last 7 days":
		return Range{startOfDay(now.AddDate(0, 0, -7)), endOfDay(now), "Last 7 Days Journal"}

	case "last 30 days":
		return Range{startOfDay(now.AddDate(0, 0, -30)), endOfDay(now), "Last 30 Days Journal"}

	default:
		return Range{startOfWeek(now), endOfDay(now), "Weekly Journal"}
	}
}

// ContainsDay reports whether a journal day (yyyymmdd) falls in the range.
func (r Range) ContainsDay(day int) bool {
	return day >= dayNumber(r.Start) && day <= dayNumber(r.End)
}

func dayNumber(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
}

// startOfWeek returns the most recent Sunday at 00:00.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t.AddDate(0, 0, -int(t.Weekday())))
}
