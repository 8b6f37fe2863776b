package utils

import "time"

// Range kinds accepted by the leaderboard and stats endpoints.
const (
	RangeDaily   = "daily"
	RangeWeekly  = "weekly"
	RangeMonthly = "monthly"
)

// ResolveRange maps a range kind and reference date to an inclusive
// [start, end] pair. Unknown kinds fall back to weekly, matching the
// historical behavior clients rely on.
func ResolveRange(kind string, ref time.Time) (time.Time, time.Time) {
	ref = truncateToDay(ref)
	switch kind {
	case RangeDaily:
		return ref, ref
	case RangeMonthly:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		// Last day of the month: first day of the next month minus one day.
		// AddDate normalizes December+1 into January of the next year.
		end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
		return start, end
	default:
		return weeklyRange(ref)
	}
}

// weeklyRange returns the ISO week containing ref: Monday through Sunday.
func weeklyRange(ref time.Time) (time.Time, time.Time) {
	offset := (int(ref.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	start := ref.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDate renders a date the way it is stored and exchanged: YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// ParseDate parses a YYYY-MM-DD string; the zero value plus error on bad input.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
