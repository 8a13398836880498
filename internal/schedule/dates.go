package schedule

import "time"

// DateLayout is the single calendar-date pattern exchanged with the rule
// set and event store (US month/day/year).
const DateLayout = "01/02/2006"

// ParseDateUS parses MM/DD/YYYY text. It reports false instead of returning
// an error: a malformed date degrades to "date unknown" for that field and
// never aborts evaluation.
func ParseDateUS(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDateUS renders a date in the MM/DD/YYYY pattern.
func FormatDateUS(t time.Time) string {
	return t.Format(DateLayout)
}

// AddMonths performs calendar month addition, clamping to the last valid
// day of the resulting month (01/31 + 1 month = 02/28, not 03/03).
func AddMonths(d time.Time, months int) time.Time {
	y := d.Year() + (int(d.Month())-1+months)/12
	m := time.Month((int(d.Month())-1+months)%12 + 1)
	if m < time.January {
		m += 12
		y--
	}
	day := d.Day()
	if last := daysInMonth(y, m); day > last {
		day = last
	}
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween returns the whole-day difference to minus from, ignoring the
// time-of-day portion of either value.
func DaysBetween(from, to time.Time) int {
	return int(midnight(to).Sub(midnight(from)).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
