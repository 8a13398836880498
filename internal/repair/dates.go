// Package repair fixes legacy digit-token dates in exported history files.
// Older spreadsheets stored dates as bare digit runs: 8 digits are MMDDYYYY,
// 7 digits are MDDYYYY (single-digit month). Everything else is left alone.
package repair

import (
	"strconv"
	"strings"
	"time"

	"maintenance-tracker/internal/schedule"
)

// ParseDigitToken parses a 7- or 8-digit date token. Non-digit characters
// are stripped first, so "5/02/2018" and "5022018" both resolve. It reports
// false for anything that is not a real calendar date between 1900 and 2100.
func ParseDigitToken(s string) (time.Time, bool) {
	digits := keepDigits(s)

	var m, d, y int
	switch len(digits) {
	case 8:
		m, _ = strconv.Atoi(digits[:2])
		d, _ = strconv.Atoi(digits[2:4])
		y, _ = strconv.Atoi(digits[4:])
	case 7:
		m, _ = strconv.Atoi(digits[:1])
		d, _ = strconv.Atoi(digits[1:3])
		y, _ = strconv.Atoi(digits[3:])
	default:
		return time.Time{}, false
	}

	if m < 1 || m > 12 || d < 1 || d > 31 || y < 1900 || y > 2100 {
		return time.Time{}, false
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || t.Month() != time.Month(m) {
		// Normalization moved the date (e.g. 02/31), so the token is bogus.
		return time.Time{}, false
	}
	return t, true
}

// RepairColumn rewrites digit-token values in one column of a CSV record
// set to MM/DD/YYYY, in place. Header row and unrecognized values are left
// untouched. It returns the number of cells changed.
func RepairColumn(records [][]string, column int) int {
	changed := 0
	for i, row := range records {
		if i == 0 || column < 0 || column >= len(row) {
			continue
		}
		if _, ok := schedule.ParseDateUS(row[column]); ok {
			continue
		}
		if t, ok := ParseDigitToken(row[column]); ok {
			row[column] = schedule.FormatDateUS(t)
			changed++
		}
	}
	return changed
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
