package schedule

import (
	"testing"
	"time"
)

func TestParseDateUS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"valid", "01/01/2023", "01/01/2023", true},
		{"valid end of month", "12/31/1999", "12/31/1999", true},
		{"empty", "", "", false},
		{"iso format", "2023-01-01", "", false},
		{"digit token", "5022018", "", false},
		{"nonsense", "yesterday", "", false},
		{"impossible day", "02/30/2023", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDateUS(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseDateUS(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && FormatDateUS(got) != tt.want {
				t.Errorf("ParseDateUS(%q) = %s, want %s", tt.input, FormatDateUS(got), tt.want)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{"plain", "01/01/2023", 6, "07/01/2023"},
		{"year rollover", "11/15/2022", 3, "02/15/2023"},
		{"clamp to february", "01/31/2023", 1, "02/28/2023"},
		{"clamp to leap february", "01/31/2024", 1, "02/29/2024"},
		{"clamp to thirty days", "05/31/2023", 1, "06/30/2023"},
		{"multi year", "03/10/2020", 36, "03/10/2023"},
		{"zero months", "06/06/2023", 0, "06/06/2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, ok := ParseDateUS(tt.start)
			if !ok {
				t.Fatalf("bad test date %q", tt.start)
			}
			got := AddMonths(start, tt.months)
			if FormatDateUS(got) != tt.want {
				t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.start, tt.months, FormatDateUS(got), tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"same day", "07/15/2023", "07/15/2023", 0},
		{"forward", "03/01/2023", "03/08/2023", 7},
		{"backward", "07/15/2023", "07/01/2023", -14},
		{"across leap day", "02/27/2024", "03/01/2024", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, _ := ParseDateUS(tt.from)
			to, _ := ParseDateUS(tt.to)
			if got := DaysBetween(from, to); got != tt.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2023, 3, 1, 23, 50, 0, 0, time.UTC)
	to := time.Date(2023, 3, 2, 0, 10, 0, 0, time.UTC)
	if got := DaysBetween(from, to); got != 1 {
		t.Errorf("DaysBetween across midnight = %d, want 1", got)
	}
}
