package repair

import (
	"testing"

	"maintenance-tracker/internal/schedule"
)

func TestParseDigitToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"eight digits", "12052018", "12/05/2018", true},
		{"seven digits", "5022018", "05/02/2018", true},
		{"with separators", "5/02/2018", "05/02/2018", true},
		{"too short", "52018", "", false},
		{"too long", "120520181", "", false},
		{"month out of range", "13052018", "", false},
		{"day out of range", "12322018", "", false},
		{"year out of range", "12051899", "", false},
		{"not a real date", "02312018", "", false},
		{"empty", "", "", false},
		{"plain text", "oil change", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDigitToken(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseDigitToken(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && schedule.FormatDateUS(got) != tt.want {
				t.Errorf("ParseDigitToken(%q) = %s, want %s", tt.input, schedule.FormatDateUS(got), tt.want)
			}
		})
	}
}

func TestRepairColumn(t *testing.T) {
	records := [][]string{
		{"date", "mileage", "service"},
		{"5022018", "10000", "oil change"},
		{"12052018", "15000", "tire rotation"},
		{"01/15/2019", "17000", "already fine"},
		{"unknown", "18000", "left alone"},
	}

	changed := RepairColumn(records, 0)

	if changed != 2 {
		t.Errorf("changed = %d, want 2", changed)
	}
	want := []string{"date", "05/02/2018", "12/05/2018", "01/15/2019", "unknown"}
	for i, w := range want {
		if records[i][0] != w {
			t.Errorf("row %d date = %q, want %q", i, records[i][0], w)
		}
	}
}

func TestRepairColumn_ColumnOutOfRange(t *testing.T) {
	records := [][]string{{"date"}, {"5022018"}}
	if changed := RepairColumn(records, 5); changed != 0 {
		t.Errorf("changed = %d, want 0 for out-of-range column", changed)
	}
}
