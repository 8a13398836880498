package schedule

import "testing"

func fptr(v float64) *float64 { return &v }

func TestMatchKeywords(t *testing.T) {
	tests := []struct {
		name        string
		description string
		keywords    []string
		want        bool
	}{
		{"exact substring", "oil change", []string{"oil"}, true},
		{"case insensitive", "OIL & Filter Change", []string{"oil"}, true},
		{"keyword cased", "tire rotation", []string{"Tire"}, true},
		{"any of several", "replaced cabin air filter", []string{"brake", "cabin air"}, true},
		{"no hit", "tire rotation", []string{"oil"}, false},
		{"empty keyword list matches nothing", "oil change", nil, false},
		{"blank keyword ignored", "tire rotation", []string{""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := Rule{Key: "test", Match: tt.keywords}
			if got := MatchKeywords(tt.description, rule); got != tt.want {
				t.Errorf("MatchKeywords(%q, %v) = %v, want %v", tt.description, tt.keywords, got, tt.want)
			}
		})
	}
}

func TestLastEventForRule_SelectsLatest(t *testing.T) {
	engine := NewEngine()
	rule := Rule{Key: "oil", Match: []string{"oil"}}

	events := []Event{
		{Date: "01/01/2022", Mileage: fptr(5000), Description: "oil change"},
		{Date: "06/01/2023", Mileage: fptr(15000), Description: "oil change"},
		{Date: "01/01/2023", Mileage: fptr(10000), Description: "oil & filter"},
		{Date: "06/01/2023", Mileage: fptr(2000), Description: "tire rotation"},
	}

	got := engine.LastEventForRule(events, rule)
	if got == nil {
		t.Fatal("expected a match, got nil")
	}
	if got.Baseline {
		t.Error("real event flagged as baseline")
	}
	if got.Date != "06/01/2023" || *got.Mileage != 15000 {
		t.Errorf("selected %s @ %.0f, want 06/01/2023 @ 15000", got.Date, *got.Mileage)
	}
}

func TestLastEventForRule_SameDateHigherMileageWins(t *testing.T) {
	engine := NewEngine()
	rule := Rule{Key: "oil", Match: []string{"oil"}}

	events := []Event{
		{Date: "06/01/2023", Mileage: fptr(15200), Description: "oil change"},
		{Date: "06/01/2023", Mileage: fptr(15000), Description: "oil change"},
	}

	got := engine.LastEventForRule(events, rule)
	if got == nil {
		t.Fatal("expected a match, got nil")
	}
	if *got.Mileage != 15200 {
		t.Errorf("selected mileage %.0f, want 15200", *got.Mileage)
	}
}

func TestLastEventForRule_UnparsableDateSortsEarliest(t *testing.T) {
	engine := NewEngine()
	rule := Rule{Key: "oil", Match: []string{"oil"}}

	events := []Event{
		{Date: "garbage", Mileage: fptr(90000), Description: "oil change"},
		{Date: "01/01/2020", Mileage: fptr(1000), Description: "oil change"},
	}

	got := engine.LastEventForRule(events, rule)
	if got == nil {
		t.Fatal("expected a match, got nil")
	}
	if got.Date != "01/01/2020" {
		t.Errorf("selected %q; an unparsable date must sort before any valid date", got.Date)
	}
}

func TestLastEventForRule_MalformedDateStillMatches(t *testing.T) {
	engine := NewEngine()
	rule := Rule{Key: "oil", Match: []string{"oil"}}

	events := []Event{
		{Date: "not-a-date", Mileage: fptr(42000), Description: "oil change"},
	}

	got := engine.LastEventForRule(events, rule)
	if got == nil {
		t.Fatal("a malformed date must not exclude an event from keyword matching")
	}
	if _, ok := got.ParsedDate(); ok {
		t.Error("expected the matched event's date to stay unparsable")
	}
}

func TestLastEventForRule_BaselineSynthesis(t *testing.T) {
	engine := NewEngine()
	rule := Rule{
		Key:             "coolant",
		Label:           "Coolant Exchange",
		Match:           []string{"coolant"},
		BaselineDate:    "05/02/2018",
		BaselineMileage: fptr(0),
	}

	got := engine.LastEventForRule(nil, rule)
	if got == nil {
		t.Fatal("expected a baseline pseudo-event, got nil")
	}
	if !got.Baseline {
		t.Error("baseline pseudo-event not flagged as baseline")
	}
	if got.Description != "(baseline) Coolant Exchange" {
		t.Errorf("baseline description = %q", got.Description)
	}
	if got.Date != "05/02/2018" || *got.Mileage != 0 {
		t.Errorf("baseline anchor = %s @ %v, want 05/02/2018 @ 0", got.Date, got.Mileage)
	}
	if got.Note == "" {
		t.Error("baseline pseudo-event should carry a marker note")
	}
}

func TestLastEventForRule_NoMatchNoBaseline(t *testing.T) {
	engine := NewEngine()
	rule := Rule{Key: "spark_plugs", Match: []string{"spark"}}

	events := []Event{
		{Date: "01/01/2023", Mileage: fptr(10000), Description: "oil change"},
	}

	if got := engine.LastEventForRule(events, rule); got != nil {
		t.Errorf("expected nil for a never-serviced rule without baseline, got %+v", got)
	}
}

func TestCustomMatcher(t *testing.T) {
	exact := func(description string, rule Rule) bool {
		for _, kw := range rule.Match {
			if description == kw {
				return true
			}
		}
		return false
	}
	engine := NewEngineWithMatcher(exact)
	rule := Rule{Key: "oil", Match: []string{"oil change"}}

	events := []Event{
		{Date: "01/01/2023", Mileage: fptr(10000), Description: "oil change and more"},
		{Date: "02/01/2023", Mileage: fptr(11000), Description: "oil change"},
	}

	got := engine.LastEventForRule(events, rule)
	if got == nil || got.Date != "02/01/2023" {
		t.Errorf("custom matcher not applied: got %+v", got)
	}
}
