package schedule

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Status classifies an evaluated rule.
type Status string

const (
	StatusOverdue  Status = "OVERDUE"
	StatusUpcoming Status = "UPCOMING"
)

// Trigger modes. A mileage_only rule ignores its time interval entirely;
// earliest flags a rule when either threshold is crossed.
const (
	TriggerEarliest    = "earliest"
	TriggerMileageOnly = "mileage_only"
)

// UrgencyUnknown is the sort position for rules with no computable due
// basis; it places them last among non-overdue rules.
const UrgencyUnknown = 999999

// Interval is a non-negative service interval. Negative or non-numeric
// values in the config decode to 0, meaning the interval is disabled rather
// than the whole load failing.
type Interval int

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Interval) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err != nil || n < 0 {
		*i = 0
		return nil
	}
	*i = Interval(n)
	return nil
}

// Event is one historical service or odometer record. Events are immutable
// once recorded; the engine only reads them. Date is kept as raw text in
// MM/DD/YYYY form and parsed lazily, because malformed historical dates are
// expected and must not exclude an event from keyword matching.
type Event struct {
	Date        string   `json:"date"`
	Mileage     *float64 `json:"mileage"`
	Description string   `json:"service"`
	Note        string   `json:"note,omitempty"`
}

// ParsedDate returns the event's date, reporting false when the text does
// not parse.
func (e Event) ParsedDate() (time.Time, bool) {
	return ParseDateUS(e.Date)
}

// Rule is one configured maintenance task. Rules are loaded once per session
// and read-only to the engine.
type Rule struct {
	Key             string   `yaml:"key" json:"key"`
	Label           string   `yaml:"label" json:"label"`
	Match           []string `yaml:"match" json:"match"`
	MilesInterval   Interval `yaml:"miles_interval" json:"miles_interval"`
	MonthsInterval  Interval `yaml:"months_interval" json:"months_interval"`
	Trigger         string   `yaml:"trigger" json:"trigger"`
	BaselineDate    string   `yaml:"baseline_date,omitempty" json:"baseline_date,omitempty"`
	BaselineMileage *float64 `yaml:"baseline_mileage,omitempty" json:"baseline_mileage,omitempty"`
	Note            string   `yaml:"note,omitempty" json:"note,omitempty"`
}

// DisplayLabel returns the label, falling back to the key.
func (r Rule) DisplayLabel() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Key
}

// TriggerMode normalizes the trigger field; anything other than
// mileage_only is treated as earliest.
func (r Rule) TriggerMode() string {
	if strings.ToLower(strings.TrimSpace(r.Trigger)) == TriggerMileageOnly {
		return TriggerMileageOnly
	}
	return TriggerEarliest
}

// HasBaseline reports whether the rule defines a synthetic starting point
// for use when no history matches.
func (r Rule) HasBaseline() bool {
	return r.BaselineDate != "" || r.BaselineMileage != nil
}

// MatchedEvent is the last known occurrence relevant to a rule: either a
// real history entry or a baseline pseudo-event synthesized from the rule
// configuration.
type MatchedEvent struct {
	Event
	Baseline bool
}

// DueProjection holds the projected thresholds for one rule. Either field
// may be nil when no basis exists to compute it.
type DueProjection struct {
	DueMileage *float64
	DueDate    *time.Time
}

// EvaluatedRule is the per-rule evaluation result, computed fresh on every
// run and never persisted.
type EvaluatedRule struct {
	Rule           Rule
	Matched        *MatchedEvent
	Projection     DueProjection
	MilesRemaining *int
	DaysRemaining  *int
	Status         Status
	Urgency        int
}

// HasDueBasis reports whether any due figure could be computed for the
// rule. Rules without one still appear in the report, marked explicitly.
func (r EvaluatedRule) HasDueBasis() bool {
	return r.Projection.DueMileage != nil || r.Projection.DueDate != nil
}
