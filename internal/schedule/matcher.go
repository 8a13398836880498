package schedule

import "strings"

// Matcher decides whether a history entry's description qualifies for a
// rule. It is a separate strategy so keyword matching can be swapped for
// token or fuzzy matching without touching projection or evaluation.
type Matcher func(description string, rule Rule) bool

// MatchKeywords is the default Matcher: the description qualifies when it
// contains any of the rule's keywords as a case-insensitive substring. A
// rule with no keywords matches nothing.
func MatchKeywords(description string, rule Rule) bool {
	desc := strings.ToLower(description)
	for _, kw := range rule.Match {
		if kw == "" {
			continue
		}
		if strings.Contains(desc, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// baselineNote marks synthesized pseudo-events so reporters can flag them.
const baselineNote = "baseline from schedule config, no matching history"

// LastEventForRule selects the single most relevant history entry for a
// rule: the qualifying event that is most recent by date, ties broken by
// higher mileage, then by later position in the history. Events whose date
// fails to parse sort before all valid dates. When nothing qualifies, a
// baseline pseudo-event is synthesized from the rule configuration if one
// is defined; otherwise nil is returned.
func (e *Engine) LastEventForRule(events []Event, rule Rule) *MatchedEvent {
	var best *Event
	for i := range events {
		ev := &events[i]
		if !e.matcher(ev.Description, rule) {
			continue
		}
		if best == nil || compareEvents(*ev, *best) >= 0 {
			best = ev
		}
	}
	if best != nil {
		return &MatchedEvent{Event: *best}
	}
	if rule.HasBaseline() {
		return &MatchedEvent{
			Event: Event{
				Date:        rule.BaselineDate,
				Mileage:     rule.BaselineMileage,
				Description: "(baseline) " + rule.DisplayLabel(),
				Note:        baselineNote,
			},
			Baseline: true,
		}
	}
	return nil
}

// compareEvents orders events by (parsed date, mileage) ascending. An
// unparsable date is treated as earliest and an unknown mileage sorts below
// any known one.
func compareEvents(a, b Event) int {
	da, _ := a.ParsedDate()
	db, _ := b.ParsedDate()
	if da.Before(db) {
		return -1
	}
	if da.After(db) {
		return 1
	}
	ma, mb := mileageOrZero(a), mileageOrZero(b)
	switch {
	case ma < mb:
		return -1
	case ma > mb:
		return 1
	}
	return 0
}

func mileageOrZero(e Event) float64 {
	if e.Mileage == nil {
		return -1
	}
	return *e.Mileage
}
