// Package schedule computes, for a set of maintenance rules applied to a
// vehicle tracked by odometer mileage and calendar date, which tasks are
// due, overdue, or upcoming given a history of past service events.
//
// The engine is pure: it borrows read-only views of the rule set and event
// store, holds no state between runs, performs no I/O, and always returns
// one result per input rule. Malformed dates, missing mileage, and disabled
// intervals degrade to nil figures rather than errors.
package schedule

import "time"

// Engine evaluates maintenance rules against service history.
type Engine struct {
	matcher Matcher
}

// NewEngine returns an engine using keyword-substring matching.
func NewEngine() *Engine {
	return &Engine{matcher: MatchKeywords}
}

// NewEngineWithMatcher returns an engine using a custom matching strategy.
func NewEngineWithMatcher(m Matcher) *Engine {
	if m == nil {
		m = MatchKeywords
	}
	return &Engine{matcher: m}
}

// Run matches, projects, and evaluates every rule against the history, then
// ranks the results by urgency. refMileage may be nil, in which case all
// mileage-based figures come back nil; time-based figures are unaffected.
func (e *Engine) Run(rules []Rule, events []Event, refMileage *float64, refDate time.Time) []EvaluatedRule {
	results := make([]EvaluatedRule, 0, len(rules))
	for _, rule := range rules {
		matched := e.LastEventForRule(events, rule)
		projection := e.Project(matched, rule, refDate)
		miles, days, status, urgency := e.Evaluate(projection, refMileage, refDate)
		results = append(results, EvaluatedRule{
			Rule:           rule,
			Matched:        matched,
			Projection:     projection,
			MilesRemaining: miles,
			DaysRemaining:  days,
			Status:         status,
			Urgency:        urgency,
		})
	}
	Rank(results)
	return results
}
