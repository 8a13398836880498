package schedule

import "time"

// Project computes the next mileage threshold and calendar date for a rule
// from its matched event. With no matched event and no baseline, the rule
// has never been serviced: the first service is due at one interval from
// zero mileage, and a time-based task is due at the reference date, i.e.
// flagged for attention now.
//
// A mileage_only trigger always forces the due date to nil, even when a
// time interval is configured and a last date exists.
func (e *Engine) Project(matched *MatchedEvent, rule Rule, refDate time.Time) DueProjection {
	milesInt := int(rule.MilesInterval)
	monthsInt := int(rule.MonthsInterval)
	mileageOnly := rule.TriggerMode() == TriggerMileageOnly

	var p DueProjection
	if matched != nil {
		if milesInt > 0 && matched.Mileage != nil {
			due := *matched.Mileage + float64(milesInt)
			p.DueMileage = &due
		}
		if monthsInt > 0 && !mileageOnly {
			if lastDate, ok := matched.ParsedDate(); ok {
				due := AddMonths(lastDate, monthsInt)
				p.DueDate = &due
			}
		}
		return p
	}

	if milesInt > 0 {
		due := float64(milesInt)
		p.DueMileage = &due
	}
	if monthsInt > 0 && !mileageOnly {
		due := refDate
		p.DueDate = &due
	}
	return p
}
