package schedule

import "time"

// Evaluate converts projected thresholds plus a reference point into
// remaining margins and a status. A margin of zero or less on either basis
// means overdue. The urgency metric is the minimum of the non-nil margins;
// miles and days are deliberately compared without unit conversion, as an
// approximation of whichever constraint binds soonest. When both margins
// are nil the rule is upcoming with UrgencyUnknown so it sorts last among
// non-overdue rules.
func (e *Engine) Evaluate(p DueProjection, refMileage *float64, refDate time.Time) (milesRemaining, daysRemaining *int, status Status, urgency int) {
	if p.DueMileage != nil && refMileage != nil {
		m := int(*p.DueMileage - *refMileage)
		milesRemaining = &m
	}
	if p.DueDate != nil {
		d := DaysBetween(refDate, *p.DueDate)
		daysRemaining = &d
	}

	status = StatusUpcoming
	if milesRemaining != nil && *milesRemaining <= 0 {
		status = StatusOverdue
	}
	if daysRemaining != nil && *daysRemaining <= 0 {
		status = StatusOverdue
	}

	urgency = UrgencyUnknown
	if milesRemaining != nil && *milesRemaining < urgency {
		urgency = *milesRemaining
	}
	if daysRemaining != nil && *daysRemaining < urgency {
		urgency = *daysRemaining
	}
	return milesRemaining, daysRemaining, status, urgency
}
