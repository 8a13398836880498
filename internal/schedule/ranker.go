package schedule

import "sort"

// Rank orders evaluated rules for presentation: overdue rules first
// regardless of margin size, then by urgency metric ascending. The sort is
// stable, so ties keep the rule definition order.
func Rank(results []EvaluatedRule) {
	sort.SliceStable(results, func(i, j int) bool {
		ti, tj := statusTier(results[i].Status), statusTier(results[j].Status)
		if ti != tj {
			return ti < tj
		}
		return results[i].Urgency < results[j].Urgency
	})
}

func statusTier(s Status) int {
	if s == StatusOverdue {
		return 0
	}
	return 1
}

// DueWithin filters ranked results down to the actionable set: overdue
// rules plus upcoming rules inside the given margins. Nil margins never
// qualify; a rule with no due basis is not actionable.
func DueWithin(results []EvaluatedRule, miles, days int) []EvaluatedRule {
	var out []EvaluatedRule
	for _, r := range results {
		if r.Status == StatusOverdue {
			out = append(out, r)
			continue
		}
		if r.MilesRemaining != nil && *r.MilesRemaining <= miles {
			out = append(out, r)
			continue
		}
		if r.DaysRemaining != nil && *r.DaysRemaining <= days {
			out = append(out, r)
		}
	}
	return out
}
