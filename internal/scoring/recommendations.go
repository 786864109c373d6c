package scoring

import (
	"fmt"

	"github.com/meaningfulmetrics/meaningfulmetrics/internal/schema"
)

// Recommendations derives heuristic suggestions from the computed metrics.
// Rules fire in a fixed order (alignment, cap excess, low-priority drains,
// goal shortfalls, affirmation) so identical inputs always produce the
// same sequence.
func Recommendations(entries []schema.TimeEntry, priorities []schema.DomainPriority, goals []schema.Goal, alignment float64, cfg Config) []schema.Recommendation {
	var recs []schema.Recommendation
	t := cfg.Thresholds

	byDomain := make(map[string]schema.DomainPriority, len(priorities))
	for _, p := range priorities {
		byDomain[p.Domain] = p
	}

	// Merge duplicate entries, keeping first-occurrence order.
	totals := make(map[string]float64, len(entries))
	var order []string
	for _, e := range entries {
		if _, seen := totals[e.Domain]; !seen {
			order = append(order, e.Domain)
		}
		totals[e.Domain] += e.Hours
	}

	// First goal domain in declaration order, used as the target of
	// alignment recommendations.
	firstGoalDomain := ""
	for _, g := range goals {
		if len(g.Domains) > 0 {
			firstGoalDomain = g.Domains[0]
			break
		}
	}

	if alignment < t.LowAlignment && firstGoalDomain != "" {
		recs = append(recs, schema.Recommendation{
			Kind:     schema.RecIncrease,
			Domain:   firstGoalDomain,
			Message:  fmt.Sprintf("Goal alignment is only %.0f%%. Consider spending more time on goal-related activities.", alignment),
			Severity: schema.SeverityHigh,
		})
	}

	for _, domain := range order {
		p, ok := byDomain[domain]
		if !ok || p.MaxDailyHours == nil {
			continue
		}
		if excess := totals[domain] - *p.MaxDailyHours; excess > 0 {
			recs = append(recs, schema.Recommendation{
				Kind:     schema.RecDecrease,
				Domain:   domain,
				Message:  fmt.Sprintf("You spent %.1fh over your cap for %s. Consider reallocating to higher-priority activities.", excess, domain),
				Severity: schema.SeverityMedium,
			})
		}
	}

	for _, domain := range order {
		priority := cfg.DefaultPriority
		if p, ok := byDomain[domain]; ok {
			priority = p.Priority
		}
		if priority < t.LowPriority && totals[domain] > t.LowPriorityHours {
			recs = append(recs, schema.Recommendation{
				Kind:     schema.RecDecrease,
				Domain:   domain,
				Message:  fmt.Sprintf("Spent %.1fh on low-priority domain %q. Consider reducing this time.", totals[domain], domain),
				Severity: schema.SeverityMedium,
			})
		}
	}

	for _, g := range goals {
		if g.TargetHoursPerWeek == nil || *g.TargetHoursPerWeek == 0 {
			continue
		}
		goalTime := 0.0
		for _, d := range g.Domains {
			goalTime += totals[d]
		}
		if goalTime < *g.TargetHoursPerWeek*t.TargetShortfallRatio {
			domain := "goal_activities"
			if len(g.Domains) > 0 {
				domain = g.Domains[0]
			}
			recs = append(recs, schema.Recommendation{
				Kind:     schema.RecIncrease,
				Domain:   domain,
				Message:  fmt.Sprintf("Progress on %q is behind target. Spent %.1fh vs %.0fh target.", g.Name, goalTime, *g.TargetHoursPerWeek),
				Severity: schema.SeverityHigh,
			})
		}
	}

	if alignment >= t.MaintainAlignment {
		recs = append(recs, schema.Recommendation{
			Kind:     schema.RecMaintain,
			Domain:   "overall",
			Message:  fmt.Sprintf("Goal alignment is %.0f%%. Keep up the good work.", alignment),
			Severity: schema.SeverityLow,
		})
	}

	return recs
}
