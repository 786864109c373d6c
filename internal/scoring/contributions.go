package scoring

import (
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/schema"
)

// DomainContributions breaks the quality time score down per domain.
// Domains appear in first-occurrence order of the time entries, with
// duplicate entries for one domain merged before the cap applies. Summing
// the contributions reproduces the quality time score exactly.
func DomainContributions(entries []schema.TimeEntry, priorities []schema.DomainPriority, defaultPriority float64) []schema.DomainMetrics {
	byDomain := make(map[string]schema.DomainPriority, len(priorities))
	for _, p := range priorities {
		byDomain[p.Domain] = p
	}

	totals := make(map[string]float64, len(entries))
	var order []string
	for _, e := range entries {
		if _, seen := totals[e.Domain]; !seen {
			order = append(order, e.Domain)
		}
		totals[e.Domain] += e.Hours
	}

	result := make([]schema.DomainMetrics, 0, len(order))
	for _, domain := range order {
		hours := totals[domain]
		priority := defaultPriority
		effective := hours
		if p, ok := byDomain[domain]; ok {
			priority = p.Priority
			if p.MaxDailyHours != nil && hours > *p.MaxDailyHours {
				effective = *p.MaxDailyHours
			}
		}
		result = append(result, schema.DomainMetrics{
			Domain:        domain,
			TimeSpent:     hours,
			EffectiveTime: effective,
			Priority:      priority,
			Contribution:  effective * priority,
		})
	}
	return result
}
