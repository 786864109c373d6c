// Package metrics implements the five core wellbeing formulas.
//
// Every function here is pure: it reads its arguments, mutates nothing,
// and returns the same value for the same inputs. Inputs are assumed to
// have passed schema validation; no function re-validates, and the
// division-by-zero cases are handled by policy (return 0) because a zero
// total is a normal state, not a caller mistake.
package metrics

import (
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/schema"
)

// DefaultPriority is the neutral weight used for a domain that has no
// declared priority. The scoring layer exposes it as an overridable
// parameter; this constant only anchors the documented default.
const DefaultPriority = 0.5

// hoursByDomain sums entry hours per domain. Duplicate entries for one
// domain are always merged before any formula runs, so a cap applies to
// the domain total rather than to each entry.
func hoursByDomain(entries []schema.TimeEntry) map[string]float64 {
	totals := make(map[string]float64, len(entries))
	for _, e := range entries {
		totals[e.Domain] += e.Hours
	}
	return totals
}

// QualityTimeScore computes the priority-weighted time total with
// diminishing returns.
//
// Formula:
//
//	QTS = sum over domains of min(Ti, Capi) * Pi
//
// where Ti is the summed hours for domain i, Capi its cap (unbounded when
// absent) and Pi its priority. A domain missing from priorities gets
// defaultPriority and no cap. A cap of zero makes the domain contribute
// nothing regardless of time spent.
func QualityTimeScore(entries []schema.TimeEntry, priorities []schema.DomainPriority, defaultPriority float64) float64 {
	byDomain := make(map[string]schema.DomainPriority, len(priorities))
	for _, p := range priorities {
		byDomain[p.Domain] = p
	}

	qts := 0.0
	for domain, hours := range hoursByDomain(entries) {
		priority := defaultPriority
		effective := hours
		if p, ok := byDomain[domain]; ok {
			priority = p.Priority
			if p.MaxDailyHours != nil && hours > *p.MaxDailyHours {
				effective = *p.MaxDailyHours
			}
		}
		qts += effective * priority
	}
	return qts
}

// GoalAlignment computes the percentage of tracked time spent in domains
// linked to at least one goal.
//
// Formula:
//
//	GA = goal-domain hours / total hours * 100
//
// Zero total hours returns 0, never NaN. An empty goals list returns 0
// regardless of the entries.
func GoalAlignment(entries []schema.TimeEntry, goals []schema.Goal) float64 {
	goalDomains := make(map[string]bool)
	for _, g := range goals {
		for _, d := range g.Domains {
			goalDomains[d] = true
		}
	}

	total := 0.0
	aligned := 0.0
	for domain, hours := range hoursByDomain(entries) {
		total += hours
		if goalDomains[domain] {
			aligned += hours
		}
	}
	if total == 0 {
		return 0
	}
	return aligned / total * 100
}

// DistractionRatio is the inverse of goal alignment: the percentage of
// time in domains linked to no goal.
//
// Formula:
//
//	DR = 100 - GA
//
// With zero total hours both GA and DR are 0, so the pair stays
// symmetric instead of reporting a fully distracted empty period.
func DistractionRatio(entries []schema.TimeEntry, goals []schema.Goal) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.Hours
	}
	if total == 0 {
		return 0
	}
	return 100 - GoalAlignment(entries, goals)
}

// ActionabilityScore measures how much consumed content turned into a
// recorded action.
//
// Formula:
//
//	AS = (bookmarked*Wb + shared*Ws + applied*Wa) / consumed
//
// Zero consumption returns 0. The score has no upper bound: items can be
// acted on more than one way, so exceeding 1.0 is expected, not an error.
func ActionabilityScore(consumed, bookmarked, shared, applied int, weights schema.ActionWeights) float64 {
	if consumed == 0 {
		return 0
	}
	weighted := float64(bookmarked)*weights.Bookmarked +
		float64(shared)*weights.Shared +
		float64(applied)*weights.Applied
	return weighted / float64(consumed)
}

// ActionabilityFromLog unpacks an action log into ActionabilityScore.
func ActionabilityFromLog(log schema.ActionLog, weights schema.ActionWeights) float64 {
	return ActionabilityScore(log.Consumed, log.Bookmarked, log.Shared, log.Applied, weights)
}

// LocalityScore weights content by its relevance to the user's local
// community.
//
// Formula:
//
//	LS = local_relevance * engagement
//
// Both inputs are expected in [0,1]; the function does not clamp, so
// keeping them in range is the caller's validation concern.
func LocalityScore(localRelevance, engagement float64) float64 {
	return localRelevance * engagement
}
