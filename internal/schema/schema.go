// Package schema defines the record shapes exchanged with the metrics
// engine and validates raw input before any computation runs.
package schema

// -----------------------------------------------------------------------------
// Input types
// -----------------------------------------------------------------------------

// TimeEntry is time spent in one activity domain within a reporting period.
// Multiple entries may name the same domain; the engine sums them before
// computing any metric.
type TimeEntry struct {
	Domain string  `json:"domain"`
	Hours  float64 `json:"hours"` // non-negative
}

// DomainPriority is the user-declared importance of a domain, with an
// optional diminishing-returns cap. A nil MaxDailyHours means unbounded.
type DomainPriority struct {
	Domain        string   `json:"domain"`
	Priority      float64  `json:"priority"` // 0.0 to 1.0
	MaxDailyHours *float64 `json:"max_daily_hours,omitempty"`
}

// Goal links a user objective to the domains that advance it. Only domain
// membership matters for alignment; a domain may appear in several goals.
type Goal struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Domains            []string `json:"domains"`
	TargetHoursPerWeek *float64 `json:"target_hours_per_week,omitempty"`
}

// ActionLog holds aggregate counts of consumption and resulting actions
// over a period. No per-item identity is modeled.
type ActionLog struct {
	Consumed   int `json:"consumed"`
	Bookmarked int `json:"bookmarked"`
	Shared     int `json:"shared"`
	Applied    int `json:"applied"`
}

// ActionWeights sets the relative value of each action kind when computing
// the actionability score.
type ActionWeights struct {
	Bookmarked float64 `json:"bookmarked_weight"`
	Shared     float64 `json:"shared_weight"`
	Applied    float64 `json:"applied_weight"`
}

// DefaultActionWeights returns the standard weights: a bookmark is worth
// less than a share, a share less than a concrete application.
func DefaultActionWeights() ActionWeights {
	return ActionWeights{
		Bookmarked: 0.3,
		Shared:     0.5,
		Applied:    1.0,
	}
}

// Hours returns a pointer to v, for the optional hour fields.
func Hours(v float64) *float64 {
	return &v
}

// -----------------------------------------------------------------------------
// Output types
// -----------------------------------------------------------------------------

// Period tags a report with the evaluation window it describes. It is
// purely descriptive and changes no formula.
type Period string

const (
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

// RecommendationKind says what to do with time in a domain.
type RecommendationKind string

const (
	RecIncrease RecommendationKind = "increase"
	RecDecrease RecommendationKind = "decrease"
	RecMaintain RecommendationKind = "maintain"
)

// Severity ranks how much a recommendation matters.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// DomainMetrics breaks down how one domain contributes to the Quality
// Time Score.
type DomainMetrics struct {
	Domain        string  `json:"domain"`
	TimeSpent     float64 `json:"time_spent"`
	EffectiveTime float64 `json:"effective_time"`
	Priority      float64 `json:"priority"`
	Contribution  float64 `json:"contribution"`
}

// Recommendation is one heuristic suggestion derived from the metrics.
type Recommendation struct {
	Kind     RecommendationKind `json:"kind"`
	Domain   string             `json:"domain"`
	Message  string             `json:"message"`
	Severity Severity           `json:"severity"`
}

// MetricsReport bundles every computed metric and the derived
// recommendations for one evaluation period.
type MetricsReport struct {
	Period               Period           `json:"period"`
	QualityTimeScore     float64          `json:"quality_time_score"`
	RawTimeHours         float64          `json:"raw_time_hours"`
	GoalAlignmentPercent float64          `json:"goal_alignment_percent"`
	DistractionPercent   float64          `json:"distraction_percent"`
	ActionabilityScore   float64          `json:"actionability_score"`
	ByDomain             []DomainMetrics  `json:"by_domain"`
	Recommendations      []Recommendation `json:"recommendations"`
}
