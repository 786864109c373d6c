// Package scoring composes the core metrics into a full report with
// per-domain breakdowns and heuristic recommendations.
package scoring

import (
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/metrics"
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/schema"
)

// Thresholds are the cutoffs driving recommendation generation. They are
// configuration, not hardwired constants; callers override any of them.
type Thresholds struct {
	// MaintainAlignment is the goal alignment percentage at or above
	// which an affirming maintain recommendation is produced.
	MaintainAlignment float64 `json:"maintain_alignment" yaml:"maintain_alignment"`

	// LowAlignment is the goal alignment percentage below which an
	// increase recommendation is produced.
	LowAlignment float64 `json:"low_alignment" yaml:"low_alignment"`

	// LowPriority marks a domain as low priority when its weight falls
	// below this value.
	LowPriority float64 `json:"low_priority" yaml:"low_priority"`

	// LowPriorityHours is the time a low-priority domain must absorb
	// before a decrease recommendation names it.
	LowPriorityHours float64 `json:"low_priority_hours" yaml:"low_priority_hours"`

	// TargetShortfallRatio flags a goal as behind when its domain time
	// is below target_hours_per_week multiplied by this ratio.
	TargetShortfallRatio float64 `json:"target_shortfall_ratio" yaml:"target_shortfall_ratio"`
}

// DefaultThresholds returns the documented default cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaintainAlignment:    50.0,
		LowAlignment:         30.0,
		LowPriority:          0.3,
		LowPriorityHours:     1.0,
		TargetShortfallRatio: 0.5,
	}
}

// Config carries every overridable parameter of report generation.
type Config struct {
	// DefaultPriority substitutes for domains absent from the priority
	// list. It lives here rather than in the formula code so callers can
	// reason about and change the neutral default without touching the
	// metrics core.
	DefaultPriority float64

	// Weights configure the actionability score.
	Weights schema.ActionWeights

	// Thresholds drive recommendation generation.
	Thresholds Thresholds
}

// DefaultConfig returns the documented defaults: neutral priority 0.5,
// standard action weights, standard thresholds.
func DefaultConfig() Config {
	return Config{
		DefaultPriority: metrics.DefaultPriority,
		Weights:         schema.DefaultActionWeights(),
		Thresholds:      DefaultThresholds(),
	}
}
