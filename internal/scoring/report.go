package scoring

import (
	"fmt"

	"github.com/meaningfulmetrics/meaningfulmetrics/internal/metrics"
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/schema"
)

// Input is one full report computation batch. Actions is optional; when
// nil the actionability score is 0 and no actionability data enters the
// report.
type Input struct {
	Entries    []schema.TimeEntry
	Priorities []schema.DomainPriority
	Goals      []schema.Goal
	Actions    *schema.ActionLog
	Period     schema.Period
}

// GenerateReport validates the whole batch, then composes every metric
// into one report. Validation failure is the only failure mode: it
// surfaces as a single aggregated error before any metric is computed,
// and a failed call leaves nothing half-built. The input collections are
// never mutated, so callers may reuse them across calls.
func GenerateReport(in Input, cfg Config) (*schema.MetricsReport, error) {
	if err := schema.ValidateInputs(in.Entries, in.Priorities, in.Goals, in.Actions, cfg.Weights, in.Period); err != nil {
		return nil, fmt.Errorf("validate report input: %w", err)
	}

	qts := metrics.QualityTimeScore(in.Entries, in.Priorities, cfg.DefaultPriority)
	alignment := metrics.GoalAlignment(in.Entries, in.Goals)
	distraction := metrics.DistractionRatio(in.Entries, in.Goals)

	actionability := 0.0
	if in.Actions != nil {
		actionability = metrics.ActionabilityFromLog(*in.Actions, cfg.Weights)
	}

	raw := 0.0
	for _, e := range in.Entries {
		raw += e.Hours
	}

	return &schema.MetricsReport{
		Period:               in.Period,
		QualityTimeScore:     qts,
		RawTimeHours:         raw,
		GoalAlignmentPercent: alignment,
		DistractionPercent:   distraction,
		ActionabilityScore:   actionability,
		ByDomain:             DomainContributions(in.Entries, in.Priorities, cfg.DefaultPriority),
		Recommendations:      Recommendations(in.Entries, in.Priorities, in.Goals, alignment, cfg),
	}, nil
}
