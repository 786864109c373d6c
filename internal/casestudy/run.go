package casestudy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/meaningfulmetrics/meaningfulmetrics/internal/schema"
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/scoring"
)

// Result is the evaluation outcome for one segment.
type Result struct {
	Segment Segment
	Report  *schema.MetricsReport
}

// Aggregate is the population-weighted view across every segment.
type Aggregate struct {
	QualityTimeScore     float64
	GoalAlignmentPercent float64
	DistractionPercent   float64
	ActionabilityScore   float64
}

// Run evaluates every built-in segment with the given configuration and
// returns per-segment results plus the weighted aggregate. Segments are
// evaluated as weekly reports, matching the research periods the usage
// numbers were drawn from.
func Run(cfg scoring.Config) ([]Result, Aggregate, error) {
	segments := Segments()
	results := make([]Result, 0, len(segments))

	for _, seg := range segments {
		actions := seg.Actions
		rep, err := scoring.GenerateReport(scoring.Input{
			Entries:    seg.Entries,
			Priorities: seg.Priorities,
			Goals:      seg.Goals,
			Actions:    &actions,
			Period:     schema.PeriodWeekly,
		}, cfg)
		if err != nil {
			return nil, Aggregate{}, fmt.Errorf("evaluate segment %s: %w", seg.Name, err)
		}
		results = append(results, Result{Segment: seg, Report: rep})
	}

	return results, aggregate(results), nil
}

// aggregate weights each segment's metrics by its population share.
func aggregate(results []Result) Aggregate {
	var agg Aggregate
	total := 0.0
	for _, r := range results {
		w := r.Segment.PopulationShare
		total += w
		agg.QualityTimeScore += r.Report.QualityTimeScore * w
		agg.GoalAlignmentPercent += r.Report.GoalAlignmentPercent * w
		agg.DistractionPercent += r.Report.DistractionPercent * w
		agg.ActionabilityScore += r.Report.ActionabilityScore * w
	}
	if total == 0 {
		return Aggregate{}
	}
	agg.QualityTimeScore /= total
	agg.GoalAlignmentPercent /= total
	agg.DistractionPercent /= total
	agg.ActionabilityScore /= total
	return agg
}

// Rating maps a population goal alignment percentage to a qualitative
// rating with a one-line interpretation.
func (a Aggregate) Rating() (string, string) {
	switch {
	case a.GoalAlignmentPercent >= 60:
		return "STRONG", "Users are spending most AI time on their declared objectives."
	case a.GoalAlignmentPercent >= 40:
		return "MODERATE", "Meaningful use co-exists with significant off-goal time."
	default:
		return "WEAK", "Most AI interaction time does not advance user goals."
	}
}

// RenderText formats the full study output for the terminal.
func RenderText(results []Result, agg Aggregate) string {
	var sb strings.Builder

	for _, r := range results {
		seg := r.Segment
		rep := r.Report

		sb.WriteString(strings.Repeat("=", 60) + "\n")
		fmt.Fprintf(&sb, "SEGMENT: %s\n", strings.ToUpper(seg.Name))
		fmt.Fprintf(&sb, "  %s\n", seg.Description)
		fmt.Fprintf(&sb, "  Population share: %.0f%%\n", seg.PopulationShare*100)
		sb.WriteString(strings.Repeat("=", 60) + "\n\n")

		sb.WriteString("Core Metrics:\n")
		fmt.Fprintf(&sb, "  Quality Time Score:   %.2f\n", rep.QualityTimeScore)
		fmt.Fprintf(&sb, "  Goal Alignment:       %.1f%%\n", rep.GoalAlignmentPercent)
		fmt.Fprintf(&sb, "  Distraction Ratio:    %.1f%%\n", rep.DistractionPercent)
		fmt.Fprintf(&sb, "  Actionability Score:  %.3f\n", rep.ActionabilityScore)

		sb.WriteString("\nDomain Breakdown:\n")
		byContribution := append([]schema.DomainMetrics(nil), rep.ByDomain...)
		sort.SliceStable(byContribution, func(i, j int) bool {
			return byContribution[i].Contribution > byContribution[j].Contribution
		})
		for _, dm := range byContribution {
			bar := strings.Repeat("#", int(dm.Contribution*10))
			fmt.Fprintf(&sb, "  %-30s %-15s (%.1fh -> %.2f QTS)\n",
				dm.Domain, bar, dm.TimeSpent, dm.Contribution)
		}

		if len(rep.Recommendations) > 0 {
			sb.WriteString("\nRecommendations:\n")
			for _, rec := range rep.Recommendations {
				marker := "i"
				switch rec.Severity {
				case schema.SeverityHigh:
					marker = "!!!"
				case schema.SeverityMedium:
					marker = "!!"
				}
				fmt.Fprintf(&sb, "  [%s] %s\n", marker, rec.Message)
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString("POPULATION-WEIGHTED AGGREGATE (ALL SEGMENTS)\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")
	fmt.Fprintf(&sb, "  Quality Time Score:   %.2f\n", agg.QualityTimeScore)
	fmt.Fprintf(&sb, "  Goal Alignment:       %.1f%%\n", agg.GoalAlignmentPercent)
	fmt.Fprintf(&sb, "  Distraction Ratio:    %.1f%%\n", agg.DistractionPercent)
	fmt.Fprintf(&sb, "  Actionability Score:  %.3f\n", agg.ActionabilityScore)

	rating, context := agg.Rating()
	sb.WriteString("\nInterpretation:\n")
	fmt.Fprintf(&sb, "  Goal Alignment Rating: %s\n", rating)
	fmt.Fprintf(&sb, "  %s\n", context)

	return sb.String()
}
