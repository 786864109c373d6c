// Package report renders a metrics report for human or machine readers.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meaningfulmetrics/meaningfulmetrics/internal/schema"
)

// Format specifies the rendering output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat maps a user-supplied string to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatMarkdown, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want text, markdown or json)", s)
}

// Render renders the report in the given format.
func Render(r *schema.MetricsReport, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return RenderJSON(r)
	case FormatMarkdown:
		return RenderMarkdown(r), nil
	case FormatText:
		return RenderText(r), nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

// RenderJSON marshals the report with its wire field names, suitable for
// downstream export.
func RenderJSON(r *schema.MetricsReport) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data) + "\n", nil
}

// RenderText renders the report as plain text.
func RenderText(r *schema.MetricsReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Metrics Report (%s)\n", r.Period)
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&sb, "Quality Time Score: %.2f\n", r.QualityTimeScore)
	fmt.Fprintf(&sb, "Raw Time:           %.1fh\n", r.RawTimeHours)
	fmt.Fprintf(&sb, "Goal Alignment:     %.1f%%\n", r.GoalAlignmentPercent)
	fmt.Fprintf(&sb, "Distraction:        %.1f%%\n", r.DistractionPercent)
	fmt.Fprintf(&sb, "Actionability:      %.3f\n\n", r.ActionabilityScore)

	if len(r.ByDomain) > 0 {
		sb.WriteString("BY DOMAIN\n")
		sb.WriteString(strings.Repeat("-", 20) + "\n")
		for _, d := range r.ByDomain {
			fmt.Fprintf(&sb, "  %-24s %5.1fh spent, %5.1fh counted x %.2f = %.2f\n",
				d.Domain, d.TimeSpent, d.EffectiveTime, d.Priority, d.Contribution)
		}
		sb.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 20) + "\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&sb, "  [%s/%s] %s: %s\n", rec.Kind, rec.Severity, rec.Domain, rec.Message)
		}
	}

	return sb.String()
}

// RenderMarkdown renders the report as markdown.
func RenderMarkdown(r *schema.MetricsReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Metrics Report (%s)\n\n", r.Period)

	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	fmt.Fprintf(&sb, "| Quality Time Score | %.2f |\n", r.QualityTimeScore)
	fmt.Fprintf(&sb, "| Raw Time | %.1fh |\n", r.RawTimeHours)
	fmt.Fprintf(&sb, "| Goal Alignment | %.1f%% |\n", r.GoalAlignmentPercent)
	fmt.Fprintf(&sb, "| Distraction | %.1f%% |\n", r.DistractionPercent)
	fmt.Fprintf(&sb, "| Actionability | %.3f |\n\n", r.ActionabilityScore)

	if len(r.ByDomain) > 0 {
		sb.WriteString("## By Domain\n\n")
		sb.WriteString("| Domain | Spent | Counted | Priority | Contribution |\n")
		sb.WriteString("|--------|-------|---------|----------|--------------|\n")
		for _, d := range r.ByDomain {
			fmt.Fprintf(&sb, "| %s | %.1fh | %.1fh | %.2f | %.2f |\n",
				d.Domain, d.TimeSpent, d.EffectiveTime, d.Priority, d.Contribution)
		}
		sb.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		sb.WriteString("## Recommendations\n\n")
		for _, rec := range r.Recommendations {
			marker := ""
			switch rec.Severity {
			case schema.SeverityHigh:
				marker = "**high**"
			case schema.SeverityMedium:
				marker = "medium"
			default:
				marker = "low"
			}
			fmt.Fprintf(&sb, "- %s (%s, %s): %s\n", marker, rec.Kind, rec.Domain, rec.Message)
		}
	}

	return sb.String()
}
