// Meaningful Metrics CLI - compute wellbeing metrics from declared
// time-tracking and activity data.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/meaningfulmetrics/meaningfulmetrics/internal/casestudy"
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/config"
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/logging"
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/report"
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/schema"
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/scoring"
)

var (
	configPath string
	verbose    bool

	version = "0.1.0"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mm",
		Short: "Meaningful Metrics - wellbeing metrics for your tracked time",
		Long: `Meaningful Metrics computes wellbeing-oriented metrics from
user-declared time-tracking and activity data:

  Quality Time Score   priority-weighted time with diminishing returns
  Goal Alignment       percentage of time on stated goals
  Distraction Ratio    percentage of time on non-goal activities
  Actionability Score  information-to-action conversion rate

and composes them into a report with heuristic recommendations.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.SetLevel(logging.DEBUG)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to mm.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(casestudyCmd())
	rootCmd.AddCommand(thresholdsCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintln(os.Stderr, "input rejected:")
			for _, v := range ve.Violations {
				fmt.Fprintf(os.Stderr, "  [%s] %s\n", v.Kind, v.Error())
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// reportCmd generates a metrics report from JSON input files.
func reportCmd() *cobra.Command {
	var (
		entriesPath    string
		prioritiesPath string
		goalsPath      string
		actionsPath    string
		period         string
		format         string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a metrics report from JSON input files",
		Long: `Reads time entries, domain priorities, goals and an optional action
log from JSON files, validates them, and prints the composed report.

Input shapes:
  entries:    [{"domain": "learning", "hours": 2.0}, ...]
  priorities: [{"domain": "learning", "priority": 1.0, "max_daily_hours": 4.0}, ...]
  goals:      [{"id": "learn", "name": "Learn", "domains": ["learning"]}, ...]
  actions:    {"consumed": 75, "bookmarked": 10, "shared": 5, "applied": 3}`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if period == "" {
				period = cfg.Period
			}
			if format == "" {
				format = cfg.Format
			}
			outFormat, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			in := scoring.Input{Period: schema.Period(period)}

			in.Entries, err = decodeFile(entriesPath, schema.DecodeTimeEntries)
			if err != nil {
				return err
			}
			if prioritiesPath != "" {
				in.Priorities, err = decodeFile(prioritiesPath, schema.DecodePriorities)
				if err != nil {
					return err
				}
			}
			if goalsPath != "" {
				in.Goals, err = decodeFile(goalsPath, schema.DecodeGoals)
				if err != nil {
					return err
				}
			}
			if actionsPath != "" {
				data, err := os.ReadFile(actionsPath)
				if err != nil {
					return fmt.Errorf("read %s: %w", actionsPath, err)
				}
				log, err := schema.DecodeActionLog(data)
				if err != nil {
					return err
				}
				in.Actions = &log
			}

			logging.WithField("entries", len(in.Entries)).
				Debug("generating %s report", period)

			rep, err := scoring.GenerateReport(in, cfg.Scoring())
			if err != nil {
				return err
			}

			out, err := report.Render(rep, outFormat)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&entriesPath, "entries", "", "JSON file of time entries (required)")
	cmd.Flags().StringVar(&prioritiesPath, "priorities", "", "JSON file of domain priorities")
	cmd.Flags().StringVar(&goalsPath, "goals", "", "JSON file of goals")
	cmd.Flags().StringVar(&actionsPath, "actions", "", "JSON file with the action log")
	cmd.Flags().StringVar(&period, "period", "", "reporting period: daily | weekly")
	cmd.Flags().StringVar(&format, "format", "", "output format: text | markdown | json")
	cmd.MarkFlagRequired("entries")

	return cmd
}

// casestudyCmd runs the built-in user-segment case study.
func casestudyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "casestudy",
		Short: "Evaluate the built-in AI-assistant user segments",
		Long: `Runs the metrics engine over three built-in user segments
(Knowledge Worker, Student, Casual Explorer) modeled on published
usage research, and prints per-segment reports plus a
population-weighted aggregate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			results, agg, err := casestudy.Run(cfg.Scoring())
			if err != nil {
				return err
			}
			fmt.Print(casestudy.RenderText(results, agg))
			return nil
		},
	}
}

// thresholdsCmd prints the effective configuration.
func thresholdsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "thresholds",
		Short: "Print the effective configuration (defaults merged with --config)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mm %s\n", version)
		},
	}
}

// decodeFile reads a JSON file and decodes it with the given schema
// decoder, keeping any ValidationError intact for the caller.
func decodeFile[T any](path string, decode func([]byte) ([]T, error)) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	out, err := decode(data)
	if err != nil {
		return nil, err
	}
	return out, nil
}
