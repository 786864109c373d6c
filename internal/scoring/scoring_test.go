package scoring

import (
	"errors"
	"math"
	"testing"

	"github.com/meaningfulmetrics/meaningfulmetrics/internal/schema"
)

func almostEqual(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func findRec(recs []schema.Recommendation, kind schema.RecommendationKind, domain string) *schema.Recommendation {
	for i := range recs {
		if recs[i].Kind == kind && recs[i].Domain == domain {
			return &recs[i]
		}
	}
	return nil
}

func TestDomainContributions(t *testing.T) {
	entries := []schema.TimeEntry{
		{Domain: "learning", Hours: 3},
		{Domain: "work", Hours: 5},
	}
	priorities := []schema.DomainPriority{
		{Domain: "learning", Priority: 1.0, MaxDailyHours: schema.Hours(2)},
		{Domain: "work", Priority: 0.8},
	}

	got := DomainContributions(entries, priorities, 0.5)
	if len(got) != 2 {
		t.Fatalf("got %d domains, want 2", len(got))
	}

	learning := got[0]
	if learning.Domain != "learning" {
		t.Fatalf("expected first-occurrence order, got %q first", learning.Domain)
	}
	almostEqual(t, learning.TimeSpent, 3)
	almostEqual(t, learning.EffectiveTime, 2)
	almostEqual(t, learning.Priority, 1.0)
	almostEqual(t, learning.Contribution, 2.0)

	work := got[1]
	almostEqual(t, work.EffectiveTime, 5)
	almostEqual(t, work.Contribution, 4.0)
}

func TestDomainContributionsMergesDuplicates(t *testing.T) {
	entries := []schema.TimeEntry{
		{Domain: "learning", Hours: 1.5},
		{Domain: "news", Hours: 1},
		{Domain: "learning", Hours: 1.5},
	}
	priorities := []schema.DomainPriority{
		{Domain: "learning", Priority: 1.0, MaxDailyHours: schema.Hours(2)},
	}

	got := DomainContributions(entries, priorities, 0.5)
	if len(got) != 2 {
		t.Fatalf("duplicates not merged: %+v", got)
	}
	if got[0].Domain != "learning" || got[1].Domain != "news" {
		t.Fatalf("order not first-occurrence: %+v", got)
	}
	almostEqual(t, got[0].TimeSpent, 3)
	almostEqual(t, got[0].EffectiveTime, 2) // cap applies to the merged total
}

func TestDomainContributionsDefaultPriority(t *testing.T) {
	entries := []schema.TimeEntry{{Domain: "unlisted", Hours: 4}}

	got := DomainContributions(entries, nil, 0.5)
	almostEqual(t, got[0].Priority, 0.5)
	almostEqual(t, got[0].Contribution, 2.0)
}

func TestRecommendationsLowAlignment(t *testing.T) {
	entries := []schema.TimeEntry{
		{Domain: "learning", Hours: 1},
		{Domain: "social_media", Hours: 9},
	}
	goals := []schema.Goal{{ID: "learn", Name: "Learn", Domains: []string{"learning"}}}

	recs := Recommendations(entries, nil, goals, 10.0, DefaultConfig())
	rec := findRec(recs, schema.RecIncrease, "learning")
	if rec == nil {
		t.Fatalf("expected an increase recommendation, got %+v", recs)
	}
	if rec.Severity != schema.SeverityHigh {
		t.Fatalf("got severity %s, want high", rec.Severity)
	}
	if findRec(recs, schema.RecMaintain, "overall") != nil {
		t.Fatalf("maintain must not fire at 10%% alignment")
	}
}

func TestRecommendationsLowAlignmentNeedsGoalDomains(t *testing.T) {
	entries := []schema.TimeEntry{{Domain: "social_media", Hours: 9}}

	recs := Recommendations(entries, nil, nil, 0.0, DefaultConfig())
	for _, r := range recs {
		if r.Kind == schema.RecIncrease {
			t.Fatalf("increase fired with no goal domains: %+v", r)
		}
	}
}

func TestRecommendationsMaintain(t *testing.T) {
	entries := []schema.TimeEntry{{Domain: "learning", Hours: 5}}
	goals := []schema.Goal{{ID: "learn", Name: "Learn", Domains: []string{"learning"}}}

	recs := Recommendations(entries, nil, goals, 80.0, DefaultConfig())
	rec := findRec(recs, schema.RecMaintain, "overall")
	if rec == nil {
		t.Fatalf("expected a maintain recommendation, got %+v", recs)
	}
	if rec.Severity != schema.SeverityLow {
		t.Fatalf("got severity %s, want low", rec.Severity)
	}
}

func TestRecommendationsLowPriorityDrain(t *testing.T) {
	entries := []schema.TimeEntry{
		{Domain: "social_media", Hours: 1.5},
		{Domain: "learning", Hours: 3},
	}
	priorities := []schema.DomainPriority{
		{Domain: "social_media", Priority: 0.2},
		{Domain: "learning", Priority: 1.0},
	}

	recs := Recommendations(entries, priorities, nil, 0, DefaultConfig())
	rec := findRec(recs, schema.RecDecrease, "social_media")
	if rec == nil {
		t.Fatalf("expected a decrease for social_media, got %+v", recs)
	}
	if rec.Severity != schema.SeverityMedium {
		t.Fatalf("got severity %s, want medium", rec.Severity)
	}
	if findRec(recs, schema.RecDecrease, "learning") != nil {
		t.Fatalf("high-priority domain must not be flagged")
	}
}

func TestRecommendationsLowPriorityRespectsThreshold(t *testing.T) {
	entries := []schema.TimeEntry{{Domain: "social_media", Hours: 0.9}}
	priorities := []schema.DomainPriority{{Domain: "social_media", Priority: 0.2}}

	// 0.9h is under the default 1h threshold.
	recs := Recommendations(entries, priorities, nil, 0, DefaultConfig())
	if findRec(recs, schema.RecDecrease, "social_media") != nil {
		t.Fatalf("decrease fired under the hour threshold: %+v", recs)
	}

	// Lowering the threshold makes it fire.
	cfg := DefaultConfig()
	cfg.Thresholds.LowPriorityHours = 0.5
	recs = Recommendations(entries, priorities, nil, 0, cfg)
	if findRec(recs, schema.RecDecrease, "social_media") == nil {
		t.Fatalf("decrease did not fire with lowered threshold: %+v", recs)
	}
}

func TestRecommendationsCapExceeded(t *testing.T) {
	entries := []schema.TimeEntry{{Domain: "gaming", Hours: 5}}
	priorities := []schema.DomainPriority{
		{Domain: "gaming", Priority: 0.6, MaxDailyHours: schema.Hours(2)},
	}

	recs := Recommendations(entries, priorities, nil, 0, DefaultConfig())
	rec := findRec(recs, schema.RecDecrease, "gaming")
	if rec == nil {
		t.Fatalf("expected a cap-exceeded decrease, got %+v", recs)
	}
	if rec.Severity != schema.SeverityMedium {
		t.Fatalf("got severity %s, want medium", rec.Severity)
	}
}

func TestRecommendationsGoalBehindTarget(t *testing.T) {
	entries := []schema.TimeEntry{{Domain: "spanish", Hours: 1}}
	goals := []schema.Goal{
		{
			ID:                 "learn-spanish",
			Name:               "Learn Spanish",
			Domains:            []string{"spanish"},
			TargetHoursPerWeek: schema.Hours(7),
		},
	}

	recs := Recommendations(entries, nil, goals, 100.0, DefaultConfig())
	rec := findRec(recs, schema.RecIncrease, "spanish")
	if rec == nil {
		t.Fatalf("expected a behind-target increase, got %+v", recs)
	}
	if rec.Severity != schema.SeverityHigh {
		t.Fatalf("got severity %s, want high", rec.Severity)
	}
}

func TestRecommendationsGoalOnTarget(t *testing.T) {
	entries := []schema.TimeEntry{{Domain: "spanish", Hours: 6}}
	goals := []schema.Goal{
		{
			ID:                 "learn-spanish",
			Name:               "Learn Spanish",
			Domains:            []string{"spanish"},
			TargetHoursPerWeek: schema.Hours(7),
		},
	}

	recs := Recommendations(entries, nil, goals, 100.0, DefaultConfig())
	if findRec(recs, schema.RecIncrease, "spanish") != nil {
		t.Fatalf("behind-target fired at 6h of a 7h target: %+v", recs)
	}
}

func TestGenerateReport(t *testing.T) {
	in := Input{
		Entries: []schema.TimeEntry{
			{Domain: "learning", Hours: 3},
			{Domain: "work", Hours: 5},
			{Domain: "social_media", Hours: 2},
			{Domain: "news", Hours: 1},
		},
		Priorities: []schema.DomainPriority{
			{Domain: "learning", Priority: 1.0, MaxDailyHours: schema.Hours(4)},
			{Domain: "work", Priority: 0.8, MaxDailyHours: schema.Hours(8)},
			{Domain: "social_media", Priority: 0.2, MaxDailyHours: schema.Hours(1)},
			{Domain: "news", Priority: 0.5, MaxDailyHours: schema.Hours(1)},
		},
		Goals: []schema.Goal{
			{ID: "learn", Name: "Learn", Domains: []string{"learning"}},
			{ID: "career", Name: "Career", Domains: []string{"work"}},
		},
		Actions: &schema.ActionLog{Consumed: 75, Bookmarked: 10, Shared: 5, Applied: 3},
		Period:  schema.PeriodDaily,
	}

	rep, err := GenerateReport(in, DefaultConfig())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if rep.Period != schema.PeriodDaily {
		t.Fatalf("got period %s, want daily", rep.Period)
	}
	almostEqual(t, rep.QualityTimeScore, 7.7)
	almostEqual(t, rep.RawTimeHours, 11)
	almostEqual(t, rep.GoalAlignmentPercent, 8.0/11*100)
	almostEqual(t, rep.GoalAlignmentPercent+rep.DistractionPercent, 100)
	almostEqual(t, rep.ActionabilityScore, 8.5/75)

	if len(rep.ByDomain) != 4 {
		t.Fatalf("got %d domains, want 4", len(rep.ByDomain))
	}
	sum := 0.0
	for _, d := range rep.ByDomain {
		sum += d.Contribution
	}
	almostEqual(t, sum, rep.QualityTimeScore)
}

func TestGenerateReportNoActions(t *testing.T) {
	in := Input{
		Entries: []schema.TimeEntry{{Domain: "learning", Hours: 2}},
		Goals:   []schema.Goal{{ID: "learn", Name: "Learn", Domains: []string{"learning"}}},
		Period:  schema.PeriodWeekly,
	}

	rep, err := GenerateReport(in, DefaultConfig())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	almostEqual(t, rep.ActionabilityScore, 0)
	almostEqual(t, rep.GoalAlignmentPercent, 100)
}

func TestGenerateReportZeroHours(t *testing.T) {
	in := Input{
		Entries: []schema.TimeEntry{{Domain: "learning", Hours: 0}},
		Goals:   []schema.Goal{{ID: "learn", Name: "Learn", Domains: []string{"learning"}}},
		Period:  schema.PeriodDaily,
	}

	rep, err := GenerateReport(in, DefaultConfig())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	almostEqual(t, rep.QualityTimeScore, 0)
	almostEqual(t, rep.GoalAlignmentPercent, 0)
	almostEqual(t, rep.DistractionPercent, 0)
	almostEqual(t, rep.ActionabilityScore, 0)
}

func TestGenerateReportRejectsInvalidInput(t *testing.T) {
	in := Input{
		Entries:    []schema.TimeEntry{{Domain: "learning", Hours: -2}},
		Priorities: []schema.DomainPriority{{Domain: "learning", Priority: 1.5}},
		Period:     schema.PeriodDaily,
	}

	_, err := GenerateReport(in, DefaultConfig())
	if err == nil {
		t.Fatal("invalid input accepted")
	}
	if !errors.Is(err, schema.ErrRange) {
		t.Fatalf("got %v, want range error", err)
	}

	// Every violation is reported at once, not just the first.
	var ve *schema.ValidationError
	if !errors.As(err, &ve) || len(ve.Violations) != 2 {
		t.Fatalf("expected 2 aggregated violations, got %v", err)
	}
}

func TestGenerateReportDoesNotMutateInputs(t *testing.T) {
	entries := []schema.TimeEntry{
		{Domain: "learning", Hours: 3},
		{Domain: "learning", Hours: 2},
	}
	in := Input{
		Entries: entries,
		Period:  schema.PeriodDaily,
	}

	first, err := GenerateReport(in, DefaultConfig())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := GenerateReport(in, DefaultConfig())
	if err != nil {
		t.Fatalf("generate again: %v", err)
	}
	almostEqual(t, first.QualityTimeScore, second.QualityTimeScore)
	if entries[0].Hours != 3 || entries[1].Hours != 2 {
		t.Fatalf("entries mutated: %+v", entries)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	almostEqual(t, cfg.DefaultPriority, 0.5)
	almostEqual(t, cfg.Thresholds.MaintainAlignment, 50)
	almostEqual(t, cfg.Thresholds.LowAlignment, 30)
	almostEqual(t, cfg.Thresholds.LowPriority, 0.3)
	almostEqual(t, cfg.Thresholds.LowPriorityHours, 1.0)
	almostEqual(t, cfg.Thresholds.TargetShortfallRatio, 0.5)
	almostEqual(t, cfg.Weights.Applied, 1.0)
}
