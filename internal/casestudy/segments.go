// Package casestudy ships built-in user segments for evaluating the
// metrics engine against realistic AI-assistant usage patterns, derived
// from published user research.
package casestudy

import (
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/schema"
)

// Segment is a slice of the user population with characteristic usage
// patterns, plus the share of the population it represents.
type Segment struct {
	Name        string
	Description string
	Entries     []schema.TimeEntry
	Priorities  []schema.DomainPriority
	Goals       []schema.Goal
	Actions     schema.ActionLog

	// PopulationShare is the fraction of the user base this segment
	// represents, used to weight the aggregate.
	PopulationShare float64
}

// Segments returns the three built-in segments in evaluation order.
func Segments() []Segment {
	return []Segment{
		knowledgeWorker(),
		student(),
		casualExplorer(),
	}
}

// knowledgeWorker models professionals using an AI assistant for
// workplace tasks: roughly 2.5h/week, dominated by drafting and
// summarizing, with high application rates for concrete tasks.
func knowledgeWorker() Segment {
	return Segment{
		Name:            "Knowledge Worker",
		Description:     "Professional using an AI assistant for workplace productivity tasks",
		PopulationShare: 0.34,
		Goals: []schema.Goal{
			{
				ID:                 "professional-productivity",
				Name:               "Professional Task Completion",
				Domains:            []string{"task_completion", "drafting", "code_assistance"},
				TargetHoursPerWeek: schema.Hours(2.5),
			},
			{
				ID:                 "learning",
				Name:               "Learning and Research",
				Domains:            []string{"research_synthesis", "concept_explanation"},
				TargetHoursPerWeek: schema.Hours(1.0),
			},
		},
		Entries: []schema.TimeEntry{
			{Domain: "drafting", Hours: 1.05},
			{Domain: "task_completion", Hours: 0.78},
			{Domain: "code_assistance", Hours: 0.27},
			{Domain: "research_synthesis", Hours: 0.45},
			{Domain: "concept_explanation", Hours: 0.20},
			{Domain: "off_task_exploration", Hours: 0.23},
		},
		Priorities: []schema.DomainPriority{
			{Domain: "task_completion", Priority: 1.0, MaxDailyHours: schema.Hours(1.0)},
			{Domain: "drafting", Priority: 0.9, MaxDailyHours: schema.Hours(1.5)},
			{Domain: "code_assistance", Priority: 0.95, MaxDailyHours: schema.Hours(1.0)},
			{Domain: "research_synthesis", Priority: 0.8, MaxDailyHours: schema.Hours(1.0)},
			{Domain: "concept_explanation", Priority: 0.75, MaxDailyHours: schema.Hours(0.5)},
			{Domain: "off_task_exploration", Priority: 0.2},
		},
		Actions: schema.ActionLog{
			Consumed:   100,
			Bookmarked: 45,
			Shared:     12,
			Applied:    30,
		},
	}
}

// student models learners: heaviest users, with the critical split
// between interactive tutoring (supports learning) and passive answer
// fetching (does not).
func student() Segment {
	return Segment{
		Name:            "Student",
		Description:     "Student using an AI assistant for learning and academic work",
		PopulationShare: 0.28,
		Goals: []schema.Goal{
			{
				ID:                 "deep-learning",
				Name:               "Build Genuine Understanding",
				Domains:            []string{"concept_explanation", "interactive_tutoring", "problem_solving"},
				TargetHoursPerWeek: schema.Hours(3.0),
			},
			{
				ID:                 "assignment-completion",
				Name:               "Complete Assignments",
				Domains:            []string{"drafting", "problem_solving"},
				TargetHoursPerWeek: schema.Hours(2.0),
			},
		},
		Entries: []schema.TimeEntry{
			{Domain: "drafting", Hours: 2.03},
			{Domain: "concept_explanation", Hours: 1.47},
			{Domain: "problem_solving", Hours: 1.09},
			{Domain: "passive_answer_fetching", Hours: 0.70},
			{Domain: "study_planning", Hours: 0.49},
			{Domain: "off_task_exploration", Hours: 0.22},
		},
		Priorities: []schema.DomainPriority{
			{Domain: "interactive_tutoring", Priority: 1.0, MaxDailyHours: schema.Hours(1.5)},
			{Domain: "concept_explanation", Priority: 0.9, MaxDailyHours: schema.Hours(1.5)},
			{Domain: "problem_solving", Priority: 0.85, MaxDailyHours: schema.Hours(1.0)},
			{Domain: "drafting", Priority: 0.6, MaxDailyHours: schema.Hours(1.0)},
			{Domain: "study_planning", Priority: 0.7, MaxDailyHours: schema.Hours(0.5)},
			{Domain: "passive_answer_fetching", Priority: 0.15},
			{Domain: "off_task_exploration", Priority: 0.1},
		},
		Actions: schema.ActionLog{
			Consumed:   100,
			Bookmarked: 60,
			Shared:     8,
			Applied:    35,
		},
	}
}

// casualExplorer models casual users: high engagement, low
// actionability, diffuse goal alignment. The pattern an
// engagement-optimized metric would celebrate.
func casualExplorer() Segment {
	return Segment{
		Name:            "Casual Explorer",
		Description:     "Casual user exploring an AI assistant without specific task objectives",
		PopulationShare: 0.38,
		Goals: []schema.Goal{
			{
				ID:                 "entertainment",
				Name:               "Entertainment and Curiosity",
				Domains:            []string{"creative_play", "trivia_exploration"},
				TargetHoursPerWeek: schema.Hours(1.0),
			},
			{
				ID:      "personal-decisions",
				Name:    "Personal Decision Support",
				Domains: []string{"personal_advice", "research_synthesis"},
			},
		},
		Entries: []schema.TimeEntry{
			{Domain: "creative_play", Hours: 1.2},
			{Domain: "trivia_exploration", Hours: 0.8},
			{Domain: "personal_advice", Hours: 0.9},
			{Domain: "off_task_exploration", Hours: 1.5},
			{Domain: "research_synthesis", Hours: 0.4},
			{Domain: "passive_answer_fetching", Hours: 0.7},
		},
		Priorities: []schema.DomainPriority{
			{Domain: "personal_advice", Priority: 0.7, MaxDailyHours: schema.Hours(0.5)},
			{Domain: "research_synthesis", Priority: 0.6, MaxDailyHours: schema.Hours(0.5)},
			{Domain: "creative_play", Priority: 0.5, MaxDailyHours: schema.Hours(0.5)},
			{Domain: "trivia_exploration", Priority: 0.4, MaxDailyHours: schema.Hours(0.3)},
			{Domain: "passive_answer_fetching", Priority: 0.2},
			{Domain: "off_task_exploration", Priority: 0.15},
		},
		Actions: schema.ActionLog{
			Consumed:   100,
			Bookmarked: 15,
			Shared:     20,
			Applied:    8,
		},
	}
}
