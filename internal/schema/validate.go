package schema

import "fmt"

// Validation never clamps and never performs I/O. Out-of-range values are
// rejected outright so that the metrics core can assume every record it
// receives is well formed.

// Validate checks a single time entry.
func (e TimeEntry) Validate() error {
	var errs ValidationError
	e.validate(&errs, "")
	return errs.orNil()
}

func (e TimeEntry) validate(errs *ValidationError, field string) {
	if e.Domain == "" {
		errs.add(KindSchema, join(field, "domain"), "domain is required")
	}
	if e.Hours < 0 {
		errs.add(KindRange, join(field, "hours"), "hours must be non-negative, got %v", e.Hours)
	}
}

// Validate checks a single domain priority.
func (p DomainPriority) Validate() error {
	var errs ValidationError
	p.validate(&errs, "")
	return errs.orNil()
}

func (p DomainPriority) validate(errs *ValidationError, field string) {
	if p.Domain == "" {
		errs.add(KindSchema, join(field, "domain"), "domain is required")
	}
	if p.Priority < 0 || p.Priority > 1 {
		errs.add(KindRange, join(field, "priority"), "priority must be between 0.0 and 1.0, got %v", p.Priority)
	}
	if p.MaxDailyHours != nil && *p.MaxDailyHours < 0 {
		errs.add(KindRange, join(field, "max_daily_hours"), "max_daily_hours must be non-negative, got %v", *p.MaxDailyHours)
	}
}

// Validate checks a single goal.
func (g Goal) Validate() error {
	var errs ValidationError
	g.validate(&errs, "")
	return errs.orNil()
}

func (g Goal) validate(errs *ValidationError, field string) {
	if g.ID == "" {
		errs.add(KindSchema, join(field, "id"), "id is required")
	}
	if g.Name == "" {
		errs.add(KindSchema, join(field, "name"), "name is required")
	}
	for i, d := range g.Domains {
		if d == "" {
			errs.add(KindSchema, join(field, fmt.Sprintf("domains[%d]", i)), "domain name must not be empty")
		}
	}
	if g.TargetHoursPerWeek != nil && *g.TargetHoursPerWeek < 0 {
		errs.add(KindRange, join(field, "target_hours_per_week"), "target_hours_per_week must be non-negative, got %v", *g.TargetHoursPerWeek)
	}
}

// Validate checks an action log.
func (l ActionLog) Validate() error {
	var errs ValidationError
	l.validate(&errs, "")
	return errs.orNil()
}

func (l ActionLog) validate(errs *ValidationError, field string) {
	counts := []struct {
		name  string
		value int
	}{
		{"consumed", l.Consumed},
		{"bookmarked", l.Bookmarked},
		{"shared", l.Shared},
		{"applied", l.Applied},
	}
	for _, c := range counts {
		if c.value < 0 {
			errs.add(KindRange, join(field, c.name), "%s must be non-negative, got %d", c.name, c.value)
		}
	}
}

// Validate checks a set of action weights.
func (w ActionWeights) Validate() error {
	var errs ValidationError
	w.validate(&errs, "")
	return errs.orNil()
}

func (w ActionWeights) validate(errs *ValidationError, field string) {
	weights := []struct {
		name  string
		value float64
	}{
		{"bookmarked_weight", w.Bookmarked},
		{"shared_weight", w.Shared},
		{"applied_weight", w.Applied},
	}
	for _, c := range weights {
		if c.value < 0 {
			errs.add(KindRange, join(field, c.name), "%s must be non-negative, got %v", c.name, c.value)
		}
	}
}

// Validate checks that the period is one of the recognized values.
func (p Period) Validate() error {
	switch p {
	case PeriodDaily, PeriodWeekly:
		return nil
	}
	var errs ValidationError
	errs.add(KindSchema, "period", "period must be %q or %q, got %q", PeriodDaily, PeriodWeekly, string(p))
	return errs.orNil()
}

// ValidateTimeEntries checks a batch of time entries, collecting every
// violation rather than stopping at the first.
func ValidateTimeEntries(entries []TimeEntry) error {
	var errs ValidationError
	for i, e := range entries {
		e.validate(&errs, fmt.Sprintf("time_entries[%d]", i))
	}
	return errs.orNil()
}

// ValidatePriorities checks a batch of domain priorities. The domain is a
// unique key within one call; a repeated domain is a conflict.
func ValidatePriorities(priorities []DomainPriority) error {
	var errs ValidationError
	seen := make(map[string]int, len(priorities))
	for i, p := range priorities {
		field := fmt.Sprintf("priorities[%d]", i)
		p.validate(&errs, field)
		if p.Domain == "" {
			continue
		}
		if first, ok := seen[p.Domain]; ok {
			errs.add(KindConflict, join(field, "domain"),
				"domain %q already declared at priorities[%d]", p.Domain, first)
			continue
		}
		seen[p.Domain] = i
	}
	return errs.orNil()
}

// ValidateGoals checks a batch of goals. Goal ids must be unique within
// one call; a repeated id is a conflict.
func ValidateGoals(goals []Goal) error {
	var errs ValidationError
	seen := make(map[string]int, len(goals))
	for i, g := range goals {
		field := fmt.Sprintf("goals[%d]", i)
		g.validate(&errs, field)
		if g.ID == "" {
			continue
		}
		if first, ok := seen[g.ID]; ok {
			errs.add(KindConflict, join(field, "id"),
				"goal id %q already declared at goals[%d]", g.ID, first)
			continue
		}
		seen[g.ID] = i
	}
	return errs.orNil()
}

// ValidateInputs checks one full report computation batch and returns a
// single error covering every violation across all inputs. This is the
// only check a report generation performs; the metrics core itself never
// re-validates.
func ValidateInputs(entries []TimeEntry, priorities []DomainPriority, goals []Goal, actions *ActionLog, weights ActionWeights, period Period) error {
	var errs ValidationError
	errs.merge("", ValidateTimeEntries(entries))
	errs.merge("", ValidatePriorities(priorities))
	errs.merge("", ValidateGoals(goals))
	if actions != nil {
		errs.merge("actions", actions.Validate())
	}
	errs.merge("weights", weights.Validate())
	errs.merge("", period.Validate())
	return errs.orNil()
}

func join(field, name string) string {
	if field == "" {
		return name
	}
	return field + "." + name
}
