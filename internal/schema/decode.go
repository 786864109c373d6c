package schema

import (
	"encoding/json"
	"fmt"
)

// JSON decoding produces validated records or an aggregated
// ValidationError. A field that is absent from the document is a schema
// violation, which plain unmarshalling into value types cannot see; the
// decode shadows below use pointers so absence is distinguishable from a
// zero value.

type timeEntryJSON struct {
	Domain *string  `json:"domain"`
	Hours  *float64 `json:"hours"`
}

type domainPriorityJSON struct {
	Domain        *string  `json:"domain"`
	Priority      *float64 `json:"priority"`
	MaxDailyHours *float64 `json:"max_daily_hours"`
}

type goalJSON struct {
	ID                 *string  `json:"id"`
	Name               *string  `json:"name"`
	Domains            []string `json:"domains"`
	TargetHoursPerWeek *float64 `json:"target_hours_per_week"`
}

type actionLogJSON struct {
	Consumed   *int `json:"consumed"`
	Bookmarked *int `json:"bookmarked"`
	Shared     *int `json:"shared"`
	Applied    *int `json:"applied"`
}

// DecodeTimeEntries parses a JSON array of time entries and validates
// every element.
func DecodeTimeEntries(data []byte) ([]TimeEntry, error) {
	var raw []timeEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, decodeError("time_entries", err)
	}

	var errs ValidationError
	entries := make([]TimeEntry, 0, len(raw))
	for i, r := range raw {
		field := fmt.Sprintf("time_entries[%d]", i)
		var e TimeEntry
		if r.Domain == nil {
			errs.add(KindSchema, join(field, "domain"), "required field is missing")
		} else {
			e.Domain = *r.Domain
		}
		if r.Hours == nil {
			errs.add(KindSchema, join(field, "hours"), "required field is missing")
		} else {
			e.Hours = *r.Hours
		}
		e.validate(&errs, field)
		entries = append(entries, e)
	}
	if err := errs.orNil(); err != nil {
		return nil, err
	}
	return entries, nil
}

// DecodePriorities parses a JSON array of domain priorities, validating
// every element and rejecting duplicate domains.
func DecodePriorities(data []byte) ([]DomainPriority, error) {
	var raw []domainPriorityJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, decodeError("priorities", err)
	}

	var errs ValidationError
	priorities := make([]DomainPriority, 0, len(raw))
	for i, r := range raw {
		field := fmt.Sprintf("priorities[%d]", i)
		var p DomainPriority
		if r.Domain == nil {
			errs.add(KindSchema, join(field, "domain"), "required field is missing")
		} else {
			p.Domain = *r.Domain
		}
		if r.Priority == nil {
			errs.add(KindSchema, join(field, "priority"), "required field is missing")
		} else {
			p.Priority = *r.Priority
		}
		p.MaxDailyHours = r.MaxDailyHours
		priorities = append(priorities, p)
	}
	if err := errs.orNil(); err != nil {
		return nil, err
	}
	if err := ValidatePriorities(priorities); err != nil {
		return nil, err
	}
	return priorities, nil
}

// DecodeGoals parses a JSON array of goals, validating every element and
// rejecting duplicate ids.
func DecodeGoals(data []byte) ([]Goal, error) {
	var raw []goalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, decodeError("goals", err)
	}

	var errs ValidationError
	goals := make([]Goal, 0, len(raw))
	for i, r := range raw {
		field := fmt.Sprintf("goals[%d]", i)
		var g Goal
		if r.ID == nil {
			errs.add(KindSchema, join(field, "id"), "required field is missing")
		} else {
			g.ID = *r.ID
		}
		if r.Name == nil {
			errs.add(KindSchema, join(field, "name"), "required field is missing")
		} else {
			g.Name = *r.Name
		}
		g.Domains = r.Domains
		g.TargetHoursPerWeek = r.TargetHoursPerWeek
		goals = append(goals, g)
	}
	if err := errs.orNil(); err != nil {
		return nil, err
	}
	if err := ValidateGoals(goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// DecodeActionLog parses a single JSON action log. Only consumed is
// required; the action counts default to zero.
func DecodeActionLog(data []byte) (ActionLog, error) {
	var raw actionLogJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return ActionLog{}, decodeError("actions", err)
	}

	var errs ValidationError
	var log ActionLog
	if raw.Consumed == nil {
		errs.add(KindSchema, "actions.consumed", "required field is missing")
	} else {
		log.Consumed = *raw.Consumed
	}
	if raw.Bookmarked != nil {
		log.Bookmarked = *raw.Bookmarked
	}
	if raw.Shared != nil {
		log.Shared = *raw.Shared
	}
	if raw.Applied != nil {
		log.Applied = *raw.Applied
	}
	log.validate(&errs, "actions")
	if err := errs.orNil(); err != nil {
		return ActionLog{}, err
	}
	return log, nil
}

// decodeError wraps a JSON unmarshalling failure as a schema violation so
// malformed documents surface through the same error taxonomy as missing
// fields.
func decodeError(field string, err error) error {
	var errs ValidationError
	errs.add(KindSchema, field, "malformed JSON: %v", err)
	return &errs
}
