package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the three failure classes. Callers can test a
// validation failure with errors.Is against any of these.
var (
	ErrSchema   = errors.New("missing or malformed field")
	ErrRange    = errors.New("value out of range")
	ErrConflict = errors.New("duplicate key")
)

// ErrKind classifies a single violated constraint.
type ErrKind string

const (
	KindSchema   ErrKind = "schema"
	KindRange    ErrKind = "range"
	KindConflict ErrKind = "conflict"
)

func (k ErrKind) sentinel() error {
	switch k {
	case KindRange:
		return ErrRange
	case KindConflict:
		return ErrConflict
	default:
		return ErrSchema
	}
}

// Violation is one failed constraint on one field.
type Violation struct {
	Kind    ErrKind `json:"kind"`
	Field   string  `json:"field"`
	Message string  `json:"message"`
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Unwrap maps the violation to its sentinel so errors.Is works on
// individual violations too.
func (v Violation) Unwrap() error {
	return v.Kind.sentinel()
}

// ValidationError aggregates every violated constraint found in one batch.
// Validators never stop at the first problem; the caller sees the full
// list at once.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "invalid input: " + e.Violations[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid input (%d problems):", len(e.Violations))
	for _, v := range e.Violations {
		sb.WriteString("\n  - ")
		sb.WriteString(v.Error())
	}
	return sb.String()
}

// Is reports whether any violation belongs to the class of target.
func (e *ValidationError) Is(target error) bool {
	for _, v := range e.Violations {
		if v.Kind.sentinel() == target {
			return true
		}
	}
	return false
}

// Has reports whether any violation has the given kind.
func (e *ValidationError) Has(kind ErrKind) bool {
	for _, v := range e.Violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(kind ErrKind, field, format string, args ...interface{}) {
	e.Violations = append(e.Violations, Violation{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// merge appends the violations of err (if it is a ValidationError) under
// the given field prefix.
func (e *ValidationError) merge(prefix string, err error) {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return
	}
	for _, v := range ve.Violations {
		field := v.Field
		if prefix != "" {
			if field == "" {
				field = prefix
			} else {
				field = prefix + "." + field
			}
		}
		e.Violations = append(e.Violations, Violation{Kind: v.Kind, Field: field, Message: v.Message})
	}
}

// orNil returns the error only when at least one violation was recorded.
func (e *ValidationError) orNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}
