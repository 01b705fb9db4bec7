// Package validation implements the input validation pipelines used by the
// domain services. A pipeline is an ordered list of named checks; each check
// receives a field and either passes silently or fails with a descriptive
// reason. The first failure short-circuits the rest of the pipeline.
package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is a single raw input value passing through a pipeline.
type Field struct {
	// Name is the canonical key checks match on (e.g. "age").
	Name string
	// Label is the human-readable name used in failure messages.
	Label string
	// Value is the raw input.
	Value string
	// Optional fields skip the non-empty check and any check that only
	// applies to non-blank values.
	Optional bool
}

// CheckFunc validates a single field. A nil return means the check passed
// or did not apply to this field.
type CheckFunc func(f Field) error

// Check is a named validation step.
type Check struct {
	Name  string
	Apply CheckFunc
}

// Pipeline is an ordered list of checks. Pipelines hold no state beyond
// their check list, so callers can recompose subsets freely.
type Pipeline struct {
	name   string
	checks []Check
}

// NewPipeline builds a pipeline from an ordered check list.
func NewPipeline(name string, checks ...Check) Pipeline {
	return Pipeline{name: name, checks: checks}
}

// Name returns the pipeline name.
func (p Pipeline) Name() string {
	return p.name
}

// Checks returns the ordered check list, for callers that want to run a
// subset through NewPipeline.
func (p Pipeline) Checks() []Check {
	return p.checks
}

// Run passes each field through every check in order and returns the first
// failure. Fields are validated in the order given.
func (p Pipeline) Run(fields ...Field) error {
	for _, f := range fields {
		for _, c := range p.checks {
			if err := c.Apply(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// NonEmpty fails when a required field is blank after trimming.
func NonEmpty() Check {
	return Check{
		Name: "non-empty",
		Apply: func(f Field) error {
			if f.Optional {
				return nil
			}
			if strings.TrimSpace(f.Value) == "" {
				return fmt.Errorf("%s cannot be empty", f.Label)
			}
			return nil
		},
	}
}

// AgeRange fails when the age field is not an integer in [1,150].
func AgeRange() Check {
	return Check{
		Name: "age-range",
		Apply: func(f Field) error {
			if !strings.EqualFold(f.Name, "age") {
				return nil
			}
			age, err := strconv.Atoi(strings.TrimSpace(f.Value))
			if err != nil {
				return fmt.Errorf("Age must be a valid number")
			}
			if age < AgeMin || age > AgeMax {
				return fmt.Errorf("Age must be between %d and %d", AgeMin, AgeMax)
			}
			return nil
		},
	}
}

// AmountPositive fails when the amount field is not a strictly positive
// decimal.
func AmountPositive() Check {
	return Check{
		Name: "amount-positive",
		Apply: func(f Field) error {
			if !strings.EqualFold(f.Name, "amount") {
				return nil
			}
			amount, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
			if err != nil {
				return fmt.Errorf("Amount must be a valid number")
			}
			if amount <= 0 {
				return fmt.Errorf("Amount must be greater than 0")
			}
			return nil
		},
	}
}

// AttendanceStatus fails unless the status field is exactly PRESENT or
// ABSENT.
func AttendanceStatus() Check {
	return Check{
		Name: "status-enum",
		Apply: func(f Field) error {
			if !strings.EqualFold(f.Name, "status") {
				return nil
			}
			if f.Value != "PRESENT" && f.Value != "ABSENT" {
				return fmt.Errorf("Status must be PRESENT or ABSENT")
			}
			return nil
		},
	}
}

// EmailFormat fails when a non-blank email field does not match the
// address pattern. Blank values pass; email is optional everywhere.
func EmailFormat() Check {
	return Check{
		Name: "email-format",
		Apply: func(f Field) error {
			if !strings.EqualFold(f.Name, "email") {
				return nil
			}
			if strings.TrimSpace(f.Value) == "" {
				return nil
			}
			if !CompiledPatterns.Email.MatchString(f.Value) {
				return fmt.Errorf("Invalid email format")
			}
			return nil
		},
	}
}

// Named pipelines. Each mirrors one entry point of the domain services.

// StudentInput validates id, name, age, course and email for student
// create/update.
func StudentInput() Pipeline {
	return NewPipeline("student-input", NonEmpty(), AgeRange(), EmailFormat())
}

// PaymentInput validates studentId and amount for payment mutations.
func PaymentInput() Pipeline {
	return NewPipeline("payment-input", NonEmpty(), AmountPositive())
}

// AttendanceInput validates studentId, date and status for attendance
// mutations.
func AttendanceInput() Pipeline {
	return NewPipeline("attendance-input", NonEmpty(), AttendanceStatus())
}

// Generic runs the non-empty check only.
func Generic() Pipeline {
	return NewPipeline("generic", NonEmpty())
}
