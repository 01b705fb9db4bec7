package models

import "strings"

// EnrollmentStatus is a student's enrollment state.
type EnrollmentStatus string

const (
	StatusEnrolled  EnrollmentStatus = "ENROLLED"
	StatusSuspended EnrollmentStatus = "SUSPENDED"
	StatusGraduated EnrollmentStatus = "GRADUATED"
)

// ParseEnrollmentStatus returns the status for s, case-insensitively. The
// second return value is false for unknown statuses.
func ParseEnrollmentStatus(s string) (EnrollmentStatus, bool) {
	switch EnrollmentStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusEnrolled:
		return StatusEnrolled, true
	case StatusSuspended:
		return StatusSuspended, true
	case StatusGraduated:
		return StatusGraduated, true
	}
	return "", false
}

// EnrollmentAction names a requested transition of the enrollment state
// machine.
type EnrollmentAction string

const (
	ActionEnroll   EnrollmentAction = "enroll"   // GRADUATED -> ENROLLED (reactivation of a graduate)
	ActionSuspend  EnrollmentAction = "suspend"  // ENROLLED -> SUSPENDED
	ActionGraduate EnrollmentAction = "graduate" // ENROLLED -> GRADUATED
	ActionActivate EnrollmentAction = "activate" // SUSPENDED -> ENROLLED
)

// transitions is the complete (state, action) -> state table. Any pair not
// listed is an illegal transition.
var transitions = map[EnrollmentStatus]map[EnrollmentAction]EnrollmentStatus{
	StatusEnrolled: {
		ActionSuspend:  StatusSuspended,
		ActionGraduate: StatusGraduated,
	},
	StatusSuspended: {
		ActionActivate: StatusEnrolled,
	},
	StatusGraduated: {
		ActionEnroll: StatusEnrolled,
	},
}

// Apply attempts an action from the current state. When the pair is not in
// the transition table the state is unchanged and ok is false.
func (s EnrollmentStatus) Apply(action EnrollmentAction) (next EnrollmentStatus, ok bool) {
	if targets, exists := transitions[s]; exists {
		if next, exists = targets[action]; exists {
			return next, true
		}
	}
	return s, false
}

// TransitionTo finds the single action that moves the current state to
// target. When target is unreachable (including target == current) ok is
// false; callers treat that as a no-op, not an error.
func (s EnrollmentStatus) TransitionTo(target EnrollmentStatus) (action EnrollmentAction, ok bool) {
	for a, next := range transitions[s] {
		if next == target {
			return a, true
		}
	}
	return "", false
}
