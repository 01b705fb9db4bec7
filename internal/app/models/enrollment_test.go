package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnrollmentStatus(t *testing.T) {
	for _, input := range []string{"ENROLLED", "enrolled", "  Enrolled "} {
		status, ok := ParseEnrollmentStatus(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, StatusEnrolled, status)
	}

	_, ok := ParseEnrollmentStatus("EXPELLED")
	assert.False(t, ok)

	_, ok = ParseEnrollmentStatus("")
	assert.False(t, ok)
}

func TestApplyLegalTransitions(t *testing.T) {
	tests := []struct {
		from   EnrollmentStatus
		action EnrollmentAction
		want   EnrollmentStatus
	}{
		{StatusEnrolled, ActionSuspend, StatusSuspended},
		{StatusEnrolled, ActionGraduate, StatusGraduated},
		{StatusSuspended, ActionActivate, StatusEnrolled},
		{StatusGraduated, ActionEnroll, StatusEnrolled},
	}

	for _, tt := range tests {
		next, ok := tt.from.Apply(tt.action)
		require.True(t, ok, "%s + %s", tt.from, tt.action)
		assert.Equal(t, tt.want, next)
	}
}

func TestApplyIllegalTransitionKeepsState(t *testing.T) {
	tests := []struct {
		from   EnrollmentStatus
		action EnrollmentAction
	}{
		{StatusSuspended, ActionGraduate},
		{StatusSuspended, ActionSuspend},
		{StatusGraduated, ActionSuspend},
		{StatusGraduated, ActionGraduate},
		{StatusEnrolled, ActionActivate},
		{StatusEnrolled, ActionEnroll},
	}

	for _, tt := range tests {
		next, ok := tt.from.Apply(tt.action)
		assert.False(t, ok, "%s + %s", tt.from, tt.action)
		assert.Equal(t, tt.from, next)
	}
}

func TestTransitionTo(t *testing.T) {
	action, ok := StatusEnrolled.TransitionTo(StatusSuspended)
	require.True(t, ok)
	assert.Equal(t, ActionSuspend, action)

	action, ok = StatusGraduated.TransitionTo(StatusEnrolled)
	require.True(t, ok)
	assert.Equal(t, ActionEnroll, action)

	// Unreachable in one step
	_, ok = StatusSuspended.TransitionTo(StatusGraduated)
	assert.False(t, ok)

	// Same state is never a transition
	_, ok = StatusEnrolled.TransitionTo(StatusEnrolled)
	assert.False(t, ok)
}

func TestParseSortCriterion(t *testing.T) {
	for input, want := range map[string]SortCriterion{
		"id":     SortByID,
		"NAME":   SortByName,
		"Age":    SortByAge,
		"course": SortByCourse,
	} {
		got, ok := ParseSortCriterion(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, ok := ParseSortCriterion("email")
	assert.False(t, ok)
}
