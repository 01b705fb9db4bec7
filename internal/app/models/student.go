package models

import "strings"

// Student defines the student model based on the 'students' table
type Student struct {
	StudentID        string           `json:"studentId" db:"student_id" example:"STU001"` // Unique, immutable identifier
	Name             string           `json:"name" db:"name" example:"Ana"`
	Age              int              `json:"age" db:"age" example:"20"`
	Course           string           `json:"course" db:"course" example:"CS"`
	Email            string           `json:"email,omitempty" db:"email" example:"ana@x.com"` // Optional
	EnrollmentStatus EnrollmentStatus `json:"enrollmentStatus" db:"enrollment_status" example:"ENROLLED"`
}

// SortCriterion selects the field students are sorted by.
type SortCriterion string

const (
	SortByID     SortCriterion = "id"
	SortByName   SortCriterion = "name"
	SortByAge    SortCriterion = "age"
	SortByCourse SortCriterion = "course"
)

// ParseSortCriterion returns the criterion for s, case-insensitively.
// The second return value is false for unknown criteria.
func ParseSortCriterion(s string) (SortCriterion, bool) {
	switch SortCriterion(strings.ToLower(strings.TrimSpace(s))) {
	case SortByID:
		return SortByID, true
	case SortByName:
		return SortByName, true
	case SortByAge:
		return SortByAge, true
	case SortByCourse:
		return SortByCourse, true
	}
	return "", false
}
