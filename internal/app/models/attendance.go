package models

// AttendanceStatus is the per-day attendance mark for a student.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
)

// AttendanceRecord defines one attendance entry based on the 'attendance'
// table. Duplicate entries for the same (student, date) are permitted.
type AttendanceRecord struct {
	ID        int64            `json:"id" db:"id" example:"1"` // Generated by the store
	StudentID string           `json:"studentId" db:"student_id" example:"STU001"`
	Date      string           `json:"date" db:"date" example:"2024-01-01"` // ISO calendar date
	Status    AttendanceStatus `json:"status" db:"status" example:"PRESENT"`
}
