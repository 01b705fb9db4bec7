package dto

// MarkAttendanceRequest is the payload for marking attendance. An empty
// date means today.
type MarkAttendanceRequest struct {
	StudentID string `json:"studentId" binding:"required" example:"STU001"`
	Date      string `json:"date" example:"2024-01-01"`
	Status    string `json:"status" binding:"required" example:"PRESENT"`
}

// UpdateAttendanceRequest changes the status of an existing record
type UpdateAttendanceRequest struct {
	Status string `json:"status" binding:"required" example:"ABSENT"`
}

// AttendanceRateResponse carries a student's attendance percentage
type AttendanceRateResponse struct {
	StudentID string  `json:"studentId" example:"STU001"`
	Rate      float64 `json:"rate" example:"50"`
}
