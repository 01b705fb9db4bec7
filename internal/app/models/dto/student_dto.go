package dto

// CreateStudentRequest is the payload for adding a student
type CreateStudentRequest struct {
	StudentID string `json:"studentId" binding:"required" example:"STU001"`
	Name      string `json:"name" binding:"required" example:"Ana"`
	Age       int    `json:"age" binding:"required" example:"20"`
	Course    string `json:"course" binding:"required" example:"CS"`
	Email     string `json:"email" example:"ana@x.com"`
}

// UpdateStudentRequest is the payload for editing a student's fields. The
// enrollment status is deliberately absent; it only changes through the
// status endpoint.
type UpdateStudentRequest struct {
	Name   string `json:"name" binding:"required" example:"Ana"`
	Age    int    `json:"age" binding:"required" example:"21"`
	Course string `json:"course" binding:"required" example:"CS"`
	Email  string `json:"email" example:"ana@x.com"`
}

// EnrollmentStatusRequest asks for an enrollment status change
type EnrollmentStatusRequest struct {
	Status string `json:"status" binding:"required" example:"SUSPENDED"`
}

// EnrollmentStatusResponse reports the outcome of a status change request.
// Changed is false when the requested target was unreachable and nothing
// was persisted.
type EnrollmentStatusResponse struct {
	StudentID string `json:"studentId" example:"STU001"`
	Status    string `json:"status" example:"SUSPENDED"`
	Changed   bool   `json:"changed" example:"true"`
}

// NextStudentIDResponse carries a generated student id
type NextStudentIDResponse struct {
	StudentID string `json:"studentId" example:"STU004"`
}
