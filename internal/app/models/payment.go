package models

// PaymentRecord defines one fee payment based on the 'payments' table.
type PaymentRecord struct {
	ID          int64   `json:"id" db:"id" example:"1"` // Generated by the store
	StudentID   string  `json:"studentId" db:"student_id" example:"STU001"`
	Amount      float64 `json:"amount" db:"amount" example:"200.50"` // Strictly positive
	Date        string  `json:"date" db:"date" example:"2024-01-01"`
	Description string  `json:"description,omitempty" db:"description" example:"tuition fee"`
}
