package dto

// AddPaymentRequest is the payload for recording a payment. An empty date
// means today.
type AddPaymentRequest struct {
	StudentID   string  `json:"studentId" binding:"required" example:"STU001"`
	Amount      float64 `json:"amount" binding:"required" example:"200.50"`
	Date        string  `json:"date" example:"2024-01-01"`
	Description string  `json:"description" example:"tuition fee"`
}

// UpdatePaymentRequest changes amount and description of a payment
type UpdatePaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required" example:"150"`
	Description string  `json:"description" example:"corrected amount"`
}

// TotalPaidResponse carries the sum of a student's payments
type TotalPaidResponse struct {
	StudentID string  `json:"studentId" example:"STU001"`
	TotalPaid float64 `json:"totalPaid" example:"300"`
}

// BalanceResponse carries a student's outstanding balance. A negative
// balance means overpayment.
type BalanceResponse struct {
	StudentID string  `json:"studentId" example:"STU001"`
	TotalFees float64 `json:"totalFees" example:"5000"`
	Balance   float64 `json:"balance" example:"4700"`
}
