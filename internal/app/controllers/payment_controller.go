package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/facade"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models/dto"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/middleware"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/apperrors"
)

// PaymentController handles payment record endpoints
type PaymentController struct {
	mgmt *facade.StudentManagement
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(mgmt *facade.StudentManagement) *PaymentController {
	return &PaymentController{mgmt: mgmt}
}

// AddPayment records a payment for a student
func (c *PaymentController) AddPayment(ctx *gin.Context) {
	var req dto.AddPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	payment, err := c.mgmt.AddPayment(ctx, req.StudentID, req.Amount, req.Date, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(payment))
}

// GetPayment retrieves a payment by its generated id
func (c *PaymentController) GetPayment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	payment, err := c.mgmt.GetPayment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(payment))
}

// ListPayments retrieves all payment records
func (c *PaymentController) ListPayments(ctx *gin.Context) {
	payments, err := c.mgmt.GetAllPayments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(payments))
}

// GetStudentPayments lists a student's payment records
func (c *PaymentController) GetStudentPayments(ctx *gin.Context) {
	payments, err := c.mgmt.GetStudentPayments(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(payments))
}

// GetTotalPaid returns the sum of a student's payments
func (c *PaymentController) GetTotalPaid(ctx *gin.Context) {
	studentID := ctx.Param("id")
	total, err := c.mgmt.GetTotalPaid(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.TotalPaidResponse{
		StudentID: studentID,
		TotalPaid: total,
	}))
}

// GetBalance returns a student's outstanding balance. An optional
// "totalFees" query parameter overrides the configured total fee amount.
func (c *PaymentController) GetBalance(ctx *gin.Context) {
	studentID := ctx.Param("id")

	var (
		balance   float64
		totalFees float64
		err       error
	)
	if raw := ctx.Query("totalFees"); raw != "" {
		totalFees, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewInvalidInputError("Total fees must be a number"))
			return
		}
		balance, err = c.mgmt.GetBalanceWithFees(ctx, studentID, totalFees)
	} else {
		totalFees = c.mgmt.TotalFees()
		balance, err = c.mgmt.GetBalance(ctx, studentID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.BalanceResponse{
		StudentID: studentID,
		TotalFees: totalFees,
		Balance:   balance,
	}))
}

// UpdatePayment changes a payment's amount and description
func (c *PaymentController) UpdatePayment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	var req dto.UpdatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.mgmt.UpdatePayment(ctx, id, req.Amount, req.Description); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeletePayment removes a payment record
func (c *PaymentController) DeletePayment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.mgmt.DeletePayment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
