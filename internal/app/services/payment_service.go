package services

import (
	"context"
	"strconv"
	"time"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/repositories"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/apperrors"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/validation"
)

// PaymentService handles fee payment operations
type PaymentService interface {
	Add(ctx context.Context, studentID string, amount float64, date, description string) (*models.PaymentRecord, error)
	Get(ctx context.Context, id int64) (*models.PaymentRecord, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.PaymentRecord, error)
	ListAll(ctx context.Context) ([]*models.PaymentRecord, error)
	TotalPaid(ctx context.Context, studentID string) (float64, error)
	Balance(ctx context.Context, studentID string, totalFees float64) (float64, error)
	Update(ctx context.Context, id int64, amount float64, description string) error
	Delete(ctx context.Context, id int64) error
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
	studentRepo repositories.StudentRepository
	pipeline    validation.Pipeline
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(paymentRepo repositories.PaymentRepository, studentRepo repositories.StudentRepository) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
		pipeline:    validation.PaymentInput(),
	}
}

func amountField(amount float64) validation.Field {
	return validation.Field{
		Name:  "amount",
		Label: "Amount",
		Value: strconv.FormatFloat(amount, 'f', -1, 64),
	}
}

// Add validates the input and persists a new payment record. An empty date
// defaults to today. The student must exist; no row is written otherwise.
func (s *paymentService) Add(ctx context.Context, studentID string, amount float64, date, description string) (*models.PaymentRecord, error) {
	err := s.pipeline.Run(
		validation.Field{Name: "studentId", Label: "Student ID", Value: studentID},
		amountField(amount),
	)
	if err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	exists, err := s.studentRepo.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewStudentNotFoundError(studentID)
	}

	id, err := s.paymentRepo.Insert(ctx, studentID, amount, date, description)
	if err != nil {
		return nil, err
	}

	return &models.PaymentRecord{
		ID:          id,
		StudentID:   studentID,
		Amount:      amount,
		Date:        date,
		Description: description,
	}, nil
}

// Get retrieves a payment by its generated id
func (s *paymentService) Get(ctx context.Context, id int64) (*models.PaymentRecord, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

// ListByStudent retrieves a student's payments, newest date first. A
// student with zero rows yields ErrNoRecords, which is distinct from the
// student not existing.
func (s *paymentService) ListByStudent(ctx context.Context, studentID string) ([]*models.PaymentRecord, error) {
	if err := validation.Generic().Run(validation.Field{Name: "studentId", Label: "Student ID", Value: studentID}); err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}

	payments, err := s.paymentRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, apperrors.NewNoPaymentRecordsError(studentID)
	}
	return payments, nil
}

// ListAll retrieves all payments
func (s *paymentService) ListAll(ctx context.Context) ([]*models.PaymentRecord, error) {
	return s.paymentRepo.GetAll(ctx)
}

// TotalPaid returns the sum of a student's payments, 0 when none
func (s *paymentService) TotalPaid(ctx context.Context, studentID string) (float64, error) {
	if err := validation.Generic().Run(validation.Field{Name: "studentId", Label: "Student ID", Value: studentID}); err != nil {
		return 0, apperrors.NewInvalidInputError(err.Error())
	}
	return s.paymentRepo.TotalPaid(ctx, studentID)
}

// Balance returns totalFees minus the student's total paid. The result may
// be negative, meaning overpayment; it is deliberately not clamped.
func (s *paymentService) Balance(ctx context.Context, studentID string, totalFees float64) (float64, error) {
	if totalFees < 0 {
		return 0, apperrors.NewInvalidInputError("Total fees cannot be negative")
	}

	totalPaid, err := s.TotalPaid(ctx, studentID)
	if err != nil {
		return 0, err
	}
	return totalFees - totalPaid, nil
}

// Update changes amount and description of a record by its generated id
func (s *paymentService) Update(ctx context.Context, id int64, amount float64, description string) error {
	if err := s.pipeline.Run(amountField(amount)); err != nil {
		return apperrors.NewInvalidInputError(err.Error())
	}
	return s.paymentRepo.Update(ctx, id, amount, description)
}

// Delete removes a record by its generated id
func (s *paymentService) Delete(ctx context.Context, id int64) error {
	return s.paymentRepo.Delete(ctx, id)
}
