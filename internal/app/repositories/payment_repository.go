package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/apperrors"
)

// PaymentRepository is the persistence gateway for payment records.
type PaymentRepository interface {
	Insert(ctx context.Context, studentID string, amount float64, date, description string) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.PaymentRecord, error)
	GetByStudent(ctx context.Context, studentID string) ([]*models.PaymentRecord, error)
	GetAll(ctx context.Context) ([]*models.PaymentRecord, error)
	TotalPaid(ctx context.Context, studentID string) (float64, error)
	Update(ctx context.Context, id int64, amount float64, description string) error
	Delete(ctx context.Context, id int64) error
}

type paymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository creates a new payment gateway backed by PostgreSQL
func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{db: db}
}

// Insert adds a payment record and returns the generated id
func (r *paymentRepository) Insert(ctx context.Context, studentID string, amount float64, date, description string) (int64, error) {
	query := `
		INSERT INTO payments (student_id, amount, date, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(ctx, query, studentID, amount, date, description).Scan(&id); err != nil {
		return 0, apperrors.NewStorageError(err)
	}
	return id, nil
}

// GetByID retrieves a payment by its generated id, failing when absent
func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*models.PaymentRecord, error) {
	query := `
		SELECT id, student_id, amount, date, description
		FROM payments
		WHERE id = $1
	`

	payment, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewPaymentNotFoundError(id)
		}
		return nil, apperrors.NewStorageError(err)
	}
	return payment, nil
}

// GetByStudent retrieves a student's payments, newest date first
func (r *paymentRepository) GetByStudent(ctx context.Context, studentID string) ([]*models.PaymentRecord, error) {
	query := `
		SELECT id, student_id, amount, date, description
		FROM payments
		WHERE student_id = $1
		ORDER BY date DESC
	`
	return r.queryPayments(ctx, query, studentID)
}

// GetAll retrieves all payments, newest date first
func (r *paymentRepository) GetAll(ctx context.Context) ([]*models.PaymentRecord, error) {
	query := `
		SELECT id, student_id, amount, date, description
		FROM payments
		ORDER BY date DESC
	`
	return r.queryPayments(ctx, query)
}

// TotalPaid returns the sum of a student's payment amounts, 0 when none
func (r *paymentRepository) TotalPaid(ctx context.Context, studentID string) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE student_id = $1`

	var total float64
	if err := r.db.QueryRow(ctx, query, studentID).Scan(&total); err != nil {
		return 0, apperrors.NewStorageError(err)
	}
	return total, nil
}

// Update changes amount and description of a record by its generated id.
// Updating a missing id is not an error; the store enforces nothing here.
func (r *paymentRepository) Update(ctx context.Context, id int64, amount float64, description string) error {
	query := `UPDATE payments SET amount = $1, description = $2 WHERE id = $3`

	if _, err := r.db.Exec(ctx, query, amount, description, id); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

// Delete removes a record by its generated id
func (r *paymentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM payments WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

func (r *paymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]*models.PaymentRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	defer rows.Close()

	var payments []*models.PaymentRecord
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return payments, nil
}

func scanPayment(row pgx.Row) (*models.PaymentRecord, error) {
	var payment models.PaymentRecord
	err := row.Scan(
		&payment.ID,
		&payment.StudentID,
		&payment.Amount,
		&payment.Date,
		&payment.Description,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
