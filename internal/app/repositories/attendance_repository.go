package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/apperrors"
)

// AttendanceRepository is the persistence gateway for attendance records.
type AttendanceRepository interface {
	Insert(ctx context.Context, studentID, date string, status models.AttendanceStatus) (int64, error)
	GetByStudent(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error)
	GetAll(ctx context.Context) ([]*models.AttendanceRecord, error)
	GetByDate(ctx context.Context, date string) ([]*models.AttendanceRecord, error)
	Counts(ctx context.Context, studentID string) (present, total int64, err error)
	UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus) error
	Delete(ctx context.Context, id int64) error
}

type attendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance gateway backed by
// PostgreSQL
func NewAttendanceRepository(db *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Insert adds an attendance record and returns the generated id
func (r *attendanceRepository) Insert(ctx context.Context, studentID, date string, status models.AttendanceStatus) (int64, error) {
	query := `
		INSERT INTO attendance (student_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(ctx, query, studentID, date, status).Scan(&id); err != nil {
		return 0, apperrors.NewStorageError(err)
	}
	return id, nil
}

// GetByStudent retrieves a student's attendance, newest date first
func (r *attendanceRepository) GetByStudent(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, date, status
		FROM attendance
		WHERE student_id = $1
		ORDER BY date DESC
	`
	return r.queryRecords(ctx, query, studentID)
}

// GetAll retrieves all attendance records, newest date first
func (r *attendanceRepository) GetAll(ctx context.Context) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, date, status
		FROM attendance
		ORDER BY date DESC
	`
	return r.queryRecords(ctx, query)
}

// GetByDate retrieves all attendance records for a calendar date
func (r *attendanceRepository) GetByDate(ctx context.Context, date string) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, date, status
		FROM attendance
		WHERE date = $1
	`
	return r.queryRecords(ctx, query, date)
}

// Counts returns the present/total aggregate for a student
func (r *attendanceRepository) Counts(ctx context.Context, studentID string) (present, total int64, err error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'PRESENT' THEN 1 ELSE 0 END), 0) AS present
		FROM attendance
		WHERE student_id = $1
	`

	if err := r.db.QueryRow(ctx, query, studentID).Scan(&total, &present); err != nil {
		return 0, 0, apperrors.NewStorageError(err)
	}
	return present, total, nil
}

// UpdateStatus changes the status of a record by its generated id. Updating
// a missing id is not an error; the store enforces nothing here.
func (r *attendanceRepository) UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus) error {
	query := `UPDATE attendance SET status = $1 WHERE id = $2`

	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

// Delete removes a record by its generated id
func (r *attendanceRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM attendance WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

func (r *attendanceRepository) queryRecords(ctx context.Context, query string, args ...any) ([]*models.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return records, nil
}

func scanAttendance(row pgx.Row) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := row.Scan(
		&record.ID,
		&record.StudentID,
		&record.Date,
		&record.Status,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
