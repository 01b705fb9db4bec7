package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/apperrors"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/dberrors"
)

// StudentRepository is the persistence gateway for students.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
	FindByID(ctx context.Context, studentID string) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	UpdateEnrollmentStatus(ctx context.Context, studentID string, status models.EnrollmentStatus) error
	Delete(ctx context.Context, studentID string) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetAllSorted(ctx context.Context, criterion models.SortCriterion) ([]*models.Student, error)
	SearchByName(ctx context.Context, name string) ([]*models.Student, error)
	Exists(ctx context.Context, studentID string) (bool, error)
	MaxIDNumber(ctx context.Context) (int, error)
}

type studentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student gateway backed by PostgreSQL
func NewStudentRepository(db *pgxpool.Pool) StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `student_id, name, age, course, email, enrollment_status`

// Create inserts a new student
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, name, age, course, email, enrollment_status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		student.StudentID,
		student.Name,
		student.Age,
		student.Course,
		student.Email,
		student.EnrollmentStatus,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateStudentError(student.StudentID)
		}
		return apperrors.NewStorageError(err)
	}

	return nil
}

// GetByID retrieves a student by id, failing when absent
func (r *studentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := r.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewStudentNotFoundError(studentID)
	}
	return student, nil
}

// FindByID retrieves a student by id, returning nil when absent
func (r *studentRepository) FindByID(ctx context.Context, studentID string) (*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE student_id = $1
	`

	student, err := scanStudent(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError(err)
	}
	return student, nil
}

// Update rewrites all mutable fields of an existing student
func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, age = $2, course = $3, email = $4, enrollment_status = $5
		WHERE student_id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		student.Name,
		student.Age,
		student.Course,
		student.Email,
		student.EnrollmentStatus,
		student.StudentID,
	)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewStudentNotFoundError(student.StudentID)
	}
	return nil
}

// UpdateEnrollmentStatus persists only the enrollment status
func (r *studentRepository) UpdateEnrollmentStatus(ctx context.Context, studentID string, status models.EnrollmentStatus) error {
	query := `UPDATE students SET enrollment_status = $1 WHERE student_id = $2`

	tag, err := r.db.Exec(ctx, query, status, studentID)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewStudentNotFoundError(studentID)
	}
	return nil
}

// Delete removes a student. Dependent attendance/payment rows are left in
// place; there is no enforced cascade.
func (r *studentRepository) Delete(ctx context.Context, studentID string) error {
	query := `DELETE FROM students WHERE student_id = $1`

	tag, err := r.db.Exec(ctx, query, studentID)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewStudentNotFoundError(studentID)
	}
	return nil
}

// GetAll retrieves all students in insertion order
func (r *studentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		ORDER BY created_at, student_id
	`
	return r.queryStudents(ctx, query)
}

// GetAllSorted retrieves all students ordered by the given criterion.
// String fields sort case-insensitively with the student id as the stable
// tiebreaker.
func (r *studentRepository) GetAllSorted(ctx context.Context, criterion models.SortCriterion) ([]*models.Student, error) {
	var orderBy string
	switch criterion {
	case models.SortByID:
		orderBy = "student_id"
	case models.SortByName:
		orderBy = "LOWER(name), student_id"
	case models.SortByAge:
		orderBy = "age, student_id"
	case models.SortByCourse:
		orderBy = "LOWER(course), student_id"
	default:
		return nil, apperrors.NewInvalidInputError(fmt.Sprintf("Unknown sort criterion: %s", criterion))
	}

	query := `
		SELECT ` + studentColumns + `
		FROM students
		ORDER BY ` + orderBy
	return r.queryStudents(ctx, query)
}

// SearchByName retrieves students whose name contains the given substring,
// case-insensitively
func (r *studentRepository) SearchByName(ctx context.Context, name string) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY created_at, student_id
	`
	return r.queryStudents(ctx, query, name)
}

// Exists reports whether a student id is present
func (r *studentRepository) Exists(ctx context.Context, studentID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)`

	if err := r.db.QueryRow(ctx, query, studentID).Scan(&exists); err != nil {
		return false, apperrors.NewStorageError(err)
	}
	return exists, nil
}

// MaxIDNumber returns the highest numeric suffix among STU-prefixed ids,
// 0 when there are none. Used by the id generator.
func (r *studentRepository) MaxIDNumber(ctx context.Context) (int, error) {
	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(student_id FROM 4) AS INTEGER)), 0)
		FROM students
		WHERE student_id ~ '^STU\d+$'
	`

	var max int
	if err := r.db.QueryRow(ctx, query).Scan(&max); err != nil {
		return 0, apperrors.NewStorageError(err)
	}
	return max, nil
}

func (r *studentRepository) queryStudents(ctx context.Context, query string, args ...any) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return students, nil
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.StudentID,
		&student.Name,
		&student.Age,
		&student.Course,
		&student.Email,
		&student.EnrollmentStatus,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}
