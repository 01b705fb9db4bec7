package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/repositories"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/apperrors"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/validation"
)

// StudentService handles student record operations
type StudentService interface {
	Add(ctx context.Context, studentID, name string, age int, course, email string) (*models.Student, error)
	Get(ctx context.Context, studentID string) (*models.Student, error)
	Update(ctx context.Context, studentID, name string, age int, course, email string) (*models.Student, error)
	Delete(ctx context.Context, studentID string) error
	List(ctx context.Context) ([]*models.Student, error)
	ListSorted(ctx context.Context, criterion string) ([]*models.Student, error)
	SearchByName(ctx context.Context, name string) ([]*models.Student, error)
	SetEnrollmentStatus(ctx context.Context, studentID, target string) (changed bool, err error)
	NextStudentID(ctx context.Context) (string, error)
}

type studentService struct {
	studentRepo repositories.StudentRepository
	pipeline    validation.Pipeline
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		pipeline:    validation.StudentInput(),
		logger:      logger,
	}
}

func studentFields(studentID, name string, age int, course, email string) []validation.Field {
	return []validation.Field{
		{Name: "studentId", Label: "Student ID", Value: studentID},
		{Name: "name", Label: "Name", Value: name},
		{Name: "age", Label: "Age", Value: strconv.Itoa(age)},
		{Name: "course", Label: "Course", Value: course},
		{Name: "email", Label: "Email", Value: email, Optional: true},
	}
}

// Add validates the input and persists a new student with status ENROLLED
func (s *studentService) Add(ctx context.Context, studentID, name string, age int, course, email string) (*models.Student, error) {
	if err := s.pipeline.Run(studentFields(studentID, name, age, course, email)...); err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}

	student := &models.Student{
		StudentID:        studentID,
		Name:             name,
		Age:              age,
		Course:           course,
		Email:            email,
		EnrollmentStatus: models.StatusEnrolled,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Get retrieves a student by id
func (s *studentService) Get(ctx context.Context, studentID string) (*models.Student, error) {
	if err := validation.Generic().Run(validation.Field{Name: "studentId", Label: "Student ID", Value: studentID}); err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}
	return s.studentRepo.GetByID(ctx, studentID)
}

// Update validates the input and rewrites name/age/course/email. The
// enrollment status of the existing record is preserved; only
// SetEnrollmentStatus may change it.
func (s *studentService) Update(ctx context.Context, studentID, name string, age int, course, email string) (*models.Student, error) {
	if err := s.pipeline.Run(studentFields(studentID, name, age, course, email)...); err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}

	existing, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:        studentID,
		Name:             name,
		Age:              age,
		Course:           course,
		Email:            email,
		EnrollmentStatus: existing.EnrollmentStatus,
	}
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a student. Dependent attendance/payment records are not
// cascade-deleted; callers that want them gone must clean up first.
func (s *studentService) Delete(ctx context.Context, studentID string) error {
	if err := validation.Generic().Run(validation.Field{Name: "studentId", Label: "Student ID", Value: studentID}); err != nil {
		return apperrors.NewInvalidInputError(err.Error())
	}
	return s.studentRepo.Delete(ctx, studentID)
}

// List retrieves all students in insertion order
func (s *studentService) List(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// ListSorted retrieves all students sorted by id, name, age or course
func (s *studentService) ListSorted(ctx context.Context, criterion string) ([]*models.Student, error) {
	parsed, ok := models.ParseSortCriterion(criterion)
	if !ok {
		return nil, apperrors.NewInvalidInputError(fmt.Sprintf("Sort criterion must be id, name, age or course, got: %s", criterion))
	}
	return s.studentRepo.GetAllSorted(ctx, parsed)
}

// SearchByName retrieves students whose name contains the given substring
func (s *studentService) SearchByName(ctx context.Context, name string) ([]*models.Student, error) {
	return s.studentRepo.SearchByName(ctx, name)
}

// SetEnrollmentStatus moves a student through the enrollment state machine.
// When the requested target is unreachable from the current status via a
// single transition, nothing is persisted and changed is false; that is an
// explicit no-op outcome, not an error.
func (s *studentService) SetEnrollmentStatus(ctx context.Context, studentID, target string) (bool, error) {
	if err := validation.Generic().Run(validation.Field{Name: "studentId", Label: "Student ID", Value: studentID}); err != nil {
		return false, apperrors.NewInvalidInputError(err.Error())
	}

	targetStatus, ok := models.ParseEnrollmentStatus(target)
	if !ok {
		return false, apperrors.NewInvalidInputError(fmt.Sprintf("Enrollment status must be ENROLLED, SUSPENDED, or GRADUATED, got: %s", target))
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return false, err
	}

	current := student.EnrollmentStatus
	action, ok := current.TransitionTo(targetStatus)
	if !ok {
		s.logger.Warn().
			Str("studentId", studentID).
			Str("current", string(current)).
			Str("target", string(targetStatus)).
			Msg("Illegal enrollment transition rejected")
		return false, nil
	}

	if err := s.studentRepo.UpdateEnrollmentStatus(ctx, studentID, targetStatus); err != nil {
		return false, err
	}

	s.logger.Info().
		Str("studentId", studentID).
		Str("action", string(action)).
		Str("status", string(targetStatus)).
		Msg("Enrollment status changed")
	return true, nil
}

// NextStudentID generates the next free id in the form STU001, STU002, ...
func (s *studentService) NextStudentID(ctx context.Context) (string, error) {
	max, err := s.studentRepo.MaxIDNumber(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("STU%03d", max+1), nil
}
