package services

import (
	"context"
	"time"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/repositories"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/apperrors"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/validation"
)

// AttendanceService handles attendance tracking operations
type AttendanceService interface {
	Mark(ctx context.Context, studentID, date, status string) (*models.AttendanceRecord, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error)
	ListAll(ctx context.Context) ([]*models.AttendanceRecord, error)
	ListByDate(ctx context.Context, date string) ([]*models.AttendanceRecord, error)
	Rate(ctx context.Context, studentID string) (float64, error)
	Update(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type attendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	studentRepo    repositories.StudentRepository
	pipeline       validation.Pipeline
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo repositories.AttendanceRepository, studentRepo repositories.StudentRepository) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		pipeline:       validation.AttendanceInput(),
	}
}

// Mark validates the input and persists a new attendance record. An empty
// date defaults to today. The student must exist; no row is written
// otherwise. Duplicate entries for the same (student, date) are permitted.
func (s *attendanceService) Mark(ctx context.Context, studentID, date, status string) (*models.AttendanceRecord, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	err := s.pipeline.Run(
		validation.Field{Name: "studentId", Label: "Student ID", Value: studentID},
		validation.Field{Name: "date", Label: "Date", Value: date},
		validation.Field{Name: "status", Label: "Status", Value: status},
	)
	if err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}

	exists, err := s.studentRepo.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewStudentNotFoundError(studentID)
	}

	id, err := s.attendanceRepo.Insert(ctx, studentID, date, models.AttendanceStatus(status))
	if err != nil {
		return nil, err
	}

	return &models.AttendanceRecord{
		ID:        id,
		StudentID: studentID,
		Date:      date,
		Status:    models.AttendanceStatus(status),
	}, nil
}

// ListByStudent retrieves a student's attendance, newest date first. A
// student with zero rows yields ErrNoRecords, which is distinct from the
// student not existing.
func (s *attendanceService) ListByStudent(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error) {
	if err := validation.Generic().Run(validation.Field{Name: "studentId", Label: "Student ID", Value: studentID}); err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}

	records, err := s.attendanceRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.NewNoAttendanceRecordsError(studentID)
	}
	return records, nil
}

// ListAll retrieves all attendance records
func (s *attendanceService) ListAll(ctx context.Context) ([]*models.AttendanceRecord, error) {
	return s.attendanceRepo.GetAll(ctx)
}

// ListByDate retrieves all attendance records for a calendar date
func (s *attendanceService) ListByDate(ctx context.Context, date string) ([]*models.AttendanceRecord, error) {
	if err := validation.Generic().Run(validation.Field{Name: "date", Label: "Date", Value: date}); err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}
	return s.attendanceRepo.GetByDate(ctx, date)
}

// Rate returns the student's attendance percentage, 0 when there are no
// records. Zero rows are not an error here.
func (s *attendanceService) Rate(ctx context.Context, studentID string) (float64, error) {
	if err := validation.Generic().Run(validation.Field{Name: "studentId", Label: "Student ID", Value: studentID}); err != nil {
		return 0, apperrors.NewInvalidInputError(err.Error())
	}

	present, total, err := s.attendanceRepo.Counts(ctx, studentID)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return float64(present) * 100.0 / float64(total), nil
}

// Update changes the status of a record by its generated id
func (s *attendanceService) Update(ctx context.Context, id int64, status string) error {
	if err := s.pipeline.Run(validation.Field{Name: "status", Label: "Status", Value: status}); err != nil {
		return apperrors.NewInvalidInputError(err.Error())
	}
	return s.attendanceRepo.UpdateStatus(ctx, id, models.AttendanceStatus(status))
}

// Delete removes a record by its generated id
func (s *attendanceService) Delete(ctx context.Context, id int64) error {
	return s.attendanceRepo.Delete(ctx, id)
}
