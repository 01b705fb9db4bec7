package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/apperrors"
)

func attendanceFixture(t *testing.T) (AttendanceService, *fakeStudentRepo, *fakeAttendanceRepo) {
	t.Helper()
	studentRepo := newFakeStudentRepo()
	attendanceRepo := newFakeAttendanceRepo()
	require.NoError(t, studentRepo.Create(context.Background(), &models.Student{
		StudentID:        "STU001",
		Name:             "Alice",
		Age:              20,
		Course:           "CS",
		EnrollmentStatus: models.StatusEnrolled,
	}))
	return NewAttendanceService(attendanceRepo, studentRepo), studentRepo, attendanceRepo
}

func TestMarkAttendance(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := attendanceFixture(t)

	record, err := svc.Mark(ctx, "STU001", "2024-01-01", "PRESENT")
	require.NoError(t, err)
	assert.Equal(t, int64(1), record.ID)
	assert.Equal(t, models.AttendancePresent, record.Status)
}

func TestMarkAttendanceDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := attendanceFixture(t)

	record, err := svc.Mark(ctx, "STU001", "", "ABSENT")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), record.Date)
}

func TestMarkAttendanceValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, attendanceRepo := attendanceFixture(t)

	_, err := svc.Mark(ctx, "STU001", "2024-01-01", "LATE")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	assert.Equal(t, "Status must be PRESENT or ABSENT", err.Error())

	// Lowercase is rejected
	_, err = svc.Mark(ctx, "STU001", "2024-01-01", "present")
	require.Error(t, err)

	_, err = svc.Mark(ctx, "", "2024-01-01", "PRESENT")
	require.Error(t, err)
	assert.Equal(t, "Student ID cannot be empty", err.Error())

	assert.Empty(t, attendanceRepo.records)
}

func TestMarkAttendanceUnknownStudent(t *testing.T) {
	ctx := context.Background()
	svc, _, attendanceRepo := attendanceFixture(t)

	_, err := svc.Mark(ctx, "STU999", "2024-01-01", "PRESENT")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	assert.Empty(t, attendanceRepo.records)
}

func TestMarkAttendanceDuplicateDateAllowed(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := attendanceFixture(t)

	_, err := svc.Mark(ctx, "STU001", "2024-01-01", "PRESENT")
	require.NoError(t, err)
	_, err = svc.Mark(ctx, "STU001", "2024-01-01", "ABSENT")
	require.NoError(t, err)

	records, err := svc.ListByStudent(ctx, "STU001")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListByStudentNoRecords(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := attendanceFixture(t)

	_, err := svc.ListByStudent(ctx, "STU001")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNoRecords))
	assert.Equal(t, "No attendance records found for student: STU001", err.Error())
}

func TestListByStudentNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := attendanceFixture(t)

	for _, date := range []string{"2024-01-01", "2024-01-03", "2024-01-02"} {
		_, err := svc.Mark(ctx, "STU001", date, "PRESENT")
		require.NoError(t, err)
	}

	records, err := svc.ListByStudent(ctx, "STU001")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-01-03", records[0].Date)
	assert.Equal(t, "2024-01-02", records[1].Date)
	assert.Equal(t, "2024-01-01", records[2].Date)
}

func TestAttendanceRate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := attendanceFixture(t)

	// No records is 0, not an error
	rate, err := svc.Rate(ctx, "STU001")
	require.NoError(t, err)
	assert.Equal(t, 0.0, rate)

	_, err = svc.Mark(ctx, "STU001", "2024-01-01", "PRESENT")
	require.NoError(t, err)
	_, err = svc.Mark(ctx, "STU001", "2024-01-02", "ABSENT")
	require.NoError(t, err)

	rate, err = svc.Rate(ctx, "STU001")
	require.NoError(t, err)
	assert.Equal(t, 50.0, rate)

	_, err = svc.Mark(ctx, "STU001", "2024-01-03", "PRESENT")
	require.NoError(t, err)

	rate, err = svc.Rate(ctx, "STU001")
	require.NoError(t, err)
	assert.InDelta(t, 66.666, rate, 0.001)
}

func TestUpdateAttendanceStatus(t *testing.T) {
	ctx := context.Background()
	svc, _, attendanceRepo := attendanceFixture(t)

	record, err := svc.Mark(ctx, "STU001", "2024-01-01", "PRESENT")
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, record.ID, "ABSENT"))
	assert.Equal(t, models.AttendanceAbsent, attendanceRepo.records[0].Status)

	err = svc.Update(ctx, record.ID, "MAYBE")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))

	// Updating a missing id succeeds silently
	assert.NoError(t, svc.Update(ctx, 999, "PRESENT"))
}

func TestDeleteAttendance(t *testing.T) {
	ctx := context.Background()
	svc, _, attendanceRepo := attendanceFixture(t)

	record, err := svc.Mark(ctx, "STU001", "2024-01-01", "PRESENT")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, record.ID))
	assert.Empty(t, attendanceRepo.records)

	// Deleting a missing id succeeds silently
	assert.NoError(t, svc.Delete(ctx, record.ID))
}

func TestListByDate(t *testing.T) {
	ctx := context.Background()
	svc, studentRepo, _ := attendanceFixture(t)
	require.NoError(t, studentRepo.Create(ctx, &models.Student{StudentID: "STU002", Name: "Bob", Age: 22, Course: "Math", EnrollmentStatus: models.StatusEnrolled}))

	_, err := svc.Mark(ctx, "STU001", "2024-01-01", "PRESENT")
	require.NoError(t, err)
	_, err = svc.Mark(ctx, "STU002", "2024-01-01", "ABSENT")
	require.NoError(t, err)
	_, err = svc.Mark(ctx, "STU001", "2024-01-02", "PRESENT")
	require.NoError(t, err)

	records, err := svc.ListByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = svc.ListByDate(ctx, "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
}
