// Package facade exposes the single aggregating entry point for all
// domain operations. Callers (the HTTP layer, tooling) go through the
// facade; it forwards to the domain services unchanged, publishes
// data-change events after successful mutations, and offers one combined
// read, the complete student profile.
package facade

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/events"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/services"
)

// DefaultTotalFees is the assumed total fee amount when the caller does
// not supply one.
const DefaultTotalFees = 5000.00

// StudentProfile is the combined complete-profile read: the student record
// plus derived attendance and payment figures.
type StudentProfile struct {
	Student        *models.Student `json:"student"`
	AttendanceRate float64         `json:"attendanceRate"`
	TotalPaid      float64         `json:"totalPaid"`
	Balance        float64         `json:"balance"`
}

// StudentManagement aggregates the three domain services behind one
// interface.
type StudentManagement struct {
	students   services.StudentService
	attendance services.AttendanceService
	payments   services.PaymentService
	bus        *events.Bus
	totalFees  float64
	logger     zerolog.Logger
}

// New creates the facade. totalFees <= 0 falls back to DefaultTotalFees.
func New(
	students services.StudentService,
	attendance services.AttendanceService,
	payments services.PaymentService,
	bus *events.Bus,
	totalFees float64,
	logger zerolog.Logger,
) *StudentManagement {
	if totalFees <= 0 {
		totalFees = DefaultTotalFees
	}
	return &StudentManagement{
		students:   students,
		attendance: attendance,
		payments:   payments,
		bus:        bus,
		totalFees:  totalFees,
		logger:     logger,
	}
}

// TotalFees returns the configured total fee amount.
func (f *StudentManagement) TotalFees() float64 {
	return f.totalFees
}

// RegisterListener subscribes a listener to data-change events.
func (f *StudentManagement) RegisterListener(l events.Listener) {
	f.bus.Register(l)
}

// UnregisterListener removes a previously registered listener.
func (f *StudentManagement) UnregisterListener(l events.Listener) {
	f.bus.Unregister(l)
}

// ---------- Student operations ----------

// AddStudent adds a new student and notifies listeners.
func (f *StudentManagement) AddStudent(ctx context.Context, studentID, name string, age int, course, email string) (*models.Student, error) {
	student, err := f.students.Add(ctx, studentID, name, age, course, email)
	if err != nil {
		return nil, err
	}
	f.bus.Publish(events.TagAdd)
	return student, nil
}

// GetStudent retrieves a student by id.
func (f *StudentManagement) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	return f.students.Get(ctx, studentID)
}

// UpdateStudent updates a student's editable fields and notifies listeners.
func (f *StudentManagement) UpdateStudent(ctx context.Context, studentID, name string, age int, course, email string) (*models.Student, error) {
	student, err := f.students.Update(ctx, studentID, name, age, course, email)
	if err != nil {
		return nil, err
	}
	f.bus.Publish(events.TagUpdate)
	return student, nil
}

// DeleteStudent removes a student and notifies listeners.
func (f *StudentManagement) DeleteStudent(ctx context.Context, studentID string) error {
	if err := f.students.Delete(ctx, studentID); err != nil {
		return err
	}
	f.bus.Publish(events.TagDelete)
	return nil
}

// ListStudents retrieves all students in insertion order.
func (f *StudentManagement) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return f.students.List(ctx)
}

// ListStudentsSorted retrieves all students sorted by the given criterion.
func (f *StudentManagement) ListStudentsSorted(ctx context.Context, criterion string) ([]*models.Student, error) {
	return f.students.ListSorted(ctx, criterion)
}

// SearchStudentsByName retrieves students whose name contains the
// substring.
func (f *StudentManagement) SearchStudentsByName(ctx context.Context, name string) ([]*models.Student, error) {
	return f.students.SearchByName(ctx, name)
}

// SetEnrollmentStatus requests an enrollment status change. An unreachable
// target is a no-op with changed == false; a persisted change notifies
// listeners.
func (f *StudentManagement) SetEnrollmentStatus(ctx context.Context, studentID, status string) (changed bool, err error) {
	changed, err = f.students.SetEnrollmentStatus(ctx, studentID, status)
	if err != nil {
		return false, err
	}
	if changed {
		f.bus.Publish(events.TagStudentUpdate)
	}
	return changed, nil
}

// NextStudentID returns the next free generated student id.
func (f *StudentManagement) NextStudentID(ctx context.Context) (string, error) {
	return f.students.NextStudentID(ctx)
}

// ---------- Attendance operations ----------

// MarkAttendance records attendance and notifies listeners. An empty date
// defaults to today.
func (f *StudentManagement) MarkAttendance(ctx context.Context, studentID, date, status string) (*models.AttendanceRecord, error) {
	record, err := f.attendance.Mark(ctx, studentID, date, status)
	if err != nil {
		return nil, err
	}
	f.bus.Publish(events.TagAttendance)
	return record, nil
}

// GetStudentAttendance lists a student's attendance records.
func (f *StudentManagement) GetStudentAttendance(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error) {
	return f.attendance.ListByStudent(ctx, studentID)
}

// GetAllAttendance lists every attendance record.
func (f *StudentManagement) GetAllAttendance(ctx context.Context) ([]*models.AttendanceRecord, error) {
	return f.attendance.ListAll(ctx)
}

// GetAttendanceByDate lists attendance records for a calendar date.
func (f *StudentManagement) GetAttendanceByDate(ctx context.Context, date string) ([]*models.AttendanceRecord, error) {
	return f.attendance.ListByDate(ctx, date)
}

// GetAttendanceRate returns the student's attendance percentage.
func (f *StudentManagement) GetAttendanceRate(ctx context.Context, studentID string) (float64, error) {
	return f.attendance.Rate(ctx, studentID)
}

// UpdateAttendance changes a record's status and notifies listeners.
func (f *StudentManagement) UpdateAttendance(ctx context.Context, id int64, status string) error {
	if err := f.attendance.Update(ctx, id, status); err != nil {
		return err
	}
	f.bus.Publish(events.TagAttendance)
	return nil
}

// DeleteAttendance removes a record and notifies listeners.
func (f *StudentManagement) DeleteAttendance(ctx context.Context, id int64) error {
	if err := f.attendance.Delete(ctx, id); err != nil {
		return err
	}
	f.bus.Publish(events.TagAttendance)
	return nil
}

// ---------- Payment operations ----------

// AddPayment records a payment and notifies listeners. An empty date
// defaults to today.
func (f *StudentManagement) AddPayment(ctx context.Context, studentID string, amount float64, date, description string) (*models.PaymentRecord, error) {
	payment, err := f.payments.Add(ctx, studentID, amount, date, description)
	if err != nil {
		return nil, err
	}
	f.bus.Publish(events.TagPayment)
	return payment, nil
}

// GetPayment retrieves a payment by its generated id.
func (f *StudentManagement) GetPayment(ctx context.Context, id int64) (*models.PaymentRecord, error) {
	return f.payments.Get(ctx, id)
}

// GetStudentPayments lists a student's payments.
func (f *StudentManagement) GetStudentPayments(ctx context.Context, studentID string) ([]*models.PaymentRecord, error) {
	return f.payments.ListByStudent(ctx, studentID)
}

// GetAllPayments lists every payment record.
func (f *StudentManagement) GetAllPayments(ctx context.Context) ([]*models.PaymentRecord, error) {
	return f.payments.ListAll(ctx)
}

// GetTotalPaid returns the sum of a student's payments.
func (f *StudentManagement) GetTotalPaid(ctx context.Context, studentID string) (float64, error) {
	return f.payments.TotalPaid(ctx, studentID)
}

// GetBalance returns the outstanding balance against the configured total
// fees.
func (f *StudentManagement) GetBalance(ctx context.Context, studentID string) (float64, error) {
	return f.payments.Balance(ctx, studentID, f.totalFees)
}

// GetBalanceWithFees returns the outstanding balance against a
// caller-supplied total fee amount.
func (f *StudentManagement) GetBalanceWithFees(ctx context.Context, studentID string, totalFees float64) (float64, error) {
	return f.payments.Balance(ctx, studentID, totalFees)
}

// UpdatePayment changes a payment's amount and description and notifies
// listeners.
func (f *StudentManagement) UpdatePayment(ctx context.Context, id int64, amount float64, description string) error {
	if err := f.payments.Update(ctx, id, amount, description); err != nil {
		return err
	}
	f.bus.Publish(events.TagPayment)
	return nil
}

// DeletePayment removes a payment and notifies listeners.
func (f *StudentManagement) DeletePayment(ctx context.Context, id int64) error {
	if err := f.payments.Delete(ctx, id); err != nil {
		return err
	}
	f.bus.Publish(events.TagPayment)
	return nil
}

// ---------- Combined operations ----------

// GetCompleteProfile combines the student record with attendance rate,
// total paid and balance. Failures of the three sub-queries degrade to a
// zero value instead of failing the whole read, so a zero can mean "no
// data" as well as a genuine zero. Only a missing student fails the call.
func (f *StudentManagement) GetCompleteProfile(ctx context.Context, studentID string) (*StudentProfile, error) {
	student, err := f.students.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}

	profile := &StudentProfile{Student: student}

	if rate, err := f.attendance.Rate(ctx, studentID); err == nil {
		profile.AttendanceRate = rate
	} else {
		f.logger.Debug().Err(err).Str("studentId", studentID).Msg("Attendance rate unavailable, defaulting to 0")
	}

	if totalPaid, err := f.payments.TotalPaid(ctx, studentID); err == nil {
		profile.TotalPaid = totalPaid
	} else {
		f.logger.Debug().Err(err).Str("studentId", studentID).Msg("Total paid unavailable, defaulting to 0")
	}

	if balance, err := f.payments.Balance(ctx, studentID, f.totalFees); err == nil {
		profile.Balance = balance
	} else {
		f.logger.Debug().Err(err).Str("studentId", studentID).Msg("Balance unavailable, defaulting to 0")
	}

	return profile, nil
}
