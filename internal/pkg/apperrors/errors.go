package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every error the domain core returns wraps exactly one of
// these, so callers can branch with errors.Is without losing the
// descriptive message.
var (
	// ErrInvalidInput means a validation pipeline rejected a field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey means a create was attempted with an identifier
	// already in use.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNoRecords means a by-student listing found zero rows. The student
	// exists but has no history; distinct from ErrNotFound.
	ErrNoRecords = errors.New("no records")

	// ErrStorage means the underlying store could not complete the
	// operation. Never retried, always surfaced.
	ErrStorage = errors.New("storage failure")
)

// CustomError carries a human-readable message on top of an error kind.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewInvalidInputError creates an ErrInvalidInput with the reason from the
// first failing validation check.
func NewInvalidInputError(message string) error {
	return &CustomError{Err: ErrInvalidInput, Message: message}
}

// NewStorageError wraps a store-level failure, keeping the cause in the
// message while presenting a stable kind to callers.
func NewStorageError(cause error) error {
	return &CustomError{Err: ErrStorage, Message: fmt.Sprintf("storage failure: %v", cause)}
}

// Student errors
func NewStudentNotFoundError(studentID string) error {
	return &CustomError{Err: ErrNotFound, Message: fmt.Sprintf("Student not found: %s", studentID)}
}

func NewDuplicateStudentError(studentID string) error {
	return &CustomError{Err: ErrDuplicateKey, Message: fmt.Sprintf("Student already exists: %s", studentID)}
}

// Attendance errors
func NewAttendanceNotFoundError(id int64) error {
	return &CustomError{Err: ErrNotFound, Message: fmt.Sprintf("Attendance record not found: %d", id)}
}

func NewNoAttendanceRecordsError(studentID string) error {
	return &CustomError{Err: ErrNoRecords, Message: fmt.Sprintf("No attendance records found for student: %s", studentID)}
}

// Payment errors
func NewPaymentNotFoundError(id int64) error {
	return &CustomError{Err: ErrNotFound, Message: fmt.Sprintf("Payment record not found: %d", id)}
}

func NewNoPaymentRecordsError(studentID string) error {
	return &CustomError{Err: ErrNoRecords, Message: fmt.Sprintf("No payment records found for student: %s", studentID)}
}

// Is returns whether target or any entry of errList matches err.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
