// Package repositories contains the persistence gateway contracts for the
// three entity kinds and their PostgreSQL implementations. The gateways
// exclusively own durable storage; the domain services hold no cached
// copies and go to the store on every call.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the gateway instances
type Repositories struct {
	StudentRepository    StudentRepository
	AttendanceRepository AttendanceRepository
	PaymentRepository    PaymentRepository
}

// NewRepositories initializes all gateways against the shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		PaymentRepository:    NewPaymentRepository(db),
	}
}
