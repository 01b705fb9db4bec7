package services

// Services defined in this package:
// - StudentService: student records, search, sorting, enrollment status
// - AttendanceService: attendance marking, listings and rate calculation
// - PaymentService: fee payments, totals and balance calculation
//
// Every service call is a synchronous sequence of validate -> gateway call.
// The services perform no retries and hold no cached state; reads always go
// to the gateway.
