package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	attendanceController *controllers.AttendanceController,
	paymentController *controllers.PaymentController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.ListStudents)
		students.GET("/next-id", studentController.NextStudentID)
		students.GET("/:id", studentController.GetStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.PUT("/:id/status", studentController.SetEnrollmentStatus)
		students.GET("/:id/profile", studentController.GetCompleteProfile)

		// Per-student attendance and payment reads
		students.GET("/:id/attendance", attendanceController.GetStudentAttendance)
		students.GET("/:id/attendance/rate", attendanceController.GetAttendanceRate)
		students.GET("/:id/payments", paymentController.GetStudentPayments)
		students.GET("/:id/payments/total", paymentController.GetTotalPaid)
		students.GET("/:id/balance", paymentController.GetBalance)
	}

	// Attendance routes
	attendance := v1.Group("/attendance")
	{
		attendance.POST("", attendanceController.MarkAttendance)
		attendance.GET("", attendanceController.ListAttendance)
		attendance.PUT("/:id", attendanceController.UpdateAttendance)
		attendance.DELETE("/:id", attendanceController.DeleteAttendance)
	}

	// Payment routes
	payments := v1.Group("/payments")
	{
		payments.POST("", paymentController.AddPayment)
		payments.GET("", paymentController.ListPayments)
		payments.GET("/:id", paymentController.GetPayment)
		payments.PUT("/:id", paymentController.UpdatePayment)
		payments.DELETE("/:id", paymentController.DeletePayment)
	}
}
