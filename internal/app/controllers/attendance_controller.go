package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/facade"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models/dto"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/middleware"
)

// AttendanceController handles attendance record endpoints
type AttendanceController struct {
	mgmt *facade.StudentManagement
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(mgmt *facade.StudentManagement) *AttendanceController {
	return &AttendanceController{mgmt: mgmt}
}

// MarkAttendance records attendance for a student
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	record, err := c.mgmt.MarkAttendance(ctx, req.StudentID, req.Date, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(record))
}

// ListAttendance retrieves all attendance records, optionally filtered by
// the "date" query parameter
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	if date := ctx.Query("date"); date != "" {
		records, err := c.mgmt.GetAttendanceByDate(ctx, date)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewDataResponse(records))
		return
	}

	records, err := c.mgmt.GetAllAttendance(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(records))
}

// GetStudentAttendance lists a student's attendance records
func (c *AttendanceController) GetStudentAttendance(ctx *gin.Context) {
	records, err := c.mgmt.GetStudentAttendance(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(records))
}

// GetAttendanceRate returns a student's attendance percentage
func (c *AttendanceController) GetAttendanceRate(ctx *gin.Context) {
	studentID := ctx.Param("id")
	rate, err := c.mgmt.GetAttendanceRate(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.AttendanceRateResponse{
		StudentID: studentID,
		Rate:      rate,
	}))
}

// UpdateAttendance changes the status of an attendance record
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.mgmt.UpdateAttendance(ctx, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteAttendance removes an attendance record
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.mgmt.DeleteAttendance(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
