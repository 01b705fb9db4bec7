package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/facade"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models/dto"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/middleware"
)

// StudentController handles student record endpoints
type StudentController struct {
	mgmt *facade.StudentManagement
}

// NewStudentController creates a new StudentController
func NewStudentController(mgmt *facade.StudentManagement) *StudentController {
	return &StudentController{mgmt: mgmt}
}

// CreateStudent handles student creation
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	student, err := c.mgmt.AddStudent(ctx, req.StudentID, req.Name, req.Age, req.Course, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(student))
}

// GetStudent retrieves a student by id
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.mgmt.GetStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// ListStudents retrieves students, optionally sorted by the "sort" query
// parameter or filtered by the "name" substring parameter
func (c *StudentController) ListStudents(ctx *gin.Context) {
	if name := ctx.Query("name"); name != "" {
		students, err := c.mgmt.SearchStudentsByName(ctx, name)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewDataResponse(students))
		return
	}

	if sort := ctx.Query("sort"); sort != "" {
		students, err := c.mgmt.ListStudentsSorted(ctx, sort)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewDataResponse(students))
		return
	}

	students, err := c.mgmt.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(students))
}

// UpdateStudent rewrites a student's editable fields
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	student, err := c.mgmt.UpdateStudent(ctx, ctx.Param("id"), req.Name, req.Age, req.Course, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// DeleteStudent removes a student
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.mgmt.DeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetEnrollmentStatus requests an enrollment status change
func (c *StudentController) SetEnrollmentStatus(ctx *gin.Context) {
	var req dto.EnrollmentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	studentID := ctx.Param("id")
	changed, err := c.mgmt.SetEnrollmentStatus(ctx, studentID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.EnrollmentStatusResponse{
		StudentID: studentID,
		Status:    req.Status,
		Changed:   changed,
	}))
}

// GetCompleteProfile returns the combined profile of a student
func (c *StudentController) GetCompleteProfile(ctx *gin.Context) {
	profile, err := c.mgmt.GetCompleteProfile(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(profile))
}

// NextStudentID returns the next free generated student id
func (c *StudentController) NextStudentID(ctx *gin.Context) {
	id, err := c.mgmt.NextStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.NextStudentIDResponse{StudentID: id}))
}
