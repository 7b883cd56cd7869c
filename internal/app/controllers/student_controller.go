package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/app/services"
	"github.com/omarhn/registra/internal/config"
	"github.com/omarhn/registra/internal/middleware"
	"github.com/omarhn/registra/internal/pkg/apperrors"
	"github.com/omarhn/registra/internal/pkg/query"
)

// StudentController handles student record operations
type StudentController struct {
	studentService *services.StudentService
	cfg            *config.Config
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, cfg *config.Config) *StudentController {
	return &StudentController{
		studentService: studentService,
		cfg:            cfg,
	}
}

// RegisterStudent handles student registration
// @Summary Register a new student
// @Description Creates a student record with a derived credential
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 409 {object} dto.APIResponse "Student number already exists"
// @Router /students [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindValidation, "invalid student data: "+err.Error()))
		return
	}

	student, err := c.studentService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student))
}

// ListStudents lists students with optional name search and pagination
// @Summary List students
// @Description Returns one zero-based page of students, optionally narrowed by a student number substring
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param q query string false "Student number substring"
// @Param page query int false "Zero-based page index"
// @Param filterChanged query bool false "Set when the filter changed since the last request; resets the page"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if q := ctx.Query("q"); q != "" {
		// Identifier lookup: the search matches the student number digits
		students = query.BySubstring(students, func(s *models.Student) string {
			return strconv.FormatInt(s.StudentNumber, 10)
		}, q)
	}

	pageSize := c.cfg.Records.PageSize
	pageIndex := query.PageFor(queryInt(ctx, "page"), ctx.Query("filterChanged") == "true")
	page := query.Paginate(students, pageIndex, pageSize)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.StudentListResponse{
		Students: page,
		Pagination: dto.PaginationInfo{
			PageIndex:  pageIndex,
			PageSize:   pageSize,
			TotalPages: query.Pages(len(students), pageSize),
			TotalItems: len(students),
		},
	}))
}

// GetStudent retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// GetOwnRecord returns the authenticated student's own record
// @Summary Get own student record
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student} "Own record retrieved"
// @Failure 403 {object} dto.APIResponse "Principal is not a student"
// @Router /students/me [get]
func (c *StudentController) GetOwnRecord(ctx *gin.Context) {
	roleType, _, ok := middleware.PrincipalRole(ctx)
	if !ok || roleType != models.RoleStudent {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("only student principals have a student record"))
		return
	}

	id, ok := middleware.PrincipalID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorKindAuthFailure, "authentication required"))
		return
	}

	student, err := c.studentService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// RemoveStudent deletes a student record
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 204 "Student deleted"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) RemoveStudent(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.Remove(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetCompletedSubjects replaces a student's completed subject set
// @Summary Set completed subjects
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.SetSubjectsRequest true "Subject IDs"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Subjects updated"
// @Failure 422 {object} dto.APIResponse "Unknown subject reference"
// @Router /students/{id}/completed-subjects [put]
func (c *StudentController) SetCompletedSubjects(ctx *gin.Context) {
	c.setSubjects(ctx, c.studentService.SetCompletedSubjects)
}

// SetRequestedSubjects replaces a student's requested subject set
// @Summary Set requested subjects
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.SetSubjectsRequest true "Subject IDs"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Subjects updated"
// @Failure 422 {object} dto.APIResponse "Unknown subject reference"
// @Router /students/{id}/requested-subjects [put]
func (c *StudentController) SetRequestedSubjects(ctx *gin.Context) {
	c.setSubjects(ctx, c.studentService.SetRequestedSubjects)
}

func (c *StudentController) setSubjects(ctx *gin.Context, apply func(context.Context, int64, []int64) (*models.Student, error)) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.SetSubjectsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindValidation, "subjectIds is required"))
		return
	}

	student, err := apply(ctx.Request.Context(), id, req.SubjectIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// AssignDepartment sets or clears a student's department membership
// @Summary Assign a department
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.AssignDepartmentRequest true "Department ID, omit to clear"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Department assigned"
// @Failure 422 {object} dto.APIResponse "Unknown department reference"
// @Router /students/{id}/department [put]
func (c *StudentController) AssignDepartment(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.AssignDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindValidation, "invalid department assignment"))
		return
	}

	if err := c.studentService.AssignDepartment(ctx.Request.Context(), id, req.DepartmentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// pathID parses the :id path parameter, writing the error response itself.
func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindValidation, "id must be a positive number"))
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter, defaulting to 0.
func queryInt(ctx *gin.Context, name string) int {
	v, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		return 0
	}
	return v
}
