package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/app/services"
	"github.com/omarhn/registra/internal/middleware"
)

// DepartmentController handles department operations
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// CreateDepartment creates a department
// @Summary Create a new department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=models.Department} "Department created"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 409 {object} dto.APIResponse "Department code already exists"
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindValidation, "invalid department data: "+err.Error()))
		return
	}

	department, err := c.departmentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(department))
}

// ListDepartments lists all departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Department} "Departments retrieved"
// @Router /departments [get]
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments))
}

// GetDepartment retrieves a department by ID
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department retrieved"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartment(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	department, err := c.departmentService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department))
}

// DeleteDepartment deletes a department with no members
// @Summary Delete a department
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 204 "Department deleted"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Failure 409 {object} dto.APIResponse "Department still has members"
// @Router /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.departmentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
