package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/app/services"
	"github.com/omarhn/registra/internal/config"
	"github.com/omarhn/registra/internal/middleware"
	"github.com/omarhn/registra/internal/pkg/query"
)

// StaffController handles staff record operations
type StaffController struct {
	staffService *services.StaffService
	cfg          *config.Config
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService *services.StaffService, cfg *config.Config) *StaffController {
	return &StaffController{
		staffService: staffService,
		cfg:          cfg,
	}
}

// RegisterStaff handles staff registration
// @Summary Register a new staff member
// @Description Creates a staff record with a derived credential
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterStaffRequest true "Staff information"
// @Success 201 {object} dto.APIResponse{data=models.Staff} "Staff created"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /staff [post]
func (c *StaffController) RegisterStaff(ctx *gin.Context) {
	var req dto.RegisterStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindValidation, "invalid staff data: "+err.Error()))
		return
	}

	staff, err := c.staffService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(staff))
}

// ListStaff lists staff with optional role filter and pagination
// @Summary List staff
// @Description Returns one zero-based page of staff, optionally narrowed to an exact role
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param role query string false "Exact role filter"
// @Param page query int false "Zero-based page index"
// @Param filterChanged query bool false "Set when the filter changed since the last request; resets the page"
// @Success 200 {object} dto.APIResponse{data=dto.StaffListResponse} "Staff retrieved"
// @Router /staff [get]
func (c *StaffController) ListStaff(ctx *gin.Context) {
	staff, err := c.staffService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if role := ctx.Query("role"); role != "" {
		staff = query.ByField(staff,
			func(s *models.Staff) models.StaffRole { return s.Role },
			models.StaffRole(role))
	}

	pageSize := c.cfg.Records.PageSize
	pageIndex := query.PageFor(queryInt(ctx, "page"), ctx.Query("filterChanged") == "true")
	page := query.Paginate(staff, pageIndex, pageSize)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.StaffListResponse{
		Staff: page,
		Pagination: dto.PaginationInfo{
			PageIndex:  pageIndex,
			PageSize:   pageSize,
			TotalPages: query.Pages(len(staff), pageSize),
			TotalItems: len(staff),
		},
	}))
}

// GetStaff retrieves a staff member by ID
// @Summary Get staff by ID
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.APIResponse{data=models.Staff} "Staff retrieved"
// @Failure 404 {object} dto.APIResponse "Staff not found"
// @Router /staff/{id} [get]
func (c *StaffController) GetStaff(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	staff, err := c.staffService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff))
}

// RemoveStaff deletes a staff record
// @Summary Delete a staff member
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 204 "Staff deleted"
// @Failure 404 {object} dto.APIResponse "Staff not found"
// @Router /staff/{id} [delete]
func (c *StaffController) RemoveStaff(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.staffService.Remove(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
