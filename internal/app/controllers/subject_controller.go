package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/app/services"
	"github.com/omarhn/registra/internal/middleware"
)

// SubjectController handles subject catalog operations
type SubjectController struct {
	subjectService *services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService *services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// CreateSubject creates a subject with its ordered prerequisites
// @Summary Create a new subject
// @Description Creates a subject and its prerequisite list in one transaction
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=models.Subject} "Subject created"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 409 {object} dto.APIResponse "Subject code already exists"
// @Failure 422 {object} dto.APIResponse "Unknown prerequisite reference"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindValidation, "invalid subject data: "+err.Error()))
		return
	}

	subject, err := c.subjectService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(subject))
}

// ListSubjects lists the subject catalog
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved"
// @Router /subjects [get]
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subjects))
}

// GetSubject retrieves a subject by ID
// @Summary Get subject by ID
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject retrieved"
// @Failure 404 {object} dto.APIResponse "Subject not found"
// @Router /subjects/{id} [get]
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	subject, err := c.subjectService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subject))
}

// DeleteSubject deletes a subject that is not referenced anywhere
// @Summary Delete a subject
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 204 "Subject deleted"
// @Failure 404 {object} dto.APIResponse "Subject not found"
// @Failure 409 {object} dto.APIResponse "Subject is still referenced"
// @Router /subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.subjectService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
