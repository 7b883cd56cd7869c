// Package controllers renders the HTTP surface: bind, delegate to a service,
// wrap the result in the response envelope.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/app/services"
	"github.com/omarhn/registra/internal/middleware"
)

// AuthController handles authentication operations
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates a principal by student number or staff email
// @Summary Authenticate a principal
// @Description Accepts a student number or staff email plus password and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Authenticated"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindValidation, "identifier and password are required"))
		return
	}

	tokens, err := c.authService.Authenticate(ctx.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokens))
}
