package dto

import "github.com/omarhn/registra/internal/app/models"

// LoginRequest authenticates a principal. Identifier is a student number for
// students or an email address for staff.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required" example:"1001"`
	Password   string `json:"password" binding:"required" example:"pw12345a"`
}

// Principal is the authenticated identity context returned by login.
type Principal struct {
	ID       int64            `json:"id" example:"1"`
	Name     string           `json:"name" example:"Aya Hassan"`
	RoleType models.RoleType  `json:"roleType" example:"STUDENT"`
	Role     models.StaffRole `json:"role,omitempty" example:"admin"` // Staff sub-role, empty for students
}

// TokenResponse carries the issued token pair.
type TokenResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresIn    int       `json:"expiresIn" example:"3600"`
	Principal    Principal `json:"principal"`
}
