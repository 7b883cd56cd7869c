package dto

import "github.com/omarhn/registra/internal/app/models"

// RegisterStaffRequest is the payload for staff registration.
type RegisterStaffRequest struct {
	Name     string `json:"name" binding:"required" example:"Omar Khalil"`
	Email    string `json:"email" binding:"required" example:"omar@school.edu"`
	Role     string `json:"role" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"pw12345a"`
}

// StaffListResponse is the page of staff returned by the list endpoint.
type StaffListResponse struct {
	Staff      []*models.Staff `json:"staff"`
	Pagination PaginationInfo  `json:"pagination"`
}
