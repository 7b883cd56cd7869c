package dto

import "github.com/omarhn/registra/internal/app/models"

// RegisterStudentRequest is the payload for student registration.
type RegisterStudentRequest struct {
	StudentNumber int64   `json:"studentNumber" binding:"required" example:"1001"`
	Name          string  `json:"name" binding:"required" example:"Aya Hassan"`
	Password      string  `json:"password" binding:"required" example:"pw12345a"`
	GPA           float64 `json:"gpa" example:"3.5"`
}

// StudentListResponse is the page of students returned by the list endpoint.
type StudentListResponse struct {
	Students   []*models.Student `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// SetSubjectsRequest replaces a student's completed or requested subject set.
type SetSubjectsRequest struct {
	SubjectIDs []int64 `json:"subjectIds" binding:"required"`
}

// AssignDepartmentRequest sets or clears a student's department membership.
type AssignDepartmentRequest struct {
	DepartmentID *int64 `json:"departmentId"`
}
