package dto

// CreateSubjectRequest is the payload for subject creation. Prerequisites are
// ordered subject ids and must all resolve to existing subjects.
type CreateSubjectRequest struct {
	Code            string  `json:"code" binding:"required" example:"CS201"`
	Name            string  `json:"name" binding:"required" example:"Data Structures"`
	CreditHours     int     `json:"creditHours" binding:"required" example:"3"`
	PrerequisiteIDs []int64 `json:"prerequisiteIds"`
}

// CreateDepartmentRequest is the payload for department creation.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required" example:"Computer Engineering"`
	Code string `json:"code" binding:"required" example:"CENG"`
}
