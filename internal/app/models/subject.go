package models

// Subject represents a subject offered by the institution.
type Subject struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Code        string `json:"code" db:"code" example:"CS101"` // Unique subject code
	Name        string `json:"name" db:"name" example:"Introduction to Programming"`
	CreditHours int    `json:"creditHours" db:"credit_hours" example:"3"`

	// PrerequisiteIDs is the ordered sequence of subjects that must be
	// completed first. Every id must resolve to an existing subject.
	PrerequisiteIDs []int64 `json:"prerequisiteIds"`
}
