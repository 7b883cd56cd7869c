package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64   `json:"id" db:"id" example:"1"`                                // Immutable record identifier, never reused
	StudentNumber int64   `json:"studentNumber" db:"student_number" example:"1001"`      // Institution-wide unique student number
	Name          string  `json:"name" db:"name" example:"Aya Hassan"`                   // Full name
	PasswordHash  string  `json:"-" db:"password_hash"`                                  // Derived secret (excluded from JSON)
	PasswordSalt  string  `json:"-" db:"password_salt"`                                  // Per-credential salt (excluded from JSON)
	GPA           float64 `json:"gpa" db:"gpa" example:"3.5"`                            // Grade point average, defaults to 0.0
	DepartmentID  *int64  `json:"departmentId,omitempty" db:"department_id" example:"2"` // Optional department membership

	// Subject reference sets, stored as identifiers only
	CompletedSubjectIDs []int64 `json:"completedSubjectIds"`
	RequestedSubjectIDs []int64 `json:"requestedSubjectIds"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
