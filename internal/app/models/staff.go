package models

// Staff defines the staff model based on the 'staff' table
type Staff struct {
	ID           int64     `json:"id" db:"id" example:"1"`                     // Immutable record identifier, never reused
	Name         string    `json:"name" db:"name" example:"Omar Khalil"`       // Full name
	Email        string    `json:"email" db:"email" example:"omar@school.edu"` // Unique, stored lowercased
	Role         StaffRole `json:"role" db:"role" example:"admin"`             // Member of the configured role enumeration
	PasswordHash string    `json:"-" db:"password_hash"`                       // Derived secret (excluded from JSON)
	PasswordSalt string    `json:"-" db:"password_salt"`                       // Per-credential salt (excluded from JSON)
}
