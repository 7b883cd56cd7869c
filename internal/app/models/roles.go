package models

// RoleType distinguishes the two principal kinds that can authenticate.
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleStaff   RoleType = "STAFF"
)

// StaffRole is a staff sub-role drawn from the configured role enumeration.
// "admin" is always a member; the rest of the set is configuration, not code.
type StaffRole string

const (
	StaffRoleAdmin StaffRole = "admin"
)
