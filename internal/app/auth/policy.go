// Package auth implements the access policy: which capabilities a principal's
// role carries, and the check every guarded operation runs against it.
package auth

import (
	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/pkg/apperrors"
)

// Capability names a permission required by an operation.
type Capability string

const (
	// CapReadOwnRecord lets a principal read its own record.
	CapReadOwnRecord Capability = "records:read-own"
	// CapManageStudents covers create/list/delete of student records.
	CapManageStudents Capability = "students:manage"
	// CapManageStaff covers create/list/delete of staff records.
	CapManageStaff Capability = "staff:manage"
	// CapManageCatalog covers subject and department administration.
	CapManageCatalog Capability = "catalog:manage"
)

// Policy resolves capability sets from roles. Students read their own record
// only; staff with an administrative sub-role manage all record kinds.
type Policy struct {
	adminRoles map[models.StaffRole]struct{}
}

// NewPolicy builds a policy treating the given staff sub-roles as
// administrative. The admin role is always included.
func NewPolicy(adminRoles ...models.StaffRole) *Policy {
	roles := map[models.StaffRole]struct{}{
		models.StaffRoleAdmin: {},
	}
	for _, r := range adminRoles {
		roles[r] = struct{}{}
	}
	return &Policy{adminRoles: roles}
}

// Capabilities returns the capability set for a principal.
func (p *Policy) Capabilities(roleType models.RoleType, staffRole models.StaffRole) []Capability {
	switch roleType {
	case models.RoleStudent:
		return []Capability{CapReadOwnRecord}
	case models.RoleStaff:
		caps := []Capability{CapReadOwnRecord}
		if _, ok := p.adminRoles[staffRole]; ok {
			caps = append(caps, CapManageStudents, CapManageStaff, CapManageCatalog)
		}
		return caps
	default:
		return nil
	}
}

// Allows reports whether the principal's role carries the capability.
func (p *Policy) Allows(roleType models.RoleType, staffRole models.StaffRole, cap Capability) bool {
	for _, c := range p.Capabilities(roleType, staffRole) {
		if c == cap {
			return true
		}
	}
	return false
}

// Check returns ErrForbidden when the principal lacks the capability.
func (p *Policy) Check(roleType models.RoleType, staffRole models.StaffRole, cap Capability) error {
	if !p.Allows(roleType, staffRole, cap) {
		return apperrors.NewForbiddenError("missing capability: " + string(cap))
	}
	return nil
}
