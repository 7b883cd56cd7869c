package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/pkg/apperrors"
)

func TestStudentCapabilities(t *testing.T) {
	policy := NewPolicy()

	assert.True(t, policy.Allows(models.RoleStudent, "", CapReadOwnRecord))
	assert.False(t, policy.Allows(models.RoleStudent, "", CapManageStudents))
	assert.False(t, policy.Allows(models.RoleStudent, "", CapManageStaff))
	assert.False(t, policy.Allows(models.RoleStudent, "", CapManageCatalog))
}

func TestAdminStaffManagesAllRecordKinds(t *testing.T) {
	policy := NewPolicy()

	for _, cap := range []Capability{CapReadOwnRecord, CapManageStudents, CapManageStaff, CapManageCatalog} {
		assert.True(t, policy.Allows(models.RoleStaff, models.StaffRoleAdmin, cap), "admin should hold %s", cap)
	}
}

func TestNonAdminStaffCannotManage(t *testing.T) {
	policy := NewPolicy()

	assert.True(t, policy.Allows(models.RoleStaff, "registrar", CapReadOwnRecord))
	assert.False(t, policy.Allows(models.RoleStaff, "registrar", CapManageStudents))
}

func TestExtraAdministrativeRoles(t *testing.T) {
	policy := NewPolicy("registrar")

	assert.True(t, policy.Allows(models.RoleStaff, "registrar", CapManageStudents))
	// The built-in admin role stays administrative
	assert.True(t, policy.Allows(models.RoleStaff, models.StaffRoleAdmin, CapManageStaff))
}

func TestCheckReturnsForbidden(t *testing.T) {
	policy := NewPolicy()

	err := policy.Check(models.RoleStudent, "", CapManageStudents)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	assert.NoError(t, policy.Check(models.RoleStaff, models.StaffRoleAdmin, CapManageStudents))
}

func TestUnknownRoleTypeHasNoCapabilities(t *testing.T) {
	policy := NewPolicy()
	assert.Empty(t, policy.Capabilities("VISITOR", ""))
}
