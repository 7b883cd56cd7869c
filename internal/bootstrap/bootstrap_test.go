package bootstrap

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appAuth "github.com/omarhn/registra/internal/app/auth"
	appModels "github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/config"
)

func TestBuildDependenciesPolicyUsesAdminRolesOnly(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.Records.PageSize = 10
	cfg.Records.StaffRoles = []string{"admin", "registrar"}
	cfg.Records.AdminRoles = []string{"admin"}
	cfg.Records.CredentialIterations = 1000

	deps, err := BuildDependencies(cfg, nil, zerolog.Nop())
	require.NoError(t, err)

	// Registrable does not mean administrative: a registrar can read its own
	// record but manages nothing.
	assert.True(t, deps.Policy.Allows(appModels.RoleStaff, appModels.StaffRoleAdmin, appAuth.CapManageStudents))
	assert.False(t, deps.Policy.Allows(appModels.RoleStaff, "registrar", appAuth.CapManageStudents))
	assert.False(t, deps.Policy.Allows(appModels.RoleStaff, "registrar", appAuth.CapManageStaff))
	assert.False(t, deps.Policy.Allows(appModels.RoleStaff, "registrar", appAuth.CapManageCatalog))
	assert.True(t, deps.Policy.Allows(appModels.RoleStaff, "registrar", appAuth.CapReadOwnRecord))
}

func TestBuildDependenciesExtraAdminRole(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.Records.PageSize = 10
	cfg.Records.StaffRoles = []string{"admin", "registrar", "dean"}
	cfg.Records.AdminRoles = []string{"admin", "dean"}
	cfg.Records.CredentialIterations = 1000

	deps, err := BuildDependencies(cfg, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.True(t, deps.Policy.Allows(appModels.RoleStaff, "dean", appAuth.CapManageCatalog))
	assert.False(t, deps.Policy.Allows(appModels.RoleStaff, "registrar", appAuth.CapManageCatalog))
}
