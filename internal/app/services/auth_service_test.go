package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/pkg/apperrors"
	"github.com/omarhn/registra/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *StudentService, *StaffService, *auth.JWTService) {
	t.Helper()

	store := newFakeStore()
	studentRepo := &fakeStudentRepo{store: store}
	staffRepo := &fakeStaffRepo{store: store}
	cfg := testConfig()
	codec := testCodec()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Minute,
		TokenIssuer:    "registra-test",
	})

	authService := NewAuthService(studentRepo, staffRepo, codec, jwtService, zerolog.Nop())
	studentService := newStudentService(store)
	staffService := NewStaffService(staffRepo, codec, cfg)
	return authService, studentService, staffService, jwtService
}

func TestAuthenticateStudentByNumber(t *testing.T) {
	ctx := context.Background()
	authService, studentService, _, jwtService := newAuthFixture(t)

	student, err := studentService.Register(ctx, &dto.RegisterStudentRequest{
		StudentNumber: 1001,
		Name:          "Aya",
		Password:      "pw123",
		GPA:           3.5,
	})
	require.NoError(t, err)

	tokens, err := authService.Authenticate(ctx, "1001", "pw123")
	require.NoError(t, err)
	assert.Equal(t, student.ID, tokens.Principal.ID)
	assert.Equal(t, models.RoleStudent, tokens.Principal.RoleType)
	assert.NotEmpty(t, tokens.RefreshToken)

	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, student.ID, claims.PrincipalID)
	assert.Equal(t, models.RoleStudent, claims.RoleType)
	assert.Empty(t, claims.StaffRole)
}

func TestAuthenticateStaffByEmail(t *testing.T) {
	ctx := context.Background()
	authService, _, staffService, jwtService := newAuthFixture(t)

	staff, err := staffService.Register(ctx, &dto.RegisterStaffRequest{
		Name:     "Omar",
		Email:    "omar@school.edu",
		Role:     "registrar",
		Password: "pw456",
	})
	require.NoError(t, err)

	// Identifier casing must not matter for staff email
	tokens, err := authService.Authenticate(ctx, "  OMAR@School.EDU ", "pw456")
	require.NoError(t, err)
	assert.Equal(t, staff.ID, tokens.Principal.ID)
	assert.Equal(t, models.RoleStaff, tokens.Principal.RoleType)

	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, claims.RoleType)
	assert.Equal(t, models.StaffRole("registrar"), claims.StaffRole)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	ctx := context.Background()
	authService, studentService, _, _ := newAuthFixture(t)

	_, err := studentService.Register(ctx, &dto.RegisterStudentRequest{
		StudentNumber: 1001,
		Name:          "Aya",
		Password:      "pw123",
		GPA:           3.5,
	})
	require.NoError(t, err)

	_, wrongPassword := authService.Authenticate(ctx, "1001", "nope")
	_, unknownStudent := authService.Authenticate(ctx, "9999", "pw123")
	_, unknownStaff := authService.Authenticate(ctx, "nobody@school.edu", "pw123")
	_, emptyPassword := authService.Authenticate(ctx, "1001", "")

	// Wrong password and unknown identity are indistinguishable to the caller
	assert.Equal(t, apperrors.ErrAuthFailure, wrongPassword)
	assert.Equal(t, apperrors.ErrAuthFailure, unknownStudent)
	assert.Equal(t, apperrors.ErrAuthFailure, unknownStaff)
	assert.Equal(t, apperrors.ErrAuthFailure, emptyPassword)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Minute,
		TokenIssuer:    "registra-test",
	})

	_, err := jwtService.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	other := auth.NewJWTService(auth.JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Minute})
	token, _, _, err := other.GenerateTokenPair(1, models.RoleStaff, models.StaffRoleAdmin)
	require.NoError(t, err)

	// Token signed with a different secret must not validate
	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
