package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/app/repositories"
	"github.com/omarhn/registra/internal/pkg/apperrors"
	"github.com/omarhn/registra/internal/pkg/auth"
	"github.com/omarhn/registra/internal/pkg/credentials"
)

// AuthService authenticates principals against stored credentials.
type AuthService struct {
	studentRepo repositories.IStudentRepository
	staffRepo   repositories.IStaffRepository
	codec       *credentials.Codec
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	staffRepo repositories.IStaffRepository,
	codec *credentials.Codec,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		staffRepo:   staffRepo,
		codec:       codec,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Authenticate verifies a principal's password and issues a token pair. A
// numeric identifier is treated as a student number, anything else as a staff
// email. Unknown identity and wrong password produce the same ErrAuthFailure
// so callers cannot enumerate identities.
func (s *AuthService) Authenticate(ctx context.Context, identifier, password string) (*dto.TokenResponse, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, apperrors.ErrAuthFailure
	}

	if number, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		return s.authenticateStudent(ctx, number, password)
	}

	return s.authenticateStaff(ctx, identifier, password)
}

func (s *AuthService) authenticateStudent(ctx context.Context, number int64, password string) (*dto.TokenResponse, error) {
	student, err := s.studentRepo.GetByStudentNumber(ctx, number)
	if err != nil {
		return nil, apperrors.ErrAuthFailure
	}

	cred := credentials.Credential{Hash: student.PasswordHash, Salt: student.PasswordSalt}
	if !s.codec.Verify(password, cred) {
		return nil, apperrors.ErrAuthFailure
	}

	return s.issueTokens(student.ID, student.Name, models.RoleStudent, "")
}

func (s *AuthService) authenticateStaff(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, apperrors.ErrAuthFailure
	}

	cred := credentials.Credential{Hash: staff.PasswordHash, Salt: staff.PasswordSalt}
	if !s.codec.Verify(password, cred) {
		return nil, apperrors.ErrAuthFailure
	}

	return s.issueTokens(staff.ID, staff.Name, models.RoleStaff, staff.Role)
}

func (s *AuthService) issueTokens(id int64, name string, roleType models.RoleType, staffRole models.StaffRole) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(id, roleType, staffRole)
	if err != nil {
		s.logger.Error().Err(err).Int64("principalId", id).Msg("Failed to issue tokens")
		return nil, apperrors.ErrAuthFailure
	}

	s.logger.Info().Int64("principalId", id).Str("roleType", string(roleType)).Msg("Principal authenticated")

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		Principal: dto.Principal{
			ID:       id,
			Name:     name,
			RoleType: roleType,
			Role:     staffRole,
		},
	}, nil
}
