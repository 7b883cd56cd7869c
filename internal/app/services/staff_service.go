package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/app/repositories"
	"github.com/omarhn/registra/internal/config"
	"github.com/omarhn/registra/internal/pkg/apperrors"
	"github.com/omarhn/registra/internal/pkg/credentials"
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// StaffService handles staff lifecycle operations
type StaffService struct {
	staffRepo repositories.IStaffRepository
	codec     *credentials.Codec
	cfg       *config.Config
}

// NewStaffService creates a new staff service instance
func NewStaffService(staffRepo repositories.IStaffRepository, codec *credentials.Codec, cfg *config.Config) *StaffService {
	return &StaffService{
		staffRepo: staffRepo,
		codec:     codec,
		cfg:       cfg,
	}
}

// validateRegistration validates staff data before the store write.
// Emails are compared case-insensitively: normalization happens here, once,
// before the uniqueness check.
func (s *StaffService) validateRegistration(req *dto.RegisterStaffRequest) (email string, err error) {
	if req == nil {
		return "", apperrors.NewValidationError("request is nil")
	}

	if strings.TrimSpace(req.Name) == "" {
		return "", apperrors.NewValidationError("name cannot be empty")
	}

	email = strings.ToLower(strings.TrimSpace(req.Email))
	if !emailRegex.MatchString(email) {
		return "", apperrors.NewValidationError("invalid email format")
	}

	if !s.cfg.IsValidStaffRole(req.Role) {
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown role %q", req.Role))
	}

	if req.Password == "" {
		return "", apperrors.NewValidationError("password cannot be empty")
	}

	return email, nil
}

// Register creates a new staff record
func (s *StaffService) Register(ctx context.Context, req *dto.RegisterStaffRequest) (*models.Staff, error) {
	email, err := s.validateRegistration(req)
	if err != nil {
		return nil, err
	}

	cred, err := s.codec.Derive(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error deriving credential: %w", err)
	}

	staff := &models.Staff{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Role:         models.StaffRole(strings.TrimSpace(req.Role)),
		PasswordHash: cred.Hash,
		PasswordSalt: cred.Salt,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, fmt.Errorf("error registering staff member: %w", err)
	}

	return staff, nil
}

// List retrieves all staff members
func (s *StaffService) List(ctx context.Context) ([]*models.Staff, error) {
	members, err := s.staffRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing staff: %w", err)
	}
	return members, nil
}

// Get retrieves a staff member by identifier
func (s *StaffService) Get(ctx context.Context, id int64) (*models.Staff, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid staff ID")
	}

	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving staff member: %w", err)
	}
	return staff, nil
}

// Remove deletes a staff record. A second removal of the same identifier
// reports NotFound.
func (s *StaffService) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid staff ID")
	}

	if err := s.staffRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error removing staff member: %w", err)
	}
	return nil
}
