package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/app/repositories"
	"github.com/omarhn/registra/internal/pkg/apperrors"
)

// SubjectService handles subject catalog operations
type SubjectService struct {
	subjectRepo repositories.ISubjectRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo repositories.ISubjectRepository) *SubjectService {
	return &SubjectService{subjectRepo: subjectRepo}
}

// validateSubject validates subject data before the store write
func (s *SubjectService) validateSubject(req *dto.CreateSubjectRequest) error {
	if req == nil {
		return apperrors.NewValidationError("request is nil")
	}

	if strings.TrimSpace(req.Code) == "" {
		return apperrors.NewValidationError("code cannot be empty")
	}

	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}

	if req.CreditHours <= 0 {
		return apperrors.NewValidationError("credit hours must be positive")
	}

	seen := make(map[int64]struct{}, len(req.PrerequisiteIDs))
	for _, id := range req.PrerequisiteIDs {
		if id <= 0 {
			return apperrors.NewValidationError("prerequisite IDs must be positive")
		}
		if _, dup := seen[id]; dup {
			return apperrors.NewValidationError(fmt.Sprintf("duplicate prerequisite %d", id))
		}
		seen[id] = struct{}{}
	}

	return nil
}

// Create adds a subject with its ordered prerequisites. Every prerequisite
// must resolve to an existing subject or the whole create fails.
func (s *SubjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validateSubject(req); err != nil {
		return nil, err
	}

	subject := &models.Subject{
		Code:            strings.TrimSpace(req.Code),
		Name:            strings.TrimSpace(req.Name),
		CreditHours:     req.CreditHours,
		PrerequisiteIDs: req.PrerequisiteIDs,
	}

	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, fmt.Errorf("error creating subject: %w", err)
	}

	return subject, nil
}

// List retrieves all subjects
func (s *SubjectService) List(ctx context.Context) ([]*models.Subject, error) {
	subjects, err := s.subjectRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	return subjects, nil
}

// Get retrieves a subject by identifier
func (s *SubjectService) Get(ctx context.Context, id int64) (*models.Subject, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid subject ID")
	}

	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}
	return subject, nil
}

// Delete removes a subject. Subjects still referenced by prerequisites or
// student subject sets cannot be deleted.
func (s *SubjectService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid subject ID")
	}

	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}
	return nil
}
