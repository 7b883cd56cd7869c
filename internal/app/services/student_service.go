package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/app/repositories"
	"github.com/omarhn/registra/internal/config"
	"github.com/omarhn/registra/internal/pkg/apperrors"
	"github.com/omarhn/registra/internal/pkg/credentials"
)

// StudentService handles student lifecycle operations
type StudentService struct {
	studentRepo repositories.IStudentRepository
	codec       *credentials.Codec
	cfg         *config.Config
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository, codec *credentials.Codec, cfg *config.Config) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		codec:       codec,
		cfg:         cfg,
	}
}

// validateRegistration validates student data before the store write
func (s *StudentService) validateRegistration(req *dto.RegisterStudentRequest) error {
	if req == nil {
		return apperrors.NewValidationError("request is nil")
	}

	if req.StudentNumber <= 0 {
		return apperrors.NewValidationError("student number must be positive")
	}

	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}

	if req.Password == "" {
		return apperrors.NewValidationError("password cannot be empty")
	}

	if req.GPA < s.cfg.Records.GPAMin || req.GPA > s.cfg.Records.GPAMax {
		return apperrors.NewValidationError(fmt.Sprintf("gpa must be within [%.1f, %.1f]",
			s.cfg.Records.GPAMin, s.cfg.Records.GPAMax))
	}

	return nil
}

// Register creates a new student record. The plaintext password is replaced by
// a derived credential before anything is persisted.
func (s *StudentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	cred, err := s.codec.Derive(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error deriving credential: %w", err)
	}

	student := &models.Student{
		StudentNumber: req.StudentNumber,
		Name:          strings.TrimSpace(req.Name),
		PasswordHash:  cred.Hash,
		PasswordSalt:  cred.Salt,
		GPA:           req.GPA,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error registering student: %w", err)
	}

	return student, nil
}

// List retrieves all students
func (s *StudentService) List(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// Get retrieves a student by identifier
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid student ID")
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// Remove deletes a student record. A second removal of the same identifier
// reports NotFound.
func (s *StudentService) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid student ID")
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error removing student: %w", err)
	}
	return nil
}

// SetCompletedSubjects replaces a student's completed subject set. The set
// must stay disjoint from the requested set.
func (s *StudentService) SetCompletedSubjects(ctx context.Context, id int64, subjectIDs []int64) (*models.Student, error) {
	return s.setSubjects(ctx, id, subjectIDs, true)
}

// SetRequestedSubjects replaces a student's requested subject set. A subject
// already completed cannot be requested again.
func (s *StudentService) SetRequestedSubjects(ctx context.Context, id int64, subjectIDs []int64) (*models.Student, error) {
	return s.setSubjects(ctx, id, subjectIDs, false)
}

func (s *StudentService) setSubjects(ctx context.Context, id int64, subjectIDs []int64, completed bool) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid student ID")
	}

	deduped, err := dedupeSubjectIDs(subjectIDs)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	other := student.RequestedSubjectIDs
	if !completed {
		other = student.CompletedSubjectIDs
	}
	for _, subjectID := range deduped {
		for _, existing := range other {
			if subjectID == existing {
				return nil, apperrors.NewValidationError(
					fmt.Sprintf("subject %d cannot be both completed and requested", subjectID))
			}
		}
	}

	if completed {
		err = s.studentRepo.ReplaceCompletedSubjects(ctx, id, deduped)
	} else {
		err = s.studentRepo.ReplaceRequestedSubjects(ctx, id, deduped)
	}
	if err != nil {
		return nil, fmt.Errorf("error updating subject set: %w", err)
	}

	student, err = s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// AssignDepartment sets or clears a student's department membership
func (s *StudentService) AssignDepartment(ctx context.Context, id int64, departmentID *int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid student ID")
	}
	if departmentID != nil && *departmentID <= 0 {
		return apperrors.NewValidationError("invalid department ID")
	}

	if err := s.studentRepo.SetDepartment(ctx, id, departmentID); err != nil {
		return fmt.Errorf("error assigning department: %w", err)
	}
	return nil
}

func dedupeSubjectIDs(ids []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, apperrors.NewValidationError("subject IDs must be positive")
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
