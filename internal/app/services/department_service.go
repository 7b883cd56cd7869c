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

// DepartmentService handles department catalog operations
type DepartmentService struct {
	departmentRepo repositories.IDepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo repositories.IDepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

// Create adds a new department
func (s *DepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("request is nil")
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	if strings.TrimSpace(req.Code) == "" {
		return nil, apperrors.NewValidationError("code cannot be empty")
	}

	department := &models.Department{
		Name: strings.TrimSpace(req.Name),
		Code: strings.TrimSpace(req.Code),
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	return department, nil
}

// List retrieves all departments
func (s *DepartmentService) List(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	return departments, nil
}

// Get retrieves a department by identifier
func (s *DepartmentService) Get(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid department ID")
	}

	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return department, nil
}

// Delete removes a department. Departments with members cannot be deleted.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid department ID")
	}

	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	return nil
}
