// Package repositories is the persistence boundary. Uniqueness and
// referential integrity are enforced here, against the database's own
// unique-index and foreign-key constraints, and surfaced as the store error
// kinds (Conflict, DanglingReference, NotFound). No other component queries
// the database directly.
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/omarhn/registra/internal/app/models"
)

// IStudentRepository defines the interface for student persistence.
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByStudentNumber(ctx context.Context, number int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Delete(ctx context.Context, id int64) error
	ReplaceCompletedSubjects(ctx context.Context, studentID int64, subjectIDs []int64) error
	ReplaceRequestedSubjects(ctx context.Context, studentID int64, subjectIDs []int64) error
	SetDepartment(ctx context.Context, studentID int64, departmentID *int64) error
}

// IStaffRepository defines the interface for staff persistence.
type IStaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByID(ctx context.Context, id int64) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	GetAll(ctx context.Context) ([]*models.Staff, error)
	Delete(ctx context.Context, id int64) error
}

// ISubjectRepository defines the interface for subject persistence.
type ISubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAll(ctx context.Context) ([]*models.Subject, error)
	Delete(ctx context.Context, id int64) error
}

// IDepartmentRepository defines the interface for department persistence.
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Delete(ctx context.Context, id int64) error
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	StaffRepository      *StaffRepository
	SubjectRepository    *SubjectRepository
	DepartmentRepository *DepartmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		StaffRepository:      NewStaffRepository(db),
		SubjectRepository:    NewSubjectRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
	}
}
