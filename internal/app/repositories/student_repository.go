package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/db"
	"github.com/omarhn/registra/internal/pkg/apperrors"
	"github.com/omarhn/registra/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create persists a new student and assigns its identifier. The unique index
// on student_number makes the uniqueness check atomic with the insert.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_number, name, password_hash, password_salt, gpa, department_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentNumber,
		student.Name,
		student.PasswordHash,
		student.PasswordSalt,
		student.GPA,
		student.DepartmentID,
	).Scan(&student.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("student number already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewDanglingReferenceError("department does not exist")
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by identifier, including its subject sets.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByStudentNumber retrieves a student by its unique student number.
func (r *StudentRepository) GetByStudentNumber(ctx context.Context, number int64) (*models.Student, error) {
	return r.getOne(ctx, `WHERE student_number = $1`, number)
}

func (r *StudentRepository) getOne(ctx context.Context, where string, arg any) (*models.Student, error) {
	query := `
		SELECT id, student_number, name, password_hash, password_salt, gpa, department_id
		FROM students ` + where

	var student models.Student
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&student.ID,
		&student.StudentNumber,
		&student.Name,
		&student.PasswordHash,
		&student.PasswordSalt,
		&student.GPA,
		&student.DepartmentID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if err := r.loadSubjectSets(ctx, []*models.Student{&student}); err != nil {
		return nil, err
	}

	return &student, nil
}

// GetAll retrieves all students with their subject sets. Order is not
// guaranteed; callers apply their own ordering and filtering.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, student_number, name, password_hash, password_salt, gpa, department_id
		FROM students
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.StudentNumber,
			&student.Name,
			&student.PasswordHash,
			&student.PasswordSalt,
			&student.GPA,
			&student.DepartmentID,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadSubjectSets(ctx, students); err != nil {
		return nil, err
	}

	return students, nil
}

// loadSubjectSets populates the completed and requested subject id sets.
func (r *StudentRepository) loadSubjectSets(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Student, len(students))
	ids := make([]int64, 0, len(students))
	for _, s := range students {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}

	load := func(table string, assign func(*models.Student, int64)) error {
		query := fmt.Sprintf(`SELECT student_id, subject_id FROM %s WHERE student_id = ANY($1)`, table)
		rows, err := r.db.Query(ctx, query, ids)
		if err != nil {
			return fmt.Errorf("error loading subject set %s: %w", table, err)
		}
		defer rows.Close()

		for rows.Next() {
			var studentID, subjectID int64
			if err := rows.Scan(&studentID, &subjectID); err != nil {
				return err
			}
			if s, ok := byID[studentID]; ok {
				assign(s, subjectID)
			}
		}
		return rows.Err()
	}

	if err := load("student_completed_subjects", func(s *models.Student, id int64) {
		s.CompletedSubjectIDs = append(s.CompletedSubjectIDs, id)
	}); err != nil {
		return err
	}

	return load("student_requested_subjects", func(s *models.Student, id int64) {
		s.RequestedSubjectIDs = append(s.RequestedSubjectIDs, id)
	})
}

// Delete removes a student by identifier. A second delete of the same
// identifier reports NotFound; identifiers are never reused.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// ReplaceCompletedSubjects transactionally replaces the completed subject set.
func (r *StudentRepository) ReplaceCompletedSubjects(ctx context.Context, studentID int64, subjectIDs []int64) error {
	return r.replaceSubjectSet(ctx, "student_completed_subjects", studentID, subjectIDs)
}

// ReplaceRequestedSubjects transactionally replaces the requested subject set.
func (r *StudentRepository) ReplaceRequestedSubjects(ctx context.Context, studentID int64, subjectIDs []int64) error {
	return r.replaceSubjectSet(ctx, "student_requested_subjects", studentID, subjectIDs)
}

func (r *StudentRepository) replaceSubjectSet(ctx context.Context, table string, studentID int64, subjectIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, studentID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking student existence: %w", err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}

		if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE student_id = $1`, table), studentID); err != nil {
			return fmt.Errorf("error clearing subject set: %w", err)
		}

		for _, subjectID := range subjectIDs {
			_, err := tx.Exec(ctx,
				fmt.Sprintf(`INSERT INTO %s (student_id, subject_id) VALUES ($1, $2)`, table),
				studentID, subjectID)
			if err != nil {
				if dberrors.IsForeignKeyViolation(err) {
					return apperrors.NewDanglingReferenceError(fmt.Sprintf("subject %d does not exist", subjectID))
				}
				return fmt.Errorf("error writing subject set: %w", err)
			}
		}

		return nil
	})
}

// SetDepartment sets or clears a student's department membership.
func (r *StudentRepository) SetDepartment(ctx context.Context, studentID int64, departmentID *int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE students SET department_id = $1 WHERE id = $2`, departmentID, studentID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewDanglingReferenceError("department does not exist")
		}
		return fmt.Errorf("error assigning department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
