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

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// Create persists a subject and its ordered prerequisite references in one
// transaction, so a dangling prerequisite leaves no partial record.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO subjects (code, name, credit_hours)
			VALUES ($1, $2, $3)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, subject.Code, subject.Name, subject.CreditHours).Scan(&subject.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewConflictError("subject code already exists")
			}
			return fmt.Errorf("error creating subject: %w", err)
		}

		for position, prereqID := range subject.PrerequisiteIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO subject_prerequisites (subject_id, prerequisite_id, position)
				VALUES ($1, $2, $3)`,
				subject.ID, prereqID, position)
			if err != nil {
				if dberrors.IsForeignKeyViolation(err) {
					return apperrors.NewDanglingReferenceError(fmt.Sprintf("prerequisite subject %d does not exist", prereqID))
				}
				return fmt.Errorf("error writing prerequisite: %w", err)
			}
		}

		return nil
	})
}

// GetByID retrieves a subject by identifier with its ordered prerequisites.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, code, name, credit_hours
		FROM subjects
		WHERE id = $1
	`

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.Code,
		&subject.Name,
		&subject.CreditHours,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	if err := r.loadPrerequisites(ctx, []*models.Subject{&subject}); err != nil {
		return nil, err
	}

	return &subject, nil
}

// GetAll retrieves all subjects with their prerequisites. Order is not
// guaranteed.
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, name, credit_hours FROM subjects`)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Code, &subject.Name, &subject.CreditHours); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadPrerequisites(ctx, subjects); err != nil {
		return nil, err
	}

	return subjects, nil
}

// loadPrerequisites populates ordered prerequisite id sequences.
func (r *SubjectRepository) loadPrerequisites(ctx context.Context, subjects []*models.Subject) error {
	if len(subjects) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Subject, len(subjects))
	ids := make([]int64, 0, len(subjects))
	for _, s := range subjects {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}

	rows, err := r.db.Query(ctx, `
		SELECT subject_id, prerequisite_id
		FROM subject_prerequisites
		WHERE subject_id = ANY($1)
		ORDER BY subject_id, position`, ids)
	if err != nil {
		return fmt.Errorf("error loading prerequisites: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var subjectID, prereqID int64
		if err := rows.Scan(&subjectID, &prereqID); err != nil {
			return err
		}
		if s, ok := byID[subjectID]; ok {
			s.PrerequisiteIDs = append(s.PrerequisiteIDs, prereqID)
		}
	}

	return rows.Err()
}

// Delete removes a subject by identifier. Deletion is forbidden while the
// subject is referenced as a prerequisite or by any student's subject sets.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("subject is still referenced and cannot be deleted")
		}
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
