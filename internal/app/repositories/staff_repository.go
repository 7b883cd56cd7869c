package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/pkg/apperrors"
	"github.com/omarhn/registra/internal/pkg/dberrors"
)

// StaffRepository handles database operations for staff members
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create persists a new staff member and assigns its identifier. The unique
// index on email makes the uniqueness check atomic with the insert.
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	query := `
		INSERT INTO staff (name, email, role, password_hash, password_salt)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		staff.Name,
		staff.Email,
		staff.Role,
		staff.PasswordHash,
		staff.PasswordSalt,
	).Scan(&staff.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("email already exists")
		}
		return fmt.Errorf("error creating staff member: %w", err)
	}

	return nil
}

// GetByID retrieves a staff member by identifier
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByEmail retrieves a staff member by email. Emails are stored lowercased;
// the caller normalizes before lookup.
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *StaffRepository) getOne(ctx context.Context, where string, arg any) (*models.Staff, error) {
	query := `
		SELECT id, name, email, role, password_hash, password_salt
		FROM staff ` + where

	var staff models.Staff
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&staff.ID,
		&staff.Name,
		&staff.Email,
		&staff.Role,
		&staff.PasswordHash,
		&staff.PasswordSalt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving staff member: %w", err)
	}

	return &staff, nil
}

// GetAll retrieves all staff members. Order is not guaranteed.
func (r *StaffRepository) GetAll(ctx context.Context) ([]*models.Staff, error) {
	query := `
		SELECT id, name, email, role, password_hash, password_salt
		FROM staff
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing staff: %w", err)
	}
	defer rows.Close()

	var members []*models.Staff
	for rows.Next() {
		var staff models.Staff
		if err := rows.Scan(
			&staff.ID,
			&staff.Name,
			&staff.Email,
			&staff.Role,
			&staff.PasswordHash,
			&staff.PasswordSalt,
		); err != nil {
			return nil, err
		}
		members = append(members, &staff)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// Delete removes a staff member by identifier. A second delete of the same
// identifier reports NotFound.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting staff member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
