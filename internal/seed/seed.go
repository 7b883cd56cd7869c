// Package seed creates the baseline records a fresh installation needs: the
// default admin staff account and a small set of departments. Conflicts mean
// the data already exists and are not errors.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/app/repositories"
	"github.com/omarhn/registra/internal/config"
	"github.com/omarhn/registra/internal/pkg/apperrors"
	"github.com/omarhn/registra/internal/pkg/credentials"
)

// CreateDefaultData seeds the default admin staff account and baseline
// departments. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(dbPool)
	codec := credentials.NewCodec(cfg.Records.CredentialIterations)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	for _, d := range []models.Department{
		{Name: "Computer Engineering", Code: "CENG"},
		{Name: "Mathematics", Code: "MATH"},
	} {
		department := d
		err := repos.DepartmentRepository.Create(ctx, &department)
		if err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("code", d.Code).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	adminEmail := "admin@registra.local"
	if _, err := repos.StaffRepository.GetByEmail(ctx, adminEmail); err == nil {
		return finalErr
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		lgr.Error().Err(err).Msg("Error checking for default admin account")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Creating default admin account...")
	cred, err := codec.Derive("Admin123!")
	if err != nil {
		lgr.Error().Err(err).Msg("Error deriving admin credential")
		return errors.Join(finalErr, err)
	}

	admin := &models.Staff{
		Name:         "Default Admin",
		Email:        adminEmail,
		Role:         models.StaffRoleAdmin,
		PasswordHash: cred.Hash,
		PasswordSalt: cred.Salt,
	}
	if err := repos.StaffRepository.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrConflict) {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}
