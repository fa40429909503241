// Package seed creates the data the application expects on first run.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/pkg/apperrors"
)

// AdminStore is the subset of the admin repository the seeder needs.
type AdminStore interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, admin *models.Admin) error
}

// Default admin credentials, matching what the deployed site's frontend
// expects on a fresh install.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@smartschool.com"
)

// EnsureDefaultAdmin creates the default admin account if no admin with
// that username exists. It is idempotent and safe to run on every
// startup; a populated store is left untouched.
func EnsureDefaultAdmin(ctx context.Context, admins AdminStore, lgr zerolog.Logger) error {
	exists, err := admins.UsernameExists(ctx, defaultAdminUsername)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin")
		return err
	}
	if exists {
		lgr.Info().Msg("Default admin already exists, skipping creation")
		return nil
	}

	admin := &models.Admin{
		Username: defaultAdminUsername,
		Password: defaultAdminPassword,
		Email:    defaultAdminEmail,
	}
	if err := admins.Create(ctx, admin); err != nil {
		// A concurrent startup may have won the race; the unique index
		// makes that outcome equivalent to "already exists".
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			lgr.Info().Msg("Default admin created concurrently, skipping")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}

	lgr.Info().Str("username", defaultAdminUsername).Msg("Default admin created")
	lgr.Warn().Msg("Admin credentials are stored and compared in plaintext for compatibility with existing accounts")
	return nil
}
