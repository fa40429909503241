package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/pkg/apperrors"
	"github.com/smartschool/backend/internal/pkg/logger"
)

// AdminRepository handles admin account operations.
type AdminRepository struct {
	coll *mongo.Collection
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(database *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: database.Collection("admins")}
}

// FindByCredentials looks up an admin by exact username/password match.
// The comparison is case-sensitive and the stored password is never
// transformed; see the startup warning in seed.
func (r *AdminRepository) FindByCredentials(ctx context.Context, username, password string) (*models.Admin, error) {
	var admin models.Admin
	err := r.coll.FindOne(ctx, bson.M{"username": username, "password": password}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		logger.Error().Err(err).Str("username", username).Msg("Error looking up admin credentials")
		return nil, apperrors.NewPersistenceError(err, "failed to look up admin")
	}
	return &admin, nil
}

// UsernameExists reports whether an admin with the given username exists.
func (r *AdminRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		logger.Error().Err(err).Str("username", username).Msg("Error checking admin existence")
		return false, apperrors.NewPersistenceError(err, "failed to check admin existence")
	}
	return count > 0, nil
}

// Create inserts a new admin. Usernames are unique; a duplicate surfaces
// as ErrDuplicateUsername via the unique index.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	if admin.Username == "" || admin.Password == "" {
		return apperrors.NewValidationError("username and password are required")
	}

	admin.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, admin)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrDuplicateUsername
	}
	if err != nil {
		logger.Error().Err(err).Str("username", admin.Username).Msg("Error creating admin")
		return apperrors.NewPersistenceError(err, "failed to create admin")
	}

	admin.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
