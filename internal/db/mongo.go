package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartschool/backend/internal/config"
	"github.com/smartschool/backend/internal/pkg/logger"
)

// Mongo wraps the connected client and the application database handle.
// It is constructed once at startup and passed into the repositories,
// never accessed through package globals.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongo establishes the MongoDB connection and verifies it with a ping.
func NewMongo(cfg *config.Config) (*Mongo, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetServerSelectionTimeout(30 * time.Second).
		SetSocketTimeout(45 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		logger.Error().Err(err).Msg("Failed to ping MongoDB")
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info().Str("db", cfg.Database.DBName).Msg("MongoDB connection established")

	return &Mongo{
		Client:   client,
		Database: client.Database(cfg.Database.DBName),
	}, nil
}

// EnsureIndexes creates the indexes the repositories rely on.
// The unique index on admins.username backs the duplicate-username error.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection("admins").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique index on admins.username: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
