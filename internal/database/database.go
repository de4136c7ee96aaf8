package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/forkful/forkful-backend/config"
)

// Connect opens the MongoDB client and verifies the connection. The caller
// owns the client and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("error pinging MongoDB: %w", err)
	}

	log.Printf("Successfully connected to MongoDB, using database %q", cfg.MongoDB)
	return client, nil
}

// HealthCheck checks if the document store is accessible.
func HealthCheck(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}
