package database

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const dbName = "petsDB"

// Connect opens the shared MongoDB client and returns the application database.
// The client is created once at startup and reused across all requests.
// The startup ping is logged but a failed ping does not abort the process.
func Connect(ctx context.Context, uri string) (*mongo.Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Warn().Err(err).Msg("MongoDB ping failed, continuing anyway")
	} else {
		log.Info().Msg("Successfully connected to MongoDB")
	}

	return client.Database(dbName), nil
}
