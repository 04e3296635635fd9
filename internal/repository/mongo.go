package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection       = "users"
	costsCollection       = "costs"
	reportsCollection     = "reports"
	requestLogsCollection = "requestlogs"
)

// ErrDuplicate is returned when an insert violates a unique index
var ErrDuplicate = errors.New("document with this key already exists")

// EnsureIndexes creates the indexes the repositories rely on.
// Unique indexes on users.id and reports (userid, year, month) make user creation
// and report persistence write-once.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		costsCollection: {
			{Keys: bson.D{{Key: "userid", Value: 1}, {Key: "date", Value: 1}}},
		},
		reportsCollection: {
			{
				Keys:    bson.D{{Key: "userid", Value: 1}, {Key: "year", Value: 1}, {Key: "month", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}
	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo couldn't CreateMany indexes on %s: %w", collection, err)
		}
	}
	return nil
}

func insertErr(method string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return fmt.Errorf("mongo couldn't InsertOne in %s method: %w", method, err)
}
