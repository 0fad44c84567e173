// Package mongo implements the repositories on MongoDB. Documents carry
// sequential int64 ids drawn from a counters collection, and the cascades a
// relational schema would enforce with foreign keys are done explicitly.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

const (
	collectionUsers     = "users"
	collectionQuestions = "questions"
	collectionAnswers   = "answers"
	collectionReports   = "reports"
	collectionCounters  = "counters"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the unique email index and the lookup indexes used by
// listings and cascades.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	specs := map[string][]mongo.IndexModel{
		collectionUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uq_users_email"),
			},
		},
		collectionAnswers: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "question_id", Value: 1}}},
		},
		collectionReports: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "answer_ids", Value: 1}}},
		},
	}

	for coll, indexes := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}

// removeAnswers deletes the answers matched by filter and pulls their ids out
// of every report.
func removeAnswers(ctx context.Context, db *mongo.Database, filter bson.M) error {
	answers := db.Collection(collectionAnswers)

	raw, err := answers.Distinct(ctx, "_id", filter)
	if err != nil {
		return fmt.Errorf("collect answers: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(int64); ok {
			ids = append(ids, id)
		}
	}

	if _, err := db.Collection(collectionReports).UpdateMany(ctx,
		bson.M{"answer_ids": bson.M{"$in": ids}},
		bson.M{"$pull": bson.M{"answer_ids": bson.M{"$in": ids}}},
	); err != nil {
		return fmt.Errorf("unlink answers: %w", err)
	}

	if _, err := answers.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("delete answers: %w", err)
	}
	return nil
}

func exists(ctx context.Context, coll *mongo.Collection, id int64) (bool, error) {
	n, err := coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
