package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	CollectionLeads = "leads"

	// Startup fails after this rather than retrying indefinitely.
	connectTimeout = 10 * time.Second
)

// NewMongoConnection opens the client, proves the server is reachable
// with a bounded ping, and ensures the indexes the lead collection
// relies on. The unique email index is what turns a duplicate insert
// into a conflict instead of a second record.
func NewMongoConnection(uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, nil, err
	}

	db := client.Database(dbName)
	if err := ensureLeadIndexes(ctx, db.Collection(CollectionLeads)); err != nil {
		client.Disconnect(context.Background())
		return nil, nil, err
	}

	return client, db, nil
}

func ensureLeadIndexes(ctx context.Context, coll *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}

	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}
