package mongox

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens a client against the document store and verifies connectivity
// before handing the database back.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client.Database(dbName), nil
}

// CheckHealth performs a heartbeat round-trip: upsert a timestamp, then read
// it back. Failure on either leg means the store is unusable.
func CheckHealth(ctx context.Context, db *mongo.Database) error {
	now := time.Now().UnixMilli()
	col := db.Collection("healthcheck")

	_, err := col.UpdateOne(ctx,
		bson.M{"_id": "heartbeat"},
		bson.M{"$set": bson.M{"time": now}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	err = col.FindOne(ctx, bson.M{"time": bson.M{"$gte": now}}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errors.New("db healthcheck failed")
	}
	return err
}
