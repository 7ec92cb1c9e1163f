// Package mongo provides a MongoDB implementation of storage.Backend.
//
// Each API collection maps to a MongoDB collection of the same name. Documents
// use string _id values assigned by the storage layer, and array appends use
// $push so they are atomic on the server.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mmynk/restapis/internal/storage"
)

var _ storage.Backend = (*MongoStore)(nil)

const disconnectTimeout = 10 * time.Second

// MongoStore implements storage.Backend on a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to uri, verifies the connection and selects the database.
func New(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(database)}, nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Insert stores a new document. The document already carries its _id.
func (s *MongoStore) Insert(ctx context.Context, collection, id string, doc any) error {
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert document %s: %w", id, err)
	}
	return nil
}

// All decodes every document of a collection into out.
func (s *MongoStore) All(ctx context.Context, collection string, out any) error {
	cur, err := s.db.Collection(collection).Find(ctx, bson.D{}, options.Find().SetSort(byID()))
	if err != nil {
		return fmt.Errorf("find documents: %w", err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode documents: %w", err)
	}
	return nil
}

// Get decodes one document by id.
func (s *MongoStore) Get(ctx context.Context, collection, id string, out any) error {
	res := s.db.Collection(collection).FindOne(ctx, idFilter(id))
	return decodeSingle(res, out)
}

// FindOne decodes the first document whose field equals value.
func (s *MongoStore) FindOne(ctx context.Context, collection, field, value string, out any) error {
	res := s.db.Collection(collection).FindOne(ctx,
		bson.D{{Key: field, Value: value}},
		options.FindOne().SetSort(byID()),
	)
	return decodeSingle(res, out)
}

// Replace overwrites an existing document.
func (s *MongoStore) Replace(ctx context.Context, collection, id string, doc any) error {
	res, err := s.db.Collection(collection).ReplaceOne(ctx, idFilter(id), doc)
	if err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete removes a document and decodes its prior state into out.
func (s *MongoStore) Delete(ctx context.Context, collection, id string, out any) error {
	res := s.db.Collection(collection).FindOneAndDelete(ctx, idFilter(id))
	return decodeSingle(res, out)
}

// Push appends elem to an array field with $push.
func (s *MongoStore) Push(ctx context.Context, collection, id, field string, elem any) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx, idFilter(id), pushUpdate(field, elem))
	if err != nil {
		return fmt.Errorf("push to %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func idFilter(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

func byID() bson.D {
	return bson.D{{Key: "_id", Value: 1}}
}

func pushUpdate(field string, elem any) bson.D {
	return bson.D{{Key: "$push", Value: bson.D{{Key: field, Value: elem}}}}
}

func decodeSingle(res *mongo.SingleResult, out any) error {
	err := res.Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}
