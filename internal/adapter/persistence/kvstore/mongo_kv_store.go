package kvstore

import (
	"context"
	"errors"
	"time"

	"counter_billing/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultMongoCollection = "kv"

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoKeyValueStore keeps one document per key, using the key as _id.
type MongoKeyValueStore struct {
	coll *mongo.Collection
}

var _ interfaces.IKeyValueStore = (*MongoKeyValueStore)(nil)

func NewMongoKeyValueStore(db *mongo.Database, collection string) *MongoKeyValueStore {
	if collection == "" {
		collection = DefaultMongoCollection
	}
	return &MongoKeyValueStore{coll: db.Collection(collection)}
}

func (s *MongoKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := s.coll.FindOne(ctx, byKey(key)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, err
	}
	return doc.Value, true, nil
}

func (s *MongoKeyValueStore) Set(ctx context.Context, key, value string) error {
	doc := kvDocument{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, byKey(key), doc, options.Replace().SetUpsert(true))
	return err
}

func (s *MongoKeyValueStore) Remove(ctx context.Context, key string) error {
	_, err := s.coll.DeleteOne(ctx, byKey(key))
	return err
}

func byKey(key string) bson.M {
	return bson.M{"_id": key}
}
