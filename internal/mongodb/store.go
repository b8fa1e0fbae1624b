package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// resultCap bounds how many documents a single Find may return.
const resultCap = 1000

// API is the document-store surface the services depend on. Tests implement
// it with an in-memory fake.
type API interface {
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.Raw, error)
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.Raw, error)
	InsertOne(ctx context.Context, collection string, doc interface{}) error
	InsertMany(ctx context.Context, collection string, docs []interface{}) error
	Distinct(ctx context.Context, collection, field string) ([]string, error)
	DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error)
}

// Store implements API against a mongo database. Documents keep their own
// business id field; the driver-internal _id is projected out of every read.
type Store struct {
	db *mongo.Database
}

var _ API = (*Store)(nil)

// NewStore creates a Store over db.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

var noInternalID = bson.D{{Key: "_id", Value: 0}}

// Find returns every document matching filter, up to resultCap. A nil or
// empty filter matches the whole collection.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M) ([]bson.Raw, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetProjection(noInternalID).SetLimit(resultCap)
	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var out []bson.Raw
	for cur.Next(ctx) {
		var doc bson.Raw
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		out = append(out, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return out, nil
}

// FindOne returns the first match, or (nil, nil) when nothing matches.
func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M) (bson.Raw, error) {
	opts := options.FindOne().SetProjection(noInternalID)
	raw, err := s.db.Collection(collection).FindOne(ctx, filter, opts).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find one %s: %w", collection, err)
	}
	return raw, nil
}

// InsertOne persists a single document.
func (s *Store) InsertOne(ctx context.Context, collection string, doc interface{}) error {
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s: %w", collection, err)
	}
	return nil
}

// InsertMany persists a batch of documents.
func (s *Store) InsertMany(ctx context.Context, collection string, docs []interface{}) error {
	if _, err := s.db.Collection(collection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert many %s: %w", collection, err)
	}
	return nil
}

// Distinct returns the distinct string values of field across the collection.
func (s *Store) Distinct(ctx context.Context, collection, field string) ([]string, error) {
	values, err := s.db.Collection(collection).Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct %s.%s: %w", collection, field, err)
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	return out, nil
}

// DeleteMany removes every document matching filter and reports the count.
func (s *Store) DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error) {
	res, err := s.db.Collection(collection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete many %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}
