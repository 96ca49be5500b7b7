package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kryva/kryva/internal/failure"
)

// UsersCollection holds one profile document per identity, _id = UID.
const UsersCollection = "users"

const (
	codeUnauthorized = 13
	codeSpaceQuota   = 8000
)

// Connect opens a client and pings the primary.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect failed: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}
	return client, nil
}

// MongoStore reads and partially updates profile documents.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{collection: coll}
}

// Get returns the document stored under key. A missing document is not an
// error.
func (s *MongoStore) Get(ctx context.Context, key string) (Snapshot, error) {
	var doc bson.M
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("mongo find failed: %w", providerError(err))
	}

	delete(doc, "_id")
	return Snapshot{Exists: true, Data: Normalize(doc)}, nil
}

// Update sets the given dotted paths on the document under key, creating the
// document if needed. Paths not named are left untouched.
func (s *MongoStore) Update(ctx context.Context, key string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	_, err := s.collection.UpdateByID(ctx, key, bson.M{"$set": set}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo update failed: %w", providerError(err))
	}
	return nil
}

// Ping reports whether the server is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.collection.Database().Client().Ping(ctx, nil)
}

func providerError(err error) error {
	var se mongo.ServerError
	switch {
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return failure.Wrap(failure.CodeDeadlineExceeded, err)
	case mongo.IsNetworkError(err):
		return failure.Wrap(failure.CodeUnavailable, err)
	case errors.As(err, &se) && se.HasErrorCode(codeUnauthorized):
		return failure.Wrap(failure.CodePermissionDenied, err)
	case errors.As(err, &se) && se.HasErrorCode(codeSpaceQuota):
		return failure.Wrap(failure.CodeResourceExhausted, err)
	}
	return err
}

// Normalize converts decoded BSON values into plain maps, slices and times
// so documents can be flattened and JSON encoded without driver types.
func Normalize(doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case primitive.M:
		return Normalize(t)
	case map[string]any:
		return Normalize(t)
	case primitive.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = normalizeValue(e.Value)
		}
		return m
	case primitive.A:
		return normalizeSlice(t)
	case []any:
		return normalizeSlice(t)
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.ObjectID:
		return t.Hex()
	}
	return v
}

func normalizeSlice(in []any) []any {
	out := make([]any, len(in))
	for i, e := range in {
		out[i] = normalizeValue(e)
	}
	return out
}
