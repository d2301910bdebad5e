package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmdash/internal/repository"
)

// Store implements repository.RecordStore on top of MongoDB. Live snapshots
// are driven by change streams, so the target deployment must be a replica
// set (Atlas qualifies).
type Store struct {
	client *mongo.Client
	dbName string
	logger *zap.Logger
}

// NewStore connects to MongoDB and verifies the connection.
func NewStore(ctx context.Context, uri string, dbName string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{client: client, dbName: dbName, logger: logger}, nil
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.client.Database(s.dbName).Collection(name)
}

// Snapshot loads the full collection, newest first, into out.
func (s *Store) Snapshot(ctx context.Context, collection string, out any) error {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s snapshot: %w", collection, err)
	}
	return nil
}

// Create inserts the document and returns the store-assigned id.
func (s *Store) Create(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// Update patches the named fields of the record with the given id.
func (s *Store) Update(ctx context.Context, collection string, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid record id %q: %w", id, err)
	}

	res, err := s.collection(collection).UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update %s/%s: %w", collection, id, mongo.ErrNoDocuments)
	}
	return nil
}

// Delete removes the record with the given id. Deletion is immediate and
// irreversible; confirmation is the caller's concern.
func (s *Store) Delete(ctx context.Context, collection string, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid record id %q: %w", id, err)
	}

	res, err := s.collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete %s/%s: %w", collection, id, mongo.ErrNoDocuments)
	}
	return nil
}

// Watch opens a change stream on the collection and signals once immediately,
// then on every subsequent change. Signals are coalesced: a slow consumer
// sees at least one signal for any burst of changes.
func (s *Store) Watch(ctx context.Context, collection string) (*repository.Subscription, error) {
	wctx, cancel := context.WithCancel(ctx)

	stream, err := s.collection(collection).Watch(wctx, mongo.Pipeline{})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("watch %s: %w", collection, err)
	}

	events := make(chan struct{}, 1)
	events <- struct{}{}

	go func() {
		defer close(events)
		defer func() { _ = stream.Close(context.Background()) }()

		for stream.Next(wctx) {
			select {
			case events <- struct{}{}:
			default:
			}
		}

		if err := stream.Err(); err != nil && wctx.Err() == nil {
			s.logger.Error("change stream terminated",
				zap.String("collection", collection), zap.Error(err))
		}
	}()

	return repository.NewSubscription(events, cancel), nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
