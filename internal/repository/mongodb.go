// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-optimized MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Sessions *mongo.Collection
	Logs     *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:   client,
		Database: db,
		Sessions: db.Collection("fulfillment_sessions"),
		Logs:     db.Collection("logs"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates necessary indexes for collections.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Sessions index: active-session lookup by (order, location).
	// Not unique; completed sessions for the same pair may accumulate
	// until the TTL index removes them.
	pairIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"order_id": 1, "location_id": 1, "completed": 1},
		Options: options.Index().SetUnique(false),
	}
	_, err := m.Sessions.Indexes().CreateOne(ctx, pairIndex)
	if err != nil {
		return err
	}

	// Sessions index: session_id for status updates
	sessionIDIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"session_id": 1},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Sessions.Indexes().CreateOne(ctx, sessionIDIndex)
	// Ignore errors if index already exists (index might already exist, that's okay)

	// Logs index: request_id for querying
	requestIDIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"request_id": 1},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Logs.Indexes().CreateOne(ctx, requestIDIndex)

	// Logs index: order_id for audit trails per order
	orderIDIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"order_id": 1},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Logs.Indexes().CreateOne(ctx, orderIDIndex)

	return nil
}

// replaceTTLIndex drops any existing TTL index on the field and creates a
// fresh one with the given expiry. Mongo rejects CreateOne when an index
// with the same keys but different options exists, so the drop comes first.
func replaceTTLIndex(ctx context.Context, coll *mongo.Collection, field string, seconds int32) error {
	_, _ = coll.Indexes().DropOne(ctx, field+"_1")

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    map[string]interface{}{field: 1},
		Options: options.Index().SetExpireAfterSeconds(seconds),
	})
	if err != nil {
		msg := err.Error()
		if msg == "index already exists" || msg == "IndexOptionsConflict" {
			return nil
		}
	}
	return err
}

// SetSessionsTTL updates the TTL index for the sessions collection so stale
// sessions expire on their own.
func (m *MongoDB) SetSessionsTTL(ctx context.Context, ttl time.Duration) error {
	return replaceTTLIndex(ctx, m.Sessions, "updated_at", int32(ttl.Seconds()))
}

// SetLogsTTL updates the TTL index for the logs collection.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	return replaceTTLIndex(ctx, m.Logs, "timestamp", int32(ttlDays*24*60*60))
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
