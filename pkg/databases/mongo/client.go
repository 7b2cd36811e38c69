package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/haguru/docgate/config"
	"github.com/haguru/docgate/internal/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	MAXPOOLSIZE = 20
)

// ErrConnectionFailure is returned by Connect when the cluster cannot be reached.
var ErrConnectionFailure = errors.New("connection failure")

// MongoDBClient implements the interfaces.DBClient interface for MongoDB.
// A single client is shared by every request; the driver pools connections.
type MongoDBClient struct {
	ServerOpts  *options.ServerAPIOptions
	client      *mongo.Client
	timeout     time.Duration
	maxPoolSize uint64
	logger      interfaces.Logger
}

// NewMongoDB returns a interface for db client and error if it occurs
func NewMongoDB(dbConfig *config.MongoDBConfig, logger interfaces.Logger) (*MongoDBClient, error) {
	if dbConfig == nil {
		return nil, fmt.Errorf("MongoDBClient: config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("MongoDBClient: logger cannot be nil")
	}

	maxPoolSize := dbConfig.MaxPoolSize
	if maxPoolSize == 0 {
		maxPoolSize = MAXPOOLSIZE
	}

	return &MongoDBClient{
		ServerOpts:  config.BuildServerAPIOptions(dbConfig.Options),
		timeout:     dbConfig.Timeout,
		maxPoolSize: maxPoolSize,
		logger:      logger,
	}, nil
}

// NewMongoDBFromClient wraps an already connected driver client.
func NewMongoDBFromClient(client *mongo.Client, timeout time.Duration, logger interfaces.Logger) *MongoDBClient {
	return &MongoDBClient{
		client:      client,
		timeout:     timeout,
		maxPoolSize: MAXPOOLSIZE,
		logger:      logger,
	}
}

// Connect establishes a connection to the MongoDB cluster using the provided DSN (Data Source Name).
// The DSN should be in the format "mongodb://<user>:<password>@<host>:<port>/<authdb>".
// The connection is verified with a ping against the primary.
func (m *MongoDBClient) Connect(ctx context.Context, dsn string) error {
	if dsn == "" {
		return fmt.Errorf("%w: DSN is empty", ErrConnectionFailure)
	}
	if !strings.HasPrefix(dsn, "mongodb://") && !strings.HasPrefix(dsn, "mongodb+srv://") {
		return fmt.Errorf("%w: invalid DSN format, expected 'mongodb://' or 'mongodb+srv://'", ErrConnectionFailure)
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	clientOptions := options.Client().ApplyURI(dsn)
	if m.ServerOpts != nil {
		clientOptions.SetServerAPIOptions(m.ServerOpts)
	}
	clientOptions.SetMaxPoolSize(m.maxPoolSize)
	clientOptions.SetReadPreference(readpref.PrimaryPreferred())
	if m.timeout > 0 {
		clientOptions.SetConnectTimeout(m.timeout)
	}

	m.logger.Info("Connecting to MongoDB", "hosts", clientOptions.Hosts)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailure, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("%w: failed to ping MongoDB server: %v", ErrConnectionFailure, err)
	}

	m.client = client
	m.logger.Info("Connected to MongoDB server")

	return nil
}

// Disconnect closes the connection to the MongoDB cluster.
func (m *MongoDBClient) Disconnect(ctx context.Context) error {
	m.logger.Info("Disconnecting from MongoDB")
	if m.client != nil {
		return m.client.Disconnect(ctx)
	}

	return nil
}

// Ping verifies the MongoDB connection health using a ping command.
func (m *MongoDBClient) Ping(ctx context.Context) error {
	if m.client == nil {
		return fmt.Errorf("MongoDBClient: not connected")
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	return m.client.Ping(ctx, nil)
}

// EnsureCollection creates collectionName in databaseName unless it already exists.
func (m *MongoDBClient) EnsureCollection(ctx context.Context, databaseName, collectionName string) (bool, error) {
	if m.client == nil {
		return false, fmt.Errorf("MongoDBClient: not connected")
	}
	if databaseName == "" || collectionName == "" {
		return false, fmt.Errorf("MongoDBClient: database and collection names are required")
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	db := m.client.Database(databaseName)
	names, err := db.ListCollectionNames(ctx, bson.M{"name": collectionName})
	if err != nil {
		return false, fmt.Errorf("MongoDBClient: failed to list collections in %s: %w", databaseName, err)
	}
	if len(names) > 0 {
		m.logger.Info("Collection already exists", "database", databaseName, "collection", collectionName)
		return false, nil
	}

	if err := db.CreateCollection(ctx, collectionName); err != nil {
		return false, fmt.Errorf("MongoDBClient: failed to create collection %s.%s: %w", databaseName, collectionName, err)
	}
	m.logger.Info("Collection created", "database", databaseName, "collection", collectionName)

	return true, nil
}

// Collection returns a handle bound to databaseName.collectionName.
// No round trip is made; the server creates both lazily on first write.
func (m *MongoDBClient) Collection(databaseName, collectionName string) interfaces.Collection {
	return &Collection{
		coll:    m.client.Database(databaseName).Collection(collectionName),
		timeout: m.timeout,
		logger:  m.logger,
	}
}

func (m *MongoDBClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.timeout > 0 {
		return context.WithTimeout(ctx, m.timeout)
	}
	return ctx, func() {}
}
