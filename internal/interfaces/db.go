package interfaces

import (
	"context"
	"errors"

	"github.com/haguru/docgate/internal/models"
)

// ErrNoDocuments is returned by Collection.FindOne when nothing matches the filter.
var ErrNoDocuments = errors.New("no documents in result")

// Filter and Update are store query documents (e.g. bson.M for MongoDB).
type Filter interface{}
type Update interface{}

// DBClient owns the process-wide connection to the document store.
type DBClient interface {
	// Connect establishes a connection to the store using the provided DSN (Data Source Name).
	// Returns an error if the connection fails.
	Connect(ctx context.Context, dsn string) error

	// Disconnect closes the connection.
	Disconnect(ctx context.Context) error

	// Ping checks the health of the connection.
	Ping(ctx context.Context) error

	// EnsureCollection creates the named collection in the named database if
	// it does not exist yet. Reports whether it was created.
	EnsureCollection(ctx context.Context, databaseName, collectionName string) (bool, error)

	// Collection returns a handle bound to the given database and collection.
	// It never performs a round trip; missing databases and collections are
	// created by the store on first write.
	Collection(databaseName, collectionName string) Collection
}

// Collection is a handle for reading and writing one collection.
type Collection interface {
	// FindOne returns the first document matching filter, or ErrNoDocuments.
	FindOne(ctx context.Context, filter Filter) (models.Document, error)

	// Find returns every document matching filter. An empty result is an empty slice.
	Find(ctx context.Context, filter Filter) ([]models.Document, error)

	// InsertOne stores document and returns the identifier assigned to it.
	InsertOne(ctx context.Context, document models.Document) (interface{}, error)

	// UpdateOne applies update to the first document matching filter and
	// returns the matched and modified counts.
	UpdateOne(ctx context.Context, filter Filter, update Update) (matched int64, modified int64, err error)

	// DeleteOne removes the first document matching filter and returns the deleted count.
	DeleteOne(ctx context.Context, filter Filter) (int64, error)
}

// CollectionResolver maps a routing reference to a collection handle.
type CollectionResolver interface {
	Resolve(ref models.CollectionRef) Collection
}
