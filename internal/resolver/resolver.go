package resolver

import (
	"github.com/haguru/docgate/internal/interfaces"
	"github.com/haguru/docgate/internal/models"
)

// Resolver turns routing fields into collection handles on the shared client.
// It holds no per-request state.
type Resolver struct {
	client   interfaces.DBClient
	defaults models.CollectionRef
}

// NewResolver creates a Resolver whose blank routing fields fall back to defaults.
func NewResolver(client interfaces.DBClient, defaults models.CollectionRef) *Resolver {
	return &Resolver{
		client:   client,
		defaults: defaults,
	}
}

// Ref builds a reference from caller-supplied names, defaulting blanks.
func (r *Resolver) Ref(databaseName, collectionName string) models.CollectionRef {
	return models.CollectionRef{
		Database:   databaseName,
		Collection: collectionName,
	}.WithDefaults(r.defaults)
}

// Defaults returns the configured default reference.
func (r *Resolver) Defaults() models.CollectionRef {
	return r.defaults
}

// Resolve returns a handle for ref. It does not contact the store.
func (r *Resolver) Resolve(ref models.CollectionRef) interfaces.Collection {
	return r.client.Collection(ref.Database, ref.Collection)
}
