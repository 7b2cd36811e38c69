package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haguru/docgate/internal/interfaces"
	"github.com/haguru/docgate/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection implements interfaces.Collection on top of a driver collection.
type Collection struct {
	coll    *mongo.Collection
	timeout time.Duration
	logger  interfaces.Logger
}

// FindOne returns the first document matching filter, or interfaces.ErrNoDocuments.
func (c *Collection) FindOne(ctx context.Context, filter interfaces.Filter) (models.Document, error) {
	c.logger.Debug("Finding one", "namespace", c.namespace(), "filter", filter)
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var doc bson.M
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to find one in %s: %w", c.namespace(), err)
	}

	return models.Document(doc), nil
}

// Find returns every document matching filter.
func (c *Collection) Find(ctx context.Context, filter interfaces.Filter) ([]models.Document, error) {
	c.logger.Debug("Finding many", "namespace", c.namespace(), "filter", filter)
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	cursor, err := c.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find in %s: %w", c.namespace(), err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			c.logger.Warn("Failed to close cursor", "namespace", c.namespace(), "error", err)
		}
	}()

	results := make([]models.Document, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode cursor of %s: %w", c.namespace(), err)
		}
		results = append(results, models.Document(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error in %s: %w", c.namespace(), err)
	}

	return results, nil
}

// InsertOne stores document and returns the identifier the store assigned.
func (c *Collection) InsertOne(ctx context.Context, document models.Document) (interface{}, error) {
	c.logger.Debug("Inserting one", "namespace", c.namespace())
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.coll.InsertOne(ctx, bson.M(document))
	if err != nil {
		return nil, fmt.Errorf("failed to insert one into %s: %w", c.namespace(), err)
	}

	return res.InsertedID, nil
}

// UpdateOne applies update to the first document matching filter.
func (c *Collection) UpdateOne(ctx context.Context, filter interfaces.Filter, update interfaces.Update) (int64, int64, error) {
	c.logger.Debug("Updating one", "namespace", c.namespace(), "filter", filter)
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to update one in %s: %w", c.namespace(), err)
	}

	return res.MatchedCount, res.ModifiedCount, nil
}

// DeleteOne removes the first document matching filter.
func (c *Collection) DeleteOne(ctx context.Context, filter interfaces.Filter) (int64, error) {
	c.logger.Debug("Deleting one", "namespace", c.namespace(), "filter", filter)
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete one from %s: %w", c.namespace(), err)
	}

	return res.DeletedCount, nil
}

func (c *Collection) namespace() string {
	return c.coll.Database().Name() + "." + c.coll.Name()
}

func (c *Collection) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return ctx, func() {}
}
