package interfaces

import (
	"context"

	"github.com/haguru/docgate/internal/models"
)

// DocumentService exposes whole-document, keyed-document and array-item operations.
type DocumentService interface {
	FindByName(ctx context.Context, ref models.CollectionRef, name string) (models.Document, bool, error)
	FindByID(ctx context.Context, ref models.CollectionRef, id string) (models.Document, bool, error)
	FindAll(ctx context.Context, ref models.CollectionRef) ([]models.Document, error)
	Insert(ctx context.Context, ref models.CollectionRef, payload models.Document) (models.Document, error)
	DeleteByName(ctx context.Context, ref models.CollectionRef, name string) (bool, error)

	ReplaceFields(ctx context.Context, ref models.CollectionRef, id string, fields models.Document) (*models.UpdateResult, error)
	DeleteItemByID(ctx context.Context, ref models.CollectionRef, id, itemID string) (bool, error)

	InsertItem(ctx context.Context, ref models.CollectionRef, documentName string, item models.Document) (*models.UpdateResult, error)
	UpdateItem(ctx context.Context, ref models.CollectionRef, documentName, itemID string, item models.Document) (*models.UpdateResult, error)
	QueryItems(ctx context.Context, ref models.CollectionRef, documentName, field, filter string) ([]models.Document, error)
}
