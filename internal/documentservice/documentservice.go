package documentservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/haguru/docgate/internal/interfaces"
	"github.com/haguru/docgate/internal/models"
	"github.com/haguru/docgate/pkg/helper"

	"go.mongodb.org/mongo-driver/bson"
)

// Service implements interfaces.DocumentService. It is stateless apart from
// its collaborators and safe for concurrent use.
type Service struct {
	Resolver   interfaces.CollectionResolver
	Logger     interfaces.Logger
	ItemsField string
}

// NewDocumentService creates a new Service. An empty itemsField selects
// models.DefaultItemsField.
func NewDocumentService(resolver interfaces.CollectionResolver, logger interfaces.Logger, itemsField string) *Service {
	if itemsField == "" {
		itemsField = models.DefaultItemsField
	}
	return &Service{
		Resolver:   resolver,
		Logger:     logger,
		ItemsField: itemsField,
	}
}

// FindByName returns the first document whose name equals name.
// found is false when no document matches.
func (s *Service) FindByName(ctx context.Context, ref models.CollectionRef, name string) (models.Document, bool, error) {
	return s.findOne(ctx, ref, bson.M{models.NameField: name})
}

// FindByID returns the document with the given identifier.
func (s *Service) FindByID(ctx context.Context, ref models.CollectionRef, id string) (models.Document, bool, error) {
	documentID, err := models.ParseID(id)
	if err != nil {
		return nil, false, badRequest("%s: %v", ErrInvalidDocumentID, err)
	}
	return s.findOne(ctx, ref, bson.M{models.IDField: documentID})
}

// FindAll returns every document of the collection. Both routing fields are mandatory.
func (s *Service) FindAll(ctx context.Context, ref models.CollectionRef) ([]models.Document, error) {
	funcName := helper.GetFuncName()
	if ref.Database == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingParameter, ErrDatabaseNameRequired)
	}
	if ref.Collection == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingParameter, ErrCollectionNameRequired)
	}

	documents, err := s.Resolver.Resolve(ref).Find(ctx, bson.M{})
	if err != nil {
		s.Logger.Error(ErrFailedToListDocuments, "func", funcName, "namespace", ref.String(), "error", err)
		return nil, storeFailure(ErrFailedToListDocuments, err)
	}
	if documents == nil {
		documents = []models.Document{}
	}

	return documents, nil
}

// Insert stores payload without its routing fields and returns it merged
// with the identifier assigned by the store.
func (s *Service) Insert(ctx context.Context, ref models.CollectionRef, payload models.Document) (models.Document, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "namespace", ref.String())

	document := payload.Without(models.NameDBField, models.NameCollectionField)

	insertedID, err := s.Resolver.Resolve(ref).InsertOne(ctx, document)
	if err != nil {
		s.Logger.Error(ErrFailedToInsertDocument, "func", funcName, "namespace", ref.String(), "error", err)
		return nil, storeFailure(ErrFailedToInsertDocument, err)
	}

	inserted := document.Without()
	inserted[models.IDField] = insertedID

	s.Logger.Info("Document inserted", "func", funcName, "namespace", ref.String(), "ID", insertedID)
	s.Logger.Debug("Exiting function", "func", funcName)
	return inserted, nil
}

// DeleteByName deletes at most one document whose name equals name and
// reports whether one was deleted.
func (s *Service) DeleteByName(ctx context.Context, ref models.CollectionRef, name string) (bool, error) {
	funcName := helper.GetFuncName()

	deleted, err := s.Resolver.Resolve(ref).DeleteOne(ctx, bson.M{models.NameField: name})
	if err != nil {
		s.Logger.Error(ErrFailedToDeleteDocument, "func", funcName, "namespace", ref.String(), "document", name, "error", err)
		return false, storeFailure(ErrFailedToDeleteDocument, err)
	}
	if deleted > 0 {
		s.Logger.Info("Document deleted", "func", funcName, "namespace", ref.String(), "document", name)
	}

	return deleted > 0, nil
}

func (s *Service) findOne(ctx context.Context, ref models.CollectionRef, filter bson.M) (models.Document, bool, error) {
	document, err := s.Resolver.Resolve(ref).FindOne(ctx, filter)
	if err != nil {
		if errors.Is(err, interfaces.ErrNoDocuments) {
			return nil, false, nil
		}
		s.Logger.Error(ErrFailedToFindDocument, "namespace", ref.String(), "filter", filter, "error", err)
		return nil, false, storeFailure(ErrFailedToFindDocument, err)
	}

	return document, true, nil
}
