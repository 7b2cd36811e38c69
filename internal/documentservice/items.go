package documentservice

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/haguru/docgate/internal/models"
	"github.com/haguru/docgate/pkg/helper"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InsertItem appends item, under a freshly generated identifier, to the items
// field of the document named documentName. When that document does not exist
// the result has Found=false and nothing is written.
func (s *Service) InsertItem(ctx context.Context, ref models.CollectionRef, documentName string, item models.Document) (*models.UpdateResult, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "namespace", ref.String(), "document", documentName)

	itemID := models.NewID()
	newItem := item.Without(models.IDField, models.NameDBField, models.NameCollectionField)
	newItem[models.IDField] = itemID

	parent, found, err := s.findOne(ctx, ref, bson.M{models.NameField: documentName})
	if err != nil {
		return nil, err
	}
	if !found {
		s.Logger.Info("Parent document not found", "func", funcName, "namespace", ref.String(), "document", documentName)
		return &models.UpdateResult{Found: false}, nil
	}

	filter := bson.M{models.IDField: parent[models.IDField]}
	update := bson.M{"$push": bson.M{s.ItemsField: newItem}}

	_, modified, err := s.Resolver.Resolve(ref).UpdateOne(ctx, filter, update)
	if err != nil {
		s.Logger.Error(ErrFailedToUpdateDocument, "func", funcName, "document", documentName, "error", err)
		return nil, storeFailure(ErrFailedToUpdateDocument, err)
	}

	s.Logger.Info("Item inserted", "func", funcName, "document", documentName, "item", itemID.String())
	s.Logger.Debug("Exiting function", "func", funcName)
	return &models.UpdateResult{Found: true, ID: itemID, ModifiedCount: modified}, nil
}

// UpdateItem replaces, in place, the element of the items field whose
// identifier is itemID. The identifier is kept whatever item carries.
func (s *Service) UpdateItem(ctx context.Context, ref models.CollectionRef, documentName, itemID string, item models.Document) (*models.UpdateResult, error) {
	funcName := helper.GetFuncName()

	objectID, err := models.ParseID(itemID)
	if err != nil {
		return nil, badRequest("%s: %v", ErrInvalidItemID, err)
	}

	parent, found, err := s.findOne(ctx, ref, bson.M{models.NameField: documentName})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: document '%s'", ErrNotFound, documentName)
	}
	if !containsItem(parent[s.ItemsField], objectID) {
		return nil, badRequest(ErrItemNotInDocument, itemID, documentName)
	}

	replacement := item.Without(models.IDField, models.NameDBField, models.NameCollectionField)
	replacement[models.IDField] = objectID

	filter := bson.M{
		models.IDField:                      parent[models.IDField],
		s.ItemsField + "." + models.IDField: objectID,
	}
	update := bson.M{"$set": bson.M{s.ItemsField + ".$": replacement}}

	_, modified, err := s.Resolver.Resolve(ref).UpdateOne(ctx, filter, update)
	if err != nil {
		s.Logger.Error(ErrFailedToUpdateDocument, "func", funcName, "document", documentName, "item", itemID, "error", err)
		return nil, storeFailure(ErrFailedToUpdateDocument, err)
	}

	s.Logger.Info("Item updated", "func", funcName, "document", documentName, "item", itemID, "modified", modified)
	return &models.UpdateResult{Found: true, ID: objectID, ModifiedCount: modified}, nil
}

// QueryItems returns the elements of the items field of documentName whose
// field attribute contains filter, ignoring case.
func (s *Service) QueryItems(ctx context.Context, ref models.CollectionRef, documentName, field, filter string) ([]models.Document, error) {
	if field == "" || strings.ContainsAny(field, "$.") {
		return nil, badRequest(ErrInvalidFieldName, field)
	}

	pattern := regexp.QuoteMeta(filter)
	query := bson.M{
		models.NameField: documentName,
		s.ItemsField: bson.M{"$elemMatch": bson.M{
			field: primitive.Regex{Pattern: pattern, Options: "i"},
		}},
	}

	parent, found, err := s.findOne(ctx, ref, query)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: no item of document '%s' matches %s=%q", ErrNotFound, documentName, field, filter)
	}

	matcher := regexp.MustCompile("(?i)" + pattern)
	items, _ := models.AsArray(parent[s.ItemsField])
	matches := make([]models.Document, 0, len(items))
	for _, raw := range items {
		item, ok := models.AsDocument(raw)
		if !ok {
			continue
		}
		if value, ok := item[field].(string); ok && matcher.MatchString(value) {
			matches = append(matches, item)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no item of document '%s' matches %s=%q", ErrNotFound, documentName, field, filter)
	}

	return matches, nil
}

func containsItem(field interface{}, itemID models.ID) bool {
	items, ok := models.AsArray(field)
	if !ok {
		return false
	}
	for _, raw := range items {
		item, ok := models.AsDocument(raw)
		if !ok {
			continue
		}
		if id, ok := models.IDFromValue(item[models.IDField]); ok && id == itemID {
			return true
		}
	}
	return false
}
