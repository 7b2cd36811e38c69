package documentservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/haguru/docgate/internal/models"
	"github.com/haguru/docgate/pkg/helper"

	"go.mongodb.org/mongo-driver/bson"
)

// ReplaceFields sets fields on the document identified by id. Every array
// field is validated (each item needs a unique, non-empty name) and rebuilt
// with fresh item identifiers before anything is written. A missing document
// yields Found=false and no write; documents are never created here.
func (s *Service) ReplaceFields(ctx context.Context, ref models.CollectionRef, id string, fields models.Document) (*models.UpdateResult, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "namespace", ref.String(), "ID", id)

	documentID, err := models.ParseID(id)
	if err != nil {
		return nil, badRequest("%s: %v", ErrInvalidDocumentID, err)
	}

	update, err := prepareFieldSet(fields.Without(models.IDField, models.NameDBField, models.NameCollectionField))
	if err != nil {
		s.Logger.Warn("Rejected field replacement", "func", funcName, "ID", id, "error", err)
		return nil, err
	}

	collection := s.Resolver.Resolve(ref)
	filter := bson.M{models.IDField: documentID}

	_, found, err := s.findOne(ctx, ref, filter)
	if err != nil {
		return nil, err
	}
	if !found {
		s.Logger.Info("Document not found", "func", funcName, "namespace", ref.String(), "ID", id)
		return &models.UpdateResult{Found: false, ID: documentID}, nil
	}

	_, modified, err := collection.UpdateOne(ctx, filter, bson.M{"$set": update})
	if err != nil {
		s.Logger.Error(ErrFailedToUpdateDocument, "func", funcName, "ID", id, "error", err)
		return nil, storeFailure(ErrFailedToUpdateDocument, err)
	}

	s.Logger.Info("Document updated", "func", funcName, "namespace", ref.String(), "ID", id, "modified", modified)
	s.Logger.Debug("Exiting function", "func", funcName)
	return &models.UpdateResult{Found: true, ID: documentID, ModifiedCount: modified}, nil
}

// DeleteItemByID pulls the item identified by itemID out of every array field
// of the document identified by id, in a single update. It reports whether
// any array changed.
func (s *Service) DeleteItemByID(ctx context.Context, ref models.CollectionRef, id, itemID string) (bool, error) {
	funcName := helper.GetFuncName()

	documentID, err := models.ParseID(id)
	if err != nil {
		return false, badRequest("%s: %v", ErrInvalidDocumentID, err)
	}
	objectID, err := models.ParseID(itemID)
	if err != nil {
		return false, badRequest("%s: %v", ErrInvalidItemID, err)
	}

	filter := bson.M{models.IDField: documentID}
	document, found, err := s.findOne(ctx, ref, filter)
	if err != nil {
		return false, err
	}
	if !found {
		return false, fmt.Errorf("%w: document %s", ErrNotFound, id)
	}

	pull := bson.M{}
	for key, value := range document {
		if _, isArray := models.AsArray(value); isArray {
			pull[key] = bson.M{models.IDField: objectID}
		}
	}
	if len(pull) == 0 {
		s.Logger.Info("Document has no array fields", "func", funcName, "ID", id)
		return false, nil
	}

	_, modified, err := s.Resolver.Resolve(ref).UpdateOne(ctx, filter, bson.M{"$pull": pull})
	if err != nil {
		s.Logger.Error(ErrFailedToUpdateDocument, "func", funcName, "ID", id, "item", itemID, "error", err)
		return false, storeFailure(ErrFailedToUpdateDocument, err)
	}

	return modified > 0, nil
}

// prepareFieldSet validates every array field of fields and returns the $set
// document with each array item re-keyed. Keys are checked in sorted order so
// the reported field is deterministic.
func prepareFieldSet(fields models.Document) (bson.M, error) {
	if len(fields) == 0 {
		return nil, badRequest(ErrNoFieldsToUpdate)
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	update := bson.M{}
	for _, key := range keys {
		value := fields[key]
		items, isArray := models.AsArray(value)
		if !isArray {
			update[key] = value
			continue
		}

		rebuilt, err := rekeyNamedItems(key, items)
		if err != nil {
			return nil, err
		}
		update[key] = rebuilt
	}

	return update, nil
}

// rekeyNamedItems checks the name invariant of one array field and returns a
// copy whose items carry newly generated identifiers.
func rekeyNamedItems(field string, items []interface{}) ([]interface{}, error) {
	seen := make(map[string]struct{}, len(items))
	for _, raw := range items {
		item, ok := models.AsDocument(raw)
		if !ok {
			return nil, badRequest(ErrMissingItemName, field)
		}
		key, ok := nameKey(item[models.NameField])
		if !ok {
			return nil, badRequest(ErrMissingItemName, field)
		}
		if _, dup := seen[key]; dup {
			return nil, badRequest(ErrDuplicateItemName, field)
		}
		seen[key] = struct{}{}
	}

	rebuilt := make([]interface{}, 0, len(items))
	for _, raw := range items {
		item, _ := models.AsDocument(raw)
		copied := item.Without(models.IDField)
		copied[models.IDField] = models.NewID()
		rebuilt = append(rebuilt, copied)
	}

	return rebuilt, nil
}

// nameKey returns a comparison key for a name value. Absent, null, empty and
// zero values do not count as a name.
func nameKey(v interface{}) (string, bool) {
	switch name := v.(type) {
	case nil:
		return "", false
	case string:
		return "s:" + name, name != ""
	case bool:
		return "b:true", name
	case int32:
		return fmt.Sprintf("n:%d", name), name != 0
	case int64:
		return fmt.Sprintf("n:%d", name), name != 0
	case int:
		return fmt.Sprintf("n:%d", name), name != 0
	case float64:
		return fmt.Sprintf("n:%v", name), name != 0
	default:
		return fmt.Sprintf("%T:%v", v, v), true
	}
}
