package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID identifies a document or an array item. Callers only see its string form.
type ID struct {
	oid primitive.ObjectID
}

// NewID returns a freshly generated identifier.
func NewID() ID {
	return ID{oid: primitive.NewObjectID()}
}

// ParseID parses the string form produced by ID.String.
func ParseID(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ID{}, fmt.Errorf("invalid identifier %q: %w", s, err)
	}
	return ID{oid: oid}, nil
}

// IDFromValue extracts an identifier from a decoded document value.
func IDFromValue(v interface{}) (ID, bool) {
	switch id := v.(type) {
	case ID:
		return id, true
	case primitive.ObjectID:
		return ID{oid: id}, true
	case string:
		parsed, err := ParseID(id)
		return parsed, err == nil
	default:
		return ID{}, false
	}
}

func (id ID) String() string {
	return id.oid.Hex()
}

func (id ID) IsZero() bool {
	return id.oid.IsZero()
}

// MarshalBSONValue stores the identifier in the store's native form.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(id.oid)
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return bson.RawValue{Type: t, Value: data}.Unmarshal(&id.oid)
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
