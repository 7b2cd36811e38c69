package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	IDField           = "_id"
	NameField         = "name"
	DefaultItemsField = "parametros"
)

// Document is a schema-free record as stored in a collection.
// Values carry whatever the BSON codec produced: strings, numerics, booleans,
// embedded documents and arrays.
type Document map[string]interface{}

// Name returns the document's name field and whether it is a non-empty string.
func (d Document) Name() (string, bool) {
	name, ok := d[NameField].(string)
	return name, ok && name != ""
}

// Without returns a shallow copy of the document minus the given keys.
func (d Document) Without(keys ...string) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// AsArray reports whether v is an array value and returns its elements.
func AsArray(v interface{}) ([]interface{}, bool) {
	switch arr := v.(type) {
	case primitive.A:
		return arr, true
	case []interface{}:
		return arr, true
	case []Document:
		out := make([]interface{}, len(arr))
		for i, item := range arr {
			out[i] = item
		}
		return out, true
	case []bson.M:
		out := make([]interface{}, len(arr))
		for i, item := range arr {
			out[i] = item
		}
		return out, true
	case []map[string]interface{}:
		out := make([]interface{}, len(arr))
		for i, item := range arr {
			out[i] = item
		}
		return out, true
	default:
		return nil, false
	}
}

// AsDocument reports whether v is an embedded document and returns it as a Document.
func AsDocument(v interface{}) (Document, bool) {
	switch doc := v.(type) {
	case Document:
		return doc, true
	case bson.M:
		return Document(doc), true
	case map[string]interface{}:
		return Document(doc), true
	case primitive.D:
		out := make(Document, len(doc))
		for _, e := range doc {
			out[e.Key] = e.Value
		}
		return out, true
	default:
		return nil, false
	}
}
