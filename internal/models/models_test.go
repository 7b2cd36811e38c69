package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDocument_Name(t *testing.T) {
	tests := []struct {
		name   string
		doc    Document
		want   string
		wantOK bool
	}{
		{name: "string name", doc: Document{"name": "GDX"}, want: "GDX", wantOK: true},
		{name: "empty name", doc: Document{"name": ""}, wantOK: false},
		{name: "numeric name", doc: Document{"name": int32(1)}, wantOK: false},
		{name: "absent", doc: Document{}, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.doc.Name()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocument_Without(t *testing.T) {
	doc := Document{"_id": 1, "name": "GDX", "name_db": "pipefun"}

	got := doc.Without(IDField, NameDBField, "absent")
	assert.Equal(t, Document{"name": "GDX"}, got)
	assert.Len(t, doc, 3)
}

func TestAsArray(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantLen int
		wantOK  bool
	}{
		{name: "primitive.A", value: primitive.A{1, 2}, wantLen: 2, wantOK: true},
		{name: "interface slice", value: []interface{}{"a"}, wantLen: 1, wantOK: true},
		{name: "document slice", value: []Document{{}, {}, {}}, wantLen: 3, wantOK: true},
		{name: "bson.M slice", value: []bson.M{{}}, wantLen: 1, wantOK: true},
		{name: "map slice", value: []map[string]interface{}{{}}, wantLen: 1, wantOK: true},
		{name: "empty array", value: primitive.A{}, wantLen: 0, wantOK: true},
		{name: "string", value: "abc", wantOK: false},
		{name: "embedded document", value: bson.M{"a": 1}, wantOK: false},
		{name: "nil", value: nil, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsArray(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestAsDocument(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		want   Document
		wantOK bool
	}{
		{name: "Document", value: Document{"a": 1}, want: Document{"a": 1}, wantOK: true},
		{name: "bson.M", value: bson.M{"a": 1}, want: Document{"a": 1}, wantOK: true},
		{name: "map", value: map[string]interface{}{"a": 1}, want: Document{"a": 1}, wantOK: true},
		{name: "primitive.D", value: primitive.D{{Key: "a", Value: 1}}, want: Document{"a": 1}, wantOK: true},
		{name: "array", value: primitive.A{}, wantOK: false},
		{name: "scalar", value: 3.5, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsDocument(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	id := NewID()

	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
	assert.False(t, parsed.IsZero())

	for _, bad := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestIDFromValue(t *testing.T) {
	id := NewID()
	oid, err := primitive.ObjectIDFromHex(id.String())
	require.NoError(t, err)

	tests := []struct {
		name   string
		value  interface{}
		wantOK bool
	}{
		{name: "ID", value: id, wantOK: true},
		{name: "ObjectID", value: oid, wantOK: true},
		{name: "hex string", value: id.String(), wantOK: true},
		{name: "bad string", value: "nope", wantOK: false},
		{name: "number", value: int64(5), wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IDFromValue(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, id, got)
			}
		})
	}
}

func TestID_StoredAsObjectID(t *testing.T) {
	id := NewID()

	data, err := bson.Marshal(bson.M{"_id": id})
	require.NoError(t, err)

	var raw bson.M
	require.NoError(t, bson.Unmarshal(data, &raw))
	oid, ok := raw["_id"].(primitive.ObjectID)
	require.True(t, ok)
	assert.Equal(t, id.String(), oid.Hex())

	var decoded struct {
		ID ID `bson:"_id"`
	}
	require.NoError(t, bson.Unmarshal(data, &decoded))
	assert.Equal(t, id, decoded.ID)
}

func TestID_JSON(t *testing.T) {
	id := NewID()

	data, err := json.Marshal(Document{"_id": id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"`+id.String()+`"}`, string(data))

	var decoded struct {
		ID ID `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, id, decoded.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"_id":"bad"}`), &decoded))
}

func TestCollectionRef(t *testing.T) {
	defaults := CollectionRef{Database: "pipefun", Collection: "configuracoes"}

	got := CollectionRef{Collection: "settings"}.WithDefaults(defaults)
	assert.Equal(t, CollectionRef{Database: "pipefun", Collection: "settings"}, got)
	assert.True(t, got.Complete())
	assert.Equal(t, "pipefun.settings", got.String())

	assert.False(t, CollectionRef{Database: "pipefun"}.Complete())
	assert.Equal(t, defaults, CollectionRef{}.WithDefaults(defaults))
}
