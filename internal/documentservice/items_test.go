package documentservice

import (
	"context"
	"testing"

	"github.com/haguru/docgate/internal/interfaces"
	"github.com/haguru/docgate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestService_InsertItem(t *testing.T) {
	parentID := primitive.NewObjectID()
	callerID := models.NewID()

	t.Run("appends to parent", func(t *testing.T) {
		s, collection := newTestService(t)
		collection.On("FindOne", mock.Anything, bson.M{"name": "GDX"}).
			Return(models.Document{"_id": parentID, "name": "GDX"}, nil)

		var update bson.M
		collection.On("UpdateOne", mock.Anything, bson.M{"_id": parentID}, mock.Anything).
			Run(func(args mock.Arguments) {
				update = args.Get(2).(bson.M)
			}).
			Return(int64(1), int64(1), nil)

		got, err := s.InsertItem(context.Background(), testRef, "GDX", models.Document{
			"_id":     callerID,
			"name":    "timeout",
			"value":   int32(30),
			"name_db": "pipefun",
		})
		require.NoError(t, err)
		assert.True(t, got.Found)
		assert.Equal(t, int64(1), got.ModifiedCount)
		assert.NotEqual(t, callerID, got.ID)

		pushed := update["$push"].(bson.M)["parametros"].(models.Document)
		assert.Equal(t, got.ID, pushed["_id"])
		assert.Equal(t, "timeout", pushed["name"])
		assert.NotContains(t, pushed, "name_db")
	})

	t.Run("parent missing creates nothing", func(t *testing.T) {
		s, collection := newTestService(t)
		collection.On("FindOne", mock.Anything, bson.M{"name": "missing"}).Return(nil, interfaces.ErrNoDocuments)

		got, err := s.InsertItem(context.Background(), testRef, "missing", models.Document{"name": "timeout"})
		require.NoError(t, err)
		assert.False(t, got.Found)
		collection.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
		collection.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
	})

	t.Run("custom items field", func(t *testing.T) {
		s, collection := newTestService(t)
		s.ItemsField = "settings"
		collection.On("FindOne", mock.Anything, bson.M{"name": "GDX"}).
			Return(models.Document{"_id": parentID}, nil)
		collection.On("UpdateOne", mock.Anything, bson.M{"_id": parentID}, mock.MatchedBy(func(u bson.M) bool {
			_, ok := u["$push"].(bson.M)["settings"]
			return ok
		})).Return(int64(1), int64(1), nil)

		_, err := s.InsertItem(context.Background(), testRef, "GDX", models.Document{"name": "x"})
		require.NoError(t, err)
	})
}

func TestService_UpdateItem(t *testing.T) {
	parentID := primitive.NewObjectID()
	itemID := models.NewID()
	parent := models.Document{
		"_id":  parentID,
		"name": "GDX",
		"parametros": primitive.A{
			bson.M{"_id": primitive.NewObjectID(), "name": "other"},
			bson.M{"_id": mustObjectID(t, itemID), "name": "timeout", "value": int32(30)},
		},
	}

	t.Run("replaces in place", func(t *testing.T) {
		s, collection := newTestService(t)
		collection.On("FindOne", mock.Anything, bson.M{"name": "GDX"}).Return(parent, nil)
		collection.On("UpdateOne", mock.Anything,
			bson.M{"_id": parentID, "parametros._id": itemID},
			bson.M{"$set": bson.M{"parametros.$": models.Document{"_id": itemID, "name": "timeout", "value": int32(60)}}},
		).Return(int64(1), int64(1), nil)

		got, err := s.UpdateItem(context.Background(), testRef, "GDX", itemID.String(), models.Document{
			"_id":   "ffffffffffffffffffffffff",
			"name":  "timeout",
			"value": int32(60),
		})
		require.NoError(t, err)
		assert.True(t, got.Found)
		assert.Equal(t, itemID, got.ID)
		assert.Equal(t, int64(1), got.ModifiedCount)
	})

	t.Run("unknown item leaves array unchanged", func(t *testing.T) {
		s, collection := newTestService(t)
		collection.On("FindOne", mock.Anything, bson.M{"name": "GDX"}).Return(parent, nil)

		_, err := s.UpdateItem(context.Background(), testRef, "GDX", models.NewID().String(), models.Document{"name": "x"})
		assert.ErrorIs(t, err, ErrBadRequest)
		collection.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("parent missing", func(t *testing.T) {
		s, collection := newTestService(t)
		collection.On("FindOne", mock.Anything, bson.M{"name": "GDX"}).Return(nil, interfaces.ErrNoDocuments)

		_, err := s.UpdateItem(context.Background(), testRef, "GDX", itemID.String(), models.Document{"name": "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed item id", func(t *testing.T) {
		s, _ := newTestService(t)

		_, err := s.UpdateItem(context.Background(), testRef, "GDX", "zz", models.Document{"name": "x"})
		assert.ErrorIs(t, err, ErrBadRequest)
	})
}

func TestService_QueryItems(t *testing.T) {
	query := bson.M{
		"name": "GDX",
		"parametros": bson.M{"$elemMatch": bson.M{
			"name": primitive.Regex{Pattern: `Time\.out`, Options: "i"},
		}},
	}

	t.Run("returns only matching items", func(t *testing.T) {
		s, collection := newTestService(t)
		collection.On("FindOne", mock.Anything, query).Return(models.Document{
			"name": "GDX",
			"parametros": primitive.A{
				bson.M{"name": "retries"},
				bson.M{"name": "http_TIME.OUT_ms", "value": int32(30)},
				bson.M{"name": "timeout"},
				"not an object",
			},
		}, nil)

		got, err := s.QueryItems(context.Background(), testRef, "GDX", "name", "Time.out")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "http_TIME.OUT_ms", got[0]["name"])
	})

	t.Run("no match", func(t *testing.T) {
		s, collection := newTestService(t)
		collection.On("FindOne", mock.Anything, query).Return(nil, interfaces.ErrNoDocuments)

		_, err := s.QueryItems(context.Background(), testRef, "GDX", "name", "Time.out")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("operator in field name", func(t *testing.T) {
		s, _ := newTestService(t)

		_, err := s.QueryItems(context.Background(), testRef, "GDX", "$where", "x")
		assert.ErrorIs(t, err, ErrBadRequest)
	})
}

// Round trip: an item inserted under a known name is returned by a substring query.
func TestService_InsertThenQueryItem(t *testing.T) {
	s, collection := newTestService(t)
	parentID := primitive.NewObjectID()
	stored := models.Document{"_id": parentID, "name": "GDX", "parametros": primitive.A{}}

	collection.On("FindOne", mock.Anything, bson.M{"name": "GDX"}).Return(stored, nil).Once()
	collection.On("UpdateOne", mock.Anything, bson.M{"_id": parentID}, mock.Anything).
		Run(func(args mock.Arguments) {
			pushed := args.Get(2).(bson.M)["$push"].(bson.M)["parametros"]
			stored["parametros"] = append(stored["parametros"].(primitive.A), pushed)
		}).
		Return(int64(1), int64(1), nil)
	collection.On("FindOne", mock.Anything, mock.MatchedBy(func(f bson.M) bool {
		_, ok := f["parametros"]
		return ok
	})).Return(stored, nil)

	inserted, err := s.InsertItem(context.Background(), testRef, "GDX", models.Document{"name": "MaxRetries", "value": int32(5)})
	require.NoError(t, err)

	got, err := s.QueryItems(context.Background(), testRef, "GDX", "name", "retr")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inserted.ID, got[0]["_id"])
}

func mustObjectID(t *testing.T, id models.ID) primitive.ObjectID {
	t.Helper()
	oid, err := primitive.ObjectIDFromHex(id.String())
	require.NoError(t, err)
	return oid
}
