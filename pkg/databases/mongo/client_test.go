package mongo

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/haguru/docgate/config"
	logger "github.com/haguru/docgate/pkg/zerolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestNewMongoDB(t *testing.T) {
	log := logger.New("test", io.Discard)

	_, err := NewMongoDB(nil, log)
	assert.Error(t, err)

	_, err = NewMongoDB(&config.MongoDBConfig{}, nil)
	assert.Error(t, err)

	client, err := NewMongoDB(&config.MongoDBConfig{
		Timeout: 5 * time.Second,
		Options: config.MongoServerOptions{APIVersion: "1", SetStrict: true},
	}, log)
	require.NoError(t, err)
	assert.Equal(t, uint64(MAXPOOLSIZE), client.maxPoolSize)
	assert.Equal(t, 5*time.Second, client.timeout)
	require.NotNil(t, client.ServerOpts)

	client, err = NewMongoDB(&config.MongoDBConfig{MaxPoolSize: 5}, log)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), client.maxPoolSize)
	assert.Nil(t, client.ServerOpts)
}

func TestMongoDBClient_Connect_InvalidDSN(t *testing.T) {
	client, err := NewMongoDB(&config.MongoDBConfig{}, logger.New("test", io.Discard))
	require.NoError(t, err)

	tests := []struct {
		name string
		dsn  string
	}{
		{name: "empty", dsn: ""},
		{name: "wrong scheme", dsn: "postgres://localhost:5432"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.Connect(context.Background(), tt.dsn)
			assert.ErrorIs(t, err, ErrConnectionFailure)
		})
	}
}

func TestMongoDBClient_NotConnected(t *testing.T) {
	client, err := NewMongoDB(&config.MongoDBConfig{}, logger.New("test", io.Discard))
	require.NoError(t, err)

	assert.Error(t, client.Ping(context.Background()))
	_, err = client.EnsureCollection(context.Background(), "pipefun", "configuracoes")
	assert.Error(t, err)
	assert.NoError(t, client.Disconnect(context.Background()))
}

func TestMongoDBClient_Ping(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		client := NewMongoDBFromClient(mt.Client, time.Second, logger.New("test", io.Discard))
		assert.NoError(mt, client.Ping(context.Background()))
	})

	mt.Run("failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "command ping requires authentication",
		}))

		client := NewMongoDBFromClient(mt.Client, 0, logger.New("test", io.Discard))
		assert.Error(mt, client.Ping(context.Background()))
	})
}

func TestMongoDBClient_EnsureCollection(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("already exists", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "pipefun.$cmd.listCollections", mtest.FirstBatch,
			bson.D{{Key: "name", Value: "configuracoes"}, {Key: "type", Value: "collection"}},
		))

		client := NewMongoDBFromClient(mt.Client, 0, logger.New("test", io.Discard))
		created, err := client.EnsureCollection(context.Background(), "pipefun", "configuracoes")
		require.NoError(mt, err)
		assert.False(mt, created)
	})

	mt.Run("creates missing collection", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "pipefun.$cmd.listCollections", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		client := NewMongoDBFromClient(mt.Client, 0, logger.New("test", io.Discard))
		created, err := client.EnsureCollection(context.Background(), "pipefun", "configuracoes")
		require.NoError(mt, err)
		assert.True(mt, created)
	})

	mt.Run("missing names", func(mt *mtest.T) {
		client := NewMongoDBFromClient(mt.Client, 0, logger.New("test", io.Discard))
		_, err := client.EnsureCollection(context.Background(), "", "configuracoes")
		assert.Error(mt, err)
	})
}

func TestMongoDBClient_Collection(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("binds namespace", func(mt *mtest.T) {
		client := NewMongoDBFromClient(mt.Client, time.Second, logger.New("test", io.Discard))

		coll, ok := client.Collection("tenant", "settings").(*Collection)
		require.True(mt, ok)
		assert.Equal(mt, "tenant.settings", coll.namespace())
		assert.Equal(mt, time.Second, coll.timeout)
	})
}
