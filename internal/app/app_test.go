package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/haguru/docgate/internal/interfaces/mocks"
	appMetrics "github.com/haguru/docgate/internal/metrics"
	"github.com/haguru/docgate/internal/models"
	"github.com/haguru/docgate/internal/resolver"
	"github.com/haguru/docgate/internal/routes"
	"github.com/haguru/docgate/internal/server"
	"github.com/haguru/docgate/pkg/metrics"
	logger "github.com/haguru/docgate/pkg/zerolog"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const configWithoutDefaults = `
service_name: docgate
loglevel: info
host: 127.0.0.1
port: "3000"
database:
  mongodb_config:
    host: localhost
    port: 27017
`

func TestNewApp_ConfigErrors(t *testing.T) {
	t.Setenv("MONGO_DB_APP", "")
	t.Setenv("MONGO_COLLECTION", "")

	invalid := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte(configWithoutDefaults), 0o600))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "absent.yaml")},
		{name: "no routing defaults", path: invalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewApp(tt.path)
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestRegisterRoutes(t *testing.T) {
	log := logger.New("test", io.Discard)
	m := metrics.NewMetrics("docgate_test")
	appMetrics.Register(m)

	store := mocks.NewMockDBClient(t)
	store.On("Ping", mock.Anything).Return(nil)
	documentService := mocks.NewMockDocumentService(t)
	collectionResolver := resolver.NewResolver(store, models.CollectionRef{Database: "pipefun", Collection: "configuracoes"})

	route := routes.NewRoute(m, documentService, collectionResolver, store, log, structValidator.New())
	srv := server.NewServer("127.0.0.1", "0", log)
	require.NoError(t, RegisterRoutes(srv, route, m))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, routes.HealthRouteAPI, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, routes.MongoFindAllRouteAPI, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, routes.MetricsRouteAPI, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `docgate_test_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, body, `docgate_test_http_requests_total{method="POST",route="/mongo/findAll",status="405"} 1`)
	assert.Contains(t, body, "docgate_test_store_up 1")
}
