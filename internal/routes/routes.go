package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/haguru/docgate/internal/documentservice"
	"github.com/haguru/docgate/internal/interfaces"
	"github.com/haguru/docgate/internal/metrics"
	"github.com/haguru/docgate/internal/models"
	"github.com/haguru/docgate/internal/models/dto"
	"github.com/haguru/docgate/internal/resolver"

	structValidator "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
)

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Route struct {
	Metrics         interfaces.Metrics
	DocumentService interfaces.DocumentService
	Resolver        *resolver.Resolver
	Store           Pinger
	Logger          interfaces.Logger
	validator       *structValidator.Validate
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, documentService interfaces.DocumentService,
	resolver *resolver.Resolver, store Pinger, logger interfaces.Logger,
	validator *structValidator.Validate,
) *Route {
	return &Route{
		Metrics:         metrics,
		DocumentService: documentService,
		Resolver:        resolver,
		Store:           store,
		Logger:          logger,
		validator:       validator,
	}
}

// Instrument records request count and latency for route.
func (r *Route) Instrument(route string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if r.Metrics == nil {
			handler(w, req)
			return
		}

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		handler(sw, req)

		r.Metrics.IncCounterVec(metrics.RequestsTotal, route, req.Method, strconv.Itoa(sw.status))
		r.Metrics.ObserveHistogramVec(metrics.RequestDurationSeconds, time.Since(start).Seconds(), route, req.Method)
	}
}

// Health pings the document store.
func (r *Route) Health(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		r.methodNotAllowed(w, req)
		return
	}

	if err := r.Store.Ping(req.Context()); err != nil {
		r.Logger.Warn("Health check failed", "error", err)
		if r.Metrics != nil {
			r.Metrics.SetGauge(metrics.StoreUp, 0)
		}
		r.writeJSON(w, http.StatusServiceUnavailable, &dto.HealthResponseDTO{Status: MsgUnhealthy})
		return
	}

	if r.Metrics != nil {
		r.Metrics.SetGauge(metrics.StoreUp, 1)
	}
	r.writeJSON(w, http.StatusOK, &dto.HealthResponseDTO{Status: MsgHealthy})
}

// decodeBody parses a JSON request body as relaxed Extended JSON, so that
// {"$oid": ...} values and integer widths survive the trip to the store.
func (r *Route) decodeBody(w http.ResponseWriter, req *http.Request) (models.Document, bool) {
	mediaType, _, err := mime.ParseMediaType(req.Header.Get(ContentType))
	if err != nil || mediaType != ContentTypeJson {
		r.errorResponse(w, http.StatusBadRequest,
			fmt.Errorf(ErrInvalidContentTypeFormat, req.Header.Get(ContentType)), ErrInvalidContentType)
		return nil, false
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, req.Body, MaxBodyBytes))
	if err != nil {
		r.errorResponse(w, http.StatusBadRequest, err, ErrInvalidRequestBody)
		return nil, false
	}

	body := bson.M{}
	if err := bson.UnmarshalExtJSON(data, false, &body); err != nil {
		r.errorResponse(w, http.StatusBadRequest, err, ErrInvalidRequestBody)
		return nil, false
	}

	return models.Document(body), true
}

// refFromBody resolves routing fields from the body, then the query string,
// then the configured defaults.
func (r *Route) refFromBody(w http.ResponseWriter, req *http.Request, body models.Document) (models.CollectionRef, bool) {
	query := req.URL.Query()
	names := map[string]string{
		models.NameDBField:         query.Get(ParamNameDB),
		models.NameCollectionField: query.Get(ParamNameCollection),
	}
	for field := range names {
		raw, ok := body[field]
		if !ok || raw == nil {
			continue
		}
		value, isString := raw.(string)
		if !isString {
			r.errorResponse(w, http.StatusBadRequest, fmt.Errorf(ErrInvalidRoutingField, field), ErrValidationFailed)
			return models.CollectionRef{}, false
		}
		if value != "" {
			names[field] = value
		}
	}

	routing := &dto.RoutingDTO{
		NameDB:         names[models.NameDBField],
		NameCollection: names[models.NameCollectionField],
	}
	if !r.validate(w, routing) {
		return models.CollectionRef{}, false
	}

	return r.Resolver.Ref(routing.NameDB, routing.NameCollection), true
}

func (r *Route) validate(w http.ResponseWriter, request interface{}) bool {
	if err := r.validator.Struct(request); err != nil {
		var validationErrors structValidator.ValidationErrors
		if errors.As(err, &validationErrors) {
			err = fmt.Errorf("invalid request data: %s", validationErrors)
		}
		r.errorResponse(w, http.StatusBadRequest, err, ErrValidationFailed)
		return false
	}
	return true
}

// operationError maps a DocumentService error onto an HTTP status.
func (r *Route) operationError(w http.ResponseWriter, operation string, err error) {
	status, kind, message := http.StatusInternalServerError, "internal", ErrInternal
	switch {
	case errors.Is(err, documentservice.ErrMissingParameter):
		status, kind, message = http.StatusBadRequest, "missing_parameter", ErrMissingParameter
	case errors.Is(err, documentservice.ErrBadRequest):
		status, kind, message = http.StatusBadRequest, "bad_request", ErrBadRequest
	case errors.Is(err, documentservice.ErrNotFound):
		status, kind, message = http.StatusNotFound, "not_found", ErrNotFound
	case errors.Is(err, documentservice.ErrStoreFailure):
		status, kind, message = http.StatusInternalServerError, "store_failure", ErrStoreFailure
	}

	if r.Metrics != nil {
		r.Metrics.IncCounterVec(metrics.OperationErrorsTotal, operation, kind)
	}
	if status >= http.StatusInternalServerError {
		r.Logger.Error(message, "operation", operation, "error", err)
	}
	r.errorResponse(w, status, err, message)
}

func (r *Route) methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	r.errorResponse(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
}

func (r *Route) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		r.Logger.Error("Failed to encode response", "error", err)
	}
}

func (r *Route) errorResponse(w http.ResponseWriter, status int, err error, message string) {
	r.writeJSON(w, status, &dto.ErrorResponseDTO{
		Error:   err.Error(),
		Message: message,
	})
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}
