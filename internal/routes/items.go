package routes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/haguru/docgate/internal/documentservice"
	"github.com/haguru/docgate/internal/models"
	"github.com/haguru/docgate/internal/models/dto"
)

const bodyIDField = "id"

// Config serves GET, PUT and DELETE on /config.
func (r *Route) Config(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		r.findByID(w, req)
	case http.MethodPut:
		r.replaceFields(w, req)
	case http.MethodDelete:
		r.deleteItem(w, req)
	default:
		r.methodNotAllowed(w, req)
	}
}

// ConfigInsert appends an item on POST and replaces keyed fields on PUT.
func (r *Route) ConfigInsert(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodPost:
		r.insertItem(w, req)
	case http.MethodPut:
		r.replaceFields(w, req)
	default:
		r.methodNotAllowed(w, req)
	}
}

// UpdateItem replaces a single array item in place.
func (r *Route) UpdateItem(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPut {
		r.methodNotAllowed(w, req)
		return
	}

	request, ok := r.itemQuery(w, req)
	if !ok {
		return
	}
	body, ok := r.decodeBody(w, req)
	if !ok {
		return
	}
	ref, ok := r.refFromBody(w, req, body)
	if !ok {
		return
	}

	result, err := r.DocumentService.UpdateItem(req.Context(), ref, request.ID, request.ObjectID, body)
	if err != nil {
		r.operationError(w, OpUpdateItem, err)
		return
	}

	r.writeJSON(w, http.StatusOK, &dto.UpdateResponseDTO{
		Message:      MsgItemUpdated,
		UpdatedCount: result.ModifiedCount,
		ID:           result.ID.String(),
	})
}

// ConfigItems returns the items of a document whose field contains filter.
func (r *Route) ConfigItems(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		r.methodNotAllowed(w, req)
		return
	}

	query := req.URL.Query()
	request := &dto.ItemSearchDTO{
		RoutingDTO: dto.RoutingDTO{
			NameDB:         query.Get(ParamNameDB),
			NameCollection: query.Get(ParamNameCollection),
		},
		ID:     query.Get(ParamID),
		Field:  query.Get(ParamField),
		Filter: query.Get(ParamFilter),
	}
	if !r.validate(w, request) {
		return
	}
	ref := r.Resolver.Ref(request.NameDB, request.NameCollection)

	items, err := r.DocumentService.QueryItems(req.Context(), ref, request.ID, request.Field, request.Filter)
	if errors.Is(err, documentservice.ErrNotFound) {
		r.writeJSON(w, http.StatusOK, &dto.MessageResponseDTO{
			Message: fmt.Sprintf(MsgNoMatchingItemsFormat, request.ID, request.Field, request.Filter),
		})
		return
	}
	if err != nil {
		r.operationError(w, OpQueryItems, err)
		return
	}

	r.writeJSON(w, http.StatusOK, items)
}

func (r *Route) findByID(w http.ResponseWriter, req *http.Request) {
	request, ok := r.itemQuery(w, req)
	if !ok {
		return
	}
	ref := r.Resolver.Ref(request.NameDB, request.NameCollection)

	document, found, err := r.DocumentService.FindByID(req.Context(), ref, request.ID)
	if err != nil {
		r.operationError(w, OpFindByID, err)
		return
	}
	if !found {
		r.writeJSON(w, http.StatusOK, &dto.MessageResponseDTO{
			Message: fmt.Sprintf(MsgDocumentIDNotFoundFormat, request.ID),
		})
		return
	}

	r.writeJSON(w, http.StatusOK, document)
}

func (r *Route) replaceFields(w http.ResponseWriter, req *http.Request) {
	body, ok := r.decodeBody(w, req)
	if !ok {
		return
	}
	id, isString := body[bodyIDField].(string)
	if !isString || id == "" {
		r.errorResponse(w, http.StatusBadRequest, errors.New(ErrInvalidIDField), ErrValidationFailed)
		return
	}
	ref, ok := r.refFromBody(w, req, body)
	if !ok {
		return
	}

	fields := body.Without(bodyIDField, models.NameDBField, models.NameCollectionField)
	result, err := r.DocumentService.ReplaceFields(req.Context(), ref, id, fields)
	if err != nil {
		r.operationError(w, OpReplaceFields, err)
		return
	}
	if !result.Found {
		r.writeJSON(w, http.StatusOK, &dto.NotFoundResponseDTO{Message: MsgDocumentNotFound, ID: id})
		return
	}

	r.writeJSON(w, http.StatusOK, &dto.UpdateResponseDTO{
		Message:      MsgDocumentUpdated,
		UpdatedCount: result.ModifiedCount,
		ID:           id,
	})
}

func (r *Route) insertItem(w http.ResponseWriter, req *http.Request) {
	name := req.URL.Query().Get(ParamID)
	if !r.validate(w, &dto.ItemQueryDTO{ID: name}) {
		return
	}
	body, ok := r.decodeBody(w, req)
	if !ok {
		return
	}
	ref, ok := r.refFromBody(w, req, body)
	if !ok {
		return
	}

	result, err := r.DocumentService.InsertItem(req.Context(), ref, name, body)
	if err != nil {
		r.operationError(w, OpInsertItem, err)
		return
	}
	if !result.Found {
		r.writeJSON(w, http.StatusOK, &dto.NotFoundResponseDTO{
			Message: fmt.Sprintf(MsgDocumentNotFoundFormat, name),
		})
		return
	}

	r.writeJSON(w, http.StatusOK, &dto.UpdateResponseDTO{
		Message:      MsgItemInserted,
		UpdatedCount: result.ModifiedCount,
		ID:           result.ID.String(),
	})
}

func (r *Route) deleteItem(w http.ResponseWriter, req *http.Request) {
	request, ok := r.itemQuery(w, req)
	if !ok {
		return
	}
	ref := r.Resolver.Ref(request.NameDB, request.NameCollection)

	deleted, err := r.DocumentService.DeleteItemByID(req.Context(), ref, request.ID, request.ObjectID)
	if err != nil {
		r.operationError(w, OpDeleteItemByID, err)
		return
	}

	message := MsgObjectDeleted
	if !deleted {
		message = MsgObjectNotDeleted
	}
	r.writeJSON(w, http.StatusOK, &dto.MessageResponseDTO{Message: message})
}

func (r *Route) itemQuery(w http.ResponseWriter, req *http.Request) (*dto.ItemQueryDTO, bool) {
	query := req.URL.Query()
	request := &dto.ItemQueryDTO{
		RoutingDTO: dto.RoutingDTO{
			NameDB:         query.Get(ParamNameDB),
			NameCollection: query.Get(ParamNameCollection),
		},
		ID:       query.Get(ParamID),
		ObjectID: query.Get(ParamObjectID),
	}
	if !r.validate(w, request) {
		return nil, false
	}
	return request, true
}
