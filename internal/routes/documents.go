package routes

import (
	"fmt"
	"net/http"

	"github.com/haguru/docgate/internal/models/dto"
)

// Mongo serves GET, POST and DELETE on /mongo.
func (r *Route) Mongo(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		r.findDocument(w, req)
	case http.MethodPost:
		r.createDocument(w, req)
	case http.MethodDelete:
		r.deleteDocument(w, req)
	default:
		r.methodNotAllowed(w, req)
	}
}

// FindAll lists every document of a collection.
func (r *Route) FindAll(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		r.methodNotAllowed(w, req)
		return
	}

	query := req.URL.Query()
	routing := &dto.RoutingDTO{
		NameDB:         query.Get(ParamNameDB),
		NameCollection: query.Get(ParamNameCollection),
	}
	if !r.validate(w, routing) {
		return
	}
	ref := r.Resolver.Ref(routing.NameDB, routing.NameCollection)

	documents, err := r.DocumentService.FindAll(req.Context(), ref)
	if err != nil {
		r.operationError(w, OpFindAll, err)
		return
	}

	r.writeJSON(w, http.StatusOK, documents)
}

func (r *Route) findDocument(w http.ResponseWriter, req *http.Request) {
	request, ok := r.documentQuery(w, req)
	if !ok {
		return
	}
	ref := r.Resolver.Ref(request.NameDB, request.NameCollection)

	document, found, err := r.DocumentService.FindByName(req.Context(), ref, request.Document)
	if err != nil {
		r.operationError(w, OpFindByName, err)
		return
	}
	if !found {
		r.writeJSON(w, http.StatusOK, &dto.MessageResponseDTO{
			Message: fmt.Sprintf(MsgDocumentNotFoundFormat, request.Document),
		})
		return
	}

	r.writeJSON(w, http.StatusOK, document)
}

func (r *Route) createDocument(w http.ResponseWriter, req *http.Request) {
	body, ok := r.decodeBody(w, req)
	if !ok {
		return
	}
	ref, ok := r.refFromBody(w, req, body)
	if !ok {
		return
	}

	document, err := r.DocumentService.Insert(req.Context(), ref, body)
	if err != nil {
		r.operationError(w, OpInsert, err)
		return
	}

	r.writeJSON(w, http.StatusCreated, document)
}

func (r *Route) deleteDocument(w http.ResponseWriter, req *http.Request) {
	request, ok := r.documentQuery(w, req)
	if !ok {
		return
	}
	ref := r.Resolver.Ref(request.NameDB, request.NameCollection)

	deleted, err := r.DocumentService.DeleteByName(req.Context(), ref, request.Document)
	if err != nil {
		r.operationError(w, OpDeleteByName, err)
		return
	}

	message := fmt.Sprintf(MsgDeletedFormat, request.Document)
	if !deleted {
		message = fmt.Sprintf(MsgDeleteNotFoundFormat, request.Document)
	}
	r.writeJSON(w, http.StatusOK, &dto.MessageResponseDTO{Message: message})
}

func (r *Route) documentQuery(w http.ResponseWriter, req *http.Request) (*dto.DocumentQueryDTO, bool) {
	query := req.URL.Query()
	request := &dto.DocumentQueryDTO{
		RoutingDTO: dto.RoutingDTO{
			NameDB:         query.Get(ParamNameDB),
			NameCollection: query.Get(ParamNameCollection),
		},
		Document: query.Get(ParamDocument),
	}
	if !r.validate(w, request) {
		return nil, false
	}
	return request, true
}
