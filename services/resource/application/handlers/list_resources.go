package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/communityhub/pkg/httpx"
	"github.com/ghuser/communityhub/services/resource/application/manager"
	"github.com/ghuser/communityhub/services/resource/domain/models"
)

// ListResourcesResponse is the body of GET /api/resources/{type}.
type ListResourcesResponse struct {
	Type  string        `json:"type" example:"events"`
	Items []models.Item `json:"items"`
} // @name ListResourcesResponse

// ListResourcesHandler handles GET /api/resources/{type}.
type ListResourcesHandler struct {
	d Deps
}

// NewListResourcesHandler returns a ListResourcesHandler.
func NewListResourcesHandler(d Deps) *ListResourcesHandler {
	return &ListResourcesHandler{d: d}
}

// Execute lists every document of a resource type, newest first.
//
//	@Summary		List resources
//	@Description	Lists every document of a resource type, newest first
//	@Tags			resources
//	@Produce		json
//	@Param			type	path		string	true	"Resource type"	Enums(donations, events, news, podcasts, quizzes)
//	@Success		200		{object}	ListResourcesResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/resources/{type} [get]
func (h *ListResourcesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rt, err := resourceTypeFrom(r)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}

	m, rec := h.d.newManager(rt)
	m.FetchItems(r.Context())
	if _, failed := rec.failure(manager.OpFetch); failed {
		h.d.writeFailure(w, r, rec, manager.OpFetch, "could not load items")
		return
	}

	items := m.State().Items
	if items == nil {
		items = []models.Item{}
	}
	httpx.JSON(w, http.StatusOK, ListResourcesResponse{Type: rt.Slug, Items: items})
}

// GetResourceHandler handles GET /api/resources/{type}/{id}.
type GetResourceHandler struct {
	d Deps
}

// NewGetResourceHandler returns a GetResourceHandler.
func NewGetResourceHandler(d Deps) *GetResourceHandler {
	return &GetResourceHandler{d: d}
}

// Execute returns one document.
//
//	@Summary		Get resource
//	@Tags			resources
//	@Produce		json
//	@Param			type	path		string	true	"Resource type"
//	@Param			id		path		string	true	"Document id"
//	@Success		200		{object}	models.Base
//	@Failure		404		{object}	ErrorResponse
//	@Router			/resources/{type}/{id} [get]
func (h *GetResourceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rt, err := resourceTypeFrom(r)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}

	doc, err := h.d.Services.Resource.Get(r.Context(), rt, chi.URLParam(r, "id"))
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}
	item, err := models.DecodeDocument(doc, rt.New)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}
