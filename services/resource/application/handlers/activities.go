package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/communityhub/pkg/httpx"
	"github.com/ghuser/communityhub/services/resource/domain"
	"github.com/ghuser/communityhub/services/resource/domain/models"
	"github.com/ghuser/communityhub/services/resource/domain/repositories"
)

// ActivitiesResponse is the embedded audit trail of one document.
type ActivitiesResponse struct {
	ID         string            `json:"id"`
	Activities []models.Activity `json:"activities"`
} // @name ActivitiesResponse

// ActivityLogResponse is a page of the durable activity log.
type ActivityLogResponse struct {
	Entries []models.ActivityLogEntry `json:"entries"`
} // @name ActivityLogResponse

// ListActivitiesHandler handles GET /api/resources/{type}/{id}/activities.
type ListActivitiesHandler struct {
	d Deps
}

// NewListActivitiesHandler returns a ListActivitiesHandler.
func NewListActivitiesHandler(d Deps) *ListActivitiesHandler {
	return &ListActivitiesHandler{d: d}
}

// Execute returns a document's audit trail, oldest first.
//
//	@Summary		List document activities
//	@Tags			activities
//	@Produce		json
//	@Param			type	path		string	true	"Resource type"
//	@Param			id		path		string	true	"Document id"
//	@Success		200		{object}	ActivitiesResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/resources/{type}/{id}/activities [get]
func (h *ListActivitiesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rt, err := resourceTypeFrom(r)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "id")

	activities, err := h.d.Services.Resource.Activities(r.Context(), rt, id)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ActivitiesResponse{ID: id, Activities: activities})
}

// ActivityLogHandler handles GET /api/activities.
type ActivityLogHandler struct {
	d Deps
}

// NewActivityLogHandler returns an ActivityLogHandler.
func NewActivityLogHandler(d Deps) *ActivityLogHandler {
	return &ActivityLogHandler{d: d}
}

// Execute queries the durable activity log, which keeps the records of
// deleted documents.
//
//	@Summary		Query activity log
//	@Tags			activities
//	@Produce		json
//	@Param			type		query		string	false	"Resource type"
//	@Param			documentId	query		string	false	"Document id"
//	@Param			limit		query		int		false	"Maximum entries (default 50, max 500)"
//	@Success		200			{object}	ActivityLogResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/activities [get]
func (h *ActivityLogHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repositories.ActivityFilter{DocumentID: q.Get("documentId")}

	if slug := q.Get("type"); slug != "" {
		rt, ok := models.LookupResourceType(slug)
		if !ok {
			h.d.writeError(w, r, fmt.Errorf("%w: %q", domain.ErrUnknownResourceType, slug))
			return
		}
		filter.Collection = rt.Collection
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.d.writeError(w, r, fmt.Errorf("%w: limit must be a non-negative integer", domain.ErrInvalidDocument))
			return
		}
		filter.Limit = limit
	}

	entries, err := h.d.Services.Resource.History(r.Context(), filter)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ActivityLogResponse{Entries: entries})
}
