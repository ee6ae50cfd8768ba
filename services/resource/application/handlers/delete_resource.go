package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/communityhub/pkg/auth"
	"github.com/ghuser/communityhub/pkg/httpx"
	"github.com/ghuser/communityhub/services/resource/application/manager"
)

// PendingDeleteResponse reports the delete awaiting confirmation.
type PendingDeleteResponse struct {
	PendingDeleteID string `json:"pendingDeleteId" example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name PendingDeleteResponse

// DeleteResponse is returned once a delete is confirmed.
type DeleteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message" example:"The event was deleted."`
} // @name DeleteResponse

// RequestDeleteHandler handles POST /api/resources/{type}/{id}/delete.
type RequestDeleteHandler struct {
	d Deps
}

// NewRequestDeleteHandler returns a RequestDeleteHandler.
func NewRequestDeleteHandler(d Deps) *RequestDeleteHandler {
	return &RequestDeleteHandler{d: d}
}

// Execute marks a document for deletion in the caller's session. Nothing is
// deleted until the delete is confirmed.
//
//	@Summary		Request resource delete
//	@Tags			resources
//	@Produce		json
//	@Param			type	path		string	true	"Resource type"
//	@Param			id		path		string	true	"Document id"
//	@Success		202		{object}	PendingDeleteResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/resources/{type}/{id}/delete [post]
func (h *RequestDeleteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rt, err := resourceTypeFrom(r)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "id")

	if _, err := h.d.Services.Resource.Get(r.Context(), rt, id); err != nil {
		h.d.writeError(w, r, err)
		return
	}

	m, _ := h.d.newManager(rt)
	m.HandleDelete(id)
	pending := m.State().PendingDeleteID
	if err := auth.SetPendingDelete(h.d.Sessions, w, r, rt.Slug, pending); err != nil {
		h.d.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusAccepted, PendingDeleteResponse{PendingDeleteID: pending})
}

// ConfirmDeleteHandler handles POST /api/resources/{type}/delete/confirm.
type ConfirmDeleteHandler struct {
	d Deps
}

// NewConfirmDeleteHandler returns a ConfirmDeleteHandler.
func NewConfirmDeleteHandler(d Deps) *ConfirmDeleteHandler {
	return &ConfirmDeleteHandler{d: d}
}

// Execute deletes the document pending in the caller's session. A final
// delete record is written to the document and the durable activity log
// before the document is removed.
//
//	@Summary		Confirm resource delete
//	@Tags			resources
//	@Produce		json
//	@Param			type	path		string	true	"Resource type"
//	@Success		200		{object}	DeleteResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/resources/{type}/delete/confirm [post]
func (h *ConfirmDeleteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rt, err := resourceTypeFrom(r)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}

	pending, err := auth.PendingDelete(h.d.Sessions, r, rt.Slug)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}

	m, rec := h.d.newManager(rt)
	if pending != "" {
		m.HandleDelete(pending)
	}
	res := m.ConfirmDelete(r.Context())
	if !res.OK {
		h.d.writeFailure(w, r, rec, manager.OpDelete, res.Message)
		return
	}

	if err := auth.SetPendingDelete(h.d.Sessions, w, r, rt.Slug, m.State().PendingDeleteID); err != nil {
		h.d.log().WarnContext(r.Context(), "could not clear pending delete", "error", err)
	}
	httpx.JSON(w, http.StatusOK, DeleteResponse{ID: res.ID, Message: res.Message})
}

// CancelDeleteHandler handles POST /api/resources/{type}/delete/cancel.
type CancelDeleteHandler struct {
	d Deps
}

// NewCancelDeleteHandler returns a CancelDeleteHandler.
func NewCancelDeleteHandler(d Deps) *CancelDeleteHandler {
	return &CancelDeleteHandler{d: d}
}

// Execute forgets the pending delete. Cancelling with nothing pending is not
// an error.
//
//	@Summary		Cancel resource delete
//	@Tags			resources
//	@Produce		json
//	@Param			type	path	string	true	"Resource type"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Router			/resources/{type}/delete/cancel [post]
func (h *CancelDeleteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rt, err := resourceTypeFrom(r)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}

	m, _ := h.d.newManager(rt)
	m.CancelDelete()
	if err := auth.SetPendingDelete(h.d.Sessions, w, r, rt.Slug, m.State().PendingDeleteID); err != nil {
		h.d.writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
