package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/communityhub/pkg/httpx"
	"github.com/ghuser/communityhub/services/resource/application/manager"
)

// UpdateResourceHandler handles PUT /api/resources/{type}/{id}.
type UpdateResourceHandler struct {
	d Deps
}

// NewUpdateResourceHandler returns an UpdateResourceHandler.
func NewUpdateResourceHandler(d Deps) *UpdateResourceHandler {
	return &UpdateResourceHandler{d: d}
}

// Execute saves an edit. Attached images are appended to the submitted
// imageUrls; images are only removed when the submitted imageUrls omit them.
// A body without imageUrls keeps the stored images.
// A non-zero version must match the stored one.
//
//	@Summary		Save resource edit
//	@Tags			resources
//	@Accept			multipart/form-data
//	@Accept			json
//	@Produce		json
//	@Param			type	path		string	true	"Resource type"
//	@Param			id		path		string	true	"Document id"
//	@Param			data	formData	string	true	"Edited item JSON, including version"
//	@Param			files[]	formData	file	false	"Images to append"
//	@Success		200		{object}	MutationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/resources/{type}/{id} [put]
func (h *UpdateResourceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rt, err := resourceTypeFrom(r)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "id")

	sub, err := readSubmission(r)
	if err != nil {
		h.d.writeDecodeError(w, r, err)
		return
	}
	item, err := decodeEdit(rt, sub.data)
	if err != nil {
		h.d.writeDecodeError(w, r, err)
		return
	}
	item.ItemBase().ID = id

	m, rec := h.d.newManager(rt)
	m.HandleEdit(item)
	m.SetEditSelectedFiles(sub.files)

	res := m.HandleSaveEdit(r.Context(), id)
	if !res.OK {
		h.d.writeFailure(w, r, rec, manager.OpSave, res.Message)
		return
	}

	resp := MutationResponse{ID: id, Message: res.Message}
	if saved, ok := findItem(m.State().Items, id); ok {
		resp.Item = saved
	}
	httpx.JSON(w, http.StatusOK, resp)
}
