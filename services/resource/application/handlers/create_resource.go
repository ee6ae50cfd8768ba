package handlers

import (
	"net/http"

	"github.com/ghuser/communityhub/pkg/httpx"
	"github.com/ghuser/communityhub/services/resource/application/manager"
	"github.com/ghuser/communityhub/services/resource/domain/models"
)

// MutationResponse is returned by create and update.
type MutationResponse struct {
	ID      string      `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Message string      `json:"message" example:"The event was added."`
	Item    models.Item `json:"item,omitempty"`
} // @name MutationResponse

// CreateResourceHandler handles POST /api/resources/{type}.
type CreateResourceHandler struct {
	d Deps
}

// NewCreateResourceHandler returns a CreateResourceHandler.
func NewCreateResourceHandler(d Deps) *CreateResourceHandler {
	return &CreateResourceHandler{d: d}
}

// Execute uploads the attached images and adds a document with one add
// record in its activity trail.
//
//	@Summary		Create resource
//	@Description	Multipart body: "data" holds the item JSON, "files[]" the images. A plain JSON body adds without images.
//	@Tags			resources
//	@Accept			multipart/form-data
//	@Accept			json
//	@Produce		json
//	@Param			type	path		string	true	"Resource type"
//	@Param			data	formData	string	true	"Item JSON"
//	@Param			files[]	formData	file	false	"Images"
//	@Success		201		{object}	MutationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		415		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/resources/{type} [post]
func (h *CreateResourceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rt, err := resourceTypeFrom(r)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}

	sub, err := readSubmission(r)
	if err != nil {
		h.d.writeDecodeError(w, r, err)
		return
	}
	item, err := decodeItem(rt, sub.data)
	if err != nil {
		h.d.writeDecodeError(w, r, err)
		return
	}

	m, rec := h.d.newManager(rt)
	m.OpenAdd()
	m.SetForm(item)
	m.SetSelectedFiles(sub.files)

	res := m.HandleAdd(r.Context())
	if !res.OK {
		h.d.writeFailure(w, r, rec, manager.OpAdd, res.Message)
		return
	}

	resp := MutationResponse{ID: res.ID, Message: res.Message}
	if created, ok := findItem(m.State().Items, res.ID); ok {
		resp.Item = created
	}
	httpx.JSON(w, http.StatusCreated, resp)
}
