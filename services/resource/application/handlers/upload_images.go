package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/communityhub/pkg/httpx"
	pkgvalidator "github.com/ghuser/communityhub/pkg/validator"
)

// UploadResponse mirrors the image upload service contract.
type UploadResponse struct {
	ImageURLs []string `json:"imageUrls"`
} // @name UploadResponse

// UploadImagesHandler handles POST /api/uploads.
type UploadImagesHandler struct {
	d Deps
}

// NewUploadImagesHandler returns an UploadImagesHandler.
func NewUploadImagesHandler(d Deps) *UploadImagesHandler {
	return &UploadImagesHandler{d: d}
}

// Execute stores images under a category folder and returns their public
// URLs in upload order.
//
//	@Summary		Upload images
//	@Tags			uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			category	formData	string	true	"Upload folder"	Enums(donation, event, news, podcast, quiz)
//	@Param			files[]		formData	file	true	"Images"
//	@Success		200			{object}	UploadResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		415			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		502			{object}	ErrorResponse
//	@Router			/uploads [post]
func (h *UploadImagesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "expected a multipart form")
		return
	}

	files, err := readFiles(r.MultipartForm)
	if err != nil {
		h.d.writeDecodeError(w, r, fmt.Errorf("%w: %v", pkgvalidator.ErrMalformedJSON, err))
		return
	}
	if len(files) == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "no files[] in request")
		return
	}

	urls, err := h.d.Services.Resource.UploadToFolder(r.Context(), r.FormValue("category"), files)
	if err != nil {
		h.d.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, UploadResponse{ImageURLs: urls})
}
