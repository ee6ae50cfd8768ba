package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/ghuser/communityhub/pkg/auth"
	"github.com/ghuser/communityhub/pkg/errhttp"
	"github.com/ghuser/communityhub/pkg/httpx"
	"github.com/ghuser/communityhub/pkg/logger"
	pkgvalidator "github.com/ghuser/communityhub/pkg/validator"
	"github.com/ghuser/communityhub/services/resource/application/manager"
	appsvcs "github.com/ghuser/communityhub/services/resource/application/services"
	"github.com/ghuser/communityhub/services/resource/domain"
	"github.com/ghuser/communityhub/services/resource/domain/models"
	domainsvcs "github.com/ghuser/communityhub/services/resource/domain/services"
)

// multipartMemory is how much of a multipart body is held in memory before
// spilling to temporary files.
const multipartMemory = 32 << 20

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"document not found"`
} // @name ErrorResponse

// Deps are the collaborators shared by every resource handler.
type Deps struct {
	Services     *appsvcs.Services
	Sessions     sessions.Store
	Logger       logger.Logger
	IsProduction bool
}

func (d Deps) log() logger.Logger {
	if d.Logger == nil {
		return logger.Discard()
	}
	return d.Logger
}

// writeError maps err to a status and hides 5xx details in production.
func (d Deps) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if status := errhttp.StatusFor(err); status >= http.StatusInternalServerError {
		d.log().ErrorContext(r.Context(), "request failed", "error", err)
	}
	errhttp.Write(w, err, d.IsProduction)
}

// newManager builds a request-scoped manager for rt acting as the request's
// actor. The returned recorder captures its notices.
func (d Deps) newManager(rt models.ResourceType) (*manager.Manager[models.Item], *noticeRecorder) {
	rec := &noticeRecorder{}
	m := manager.ForResourceType(rt, d.Services.Resource, manager.Options{
		Notifier: rec,
		Actor:    actorFromContext,
	})
	return m, rec
}

// writeFailure answers a failed manager operation with its user-facing
// message and the status its cause maps to.
func (d Deps) writeFailure(w http.ResponseWriter, r *http.Request, rec *noticeRecorder, op manager.Op, fallback string) {
	n, ok := rec.failure(op)
	if !ok {
		httpx.JSONError(w, http.StatusInternalServerError, fallback)
		return
	}
	status := errhttp.StatusFor(n.Err)
	if status >= http.StatusInternalServerError {
		d.log().ErrorContext(r.Context(), "resource operation failed", "op", string(op), "error", n.Err)
	} else {
		d.log().InfoContext(r.Context(), "resource operation rejected", "op", string(op), "error", n.Err)
	}
	httpx.JSON(w, status, ErrorResponse{Error: n.Message})
}

// noticeRecorder keeps the notices of one request.
type noticeRecorder struct {
	notices []manager.Notice
}

func (r *noticeRecorder) Notify(n manager.Notice) {
	r.notices = append(r.notices, n)
}

func (r *noticeRecorder) failure(op manager.Op) (manager.Notice, bool) {
	for _, n := range r.notices {
		if n.Op == op && n.Severity == manager.SeverityError {
			return n, true
		}
	}
	return manager.Notice{}, false
}

// actorFromContext converts the session actor, falling back to anonymous.
func actorFromContext(ctx context.Context) models.Actor {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return models.Actor{}
	}
	return models.Actor{ID: actor.ID, Name: actor.Name, Email: actor.Email}
}

func resourceTypeFrom(r *http.Request) (models.ResourceType, error) {
	slug := chi.URLParam(r, "type")
	rt, ok := models.LookupResourceType(slug)
	if !ok {
		return models.ResourceType{}, fmt.Errorf("%w: %q", domain.ErrUnknownResourceType, slug)
	}
	return rt, nil
}

// findItem returns the item with id from items.
func findItem(items []models.Item, id string) (models.Item, bool) {
	for _, item := range items {
		if item.ItemBase().ID == id {
			return item, true
		}
	}
	return nil, false
}

// submission is a decoded write request: the item JSON plus attached files.
type submission struct {
	data  []byte
	files []models.UploadFile
}

// readSubmission accepts either a JSON body or a multipart form with the item
// JSON in the "data" part and images in "files[]".
func readSubmission(r *http.Request) (*submission, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: content type: %v", pkgvalidator.ErrMalformedJSON, err)
	}

	if mediaType == "application/json" {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		return &submission{data: data}, nil
	}

	if !strings.HasPrefix(mediaType, "multipart/") {
		return nil, fmt.Errorf("%w: unsupported content type %q", pkgvalidator.ErrMalformedJSON, mediaType)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, fmt.Errorf("%w: multipart: %v", pkgvalidator.ErrMalformedJSON, err)
	}

	data := r.FormValue("data")
	if data == "" {
		return nil, fmt.Errorf("%w: missing data part", pkgvalidator.ErrMalformedJSON)
	}
	files, err := readFiles(r.MultipartForm)
	if err != nil {
		return nil, err
	}
	return &submission{data: []byte(data), files: files}, nil
}

// readFiles loads every "files[]" (or "files") part in order.
func readFiles(form *multipart.Form) ([]models.UploadFile, error) {
	if form == nil {
		return nil, nil
	}
	headers := form.File["files[]"]
	if len(headers) == 0 {
		headers = form.File["files"]
	}

	out := make([]models.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		out = append(out, models.UploadFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return out, nil
}

// decodeItem strictly decodes data into a fresh item of rt and applies both
// tag and business validation.
func decodeItem(rt models.ResourceType, data []byte) (models.Item, error) {
	item := rt.New()
	if err := pkgvalidator.DecodeJSON(data, item); err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDocument, err)
	}
	return item, nil
}

// decodeEdit is decodeItem for a save. When data has no imageUrls key the
// item's ImageURLs is left nil so the stored images are kept.
func decodeEdit(rt models.ResourceType, data []byte) (models.Item, error) {
	item, err := decodeItem(rt, data)
	if err != nil {
		return nil, err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("%w: %v", pkgvalidator.ErrMalformedJSON, err)
	}
	if _, ok := keys[models.FieldImageURLs]; !ok {
		item.ItemBase().ImageURLs = nil
	}
	return item, nil
}

// writeDecodeError answers a failed readSubmission or decodeItem.
func (d Deps) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidDocument) {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if errors.Is(err, pkgvalidator.ErrMalformedJSON) {
		d.log().DebugContext(r.Context(), "malformed submission", "error", err)
	}
	pkgvalidator.WriteError(w, err)
}
