// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"context"
	"errors"
	"net/http"

	"github.com/ghuser/communityhub/pkg/auth"
	"github.com/ghuser/communityhub/pkg/httpx"
	"github.com/ghuser/communityhub/services/resource/domain"
)

// Write maps err to an HTTP status code and writes a JSON error response.
// Wrapped sentinel errors are matched with errors.Is; anything unrecognized
// is a 500, whose message is replaced by the status text when isProduction
// is set.
func Write(w http.ResponseWriter, err error, isProduction bool) {
	status := StatusFor(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

// StatusFor returns the HTTP status code err maps to.
func StatusFor(err error) int {
	return mapErrorToStatus(err)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound),
		errors.Is(err, domain.ErrUnknownResourceType):
		return http.StatusNotFound // 404
	case errors.Is(err, domain.ErrConcurrentModification),
		errors.Is(err, domain.ErrNoPendingDelete),
		errors.Is(err, domain.ErrNoActiveEdit):
		return http.StatusConflict // 409
	case errors.Is(err, domain.ErrInvalidDocument):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, domain.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType // 415
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusBadGateway // 502
	case errors.Is(err, auth.ErrActorNotFound):
		return http.StatusUnauthorized // 401
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout // 504
	default:
		return http.StatusInternalServerError // 500
	}
}
