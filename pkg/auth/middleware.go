package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/communityhub/pkg/httpx"
	"github.com/ghuser/communityhub/pkg/logger"
)

const (
	sessionName          = "communityhub_session"
	sessionUserIDKey     = "user_id"
	sessionUserNameKey   = "user_name"
	sessionUserEmailKey  = "user_email"
	sessionPendingPrefix = "pending_delete:"
)

// LoadActor is a chi middleware that attaches the session's actor, if any, to
// the request context. Requests without a usable session pass through
// unauthenticated.
func LoadActor(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.DebugContext(r.Context(), "ignoring invalid session cookie", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if actor, ok := actorFromSession(session); ok {
				r = r.WithContext(WithActor(r.Context(), actor))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the actor, and injects it into the request context.
// Returns 401 Unauthorized if the session is missing, invalid, or has no user id.
//
// After this middleware, handlers can safely call auth.ActorFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if actor, err := ActorFromCtx(r.Context()); err == nil {
				next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
				return
			}

			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			actor, ok := actorFromSession(session)
			if !ok {
				log.WarnContext(r.Context(), "session missing user_id")
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func actorFromSession(session *sessions.Session) (Actor, bool) {
	id, _ := session.Values[sessionUserIDKey].(string)
	if id == "" {
		return Actor{}, false
	}
	name, _ := session.Values[sessionUserNameKey].(string)
	email, _ := session.Values[sessionUserEmailKey].(string)
	return Actor{ID: id, Name: name, Email: email}, true
}
