package auth

import (
	"context"
	"errors"
	"strings"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const actorKey contextKey = "actor"

// ErrActorNotFound is returned when no authenticated actor exists in the
// request context. Handlers behind RequireAuth never see it.
var ErrActorNotFound = errors.New("actor not found in context")

// Actor is the signed-in user as written to the session by the login provider.
type Actor struct {
	ID    string
	Name  string
	Email string
}

// ActorFromCtx extracts the authenticated actor from the request context.
// Returns the zero Actor and ErrActorNotFound for unauthenticated requests;
// callers record such requests as anonymous.
func ActorFromCtx(ctx context.Context) (Actor, error) {
	actor, ok := ctx.Value(actorKey).(Actor)
	if !ok || strings.TrimSpace(actor.ID) == "" {
		return Actor{}, ErrActorNotFound
	}
	return actor, nil
}

// WithActor returns a new context with actor attached.
// Used by the session middleware after loading the session.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}
