package auth

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

// SaveActor writes actor into the session. The external login provider
// calls this after verifying the user.
func SaveActor(store sessions.Store, w http.ResponseWriter, r *http.Request, actor Actor) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	session.Values[sessionUserIDKey] = actor.ID
	session.Values[sessionUserNameKey] = actor.Name
	session.Values[sessionUserEmailKey] = actor.Email
	return session.Save(r, w)
}

// PendingDelete returns the document id awaiting delete confirmation for
// scope, or "" when none is pending.
func PendingDelete(store sessions.Store, r *http.Request, scope string) (string, error) {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	id, _ := session.Values[sessionPendingPrefix+scope].(string)
	return id, nil
}

// SetPendingDelete records id as awaiting confirmation for scope. An empty id
// clears the pending delete.
func SetPendingDelete(store sessions.Store, w http.ResponseWriter, r *http.Request, scope, id string) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if id == "" {
		delete(session.Values, sessionPendingPrefix+scope)
	} else {
		session.Values[sessionPendingPrefix+scope] = id
	}
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
