package domain

import "errors"

// ErrNotAuthenticated is returned when a repository operation is attempted
// before the session has finished loading in an authenticated state.
var ErrNotAuthenticated = errors.New("session is not authenticated")

// ErrMissingID is returned when a mutation targets a record that carries no
// server-assigned identifier, such as an unsaved draft.
var ErrMissingID = errors.New("record has no identifier")

// ErrUpdateNotSupported is returned by repositories whose backing resource
// exposes no update endpoint (taxes, categories and groups are create/delete only).
var ErrUpdateNotSupported = errors.New("resource does not support updates")
