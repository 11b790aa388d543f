package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/finanapp/client-go/internal/api"
	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/pubsub"
)

// State is a snapshot of the session. Authenticated and User change together:
// the store never exposes Authenticated=true with a nil User.
type State struct {
	Authenticated bool
	User          *domain.UserProfile
	// Loading is true only until the initial probe settles. It flips to
	// false exactly once per store instance, whatever the probe outcome.
	Loading bool
}

// Store holds the process-wide authentication state. It is created once at
// application start, populated by a single Probe, and mutated afterwards only
// through Login, Logout and profile updates. Every state change is published
// on the session topic so views can react without polling.
type Store struct {
	client *api.Client
	pub    pubsub.Publisher

	mu     sync.RWMutex
	state  State
	probed bool
}

// Event is the payload published on pubsub.TopicSessionChanged.
type Event struct {
	Authenticated bool   `json:"authenticated"`
	Loading       bool   `json:"loading"`
	Email         string `json:"email,omitempty"`
}

// NewStore creates a session store in its pre-probe state.
func NewStore(client *api.Client, pub pubsub.Publisher) *Store {
	return &Store{
		client: client,
		pub:    pub,
		state:  State{Loading: true},
	}
}

// State returns a copy of the current session state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Ready reports whether the session has settled in an authenticated state.
// Repositories refuse to operate until this is true.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.state.Loading && s.state.Authenticated
}

// Probe issues the authenticated-context request that hydrates the store at
// application start. An authorization failure means "not logged in" and is
// not surfaced as an error; any other failure fails closed to the same
// logged-out state so the UI is never left ambiguously authenticated.
func (s *Store) Probe(ctx context.Context) State {
	var status domain.AuthStatus
	err := s.client.Get(ctx, "/api/auth-status", &status)

	s.mu.Lock()
	if !s.probed {
		s.probed = true
		s.state.Loading = false
	}
	switch {
	case err == nil && status.Authenticated:
		profile := status.UserProfile
		s.state.Authenticated = true
		s.state.User = &profile
	case errors.Is(err, api.ErrUnauthorized):
		s.state.Authenticated = false
		s.state.User = nil
	default:
		if err != nil {
			slog.Warn("Session probe failed, treating as unauthenticated", "error", err)
		}
		s.state.Authenticated = false
		s.state.User = nil
	}
	snapshot := s.state
	s.mu.Unlock()

	s.publish(ctx, snapshot)
	return snapshot
}

// Expire flips the store to logged-out after the backend rejected a
// credentialed call mid-session (an expired cookie). The reset is silent;
// the caller still surfaces its own error for the failed operation.
func (s *Store) Expire(ctx context.Context) {
	s.mu.Lock()
	if !s.state.Authenticated {
		s.mu.Unlock()
		return
	}
	s.state.Authenticated = false
	s.state.User = nil
	snapshot := s.state
	s.mu.Unlock()

	slog.Warn("Session expired, resetting to logged-out")
	s.publish(ctx, snapshot)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status string             `json:"status"`
	User   domain.UserProfile `json:"user"`
}

// Login authenticates against the backend. On success the store flips to
// authenticated and the session cookie is captured by the client's jar; on
// failure the state is left untouched and the error carries the backend's
// message for display.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	var res loginResponse
	if err := s.client.Post(ctx, "/api/login", credentials{Email: email, Password: password}, &res); err != nil {
		return nil, err
	}
	if res.Status != "success" {
		return nil, fmt.Errorf("unexpected login status %q", res.Status)
	}

	profile := res.User
	s.mu.Lock()
	s.state.Authenticated = true
	s.state.User = &profile
	snapshot := s.state
	s.mu.Unlock()

	slog.Info("Logged in", "email", profile.EmailAddress)
	s.publish(ctx, snapshot)
	return &profile, nil
}

// Logout terminates the server-side session. Local state is cleared only on
// confirmed success: a dead network must not produce a UI that claims
// "logged out" while the server still holds a live session.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.client.Post(ctx, "/api/logout", nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	s.state.Authenticated = false
	s.state.User = nil
	snapshot := s.state
	s.mu.Unlock()

	slog.Info("Logged out")
	s.publish(ctx, snapshot)
	return nil
}

// RegisterRequest carries the fields of a new account.
type RegisterRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
}

// Register creates a new account. It does not log the user in; callers
// follow up with Login using the same credentials.
func (s *Store) Register(ctx context.Context, req RegisterRequest) error {
	return s.client.Post(ctx, "/api/register", req, nil)
}

// UpdateProfile submits profile changes for the logged-in user and, on
// success, re-probes the backend so the stored profile reflects the
// authoritative server copy rather than a local patch.
func (s *Store) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	if !s.Ready() {
		return domain.ErrNotAuthenticated
	}

	s.mu.RLock()
	update.UserID = s.state.User.ID
	s.mu.RUnlock()

	if err := s.client.Post(ctx, "/api/user-edit", update, nil); err != nil {
		return err
	}

	var status domain.AuthStatus
	if err := s.client.Get(ctx, "/api/auth-status", &status); err != nil {
		slog.Warn("Profile refresh after update failed", "error", err)
		return nil
	}

	profile := status.UserProfile
	s.mu.Lock()
	s.state.User = &profile
	snapshot := s.state
	s.mu.Unlock()

	s.publish(ctx, snapshot)
	return nil
}

func (s *Store) publish(ctx context.Context, snapshot State) {
	if s.pub == nil {
		return
	}

	event := Event{Authenticated: snapshot.Authenticated, Loading: snapshot.Loading}
	userID := ""
	if snapshot.User != nil {
		event.Email = snapshot.User.EmailAddress
		userID = strconv.FormatUint(uint64(snapshot.User.ID), 10)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to encode session event", "error", err)
		return
	}
	if err := s.pub.Publish(ctx, pubsub.Message{
		Topic:   pubsub.TopicSessionChanged,
		UserID:  userID,
		Payload: payload,
	}); err != nil {
		slog.Error("Failed to publish session event", "error", err)
	}
}
