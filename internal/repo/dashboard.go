package repo

import (
	"context"
	"errors"
	"sync"

	"github.com/finanapp/client-go/internal/api"
	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/session"
)

// DashboardSource fetches and caches the dashboard aggregate. One fetch
// hydrates every repository that mirrors a dashboard collection, matching
// the backend's one-aggregate-per-view contract.
type DashboardSource struct {
	client  *api.Client
	session *session.Store

	mu      sync.RWMutex
	current *domain.Dashboard
}

// NewDashboardSource creates a source bound to the given client and session.
func NewDashboardSource(client *api.Client, sess *session.Store) *DashboardSource {
	return &DashboardSource{client: client, session: sess}
}

// Fetch retrieves a fresh aggregate snapshot from the backend. It refuses to
// run before the session has settled authenticated.
func (s *DashboardSource) Fetch(ctx context.Context) (*domain.Dashboard, error) {
	if !s.session.Ready() {
		return nil, domain.ErrNotAuthenticated
	}

	var dash domain.Dashboard
	if err := s.client.Get(ctx, "/api/user", &dash); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			s.session.Expire(ctx)
		}
		return nil, err
	}

	s.mu.Lock()
	s.current = &dash
	s.mu.Unlock()
	return &dash, nil
}

// Current returns the last fetched snapshot, or nil before the first fetch.
// The snapshot is a point-in-time copy; mutations are reflected only after
// the next Fetch.
func (s *DashboardSource) Current() *domain.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
