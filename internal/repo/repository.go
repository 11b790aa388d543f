package repo

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
	"github.com/finanapp/client-go/internal/session"
)

// Record is any server-backed entity with a numeric identifier. A zero ID
// marks an unsaved draft and is rejected by every mutation that needs a
// concrete target.
type Record interface {
	RecordID() uint
}

// Descriptor binds a Repository to one backend resource. The backend is not
// uniform: most collections arrive inside the dashboard aggregate, but some
// (categories) have their own list endpoint, and the setup resources expose
// no update route at all.
type Descriptor[T Record] struct {
	// Kind is the lower-case entity family name, e.g. "asset".
	Kind string
	// CreatePath is the POST endpoint for new records.
	CreatePath string
	// UpdatePath builds the PUT endpoint for an existing record. Nil when
	// the resource is create/delete only.
	UpdatePath func(id uint) string
	// DeletePath builds the DELETE endpoint for a record.
	DeletePath func(id uint) string
	// ResponseKey names the field wrapping the created record in the
	// backend's mutation response.
	ResponseKey string
	// NumericFields lists body fields that the form layer binds as strings
	// but the server expects as numbers.
	NumericFields []string
	// Collection extracts this repository's records from the dashboard
	// aggregate. Nil when ListPath is set instead.
	Collection func(d *domain.Dashboard) []T
	// ListPath is a dedicated GET collection endpoint for resources that
	// are not part of the dashboard aggregate.
	ListPath string
	// ListKey names the field wrapping the collection at ListPath.
	ListKey string
}

// Repository mirrors one server-side collection in memory and mediates its
// CRUD round trips. Reads replace the whole mirror; every successful mutation
// is followed by a full re-fetch rather than a local patch, because the
// backend computes denormalized display fields (type names, tax associations)
// the client cannot reconstruct.
type Repository[T Record] struct {
	desc      Descriptor[T]
	client    *api.Client
	session   *session.Store
	dashboard *DashboardSource

	mu      sync.RWMutex
	records []T
}

// New creates a repository for the resource described by desc.
func New[T Record](desc Descriptor[T], client *api.Client, sess *session.Store, dash *DashboardSource) *Repository[T] {
	return &Repository[T]{
		desc:      desc,
		client:    client,
		session:   sess,
		dashboard: dash,
	}
}

// Kind returns the entity family name this repository mirrors.
func (r *Repository[T]) Kind() string { return r.desc.Kind }

// Records returns a copy of the in-memory mirror.
func (r *Repository[T]) Records() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.records))
	copy(out, r.records)
	return out
}

// FetchAll replaces the entire mirror with the server's collection. Partial
// results are never merged.
func (r *Repository[T]) FetchAll(ctx context.Context) ([]T, error) {
	if !r.session.Ready() {
		return nil, domain.ErrNotAuthenticated
	}

	var records []T
	if r.desc.ListPath != "" {
		wrapper := map[string]json.RawMessage{}
		if err := r.client.Get(ctx, r.desc.ListPath, &wrapper); err != nil {
			return nil, r.callFailed(ctx, err)
		}
		if raw, ok := wrapper[r.desc.ListKey]; ok {
			if err := json.Unmarshal(raw, &records); err != nil {
				return nil, fmt.Errorf("decoding %s collection: %w", r.desc.Kind, err)
			}
		}
	} else {
		dash, err := r.dashboard.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		records = r.desc.Collection(dash)
	}

	r.mu.Lock()
	r.records = records
	r.mu.Unlock()
	return r.Records(), nil
}

// Create POSTs a draft and refreshes the mirror from the server. The created
// record is decoded from the mutation response so callers can learn its
// server-assigned identifier, but the mirror itself is rebuilt by the
// refresh, never by appending the response locally.
func (r *Repository[T]) Create(ctx context.Context, draft any) (T, error) {
	var created T
	if !r.session.Ready() {
		return created, domain.ErrNotAuthenticated
	}

	body, err := r.payload(draft)
	if err != nil {
		return created, err
	}
	// Creating fresh requires the owner identifier alongside the draft fields.
	if user := r.session.State().User; user != nil {
		body["userID"] = user.ID
	}

	wrapper := map[string]json.RawMessage{}
	if err := r.client.Post(ctx, r.desc.CreatePath, body, &wrapper); err != nil {
		return created, r.callFailed(ctx, err)
	}
	if raw, ok := wrapper[r.desc.ResponseKey]; ok {
		if err := json.Unmarshal(raw, &created); err != nil {
			slog.Warn("Could not decode created record", "kind", r.desc.Kind, "error", err)
		}
	}

	if _, err := r.FetchAll(ctx); err != nil {
		return created, fmt.Errorf("%s created but refresh failed: %w", r.desc.Kind, err)
	}
	return created, nil
}

// Update PUTs a draft against an existing record, then refreshes the mirror
// under the same authoritative-refetch policy as Create.
func (r *Repository[T]) Update(ctx context.Context, id uint, draft any) (T, error) {
	var updated T
	if !r.session.Ready() {
		return updated, domain.ErrNotAuthenticated
	}
	if id == 0 {
		return updated, domain.ErrMissingID
	}
	if r.desc.UpdatePath == nil {
		return updated, fmt.Errorf("%s: %w", r.desc.Kind, domain.ErrUpdateNotSupported)
	}

	body, err := r.payload(draft)
	if err != nil {
		return updated, err
	}

	wrapper := map[string]json.RawMessage{}
	if err := r.client.Put(ctx, r.desc.UpdatePath(id), body, &wrapper); err != nil {
		return updated, r.callFailed(ctx, err)
	}
	if raw, ok := wrapper[r.desc.ResponseKey]; ok {
		if err := json.Unmarshal(raw, &updated); err != nil {
			slog.Warn("Could not decode updated record", "kind", r.desc.Kind, "error", err)
		}
	}

	if _, err := r.FetchAll(ctx); err != nil {
		return updated, fmt.Errorf("%s updated but refresh failed: %w", r.desc.Kind, err)
	}
	return updated, nil
}

// Remove DELETEs a record. On success the mirror is rebuilt by a full
// refresh so the deleted item is never left visible; on failure the mirror
// is untouched.
func (r *Repository[T]) Remove(ctx context.Context, id uint) error {
	if !r.session.Ready() {
		return domain.ErrNotAuthenticated
	}
	if id == 0 {
		return domain.ErrMissingID
	}

	body := map[string]any{"itemId": id}
	if err := r.client.Delete(ctx, r.desc.DeletePath(id), body, nil); err != nil {
		return r.callFailed(ctx, err)
	}

	if _, err := r.FetchAll(ctx); err != nil {
		return fmt.Errorf("%s deleted but refresh failed: %w", r.desc.Kind, err)
	}
	return nil
}

// callFailed inspects a failed round trip. A 401 mid-session means the
// cookie expired server-side, so the session store is reset to logged-out;
// the error itself still propagates to the caller.
func (r *Repository[T]) callFailed(ctx context.Context, err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		r.session.Expire(ctx)
	}
	return err
}

// payload flattens a draft into a JSON object and coerces the string-bound
// numeric fields. Coercion lives here, at the transmission boundary, so the
// form layer can keep binding raw input values.
func (r *Repository[T]) payload(draft any) (map[string]any, error) {
	if draft == nil {
		return nil, fmt.Errorf("%s: nil draft", r.desc.Kind)
	}
	encoded, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("encoding %s draft: %w", r.desc.Kind, err)
	}
	body := map[string]any{}
	if err := json.Unmarshal(encoded, &body); err != nil {
		return nil, fmt.Errorf("flattening %s draft: %w", r.desc.Kind, err)
	}

	for _, field := range r.desc.NumericFields {
		raw, ok := body[field].(string)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %q is not numeric", field, raw)
		}
		body[field] = n
	}
	return body, nil
}
