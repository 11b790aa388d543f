package ui

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/finanapp/client-go/internal/pubsub"
)

// Kind identifies a dialog.
type Kind string

const (
	KindNone          Kind = ""
	KindAsset         Kind = "asset"
	KindIncome        Kind = "income"
	KindExpense       Kind = "expense"
	KindTaxSetup      Kind = "tax-setup"
	KindCategorySetup Kind = "category-setup"
	KindGroupSetup    Kind = "group-setup"
	KindDeleteConfirm Kind = "delete-confirm"
)

// ErrDialogOpen is returned when Open is called while another dialog is
// still visible.
var ErrDialogOpen = errors.New("another dialog is already open")

// Coordinator owns which single dialog is visible and the "current item"
// payload the active dialog reads. Mutual exclusion is enforced: the web app
// tracked each dialog as an independent boolean, which technically allowed
// stacked dialogs, but nothing ever relied on it and a single active slot
// removes a class of stale-state bugs.
//
// Opening the create variant of a dialog passes a nil payload explicitly;
// the edit variant passes the record to edit. The coordinator never infers
// mode from prior state, and Close resets the payload so a re-open for a
// different purpose cannot leak a stale draft.
type Coordinator struct {
	pub pubsub.Publisher

	mu      sync.Mutex
	active  Kind
	payload any
}

// NewCoordinator creates a coordinator with no dialog open.
func NewCoordinator(pub pubsub.Publisher) *Coordinator {
	return &Coordinator{pub: pub}
}

// Open makes the dialog of the given kind visible with the given payload.
func (c *Coordinator) Open(ctx context.Context, kind Kind, payload any) error {
	if kind == KindNone {
		return errors.New("cannot open the empty dialog kind")
	}

	c.mu.Lock()
	if c.active != KindNone && c.active != kind {
		active := c.active
		c.mu.Unlock()
		slog.Warn("Refusing to stack dialogs", "open", active, "requested", kind)
		return ErrDialogOpen
	}
	c.active = kind
	c.payload = payload
	c.mu.Unlock()

	c.announce(ctx, kind, true)
	return nil
}

// Close hides the dialog of the given kind and clears its payload. Closing a
// kind that is not open is a no-op.
func (c *Coordinator) Close(ctx context.Context, kind Kind) {
	c.mu.Lock()
	if c.active != kind {
		c.mu.Unlock()
		return
	}
	c.active = KindNone
	c.payload = nil
	c.mu.Unlock()

	c.announce(ctx, kind, false)
}

// Active returns the open dialog kind and its payload, or KindNone.
func (c *Coordinator) Active() (Kind, any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active, c.payload
}

// IsOpen reports whether the dialog of the given kind is visible.
func (c *Coordinator) IsOpen(kind Kind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active == kind
}

type modalEvent struct {
	Kind Kind `json:"kind"`
	Open bool `json:"open"`
}

func (c *Coordinator) announce(ctx context.Context, kind Kind, open bool) {
	if c.pub == nil {
		return
	}
	payload, err := json.Marshal(modalEvent{Kind: kind, Open: open})
	if err != nil {
		return
	}
	if err := c.pub.Publish(ctx, pubsub.Message{
		Topic:   pubsub.TopicModalChanged,
		Payload: payload,
	}); err != nil {
		slog.Error("Failed to publish modal event", "error", err)
	}
}
