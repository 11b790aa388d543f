package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/repo"
)

// Labeled is implemented by records that can name themselves in a
// confirmation prompt.
type Labeled interface {
	Label() string
}

// Remover deletes one record of a given entity family. The app wiring
// registers one per family, backed by that family's repository.
type Remover func(ctx context.Context, id uint) error

// DeleteTarget is the transient pointer held between a delete request and
// its confirmation or cancellation.
type DeleteTarget struct {
	Item repo.Record
	Kind string
}

// DeleteFlow is the two-step gate in front of every destructive call:
// Idle -> PendingConfirmation -> Idle. Nothing reaches a repository's Remove
// until the user explicitly confirms, and the target is cleared
// unconditionally on both confirm and cancel.
type DeleteFlow struct {
	coordinator *Coordinator
	notifier    *Notifier
	titler      cases.Caser

	mu       sync.Mutex
	removers map[string]Remover
	target   *DeleteTarget
	message  string
}

// NewDeleteFlow creates an idle flow.
func NewDeleteFlow(coordinator *Coordinator, notifier *Notifier) *DeleteFlow {
	return &DeleteFlow{
		coordinator: coordinator,
		notifier:    notifier,
		titler:      cases.Title(language.English),
		removers:    make(map[string]Remover),
	}
}

// RegisterRemover binds an entity family name to its delete operation.
func (f *DeleteFlow) RegisterRemover(kind string, remove Remover) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removers[kind] = remove
}

// RequestDelete moves the flow to PendingConfirmation for the given item.
// An item without a concrete identifier refuses the transition: a delete
// must never be attempted without a real target. The pending target is set
// only once the confirmation dialog actually opens; a refused open leaves
// the flow idle, so nothing can be confirmed that was never shown.
func (f *DeleteFlow) RequestDelete(ctx context.Context, item repo.Record, kind string) error {
	if item == nil || item.RecordID() == 0 {
		slog.Error("Delete requested for item without identifier", "kind", kind)
		return domain.ErrMissingID
	}

	f.mu.Lock()
	if _, ok := f.removers[kind]; !ok {
		f.mu.Unlock()
		return fmt.Errorf("no remover registered for kind %q", kind)
	}
	f.mu.Unlock()

	target := &DeleteTarget{Item: item, Kind: kind}
	if err := f.coordinator.Open(ctx, KindDeleteConfirm, target); err != nil {
		return err
	}

	f.mu.Lock()
	f.target = target
	f.message = confirmMessage(item, kind)
	f.mu.Unlock()
	return nil
}

// Pending reports whether a confirmation is awaited, along with the current
// target and the human-readable prompt.
func (f *DeleteFlow) Pending() (*DeleteTarget, string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.target, f.message, f.target != nil
}

// Confirm performs the deletion of the pending target. Whatever the outcome,
// the target is cleared and the dialog closes; there is no automatic retry.
func (f *DeleteFlow) Confirm(ctx context.Context) error {
	f.mu.Lock()
	target := f.target
	f.target = nil
	f.message = ""
	remove := Remover(nil)
	if target != nil {
		remove = f.removers[target.Kind]
	}
	f.mu.Unlock()

	f.coordinator.Close(ctx, KindDeleteConfirm)
	if target == nil {
		return fmt.Errorf("no delete is pending confirmation")
	}

	if err := remove(ctx, target.Item.RecordID()); err != nil {
		slog.Warn("Delete failed", "kind", target.Kind, "id", target.Item.RecordID(), "error", err)
		f.notifier.Error(ctx, fmt.Sprintf("Error deleting the %s.", target.Kind))
		return err
	}

	f.notifier.Success(ctx, fmt.Sprintf("%s Successfully Deleted!", f.titler.String(target.Kind)))
	return nil
}

// Cancel abandons the pending delete. No backend call is made.
func (f *DeleteFlow) Cancel(ctx context.Context) {
	f.mu.Lock()
	f.target = nil
	f.message = ""
	f.mu.Unlock()

	f.coordinator.Close(ctx, KindDeleteConfirm)
}

func confirmMessage(item repo.Record, kind string) string {
	if labeled, ok := item.(Labeled); ok && labeled.Label() != "" {
		return fmt.Sprintf("Are you sure you want to delete the %s %q?", kind, labeled.Label())
	}
	return fmt.Sprintf("Are you sure you want to delete this %s?", kind)
}
