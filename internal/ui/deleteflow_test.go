package ui_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/ui"
)

type testRecord struct {
	id   uint
	name string
}

func (r testRecord) RecordID() uint { return r.id }
func (r testRecord) Label() string  { return r.name }

// recordingRemover counts delete calls and returns a scripted error.
type recordingRemover struct {
	mu    sync.Mutex
	calls []uint
	err   error
}

func (r *recordingRemover) remove(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, id)
	return r.err
}

func setupDeleteFlow(t *testing.T) (*ui.Coordinator, *ui.DeleteFlow, *recordingRemover) {
	t.Helper()

	coordinator := ui.NewCoordinator(nil)
	flow := ui.NewDeleteFlow(coordinator, ui.NewNotifier(nil))
	remover := &recordingRemover{}
	flow.RegisterRemover("asset", remover.remove)
	return coordinator, flow, remover
}

func TestRequestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("opens the confirmation dialog with the target", func(t *testing.T) {
		coordinator, flow, _ := setupDeleteFlow(t)
		item := testRecord{id: 7, name: "Car"}

		require.NoError(t, flow.RequestDelete(ctx, item, "asset"))
		assert.True(t, coordinator.IsOpen(ui.KindDeleteConfirm))

		target, message, pending := flow.Pending()
		require.True(t, pending)
		assert.Equal(t, uint(7), target.Item.RecordID())
		assert.Contains(t, message, `"Car"`)
	})

	t.Run("refuses an item without an identifier", func(t *testing.T) {
		coordinator, flow, remover := setupDeleteFlow(t)

		err := flow.RequestDelete(ctx, testRecord{id: 0, name: "Draft"}, "asset")
		assert.ErrorIs(t, err, domain.ErrMissingID)
		assert.False(t, coordinator.IsOpen(ui.KindDeleteConfirm))
		assert.Empty(t, remover.calls)

		err = flow.RequestDelete(ctx, nil, "asset")
		assert.ErrorIs(t, err, domain.ErrMissingID)
	})

	t.Run("stays idle when another dialog blocks the confirmation", func(t *testing.T) {
		coordinator, flow, remover := setupDeleteFlow(t)
		require.NoError(t, coordinator.Open(ctx, ui.KindAsset, nil))

		err := flow.RequestDelete(ctx, testRecord{id: 7, name: "Car"}, "asset")
		assert.ErrorIs(t, err, ui.ErrDialogOpen)

		_, _, pending := flow.Pending()
		assert.False(t, pending, "no dialog was shown, so nothing may be pending")

		// A confirm after the refused request must have nothing to delete.
		assert.Error(t, flow.Confirm(ctx))
		assert.Empty(t, remover.calls)
	})

	t.Run("refuses an unregistered kind", func(t *testing.T) {
		_, flow, _ := setupDeleteFlow(t)

		err := flow.RequestDelete(ctx, testRecord{id: 3}, "spaceship")
		require.Error(t, err)
		assert.ErrorContains(t, err, "no remover registered")
	})
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the remover once and clears the target", func(t *testing.T) {
		coordinator, flow, remover := setupDeleteFlow(t)
		require.NoError(t, flow.RequestDelete(ctx, testRecord{id: 7, name: "Car"}, "asset"))

		require.NoError(t, flow.Confirm(ctx))
		assert.Equal(t, []uint{7}, remover.calls)
		assert.False(t, coordinator.IsOpen(ui.KindDeleteConfirm))

		_, _, pending := flow.Pending()
		assert.False(t, pending)

		// A second confirm has nothing to act on.
		assert.Error(t, flow.Confirm(ctx))
		assert.Equal(t, []uint{7}, remover.calls)
	})

	t.Run("clears the target even when the delete fails", func(t *testing.T) {
		coordinator, flow, remover := setupDeleteFlow(t)
		remover.err = errors.New("boom")
		require.NoError(t, flow.RequestDelete(ctx, testRecord{id: 7, name: "Car"}, "asset"))

		err := flow.Confirm(ctx)
		require.Error(t, err)
		assert.False(t, coordinator.IsOpen(ui.KindDeleteConfirm))

		_, _, pending := flow.Pending()
		assert.False(t, pending, "a failed delete must not stay pending")
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	coordinator, flow, remover := setupDeleteFlow(t)
	require.NoError(t, flow.RequestDelete(ctx, testRecord{id: 7, name: "Car"}, "asset"))

	flow.Cancel(ctx)
	assert.Empty(t, remover.calls, "cancelling must not reach the backend")
	assert.False(t, coordinator.IsOpen(ui.KindDeleteConfirm))

	_, _, pending := flow.Pending()
	assert.False(t, pending)
}

func TestConfirmMessageWithoutLabel(t *testing.T) {
	_, flow, _ := setupDeleteFlow(t)
	require.NoError(t, flow.RequestDelete(context.Background(), testRecord{id: 4}, "asset"))

	_, message, _ := flow.Pending()
	assert.Equal(t, "Are you sure you want to delete this asset?", message)
}
