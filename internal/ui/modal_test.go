package ui_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanapp/client-go/internal/ui"
)

func TestCoordinatorOpenClose(t *testing.T) {
	ctx := context.Background()

	t.Run("open exposes kind and payload", func(t *testing.T) {
		c := ui.NewCoordinator(nil)
		payload := map[string]string{"AssetName": "Car"}

		require.NoError(t, c.Open(ctx, ui.KindAsset, payload))
		kind, got := c.Active()
		assert.Equal(t, ui.KindAsset, kind)
		assert.Equal(t, payload, got)
		assert.True(t, c.IsOpen(ui.KindAsset))
	})

	t.Run("close clears the payload", func(t *testing.T) {
		c := ui.NewCoordinator(nil)
		require.NoError(t, c.Open(ctx, ui.KindAsset, "stale draft"))

		c.Close(ctx, ui.KindAsset)
		kind, payload := c.Active()
		assert.Equal(t, ui.KindNone, kind)
		assert.Nil(t, payload)
	})

	t.Run("closing a kind that is not open is a no-op", func(t *testing.T) {
		c := ui.NewCoordinator(nil)
		require.NoError(t, c.Open(ctx, ui.KindIncome, nil))

		c.Close(ctx, ui.KindAsset)
		assert.True(t, c.IsOpen(ui.KindIncome))
	})

	t.Run("the empty kind cannot be opened", func(t *testing.T) {
		c := ui.NewCoordinator(nil)
		assert.Error(t, c.Open(ctx, ui.KindNone, nil))
	})
}

func TestCoordinatorMutualExclusion(t *testing.T) {
	ctx := context.Background()
	c := ui.NewCoordinator(nil)

	require.NoError(t, c.Open(ctx, ui.KindAsset, nil))
	err := c.Open(ctx, ui.KindDeleteConfirm, nil)
	assert.ErrorIs(t, err, ui.ErrDialogOpen)

	// The first dialog is still the active one.
	assert.True(t, c.IsOpen(ui.KindAsset))
	assert.False(t, c.IsOpen(ui.KindDeleteConfirm))

	// Re-opening the same kind replaces the payload instead of stacking.
	require.NoError(t, c.Open(ctx, ui.KindAsset, "edit target"))
	_, payload := c.Active()
	assert.Equal(t, "edit target", payload)
}

func TestCoordinatorReopenAfterClose(t *testing.T) {
	ctx := context.Background()
	c := ui.NewCoordinator(nil)

	require.NoError(t, c.Open(ctx, ui.KindAsset, "first"))
	c.Close(ctx, ui.KindAsset)
	require.NoError(t, c.Open(ctx, ui.KindExpense, nil))

	kind, payload := c.Active()
	assert.Equal(t, ui.KindExpense, kind)
	assert.Nil(t, payload, "a previous dialog's payload must not leak")
}
