package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanapp/client-go/internal/api"
	"github.com/finanapp/client-go/internal/apitest"
	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/session"
)

func setupStoreTest(t *testing.T) (*apitest.Server, *session.Store) {
	t.Helper()

	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	srv.SeedUser("jane@example.com", "password123", domain.UserProfile{
		FirstName: "Jane",
		LastName:  "Doe",
	})

	client, err := api.New(srv.URL)
	require.NoError(t, err)

	return srv, session.NewStore(client, nil)
}

func TestStoreStartsLoading(t *testing.T) {
	_, store := setupStoreTest(t)

	state := store.State()
	assert.True(t, state.Loading)
	assert.False(t, state.Authenticated)
	assert.Nil(t, state.User)
	assert.False(t, store.Ready())
}

func TestProbe(t *testing.T) {
	ctx := context.Background()

	t.Run("settles loading exactly once without a session", func(t *testing.T) {
		_, store := setupStoreTest(t)

		state := store.Probe(ctx)
		assert.False(t, state.Loading)
		assert.False(t, state.Authenticated)
		assert.Nil(t, state.User)

		// A second probe must not resurrect the loading phase.
		state = store.Probe(ctx)
		assert.False(t, state.Loading)
	})

	t.Run("hydrates the profile for a live session", func(t *testing.T) {
		_, store := setupStoreTest(t)
		_, err := store.Login(ctx, "jane@example.com", "password123")
		require.NoError(t, err)

		state := store.Probe(ctx)
		assert.True(t, state.Authenticated)
		require.NotNil(t, state.User)
		assert.Equal(t, "jane@example.com", state.User.EmailAddress)
		assert.True(t, store.Ready())
	})

	t.Run("fails closed on a server error", func(t *testing.T) {
		srv, store := setupStoreTest(t)
		_, err := store.Login(ctx, "jane@example.com", "password123")
		require.NoError(t, err)

		srv.FailNext("/api/auth-status", 500, "database unavailable")
		state := store.Probe(ctx)
		assert.False(t, state.Loading)
		assert.False(t, state.Authenticated)
		assert.Nil(t, state.User)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the store to authenticated on success", func(t *testing.T) {
		_, store := setupStoreTest(t)

		profile, err := store.Login(ctx, "jane@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", profile.EmailAddress)
		assert.Equal(t, "Jane Doe", profile.FullName())

		state := store.State()
		assert.True(t, state.Authenticated)
		require.NotNil(t, state.User)
		assert.Equal(t, profile.ID, state.User.ID)
	})

	t.Run("leaves the store untouched on bad credentials", func(t *testing.T) {
		_, store := setupStoreTest(t)
		store.Probe(ctx)

		_, err := store.Login(ctx, "jane@example.com", "wrong")
		require.Error(t, err)
		assert.ErrorContains(t, err, "Invalid credentials")

		state := store.State()
		assert.False(t, state.Authenticated)
		assert.Nil(t, state.User)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the session on confirmed success", func(t *testing.T) {
		_, store := setupStoreTest(t)
		_, err := store.Login(ctx, "jane@example.com", "password123")
		require.NoError(t, err)

		require.NoError(t, store.Logout(ctx))

		state := store.State()
		assert.False(t, state.Authenticated)
		assert.Nil(t, state.User)
	})

	t.Run("keeps the session when the server call fails", func(t *testing.T) {
		srv, store := setupStoreTest(t)
		_, err := store.Login(ctx, "jane@example.com", "password123")
		require.NoError(t, err)

		srv.FailNext("/api/logout", 502, "upstream gone")
		require.Error(t, store.Logout(ctx))

		state := store.State()
		assert.True(t, state.Authenticated)
		require.NotNil(t, state.User)
	})
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	_, store := setupStoreTest(t)

	err := store.Register(ctx, session.RegisterRequest{
		FirstName:   "Sam",
		LastName:    "Smith",
		Email:       "sam@example.com",
		Password:    "password123",
		DateOfBirth: "1990-04-01",
	})
	require.NoError(t, err)

	// Registration does not log the user in.
	assert.False(t, store.State().Authenticated)

	profile, err := store.Login(ctx, "sam@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Sam", profile.FirstName)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("requires an authenticated session", func(t *testing.T) {
		_, store := setupStoreTest(t)
		store.Probe(ctx)

		err := store.UpdateProfile(ctx, domain.ProfileUpdate{FirstName: "Jane"})
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})

	t.Run("stores the server's copy of the profile", func(t *testing.T) {
		_, store := setupStoreTest(t)
		_, err := store.Login(ctx, "jane@example.com", "password123")
		require.NoError(t, err)
		store.Probe(ctx)

		err = store.UpdateProfile(ctx, domain.ProfileUpdate{
			FirstName:   "Janet",
			LastName:    "Doe",
			DateOfBirth: "1988-02-14",
		})
		require.NoError(t, err)

		state := store.State()
		require.NotNil(t, state.User)
		assert.Equal(t, "Janet", state.User.FirstName)
	})
}
