package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanapp/client-go/internal/api"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...api.Option) *api.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := api.New(srv.URL, opts...)
	require.NoError(t, err)
	return client
}

func TestGetDecodesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		json.NewEncoder(w).Encode(map[string]string{"greeting": "hello"})
	})

	var out struct {
		Greeting string `json:"greeting"`
	}
	require.NoError(t, client.Get(context.Background(), "/api/test", &out))
	assert.Equal(t, "hello", out.Greeting)
}

func TestPostSendsJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body["email"])
		w.WriteHeader(http.StatusCreated)
	})

	err := client.Post(context.Background(), "/api/register", map[string]string{"email": "jane@example.com"}, nil)
	require.NoError(t, err)
}

func TestErrorDecoding(t *testing.T) {
	t.Run("single message payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Required fields not filled"})
		})

		err := client.Get(context.Background(), "/api/test", nil)
		require.Error(t, err)
		assert.EqualError(t, err, "Required fields not filled")

		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Empty(t, apiErr.Messages)
	})

	t.Run("multi-field validation payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{
				"status":  "error",
				"message": []string{"First name is required", "Last name is required"},
			})
		})

		err := client.Post(context.Background(), "/api/user-edit", map[string]string{}, nil)
		require.Error(t, err)
		assert.EqualError(t, err, "First name is required; Last name is required")

		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Len(t, apiErr.Messages, 2)
		assert.Equal(t, "First name is required", apiErr.Message)
	})

	t.Run("plain-text body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream timeout"))
		})

		err := client.Get(context.Background(), "/api/test", nil)
		require.Error(t, err)
		assert.EqualError(t, err, "upstream timeout")
	})

	t.Run("unparseable body falls back to the status text", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("{broken"))
		})

		err := client.Get(context.Background(), "/api/test", nil)
		require.Error(t, err)
		assert.EqualError(t, err, "Internal Server Error")
	})

	t.Run("401 matches ErrUnauthorized", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
		})

		err := client.Get(context.Background(), "/api/auth-status", nil)
		assert.ErrorIs(t, err, api.ErrUnauthorized)
	})

	t.Run("other statuses do not match ErrUnauthorized", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"message": "Forbidden"})
		})

		err := client.Get(context.Background(), "/api/test", nil)
		require.Error(t, err)
		assert.False(t, errors.Is(err, api.ErrUnauthorized))
	})
}

func TestTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, api.WithTimeout(50*time.Millisecond))

	err := client.Get(context.Background(), "/api/slow", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCookiesPersistAcrossCalls(t *testing.T) {
	const cookieName = "user_session"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "abc123", Path: "/"})
			w.Write([]byte(`{"status":"success"}`))
		default:
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value != "abc123" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"Unauthorized"}`))
				return
			}
			w.Write([]byte(`{"authenticated":true}`))
		}
	})

	ctx := context.Background()
	require.NoError(t, client.Post(ctx, "/api/login", map[string]string{"email": "x"}, nil))
	require.NoError(t, client.Get(ctx, "/api/auth-status", nil))
}
