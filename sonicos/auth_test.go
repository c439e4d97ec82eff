package sonicos

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantAuthed bool
		wantErr    bool
	}{
		{
			name:       "accepted",
			statusCode: http.StatusOK,
			body:       `{"status":{"success":true,"info":[{"level":"info","code":"E_OK","message":"Success."}]}}`,
			wantAuthed: true,
		},
		{
			name:       "rejected credentials",
			statusCode: http.StatusUnauthorized,
			body:       `{"status":{"success":false,"info":[{"level":"error","code":"E_UNAUTHORIZED","message":"Unauthorized."}]}}`,
			wantErr:    true,
		},
		{
			name:       "appliance busy",
			statusCode: http.StatusServiceUnavailable,
			body:       `{"status":{"success":false,"info":[{"level":"error","code":"E_BUSY","message":"Config mode in use."}]}}`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/sonicos/auth", r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := newTestClient(t, server.URL)
			got, err := c.Login()

			assert.Equal(t, tt.wantAuthed, c.authenticated)
			if tt.wantErr {
				var authErr *AuthenticationError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.statusCode, authErr.StatusCode)
				assert.Equal(t, tt.body, string(authErr.Body))
				return
			}
			require.NoError(t, err)
			assert.Contains(t, got, "status")
		})
	}
}

func TestLoginRejectedLeavesSessionUnusable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":{"success":false}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.Login()
	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)

	_, err = c.AddressObjects(AddressObjectOptions{})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLoginMalformedBodyLeavesSessionUnauthenticated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.Login()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
	assert.False(t, c.authenticated, "failed login must leave the session unauthenticated")

	_, err = c.Zones(ZoneOptions{})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLogoutClearsSession(t *testing.T) {
	var authMethods []string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sonicos/auth", func(w http.ResponseWriter, r *http.Request) {
		authMethods = append(authMethods, r.Method)
		_, _ = w.Write([]byte(`{"status":{"success":true}}`))
	})
	mux.HandleFunc("/api/sonicos/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newLoggedInClient(t, server.URL)
	require.True(t, c.authenticated)

	_, err := c.Logout()
	require.NoError(t, err)
	assert.False(t, c.authenticated)
	assert.Equal(t, []string{http.MethodPost, http.MethodDelete}, authMethods)

	// The session is gone, so resource calls refuse again.
	_, err = c.Zones(ZoneOptions{})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLogoutFailureKeepsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sonicos/auth", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"status":{"success":false}}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":{"success":true}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newLoggedInClient(t, server.URL)

	_, err := c.Logout()
	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusInternalServerError, authErr.StatusCode)
	assert.True(t, c.authenticated, "failed logout must not clear the session")
}

func TestLogoutMalformedBodyKeepsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sonicos/auth", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			_, _ = w.Write([]byte(`not json`))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "swap", Value: "c0ffee", Path: "/"})
		_, _ = w.Write([]byte(`{"status":{"success":true}}`))
	})
	mux.HandleFunc("/api/sonicos/", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("swap")
		require.NoError(t, err, "session cookie must survive a failed logout")
		assert.Equal(t, "c0ffee", cookie.Value)
		_, _ = w.Write([]byte(`{"zones":[]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newLoggedInClient(t, server.URL)

	_, err := c.Logout()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
	assert.True(t, c.authenticated, "failed logout must leave the session authenticated")

	// The session is still usable.
	_, err = c.Zones(ZoneOptions{})
	require.NoError(t, err)
}

func TestLogoutWithoutSession(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, http.MethodDelete, r.Method)
		_, _ = w.Write([]byte(`{"status":{"success":true}}`))
	}))
	defer server.Close()

	// Logout is permitted without a prior login; the appliance decides what
	// an unauthenticated logout means.
	c := newTestClient(t, server.URL)
	_, err := c.Logout()
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}
