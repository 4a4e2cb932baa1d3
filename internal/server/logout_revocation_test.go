package server

import (
	"net/http"
	"testing"

	"quill/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogout_RevokesToken(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	s := newTestServer(t)
	s.redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := newAuthApp(s)

	resp := doJSON(t, app, http.MethodPost, "/auth/register", map[string]any{
		"username": "alice", "email": "alice@example.com", "password": "password1",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var auth authResponse
	decodeJSON(t, resp, &auth)

	bearer := map[string]string{"Authorization": "Bearer " + auth.Token}

	resp = doJSON(t, app, http.MethodGet, "/users/me", nil, bearer)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/auth/logout", nil, bearer)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The same token no longer works.
	resp = doJSON(t, app, http.MethodGet, "/users/me", nil, bearer)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var errResp models.ErrorResponse
	decodeJSON(t, resp, &errResp)
	assert.Equal(t, "Token has been revoked", errResp.Error)
}
