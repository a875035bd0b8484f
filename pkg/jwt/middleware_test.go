package jwt_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/inkwell/pkg/jwt"
)

func newService(t *testing.T) *jwt.Service {
	t.Helper()

	svc, err := jwt.New("test-secret-key-at-least-32-chars")
	require.NoError(t, err)
	return svc
}

func protectedHandler(got *jwt.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := jwt.IdentityFromContext(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		*got = id
		w.WriteHeader(http.StatusOK)
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	issue := func(t *testing.T, userID string) string {
		t.Helper()
		token, err := svc.Issue(userID, userID+"@example.com", false, time.Hour)
		require.NoError(t, err)
		return token
	}

	serve := func(req *http.Request) (*httptest.ResponseRecorder, *jwt.Identity) {
		var id jwt.Identity
		rec := httptest.NewRecorder()
		jwt.Middleware(svc)(protectedHandler(&id)).ServeHTTP(rec, req)
		return rec, &id
	}

	t.Run("bearer header accepted", func(t *testing.T) {
		t.Parallel()

		token := issue(t, "user-1")
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec, id := serve(req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", id.UserID)
		assert.Equal(t, token, id.Token)
	})

	t.Run("query token accepted as fallback", func(t *testing.T) {
		t.Parallel()

		token := issue(t, "user-2")
		req := httptest.NewRequest(http.MethodPost, "/auth/logout?token="+token, nil)

		rec, id := serve(req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-2", id.UserID)
	})

	t.Run("header wins over query", func(t *testing.T) {
		t.Parallel()

		headerToken := issue(t, "header-user")
		queryToken := issue(t, "query-user")
		req := httptest.NewRequest(http.MethodPost, "/auth/logout?token="+queryToken, nil)
		req.Header.Set("Authorization", "Bearer "+headerToken)

		rec, id := serve(req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "header-user", id.UserID)
	})

	t.Run("missing token answers 401 envelope", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		rec, _ := serve(req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid token", body["error"])
	})

	t.Run("garbage token answers 401", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer nope")

		rec, _ := serve(req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed authorization header falls back to query", func(t *testing.T) {
		t.Parallel()

		token := issue(t, "user-3")
		req := httptest.NewRequest(http.MethodPost, "/auth/logout?token="+token, nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		rec, id := serve(req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-3", id.UserID)
	})
}

func TestIdentityFromContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := jwt.IdentityFromContext(req.Context())
	assert.ErrorIs(t, err, jwt.ErrNoIdentity)
}
