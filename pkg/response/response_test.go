package response_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/inkwell/pkg/response"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestOK(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.OK(rec, map[string]string{"token": "abc"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(200), body["status"])
	assert.Equal(t, "abc", body["data"].(map[string]any)["token"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "message")
}

func TestFail(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.Fail(rec, 401, "Invalid token")

	assert.Equal(t, 401, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(401), body["status"])
	assert.Equal(t, "Invalid token", body["error"])
	assert.NotContains(t, body, "data")
}

func TestInternalError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.InternalError(rec)

	assert.Equal(t, 500, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "An unexpected error occurred.", body["error"])
}
