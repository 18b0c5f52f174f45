package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func authProbeHandler(t *testing.T, wantUserID int) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r.Context())
		require.NoError(t, err)
		assert.Equal(t, wantUserID, userID)
		w.WriteHeader(http.StatusOK)
	})
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRequireAuthMissingToken(t *testing.T) {
	handler := RequireAuth(testSecret)(authProbeHandler(t, 0))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, codeAuthNoToken, decodeErrorResponse(t, rec).Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	token, err := issueToken(7, []byte(testSecret), -time.Minute)
	require.NoError(t, err)

	handler := RequireAuth(testSecret)(authProbeHandler(t, 0))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, codeAuthTokenExpired, decodeErrorResponse(t, rec).Code)
}

func TestRequireAuthMalformedToken(t *testing.T) {
	handler := RequireAuth(testSecret)(authProbeHandler(t, 0))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, codeAuthInvalidToken, decodeErrorResponse(t, rec).Code)
}

func TestRequireAuthWrongSecret(t *testing.T) {
	token, err := issueToken(7, []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	handler := RequireAuth(testSecret)(authProbeHandler(t, 0))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, codeAuthInvalidToken, decodeErrorResponse(t, rec).Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	token, err := issueToken(7, []byte(testSecret), time.Hour)
	require.NoError(t, err)

	handler := RequireAuth(testSecret)(authProbeHandler(t, 7))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer abc123")

	token, err := bearerToken(req)

	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestBearerTokenRejectsOtherSchemes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")

	_, err := bearerToken(req)

	assert.Error(t, err)
}
