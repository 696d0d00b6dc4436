package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadtrack/internal/auth"
)

func authedEcho(t *testing.T, gotID *uint) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r)
		require.True(t, ok, "user id missing from context")
		*gotID = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_MissingToken(t *testing.T) {
	t.Parallel()

	issuer := auth.NewIssuer("k", time.Hour)
	var gotID uint
	h := Auth(issuer)(authedEcho(t, &gotID))

	for _, header := range []string{"", "Bearer ", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/leads", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.JSONEq(t, `{"message":"Access denied. No token provided."}`, rec.Body.String())
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	issuer := auth.NewIssuer("k", time.Hour)
	var gotID uint
	h := Auth(issuer)(authedEcho(t, &gotID))

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid token."}`, rec.Body.String())
}

func TestAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	expired := auth.NewIssuer("k", -time.Minute)
	tok, err := expired.Issue(5)
	require.NoError(t, err)

	var gotID uint
	h := Auth(auth.NewIssuer("k", time.Hour))(authedEcho(t, &gotID))

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_ValidTokenResolvesUser(t *testing.T) {
	t.Parallel()

	issuer := auth.NewIssuer("k", time.Hour)
	tok, err := issuer.Issue(77)
	require.NoError(t, err)

	var gotID uint
	h := Auth(issuer)(authedEcho(t, &gotID))

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(77), gotID)
}
