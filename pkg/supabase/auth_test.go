package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"affarsradar-backend/pkg/apperrors"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestVerifyLocalValidToken(t *testing.T) {
	client := NewAuthClient("", "", testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-42",
		"email": "anna@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	user, err := client.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "user-42", user.ID)
	require.Equal(t, "anna@example.com", user.Email)
}

func TestVerifyLocalWrongSecret(t *testing.T) {
	client := NewAuthClient("", "", testSecret)

	token := signToken(t, "some-other-secret-that-is-long-enough", jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := client.VerifyToken(context.Background(), token)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestVerifyLocalExpiredToken(t *testing.T) {
	client := NewAuthClient("", "", testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := client.VerifyToken(context.Background(), token)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestVerifyLocalMissingSubject(t *testing.T) {
	client := NewAuthClient("", "", testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := client.VerifyToken(context.Background(), token)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestVerifyRemoteValidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/user", r.URL.Path)
		require.Equal(t, "anon-key", r.Header.Get("apikey"))
		require.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(AuthUser{ID: "user-42", Email: "anna@example.com"})
	}))
	defer srv.Close()

	client := NewAuthClient(srv.URL, "anon-key", "")
	user, err := client.VerifyToken(context.Background(), "session-token")
	require.NoError(t, err)
	require.Equal(t, "user-42", user.ID)
}

func TestVerifyRemoteRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewAuthClient(srv.URL, "anon-key", "")
	_, err := client.VerifyToken(context.Background(), "expired-token")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestVerifyRemoteEmptyUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(AuthUser{})
	}))
	defer srv.Close()

	client := NewAuthClient(srv.URL, "anon-key", "")
	_, err := client.VerifyToken(context.Background(), "session-token")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestVerifyRemoteUnconfigured(t *testing.T) {
	client := NewAuthClient("", "", "")
	_, err := client.VerifyToken(context.Background(), "token")
	require.Error(t, err)
}
