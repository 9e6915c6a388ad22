package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"affarsradar-backend/pkg/apperrors"
)

// AuthUser is the authenticated identity attached to a request.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthClient verifies Supabase-issued access tokens. Token verification is
// owned by Supabase: when the project JWT secret is configured the token is
// checked locally (Supabase signs access tokens with HS256), otherwise the
// auth REST endpoint is asked to resolve it.
type AuthClient struct {
	baseURL   string
	anonKey   string
	jwtSecret string
	client    *http.Client
}

func NewAuthClient(baseURL, anonKey, jwtSecret string) *AuthClient {
	return &AuthClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		anonKey:   anonKey,
		jwtSecret: jwtSecret,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// VerifyToken resolves a bearer token to a user, or ErrUnauthorized.
func (a *AuthClient) VerifyToken(ctx context.Context, token string) (*AuthUser, error) {
	if a.jwtSecret != "" {
		return a.verifyLocal(token)
	}
	return a.verifyRemote(ctx, token)
}

func (a *AuthClient) verifyLocal(tokenString string) (*AuthUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}

	// Supabase puts the user id in the standard subject claim.
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, apperrors.ErrUnauthorized
	}

	email, _ := claims["email"].(string)
	return &AuthUser{ID: sub, Email: email}, nil
}

func (a *AuthClient) verifyRemote(ctx context.Context, token string) (*AuthUser, error) {
	if a.baseURL == "" {
		return nil, fmt.Errorf("supabase auth not configured")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", a.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", a.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, apperrors.ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("supabase auth returned %d", resp.StatusCode)
	}

	var user AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	return &user, nil
}
