package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
)

const testSecret = "test-secret"

func fixedNow() time.Time {
	return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
}

func signToken(t *testing.T, secret string, claims *JwtCustomClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTSessionProvider_EstablishSession(t *testing.T) {
	mr, client := setupTestRedis(t)
	provider := NewJWTSessionProvider(testSecret, client, fixedNow)

	token, err := provider.IssueToken("user-1", "Ari", "ari@example.com", time.Hour)
	require.NoError(t, err)

	session, err := provider.EstablishSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "Ari", session.Name)
	assert.Equal(t, "ari@example.com", session.Email)

	raw, err := mr.Get("session:user-1")
	require.NoError(t, err)
	var stored entity.Session
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, time.Hour, mr.TTL("session:user-1"))
}

func TestJWTSessionProvider_Rejects(t *testing.T) {
	now := fixedNow()
	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"missing token", func(t *testing.T) string { return "" }},
		{"garbage", func(t *testing.T) string { return "not-a-jwt" }},
		{"wrong secret", func(t *testing.T) string {
			return signToken(t, "other-secret", &JwtCustomClaims{RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}})
		}},
		{"expired", func(t *testing.T) string {
			return signToken(t, testSecret, &JwtCustomClaims{RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			}})
		}},
		{"no expiry", func(t *testing.T) string {
			return signToken(t, testSecret, &JwtCustomClaims{RegisteredClaims: jwt.RegisteredClaims{
				Subject: "user-1",
			}})
		}},
		{"no subject", func(t *testing.T) string {
			return signToken(t, testSecret, &JwtCustomClaims{RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr, client := setupTestRedis(t)
			provider := NewJWTSessionProvider(testSecret, client, fixedNow)

			_, err := provider.EstablishSession(context.Background(), tt.token(t))

			assert.ErrorIs(t, err, ErrInvalidSession)
			assert.Empty(t, mr.Keys())
		})
	}
}

func TestAuthService_CallbackRedirect(t *testing.T) {
	_, client := setupTestRedis(t)
	provider := NewJWTSessionProvider(testSecret, client, fixedNow)
	svc := NewAuthService(provider)

	token, err := provider.IssueToken("user-1", "Ari", "", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, AuthSuccessRedirect, svc.CallbackRedirect(context.Background(), token))
	assert.Equal(t, AuthFailureRedirect, svc.CallbackRedirect(context.Background(), "bogus"))
	assert.Equal(t, "/?success=true", AuthSuccessRedirect)
	assert.Equal(t, "/login?error=auth_failed", AuthFailureRedirect)
}
