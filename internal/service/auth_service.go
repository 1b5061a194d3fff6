package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
)

// Where the auth callback sends the browser.
const (
	AuthSuccessRedirect = "/?success=true"
	AuthFailureRedirect = "/login?error=auth_failed"
)

var ErrInvalidSession = errors.New("session could not be established")

// SessionProvider is the external auth client.
type SessionProvider interface {
	EstablishSession(ctx context.Context, token string) (*entity.Session, error)
}

type JwtCustomClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTSessionProvider accepts HS256 tokens from the auth provider and records the
// session in Redis until the token expires.
type JWTSessionProvider struct {
	secret []byte
	rdb    *redis.Client
	now    func() time.Time
}

// NewJWTSessionProvider creates a new instance of JWTSessionProvider. A nil now means time.Now.
func NewJWTSessionProvider(secret string, rdb *redis.Client, now func() time.Time) *JWTSessionProvider {
	if now == nil {
		now = time.Now
	}
	return &JWTSessionProvider{secret: []byte(secret), rdb: rdb, now: now}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}

func (p *JWTSessionProvider) EstablishSession(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", ErrInvalidSession)
	}

	claims := &JwtCustomClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(p.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", ErrInvalidSession)
	}

	session := &entity.Session{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		ExpiresAt: claims.ExpiresAt.Time,
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	ttl := session.ExpiresAt.Sub(p.now())
	if err := p.rdb.Set(ctx, sessionKey(session.UserID), data, ttl).Err(); err != nil {
		return nil, err
	}

	return session, nil
}

// IssueToken signs a token for userID valid for ttl. Used for local sign-in.
func (p *JWTSessionProvider) IssueToken(userID, name, email string, ttl time.Duration) (string, error) {
	now := p.now()
	claims := &JwtCustomClaims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

type AuthService struct {
	provider SessionProvider
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(provider SessionProvider) *AuthService {
	return &AuthService{provider: provider}
}

// CallbackRedirect completes the auth round trip and picks where to send the
// shopper: home on success, the login page with an error flag otherwise.
func (s *AuthService) CallbackRedirect(ctx context.Context, token string) string {
	session, err := s.provider.EstablishSession(ctx, token)
	if err != nil {
		logger.Warn().Err(err).Msg("Auth callback failed")
		return AuthFailureRedirect
	}

	logger.Info().Msgf("Session established for user %s", session.UserID)
	return AuthSuccessRedirect
}
