// Package auth issues and verifies the session tokens that gate every
// authenticated route. Tokens are HMAC-signed JWTs binding {userId, username}
// with a fixed lifetime (7 days by default).
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSecret is the insecure fallback signing key used when JWT_SECRET is
// unset. Deployments must override it; main logs a warning when it is active.
const DefaultSecret = "synthhearts-secret-key-change-in-production"

// ErrInvalidToken covers malformed, expired, and signature-invalid tokens.
// Callers map it to a 403.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the session token payload.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with a shared symmetric key.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager. An empty secret falls back to DefaultSecret;
// a non-positive ttl falls back to 7 days.
func NewManager(secret string, ttl time.Duration) *Manager {
	if secret == "" {
		secret = DefaultSecret
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// UsesDefaultSecret reports whether the insecure fallback key is active.
func (m *Manager) UsesDefaultSecret() bool {
	return string(m.secret) == DefaultSecret
}

// Issue signs a session token for the given identity.
func (m *Manager) Issue(userID, username string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a session token, returning its claims.
// Any parse, signature, or expiry failure is reported as ErrInvalidToken.
func (m *Manager) Verify(token string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// VerifyToken adapts Verify to the flat shape the HTTP middleware wants.
func (m *Manager) VerifyToken(token string) (string, string, error) {
	claims, err := m.Verify(token)
	if err != nil {
		return "", "", err
	}
	return claims.UserID, claims.Username, nil
}
