package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pravoline/legal-site-api/internal/core/domain"
)

// TokenCodec signs and verifies session tokens: compact HS256 JWTs
// carrying the user id, username and role.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

const defaultSessionTTL = 7 * 24 * time.Hour

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL is the validity window tokens are issued with. Cookie Max-Age must
// match it.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given identity, valid for the codec's TTL.
func (c *TokenCodec) Issue(id domain.Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: id.Username,
		Role:     id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a token. Every failure mode — malformed
// token, wrong algorithm, bad signature, expiry — collapses into the one
// opaque domain.ErrUnauthenticated so callers cannot tell which check
// failed.
func (c *TokenCodec) Verify(token string) (*domain.Identity, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthenticated
	}
	return &domain.Identity{
		ID:       claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
