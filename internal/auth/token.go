package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hosung77/spring-plus/internal/domain"
)

// Verification failures. Callers surface all three identically to clients;
// the split exists for logs only.
var (
	ErrMalformed    = errors.New("token malformed")
	ErrBadSignature = errors.New("token signature mismatch")
	ErrExpired      = errors.New("token expired")
)

// Claims is the signed token payload: subject carries the user id, Role the
// account role at issue time.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256 credential tokens. The secret and TTL are
// fixed for the process lifetime, so a Codec is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given account, expiring after the codec TTL.
func (c *Codec) Issue(userID int64, role domain.UserRole) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks structure, signature and freshness, in that order of failure
// reporting. A token is accepted only when all three hold.
func (c *Codec) Verify(tokenString string) (int64, domain.UserRole, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})

	switch {
	case err == nil && token.Valid:
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, "", ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return 0, "", ErrBadSignature
	default:
		return 0, "", ErrMalformed
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, "", ErrMalformed
	}
	role, err := domain.ParseUserRole(claims.Role)
	if err != nil {
		return 0, "", ErrMalformed
	}
	return userID, role, nil
}
