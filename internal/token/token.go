// Package token issues and verifies the self-contained bearer tokens that
// prove a user's identity. The server keeps no session state: a token is
// valid iff its signature checks out and it has not expired.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"car-fleet-api/internal/model"
)

// Signer is the signed-token capability. Any primitive that can produce
// and check a tamper-proof, expiring string works here.
type Signer interface {
	Sign(identity model.Identity) (string, error)
	Verify(tokenString string) (model.Identity, error)
}

// JWTSigner implements Signer with HMAC-SHA256 JWTs. The secret is
// process configuration, loaded once at startup.
type JWTSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTSigner(secret string, ttl time.Duration) (*JWTSigner, error) {
	if secret == "" {
		return nil, errors.New("signing secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &JWTSigner{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (s *JWTSigner) Sign(identity model.Identity) (string, error) {
	issued := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":      identity.UserID,
		"username": identity.Username,
		"iat":      issued.Unix(),
		"exp":      issued.Add(s.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry. Both failure modes collapse into
// ErrInvalidToken so the caller cannot tell them apart.
func (s *JWTSigner) Verify(tokenString string) (model.Identity, error) {
	parsed, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil || !parsed.Valid {
		return model.Identity{}, model.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return model.Identity{}, model.ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return model.Identity{}, model.ErrInvalidToken
	}
	username, _ := claims["username"].(string)

	return model.Identity{UserID: int64(sub), Username: username}, nil
}
