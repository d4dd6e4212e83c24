package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"car-fleet-api/internal/model"
	"car-fleet-api/pkg/apierror"
)

type tokenVerifier interface {
	Verify(tokenString string) (model.Identity, error)
}

type contextKey string

const identityContextKey contextKey = "identity"

type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth is the only gate in front of the car CRUD routes. A request
// either carries a verifiable bearer token and proceeds with its identity
// in the context, or it is rejected here. The response never says whether
// a presented token was malformed, forged or expired.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeUnauthorized(w, "token required")
			return
		}

		identity, err := m.verifier.Verify(strings.TrimSpace(header[7:]))
		if err != nil {
			writeUnauthorized(w, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(model.Identity)
	return identity, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]*apierror.APIError{
		"error": apierror.New("UNAUTHORIZED", message, http.StatusUnauthorized),
	})
}
