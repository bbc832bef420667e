package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenLifetime is the fixed validity window of every issued token.
const tokenLifetime = 2 * time.Hour

// claimsKey is the context key for the verified identity claims.
type contextKey string

const claimsKey = contextKey("identityClaims")

// TokenService signs and verifies the bearer tokens issued to clients. The
// secret is injected at startup rather than read from a package global.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs the given identity claim with a fixed two hour lifetime. The
// claim map is copied so the caller's map is never mutated.
func (s *TokenService) Issue(claim map[string]interface{}) (string, error) {
	now := time.Now()
	claims := make(jwt.MapClaims, len(claim)+2)
	for k, v := range claim {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(tokenLifetime).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses a token string and validates its signature and expiry.
func (s *TokenService) Verify(tokenStr string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Middleware creates a middleware for protecting routes. Requests without a
// valid bearer token are rejected with 401; the failure reason is not
// distinguished to the caller. On success the decoded claims are attached to
// the request context for downstream handlers. No I/O happens here.
func (s *TokenService) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w)
				return
			}

			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				unauthorized(w)
				return
			}

			claims, err := s.Verify(tokenStr)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom returns the verified identity claims attached by Middleware.
func ClaimsFrom(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(jwt.MapClaims)
	return claims, ok
}

// EmailFrom returns the email embedded in the verified identity claims, or an
// empty string when there is none.
func EmailFrom(ctx context.Context) string {
	claims, ok := ClaimsFrom(ctx)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized access"})
}
