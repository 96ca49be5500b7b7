package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kryva/kryva/internal/identity"
	"github.com/kryva/kryva/internal/transport"
)

var (
	errMissingToken  = errors.New("missing token")
	errInvalidFormat = errors.New("invalid token format")
	errInvalidToken  = errors.New("invalid token")
	errInvalidClaims = errors.New("invalid token claims")
)

// JWT validates HS256 bearer tokens and puts the caller's identity.Session
// into the request context. Empty issuer or audience are not checked.
func JWT(secret []byte, issuer, audience string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok, err := extractToken(r)
			if err != nil {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", err.Error())
				return
			}

			s, err := ParseSession(tok, secret, issuer, audience)
			if err != nil {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(InjectSession(r.Context(), s)))
		})
	}
}

// ParseSession verifies tok and builds the session from its claims. The
// sign-in time is auth_time, or iat when auth_time is absent.
func ParseSession(tok string, secret []byte, issuer, audience string) (identity.Session, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	parsed, err := jwt.Parse(tok, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return identity.Session{}, errInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return identity.Session{}, errInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return identity.Session{}, errInvalidClaims
	}

	s := identity.Session{UID: sub}
	s.Email, _ = claims["email"].(string)
	s.DisplayName, _ = claims["name"].(string)
	s.PhotoURL, _ = claims["picture"].(string)
	if at, ok := unixClaim(claims, "auth_time"); ok {
		s.AuthTime = at
	} else if at, ok := unixClaim(claims, "iat"); ok {
		s.AuthTime = at
	}
	return s, nil
}

func unixClaim(claims jwt.MapClaims, name string) (time.Time, bool) {
	v, ok := claims[name].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(v), 0), true
}

func extractToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errMissingToken
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errInvalidFormat
	}

	return parts[1], nil
}
