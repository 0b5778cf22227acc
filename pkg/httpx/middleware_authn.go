package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/peakform/coachdesk/pkg/slogx"
)

// Claims are the token claims minted by the hosted identity provider. The
// subject is the coach id; role drives route-level authorisation.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`

	jwt.RegisteredClaims
}

// AuthnMiddleware verifies a Bearer token signed HS256 by the identity
// provider and injects the coach id and role into the request context.
func AuthnMiddleware(secret []byte, issuer string) Middleware {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			var claims Claims
			if _, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
				return secret, nil
			}); err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyCoachID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyRole, claims.Role)
			ctx = context.WithValue(ctx, CtxKeyEmail, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole allows the request through only when the authenticated role is
// one of the listed roles. A mismatch never renders an error page; it returns
// a machine-readable body the frontend resolves by redirecting to the
// caller's own home route.
func RequireRole(roles ...string) Middleware {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromCtx(r.Context())
			if _, ok := allowed[role]; !ok {
				WriteError(w, http.StatusForbidden, "role_mismatch",
					"this view is not available for your role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
