package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/veiculos-api/veiculos-api/internal/platform/httpx"
)

// Policy names an authorization rule an endpoint declares as precondition.
type Policy string

const (
	// PolicyAuthenticated admits any valid, non-expired token.
	PolicyAuthenticated Policy = "Authenticated"
	// PolicyAdm admits tokens whose role claim is Adm.
	PolicyAdm Policy = "Adm"
	// PolicyEditor admits tokens whose role claim is Editor. No route
	// currently requires it; it remains reachable configuration.
	PolicyEditor Policy = "Editor"
)

// Middleware wires bearer-token authorization for HTTP handlers.
type Middleware struct {
	Verifier *TokenVerifier
	Logger   *slog.Logger
}

// Require verifies the bearer token and evaluates the policy. Every deny
// (missing token, malformed token, bad signature, expired token, or
// insufficient role) surfaces as the same 401 response.
func (m Middleware) Require(policy Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				token, found := bearerToken(r)
				if !found {
					httpx.Unauthorized(w)
					return
				}
				verified, err := m.Verifier.Verify(token)
				if err != nil {
					if m.Logger != nil {
						m.Logger.Debug("token rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
					}
					httpx.Unauthorized(w)
					return
				}
				claims = verified
				r = r.WithContext(ContextWithClaims(r.Context(), claims))
			}
			if !Authorize(claims, policy) {
				httpx.Unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Authorize decides allow/deny for verified claims against a policy.
func Authorize(claims Claims, policy Policy) bool {
	if policy == PolicyAuthenticated {
		return true
	}
	return string(claims.Role) == string(policy)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
