package http

import (
	"net/http"
	"strings"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/repository"
	"apnrghor-backend/internal/security"
)

// Guards compose in a fixed order before a handler runs: token verify,
// then email match, then admin role. Each either continues the chain or
// terminates with a structured 401/403.
type Guard struct {
	verifier security.TokenVerifier
	userRepo repository.UserRepository
}

func NewGuard(verifier security.TokenVerifier, userRepo repository.UserRepository) *Guard {
	return &Guard{verifier: verifier, userRepo: userRepo}
}

// RequireAuth verifies the bearer token and stores the resolved identity in
// the request context.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeMessage(w, http.StatusUnauthorized, "Missing authorization header")
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			writeMessage(w, http.StatusUnauthorized, "Malformed authorization header")
			return
		}

		claims, err := g.verifier.Verify(r.Context(), token)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims)))
	})
}

// RequireEmailMatch rejects callers whose token email differs from the
// email query parameter. Runs after RequireAuth.
func (g *Guard) RequireEmailMatch(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := IdentityFromContext(r.Context())
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		email := r.URL.Query().Get("email")
		if email != "" && !strings.EqualFold(email, claims.Email) {
			writeMessage(w, http.StatusForbidden, "Forbidden access")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects callers whose stored role is not ADMIN. Runs after
// RequireAuth.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := IdentityFromContext(r.Context())
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		user, err := g.userRepo.GetByEmail(r.Context(), claims.Email)
		if err != nil || user.Role != domain.UserRoleAdmin {
			writeMessage(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CORS allows the configured origins with credentials, mirroring the
// original deployment behind a browser frontend.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
