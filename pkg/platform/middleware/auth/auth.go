package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"soloparent/pkg/domain"
	"soloparent/pkg/requestcontext"
)

// SessionValidator validates a bearer token and returns its session claims.
type SessionValidator interface {
	ValidateToken(tokenString string) (*SessionClaims, error)
}

// SessionClaims are the raw claims a session token carries.
type SessionClaims struct {
	AdminID      string
	Barangay     string
	BackendToken string
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// toSession converts raw claims to a typed session.
func toSession(claims *SessionClaims) (domain.Session, error) {
	adminID, err := domain.ParseAdminID(claims.AdminID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("invalid admin_id: %w", err)
	}
	region, err := domain.ParseRegion(claims.Barangay)
	if err != nil {
		return domain.Session{}, fmt.Errorf("invalid barangay: %w", err)
	}
	return domain.Session{
		AdminID:      adminID,
		Region:       region,
		BackendToken: claims.BackendToken,
	}, nil
}

// RequireSession validates the bearer session token and stores the typed admin session
// in the request context.
func RequireSession(validator SessionValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			sess, err := toSession(claims)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - malformed session claims",
					"error", err,
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithSession(ctx, sess)))
		})
	}
}
