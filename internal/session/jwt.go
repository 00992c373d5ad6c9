// Package session issues and validates the signed console session tokens that carry the
// administrator's identity, assigned region and backend credential.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
	"soloparent/pkg/platform/middleware/auth"
)

const issuer = "soloparent-console"

// Claims are the JWT claims of a console session token.
type Claims struct {
	AdminID      string `json:"admin_id"`
	Barangay     string `json:"barangay"`
	BackendToken string `json:"backend_token,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and validates HS256 session tokens.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

// NewTokenService builds a token service. A zero ttl defaults to eight hours.
func NewTokenService(signingKey string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &TokenService{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		now:        time.Now,
	}
}

// Issue signs a session token for the given admin session.
func (s *TokenService) Issue(sess domain.Session) (string, error) {
	if sess.AdminID.IsNil() || sess.Region.IsNil() {
		return "", dErrors.New(dErrors.CodeBadRequest, "admin id and region are required")
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AdminID:      sess.AdminID.String(),
		Barangay:     sess.Region.String(),
		BackendToken: sess.BackendToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.AdminID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(s.signingKey)
}

// ValidateToken parses and verifies a session token.
func (s *TokenService) ValidateToken(tokenString string) (*auth.SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "session expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}

	return &auth.SessionClaims{
		AdminID:      claims.AdminID,
		Barangay:     claims.Barangay,
		BackendToken: claims.BackendToken,
	}, nil
}
