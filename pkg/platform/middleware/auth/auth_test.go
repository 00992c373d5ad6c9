package auth

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"soloparent/pkg/domain"
	"soloparent/pkg/requestcontext"
)

type stubValidator struct {
	claims *SessionClaims
	err    error
}

func (v stubValidator) ValidateToken(string) (*SessionClaims, error) {
	return v.claims, v.err
}

func TestRequireSession(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	run := func(v SessionValidator, header string) (*httptest.ResponseRecorder, domain.Session) {
		var got domain.Session
		h := RequireSession(v, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = requestcontext.Session(r.Context())
			w.WriteHeader(http.StatusOK)
		}))
		req := httptest.NewRequest(http.MethodGet, "/console/applicants", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w, got
	}

	t.Run("missing header is unauthorized", func(t *testing.T) {
		w, _ := run(stubValidator{}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		w, _ := run(stubValidator{err: errors.New("bad")}, "Bearer abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("claims without region are rejected", func(t *testing.T) {
		w, _ := run(stubValidator{claims: &SessionClaims{AdminID: "3"}}, "Bearer abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token attaches typed session", func(t *testing.T) {
		w, sess := run(stubValidator{claims: &SessionClaims{AdminID: "3", Barangay: " Poblacion ", BackendToken: "t"}}, "Bearer abc")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.Session{AdminID: "3", Region: "Poblacion", BackendToken: "t"}, sess)
	})
}
