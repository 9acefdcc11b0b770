package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studybuddy/internal/common/security"
	"studybuddy/internal/platform/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(t *testing.T) http.Handler {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey:      []byte("test-secret"),
		JWTIssuer:   "studybuddy-api",
		JWTAudience: "studybuddy-web",
		JWTExp:      time.Hour,
	}
	security.InitJWT()

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(security.TokenAuth))
	r.Group(func(r chi.Router) {
		r.Use(Authenticator)
		r.Get("/protected", func(w http.ResponseWriter, req *http.Request) {
			userID, _ := GetUserIDFromContext(req.Context())
			w.Write([]byte(userID))
		})
	})
	return r
}

func TestAuthenticatorRejectsMissingToken(t *testing.T) {
	router := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorRejectsGarbageToken(t *testing.T) {
	router := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorRejectsWrongKey(t *testing.T) {
	router := newProtectedRouter(t)

	other := jwtauth.New("HS256", []byte("some-other-secret"), nil)
	_, forged, err := other.Encode(map[string]interface{}{"sub": "user-123", "email": "a@b.c"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorAcceptsValidToken(t *testing.T) {
	router := newProtectedRouter(t)

	token, err := security.GenerateToken("user-123", "ada@example.com", "Ada Lovelace")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", rec.Body.String(), "subject claim reaches the handler context")
}
