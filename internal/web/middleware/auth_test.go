package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"studybuddy/internal/domain/model"
	"studybuddy/internal/web/session"

	"github.com/stretchr/testify/assert"
)

func serveWithSession(sess *session.Session, handler http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/courses/new", nil)
	if sess != nil {
		req = req.WithContext(context.WithValue(req.Context(), SessionCtxKey, sess))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireInstructor(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gate := RequireInstructor(next)

	t.Run("no session in context", func(t *testing.T) {
		rec := serveWithSession(nil, gate)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/courses", rec.Header().Get("Location"))
	})

	t.Run("student is redirected", func(t *testing.T) {
		rec := serveWithSession(&session.Session{UserID: "u1", Role: model.RoleStudent}, gate)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("unknown role is redirected", func(t *testing.T) {
		rec := serveWithSession(&session.Session{UserID: "u1", Role: model.RoleUnknown}, gate)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("instructor passes", func(t *testing.T) {
		rec := serveWithSession(&session.Session{UserID: "u1", Role: model.RoleInstructor}, gate)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	// Stored role strings vary in casing and spelling; the session
	// carries the canonical role, so all instructor spellings pass.
	t.Run("professor spellings canonicalize", func(t *testing.T) {
		for _, raw := range []string{"Instructor", "professor", "Professor", "proffessor"} {
			rec := serveWithSession(&session.Session{UserID: "u1", Role: model.ParseRole(raw)}, gate)
			assert.Equal(t, http.StatusOK, rec.Code, "role %q", raw)
		}
	})
}

func TestGetSessionFromContext(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())
	assert.False(t, ok)

	sess := &session.Session{UserID: "u1"}
	ctx := context.WithValue(context.Background(), SessionCtxKey, sess)
	got, ok := GetSessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, sess, got)
}
