package middleware

import (
	"context"
	"net/http"

	"studybuddy/internal/web/session"
)

type contextKey string

const SessionCtxKey contextKey = "webSession"

// RequireSession loads the server-side session for the request cookie
// and redirects to the login page when there is none. The loaded record
// is placed in the request context for handlers.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := store.Load(r.Context(), r)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			ctx := context.WithValue(r.Context(), SessionCtxKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireInstructor is the front-tier authoring gate: deny unless the
// session's role canonicalizes to instructor. The policy is advisory
// here; the API re-decides ownership on the actual mutation.
func RequireInstructor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSessionFromContext(r.Context())
		if !ok || !sess.Role.IsInstructor() {
			http.Redirect(w, r, "/courses", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionCtxKey).(*session.Session)
	return sess, ok
}
