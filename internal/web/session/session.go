package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"studybuddy/internal/domain/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Session is the server-side record the front tier keeps per logged-in
// browser: the raw bearer token plus a cached projection of the user.
// It is created at login and never re-derived from the token afterwards,
// so the embedded token can expire while the session is still live.
type Session struct {
	ID       string     `json:"-"`
	Token    string     `json:"token"`
	UserID   string     `json:"user_id"`
	Email    string     `json:"email"`
	FullName string     `json:"full_name"`
	Role     model.Role `json:"role"`
}

var ErrNoSession = errors.New("no live session")

// Store keeps sessions in Redis keyed by an opaque id carried in an
// HTTP-only cookie. Every Load slides the idle expiry forward.
type Store struct {
	rdb        *redis.Client
	cookieName string
	idleTTL    time.Duration
}

func NewStore(rdb *redis.Client, cookieName string, idleTTL time.Duration) *Store {
	return &Store{rdb: rdb, cookieName: cookieName, idleTTL: idleTTL}
}

func (s *Store) key(id string) string {
	return "session:" + id
}

// Create stores a new session record and sets the cookie. Only the
// opaque id crosses to the browser, never the token.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	sess.ID = uuid.NewString()
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session.Store.Create marshal: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(sess.ID), payload, s.idleTTL).Err(); err != nil {
		return fmt.Errorf("session.Store.Create: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Load reads the session for the request's cookie and refreshes its idle
// expiry. A missing cookie, an expired record, or a vanished record all
// come back as ErrNoSession.
func (s *Store) Load(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	payload, err := s.rdb.Get(ctx, s.key(cookie.Value)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("session.Store.Load: %w", err)
	}

	sess := &Session{}
	if err := json.Unmarshal(payload, sess); err != nil {
		return nil, fmt.Errorf("session.Store.Load unmarshal: %w", err)
	}
	sess.ID = cookie.Value

	// Idle timeout slides on activity.
	if err := s.rdb.Expire(ctx, s.key(sess.ID), s.idleTTL).Err(); err != nil {
		return nil, fmt.Errorf("session.Store.Load touch: %w", err)
	}
	return sess, nil
}

// Save rewrites an existing record in place, keeping its id.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	if sess.ID == "" {
		return errors.New("session has no id")
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session.Store.Save marshal: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(sess.ID), payload, s.idleTTL).Err(); err != nil {
		return fmt.Errorf("session.Store.Save: %w", err)
	}
	return nil
}

// Destroy deletes the record and expires the cookie.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(s.cookieName)
	if err == nil && cookie.Value != "" {
		if err := s.rdb.Del(ctx, s.key(cookie.Value)).Err(); err != nil {
			return fmt.Errorf("session.Store.Destroy: %w", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return nil
}
