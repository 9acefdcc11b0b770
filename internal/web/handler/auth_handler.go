package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"studybuddy/internal/web/apiclient"
	"studybuddy/internal/web/middleware"
	"studybuddy/internal/web/session"
)

type AuthHandler struct {
	api   *apiclient.Client
	store *session.Store
	tmpl  *template.Template
}

func NewAuthHandler(api *apiclient.Client, store *session.Store, tmpl *template.Template) *AuthHandler {
	return &AuthHandler{api: api, store: store, tmpl: tmpl}
}

type loginPageData struct {
	Email   string
	Error   string
	Message string
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.Load(r.Context(), r); err == nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}
	h.tmpl.ExecuteTemplate(w, "login", loginPageData{
		Error:   r.URL.Query().Get("error"),
		Message: r.URL.Query().Get("message"),
	})
}

// Login authenticates against the API and establishes the server-side
// session: first the credential call returns the token and subject id,
// then a second call fetches the user projection to cache alongside.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	email := r.FormValue("email")
	password := r.FormValue("password")

	resp, err := h.api.Login(r.Context(), apiclient.LoginRequest{Email: email, Password: password})
	if err != nil {
		log.Printf("Login failed for %s: %v", email, err)
		h.tmpl.ExecuteTemplate(w, "login", loginPageData{Email: email, Error: "Log in failed."})
		return
	}

	sess := &session.Session{Token: resp.Token, UserID: resp.UserID}
	if err := h.store.Create(r.Context(), w, sess); err != nil {
		log.Printf("Failed to create session for %s: %v", resp.UserID, err)
		h.tmpl.ExecuteTemplate(w, "login", loginPageData{Email: email, Error: "Log in failed."})
		return
	}

	// Second hop: fill in the cached role/email/name projection.
	user, err := h.api.GetUser(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		log.Printf("Failed to fetch user projection for %s: %v", sess.UserID, err)
		h.store.Destroy(r.Context(), w, r)
		h.tmpl.ExecuteTemplate(w, "login", loginPageData{Email: email, Error: "Log in failed."})
		return
	}
	sess.Email = user.Email
	sess.FullName = user.FullName
	sess.Role = user.Role
	if err := h.store.Save(r.Context(), sess); err != nil {
		log.Printf("Failed to save session for %s: %v", sess.UserID, err)
	}

	http.Redirect(w, r, "/courses", http.StatusSeeOther)
}

type registerPageData struct {
	Email    string
	FullName string
	Error    string
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.tmpl.ExecuteTemplate(w, "register", registerPageData{})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	req := apiclient.RegisterRequest{
		Email:    r.FormValue("email"),
		FullName: r.FormValue("full_name"),
		Password: r.FormValue("password"),
		Role:     r.FormValue("role"),
	}
	if err := h.api.Register(r.Context(), req); err != nil {
		log.Printf("Registration failed for %s: %v", req.Email, err)
		h.tmpl.ExecuteTemplate(w, "register", registerPageData{
			Email: req.Email, FullName: req.FullName, Error: "Registration failed.",
		})
		return
	}

	http.Redirect(w, r, "/login?message=Account+created,+please+log+in", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Destroy(r.Context(), w, r); err != nil {
		log.Printf("Failed to destroy session: %v", err)
	}
	http.Redirect(w, r, "/login?message=You+have+been+logged+out", http.StatusSeeOther)
}

// redirectOnAuthFailure distinguishes "please re-authenticate" from
// other API failures: an expired or rejected token sends the user back
// to the login page instead of a generic error.
func redirectOnAuthFailure(w http.ResponseWriter, r *http.Request, err error) bool {
	if errors.Is(err, apiclient.ErrUnauthenticated) {
		http.Redirect(w, r, "/login?message=Session+expired,+please+log+in+again", http.StatusSeeOther)
		return true
	}
	return false
}

func mustSession(r *http.Request) *session.Session {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	return sess
}
