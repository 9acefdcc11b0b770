package web

import (
	"net/http"
	"time"

	"studybuddy/internal/web/apiclient"
	"studybuddy/internal/web/handler"
	"studybuddy/internal/web/middleware"
	"studybuddy/internal/web/session"
	"studybuddy/internal/web/templates"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(api *apiclient.Client, store *session.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	tmpl := templates.Must()
	authHandler := handler.NewAuthHandler(api, store, tmpl)
	courseHandler := handler.NewCourseHandler(api, tmpl)
	assignmentHandler := handler.NewAssignmentHandler(api, tmpl)

	// Public routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Get("/register", authHandler.RegisterPage)
	r.Post("/register", authHandler.Register)
	r.Get("/logout", authHandler.Logout)

	// Routes behind a live session
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireSession(store))

		protected.Get("/courses", courseHandler.Index)
		protected.Get("/courses/{id}", courseHandler.Details)
		protected.Post("/courses/{id}/enroll", courseHandler.Enroll)
		protected.Post("/courses/{id}/unenroll", courseHandler.Unenroll)

		// Authoring pages behind the instructor gate; the API re-decides
		// ownership when the mutation lands.
		protected.Group(func(authoring chi.Router) {
			authoring.Use(middleware.RequireInstructor)

			authoring.Get("/courses/new", courseHandler.NewForm)
			authoring.Post("/courses/new", courseHandler.Create)
			authoring.Get("/courses/{id}/edit", courseHandler.EditForm)
			authoring.Post("/courses/{id}/edit", courseHandler.Update)
			authoring.Post("/courses/{id}/delete", courseHandler.Delete)

			authoring.Get("/courses/{courseId}/assignments/new", assignmentHandler.NewForm)
			authoring.Post("/courses/{courseId}/assignments/new", assignmentHandler.Create)
			authoring.Get("/assignments/{id}/edit", assignmentHandler.EditForm)
			authoring.Post("/assignments/{id}/edit", assignmentHandler.Update)
			authoring.Post("/assignments/{id}/delete", assignmentHandler.Delete)
		})
	})

	return r
}
