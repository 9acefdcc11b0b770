package api

import (
	"net/http"
	"time"

	"studybuddy/internal/api/handler"
	"studybuddy/internal/app/service"
	"studybuddy/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	userService *service.UserService,
	courseService *service.CourseService,
	assignmentService *service.AssignmentService,
	enrollmentService *service.EnrollmentService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies token, puts claims in context. Searches for a token in
	// "Authorization: Bearer T".
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// User routes: register/login are public, the rest authenticated
		authHandler := handler.NewAuthHandler(authService)
		userHandler := handler.NewUserHandler(userService)
		v1.Route("/users", func(users chi.Router) {
			users.Group(func(public chi.Router) {
				authHandler.RegisterRoutes(public)
			})
			users.Group(func(protected chi.Router) {
				userHandler.RegisterRoutes(protected)
			})
		})

		// Course routes (authenticated; ownership checked in the service)
		courseHandler := handler.NewCourseHandler(courseService)
		v1.Route("/courses", courseHandler.RegisterRoutes)

		// Assignment routes (authenticated)
		assignmentHandler := handler.NewAssignmentHandler(assignmentService)
		v1.Route("/assignments", assignmentHandler.RegisterRoutes)

		// Enrollment routes (authenticated)
		enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
		v1.Route("/enrollments", enrollmentHandler.RegisterRoutes)
	})

	return r
}
