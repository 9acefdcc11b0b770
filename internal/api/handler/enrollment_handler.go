package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"studybuddy/internal/api/middleware"
	"studybuddy/internal/app/service"
	"studybuddy/internal/common"

	"github.com/go-chi/chi/v5"
)

type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

func (h *EnrollmentHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Post("/enroll", h.enroll)
	r.Delete("/unenroll", h.unenroll)
	r.Get("/course/{courseId}/students", h.studentsByCourse)
	r.Get("/student/{studentId}/courses", h.coursesByStudent)
}

func (h *EnrollmentHandler) enroll(w http.ResponseWriter, r *http.Request) {
	var req service.EnrollmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.enrollmentService.Enroll(r.Context(), req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Student enrolled successfully."})
}

func (h *EnrollmentHandler) unenroll(w http.ResponseWriter, r *http.Request) {
	var req service.EnrollmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.enrollmentService.Unenroll(r.Context(), req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Student unenrolled successfully."})
}

func (h *EnrollmentHandler) studentsByCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "courseId"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}
	students, err := h.enrollmentService.StudentsByCourse(r.Context(), courseID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, students)
}

func (h *EnrollmentHandler) coursesByStudent(w http.ResponseWriter, r *http.Request) {
	courses, err := h.enrollmentService.CoursesByStudent(r.Context(), chi.URLParam(r, "studentId"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, courses)
}
