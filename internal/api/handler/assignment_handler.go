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

type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

func (h *AssignmentHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Get("/course/{courseId}", h.listByCourse)
	r.Get("/{id}", h.getAssignment)
	r.Post("/", h.createAssignment)
	r.Put("/{id}", h.updateAssignment)
	r.Delete("/{id}", h.deleteAssignment)
}

func (h *AssignmentHandler) listByCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "courseId"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}
	assignments, err := h.assignmentService.ListAssignmentsByCourse(r.Context(), courseID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, assignments)
}

func (h *AssignmentHandler) getAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid assignment id")
		return
	}
	assignment, err := h.assignmentService.GetAssignment(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, assignment)
}

func (h *AssignmentHandler) createAssignment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	var req service.AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(r.Context(), userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, assignment)
}

func (h *AssignmentHandler) updateAssignment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid assignment id")
		return
	}

	var req service.AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.assignmentService.UpdateAssignment(r.Context(), userID, id, req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Assignment updated successfully."})
}

func (h *AssignmentHandler) deleteAssignment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid assignment id")
		return
	}

	if err := h.assignmentService.DeleteAssignment(r.Context(), userID, id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Assignment deleted successfully."})
}
