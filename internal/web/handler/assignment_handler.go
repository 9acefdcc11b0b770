package handler

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"studybuddy/internal/web/apiclient"

	"github.com/go-chi/chi/v5"
)

type AssignmentHandler struct {
	api  *apiclient.Client
	tmpl *template.Template
}

func NewAssignmentHandler(api *apiclient.Client, tmpl *template.Template) *AssignmentHandler {
	return &AssignmentHandler{api: api, tmpl: tmpl}
}

type assignmentFormData struct {
	PageTitle    string
	Action       string
	CourseID     int
	Title        string
	Instructions string
	DueDate      string
	MaxScore     float64
	Error        string
}

func (h *AssignmentHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "courseId"))
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}
	h.tmpl.ExecuteTemplate(w, "assignment_form", assignmentFormData{
		PageTitle: "Create assignment",
		Action:    "/courses/" + strconv.Itoa(courseID) + "/assignments/new",
		CourseID:  courseID,
	})
}

func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := mustSession(r)

	courseID, err := strconv.Atoi(chi.URLParam(r, "courseId"))
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	req, formErr := parseAssignmentForm(r, courseID)
	if formErr != "" {
		h.tmpl.ExecuteTemplate(w, "assignment_form", assignmentFormData{
			PageTitle: "Create assignment",
			Action:    "/courses/" + strconv.Itoa(courseID) + "/assignments/new",
			CourseID:  courseID,
			Error:     formErr,
		})
		return
	}

	if _, err := h.api.CreateAssignment(r.Context(), sess.Token, req); err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		log.Printf("Failed to create assignment for course %d: %v", courseID, err)
		h.tmpl.ExecuteTemplate(w, "assignment_form", assignmentFormData{
			PageTitle: "Create assignment",
			Action:    "/courses/" + strconv.Itoa(courseID) + "/assignments/new",
			CourseID:  courseID,
			Title:     req.Title,
			Error:     "Failed to create assignment.",
		})
		return
	}

	http.Redirect(w, r, "/courses/"+strconv.Itoa(courseID), http.StatusSeeOther)
}

func (h *AssignmentHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	sess := mustSession(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}
	assignment, err := h.api.GetAssignment(r.Context(), sess.Token, id)
	if err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	h.tmpl.ExecuteTemplate(w, "assignment_form", assignmentFormData{
		PageTitle:    "Edit assignment",
		Action:       "/assignments/" + strconv.Itoa(id) + "/edit",
		CourseID:     assignment.CourseID,
		Title:        assignment.Title,
		Instructions: assignment.Instructions,
		DueDate:      assignment.DueDate.Format("2006-01-02"),
		MaxScore:     assignment.MaxScore,
	})
}

func (h *AssignmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := mustSession(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	assignment, err := h.api.GetAssignment(r.Context(), sess.Token, id)
	if err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	req, formErr := parseAssignmentForm(r, assignment.CourseID)
	if formErr != "" {
		h.tmpl.ExecuteTemplate(w, "assignment_form", assignmentFormData{
			PageTitle: "Edit assignment",
			Action:    "/assignments/" + strconv.Itoa(id) + "/edit",
			CourseID:  assignment.CourseID,
			Error:     formErr,
		})
		return
	}

	if err := h.api.UpdateAssignment(r.Context(), sess.Token, id, req); err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		log.Printf("Failed to update assignment %d: %v", id, err)
	}
	http.Redirect(w, r, "/courses/"+strconv.Itoa(assignment.CourseID), http.StatusSeeOther)
}

func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := mustSession(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	assignment, err := h.api.GetAssignment(r.Context(), sess.Token, id)
	if err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	if err := h.api.DeleteAssignment(r.Context(), sess.Token, id); err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		log.Printf("Failed to delete assignment %d: %v", id, err)
	}
	http.Redirect(w, r, "/courses/"+strconv.Itoa(assignment.CourseID), http.StatusSeeOther)
}

func parseAssignmentForm(r *http.Request, courseID int) (apiclient.AssignmentRequest, string) {
	if err := r.ParseForm(); err != nil {
		return apiclient.AssignmentRequest{}, "Failed to parse form."
	}

	dueDate, err := time.Parse("2006-01-02", r.FormValue("due_date"))
	if err != nil {
		return apiclient.AssignmentRequest{}, "Invalid due date."
	}

	req := apiclient.AssignmentRequest{
		CourseID:     courseID,
		Title:        r.FormValue("title"),
		Instructions: r.FormValue("instructions"),
		DueDate:      dueDate,
	}
	if v := r.FormValue("max_score"); v != "" {
		maxScore, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return apiclient.AssignmentRequest{}, "Invalid max score."
		}
		req.MaxScore = maxScore
	}
	return req, ""
}
