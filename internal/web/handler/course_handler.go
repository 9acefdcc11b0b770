package handler

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"studybuddy/internal/domain/model"
	"studybuddy/internal/web/apiclient"
	"studybuddy/internal/web/session"

	"github.com/go-chi/chi/v5"
)

type CourseHandler struct {
	api  *apiclient.Client
	tmpl *template.Template
}

func NewCourseHandler(api *apiclient.Client, tmpl *template.Template) *CourseHandler {
	return &CourseHandler{api: api, tmpl: tmpl}
}

type coursesPageData struct {
	Session   *session.Session
	PageTitle string
	Courses   []model.Course
	CanCreate bool
	Error     string
}

// Index lists the courses relevant to the session's role: instructors
// see the courses they own, students the courses they are enrolled in.
func (h *CourseHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess := mustSession(r)

	data := coursesPageData{Session: sess}
	var err error
	switch sess.Role {
	case model.RoleInstructor:
		data.Courses, err = h.api.ListCoursesByInstructor(r.Context(), sess.Token, sess.UserID)
		data.PageTitle = "My Courses (Instructor)"
		data.CanCreate = true
	case model.RoleStudent:
		data.Courses, err = h.api.CoursesByStudent(r.Context(), sess.Token, sess.UserID)
		data.PageTitle = "My Enrolled Courses"
	default:
		data.PageTitle = "Courses"
		data.Error = "Unable to determine user role. Please contact an administrator."
	}
	if err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		log.Printf("Failed to list courses for %s: %v", sess.UserID, err)
		data.Error = "An error occurred while loading courses."
	}

	h.tmpl.ExecuteTemplate(w, "courses", data)
}

type courseDetailData struct {
	Session     *session.Session
	Course      *model.Course
	Assignments []model.Assignment
	Students    []model.User
	CanEdit     bool
	IsStudent   bool
	Enrolled    bool
	Error       string
}

func (h *CourseHandler) Details(w http.ResponseWriter, r *http.Request) {
	sess := mustSession(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	course, err := h.api.GetCourse(r.Context(), sess.Token, id)
	if err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		log.Printf("Failed to load course %d: %v", id, err)
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	data := courseDetailData{
		Session:   sess,
		Course:    course,
		CanEdit:   sess.Role.IsInstructor() && course.InstructorID == sess.UserID,
		IsStudent: sess.Role == model.RoleStudent,
	}

	data.Assignments, err = h.api.ListAssignmentsByCourse(r.Context(), sess.Token, id)
	if err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		log.Printf("Failed to load assignments for course %d: %v", id, err)
	}

	if data.CanEdit {
		data.Students, err = h.api.StudentsByCourse(r.Context(), sess.Token, id)
		if err != nil {
			log.Printf("Failed to load students for course %d: %v", id, err)
		}
	}

	if data.IsStudent {
		enrolled, err := h.api.CoursesByStudent(r.Context(), sess.Token, sess.UserID)
		if err == nil {
			for _, c := range enrolled {
				if c.ID == course.ID {
					data.Enrolled = true
					break
				}
			}
		}
	}

	h.tmpl.ExecuteTemplate(w, "course_detail", data)
}

type courseFormData struct {
	PageTitle   string
	Action      string
	Title       string
	Description string
	StartDate   string
	EndDate     string
	Capacity    int
	Error       string
}

func (h *CourseHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.tmpl.ExecuteTemplate(w, "course_form", courseFormData{
		PageTitle: "Create course",
		Action:    "/courses/new",
	})
}

func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := mustSession(r)

	req, formErr := parseCourseForm(r)
	if formErr != "" {
		h.tmpl.ExecuteTemplate(w, "course_form", courseFormData{
			PageTitle: "Create course", Action: "/courses/new", Error: formErr,
		})
		return
	}

	course, err := h.api.CreateCourse(r.Context(), sess.Token, req)
	if err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		log.Printf("Failed to create course: %v", err)
		h.tmpl.ExecuteTemplate(w, "course_form", courseFormData{
			PageTitle: "Create course", Action: "/courses/new",
			Title: req.Title, Description: req.Description, Capacity: req.Capacity,
			Error: "Failed to create course.",
		})
		return
	}

	http.Redirect(w, r, "/courses/"+strconv.Itoa(course.ID), http.StatusSeeOther)
}

func (h *CourseHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	sess := mustSession(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}
	course, err := h.api.GetCourse(r.Context(), sess.Token, id)
	if err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	data := courseFormData{
		PageTitle:   "Edit course",
		Action:      "/courses/" + strconv.Itoa(id) + "/edit",
		Title:       course.Title,
		Description: course.Description,
		StartDate:   course.StartDate.Format("2006-01-02"),
		Capacity:    course.Capacity,
	}
	if course.EndDate != nil {
		data.EndDate = course.EndDate.Format("2006-01-02")
	}
	h.tmpl.ExecuteTemplate(w, "course_form", data)
}

func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := mustSession(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	req, formErr := parseCourseForm(r)
	if formErr != "" {
		h.tmpl.ExecuteTemplate(w, "course_form", courseFormData{
			PageTitle: "Edit course",
			Action:    "/courses/" + strconv.Itoa(id) + "/edit",
			Error:     formErr,
		})
		return
	}

	if err := h.api.UpdateCourse(r.Context(), sess.Token, id, req); err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		log.Printf("Failed to update course %d: %v", id, err)
		http.Redirect(w, r, "/courses/"+strconv.Itoa(id), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/courses/"+strconv.Itoa(id), http.StatusSeeOther)
}

func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := mustSession(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}
	if err := h.api.DeleteCourse(r.Context(), sess.Token, id); err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		log.Printf("Failed to delete course %d: %v", id, err)
	}
	http.Redirect(w, r, "/courses", http.StatusSeeOther)
}

func (h *CourseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	sess := mustSession(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}
	if err := h.api.Enroll(r.Context(), sess.Token, id, sess.UserID); err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		log.Printf("Failed to enroll %s in course %d: %v", sess.UserID, id, err)
	}
	http.Redirect(w, r, "/courses/"+strconv.Itoa(id), http.StatusSeeOther)
}

func (h *CourseHandler) Unenroll(w http.ResponseWriter, r *http.Request) {
	sess := mustSession(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}
	if err := h.api.Unenroll(r.Context(), sess.Token, id, sess.UserID); err != nil {
		if redirectOnAuthFailure(w, r, err) {
			return
		}
		log.Printf("Failed to unenroll %s from course %d: %v", sess.UserID, id, err)
	}
	http.Redirect(w, r, "/courses/"+strconv.Itoa(id), http.StatusSeeOther)
}

func parseCourseForm(r *http.Request) (apiclient.CourseRequest, string) {
	if err := r.ParseForm(); err != nil {
		return apiclient.CourseRequest{}, "Failed to parse form."
	}

	startDate, err := time.Parse("2006-01-02", r.FormValue("start_date"))
	if err != nil {
		return apiclient.CourseRequest{}, "Invalid start date."
	}

	req := apiclient.CourseRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		StartDate:   startDate,
	}
	if v := r.FormValue("end_date"); v != "" {
		endDate, err := time.Parse("2006-01-02", v)
		if err != nil {
			return apiclient.CourseRequest{}, "Invalid end date."
		}
		req.EndDate = &endDate
	}
	if v := r.FormValue("capacity"); v != "" {
		capacity, err := strconv.Atoi(v)
		if err != nil {
			return apiclient.CourseRequest{}, "Invalid capacity."
		}
		req.Capacity = capacity
	}
	return req, ""
}
