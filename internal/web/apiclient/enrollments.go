package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"studybuddy/internal/domain/model"
)

type EnrollmentRequest struct {
	CourseID  int    `json:"course_id"`
	StudentID string `json:"student_id"`
}

func (c *Client) Enroll(ctx context.Context, token string, courseID int, studentID string) error {
	req := EnrollmentRequest{CourseID: courseID, StudentID: studentID}
	return c.do(ctx, http.MethodPost, "/enrollments/enroll", token, req, nil)
}

func (c *Client) Unenroll(ctx context.Context, token string, courseID int, studentID string) error {
	req := EnrollmentRequest{CourseID: courseID, StudentID: studentID}
	return c.do(ctx, http.MethodDelete, "/enrollments/unenroll", token, req, nil)
}

func (c *Client) StudentsByCourse(ctx context.Context, token string, courseID int) ([]model.User, error) {
	students := []model.User{}
	if err := c.do(ctx, http.MethodGet, "/enrollments/course/"+strconv.Itoa(courseID)+"/students", token, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *Client) CoursesByStudent(ctx context.Context, token, studentID string) ([]model.Course, error) {
	courses := []model.Course{}
	if err := c.do(ctx, http.MethodGet, "/enrollments/student/"+studentID+"/courses", token, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
