package apiclient

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"studybuddy/internal/domain/model"
)

type CourseRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Capacity    int        `json:"capacity"`
}

func (c *Client) ListCourses(ctx context.Context, token string) ([]model.Course, error) {
	courses := []model.Course{}
	if err := c.do(ctx, http.MethodGet, "/courses", token, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) GetCourse(ctx context.Context, token string, id int) (*model.Course, error) {
	course := &model.Course{}
	if err := c.do(ctx, http.MethodGet, "/courses/"+strconv.Itoa(id), token, nil, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (c *Client) ListCoursesByInstructor(ctx context.Context, token, instructorID string) ([]model.Course, error) {
	courses := []model.Course{}
	if err := c.do(ctx, http.MethodGet, "/courses/instructor/"+instructorID, token, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) CreateCourse(ctx context.Context, token string, req CourseRequest) (*model.Course, error) {
	course := &model.Course{}
	if err := c.do(ctx, http.MethodPost, "/courses", token, req, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (c *Client) UpdateCourse(ctx context.Context, token string, id int, req CourseRequest) error {
	return c.do(ctx, http.MethodPut, "/courses/"+strconv.Itoa(id), token, req, nil)
}

func (c *Client) DeleteCourse(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, "/courses/"+strconv.Itoa(id), token, nil, nil)
}
