package apiclient

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"studybuddy/internal/domain/model"
)

type AssignmentRequest struct {
	CourseID     int       `json:"course_id"`
	Title        string    `json:"title"`
	Instructions string    `json:"instructions"`
	DueDate      time.Time `json:"due_date"`
	MaxScore     float64   `json:"max_score"`
}

func (c *Client) ListAssignmentsByCourse(ctx context.Context, token string, courseID int) ([]model.Assignment, error) {
	assignments := []model.Assignment{}
	if err := c.do(ctx, http.MethodGet, "/assignments/course/"+strconv.Itoa(courseID), token, nil, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (c *Client) GetAssignment(ctx context.Context, token string, id int) (*model.Assignment, error) {
	assignment := &model.Assignment{}
	if err := c.do(ctx, http.MethodGet, "/assignments/"+strconv.Itoa(id), token, nil, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (c *Client) CreateAssignment(ctx context.Context, token string, req AssignmentRequest) (*model.Assignment, error) {
	assignment := &model.Assignment{}
	if err := c.do(ctx, http.MethodPost, "/assignments", token, req, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (c *Client) UpdateAssignment(ctx context.Context, token string, id int, req AssignmentRequest) error {
	return c.do(ctx, http.MethodPut, "/assignments/"+strconv.Itoa(id), token, req, nil)
}

func (c *Client) DeleteAssignment(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, "/assignments/"+strconv.Itoa(id), token, nil, nil)
}
