package apiclient

import (
	"context"
	"net/http"

	"studybuddy/internal/domain/model"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	resp := &LoginResponse{}
	if err := c.do(ctx, http.MethodPost, "/users/login", "", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/users/register", "", req, nil)
}

func (c *Client) GetUser(ctx context.Context, token, id string) (*model.User, error) {
	user := &model.User{}
	if err := c.do(ctx, http.MethodGet, "/users/"+id, token, nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]model.User, error) {
	users := []model.User{}
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
