// Package apiclient is the front tier's HTTP client for the Resource
// API. Every call costs one network round trip and attaches the
// session's bearer token when one is present; without a token the call
// goes out unauthenticated and the API rejects it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Failure kinds preserved from the API's status codes so handlers can
// tell "please re-authenticate" apart from everything else.
var (
	ErrUnauthenticated = errors.New("not authenticated with the api")
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource conflict")
	ErrForbidden       = errors.New("action forbidden")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type apiError struct {
	Error string `json:"error"`
}

// do performs one call against the API. token may be empty. out may be
// nil when the caller only cares about success.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("apiclient: decode response: %w", err)
		}
		return nil
	}

	var ec apiError
	_ = json.NewDecoder(resp.Body).Decode(&ec)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", ec.Error, ErrUnauthenticated)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w", ec.Error, ErrForbidden)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", ec.Error, ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", ec.Error, ErrConflict)
	default:
		return fmt.Errorf("apiclient: %s %s failed with status %d: %s", method, path, resp.StatusCode, ec.Error)
	}
}
