// Package client is the Go consumer of the RateMyClass REST API. It is
// the only thing the front end talks to; every call surfaces backend
// `detail` messages verbatim and falls back to a generic message when
// the body is not parseable.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rosnMagar/RateMyClass/internal/app/models/dto"
)

// APIError is a non-2xx backend response. Detail is user-presentable.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements error interface
func (e *APIError) Error() string {
	return e.Detail
}

// Client talks to the RateMyClass backend
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the backend at baseURL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// GetSchools lists all schools
func (c *Client) GetSchools(ctx context.Context) ([]dto.SchoolResponse, error) {
	var schools []dto.SchoolResponse
	if err := c.get(ctx, "/schools", &schools, "failed to load schools"); err != nil {
		return nil, err
	}
	return schools, nil
}

// GetCoursesBySchool lists the courses of one school for the course picker
func (c *Client) GetCoursesBySchool(ctx context.Context, schoolID int64) ([]dto.CourseListItem, error) {
	var courses []dto.CourseListItem
	path := fmt.Sprintf("/schools/%d/courses", schoolID)
	if err := c.get(ctx, path, &courses, "failed to load courses"); err != nil {
		return nil, err
	}
	return courses, nil
}

// SearchCourses lists courses with aggregates, optionally filtered by a
// search term. An empty term returns everything.
func (c *Client) SearchCourses(ctx context.Context, term string) ([]dto.CourseWithRatings, error) {
	path := "/courses"
	if term != "" {
		path += "?search=" + url.QueryEscape(term)
	}

	var courses []dto.CourseWithRatings
	if err := c.get(ctx, path, &courses, "failed to load courses"); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse retrieves one course with its aggregates
func (c *Client) GetCourse(ctx context.Context, courseID int64) (*dto.CourseWithRatings, error) {
	var course dto.CourseWithRatings
	path := fmt.Sprintf("/courses/%d", courseID)
	if err := c.get(ctx, path, &course, "failed to load course"); err != nil {
		return nil, err
	}
	return &course, nil
}

// GetCourseDetail retrieves one course with all its ratings embedded
func (c *Client) GetCourseDetail(ctx context.Context, courseID int64) (*dto.CourseDetailResponse, error) {
	var detail dto.CourseDetailResponse
	path := fmt.Sprintf("/courses/%d/detail", courseID)
	if err := c.get(ctx, path, &detail, "failed to load course details"); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreateCourse creates a course (and its school when absent) with an
// initial rating. Admin only; token is sent as a bearer credential.
func (c *Client) CreateCourse(ctx context.Context, req dto.CreateCourseRequest, token string) (*dto.CourseWithRatings, error) {
	var course dto.CourseWithRatings
	if err := c.post(ctx, "/courses", req, &course, token, "failed to create course"); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateRating submits a rating for an existing course. No auth required.
func (c *Client) CreateRating(ctx context.Context, req dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	var rating dto.RatingResponse
	if err := c.post(ctx, "/ratings", req, &rating, "", "failed to submit rating"); err != nil {
		return nil, err
	}
	return &rating, nil
}

// Login authenticates and returns the issued token and role
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	req := dto.LoginRequest{Username: username, Password: password}
	var resp dto.LoginResponse
	if err := c.post(ctx, "/auth/login", req, &resp, "", "login failed"); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}, fallback string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	return c.do(req, out, fallback)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}, token, fallback string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out, fallback)
}

func (c *Client) do(req *http.Request, out interface{}, fallback string) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	return nil
}

// decodeError turns a non-2xx response into an APIError, surfacing the
// backend detail message when one is present
func decodeError(resp *http.Response, fallback string) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: fallback}

	var body dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
	}
	return apiErr
}
