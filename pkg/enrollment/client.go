package enrollment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Option configures the client before construction.
type Option func(*Client)

// WithHTTPClient injects the HTTP client used for endpoint calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithTimeout bounds each endpoint call. Ignored when WithHTTPClient supplies
// a client with its own timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// Client talks to the purchase/enrollment endpoint the payment step is
// configured with. All calls are plain JSON over HTTP.
type Client struct {
	base    string
	http    *http.Client
	timeout time.Duration
}

// New constructs a client for the given endpoint base URL.
func New(endpoint string, options ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if trimmed == "" {
		return nil, errors.New("enrollment: endpoint is required")
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return nil, fmt.Errorf("enrollment: invalid endpoint %q: %w", endpoint, err)
	}

	c := &Client{
		base:    trimmed,
		timeout: defaultTimeout,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// CourseDetails fetches the enrollment view of a course, including its
// available modes and pricing.
func (c *Client) CourseDetails(ctx context.Context, courseID string) (CourseDetails, error) {
	if courseID == "" {
		return CourseDetails{}, errors.New("enrollment: course id is required")
	}

	var details CourseDetails
	err := c.get(ctx, c.base+"/course/"+url.PathEscape(courseID), &details, ErrCourseNotFound)
	if err != nil {
		return CourseDetails{}, err
	}
	return details, nil
}

// Enrollment fetches the learner's enrollment in a course.
func (c *Client) Enrollment(ctx context.Context, userID, courseID string) (Enrollment, error) {
	if userID == "" || courseID == "" {
		return Enrollment{}, errors.New("enrollment: user id and course id are required")
	}

	var enrollment Enrollment
	path := c.base + "/enrollment/" + url.PathEscape(userID) + "/" + url.PathEscape(courseID)
	if err := c.get(ctx, path, &enrollment, ErrEnrollmentNotFound); err != nil {
		return Enrollment{}, err
	}
	return enrollment, nil
}

// Enroll creates an enrollment for the learner in the given mode. The server
// validates the mode against the course's offerings; an unknown mode comes
// back as ErrCourseModeNotFound.
func (c *Client) Enroll(ctx context.Context, userID, courseID, mode string) (Enrollment, error) {
	if userID == "" || courseID == "" {
		return Enrollment{}, errors.New("enrollment: user id and course id are required")
	}
	if mode == "" {
		mode = "honor"
	}

	payload := map[string]any{
		"user":      userID,
		"course_id": courseID,
		"mode":      mode,
		"is_active": true,
	}
	var enrollment Enrollment
	if err := c.post(ctx, c.base+"/enrollment", payload, &enrollment); err != nil {
		return Enrollment{}, err
	}
	return enrollment, nil
}

// Deactivate marks the learner's enrollment inactive, preserving its mode.
func (c *Client) Deactivate(ctx context.Context, userID, courseID string) (Enrollment, error) {
	if userID == "" || courseID == "" {
		return Enrollment{}, errors.New("enrollment: user id and course id are required")
	}

	payload := map[string]any{
		"user":      userID,
		"course_id": courseID,
		"is_active": false,
	}
	var enrollment Enrollment
	if err := c.post(ctx, c.base+"/enrollment", payload, &enrollment); err != nil {
		return Enrollment{}, err
	}
	return enrollment, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out any, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return notFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) post(ctx context.Context, rawURL string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrCourseNotFound
	case http.StatusBadRequest:
		if apiErr := decodeAPIError(resp); apiErr != nil {
			if strings.Contains(strings.ToLower(apiErr.Message), "mode") {
				return fmt.Errorf("%s: %w", apiErr.Message, ErrCourseModeNotFound)
			}
			return apiErr
		}
		return ErrCourseModeNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func responseError(resp *http.Response) error {
	if apiErr := decodeAPIError(resp); apiErr != nil {
		return apiErr
	}
	return &APIError{StatusCode: resp.StatusCode}
}

func decodeAPIError(resp *http.Response) *APIError {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(data) == 0 {
		return nil
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil || body.Message == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.Message}
}
