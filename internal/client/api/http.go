package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkazantsev/jobdeck/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the job-board API.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken installs the bearer token sent on every subsequent request.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the bearer token.
func (c *HTTPClient) ClearToken() {
	c.SetToken("")
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/login/", nil, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/register/", nil, reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/profile/", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/api/profile/", nil, upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Jobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	query := url.Values{}
	setIfPresent := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}
	setIfPresent("search", filter.Search)
	setIfPresent("job_type", filter.JobType)
	setIfPresent("experience_level", filter.ExperienceLevel)
	setIfPresent("location", filter.Location)

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/jobs/", query, nil, &raw); err != nil {
		return nil, err
	}
	return decodeJobList(raw)
}

// decodeJobList accepts both a plain array and a paginated
// {"results": [...]} envelope.
func decodeJobList(raw json.RawMessage) ([]models.Job, error) {
	var jobs []models.Job
	if err := json.Unmarshal(raw, &jobs); err == nil {
		return jobs, nil
	}
	var page struct {
		Results []models.Job `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decoding job list: %w", err)
	}
	return page.Results, nil
}

func (c *HTTPClient) Job(ctx context.Context, id int64) (*models.Job, error) {
	var job models.Job
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/jobs/%d/", id), nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *HTTPClient) CreateJob(ctx context.Context, posting models.JobPosting) (*models.Job, error) {
	var job models.Job
	if err := c.do(ctx, http.MethodPost, "/api/jobs/", nil, posting, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *HTTPClient) Apply(ctx context.Context, jobID int64, form models.ApplicationForm) (*models.JobApplication, error) {
	var app models.JobApplication
	path := fmt.Sprintf("/api/jobs/%d/apply/", jobID)
	if err := c.do(ctx, http.MethodPost, path, nil, form, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *HTTPClient) ToggleSaved(ctx context.Context, jobID int64) error {
	path := fmt.Sprintf("/api/jobs/%d/save/", jobID)
	return c.do(ctx, http.MethodPost, path, nil, nil, nil)
}

func (c *HTTPClient) SavedJobs(ctx context.Context) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	if err := c.do(ctx, http.MethodGet, "/api/jobs/saved/", nil, nil, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if method != http.MethodGet {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// decodeError turns an error payload into *Error, preserving the server's
// "detail" message and per-field validation messages verbatim.
func decodeError(status int, data []byte) error {
	apiErr := &Error{Status: status}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return apiErr
	}

	if detail, ok := payload["detail"].(string); ok {
		apiErr.Detail = detail
		return apiErr
	}

	fields := make(map[string][]string)
	for key, value := range payload {
		switch v := value.(type) {
		case string:
			fields[key] = []string{v}
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					fields[key] = append(fields[key], s)
				}
			}
		}
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
	}
	return apiErr
}
