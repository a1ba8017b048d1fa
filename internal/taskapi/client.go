// Package taskapi is a thin HTTP client for the external XP task service.
// Every call is a single POST with a JSON body; there are no retries.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lifeos-app/xp-platform/internal/model"
	"github.com/lifeos-app/xp-platform/pkg/logger"
	"github.com/lifeos-app/xp-platform/pkg/metrics"
)

// APIError is a structured business error returned by the task service.
// It is distinct from transport failures, which surface as plain errors.
type APIError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// Client calls the task service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a task service client. baseURL points at the /api/xp root.
func NewClient(baseURL string, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     log,
	}
}

// post sends one JSON request and decodes the reply into out. A response
// carrying an "error" field is returned as *APIError; anything else that goes
// wrong (network, non-JSON body) is a transport error.
func (c *Client) post(ctx context.Context, endpoint string, in, out interface{}) error {
	start := time.Now()
	outcome := "ok"
	defer func() {
		metrics.RecordTaskAPICall(endpoint, outcome, time.Since(start).Seconds())
	}()

	body, err := json.Marshal(in)
	if err != nil {
		outcome = "transport_error"
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(body))
	if err != nil {
		outcome = "transport_error"
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = "transport_error"
		return fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		outcome = "transport_error"
		return fmt.Errorf("failed to read response from %s: %w", endpoint, err)
	}

	var envelope APIError
	if err := json.Unmarshal(data, &envelope); err != nil {
		outcome = "transport_error"
		c.logger.Error("task service returned non-JSON body",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("non-JSON response from %s (status %d)", endpoint, resp.StatusCode)
	}
	if envelope.Code != "" {
		outcome = "business_error"
		return &envelope
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			outcome = "transport_error"
			return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
		}
	}
	return nil
}

// CreateTask sends a completed creation payload to tasks/create.
func (c *Client) CreateTask(ctx context.Context, req model.CreateTaskRequest) (*model.CreateTaskResponse, error) {
	var resp model.CreateTaskResponse
	if err := c.post(ctx, "tasks/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTasks fetches tasks still available to the given user. A zero userID
// lists everything active.
func (c *Client) ListTasks(ctx context.Context, userID int64) (*model.ListTasksResponse, error) {
	var resp model.ListTasksResponse
	if err := c.post(ctx, "tasks/list", model.ListTasksRequest{UserID: userID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitTask submits one completion claim for review.
func (c *Client) SubmitTask(ctx context.Context, userID int64, taskCode string) (*model.SubmitTaskResponse, error) {
	req := model.SubmitTaskRequest{
		UserID:   userID,
		TaskCode: strings.ToUpper(strings.TrimSpace(taskCode)),
	}
	var resp model.SubmitTaskResponse
	if err := c.post(ctx, "tasks/submit", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PendingCompletions lists claims awaiting review, newest first.
func (c *Client) PendingCompletions(ctx context.Context, limit int) (*model.PendingResponse, error) {
	var resp model.PendingResponse
	if err := c.post(ctx, "tasks/pending", model.PendingRequest{Limit: limit}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Approve confirms a pending completion and awards its XP.
func (c *Client) Approve(ctx context.Context, completionID string, adminID int64) (*model.ApproveResponse, error) {
	var resp model.ApproveResponse
	if err := c.post(ctx, "tasks/approve", model.ReviewRequest{CompletionID: completionID, AdminID: adminID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Reject declines a pending completion.
func (c *Client) Reject(ctx context.Context, completionID string, adminID int64) (*model.RejectResponse, error) {
	var resp model.RejectResponse
	if err := c.post(ctx, "tasks/reject", model.ReviewRequest{CompletionID: completionID, AdminID: adminID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTask soft-deletes a task by code.
func (c *Client) DeleteTask(ctx context.Context, taskCode string) (*model.DeleteTaskResponse, error) {
	req := model.DeleteTaskRequest{TaskCode: strings.ToUpper(strings.TrimSpace(taskCode))}
	var resp model.DeleteTaskResponse
	if err := c.post(ctx, "tasks/delete", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
