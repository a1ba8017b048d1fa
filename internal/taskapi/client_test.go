package taskapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lifeos-app/xp-platform/internal/model"
	"github.com/lifeos-app/xp-platform/pkg/logger"
)

func newTestClient(t *testing.T, fn http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(fn)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, logger.NewNop()), srv
}

func TestSubmitTaskSuccess(t *testing.T) {
	var gotPath string
	var gotBody model.SubmitTaskRequest

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":       true,
			"status":   "pending",
			"taskCode": "READ_BOOK_X1F2",
			"rewardXp": 50,
		})
	})

	resp, err := c.SubmitTask(context.Background(), 123, "  read_book_x1f2 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/tasks/submit" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody.UserID != 123 {
		t.Errorf("userId = %d", gotBody.UserID)
	}
	if gotBody.TaskCode != "READ_BOOK_X1F2" {
		t.Errorf("taskCode = %q, want trimmed uppercase", gotBody.TaskCode)
	}
	if resp.Status != model.SubmitStatusPending {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestBusinessErrorSurfacedAsAPIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "COMPLETION_NOT_FOUND",
			"message": "Task completion not found",
		})
	})

	_, err := c.Approve(context.Background(), "55", 1)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Code != "COMPLETION_NOT_FOUND" {
		t.Errorf("code = %q", apiErr.Code)
	}
	if apiErr.Error() != "Task completion not found" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestNonJSONBodyIsTransportError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream down</html>"))
	})

	_, err := c.ListTasks(context.Background(), 0)
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("non-JSON must not be a business error: %v", err)
	}
}

func TestConnectionRefusedIsTransportError(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := c.PendingCompletions(context.Background(), 50)
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("network failure must not be a business error: %v", err)
	}
}

func TestCreateTaskPayload(t *testing.T) {
	var raw map[string]json.RawMessage

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&raw)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":   true,
			"task": map[string]interface{}{"code": "SPORT_AB12"},
		})
	})

	req := model.CreateTaskRequest{
		Title:              "Зарядка",
		RewardXp:           50,
		TaskType:           model.TaskTypeMulti,
		MaxUserCompletions: 0,
		CreatedBy:          7,
	}
	resp, err := c.CreateTask(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Task == nil || resp.Task.Code != "SPORT_AB12" {
		t.Errorf("task = %+v", resp.Task)
	}

	// Unlimited multi must serialize as 0, not null, and no deadline as null.
	if string(raw["maxUserCompletions"]) != "0" {
		t.Errorf("maxUserCompletions = %s, want 0", raw["maxUserCompletions"])
	}
	if string(raw["deadlineAt"]) != "null" {
		t.Errorf("deadlineAt = %s, want null", raw["deadlineAt"])
	}
}
