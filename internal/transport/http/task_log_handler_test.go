package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
)

func newTaskLogEcho(taskLogs TaskLogService) *echo.Echo {
	e := echo.New()
	RegisterTaskLogs(e, taskLogs, newTestResponder(), passThrough)
	return e
}

func TestTaskLogHandlerRoundTrip(t *testing.T) {
	e := newTaskLogEcho(newFakeTaskLogService())

	rec := doJSON(e, http.MethodGet, "/tasklogs", "")
	if rec.Code != http.StatusBadRequest || rec.Body.String() != "No tasklog records found" {
		t.Fatalf("expected plain 400 for empty list, got %d %q", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPost, "/tasklogs", `{"id":3,"issue":"audio drifts","projectId":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var created domain.TaskLog
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != 3 || created.ProjectID != 5 || created.IsResolved {
		t.Fatalf("unexpected tasklog %+v", created)
	}

	rec = doJSON(e, http.MethodGet, "/tasklogs/3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPut, "/tasklogs", `{"id":3,"newIssue":"audio fixed","isResolved":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated domain.TaskLog
	_ = json.Unmarshal(rec.Body.Bytes(), &updated)
	if updated.Issue != "audio fixed" || !updated.IsResolved || updated.ProjectID != 5 {
		t.Fatalf("unexpected update %+v", updated)
	}

	rec = doJSON(e, http.MethodDelete, "/tasklogs/3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodDelete, "/tasklogs/3", "")
	if rec.Code != http.StatusBadRequest || rec.Body.String() != "Failed to find tasklog" {
		t.Fatalf("expected plain 400 for second delete, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestTaskLogHandlerListFilters(t *testing.T) {
	ctx := context.Background()
	taskLogs := newFakeTaskLogService()
	e := newTaskLogEcho(taskLogs)

	_, _ = taskLogs.Create(ctx, 1, "open on 5", 5)
	_, _ = taskLogs.Create(ctx, 2, "closed on 5", 5)
	_, _ = taskLogs.Update(ctx, 2, "closed on 5", true)
	_, _ = taskLogs.Create(ctx, 3, "closed on 6", 6)
	_, _ = taskLogs.Update(ctx, 3, "closed on 6", true)

	rec := doJSON(e, http.MethodGet, "/tasklogs?projectId=5&resolved=true", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if taskLogs.lastFilter.ProjectID == nil || *taskLogs.lastFilter.ProjectID != 5 {
		t.Fatalf("expected projectId filter 5, got %v", taskLogs.lastFilter.ProjectID)
	}
	if taskLogs.lastFilter.Resolved == nil || !*taskLogs.lastFilter.Resolved {
		t.Fatalf("expected resolved filter true, got %v", taskLogs.lastFilter.Resolved)
	}
	var listed []domain.TaskLog
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != 2 {
		t.Fatalf("expected only tasklog 2, got %+v", listed)
	}

	rec = doJSON(e, http.MethodGet, "/tasklogs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if taskLogs.lastFilter.ProjectID != nil || taskLogs.lastFilter.Resolved != nil {
		t.Fatalf("expected no filter, got %+v", taskLogs.lastFilter)
	}

	rec = doJSON(e, http.MethodGet, "/tasklogs?projectId=7&resolved=false", "")
	if rec.Code != http.StatusBadRequest || rec.Body.String() != "No tasklog records found" {
		t.Fatalf("expected plain 400 for empty filtered list, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestTaskLogHandlerValidation(t *testing.T) {
	taskLogs := newFakeTaskLogService()
	e := newTaskLogEcho(taskLogs)

	cases := []struct {
		method, target, body string
	}{
		{http.MethodGet, "/tasklogs?resolved=maybe", ""},
		{http.MethodGet, "/tasklogs?projectId=five", ""},
		{http.MethodPost, "/tasklogs", `{"id":1,"issue":"no project"}`},
		{http.MethodPost, "/tasklogs", `{"issue":"no id","projectId":1}`},
		{http.MethodPost, "/tasklogs", `{"id":1,"issue":"","projectId":1}`},
		{http.MethodPut, "/tasklogs", `{"newIssue":"no id","isResolved":true}`},
		{http.MethodGet, "/tasklogs/abc", ""},
	}
	for _, tc := range cases {
		rec := doJSON(e, tc.method, tc.target, tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s %s: expected 400, got %d", tc.method, tc.target, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "There was a validation error: ") {
			t.Fatalf("%s %s: unexpected body %s", tc.method, tc.target, rec.Body.String())
		}
	}
	if taskLogs.listCalls != 0 {
		t.Fatalf("expected malformed queries to be rejected before listing, got %d calls", taskLogs.listCalls)
	}
}
