package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	agendadomain "github.com/ghuser/convene/services/agenda/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unauthenticated", agendadomain.NewUnauthenticated(), http.StatusUnauthorized},
		{"invalid arguments", agendadomain.NewInvalidArguments(), http.StatusBadRequest},
		{"resource not found", agendadomain.NewResourceNotFound("input", "id"), http.StatusNotFound},
		{"forbidden action", agendadomain.NewForbiddenAction([]string{"input", "folderId"}, "nope"), http.StatusForbidden},
		{"unauthorized action", agendadomain.NewUnauthorizedAction("input", "id"), http.StatusForbidden},
		{"unexpected", agendadomain.NewUnexpected(), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("create: %w", agendadomain.NewResourceNotFound("input", "id")), http.StatusNotFound},
		{"unknown error", errors.New("db down"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_BodyCarriesCodeAndIssues(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, agendadomain.NewForbiddenAction(
		[]string{"input", "folderId"},
		"this resource cannot host agenda items",
	))

	var body ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Code != string(agendadomain.CodeForbiddenAction) {
		t.Fatalf("unexpected code: %q", body.Code)
	}
	if len(body.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(body.Issues))
	}
	iss := body.Issues[0]
	if len(iss.ArgumentPath) != 2 || iss.ArgumentPath[0] != "input" || iss.ArgumentPath[1] != "folderId" {
		t.Fatalf("unexpected path: %v", iss.ArgumentPath)
	}
	if iss.Message != "this resource cannot host agenda items" {
		t.Fatalf("unexpected message: %q", iss.Message)
	}
}

func TestWriteError_UnknownErrorDoesNotLeakMessage(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("pq: connection refused host=10.0.0.3"))

	var body ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Code != string(agendadomain.CodeUnexpected) {
		t.Fatalf("unexpected code: %q", body.Code)
	}
	if body.Error != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("internal error details leaked: %q", body.Error)
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, agendadomain.NewUnexpected())

	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
