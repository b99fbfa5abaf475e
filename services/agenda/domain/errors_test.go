package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorCodes_WireValues(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnauthenticated, "unauthenticated"},
		{CodeInvalidArguments, "invalid_arguments"},
		{CodeResourceNotFound, "arguments_associated_resources_not_found"},
		{CodeForbiddenAction, "forbidden_action_on_arguments_associated_resources"},
		{CodeUnauthorizedAction, "unauthorized_action_on_arguments_associated_resources"},
		{CodeUnexpected, "unexpected"},
	}
	for _, tt := range tests {
		if string(tt.code) != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, tt.code)
		}
	}
}

func TestError_IsMatchesByCode(t *testing.T) {
	err := NewResourceNotFound("input", "id")
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatal("constructor result must match its code sentinel")
	}
	if errors.Is(err, ErrForbiddenAction) {
		t.Fatal("must not match a different code")
	}
}

func TestError_IsMatchesWrapped(t *testing.T) {
	wrapped := fmt.Errorf("create agenda item: %w", NewUnauthorizedAction("input", "id"))
	if !errors.Is(wrapped, ErrUnauthorizedAction) {
		t.Fatal("errors.Is must match wrapped domain error")
	}

	var de *Error
	if !errors.As(wrapped, &de) {
		t.Fatal("errors.As must extract wrapped domain error")
	}
	if de.Code != CodeUnauthorizedAction {
		t.Fatalf("unexpected code: %q", de.Code)
	}
}

func TestError_MessageIncludesIssues(t *testing.T) {
	err := NewForbiddenAction([]string{"input", "folderId"}, "this resource cannot host agenda items")
	msg := err.Error()
	if !strings.Contains(msg, "input.folderId") {
		t.Fatalf("message must name the argument path, got %q", msg)
	}
	if !strings.Contains(msg, "cannot host agenda items") {
		t.Fatalf("message must carry the issue message, got %q", msg)
	}
}

func TestError_NoIssueMessage(t *testing.T) {
	if msg := NewUnauthenticated().Error(); msg != "agenda: unauthenticated" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestConstructors_IssuePaths(t *testing.T) {
	t.Run("not found points at argument path", func(t *testing.T) {
		err := NewResourceNotFound("input", "id")
		if len(err.Issues) != 1 {
			t.Fatalf("expected 1 issue, got %d", len(err.Issues))
		}
		path := err.Issues[0].ArgumentPath
		if len(path) != 2 || path[0] != "input" || path[1] != "id" {
			t.Fatalf("unexpected path: %v", path)
		}
	})

	t.Run("invalid arguments carries all issues", func(t *testing.T) {
		err := NewInvalidArguments(
			Issue{ArgumentPath: []string{"input", "name"}, Message: "too long"},
			Issue{ArgumentPath: []string{"input", "type"}, Message: "unknown"},
		)
		if len(err.Issues) != 2 {
			t.Fatalf("expected 2 issues, got %d", len(err.Issues))
		}
	})
}

func TestLookupSentinels_DistinctFromTaxonomy(t *testing.T) {
	for _, err := range []error{ErrUserNotFound, ErrFolderNotFound, ErrItemNotFound, ErrNoRowReturned} {
		var de *Error
		if errors.As(err, &de) {
			t.Fatalf("lookup sentinel %v must not be a taxonomy error", err)
		}
	}
}
