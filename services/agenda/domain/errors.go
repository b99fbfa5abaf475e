package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Code is the machine-readable error class surfaced to API clients.
type Code string

const (
	CodeUnauthenticated    Code = "unauthenticated"
	CodeInvalidArguments   Code = "invalid_arguments"
	CodeResourceNotFound   Code = "arguments_associated_resources_not_found"
	CodeForbiddenAction    Code = "forbidden_action_on_arguments_associated_resources"
	CodeUnauthorizedAction Code = "unauthorized_action_on_arguments_associated_resources"
	CodeUnexpected         Code = "unexpected"
)

// Issue points at the argument that caused a failure.
type Issue struct {
	ArgumentPath []string `json:"argumentPath"`
	Message      string   `json:"message,omitempty"`
}

// Error is the typed failure returned by agenda operations. Every failure
// carries exactly one Code; Issues is populated for argument-related codes.
// Match with errors.Is against the sentinel values below.
type Error struct {
	Code   Code
	Issues []Issue
}

func (e *Error) Error() string {
	if len(e.Issues) == 0 {
		return fmt.Sprintf("agenda: %s", e.Code)
	}
	parts := make([]string, len(e.Issues))
	for i, iss := range e.Issues {
		if iss.Message == "" {
			parts[i] = strings.Join(iss.ArgumentPath, ".")
		} else {
			parts[i] = fmt.Sprintf("%s: %s", strings.Join(iss.ArgumentPath, "."), iss.Message)
		}
	}
	return fmt.Sprintf("agenda: %s (%s)", e.Code, strings.Join(parts, "; "))
}

// Is matches any *Error with the same Code, so wrapped operation errors
// compare equal to the code sentinels regardless of their issue lists.
func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && t.Code == e.Code
}

// Sentinels for errors.Is checks. Do not return these directly from
// operations; use the constructors so issue paths are populated.
var (
	ErrUnauthenticated    = &Error{Code: CodeUnauthenticated}
	ErrInvalidArguments   = &Error{Code: CodeInvalidArguments}
	ErrResourceNotFound   = &Error{Code: CodeResourceNotFound}
	ErrForbiddenAction    = &Error{Code: CodeForbiddenAction}
	ErrUnauthorizedAction = &Error{Code: CodeUnauthorizedAction}
	ErrUnexpected         = &Error{Code: CodeUnexpected}
)

// NewUnauthenticated reports a missing, invalid, or stale caller identity.
func NewUnauthenticated() *Error {
	return &Error{Code: CodeUnauthenticated}
}

// NewInvalidArguments reports one or more malformed input fields.
func NewInvalidArguments(issues ...Issue) *Error {
	return &Error{Code: CodeInvalidArguments, Issues: issues}
}

// NewResourceNotFound reports that a resource referenced by an input
// argument does not exist.
func NewResourceNotFound(argumentPath ...string) *Error {
	return &Error{Code: CodeResourceNotFound, Issues: []Issue{{ArgumentPath: argumentPath}}}
}

// NewForbiddenAction reports that the referenced resource exists but its
// shape forbids the requested action.
func NewForbiddenAction(argumentPath []string, message string) *Error {
	return &Error{Code: CodeForbiddenAction, Issues: []Issue{{ArgumentPath: argumentPath, Message: message}}}
}

// NewUnauthorizedAction reports that the caller lacks the role required to
// act on the referenced resource.
func NewUnauthorizedAction(argumentPath ...string) *Error {
	return &Error{Code: CodeUnauthorizedAction, Issues: []Issue{{ArgumentPath: argumentPath}}}
}

// NewUnexpected reports a broken store invariant. Never retried.
func NewUnexpected() *Error {
	return &Error{Code: CodeUnexpected}
}

// Lookup sentinels used at the repository boundary. They are deliberately
// distinct from the API taxonomy: the service layer owns the mapping
// (a missing caller row becomes unauthenticated, not not-found).
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrFolderNotFound = errors.New("agenda folder not found")
	ErrItemNotFound   = errors.New("agenda item not found")

	// ErrNoRowReturned indicates an insert that should have returned the
	// created row returned nothing, a store contract violation.
	ErrNoRowReturned = errors.New("insert returned no row")
)
