// Package errhttp maps agenda domain errors to HTTP responses.
// Taxonomy codes map to statuses; issue lists are carried through verbatim.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/convene/pkg/httpx"
	agendadomain "github.com/ghuser/convene/services/agenda/domain"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Code   string               `json:"code"`
	Error  string               `json:"error"`
	Issues []agendadomain.Issue `json:"issues,omitempty"`
}

// WriteError maps err to an HTTP status code and writes a structured JSON
// error response. Uses errors.As so wrapped domain errors are matched
// correctly. Errors outside the taxonomy surface as 500 unexpected without
// leaking their message.
func WriteError(w http.ResponseWriter, err error) {
	var de *agendadomain.Error
	if !errors.As(err, &de) {
		httpx.JSON(w, http.StatusInternalServerError, ErrorBody{
			Code:  string(agendadomain.CodeUnexpected),
			Error: http.StatusText(http.StatusInternalServerError),
		})
		return
	}

	httpx.JSON(w, statusForCode(de.Code), ErrorBody{
		Code:   string(de.Code),
		Error:  de.Error(),
		Issues: de.Issues,
	})
}

func statusForCode(code agendadomain.Code) int {
	switch code {
	case agendadomain.CodeUnauthenticated:
		return http.StatusUnauthorized // 401
	case agendadomain.CodeInvalidArguments:
		return http.StatusBadRequest // 400
	case agendadomain.CodeResourceNotFound:
		return http.StatusNotFound // 404
	case agendadomain.CodeForbiddenAction, agendadomain.CodeUnauthorizedAction:
		return http.StatusForbidden // 403
	default:
		return http.StatusInternalServerError // 500
	}
}
