package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/jobdeck/jobdeck/internal/common"
)

// StatusError is a non-2xx response from the service. Message holds the
// server-supplied "message" field when the body carried one; Body holds the
// raw response text either way.
type StatusError struct {
	Status  int
	Message string
	Body    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, http.StatusText(e.Status))
}

func newStatusError(status int, raw []byte) error {
	se := &StatusError{Status: status, Body: strings.TrimSpace(string(raw))}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		se.Message = payload.Message
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Mark(se, common.ErrUnauthorized)
	case http.StatusNotFound:
		return errors.Mark(se, common.ErrNotFound)
	}
	return se
}

// UserMessage extracts the text shown to the user for a failed call, in
// priority order: server-provided message, raw response body, transport-level
// error text, then the supplied fallback.
func UserMessage(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) {
		if se.Message != "" {
			return se.Message
		}
		if se.Body != "" {
			return se.Body
		}
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
