package client

import (
	"errors"
	"fmt"
)

// Sentinel errors for remote call failures. Use errors.Is to classify.
var (
	// ErrUnreachable indicates the catalog service could not be reached at
	// all. Fatal to a run: nothing is seeded behind a dead service.
	ErrUnreachable = errors.New("catalog: service unreachable")

	// ErrDecode indicates the service answered but the body could not be
	// decoded into the expected shape.
	ErrDecode = errors.New("catalog: undecodable response")
)

// StatusError reports a response with an unexpected HTTP status. The body
// is truncated to keep diagnostics readable.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("catalog: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("catalog: unexpected status %d: %s", e.Status, e.Body)
}

func statusError(status int, body []byte) *StatusError {
	preview := string(body)
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	return &StatusError{Status: status, Body: preview}
}
