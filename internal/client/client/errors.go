package client

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/ratemystore/internal/common"
)

// APIError is a non-2xx response decoded from the backend's {message} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// Unwrap maps the status onto the client error taxonomy so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return common.ErrorUnauthorized
	}
	return common.ErrRequestFailed
}
