package client

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
)

// APIError is returned for any non-2xx upstream response.
type APIError struct {
	StatusCode int
	// Message is the "error" field of the response body, when present.
	Message string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Message)
	}
	if e.Body != "" {
		return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// UpstreamMessage returns the upstream "error" field carried by err, if any.
func UpstreamMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// parseErrorResponse builds an APIError from a failed response body.
func parseErrorResponse(statusCode int, body []byte) error {
	apiErr := &APIError{StatusCode: statusCode, Body: string(body)}
	var errResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		apiErr.Message = errResp.Error
	}
	return apiErr
}
