package controld

import (
	"encoding/json"
	"fmt"
)

// APIError is returned when the API answers with a non-200 status. Code
// and Message carry the vendor error envelope when the body is JSON;
// both are zero when the body is not parseable.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP Status: %d | Error Code: %d | Message: %s",
		e.StatusCode, e.Code, e.Message)
}

// newAPIError builds an APIError from a failed response body. Non-JSON
// bodies yield a status-only error.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var envelope struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}
