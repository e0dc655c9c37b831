package errors

import "net/http"

// HTTPError is an error carrying the status and message sent to the client.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates an HTTPError. Codes in the HTTP status range are also
// used as the response status; anything else answers 400.
func NewHTTPError(code int, message string) *HTTPError {
	status := http.StatusBadRequest
	if code >= 400 && code < 600 {
		status = code
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

func (e *HTTPError) Error() string { return e.Message }
