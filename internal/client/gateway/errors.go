package gateway

import "fmt"

// ServerError is a non-2xx response from the referral API. Message holds
// the server-provided message when the body carried one; callers surface
// it to the user or fall back to a localized default when empty.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server rejected request (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server rejected request (status %d)", e.StatusCode)
}
