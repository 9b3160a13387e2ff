package client

import "fmt"

const (
	msgFillAllFields  = "Please fill out all fields."
	msgSomethingWrong = "Something went wrong."
	msgSentDefault    = "Message sent successfully!"
)

// ValidationError is a local check that failed before anything was sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UpstreamError is a non-2xx answer from the API. Message is the server's
// error text, or a generic fallback when it sent none.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}
