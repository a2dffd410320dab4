package api

import "fmt"

// TransportError is returned for any non-2xx upstream response.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// DecodeError is returned when an upstream body cannot be unmarshalled
// into the expected shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
