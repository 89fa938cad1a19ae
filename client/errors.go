package client

import "fmt"

// NetworkError is returned when the request could not be sent, or no
// complete response was received before the timeout.
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response was received but did not match
// the expected shape.
type DecodeError struct {
	Err error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}
