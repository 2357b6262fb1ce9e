package llm

import (
	"errors"
	"fmt"
)

// ErrDisabled is wrapped by every failure of the disabled provider.
var ErrDisabled = errors.New("ai provider disabled")

// UpstreamError reports a failed call to the hosted API. Status is the HTTP
// status when the API answered and 0 for network or timeout failures.
type UpstreamError struct {
	Provider string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s upstream error (status %d): %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s upstream error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// EmptyResponseError reports a successful call that carried no text.
type EmptyResponseError struct {
	Provider string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("%s returned an empty response", e.Provider)
}

// MalformedResponseError reports text that could not be parsed into the
// expected JSON shape.
type MalformedResponseError struct {
	Content string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed ai response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IsGatewayError reports whether err is one of the gateway failure kinds,
// all of which callers recover from with canned content.
func IsGatewayError(err error) bool {
	var up *UpstreamError
	var empty *EmptyResponseError
	var malformed *MalformedResponseError
	return errors.As(err, &up) || errors.As(err, &empty) || errors.As(err, &malformed)
}
