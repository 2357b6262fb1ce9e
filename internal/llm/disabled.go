package llm

import "context"

// DisabledProvider fails every call. It backs AI_PROVIDER=none, under which
// every AI endpoint serves canned content.
type DisabledProvider struct{}

func (DisabledProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &UpstreamError{Provider: "none", Err: ErrDisabled}
}

func (DisabledProvider) ModelID() string {
	return "none"
}
