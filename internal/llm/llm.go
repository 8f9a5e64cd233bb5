package llm

import "context"

// Client is a minimal text-completion interface to allow pluggable providers.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Unavailable is a Client whose every call fails with Err. It stands in for a
// provider that could not be configured, so callers see the reason per call.
type Unavailable struct {
	Err error
}

func (u Unavailable) Complete(ctx context.Context, prompt string) (string, error) {
	return "", u.Err
}
