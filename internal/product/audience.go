package product

import (
	"context"
	"log/slog"

	"product-copy/internal/llm"
)

// Suggester asks the provider for target audiences. It has no local fallback.
type Suggester struct {
	client llm.Client
	log    *slog.Logger
}

// NewSuggester returns a Suggester backed by client. Pass
// llm.Unavailable{Err: ErrMissingCredential} when no key is configured.
func NewSuggester(client llm.Client, log *slog.Logger) *Suggester {
	if log == nil {
		log = slog.Default()
	}
	return &Suggester{client: client, log: log}
}

type audienceReply struct {
	Audiences []string `json:"audiences"`
}

// Suggest returns candidate audiences for req, or a single error string.
func (s *Suggester) Suggest(ctx context.Context, req AudienceRequest) AudienceResponse {
	audiences, err := s.suggest(ctx, req)
	if err != nil {
		s.log.Warn("audience suggestion failed", "product", req.ProductName, "err", err)
		return audienceErrorResponse(err)
	}
	return AudienceResponse{Audiences: audiences}
}

func (s *Suggester) suggest(ctx context.Context, req AudienceRequest) ([]string, error) {
	if s.client == nil {
		return nil, ErrMissingCredential
	}
	text, err := s.client.Complete(ctx, buildAudiencePrompt(req))
	if err != nil {
		return nil, providerError(err)
	}
	var reply audienceReply
	if err := llm.DecodeJSON(text, &reply); err != nil {
		return nil, err
	}
	if reply.Audiences == nil {
		return []string{}, nil
	}
	return reply.Audiences, nil
}
