package product

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"product-copy/internal/llm"
)

// Strategy selects how a Generator produces content. It is fixed at
// construction.
type Strategy int

const (
	StrategyMock Strategy = iota
	StrategyRemote
)

func (s Strategy) String() string {
	switch s {
	case StrategyMock:
		return "mock"
	case StrategyRemote:
		return "remote"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Generator writes product descriptions and keywords. Generate never fails;
// errors are folded into the response.
type Generator struct {
	strategy Strategy
	client   llm.Client
	log      *slog.Logger
	newRand  func() *rand.Rand
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRand sets the random source factory used by the mock strategy. It is
// called once per Generate call.
func WithRand(newRand func() *rand.Rand) Option {
	return func(g *Generator) { g.newRand = newRand }
}

// NewMockGenerator returns a Generator that never calls a provider.
func NewMockGenerator(log *slog.Logger, opts ...Option) *Generator {
	return newGenerator(StrategyMock, nil, log, opts)
}

// NewRemoteGenerator returns a Generator backed by client. A nil client makes
// every call report ErrIntegrationUnavailable.
func NewRemoteGenerator(client llm.Client, log *slog.Logger, opts ...Option) *Generator {
	return newGenerator(StrategyRemote, client, log, opts)
}

func newGenerator(s Strategy, client llm.Client, log *slog.Logger, opts []Option) *Generator {
	if log == nil {
		log = slog.Default()
	}
	g := &Generator{
		strategy: s,
		client:   client,
		log:      log,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Strategy() Strategy { return g.strategy }

// Generate produces a description and keywords for req.
func (g *Generator) Generate(ctx context.Context, req ProductRequest) ProductResponse {
	req = req.WithDefaults()
	if g.strategy == StrategyMock {
		return mockGenerate(g.newRand(), req)
	}

	genID := uuid.New()
	resp, err := g.generateRemote(ctx, req)
	if err != nil {
		g.log.Warn("description generation failed",
			"generation_id", genID, "product", req.ProductName, "err", err)
		return errorResponse(req.ProductName, err)
	}
	g.log.Debug("description generated", "generation_id", genID, "product", req.ProductName, "keywords", len(resp.Keywords))
	return resp
}

type descriptionReply struct {
	Description *string  `json:"description"`
	Keywords    []string `json:"keywords"`
}

func (g *Generator) generateRemote(ctx context.Context, req ProductRequest) (ProductResponse, error) {
	if g.client == nil {
		return ProductResponse{}, ErrIntegrationUnavailable
	}
	text, err := g.client.Complete(ctx, buildDescriptionPrompt(req))
	if err != nil {
		return ProductResponse{}, providerError(err)
	}
	var reply descriptionReply
	if err := llm.DecodeJSON(text, &reply); err != nil {
		return ProductResponse{}, err
	}

	resp := ProductResponse{
		ProductName: req.ProductName,
		Description: failedDescription,
		Keywords:    []string{},
	}
	if reply.Description != nil {
		resp.Description = *reply.Description
	}
	if reply.Keywords != nil {
		resp.Keywords = reply.Keywords
	}
	return resp, nil
}

// providerError tags err as a provider failure unless it already names a
// configuration problem.
func providerError(err error) error {
	if errors.Is(err, ErrMissingCredential) || errors.Is(err, ErrIntegrationUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrProviderCall, err)
}
