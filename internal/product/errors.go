package product

import (
	"errors"
	"fmt"

	"product-copy/internal/llm"
)

var (
	// ErrMissingCredential means no provider key is configured.
	ErrMissingCredential = errors.New("no API key configured")
	// ErrIntegrationUnavailable means the provider client could not be set up.
	ErrIntegrationUnavailable = errors.New("LLM integration unavailable")
	// ErrProviderCall wraps transport, auth, quota and model errors.
	ErrProviderCall = errors.New("provider call failed")
)

const (
	errorMarker         = "[ERROR]"
	failedDescription   = "Description generation failed."
	noKeyAudienceMarker = "No API key configured. Set OPENAI_API_KEY to get audience suggestions."
)

// errorResponse is the single place a generation failure becomes a response.
func errorResponse(productName string, err error) ProductResponse {
	var msg string
	switch {
	case errors.Is(err, ErrMissingCredential):
		msg = "No API key configured. Set OPENAI_API_KEY or enable mock mode (GENERATION_MODE=auto)."
	case errors.Is(err, ErrIntegrationUnavailable):
		msg = fmt.Sprintf("LLM integration unavailable: %v. Configure the provider or unset the API key to use mock mode.", err)
	case errors.Is(err, llm.ErrInvalidJSON), errors.Is(err, llm.ErrUnexpectedShape):
		msg = fmt.Sprintf("LLM returned a malformed response: %v", err)
	default:
		msg = fmt.Sprintf("LLM Generation failed: %v", err)
	}
	return ProductResponse{
		ProductName: productName,
		Description: errorMarker + " " + msg,
		Keywords:    []string{"error"},
	}
}

// audienceErrorResponse is the single place a suggestion failure becomes a response.
func audienceErrorResponse(err error) AudienceResponse {
	var msg string
	switch {
	case errors.Is(err, ErrMissingCredential):
		msg = noKeyAudienceMarker
	case errors.Is(err, llm.ErrInvalidJSON), errors.Is(err, llm.ErrUnexpectedShape):
		msg = fmt.Sprintf("Error parsing audience suggestions: %v", err)
	default:
		msg = fmt.Sprintf("Error generating audience suggestions: %v", err)
	}
	return AudienceResponse{Audiences: []string{msg}}
}
