package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCompletion is returned when the provider answers without any text.
	ErrEmptyCompletion = errors.New("provider returned no content")
	// ErrInvalidJSON means the reply is not JSON once fences are removed.
	ErrInvalidJSON = errors.New("reply is not valid JSON")
	// ErrUnexpectedShape means the reply is JSON but does not match the expected object.
	ErrUnexpectedShape = errors.New("reply JSON has unexpected shape")
)

const fence = "```"

// StripCodeFence removes a markdown code fence wrapped around a model reply.
// The opening fence may carry a language tag ("```json"); anything that is not
// a fenced block is returned trimmed but otherwise untouched.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, fence) {
		s = strings.TrimPrefix(s, fence)
		// Drop the info string, e.g. "json" in "```json".
		s = strings.TrimSpace(strings.TrimLeftFunc(s, isInfoRune))
	}
	if strings.HasSuffix(s, fence) {
		s = strings.TrimSpace(strings.TrimSuffix(s, fence))
	}
	return s
}

// DecodeJSON strips fences from text and decodes the remaining JSON object
// into v. Syntax errors wrap ErrInvalidJSON; type mismatches and non-object
// payloads wrap ErrUnexpectedShape.
func DecodeJSON(text string, v any) error {
	body := StripCodeFence(text)
	if !json.Valid([]byte(body)) {
		return fmt.Errorf("%w: %s", ErrInvalidJSON, preview(body))
	}
	if !strings.HasPrefix(body, "{") {
		return fmt.Errorf("%w: expected an object", ErrUnexpectedShape)
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return nil
}

func preview(s string) string {
	const limit = 80
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

func isInfoRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_'
}
