package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// OpenAIClient calls the OpenAI Chat Completions API.
type OpenAIClient struct {
	model       openai.ChatModel
	temperature float64
	system      string
	client      *openai.Client
}

const (
	defaultModel           = "gpt-3.5-turbo"
	defaultChatTimeout     = 30 * time.Second
	defaultChatTemperature = 0.7
	defaultSystemPrompt    = "You are a professional copywriter."
)

// Options tunes an OpenAIClient. Zero values fall back to defaults.
type Options struct {
	Model       string
	BaseURL     string
	Temperature float64
	System      string
}

// NewOpenAIClient builds a client against api.openai.com or opts.BaseURL.
func NewOpenAIClient(apiKey string, opts Options) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	model := openai.ChatModel(opts.Model)
	if model == "" {
		model = defaultModel
	}
	temp := opts.Temperature
	if temp <= 0 {
		temp = defaultChatTemperature
	}
	system := opts.System
	if system == "" {
		system = defaultSystemPrompt
	}
	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	// The service never retries a provider call.
	reqOpts = append(reqOpts, option.WithMaxRetries(0))
	cli := openai.NewClient(reqOpts...)
	return &OpenAIClient{
		model:       model,
		temperature: temp,
		system:      system,
		client:      &cli,
	}, nil
}

// Complete sends prompt as the user message and asks for a JSON object back.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil openai client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultChatTimeout)
	defer cancel()
	resp, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    buildMessages(c.system, prompt),
		Temperature: openai.Float(c.temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}
