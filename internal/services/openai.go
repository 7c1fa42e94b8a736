package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"daoxue-backend/internal/config"
	"daoxue-backend/internal/models"
)

// Fixed sampling parameters for every tutor reply.
const (
	Temperature = 0.7
	MaxTokens   = 800
)

type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(cfg *config.Config) *OpenAIService {
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	model := cfg.OpenAIModel
	if model == "" {
		model = config.DefaultOpenAIModel
	}

	return &OpenAIService{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

// Complete sends one chat completion request and returns the first choice's
// content, or "" when the response carries no choices.
func (s *OpenAIService) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    toOpenAIMessages(messages),
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
		N:           1,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []models.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return out
}

func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamStatusError{
			StatusCode: apiErr.HTTPStatusCode,
			Body:       apiErr.Message,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamStatusError{
			StatusCode: reqErr.HTTPStatusCode,
			Body:       string(reqErr.Body),
		}
	}

	return &UpstreamRequestError{Err: err}
}

// UpstreamStatusError is returned when the completion API answers with a
// non-success status. Body is for server-side logs only.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// UpstreamRequestError covers transport failures and undecodable responses.
type UpstreamRequestError struct{ Err error }

func (e *UpstreamRequestError) Error() string { return "upstream request failed: " + e.Err.Error() }

func (e *UpstreamRequestError) Unwrap() error { return e.Err }
