package service

import (
	"context"
	"fmt"

	"github.com/SahniNitish/HCI-Project/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// TextGenerator is the narrow boundary the categorizer and advisor depend
// on. Implementations may block for multiple seconds; callers must treat
// every error as a signal to fall back, never as a request failure.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// LLMService wraps the GigaChat client behind TextGenerator. When no API
// key is configured the service still constructs, and every Generate call
// returns ErrLLMUnavailable so AI features degrade instead of the process
// refusing to start.
type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewLLMService(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	if cfg.APIKey == "" {
		logger.Warn("GIGACHAT_API_KEY is not set, AI features will use fallback responses")
		return &LLMService{logger: logger}, nil
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = "You are a helpful personal finance assistant."
	model.Temperature = 0.3

	return &LLMService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrLLMUnavailable
	}

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return resp.Choices[0].Message.Content, nil
}

func (s *LLMService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}
