package generator

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/models"
)

type implOpenAI struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAI creates a Generator for the OpenAI chat completions API or any
// gateway compatible with it (set BaseURL).
func NewOpenAI(cfg config.OpenAIConfig, log logger.Logger) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &implOpenAI{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
		logger: log,
	}, nil
}

func (o *implOpenAI) GenerateNotes(ctx context.Context, transcript string, attempt int) (models.Notes, error) {
	var notes models.Notes
	text, err := o.complete(ctx, SystemPrompt(), UserPrompt(transcript, attempt))
	if err != nil {
		return notes, err
	}
	if err := decodeJSON(text, &notes); err != nil {
		return models.Notes{}, err
	}
	return notes, nil
}

func (o *implOpenAI) GenerateLatex(ctx context.Context, transcript string, attempt int) (models.LatexNotes, error) {
	var notes models.LatexNotes
	text, err := o.complete(ctx, LatexSystemPrompt(), LatexUserPrompt(transcript, attempt))
	if err != nil {
		return notes, err
	}
	if err := decodeJSON(text, &notes); err != nil {
		return models.LatexNotes{}, err
	}
	return notes, nil
}

func (o *implOpenAI) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyResponse
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonLength {
		o.logger.Warn(ctx, "Model %s stopped at the output limit", o.model)
	}
	return choice.Message.Content, nil
}
