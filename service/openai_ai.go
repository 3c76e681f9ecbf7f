package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/mazikuben/construction-be/types"
)

type OpenAIAssistant struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIAssistant(baseURL, apiKey, model string, timeout time.Duration) *OpenAIAssistant {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL // Set this to your local LLM server URL
	}
	return &OpenAIAssistant{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		timeout: timeout,
	}
}

func (s *OpenAIAssistant) Complete(ctx context.Context, messages []types.AssistMessage) (string, error) {
	openaiMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		role := openai.ChatMessageRoleUser
		if msg.Role == "system" {
			role = openai.ChatMessageRoleSystem
		}
		if msg.ImageBase64 != "" {
			openaiMessages = append(openaiMessages, openai.ChatCompletionMessage{
				Role: role,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: msg.Text,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: "data:image/jpeg;base64," + msg.ImageBase64,
						},
					},
				},
			})
			continue
		}
		openaiMessages = append(openaiMessages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Text,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Messages: openaiMessages,
			Model:    s.model,
		},
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", types.ErrUpstreamTimeout
		}
		return "", fmt.Errorf("%w: %v", types.ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response generated", types.ErrUpstream)
	}
	return resp.Choices[0].Message.Content, nil
}
