package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/mazikuben/construction-be/types"
)

type GeminiAssistant struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewGeminiAssistant(apiKey, modelName string, timeout time.Duration) (*GeminiAssistant, error) {
	if apiKey == "" {
		return nil, errors.New("no API key provided")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiAssistant{
		client:  client,
		model:   client.GenerativeModel(modelName),
		timeout: timeout,
	}, nil
}

func (s *GeminiAssistant) Close() error {
	return s.client.Close()
}

func (s *GeminiAssistant) Complete(ctx context.Context, messages []types.AssistMessage) (string, error) {
	parts := make([]genai.Part, 0, len(messages))
	for _, msg := range messages {
		if msg.Text != "" {
			parts = append(parts, genai.Text(msg.Text))
		}
		if msg.ImageBase64 != "" {
			raw, err := base64.StdEncoding.DecodeString(msg.ImageBase64)
			if err != nil {
				return "", fmt.Errorf("%w: bad image encoding", types.ErrValidation)
			}
			parts = append(parts, genai.ImageData("jpeg", raw))
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, parts...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", types.ErrUpstreamTimeout
		}
		return "", fmt.Errorf("%w: %v", types.ErrUpstream, err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no response generated", types.ErrUpstream)
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}
