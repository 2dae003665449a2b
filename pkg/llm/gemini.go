package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"fitness-app/internal/config"
)

type geminiClient struct {
	client *genai.Client
}

// NewGeminiClient создаёт клиента Gemini API.
func NewGeminiClient(ctx context.Context, cfg *config.LLMConfig) (Client, error) {
	gc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		gc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, gc)
	if err != nil {
		return nil, fmt.Errorf("llm: create gemini client: %w", err)
	}
	return &geminiClient{client: client}, nil
}

// Complete склеивает системные сообщения в SystemInstruction,
// остальные уходят пользовательским текстом.
func (c *geminiClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	var system, user []string
	for _, m := range req.Messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		user = append(user, m.Content)
	}

	temperature := req.Temperature
	gcfg := &genai.GenerateContentConfig{Temperature: &temperature}
	if len(system) > 0 {
		gcfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}}}
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, genai.Text(strings.Join(user, "\n\n")), gcfg)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
