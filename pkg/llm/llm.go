// Package llm содержит клиентов языковых моделей, которыми пользуется
// генерация тренировочных планов. Все провайдеры скрыты за интерфейсом Client.
package llm

import (
	"context"
	"errors"
	"fmt"

	"fitness-app/internal/config"
)

// Role — роль автора сообщения в диалоге с моделью.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Message struct {
	Role    Role
	Content string
}

// CompletionRequest описывает запрос на одно завершение чата.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	Temperature float32
}

// ErrEmptyResponse возвращается, если провайдер ответил без единого варианта текста.
var ErrEmptyResponse = errors.New("llm: empty response")

// Client отправляет запрос модели и возвращает сырой текст первого ответа.
// Любая ошибка сети, авторизации или квоты возвращается как есть.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// New выбирает реализацию по cfg.Provider.
func New(ctx context.Context, cfg *config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case config.LLMProviderOpenAI, "":
		return NewOpenAIClient(cfg), nil
	case config.LLMProviderGemini:
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}
