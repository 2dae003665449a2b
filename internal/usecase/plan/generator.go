package plan

import (
	"context"
	"errors"
	"fmt"

	"fitness-app/internal/config"
	"fitness-app/internal/domain/training"
	"fitness-app/pkg/llm"
	"fitness-app/pkg/logger"
)

// Generator получает от модели документ плана и проверяет его.
// Состояния между вызовами не хранит, безопасен для конкурентного использования.
type Generator struct {
	client      llm.Client
	model       string
	temperature float32
	log         logger.Logger
}

func NewGenerator(client llm.Client, cfg *config.LLMConfig, log logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		log:         log,
	}
}

// Generate делает ровно один запрос к модели. Повторов нет: любая ошибка
// возвращается вызывающему с одним из классов ErrTransportFailure,
// ErrMalformedResponse или ErrSchemaViolation.
func (g *Generator) Generate(ctx context.Context, p PromptParams) (*training.Document, error) {
	prompt := BuildPrompt(p)

	text, err := g.client.Complete(ctx, llm.CompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: SystemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, g.fail(fmt.Errorf("%w: %w", ErrTransportFailure, err), nil)
	}

	// сам ответ в ошибку и лог не попадает, только его длина
	value, err := training.ParseValue([]byte(text))
	if err != nil {
		return nil, g.fail(fmt.Errorf("%w: %w", ErrMalformedResponse, err), map[string]any{
			"response_len": len(text),
		})
	}

	doc, err := training.ValidateDocument(value)
	if err != nil {
		fields := map[string]any{"response_len": len(text)}
		var se *training.SchemaError
		if errors.As(err, &se) {
			fields["path"] = se.Path
			fields["reason"] = se.Reason
		}
		return nil, g.fail(fmt.Errorf("%w: %w", ErrSchemaViolation, err), fields)
	}

	g.log.Info("plan generated", map[string]any{
		"model": g.model,
		"days":  len(doc.Days),
	})
	return doc, nil
}

func (g *Generator) fail(err error, fields map[string]any) error {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["kind"] = KindOf(err)
	fields["model"] = g.model
	fields["error"] = err
	g.log.Warn("plan generation failed", fields)
	return err
}
