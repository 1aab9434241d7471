// Package ai - адаптер провайдера завершений диалога (OpenAI).
// Только здесь роли реплик переводятся из хранимого верхнего регистра
// в нижний регистр, ожидаемый провайдером.
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/robi-baceanu/voyage-vault/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// Client выполняет один запрос завершения диалога без стриминга.
type Client struct {
	api   *openai.Client
	model string
}

// New создает клиента провайдера завершений.
func New(apiKey string) *Client {
	return &Client{api: openai.NewClient(apiKey), model: openai.GPT3Dot5Turbo}
}

// Complete отправляет весь упорядоченный диалог и возвращает одну реплику
// ассистента. Повторных попыток не делается.
func (c *Client) Complete(ctx context.Context, history []model.ChatMessage) (string, error) {
	if len(history) == 0 {
		return "", errors.New("пустой диалог")
	}
	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    providerRole(m.Role),
			Content: m.Content,
		})
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("запрос завершения не выполнен: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("провайдер вернул пустой ответ")
	}
	return resp.Choices[0].Message.Content, nil
}

// providerRole переводит хранимую роль в формат провайдера.
func providerRole(role model.ChatRole) string {
	if role == model.RoleAssistant {
		return openai.ChatMessageRoleAssistant
	}
	return openai.ChatMessageRoleUser
}
