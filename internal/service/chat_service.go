package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/robi-baceanu/voyage-vault/internal/model"
)

// ChatService управляет журналом диалога пользователя с ассистентом.
// Журнал только пополняется; порядок реплик определяется временем создания.
type ChatService struct {
	messages MessageStore
	ai       Completer
}

// NewChatService создает новый сервис диалога.
func NewChatService(messages MessageStore, ai Completer) *ChatService {
	return &ChatService{messages: messages, ai: ai}
}

// History возвращает весь диалог пользователя, старые реплики первыми.
func (s *ChatService) History(userID int) ([]model.ChatMessage, error) {
	return s.messages.ListByUser(userID)
}

// Send дописывает реплику пользователя, отправляет провайдеру весь диалог
// и дописывает ответ ассистента. Реплика пользователя сохраняется до
// обращения к провайдеру и при его отказе НЕ откатывается: журнал всегда
// отражает то, что пользователь отправил, даже если ответа не было.
func (s *ChatService) Send(ctx context.Context, userID int, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: пустое сообщение", ErrInvalidInput)
	}
	userMsg := &model.ChatMessage{UserID: userID, Role: model.RoleUser, Content: text}
	if err := s.messages.Save(userMsg); err != nil {
		return "", err
	}
	history, err := s.messages.ListByUser(userID)
	if err != nil {
		return "", err
	}
	reply, err := s.ai.Complete(ctx, history)
	if err != nil {
		return "", fmt.Errorf("%w: ассистент не ответил: %v", ErrUpstream, err)
	}
	assistantMsg := &model.ChatMessage{UserID: userID, Role: model.RoleAssistant, Content: reply}
	if err := s.messages.Save(assistantMsg); err != nil {
		return "", err
	}
	return reply, nil
}

// Clear безвозвратно очищает диалог пользователя. Подтверждение -
// забота клиента; сервер выполняет удаление безусловно.
func (s *ChatService) Clear(userID int) error {
	return s.messages.DeleteByUser(userID)
}
