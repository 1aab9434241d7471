package repository

import (
	"fmt"

	"github.com/robi-baceanu/voyage-vault/internal/model"

	"github.com/jmoiron/sqlx"
)

// MessageRepository обеспечивает сохранение и чтение реплик диалога
// с ассистентом. Журнал только пополняется, правка реплик не предусмотрена.
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository создает новый репозиторий реплик.
func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Save сохраняет новую реплику и заполняет ID и время создания.
func (r *MessageRepository) Save(msg *model.ChatMessage) error {
	err := r.db.QueryRow(
		`INSERT INTO chat_messages (user_id, role, content)
		 VALUES ($1, $2, $3) RETURNING id, created_at`,
		msg.UserID, msg.Role, msg.Content).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении реплики: %w", err)
	}
	return nil
}

// ListByUser возвращает весь диалог пользователя, старые реплики первыми.
func (r *MessageRepository) ListByUser(userID int) ([]model.ChatMessage, error) {
	messages := []model.ChatMessage{}
	err := r.db.Select(&messages,
		"SELECT * FROM chat_messages WHERE user_id=$1 ORDER BY created_at, id", userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении диалога: %w", err)
	}
	return messages, nil
}

// DeleteByUser очищает диалог пользователя целиком.
func (r *MessageRepository) DeleteByUser(userID int) error {
	_, err := r.db.Exec("DELETE FROM chat_messages WHERE user_id=$1", userID)
	if err != nil {
		return fmt.Errorf("не удалось очистить диалог: %w", err)
	}
	return nil
}
