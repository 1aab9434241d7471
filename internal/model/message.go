package model

import "time"

// ChatRole - роль реплики в диалоге с ассистентом. Хранится в верхнем
// регистре; преобразование под формат провайдера выполняется только
// на границе с ним.
type ChatRole string

const (
	RoleUser      ChatRole = "USER"
	RoleAssistant ChatRole = "ASSISTANT"
)

// ChatMessage представляет одну реплику диалога пользователя с ассистентом.
// Журнал реплик только пополняется; порядок определяется временем создания.
type ChatMessage struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"-"`
	Role      ChatRole  `db:"role" json:"role"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
