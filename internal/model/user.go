package model

import "time"

// User представляет учетную запись путешественника.
type User struct {
	ID        int       `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"` // bcrypt-хеш, наружу не отдается
	Name      *string   `db:"name" json:"name"`
	Image     *string   `db:"image" json:"image"` // URL аватара
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// UserPatch описывает частичное обновление профиля: отсутствующее поле
// остается без изменений, явный null очищает значение.
type UserPatch struct {
	Name  Optional[string] `json:"name"`
	Image Optional[string] `json:"image"`
}
