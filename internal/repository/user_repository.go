package repository

import (
	"fmt"
	"strings"

	"github.com/robi-baceanu/voyage-vault/internal/model"

	"github.com/jmoiron/sqlx"
)

// UserRepository обеспечивает доступ к данным пользователей в базе данных.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт новый репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create добавляет нового пользователя. Возвращает ID созданной записи.
func (r *UserRepository) Create(user *model.User) (int, error) {
	query := `INSERT INTO users (email, password, name, image)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	var id int
	err := r.db.QueryRow(query, user.Email, user.Password, user.Name, user.Image).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать пользователя: %w", err)
	}
	return id, nil
}

// GetByEmail ищет пользователя по email.
func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE email=$1", email)
	if err != nil {
		// sqlx.Get возвращает sql.ErrNoRows, если не найдено
		return nil, err
	}
	return &user, nil
}

// GetByID возвращает пользователя по внутреннему идентификатору.
func (r *UserRepository) GetByID(id int) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update применяет частичное обновление профиля: изменяются только поля,
// присутствовавшие в запросе; явный null записывается как NULL.
func (r *UserRepository) Update(id int, patch model.UserPatch) (*model.User, error) {
	sets := []string{}
	args := []interface{}{}
	idx := 1
	if patch.Name.Set {
		if patch.Name.Valid {
			sets = append(sets, fmt.Sprintf("name=$%d", idx))
			args = append(args, patch.Name.Value)
			idx++
		} else {
			sets = append(sets, "name=NULL")
		}
	}
	if patch.Image.Set {
		if patch.Image.Valid {
			sets = append(sets, fmt.Sprintf("image=$%d", idx))
			args = append(args, patch.Image.Value)
			idx++
		} else {
			sets = append(sets, "image=NULL")
		}
	}
	if len(sets) == 0 {
		return r.GetByID(id)
	}
	query := fmt.Sprintf("UPDATE users SET %s WHERE id=$%d RETURNING *", strings.Join(sets, ", "), idx)
	args = append(args, id)
	var user model.User
	if err := r.db.Get(&user, query, args...); err != nil {
		return nil, fmt.Errorf("не удалось обновить профиль: %w", err)
	}
	return &user, nil
}
