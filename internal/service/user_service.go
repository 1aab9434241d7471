package service

import (
	"fmt"

	"github.com/robi-baceanu/voyage-vault/internal/model"
)

// UserService содержит бизнес-логику профиля пользователя.
type UserService struct {
	users UserStore
}

// NewUserService создает новый сервис пользователей.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Profile возвращает профиль текущего пользователя.
func (s *UserService) Profile(userID int) (*model.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return user, nil
}

// UpdateProfile применяет частичное обновление профиля.
// Пустой запрос (ни одного поля) отклоняется.
func (s *UserService) UpdateProfile(userID int, patch model.UserPatch) (*model.User, error) {
	if !patch.Name.Set && !patch.Image.Set {
		return nil, fmt.Errorf("%w: укажите name или image", ErrInvalidInput)
	}
	user, err := s.users.Update(userID, patch)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return user, nil
}
