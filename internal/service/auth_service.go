package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/robi-baceanu/voyage-vault/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthClaims - содержимое сессионного токена.
type AuthClaims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthService отвечает за регистрацию пользователей и выдачу сессионных
// токенов. Пароль хранится только в виде bcrypt-хеша.
type AuthService struct {
	users    UserStore
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), tokenTTL: 7 * 24 * time.Hour}
}

// SignUp регистрирует нового пользователя. Возвращает ErrEmailTaken,
// если email уже занят.
func (s *AuthService) SignUp(name *string, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email и пароль обязательны", ErrInvalidInput)
	}
	if _, err := s.users.GetByEmail(email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("не удалось захешировать пароль: %w", err)
	}
	user := &model.User{Email: email, Password: string(hash), Name: name}
	if _, err := s.users.Create(user); err != nil {
		// Гонка двух регистраций разрешается уникальным индексом по email
		return ErrEmailTaken
	}
	return nil
}

// SignIn проверяет пару email/пароль и возвращает подписанный токен
// вместе с данными пользователя.
func (s *AuthService) SignIn(email, password string) (string, *model.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.issueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// issueToken подписывает сессионный токен с ID пользователя.
func (s *AuthService) issueToken(userID int) (string, error) {
	claims := AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("не удалось подписать токен: %w", err)
	}
	return signed, nil
}
