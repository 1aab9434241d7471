package service

import "errors"

// Классы ошибок бизнес-логики. Обработчики переводят их в HTTP-статусы
// через errors.Is; подробности дописываются через fmt.Errorf("%w: ...").
var (
	// ErrNotFound возвращается и для отсутствующих, и для чужих записей:
	// существование чужой записи не раскрывается.
	ErrNotFound = errors.New("запись не найдена")

	// ErrInvalidInput - отсутствующие или некорректные поля запроса.
	ErrInvalidInput = errors.New("некорректные входные данные")

	// ErrEmailTaken - попытка регистрации на занятый email.
	ErrEmailTaken = errors.New("пользователь с таким email уже существует")

	// ErrInvalidCredentials - неверная пара email/пароль.
	ErrInvalidCredentials = errors.New("неверный email или пароль")

	// ErrUpstream - отказ внешнего сервиса (хранилище, ассистент, геокодер).
	// Повторных попыток не делается, ошибка отдается вызывающему как есть.
	ErrUpstream = errors.New("внешний сервис недоступен")
)
