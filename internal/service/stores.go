package service

import (
	"context"

	"github.com/robi-baceanu/voyage-vault/internal/model"
)

// Интерфейсы слоя хранения, через которые сервисы обращаются к данным.
// Реализации находятся в internal/repository; в тестах подставляются
// хранилища в памяти.

// UserStore - операции над пользователями.
type UserStore interface {
	Create(user *model.User) (int, error)
	GetByEmail(email string) (*model.User, error)
	GetByID(id int) (*model.User, error)
	Update(id int, patch model.UserPatch) (*model.User, error)
}

// TripStore - операции над поездками.
type TripStore interface {
	Create(trip *model.Trip) (int, error)
	GetByID(id int) (*model.Trip, error)
	ListByUser(userID int) ([]model.Trip, error)
	Update(id int, ch model.TripChanges) (*model.Trip, error)
	Delete(id int) error
	Stats(userID int) (*model.TripStats, error)
	ListPins(userID int) ([]model.TripPin, error)
}

// PhotoStore - операции над фотографиями. Delete обязан в той же
// логической операции обнулить cover_photo_id у поездки-владельца.
type PhotoStore interface {
	Create(photo *model.Photo) (int, error)
	GetByID(id int) (*model.Photo, error)
	GetWithOwner(id int) (*model.PhotoWithOwner, error)
	ListByTrip(tripID int) ([]model.Photo, error)
	UpdateNotes(id int, notes *string) (*model.Photo, error)
	Delete(id int) error
}

// LocationStore - операции над метками.
type LocationStore interface {
	Create(location *model.Location) (int, error)
	GetWithOwner(id int) (*model.LocationWithOwner, error)
	ListByTrip(tripID int) ([]model.Location, error)
	Delete(id int) error
}

// MessageStore - операции над журналом диалога.
type MessageStore interface {
	Save(msg *model.ChatMessage) error
	ListByUser(userID int) ([]model.ChatMessage, error)
	DeleteByUser(userID int) error
}

// BlobStore - внешнее объектное хранилище: кладет байты по ключу
// и возвращает публичный URL. Удаление объектов не требуется.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Completer - провайдер завершений диалога: принимает весь упорядоченный
// диалог и возвращает одну реплику ассистента.
type Completer interface {
	Complete(ctx context.Context, history []model.ChatMessage) (string, error)
}
