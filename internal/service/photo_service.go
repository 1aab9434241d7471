package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/robi-baceanu/voyage-vault/internal/model"

	"github.com/google/uuid"
)

// maxPhotoNotesLen - предел длины подписи к фотографии.
const maxPhotoNotesLen = 500

// PhotoService содержит бизнес-логику, связанную с фотографиями:
// загрузку байтов во внешнее хранилище и учет ссылок в базе.
type PhotoService struct {
	photos PhotoStore
	blobs  BlobStore
	access *AccessService
}

// NewPhotoService создает новый сервис фотографий.
func NewPhotoService(photos PhotoStore, blobs BlobStore, access *AccessService) *PhotoService {
	return &PhotoService{photos: photos, blobs: blobs, access: access}
}

// ListByTrip возвращает фотографии поездки пользователя, новые первыми.
func (s *PhotoService) ListByTrip(userID, tripID int) ([]model.Photo, error) {
	if _, err := s.access.Trip(userID, tripID); err != nil {
		return nil, err
	}
	return s.photos.ListByTrip(tripID)
}

// CreateFromURL регистрирует уже размещенную где-то фотографию по ссылке,
// без загрузки байтов.
func (s *PhotoService) CreateFromURL(userID, tripID int, url string) (*model.Photo, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: пустой URL фотографии", ErrInvalidInput)
	}
	if _, err := s.access.Trip(userID, tripID); err != nil {
		return nil, err
	}
	photo := &model.Photo{TripID: tripID, URL: url}
	id, err := s.photos.Create(photo)
	if err != nil {
		return nil, err
	}
	return s.photos.GetByID(id)
}

// Upload загружает байты фотографии во внешнее хранилище и сохраняет
// полученный URL. Запись в базе создается только после успешной загрузки;
// при отказе хранилища записи не остается.
func (s *PhotoService) Upload(ctx context.Context, userID, tripID int, filename, contentType string, data []byte) (*model.Photo, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: пустой файл", ErrInvalidInput)
	}
	if _, err := s.access.Trip(userID, tripID); err != nil {
		return nil, err
	}
	url, err := s.blobs.Put(ctx, objectKey(filename), contentType, data)
	if err != nil {
		return nil, fmt.Errorf("%w: загрузка фотографии не удалась: %v", ErrUpstream, err)
	}
	photo := &model.Photo{TripID: tripID, URL: url}
	id, err := s.photos.Create(photo)
	if err != nil {
		return nil, err
	}
	return s.photos.GetByID(id)
}

// UpdateNotes заменяет подпись фотографии; пустая строка очищает ее.
func (s *PhotoService) UpdateNotes(userID, photoID int, notes string) (*model.Photo, error) {
	if utf8.RuneCountInString(notes) > maxPhotoNotesLen {
		return nil, fmt.Errorf("%w: подпись длиннее %d символов", ErrInvalidInput, maxPhotoNotesLen)
	}
	if _, err := s.access.Photo(userID, photoID); err != nil {
		return nil, err
	}
	var value *string
	if notes != "" {
		value = &notes
	}
	photo, err := s.photos.UpdateNotes(photoID, value)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return photo, nil
}

// Delete удаляет фотографию; ссылка cover_photo_id у поездки обнуляется
// хранилищем в той же операции. Байты во внешнем хранилище не трогаются.
func (s *PhotoService) Delete(userID, photoID int) error {
	if _, err := s.access.Photo(userID, photoID); err != nil {
		return err
	}
	return s.photos.Delete(photoID)
}

// objectKey строит глобально уникальный ключ объекта: метка времени плюс
// случайный суффикс исключают и коллизии, и перебор имен.
func objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
