package service

import (
	"database/sql"
	"errors"

	"github.com/robi-baceanu/voyage-vault/internal/model"
)

// AccessService - единственный механизм авторизации в системе: по цепочке
// владения (метка -> поездка -> пользователь) проверяет, что запись
// принадлежит запрашивающему. Отсутствующая и чужая запись неразличимы
// для вызывающего - обе дают ErrNotFound.
type AccessService struct {
	trips     TripStore
	photos    PhotoStore
	locations LocationStore
}

// NewAccessService создает новый сервис проверки прав доступа.
func NewAccessService(trips TripStore, photos PhotoStore, locations LocationStore) *AccessService {
	return &AccessService{trips: trips, photos: photos, locations: locations}
}

// Trip возвращает поездку, если она принадлежит пользователю.
func (s *AccessService) Trip(userID, tripID int) (*model.Trip, error) {
	trip, err := s.trips.GetByID(tripID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if trip.UserID != userID {
		return nil, ErrNotFound
	}
	return trip, nil
}

// Photo возвращает фотографию, если поездка-владелец принадлежит пользователю.
func (s *AccessService) Photo(userID, photoID int) (*model.Photo, error) {
	photo, err := s.photos.GetWithOwner(photoID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if photo.OwnerID != userID {
		return nil, ErrNotFound
	}
	return &photo.Photo, nil
}

// Location возвращает метку, если ее поездка принадлежит пользователю и
// совпадает с поездкой из пути запроса: одного ID метки недостаточно,
// иначе подбором ID можно было бы удалять метки чужих маршрутов.
func (s *AccessService) Location(userID, tripID, locationID int) (*model.Location, error) {
	location, err := s.locations.GetWithOwner(locationID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if location.OwnerID != userID || location.TripID != tripID {
		return nil, ErrNotFound
	}
	return &location.Location, nil
}

// notFoundOr переводит "нет строки" в ErrNotFound, остальные ошибки
// хранилища отдает без изменений.
func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
