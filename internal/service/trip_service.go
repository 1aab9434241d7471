package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/robi-baceanu/voyage-vault/internal/model"
)

// TripService содержит бизнес-логику, связанную с поездками.
type TripService struct {
	trips  TripStore
	photos PhotoStore
	access *AccessService
}

// NewTripService создает новый сервис поездок.
func NewTripService(trips TripStore, photos PhotoStore, access *AccessService) *TripService {
	return &TripService{trips: trips, photos: photos, access: access}
}

// Create создает новую поездку текущего пользователя.
func (s *TripService) Create(userID int, in model.TripInput) (*model.Trip, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: пустой заголовок поездки", ErrInvalidInput)
	}
	start, err := parseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	trip := &model.Trip{
		UserID:    userID,
		Title:     title,
		StartDate: start,
		EndDate:   end,
		Notes:     in.Notes,
	}
	id, err := s.trips.Create(trip)
	if err != nil {
		return nil, err
	}
	return s.trips.GetByID(id)
}

// List возвращает поездки пользователя, поздние по дате начала первыми.
func (s *TripService) List(userID int) ([]model.Trip, error) {
	return s.trips.ListByUser(userID)
}

// Get возвращает поездку пользователя.
func (s *TripService) Get(userID, tripID int) (*model.Trip, error) {
	return s.access.Trip(userID, tripID)
}

// Update применяет частичное обновление поездки: отсутствующие поля не
// трогаются, null очищает notes и coverPhotoId. Обложкой может стать
// только фото этой же поездки.
func (s *TripService) Update(userID, tripID int, patch model.TripPatch) (*model.Trip, error) {
	if _, err := s.access.Trip(userID, tripID); err != nil {
		return nil, err
	}
	var ch model.TripChanges
	if patch.Title.Set {
		if !patch.Title.Valid || strings.TrimSpace(patch.Title.Value) == "" {
			return nil, fmt.Errorf("%w: заголовок нельзя очистить", ErrInvalidInput)
		}
		ch.Title = model.Some(strings.TrimSpace(patch.Title.Value))
	}
	if patch.StartDate.Set {
		if !patch.StartDate.Valid {
			return nil, fmt.Errorf("%w: дату начала нельзя очистить", ErrInvalidInput)
		}
		start, err := parseDate(patch.StartDate.Value)
		if err != nil {
			return nil, err
		}
		ch.StartDate = model.Some(start)
	}
	if patch.EndDate.Set {
		if !patch.EndDate.Valid {
			return nil, fmt.Errorf("%w: дату окончания нельзя очистить", ErrInvalidInput)
		}
		end, err := parseDate(patch.EndDate.Value)
		if err != nil {
			return nil, err
		}
		ch.EndDate = model.Some(end)
	}
	ch.Notes = patch.Notes
	if patch.CoverPhotoID.Set {
		if patch.CoverPhotoID.Valid {
			photo, err := s.photos.GetByID(patch.CoverPhotoID.Value)
			if err != nil || photo.TripID != tripID {
				return nil, fmt.Errorf("%w: обложкой может быть только фото этой поездки", ErrInvalidInput)
			}
		}
		ch.CoverPhotoID = patch.CoverPhotoID
	}
	trip, err := s.trips.Update(tripID, ch)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return trip, nil
}

// Delete удаляет поездку пользователя вместе с ее фото и метками.
func (s *TripService) Delete(userID, tripID int) error {
	if _, err := s.access.Trip(userID, tripID); err != nil {
		return err
	}
	return s.trips.Delete(tripID)
}

// Stats возвращает сводку по журналу пользователя.
func (s *TripService) Stats(userID int) (*model.TripStats, error) {
	return s.trips.Stats(userID)
}

// Pins возвращает все метки пользователя с данными их поездок.
func (s *TripService) Pins(userID int) ([]model.TripPin, error) {
	return s.trips.ListPins(userID)
}

// parseDate принимает дату в RFC 3339 либо в коротком виде "2006-01-02".
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: не удалось разобрать дату %q", ErrInvalidInput, value)
}
