package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/robi-baceanu/voyage-vault/internal/model"
)

// LocationService содержит бизнес-логику, связанную с метками поездок.
type LocationService struct {
	locations LocationStore
	access    *AccessService
}

// NewLocationService создает новый сервис меток.
func NewLocationService(locations LocationStore, access *AccessService) *LocationService {
	return &LocationService{locations: locations, access: access}
}

// List возвращает метки поездки пользователя в порядке создания.
func (s *LocationService) List(userID, tripID int) ([]model.Location, error) {
	if _, err := s.access.Trip(userID, tripID); err != nil {
		return nil, err
	}
	return s.locations.ListByTrip(tripID)
}

// Add создает метку в поездке пользователя. Координаты приходят текстом
// или числом и обязаны быть конечными числами в допустимых пределах.
func (s *LocationService) Add(userID, tripID int, in model.LocationInput) (*model.Location, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: пустое название метки", ErrInvalidInput)
	}
	lat, err := parseCoordinate(in.Latitude.String(), 90)
	if err != nil {
		return nil, fmt.Errorf("%w: некорректная широта %q", ErrInvalidInput, in.Latitude.String())
	}
	lon, err := parseCoordinate(in.Longitude.String(), 180)
	if err != nil {
		return nil, fmt.Errorf("%w: некорректная долгота %q", ErrInvalidInput, in.Longitude.String())
	}
	if _, err := s.access.Trip(userID, tripID); err != nil {
		return nil, err
	}
	location := &model.Location{TripID: tripID, Name: name, Latitude: lat, Longitude: lon}
	id, err := s.locations.Create(location)
	if err != nil {
		return nil, err
	}
	location.ID = id
	withOwner, err := s.locations.GetWithOwner(id)
	if err != nil {
		return location, nil // метка создана, вернем хотя бы ее
	}
	return &withOwner.Location, nil
}

// Remove удаляет метку. Поездка из пути запроса обязана совпадать с
// поездкой метки, иначе NotFound и метка остается на месте.
func (s *LocationService) Remove(userID, tripID, locationID int) error {
	if _, err := s.access.Location(userID, tripID, locationID); err != nil {
		return err
	}
	return s.locations.Delete(locationID)
}

// parseCoordinate разбирает координату и проверяет конечность и диапазон.
func parseCoordinate(value string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < -limit || v > limit {
		return 0, fmt.Errorf("координата вне диапазона")
	}
	return v, nil
}
