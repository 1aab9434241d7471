package repository

import (
	"fmt"

	"github.com/robi-baceanu/voyage-vault/internal/model"

	"github.com/jmoiron/sqlx"
)

// LocationRepository обеспечивает доступ к данным географических меток.
type LocationRepository struct {
	db *sqlx.DB
}

// NewLocationRepository создает новый репозиторий меток.
func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create сохраняет новую метку поездки.
func (r *LocationRepository) Create(location *model.Location) (int, error) {
	query := `INSERT INTO locations (trip_id, name, latitude, longitude)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	var id int
	err := r.db.QueryRow(query, location.TripID, location.Name, location.Latitude, location.Longitude).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось сохранить метку: %w", err)
	}
	return id, nil
}

// GetWithOwner возвращает метку вместе с владельцем ее поездки.
func (r *LocationRepository) GetWithOwner(id int) (*model.LocationWithOwner, error) {
	var location model.LocationWithOwner
	err := r.db.Get(&location,
		`SELECT l.*, t.user_id AS owner_id
		 FROM locations l JOIN trips t ON l.trip_id = t.id
		 WHERE l.id=$1`, id)
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// ListByTrip возвращает метки поездки в порядке создания.
func (r *LocationRepository) ListByTrip(tripID int) ([]model.Location, error) {
	locations := []model.Location{}
	err := r.db.Select(&locations,
		"SELECT * FROM locations WHERE trip_id=$1 ORDER BY created_at, id", tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении меток поездки: %w", err)
	}
	return locations, nil
}

// Delete удаляет метку. Удаление отсутствующей записи не считается ошибкой.
func (r *LocationRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM locations WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить метку: %w", err)
	}
	return nil
}
