package repository

import (
	"fmt"
	"strings"

	"github.com/robi-baceanu/voyage-vault/internal/model"

	"github.com/jmoiron/sqlx"
)

// TripRepository обеспечивает доступ к данным поездок в базе данных.
type TripRepository struct {
	db *sqlx.DB
}

// NewTripRepository создает новый репозиторий поездок.
func NewTripRepository(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create создает новую поездку для указанного пользователя.
func (r *TripRepository) Create(trip *model.Trip) (int, error) {
	query := `INSERT INTO trips (user_id, title, start_date, end_date, notes)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int
	err := r.db.QueryRow(query, trip.UserID, trip.Title, trip.StartDate, trip.EndDate, trip.Notes).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать поездку: %w", err)
	}
	return id, nil
}

// GetByID возвращает поездку по ID.
func (r *TripRepository) GetByID(id int) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.Get(&trip, "SELECT * FROM trips WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListByUser возвращает поездки пользователя: сначала самые поздние по дате
// начала, при равенстве - созданные последними.
func (r *TripRepository) ListByUser(userID int) ([]model.Trip, error) {
	trips := []model.Trip{}
	err := r.db.Select(&trips,
		"SELECT * FROM trips WHERE user_id=$1 ORDER BY start_date DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка поездок: %w", err)
	}
	return trips, nil
}

// Update применяет частичное обновление поездки. В запрос попадают только
// присутствовавшие поля; null для notes и cover_photo_id записывается как NULL.
func (r *TripRepository) Update(id int, ch model.TripChanges) (*model.Trip, error) {
	sets := []string{}
	args := []interface{}{}
	idx := 1
	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s=$%d", column, idx))
		args = append(args, value)
		idx++
	}
	if ch.Title.Set {
		add("title", ch.Title.Value)
	}
	if ch.StartDate.Set {
		add("start_date", ch.StartDate.Value)
	}
	if ch.EndDate.Set {
		add("end_date", ch.EndDate.Value)
	}
	if ch.Notes.Set {
		if ch.Notes.Valid {
			add("notes", ch.Notes.Value)
		} else {
			sets = append(sets, "notes=NULL")
		}
	}
	if ch.CoverPhotoID.Set {
		if ch.CoverPhotoID.Valid {
			add("cover_photo_id", ch.CoverPhotoID.Value)
		} else {
			sets = append(sets, "cover_photo_id=NULL")
		}
	}
	if len(sets) == 0 {
		return r.GetByID(id)
	}
	query := fmt.Sprintf("UPDATE trips SET %s WHERE id=$%d RETURNING *", strings.Join(sets, ", "), idx)
	args = append(args, id)
	var trip model.Trip
	if err := r.db.Get(&trip, query, args...); err != nil {
		return nil, fmt.Errorf("не удалось обновить поездку: %w", err)
	}
	return &trip, nil
}

// Delete удаляет поездку; фото и метки удаляются каскадом на уровне БД.
// Удаление отсутствующей записи не считается ошибкой.
func (r *TripRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM trips WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить поездку: %w", err)
	}
	return nil
}

// Stats собирает производную сводку по журналу пользователя:
// счетчики и три последние созданные поездки с URL обложки.
func (r *TripRepository) Stats(userID int) (*model.TripStats, error) {
	stats := &model.TripStats{RecentTrips: []model.TripSummary{}}
	if err := r.db.Get(&stats.TotalTrips,
		"SELECT COUNT(*) FROM trips WHERE user_id=$1", userID); err != nil {
		return nil, fmt.Errorf("ошибка при подсчете поездок: %w", err)
	}
	if err := r.db.Get(&stats.TotalPhotos,
		`SELECT COUNT(*) FROM photos p JOIN trips t ON p.trip_id = t.id WHERE t.user_id=$1`, userID); err != nil {
		return nil, fmt.Errorf("ошибка при подсчете фотографий: %w", err)
	}
	if err := r.db.Get(&stats.TotalLocations,
		`SELECT COUNT(*) FROM locations l JOIN trips t ON l.trip_id = t.id WHERE t.user_id=$1`, userID); err != nil {
		return nil, fmt.Errorf("ошибка при подсчете меток: %w", err)
	}
	err := r.db.Select(&stats.RecentTrips,
		`SELECT t.id, t.title, t.start_date, t.end_date, p.url AS cover_photo
		 FROM trips t
		 LEFT JOIN photos p ON t.cover_photo_id = p.id
		 WHERE t.user_id=$1
		 ORDER BY t.created_at DESC, t.id DESC
		 LIMIT 3`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении последних поездок: %w", err)
	}
	return stats, nil
}

// ListPins возвращает все метки пользователя вместе с данными их поездок -
// материал для общей карты журнала.
func (r *TripRepository) ListPins(userID int) ([]model.TripPin, error) {
	pins := []model.TripPin{}
	err := r.db.Select(&pins,
		`SELECT t.id AS trip_id, t.title, l.latitude, l.longitude,
		        t.start_date, t.end_date, p.url AS cover_photo, l.name AS location_name
		 FROM locations l
		 JOIN trips t ON l.trip_id = t.id
		 LEFT JOIN photos p ON t.cover_photo_id = p.id
		 WHERE t.user_id=$1
		 ORDER BY t.start_date DESC, l.created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении меток журнала: %w", err)
	}
	return pins, nil
}
