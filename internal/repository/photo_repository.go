package repository

import (
	"fmt"

	"github.com/robi-baceanu/voyage-vault/internal/model"

	"github.com/jmoiron/sqlx"
)

// PhotoRepository обеспечивает доступ к данным фотографий в базе данных.
type PhotoRepository struct {
	db *sqlx.DB
}

// NewPhotoRepository создает новый репозиторий фотографий.
func NewPhotoRepository(db *sqlx.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create сохраняет новую фотографию (только ссылку на внешнее хранилище).
func (r *PhotoRepository) Create(photo *model.Photo) (int, error) {
	query := `INSERT INTO photos (trip_id, url, notes) VALUES ($1, $2, $3) RETURNING id`
	var id int
	err := r.db.QueryRow(query, photo.TripID, photo.URL, photo.Notes).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось сохранить фотографию: %w", err)
	}
	return id, nil
}

// GetByID возвращает фотографию по ID.
func (r *PhotoRepository) GetByID(id int) (*model.Photo, error) {
	var photo model.Photo
	err := r.db.Get(&photo, "SELECT * FROM photos WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// GetWithOwner возвращает фотографию вместе с владельцем ее поездки -
// минимальная проекция родительской цепочки для проверки прав.
func (r *PhotoRepository) GetWithOwner(id int) (*model.PhotoWithOwner, error) {
	var photo model.PhotoWithOwner
	err := r.db.Get(&photo,
		`SELECT p.*, t.user_id AS owner_id
		 FROM photos p JOIN trips t ON p.trip_id = t.id
		 WHERE p.id=$1`, id)
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// ListByTrip возвращает фотографии поездки, новые первыми.
func (r *PhotoRepository) ListByTrip(tripID int) ([]model.Photo, error) {
	photos := []model.Photo{}
	err := r.db.Select(&photos,
		"SELECT * FROM photos WHERE trip_id=$1 ORDER BY created_at DESC, id DESC", tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении фотографий поездки: %w", err)
	}
	return photos, nil
}

// UpdateNotes заменяет подпись фотографии (nil очищает поле).
func (r *PhotoRepository) UpdateNotes(id int, notes *string) (*model.Photo, error) {
	var photo model.Photo
	err := r.db.Get(&photo, "UPDATE photos SET notes=$1 WHERE id=$2 RETURNING *", notes, id)
	if err != nil {
		return nil, fmt.Errorf("не удалось обновить подпись фотографии: %w", err)
	}
	return &photo, nil
}

// Delete удаляет фотографию и в той же транзакции обнуляет ссылку
// cover_photo_id у поездки, если фото было обложкой: висячая ссылка
// не должна быть видна ни одному последующему чтению.
func (r *PhotoRepository) Delete(id int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("UPDATE trips SET cover_photo_id=NULL WHERE cover_photo_id=$1", id); err != nil {
		tx.Rollback()
		return fmt.Errorf("не удалось снять фото с обложки: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM photos WHERE id=$1", id); err != nil {
		tx.Rollback()
		return fmt.Errorf("не удалось удалить фотографию: %w", err)
	}
	return tx.Commit()
}
