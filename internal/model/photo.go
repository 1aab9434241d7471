package model

import "time"

// Photo представляет фотографию поездки. Хранится только публичный URL,
// сами байты лежат во внешнем объектном хранилище.
type Photo struct {
	ID        int       `db:"id" json:"id"`
	TripID    int       `db:"trip_id" json:"tripId"`
	URL       string    `db:"url" json:"url"`
	Notes     *string   `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// PhotoWithOwner - фото с проекцией владельца его поездки,
// используется при проверке прав доступа.
type PhotoWithOwner struct {
	Photo
	OwnerID int `db:"owner_id"`
}
