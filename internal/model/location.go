package model

import (
	"encoding/json"
	"time"
)

// Location представляет географическую метку внутри поездки.
// Операция изменения не предусмотрена: метка создается и удаляется целиком.
type Location struct {
	ID        int       `db:"id" json:"id"`
	TripID    int       `db:"trip_id" json:"tripId"`
	Name      string    `db:"name" json:"name"`
	Latitude  float64   `db:"latitude" json:"latitude"`
	Longitude float64   `db:"longitude" json:"longitude"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// LocationWithOwner - метка с проекцией владельца ее поездки.
type LocationWithOwner struct {
	Location
	OwnerID int `db:"owner_id"`
}

// LocationInput содержит данные для создания метки. Координаты принимаются
// как число или числовая строка и проверяются на уровне сервиса.
type LocationInput struct {
	Latitude  json.Number `json:"latitude" binding:"required"`
	Longitude json.Number `json:"longitude" binding:"required"`
	Name      string      `json:"name" binding:"required"`
}
