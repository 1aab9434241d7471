package model

import "time"

// Trip представляет поездку, принадлежащую одному пользователю.
type Trip struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"userId"`
	Title        string    `db:"title" json:"title"`
	StartDate    time.Time `db:"start_date" json:"startDate"`
	EndDate      time.Time `db:"end_date" json:"endDate"`
	Notes        *string   `db:"notes" json:"notes"`
	CoverPhotoID *int      `db:"cover_photo_id" json:"coverPhotoId"` // фото-обложка той же поездки
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// TripInput содержит данные для создания поездки. Даты передаются строками
// (RFC 3339 или "2006-01-02") и разбираются на уровне сервиса.
type TripInput struct {
	Title     string  `json:"title" binding:"required"`
	StartDate string  `json:"startDate" binding:"required"`
	EndDate   string  `json:"endDate" binding:"required"`
	Notes     *string `json:"notes"`
}

// TripPatch описывает частичное обновление поездки. Для notes и
// coverPhotoId null означает очистку; обязательные поля очищать нельзя.
type TripPatch struct {
	Title        Optional[string] `json:"title"`
	StartDate    Optional[string] `json:"startDate"`
	EndDate      Optional[string] `json:"endDate"`
	Notes        Optional[string] `json:"notes"`
	CoverPhotoID Optional[int]    `json:"coverPhotoId"`
}

// TripChanges содержит уже проверенные сервисом изменения поездки
// для слоя хранения (даты разобраны в time.Time).
type TripChanges struct {
	Title        Optional[string]
	StartDate    Optional[time.Time]
	EndDate      Optional[time.Time]
	Notes        Optional[string]
	CoverPhotoID Optional[int]
}

// TripSummary - краткое представление поездки для сводки по журналу.
type TripSummary struct {
	ID         int       `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	StartDate  time.Time `db:"start_date" json:"startDate"`
	EndDate    time.Time `db:"end_date" json:"endDate"`
	CoverPhoto *string   `db:"cover_photo" json:"coverPhoto"`
}

// TripStats - производная сводка по журналу пользователя (не хранится).
type TripStats struct {
	TotalTrips     int           `json:"totalTrips"`
	TotalPhotos    int           `json:"totalPhotos"`
	TotalLocations int           `json:"totalLocations"`
	RecentTrips    []TripSummary `json:"recentTrips"`
}

// TripPin - точка на общей карте: локация вместе с данными ее поездки.
type TripPin struct {
	TripID       int       `db:"trip_id" json:"tripId"`
	Title        string    `db:"title" json:"title"`
	Latitude     float64   `db:"latitude" json:"latitude"`
	Longitude    float64   `db:"longitude" json:"longitude"`
	StartDate    time.Time `db:"start_date" json:"startDate"`
	EndDate      time.Time `db:"end_date" json:"endDate"`
	CoverPhoto   *string   `db:"cover_photo" json:"coverPhoto"`
	LocationName string    `db:"location_name" json:"locationName"`
}
