package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/robi-baceanu/voyage-vault/internal/model"
)

// Хранилища в памяти для тестов сервисов. Повторяют задокументированный
// контракт репозиториев, включая каскадное удаление и обнуление обложки.

type memUsers struct {
	seq   int
	items map[int]*model.User
}

func newMemUsers() *memUsers {
	return &memUsers{items: map[int]*model.User{}}
}

func (m *memUsers) Create(user *model.User) (int, error) {
	for _, u := range m.items {
		if u.Email == user.Email {
			return 0, errors.New("email занят")
		}
	}
	m.seq++
	stored := *user
	stored.ID = m.seq
	stored.CreatedAt = time.Now()
	m.items[stored.ID] = &stored
	return stored.ID, nil
}

func (m *memUsers) GetByEmail(email string) (*model.User, error) {
	for _, u := range m.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memUsers) GetByID(id int) (*model.User, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (m *memUsers) Update(id int, patch model.UserPatch) (*model.User, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.Name.Set {
		if patch.Name.Valid {
			v := patch.Name.Value
			u.Name = &v
		} else {
			u.Name = nil
		}
	}
	if patch.Image.Set {
		if patch.Image.Valid {
			v := patch.Image.Value
			u.Image = &v
		} else {
			u.Image = nil
		}
	}
	return u, nil
}

type memTrips struct {
	seq       int
	items     map[int]*model.Trip
	photos    *memPhotos
	locations *memLocations
}

type memPhotos struct {
	seq   int
	items map[int]*model.Photo
	trips *memTrips
}

type memLocations struct {
	seq   int
	items map[int]*model.Location
	trips *memTrips
}

// newMemStores связывает хранилища между собой: фото и метки находят
// владельца через поездки, поездки каскадно удаляют фото и метки.
func newMemStores() (*memTrips, *memPhotos, *memLocations) {
	trips := &memTrips{items: map[int]*model.Trip{}}
	photos := &memPhotos{items: map[int]*model.Photo{}, trips: trips}
	locations := &memLocations{items: map[int]*model.Location{}, trips: trips}
	trips.photos = photos
	trips.locations = locations
	return trips, photos, locations
}

func (m *memTrips) Create(trip *model.Trip) (int, error) {
	m.seq++
	stored := *trip
	stored.ID = m.seq
	stored.CreatedAt = time.Now()
	m.items[stored.ID] = &stored
	return stored.ID, nil
}

func (m *memTrips) GetByID(id int) (*model.Trip, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return t, nil
}

func (m *memTrips) ListByUser(userID int) ([]model.Trip, error) {
	trips := []model.Trip{}
	for _, t := range m.items {
		if t.UserID == userID {
			trips = append(trips, *t)
		}
	}
	sort.Slice(trips, func(i, j int) bool {
		if !trips[i].StartDate.Equal(trips[j].StartDate) {
			return trips[i].StartDate.After(trips[j].StartDate)
		}
		return trips[i].ID > trips[j].ID
	})
	return trips, nil
}

func (m *memTrips) Update(id int, ch model.TripChanges) (*model.Trip, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if ch.Title.Set {
		t.Title = ch.Title.Value
	}
	if ch.StartDate.Set {
		t.StartDate = ch.StartDate.Value
	}
	if ch.EndDate.Set {
		t.EndDate = ch.EndDate.Value
	}
	if ch.Notes.Set {
		if ch.Notes.Valid {
			v := ch.Notes.Value
			t.Notes = &v
		} else {
			t.Notes = nil
		}
	}
	if ch.CoverPhotoID.Set {
		if ch.CoverPhotoID.Valid {
			v := ch.CoverPhotoID.Value
			t.CoverPhotoID = &v
		} else {
			t.CoverPhotoID = nil
		}
	}
	return t, nil
}

func (m *memTrips) Delete(id int) error {
	delete(m.items, id)
	for pid, p := range m.photos.items {
		if p.TripID == id {
			delete(m.photos.items, pid)
		}
	}
	for lid, l := range m.locations.items {
		if l.TripID == id {
			delete(m.locations.items, lid)
		}
	}
	return nil
}

func (m *memTrips) Stats(userID int) (*model.TripStats, error) {
	stats := &model.TripStats{RecentTrips: []model.TripSummary{}}
	for _, t := range m.items {
		if t.UserID != userID {
			continue
		}
		stats.TotalTrips++
		for _, p := range m.photos.items {
			if p.TripID == t.ID {
				stats.TotalPhotos++
			}
		}
		for _, l := range m.locations.items {
			if l.TripID == t.ID {
				stats.TotalLocations++
			}
		}
	}
	return stats, nil
}

func (m *memTrips) ListPins(userID int) ([]model.TripPin, error) {
	pins := []model.TripPin{}
	for _, l := range m.locations.items {
		t, ok := m.items[l.TripID]
		if !ok || t.UserID != userID {
			continue
		}
		pins = append(pins, model.TripPin{
			TripID:       t.ID,
			Title:        t.Title,
			Latitude:     l.Latitude,
			Longitude:    l.Longitude,
			StartDate:    t.StartDate,
			EndDate:      t.EndDate,
			LocationName: l.Name,
		})
	}
	return pins, nil
}

func (m *memPhotos) Create(photo *model.Photo) (int, error) {
	m.seq++
	stored := *photo
	stored.ID = m.seq
	stored.CreatedAt = time.Now()
	m.items[stored.ID] = &stored
	return stored.ID, nil
}

func (m *memPhotos) GetByID(id int) (*model.Photo, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (m *memPhotos) GetWithOwner(id int) (*model.PhotoWithOwner, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	t, ok := m.trips.items[p.TripID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &model.PhotoWithOwner{Photo: *p, OwnerID: t.UserID}, nil
}

func (m *memPhotos) ListByTrip(tripID int) ([]model.Photo, error) {
	photos := []model.Photo{}
	for _, p := range m.items {
		if p.TripID == tripID {
			photos = append(photos, *p)
		}
	}
	sort.Slice(photos, func(i, j int) bool { return photos[i].ID > photos[j].ID })
	return photos, nil
}

func (m *memPhotos) UpdateNotes(id int, notes *string) (*model.Photo, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	p.Notes = notes
	return p, nil
}

func (m *memPhotos) Delete(id int) error {
	for _, t := range m.trips.items {
		if t.CoverPhotoID != nil && *t.CoverPhotoID == id {
			t.CoverPhotoID = nil
		}
	}
	delete(m.items, id)
	return nil
}

func (m *memLocations) Create(location *model.Location) (int, error) {
	m.seq++
	stored := *location
	stored.ID = m.seq
	stored.CreatedAt = time.Now()
	m.items[stored.ID] = &stored
	return stored.ID, nil
}

func (m *memLocations) GetWithOwner(id int) (*model.LocationWithOwner, error) {
	l, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	t, ok := m.trips.items[l.TripID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &model.LocationWithOwner{Location: *l, OwnerID: t.UserID}, nil
}

func (m *memLocations) ListByTrip(tripID int) ([]model.Location, error) {
	locations := []model.Location{}
	for _, l := range m.items {
		if l.TripID == tripID {
			locations = append(locations, *l)
		}
	}
	sort.Slice(locations, func(i, j int) bool { return locations[i].ID < locations[j].ID })
	return locations, nil
}

func (m *memLocations) Delete(id int) error {
	delete(m.items, id)
	return nil
}

type memMessages struct {
	seq   int
	items []*model.ChatMessage
}

func newMemMessages() *memMessages {
	return &memMessages{}
}

func (m *memMessages) Save(msg *model.ChatMessage) error {
	m.seq++
	msg.ID = m.seq
	// строго возрастающее время, чтобы порядок был детерминирован
	msg.CreatedAt = time.Unix(0, int64(m.seq)*int64(time.Millisecond))
	stored := *msg
	m.items = append(m.items, &stored)
	return nil
}

func (m *memMessages) ListByUser(userID int) ([]model.ChatMessage, error) {
	messages := []model.ChatMessage{}
	for _, msg := range m.items {
		if msg.UserID == userID {
			messages = append(messages, *msg)
		}
	}
	return messages, nil
}

func (m *memMessages) DeleteByUser(userID int) error {
	kept := m.items[:0]
	for _, msg := range m.items {
		if msg.UserID != userID {
			kept = append(kept, msg)
		}
	}
	m.items = kept
	return nil
}

// fakeCompleter отвечает заготовленной репликой либо ошибкой и запоминает
// переданный ему диалог.
type fakeCompleter struct {
	reply   string
	err     error
	history []model.ChatMessage
}

func (f *fakeCompleter) Complete(_ context.Context, history []model.ChatMessage) (string, error) {
	f.history = history
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// fakeBlobs записывает ключи загруженных объектов.
type fakeBlobs struct {
	keys []string
	err  error
}

func (f *fakeBlobs) Put(_ context.Context, key, _ string, _ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return fmt.Sprintf("https://blob.test/%s", key), nil
}
