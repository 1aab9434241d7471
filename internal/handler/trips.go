package handler

import (
	"net/http"
	"strconv"

	"github.com/robi-baceanu/voyage-vault/internal/model"

	"github.com/gin-gonic/gin"
)

// ListTrips обработчик для GET /api/trips - поездки пользователя,
// поздние по дате начала первыми.
func (h *Handler) ListTrips(c *gin.Context) {
	trips, err := h.Trips.List(currentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// CreateTrip обработчик для POST /api/trips - создание поездки.
func (h *Handler) CreateTrip(c *gin.Context) {
	var in model.TripInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Обязательны title, startDate и endDate")
		return
	}
	trip, err := h.Trips.Create(currentUserID(c), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// GetTrip обработчик для GET /api/trips/:id.
func (h *Handler) GetTrip(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		return
	}
	trip, err := h.Trips.Get(currentUserID(c), tripID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// UpdateTrip обработчик для PATCH /api/trips/:id - частичное обновление.
func (h *Handler) UpdateTrip(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch model.TripPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}
	trip, err := h.Trips.Update(currentUserID(c), tripID, patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DeleteTrip обработчик для DELETE /api/trips/:id - удаление поездки
// вместе с ее фотографиями и метками.
func (h *Handler) DeleteTrip(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Trips.Delete(currentUserID(c), tripID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// TripStats обработчик для GET /api/trips/stats - сводка по журналу.
func (h *Handler) TripStats(c *gin.Context) {
	stats, err := h.Trips.Stats(currentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// TripPins обработчик для GET /api/trips/locations - все метки
// пользователя с данными поездок для общей карты.
func (h *Handler) TripPins(c *gin.Context) {
	pins, err := h.Trips.Pins(currentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pins)
}

// pathID разбирает числовой параметр пути. Нечисловой идентификатор
// неотличим от отсутствующего - отвечаем 404.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Не найдено"})
		return 0, false
	}
	return id, true
}
