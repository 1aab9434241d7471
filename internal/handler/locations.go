package handler

import (
	"net/http"

	"github.com/robi-baceanu/voyage-vault/internal/model"

	"github.com/gin-gonic/gin"
)

// ListLocations обработчик для GET /api/trips/:id/locations.
func (h *Handler) ListLocations(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		return
	}
	locations, err := h.Locations.List(currentUserID(c), tripID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// AddLocation обработчик для POST /api/trips/:id/locations - новая метка.
func (h *Handler) AddLocation(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in model.LocationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Обязательны latitude, longitude и name")
		return
	}
	location, err := h.Locations.Add(currentUserID(c), tripID, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

// RemoveLocation обработчик для DELETE /api/trips/:id/locations/:locationId.
// Поездка из пути обязана совпадать с поездкой метки.
func (h *Handler) RemoveLocation(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		return
	}
	locationID, ok := pathID(c, "locationId")
	if !ok {
		return
	}
	if err := h.Locations.Remove(currentUserID(c), tripID, locationID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
