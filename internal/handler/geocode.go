package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/robi-baceanu/voyage-vault/internal/service"

	"github.com/gin-gonic/gin"
)

// GeocodeSearch обработчик для GET /api/geocode/search?q=... - прямое
// геокодирование через Nominatim. Сервис вспомогательный: при отказе
// клиент показывает сырые координаты.
func (h *Handler) GeocodeSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		badRequest(c, "Обязателен параметр q")
		return
	}
	results, err := h.Geo.Search(c.Request.Context(), query)
	if err != nil {
		h.fail(c, fmt.Errorf("%w: %v", service.ErrUpstream, err))
		return
	}
	c.JSON(http.StatusOK, results)
}

// GeocodeReverse обработчик для GET /api/geocode/reverse?lat=..&lon=.. -
// название места по координатам.
func (h *Handler) GeocodeReverse(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		badRequest(c, "Обязательны числовые параметры lat и lon")
		return
	}
	name, err := h.Geo.Reverse(c.Request.Context(), lat, lon)
	if err != nil {
		h.fail(c, fmt.Errorf("%w: %v", service.ErrUpstream, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"displayName": name})
}
