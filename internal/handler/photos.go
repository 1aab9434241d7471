package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListPhotos обработчик для GET /api/photos?tripId=N - фотографии поездки.
func (h *Handler) ListPhotos(c *gin.Context) {
	tripID, err := strconv.Atoi(c.Query("tripId"))
	if err != nil || tripID <= 0 {
		badRequest(c, "Обязателен параметр tripId")
		return
	}
	photos, err := h.Photos.ListByTrip(currentUserID(c), tripID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

// CreatePhoto обработчик для POST /api/photos - регистрация фотографии
// по готовой ссылке, без загрузки байтов.
func (h *Handler) CreatePhoto(c *gin.Context) {
	var req struct {
		TripID int    `json:"tripId" binding:"required"`
		URL    string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Обязательны tripId и url")
		return
	}
	photo, err := h.Photos.CreateFromURL(currentUserID(c), req.TripID, req.URL)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// UploadPhoto обработчик для POST /api/photos/upload - multipart-загрузка
// байтов во внешнее хранилище. Запись создается только после успешной
// загрузки; при отказе хранилища записи не остается.
func (h *Handler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "Обязательны file и tripId")
		return
	}
	tripID, err := strconv.Atoi(c.PostForm("tripId"))
	if err != nil || tripID <= 0 {
		badRequest(c, "Обязательны file и tripId")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		badRequest(c, "Не удалось прочитать файл")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		badRequest(c, "Не удалось прочитать файл")
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	photo, err := h.Photos.Upload(c.Request.Context(), currentUserID(c), tripID,
		fileHeader.Filename, contentType, data)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// UpdatePhotoNotes обработчик для PUT /api/photos/:id - подпись к фото;
// пустая строка очищает подпись.
func (h *Handler) UpdatePhotoNotes(c *gin.Context) {
	photoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}
	photo, err := h.Photos.UpdateNotes(currentUserID(c), photoID, req.Notes)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

// DeletePhoto обработчик для DELETE /api/photos/:id. Если фото было
// обложкой поездки, ссылка на обложку обнуляется той же операцией.
func (h *Handler) DeletePhoto(c *gin.Context) {
	photoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Photos.Delete(currentUserID(c), photoID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
