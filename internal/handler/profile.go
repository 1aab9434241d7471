package handler

import (
	"net/http"

	"github.com/robi-baceanu/voyage-vault/internal/model"

	"github.com/gin-gonic/gin"
)

// GetProfile обработчик для GET /api/profile - профиль текущего пользователя.
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.Users.Profile(currentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile обработчик для PATCH /api/profile - частичное обновление:
// отсутствующее поле не трогается, null очищает значение.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var patch model.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}
	user, err := h.Users.UpdateProfile(currentUserID(c), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
