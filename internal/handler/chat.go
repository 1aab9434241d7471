package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatHistory обработчик для GET /api/ai - весь диалог, старые первыми.
func (h *Handler) ChatHistory(c *gin.Context) {
	messages, err := h.Chat.History(currentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// ChatSend обработчик для POST /api/ai - новая реплика пользователя.
// Реплика сохраняется до обращения к ассистенту; при его отказе она
// остается в журнале, а клиент получает ошибку.
func (h *Handler) ChatSend(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Обязательно поле message")
		return
	}
	reply, err := h.Chat.Send(c.Request.Context(), currentUserID(c), req.Message)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// ChatClear обработчик для DELETE /api/ai - безусловная очистка диалога.
func (h *Handler) ChatClear(c *gin.Context) {
	if err := h.Chat.Clear(currentUserID(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
