package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SignUp обработчик для POST /api/auth/signup - регистрация пользователя.
func (h *Handler) SignUp(c *gin.Context) {
	var req struct {
		Name     *string `json:"name"`
		Email    string  `json:"email" binding:"required"`
		Password string  `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email и пароль обязательны")
		return
	}
	if err := h.Auth.SignUp(req.Name, req.Email, req.Password); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// SignIn обработчик для POST /api/auth/login - вход и выдача токена.
func (h *Handler) SignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email и пароль обязательны")
		return
	}
	token, user, err := h.Auth.SignIn(req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
