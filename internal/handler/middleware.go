package handler

import (
	"net/http"
	"strings"

	"github.com/robi-baceanu/voyage-vault/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ctxUserID = "userID"

// AuthMiddleware проверяет сессионный токен и кладет ID пользователя
// в контекст запроса. Без действительного токена запрос отклоняется
// до любого обращения к данным.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Требуется авторизация"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &service.AuthClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Недействительный токен"})
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Next()
	}
}

// currentUserID возвращает ID пользователя, установленный AuthMiddleware.
func currentUserID(c *gin.Context) int {
	v, _ := c.Get(ctxUserID)
	id, _ := v.(int)
	return id
}
