package handler

import (
	"errors"
	"net/http"

	"github.com/robi-baceanu/voyage-vault/internal/geocode"
	"github.com/robi-baceanu/voyage-vault/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	Auth      *service.AuthService
	Users     *service.UserService
	Trips     *service.TripService
	Photos    *service.PhotoService
	Locations *service.LocationService
	Chat      *service.ChatService
	Geo       *geocode.Client

	jwtSecret string
	log       zerolog.Logger
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(auth *service.AuthService, users *service.UserService, trips *service.TripService,
	photos *service.PhotoService, locations *service.LocationService, chat *service.ChatService,
	geo *geocode.Client, jwtSecret string, log zerolog.Logger) *Handler {
	return &Handler{
		Auth:      auth,
		Users:     users,
		Trips:     trips,
		Photos:    photos,
		Locations: locations,
		Chat:      chat,
		Geo:       geo,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

// RegisterRoutes регистрирует все маршруты API. Анонимного чтения данных
// нет: кроме регистрации и входа, все маршруты требуют сессию.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/login", h.SignIn)
	}

	private := api.Group("", AuthMiddleware(h.jwtSecret))
	{
		private.GET("/profile", h.GetProfile)
		private.PATCH("/profile", h.UpdateProfile)

		private.GET("/trips", h.ListTrips)
		private.POST("/trips", h.CreateTrip)
		private.GET("/trips/stats", h.TripStats)
		private.GET("/trips/locations", h.TripPins)
		private.GET("/trips/:id", h.GetTrip)
		private.PATCH("/trips/:id", h.UpdateTrip)
		private.DELETE("/trips/:id", h.DeleteTrip)
		private.GET("/trips/:id/locations", h.ListLocations)
		private.POST("/trips/:id/locations", h.AddLocation)
		private.DELETE("/trips/:id/locations/:locationId", h.RemoveLocation)

		private.GET("/photos", h.ListPhotos)
		private.POST("/photos", h.CreatePhoto)
		private.POST("/photos/upload", h.UploadPhoto)
		private.PUT("/photos/:id", h.UpdatePhotoNotes)
		private.DELETE("/photos/:id", h.DeletePhoto)

		private.GET("/ai", h.ChatHistory)
		private.POST("/ai", h.ChatSend)
		private.DELETE("/ai", h.ChatClear)

		private.GET("/geocode/search", h.GeocodeSearch)
		private.GET("/geocode/reverse", h.GeocodeReverse)
	}

	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// fail переводит ошибку бизнес-логики в HTTP-ответ. Наружу уходят только
// структурированные сообщения; внутренние детали остаются в логе.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Не найдено"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": service.ErrEmailTaken.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrUpstream):
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("отказ внешнего сервиса")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Внешний сервис недоступен, попробуйте позже"})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("внутренняя ошибка")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
	}
}

// badRequest - ответ на синтаксически некорректный запрос.
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
