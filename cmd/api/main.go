package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/robi-baceanu/voyage-vault/internal/ai"
	"github.com/robi-baceanu/voyage-vault/internal/config"
	"github.com/robi-baceanu/voyage-vault/internal/geocode"
	"github.com/robi-baceanu/voyage-vault/internal/handler"
	"github.com/robi-baceanu/voyage-vault/internal/repository"
	"github.com/robi-baceanu/voyage-vault/internal/service"
	"github.com/robi-baceanu/voyage-vault/internal/storage/s3"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // PostgreSQL драйвер
	"github.com/rs/zerolog"
)

func main() {
	// .env удобен для локального запуска; в проде переменные уже в окружении
	_ = godotenv.Load()
	cfg := config.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("Не задан секрет сессии (JWT_SECRET)")
	}

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Не удалось подключиться к базе данных")
	}

	// Выполняем миграции (если есть)
	applyMigrations(db, log)

	// Адаптеры внешних сервисов
	blobs, err := s3.New(s3.Config{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		UseSSL:    cfg.S3UseSSL,
		Bucket:    cfg.S3Bucket,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Не удалось создать клиента объектного хранилища")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := blobs.EnsureBucket(ctx); err != nil {
		log.Warn().Err(err).Msg("Не удалось проверить бакет, загрузка фото может не работать")
	}
	cancel()
	completer := ai.New(cfg.OpenAIKey)
	geocoder := geocode.New(cfg.NominatimURL)

	// Инициализируем репозитории
	userRepo := repository.NewUserRepository(db)
	tripRepo := repository.NewTripRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Инициализируем сервисы
	accessService := service.NewAccessService(tripRepo, photoRepo, locationRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	userService := service.NewUserService(userRepo)
	tripService := service.NewTripService(tripRepo, photoRepo, accessService)
	photoService := service.NewPhotoService(photoRepo, blobs, accessService)
	locationService := service.NewLocationService(locationRepo, accessService)
	chatService := service.NewChatService(messageRepo, completer)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(authService, userService, tripService, photoService,
		locationService, chatService, geocoder, cfg.JWTSecret, log)
	router := gin.Default()
	h.RegisterRoutes(router)

	// Запускаем HTTP-сервер
	log.Info().Str("port", cfg.Port).Msg("Сервер запускается")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Ошибка запуска сервера")
	}
}

// applyMigrations применяет SQL-миграции из каталога migrations,
// каждую в своей транзакции.
func applyMigrations(db *sqlx.DB, log zerolog.Logger) {
	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		return
	}
	for _, file := range files {
		if _, err := db.Exec("BEGIN"); err != nil {
			log.Error().Err(err).Str("file", file).Msg("Ошибка при инициации транзакции миграции")
			continue
		}
		err := func() error {
			content, readErr := os.ReadFile(file)
			if readErr != nil {
				return readErr
			}
			if _, execErr := db.Exec(string(content)); execErr != nil {
				return execErr
			}
			return nil
		}()
		if err != nil {
			log.Error().Err(err).Str("file", file).Msg("Миграция завершилась ошибкой")
			db.Exec("ROLLBACK")
		} else {
			db.Exec("COMMIT")
			log.Info().Str("file", file).Msg("Миграция применена")
		}
	}
}
