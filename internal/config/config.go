package config

import "os"

// Config - параметры приложения, читаются из переменных окружения.
type Config struct {
	Port      string
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	JWTSecret string
	OpenAIKey string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	NominatimURL string
}

// Load читает конфигурацию из окружения, подставляя значения по умолчанию
// для локального запуска.
func Load() Config {
	return Config{
		Port:      getenv("API_PORT", "8080"),
		DBHost:    getenv("DB_HOST", "localhost"),
		DBPort:    getenv("DB_PORT", "5432"),
		DBUser:    os.Getenv("DB_USER"),
		DBPass:    os.Getenv("DB_PASS"),
		DBName:    os.Getenv("DB_NAME"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		OpenAIKey: os.Getenv("OPENAI_API_KEY"),

		S3Endpoint:  getenv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    getenv("S3_BUCKET", "voyage-photos"),
		S3UseSSL:    os.Getenv("S3_USE_SSL") == "true",

		NominatimURL: os.Getenv("NOMINATIM_URL"),
	}
}

// DSN собирает строку подключения к PostgreSQL.
func (c Config) DSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort +
		" user=" + c.DBUser + " password=" + c.DBPass +
		" dbname=" + c.DBName + " sslmode=disable"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
