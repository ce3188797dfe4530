// ad-rental-platform/config/env.go
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig — конфигурация приложения, собирается из переменных окружения.
type AppConfig struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	RedisDB     int
	ReportsDir  string
	UploadsDir  string
}

// LoadConfig читает .env (если есть) и собирает конфигурацию с дефолтами.
func LoadConfig() AppConfig {
	if err := godotenv.Load(); err != nil {
		slog.Info("Файл .env не найден, используем переменные окружения")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return AppConfig{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DB_URL", ""),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		RedisDB:     redisDB,
		ReportsDir:  getEnv("REPORTS_DIR", "./storage/reports"),
		UploadsDir:  getEnv("UPLOADS_DIR", "./storage/uploads"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
