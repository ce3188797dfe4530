// ad-rental-platform/config/redis.go
package config

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

func ConnectRedis(addr string, db int) {
	if addr == "" {
		slog.Warn("Переменная окружения REDIS_ADDR не установлена, кэширование и очередь задач будут отключены.")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	// Проверяем соединение
	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("Не удалось подключиться к Redis", "error", err)
		RDB = nil // Обнуляем клиент, чтобы приложение не пыталось его использовать
		return
	}

	slog.Info("Успешное подключение к Redis!")
}
