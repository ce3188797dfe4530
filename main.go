package main

import (
	"log/slog"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/internal/handlers"
	"github.com/AlgisPropolov/ad-rental-platform/internal/routes"
	"github.com/AlgisPropolov/ad-rental-platform/internal/tasks"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	config.ConnectDB(cfg.DatabaseURL)
	config.MigrateDB(config.DB)
	config.ConnectRedis(cfg.RedisAddr, cfg.RedisDB)

	handlers.ReportsDir = cfg.ReportsDir
	tasks.StartWorker(config.DB, cfg.ReportsDir)

	r := gin.Default()
	routes.SetupRoutes(r)

	slog.Info("Сервер запускается", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("Сервер остановлен с ошибкой", "error", err)
	}
}
