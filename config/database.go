// ad-rental-platform/config/database.go

package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AlgisPropolov/ad-rental-platform/models"
)

var DB *gorm.DB

func ConnectDB(dsn string) {
	if dsn == "" {
		slog.Error("Критическая ошибка: переменная окружения DB_URL не установлена.")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("Ошибка подключения к БД", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Успешное подключение к базе данных!")
}

// MigrateDB прогоняет автомиграцию всех моделей.
// Порядок важен: сначала справочники, затем сущности с внешними ключами.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Client{},
		&models.Asset{},
		&models.AvailabilitySlot{},
		&models.Deal{},
		&models.DealTask{},
		&models.Contract{},
		&models.ContractAsset{},
		&models.Payment{},
		&models.FinancialReport{},
		&models.Dashboard{},
	)
}
