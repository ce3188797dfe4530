package services

import (
	"testing"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB поднимает изолированную БД в памяти для одного теста.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("не удалось открыть тестовую БД: %v", err)
	}
	if err := config.MigrateDB(db); err != nil {
		t.Fatalf("не удалось мигрировать тестовую БД: %v", err)
	}
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := models.User{
		FullName: "Иван Петров",
		Email:    "ivan" + t.Name() + "@example.com",
		Role:     models.RoleManager,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("не удалось создать пользователя: %v", err)
	}
	return &user
}

func createClient(t *testing.T, db *gorm.DB) *models.Client {
	t.Helper()
	client := models.Client{Name: "ООО Ромашка", Phone: "+7 900 000-00-00", IsActive: true}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("не удалось создать клиента: %v", err)
	}
	return &client
}

func createAsset(t *testing.T, db *gorm.DB, location string) *models.Asset {
	t.Helper()
	asset := models.Asset{
		Name:      "Билборд " + location,
		AssetType: models.AssetBillboard,
		Zone:      models.ZoneCenter,
		Location:  location,
		DailyRate: decimal.NewFromInt(500),
		IsActive:  true,
	}
	if err := db.Create(&asset).Error; err != nil {
		t.Fatalf("не удалось создать площадку: %v", err)
	}
	return &asset
}

func createTestSlot(t *testing.T, db *gorm.DB, assetID uint, start, end time.Time) *models.AvailabilitySlot {
	t.Helper()
	slot := models.AvailabilitySlot{
		AssetID:     assetID,
		StartDate:   start,
		EndDate:     end,
		IsAvailable: true,
	}
	if err := CreateSlot(db, &slot); err != nil {
		t.Fatalf("не удалось создать слот: %v", err)
	}
	return &slot
}

func createTestContract(t *testing.T, db *gorm.DB, clientID uint, number string) *models.Contract {
	t.Helper()
	contract := models.Contract{
		Number:      number,
		ClientID:    clientID,
		StartDate:   date(2026, time.March, 1),
		EndDate:     date(2026, time.May, 31),
		PaymentType: models.PaymentFull,
		IsActive:    true,
	}
	if err := CreateContract(db, &contract); err != nil {
		t.Fatalf("не удалось создать договор: %v", err)
	}
	return &contract
}
