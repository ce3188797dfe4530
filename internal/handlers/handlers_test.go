package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRouter поднимает БД в памяти, подменяет config.DB и собирает
// маршрутизатор с рабочими обработчиками.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
	config.DB = db

	r := gin.New()
	r.POST("/api/clients", CreateClientHandler)
	r.GET("/api/clients", ListClientsHandler)
	r.POST("/api/assets", CreateAssetHandler)
	r.GET("/api/assets/:id/slots", GetAssetSlotsHandler)
	r.POST("/api/slots", CreateSlotHandler)
	r.POST("/api/contracts", CreateContractHandler)
	r.GET("/api/contracts/:id", GetContractHandler)
	r.POST("/api/contracts/:id/assets", AddContractLineHandler)
	r.GET("/api/contracts/:id/schedule", GetContractScheduleHandler)
	r.POST("/api/payments", CreatePaymentHandler)
	r.POST("/api/payments/:id/confirm", ConfirmPaymentHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("кодирование тела запроса: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("разбор ответа %q: %v", w.Body.String(), err)
	}
}

func TestCreateClientValidatesINN(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/clients", gin.H{
		"name": "ООО Ромашка",
		"inn":  "1234567890",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("некорректный ИНН: ожидался 400, получен %d (%s)", w.Code, w.Body)
	}

	w = doJSON(t, r, http.MethodPost, "/api/clients", gin.H{
		"name": "ООО Ромашка",
		"inn":  "7707083893",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("корректный клиент: ожидался 201, получен %d (%s)", w.Code, w.Body)
	}
}

func TestContractTotalThroughAPI(t *testing.T) {
	r := setupTestRouter(t)

	client := models.Client{Name: "ООО Ромашка", IsActive: true}
	if err := config.DB.Create(&client).Error; err != nil {
		t.Fatalf("клиент: %v", err)
	}
	assets := make([]models.Asset, 2)
	for i, location := range []string{"ул. Тестовая, 1", "ул. Тестовая, 2"} {
		assets[i] = models.Asset{
			Name: "Билборд", AssetType: models.AssetBillboard,
			Zone: models.ZoneCenter, Location: location,
			DailyRate: decimal.NewFromInt(500), IsActive: true,
		}
		if err := config.DB.Create(&assets[i]).Error; err != nil {
			t.Fatalf("площадка: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodPost, "/api/contracts", gin.H{
		"number":    "Д-700",
		"clientId":  client.ID,
		"startDate": "2026-03-01",
		"endDate":   "2026-05-31",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("договор: ожидался 201, получен %d (%s)", w.Code, w.Body)
	}
	var contract models.Contract
	decodeBody(t, w, &contract)

	for i, price := range []int{1000, 1500} {
		w = doJSON(t, r, http.MethodPost,
			"/api/contracts/"+itoa(contract.ID)+"/assets",
			gin.H{"assetId": assets[i].ID, "price": price})
		if w.Code != http.StatusCreated {
			t.Fatalf("позиция %d: ожидался 201, получен %d (%s)", i, w.Code, w.Body)
		}
	}

	w = doJSON(t, r, http.MethodGet, "/api/contracts/"+itoa(contract.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("чтение договора: %d (%s)", w.Code, w.Body)
	}
	var got models.Contract
	decodeBody(t, w, &got)
	if !got.TotalAmount.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("сумма договора: ожидалось 2500, получено %s", got.TotalAmount)
	}
}

func TestAssetSlotsCalendar(t *testing.T) {
	r := setupTestRouter(t)

	asset := models.Asset{
		Name: "Экран", AssetType: models.AssetScreen,
		Zone: models.ZoneCenter, Location: "пл. Центральная, 1",
		DailyRate: decimal.NewFromInt(900), IsActive: true,
	}
	if err := config.DB.Create(&asset).Error; err != nil {
		t.Fatalf("площадка: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/slots", gin.H{
		"assetId":   asset.ID,
		"startDate": "2026-03-01",
		"endDate":   "2026-03-31",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("слот: ожидался 201, получен %d (%s)", w.Code, w.Body)
	}

	// Пересекающийся слот отклоняется.
	w = doJSON(t, r, http.MethodPost, "/api/slots", gin.H{
		"assetId":   asset.ID,
		"startDate": "2026-03-15",
		"endDate":   "2026-04-15",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("пересечение: ожидался 400, получен %d (%s)", w.Code, w.Body)
	}

	w = doJSON(t, r, http.MethodGet, "/api/assets/"+itoa(asset.ID)+"/slots", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("календарь: %d (%s)", w.Code, w.Body)
	}
	var resp struct {
		Slots []struct {
			StartDate   string `json:"startDate"`
			IsAvailable bool   `json:"isAvailable"`
		} `json:"slots"`
	}
	decodeBody(t, w, &resp)
	if len(resp.Slots) != 1 {
		t.Fatalf("ожидался один слот, получено %d", len(resp.Slots))
	}
	if resp.Slots[0].StartDate != "2026-03-01" || !resp.Slots[0].IsAvailable {
		t.Fatalf("слот календаря: %+v", resp.Slots[0])
	}
}

func TestConfirmPaymentEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	client := models.Client{Name: "ООО Ромашка", IsActive: true}
	if err := config.DB.Create(&client).Error; err != nil {
		t.Fatalf("клиент: %v", err)
	}
	contract := models.Contract{
		Number: "Д-701", ClientID: client.ID,
		StartDate: date(2026, time.March, 1), EndDate: date(2026, time.May, 31),
		PaymentType: models.PaymentFull, IsActive: true,
	}
	if err := config.DB.Create(&contract).Error; err != nil {
		t.Fatalf("договор: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/payments", gin.H{
		"contractId": contract.ID,
		"amount":     500,
		"date":       "2026-03-10",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("платёж: ожидался 201, получен %d (%s)", w.Code, w.Body)
	}
	var payment models.Payment
	decodeBody(t, w, &payment)
	if payment.IsConfirmed {
		t.Fatal("новый платёж не должен быть подтверждён")
	}

	w = doJSON(t, r, http.MethodPost, "/api/payments/"+itoa(payment.ID)+"/confirm", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("подтверждение: %d (%s)", w.Code, w.Body)
	}
	var confirmed models.Payment
	decodeBody(t, w, &confirmed)
	if !confirmed.IsConfirmed || confirmed.Status != models.PaymentCompleted {
		t.Fatalf("после подтверждения: %+v", confirmed)
	}
	if confirmed.ConfirmationDate == nil {
		t.Fatal("дата подтверждения должна проставиться")
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
