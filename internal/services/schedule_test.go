package services

import (
	"testing"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func contractWithTotal(t *testing.T, db *gorm.DB, paymentType models.PaymentType, number string, cents int64) *models.Contract {
	t.Helper()
	client := createClient(t, db)
	asset := createAsset(t, db, "наб. Речная, "+number)
	contract := models.Contract{
		Number:      number,
		ClientID:    client.ID,
		StartDate:   date(2026, time.March, 1),
		EndDate:     date(2026, time.May, 31),
		PaymentType: paymentType,
		IsActive:    true,
	}
	if err := CreateContract(db, &contract); err != nil {
		t.Fatalf("создание договора: %v", err)
	}
	line := models.ContractAsset{
		ContractID: contract.ID,
		AssetID:    asset.ID,
		Price:      decimal.New(cents, -2),
	}
	if err := AddContractLine(db, &line); err != nil {
		t.Fatalf("позиция договора: %v", err)
	}
	return &contract
}

func TestScheduleFullPrepayment(t *testing.T) {
	db := setupTestDB(t)
	contract := contractWithTotal(t, db, models.PaymentFull, "Д-400", 250000)

	schedule, err := BuildSchedule(db, contract.ID)
	if err != nil {
		t.Fatalf("график оплат: %v", err)
	}
	if len(schedule) != 1 {
		t.Fatalf("ожидался один взнос, получено %d", len(schedule))
	}
	if !schedule[0].Amount.Equal(decimal.New(250000, -2)) {
		t.Fatalf("сумма взноса: %s", schedule[0].Amount)
	}
	if !schedule[0].DueDate.Equal(contract.StartDate) {
		t.Fatal("предоплата приходится на начало аренды")
	}
}

func TestSchedulePartialSplitsAndBalances(t *testing.T) {
	db := setupTestDB(t)
	// Нечётная сумма: проверяем, что последний взнос добирает остаток.
	contract := contractWithTotal(t, db, models.PaymentPartial, "Д-401", 100100)

	schedule, err := BuildSchedule(db, contract.ID)
	if err != nil {
		t.Fatalf("график оплат: %v", err)
	}
	if len(schedule) != 2 {
		t.Fatalf("ожидалось два взноса, получено %d", len(schedule))
	}

	sum := schedule[0].Amount.Add(schedule[1].Amount)
	if !sum.Equal(decimal.New(100100, -2)) {
		t.Fatalf("сумма графика %s не сходится с суммой договора", sum)
	}
	if !schedule[0].DueDate.Equal(contract.StartDate) {
		t.Fatal("аванс приходится на начало аренды")
	}
	if !schedule[1].DueDate.Equal(contract.EndDate) {
		t.Fatal("доплата приходится на конец аренды")
	}
}

func TestSchedulePostpay(t *testing.T) {
	db := setupTestDB(t)
	contract := contractWithTotal(t, db, models.PaymentPostpay, "Д-402", 50000)

	schedule, err := BuildSchedule(db, contract.ID)
	if err != nil {
		t.Fatalf("график оплат: %v", err)
	}
	if len(schedule) != 1 {
		t.Fatalf("ожидался один взнос, получено %d", len(schedule))
	}
	if !schedule[0].DueDate.Equal(contract.EndDate) {
		t.Fatal("постоплата приходится на конец аренды")
	}
	if !schedule[0].Amount.Equal(decimal.New(50000, -2)) {
		t.Fatalf("сумма взноса: %s", schedule[0].Amount)
	}
}
