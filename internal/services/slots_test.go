package services

import (
	"errors"
	"testing"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/shopspring/decimal"
)

func TestCreateSlotRejectsOverlap(t *testing.T) {
	db := setupTestDB(t)
	asset := createAsset(t, db, "пр. Ленина, 1")
	createTestSlot(t, db, asset.ID, date(2026, time.March, 1), date(2026, time.March, 31))

	overlap := models.AvailabilitySlot{
		AssetID:     asset.ID,
		StartDate:   date(2026, time.March, 15),
		EndDate:     date(2026, time.April, 15),
		IsAvailable: true,
	}
	if err := CreateSlot(db, &overlap); err == nil {
		t.Fatal("пересекающийся слот должен отклоняться")
	}
}

func TestCreateSlotAllowsTouchingPeriods(t *testing.T) {
	db := setupTestDB(t)
	asset := createAsset(t, db, "пр. Ленина, 2")
	createTestSlot(t, db, asset.ID, date(2026, time.March, 1), date(2026, time.March, 31))

	// Период встык: начало нового совпадает с концом существующего.
	touching := models.AvailabilitySlot{
		AssetID:     asset.ID,
		StartDate:   date(2026, time.March, 31),
		EndDate:     date(2026, time.April, 30),
		IsAvailable: true,
	}
	if err := CreateSlot(db, &touching); err != nil {
		t.Fatalf("слот встык не должен считаться пересечением: %v", err)
	}
}

func TestCreateSlotAllowsOverlapOnOtherAsset(t *testing.T) {
	db := setupTestDB(t)
	first := createAsset(t, db, "пр. Ленина, 3")
	second := createAsset(t, db, "пр. Ленина, 4")
	createTestSlot(t, db, first.ID, date(2026, time.March, 1), date(2026, time.March, 31))

	other := models.AvailabilitySlot{
		AssetID:     second.ID,
		StartDate:   date(2026, time.March, 10),
		EndDate:     date(2026, time.March, 20),
		IsAvailable: true,
	}
	if err := CreateSlot(db, &other); err != nil {
		t.Fatalf("слоты разных площадок не конфликтуют: %v", err)
	}
}

func TestReserveSlotLoserGetsConflict(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db)
	asset := createAsset(t, db, "пр. Ленина, 5")
	slot := createTestSlot(t, db, asset.ID, date(2026, time.March, 1), date(2026, time.March, 31))
	first := createTestContract(t, db, client.ID, "Д-001")
	second := createTestContract(t, db, client.ID, "Д-002")

	line1 := models.ContractAsset{
		ContractID: first.ID, AssetID: asset.ID, SlotID: &slot.ID,
		Price: decimal.NewFromInt(1000),
	}
	if err := AddContractLine(db, &line1); err != nil {
		t.Fatalf("первое бронирование должно пройти: %v", err)
	}

	line2 := models.ContractAsset{
		ContractID: second.ID, AssetID: asset.ID, SlotID: &slot.ID,
		Price: decimal.NewFromInt(1000),
	}
	err := AddContractLine(db, &line2)
	if err == nil {
		t.Fatal("второе бронирование того же слота должно отклоняться")
	}

	// Позиция проигравшего не должна остаться в БД.
	var count int64
	db.Model(&models.ContractAsset{}).Where("contract_id = ?", second.ID).Count(&count)
	if count != 0 {
		t.Fatalf("у проигравшего договора не должно быть позиций, найдено %d", count)
	}
}

func TestRemoveContractLineReleasesSlot(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db)
	asset := createAsset(t, db, "пр. Ленина, 6")
	slot := createTestSlot(t, db, asset.ID, date(2026, time.March, 1), date(2026, time.March, 31))
	contract := createTestContract(t, db, client.ID, "Д-003")

	line := models.ContractAsset{
		ContractID: contract.ID, AssetID: asset.ID, SlotID: &slot.ID,
		Price: decimal.NewFromInt(1000),
	}
	if err := AddContractLine(db, &line); err != nil {
		t.Fatalf("бронирование должно пройти: %v", err)
	}

	var reserved models.AvailabilitySlot
	db.First(&reserved, slot.ID)
	if reserved.IsAvailable || reserved.ReservedByID == nil {
		t.Fatal("после бронирования слот должен быть занят договором")
	}

	if err := RemoveContractLine(db, contract.ID, line.ID); err != nil {
		t.Fatalf("удаление позиции должно пройти: %v", err)
	}

	var released models.AvailabilitySlot
	db.First(&released, slot.ID)
	if !released.IsAvailable || released.ReservedByID != nil {
		t.Fatal("после удаления позиции слот должен освободиться")
	}
}

func TestDeleteReservedSlotRejected(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db)
	asset := createAsset(t, db, "пр. Ленина, 7")
	slot := createTestSlot(t, db, asset.ID, date(2026, time.March, 1), date(2026, time.March, 31))
	contract := createTestContract(t, db, client.ID, "Д-004")

	line := models.ContractAsset{
		ContractID: contract.ID, AssetID: asset.ID, SlotID: &slot.ID,
		Price: decimal.NewFromInt(1000),
	}
	if err := AddContractLine(db, &line); err != nil {
		t.Fatalf("бронирование должно пройти: %v", err)
	}

	if err := DeleteSlot(db, slot.ID); !errors.Is(err, ErrSlotReserved) {
		t.Fatalf("ожидалась ошибка ErrSlotReserved, получено: %v", err)
	}
}
