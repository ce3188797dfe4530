package services

import (
	"errors"
	"testing"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/shopspring/decimal"
)

func TestCreateDealMakesFirstContactTask(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db)
	manager := createUser(t, db)

	deal := models.Deal{
		Title:          "Кампания на осень",
		ClientID:       client.ID,
		ManagerID:      manager.ID,
		ExpectedAmount: decimal.NewFromInt(50000),
		Probability:    50,
	}
	if err := CreateDeal(db, &deal); err != nil {
		t.Fatalf("создание сделки: %v", err)
	}

	var tasks []models.DealTask
	if err := db.Where("deal_id = ?", deal.ID).Find(&tasks).Error; err != nil {
		t.Fatalf("чтение задач: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("ожидалась одна автоматическая задача, найдено %d", len(tasks))
	}

	task := tasks[0]
	if task.Title != "Первичный контакт с ООО Ромашка" {
		t.Fatalf("название задачи: %q", task.Title)
	}
	if task.Description != "Связаться с клиентом ООО Ромашка для уточнения деталей" {
		t.Fatalf("описание задачи: %q", task.Description)
	}
	if task.Priority != models.PriorityMedium {
		t.Fatalf("приоритет задачи: %s", task.Priority)
	}
	wantDue := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 3)
	if !task.DueDate.Equal(wantDue) {
		t.Fatalf("срок задачи: ожидалось %s, получено %s", wantDue, task.DueDate)
	}
	if task.AssigneeID == nil || *task.AssigneeID != manager.ID {
		t.Fatal("задача должна быть назначена менеджеру сделки")
	}
}

func TestTerminalStatusStampsClosedAt(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db)
	manager := createUser(t, db)

	deal := models.Deal{
		Title:     "Сделка до победы",
		ClientID:  client.ID,
		ManagerID: manager.ID,
		Status:    models.DealNew,
	}
	if err := CreateDeal(db, &deal); err != nil {
		t.Fatalf("создание сделки: %v", err)
	}
	if deal.ClosedAt != nil {
		t.Fatal("новая сделка не должна иметь даты закрытия")
	}

	deal.Status = models.DealWon
	if err := UpdateDeal(db, &deal); err != nil {
		t.Fatalf("обновление сделки: %v", err)
	}
	if deal.ClosedAt == nil {
		t.Fatal("выигранная сделка должна получить дату закрытия")
	}

	// Возврат в работу снимает дату закрытия.
	deal.Status = models.DealInProgress
	if err := UpdateDeal(db, &deal); err != nil {
		t.Fatalf("повторное обновление: %v", err)
	}
	if deal.ClosedAt != nil {
		t.Fatal("неконечный статус не должен нести дату закрытия")
	}
}

func TestDeleteDealWithContractsRejected(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db)
	manager := createUser(t, db)

	deal := models.Deal{
		Title:     "Сделка с договором",
		ClientID:  client.ID,
		ManagerID: manager.ID,
	}
	if err := CreateDeal(db, &deal); err != nil {
		t.Fatalf("создание сделки: %v", err)
	}

	contract := models.Contract{
		Number:      "Д-300",
		ClientID:    client.ID,
		DealID:      &deal.ID,
		StartDate:   date(2026, time.March, 1),
		EndDate:     date(2026, time.May, 31),
		PaymentType: models.PaymentFull,
		IsActive:    true,
	}
	if err := CreateContract(db, &contract); err != nil {
		t.Fatalf("создание договора: %v", err)
	}

	if err := DeleteDeal(db, deal.ID); !errors.Is(err, ErrDealHasContracts) {
		t.Fatalf("ожидалась ошибка ErrDealHasContracts, получено: %v", err)
	}
}

func TestSaveDealTaskStampsCompletedAt(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db)
	manager := createUser(t, db)

	deal := models.Deal{Title: "Сделка с задачей", ClientID: client.ID, ManagerID: manager.ID}
	if err := CreateDeal(db, &deal); err != nil {
		t.Fatalf("создание сделки: %v", err)
	}

	task := models.DealTask{
		DealID:   deal.ID,
		Title:    "Выслать макет",
		DueDate:  date(2026, time.September, 1),
		Priority: models.PriorityHigh,
	}
	if err := SaveDealTask(db, &task); err != nil {
		t.Fatalf("создание задачи: %v", err)
	}
	if task.CompletedAt != nil {
		t.Fatal("незавершённая задача не несёт даты выполнения")
	}

	task.IsDone = true
	if err := SaveDealTask(db, &task); err != nil {
		t.Fatalf("завершение задачи: %v", err)
	}
	if task.CompletedAt == nil {
		t.Fatal("завершённая задача должна получить дату выполнения")
	}
}
