package services

import (
	"testing"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/shopspring/decimal"
)

func TestFullyPaidOnExactConfirmedSum(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db)
	first := createAsset(t, db, "ул. Гагарина, 1")
	second := createAsset(t, db, "ул. Гагарина, 2")
	contract := createTestContract(t, db, client.ID, "Д-200")

	for _, line := range []models.ContractAsset{
		{ContractID: contract.ID, AssetID: first.ID, Price: decimal.NewFromInt(1000)},
		{ContractID: contract.ID, AssetID: second.ID, Price: decimal.NewFromInt(1500)},
	} {
		line := line
		if err := AddContractLine(db, &line); err != nil {
			t.Fatalf("позиция договора: %v", err)
		}
	}

	pay := func(amount int64) *models.Payment {
		p := models.Payment{
			ContractID: contract.ID,
			Amount:     decimal.NewFromInt(amount),
			Date:       date(2026, time.March, 10),
		}
		if err := CreatePayment(db, &p); err != nil {
			t.Fatalf("платёж на %d: %v", amount, err)
		}
		return &p
	}

	p1 := pay(1000)
	p2 := pay(1500)

	if _, err := ConfirmPayment(db, p1.ID, nil); err != nil {
		t.Fatalf("подтверждение первого платежа: %v", err)
	}

	var partial models.Contract
	db.First(&partial, contract.ID)
	if partial.IsFullyPaid {
		t.Fatal("договор не должен считаться оплаченным после частичной оплаты")
	}

	if _, err := ConfirmPayment(db, p2.ID, nil); err != nil {
		t.Fatalf("подтверждение второго платежа: %v", err)
	}

	var full models.Contract
	db.First(&full, contract.ID)
	if !full.IsFullyPaid {
		t.Fatal("после подтверждения 1000 + 1500 против 2500 договор оплачен полностью")
	}
}

func TestUnconfirmedPaymentsDoNotCount(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db)
	asset := createAsset(t, db, "ул. Гагарина, 3")
	contract := createTestContract(t, db, client.ID, "Д-201")

	line := models.ContractAsset{
		ContractID: contract.ID, AssetID: asset.ID,
		Price: decimal.NewFromInt(2000),
	}
	if err := AddContractLine(db, &line); err != nil {
		t.Fatalf("позиция договора: %v", err)
	}

	p := models.Payment{
		ContractID: contract.ID,
		Amount:     decimal.NewFromInt(2000),
		Date:       date(2026, time.March, 10),
	}
	if err := CreatePayment(db, &p); err != nil {
		t.Fatalf("платёж: %v", err)
	}

	var got models.Contract
	db.First(&got, contract.ID)
	if got.IsFullyPaid {
		t.Fatal("неподтверждённый платёж не должен закрывать договор")
	}
}

func TestConfirmPaymentKeepsFirstConfirmationDate(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db)
	contract := createTestContract(t, db, client.ID, "Д-202")

	p := models.Payment{
		ContractID: contract.ID,
		Amount:     decimal.NewFromInt(100),
		Date:       date(2026, time.March, 10),
	}
	if err := CreatePayment(db, &p); err != nil {
		t.Fatalf("платёж: %v", err)
	}

	first, err := ConfirmPayment(db, p.ID, nil)
	if err != nil {
		t.Fatalf("первое подтверждение: %v", err)
	}
	stamp := *first.ConfirmationDate

	time.Sleep(10 * time.Millisecond)
	second, err := ConfirmPayment(db, p.ID, nil)
	if err != nil {
		t.Fatalf("повторное подтверждение: %v", err)
	}
	if !second.ConfirmationDate.Equal(stamp) {
		t.Fatal("повторное подтверждение не должно сдвигать дату")
	}
	if second.Status != models.PaymentCompleted {
		t.Fatalf("статус после подтверждения: %s", second.Status)
	}
}

func TestCreatePaymentGeneratesTransactionID(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db)
	contract := createTestContract(t, db, client.ID, "Д-203")

	p := models.Payment{
		ContractID: contract.ID,
		Amount:     decimal.NewFromInt(100),
		Date:       date(2026, time.March, 10),
	}
	if err := CreatePayment(db, &p); err != nil {
		t.Fatalf("платёж: %v", err)
	}
	if p.TransactionID == "" {
		t.Fatal("идентификатор транзакции должен генерироваться")
	}
}

func TestDeletePaymentRecalculatesContract(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db)
	asset := createAsset(t, db, "ул. Гагарина, 4")
	contract := createTestContract(t, db, client.ID, "Д-204")

	line := models.ContractAsset{
		ContractID: contract.ID, AssetID: asset.ID,
		Price: decimal.NewFromInt(300),
	}
	if err := AddContractLine(db, &line); err != nil {
		t.Fatalf("позиция договора: %v", err)
	}

	p := models.Payment{
		ContractID: contract.ID,
		Amount:     decimal.NewFromInt(300),
		Date:       date(2026, time.March, 10),
	}
	if err := CreatePayment(db, &p); err != nil {
		t.Fatalf("платёж: %v", err)
	}
	if _, err := ConfirmPayment(db, p.ID, nil); err != nil {
		t.Fatalf("подтверждение: %v", err)
	}

	var paid models.Contract
	db.First(&paid, contract.ID)
	if !paid.IsFullyPaid {
		t.Fatal("договор должен быть оплачен")
	}

	if err := DeletePayment(db, p.ID); err != nil {
		t.Fatalf("удаление платежа: %v", err)
	}
	var unpaid models.Contract
	db.First(&unpaid, contract.ID)
	if unpaid.IsFullyPaid {
		t.Fatal("после удаления платежа признак оплаты должен сняться")
	}
}
