// ad-rental-platform/internal/services/payments.go
package services

import (
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/internal/validation"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreatePayment создаёт платёж по договору. Если идентификатор транзакции
// не передан, он генерируется. Признак полной оплаты договора пересчитывается
// в той же транзакции.
func CreatePayment(db *gorm.DB, p *models.Payment) error {
	if p.Method == "" {
		p.Method = models.MethodTransfer
	}
	if p.Status == "" {
		p.Status = models.PaymentPending
	}
	if p.TransactionID == "" {
		p.TransactionID = uuid.NewString()
	}
	stampConfirmation(p)
	if err := validation.ValidatePayment(p); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Contract{}, p.ContractID).Error; err != nil {
			return err
		}
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return refreshFullyPaid(tx, p.ContractID)
	})
}

// UpdatePayment сохраняет изменения платежа и пересчитывает оплату договора.
func UpdatePayment(db *gorm.DB, p *models.Payment) error {
	stampConfirmation(p)
	if err := validation.ValidatePayment(p); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		return refreshFullyPaid(tx, p.ContractID)
	})
}

// ConfirmPayment подтверждает платёж от имени пользователя.
// Дата подтверждения проставляется только при первом подтверждении,
// повторный вызов её не сдвигает.
func ConfirmPayment(db *gorm.DB, paymentID uint, userID *uint) (*models.Payment, error) {
	var p models.Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, paymentID).Error; err != nil {
			return err
		}
		p.IsConfirmed = true
		p.Status = models.PaymentCompleted
		if p.ConfirmationDate == nil {
			now := time.Now().UTC()
			p.ConfirmationDate = &now
		}
		if userID != nil {
			p.ConfirmedByID = userID
		}
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		return refreshFullyPaid(tx, p.ContractID)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePayment удаляет платёж и пересчитывает оплату договора.
func DeletePayment(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var p models.Payment
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&p).Error; err != nil {
			return err
		}
		return refreshFullyPaid(tx, p.ContractID)
	})
}

// refreshFullyPaid сравнивает сумму подтверждённых платежей с суммой договора
// и выставляет признак полной оплаты. Сравнение точное, в decimal:
// 1000.00 + 1500.00 против 2500.00 сходится без поправок на плавающую точку.
func refreshFullyPaid(tx *gorm.DB, contractID uint) error {
	var contract models.Contract
	if err := tx.First(&contract, contractID).Error; err != nil {
		return err
	}
	var confirmed []models.Payment
	if err := tx.Where("contract_id = ? AND is_confirmed = ?", contractID, true).
		Find(&confirmed).Error; err != nil {
		return err
	}
	paid := decimal.Zero
	for _, pay := range confirmed {
		paid = paid.Add(pay.Amount)
	}
	fullyPaid := contract.TotalAmount.IsPositive() &&
		paid.GreaterThanOrEqual(contract.TotalAmount)
	if fullyPaid == contract.IsFullyPaid {
		return nil
	}
	return tx.Model(&models.Contract{}).Where("id = ?", contractID).
		Update("is_fully_paid", fullyPaid).Error
}

// stampConfirmation синхронизирует дату подтверждения с флагом.
func stampConfirmation(p *models.Payment) {
	if p.IsConfirmed && p.ConfirmationDate == nil {
		now := time.Now().UTC()
		p.ConfirmationDate = &now
	}
	if !p.IsConfirmed {
		p.ConfirmationDate = nil
	}
}
