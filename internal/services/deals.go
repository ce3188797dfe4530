// ad-rental-platform/internal/services/deals.go
package services

import (
	"fmt"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/internal/validation"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"gorm.io/gorm"
)

// Срок первичного контакта после создания сделки.
const firstContactDays = 3

// CreateDeal создаёт сделку и автоматическую задачу первичного контакта
// со сроком через три дня. Сделка и задача пишутся в одной транзакции.
func CreateDeal(db *gorm.DB, deal *models.Deal) error {
	if deal.Status == "" {
		deal.Status = models.DealNew
	}
	stampClosedAt(deal)
	if err := validation.ValidateDeal(deal); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, deal.ClientID).Error; err != nil {
			return err
		}
		if err := tx.Create(deal).Error; err != nil {
			return err
		}
		task := models.DealTask{
			DealID:      deal.ID,
			AssigneeID:  &deal.ManagerID,
			Title:       fmt.Sprintf("Первичный контакт с %s", client.Name),
			Description: fmt.Sprintf("Связаться с клиентом %s для уточнения деталей", client.Name),
			DueDate:     time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, firstContactDays),
			Priority:    models.PriorityMedium,
		}
		return tx.Create(&task).Error
	})
}

// UpdateDeal сохраняет изменения сделки.
// При переходе в конечный статус (won/lost) проставляется дата закрытия.
func UpdateDeal(db *gorm.DB, deal *models.Deal) error {
	stampClosedAt(deal)
	if err := validation.ValidateDeal(deal); err != nil {
		return err
	}
	return db.Save(deal).Error
}

// DeleteDeal удаляет сделку вместе с её задачами.
// Сделку с заключёнными договорами удалить нельзя.
func DeleteDeal(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var contracts int64
		if err := tx.Model(&models.Contract{}).
			Where("deal_id = ?", id).Count(&contracts).Error; err != nil {
			return err
		}
		if contracts > 0 {
			return ErrDealHasContracts
		}
		if err := tx.Where("deal_id = ?", id).
			Delete(&models.DealTask{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Deal{}, id).Error
	})
}

// SaveDealTask создаёт или обновляет задачу по сделке.
// При выставлении is_done дата выполнения проставляется один раз
// и не затирается при последующих сохранениях.
func SaveDealTask(db *gorm.DB, task *models.DealTask) error {
	if task.IsDone && task.CompletedAt == nil {
		now := time.Now().UTC()
		task.CompletedAt = &now
	}
	if !task.IsDone {
		task.CompletedAt = nil
	}
	if err := validation.ValidateDealTask(task); err != nil {
		return err
	}
	return db.Save(task).Error
}

// stampClosedAt фиксирует дату закрытия при конечном статусе.
func stampClosedAt(deal *models.Deal) {
	if deal.Status.Terminal() && deal.ClosedAt == nil {
		now := time.Now().UTC()
		deal.ClosedAt = &now
	}
	if !deal.Status.Terminal() {
		deal.ClosedAt = nil
	}
}
