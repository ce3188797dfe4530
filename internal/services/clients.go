// ad-rental-platform/internal/services/clients.go
package services

import (
	"github.com/AlgisPropolov/ad-rental-platform/internal/validation"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"gorm.io/gorm"
)

// CreateClient создаёт клиента после проверки реквизитов (включая ИНН).
func CreateClient(db *gorm.DB, client *models.Client) error {
	if err := validation.ValidateClient(client); err != nil {
		return err
	}
	return db.Create(client).Error
}

// UpdateClient сохраняет изменения клиента.
func UpdateClient(db *gorm.DB, client *models.Client) error {
	if err := validation.ValidateClient(client); err != nil {
		return err
	}
	return db.Save(client).Error
}

// DeleteClient удаляет клиента, если на него не ссылаются договоры и сделки.
func DeleteClient(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var contracts int64
		if err := tx.Model(&models.Contract{}).
			Where("client_id = ?", id).Count(&contracts).Error; err != nil {
			return err
		}
		var deals int64
		if err := tx.Model(&models.Deal{}).
			Where("client_id = ?", id).Count(&deals).Error; err != nil {
			return err
		}
		if contracts > 0 || deals > 0 {
			return ErrClientInUse
		}
		return tx.Delete(&models.Client{}, id).Error
	})
}
