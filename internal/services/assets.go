// ad-rental-platform/internal/services/assets.go
package services

import (
	"github.com/AlgisPropolov/ad-rental-platform/internal/validation"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"gorm.io/gorm"
)

// CreateAsset создаёт рекламную площадку.
func CreateAsset(db *gorm.DB, asset *models.Asset) error {
	if err := validation.ValidateAsset(asset); err != nil {
		return err
	}
	return db.Create(asset).Error
}

// UpdateAsset сохраняет изменения площадки.
func UpdateAsset(db *gorm.DB, asset *models.Asset) error {
	if err := validation.ValidateAsset(asset); err != nil {
		return err
	}
	return db.Save(asset).Error
}

// DeleteAsset удаляет площадку вместе с её слотами.
// Площадка, на которую ссылаются позиции договоров, не удаляется.
func DeleteAsset(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var lines int64
		if err := tx.Model(&models.ContractAsset{}).
			Where("asset_id = ?", id).Count(&lines).Error; err != nil {
			return err
		}
		if lines > 0 {
			return ErrAssetInUse
		}
		if err := tx.Where("asset_id = ?", id).
			Delete(&models.AvailabilitySlot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Asset{}, id).Error
	})
}
