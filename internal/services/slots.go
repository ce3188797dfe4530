// ad-rental-platform/internal/services/slots.go
package services

import (
	"github.com/AlgisPropolov/ad-rental-platform/internal/validation"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"gorm.io/gorm"
)

// CreateSlot создаёт слот доступности.
// Проверка пересечений выполняется внутри транзакции записи, один раз.
func CreateSlot(db *gorm.DB, slot *models.AvailabilitySlot) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := validation.ValidateSlot(tx, slot); err != nil {
			return err
		}
		return tx.Create(slot).Error
	})
}

// UpdateSlot сохраняет изменения дат слота с той же проверкой пересечений.
// Менять зарезервированный слот нельзя — сначала его должен освободить договор.
func UpdateSlot(db *gorm.DB, slot *models.AvailabilitySlot) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var current models.AvailabilitySlot
		if err := tx.First(&current, slot.ID).Error; err != nil {
			return err
		}
		if current.ReservedByID != nil {
			return ErrSlotReserved
		}
		if err := validation.ValidateSlot(tx, slot); err != nil {
			return err
		}
		return tx.Save(slot).Error
	})
}

// DeleteSlot удаляет слот. Зарезервированные слоты не удаляются.
func DeleteSlot(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var slot models.AvailabilitySlot
		if err := tx.First(&slot, id).Error; err != nil {
			return err
		}
		if slot.ReservedByID != nil {
			return ErrSlotReserved
		}
		return tx.Delete(&slot).Error
	})
}

// reserveSlot помечает слот занятым и проставляет обратную ссылку на договор.
// Условное обновление защищает от одновременного бронирования: проигравшая
// сторона получает ErrSlotConflict (ни блокировок, ни повторов).
func reserveSlot(tx *gorm.DB, slotID, contractID uint) error {
	res := tx.Model(&models.AvailabilitySlot{}).
		Where("id = ? AND is_available = ?", slotID, true).
		Updates(map[string]interface{}{
			"is_available":   false,
			"reserved_by_id": contractID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSlotConflict
	}
	return nil
}

// releaseSlot возвращает слот в свободное состояние и снимает обратную ссылку.
func releaseSlot(tx *gorm.DB, slotID uint) error {
	return tx.Model(&models.AvailabilitySlot{}).
		Where("id = ?", slotID).
		Updates(map[string]interface{}{
			"is_available":   true,
			"reserved_by_id": nil,
		}).Error
}
