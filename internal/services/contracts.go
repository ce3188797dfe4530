// ad-rental-platform/internal/services/contracts.go
package services

import (
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/internal/validation"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateContract создаёт договор. Сумма нового договора всегда ноль:
// она появится после добавления позиций.
func CreateContract(db *gorm.DB, c *models.Contract) error {
	c.TotalAmount = decimal.Zero
	stampSignedDate(c)
	if err := validation.ValidateContract(c); err != nil {
		return err
	}
	return db.Create(c).Error
}

// UpdateContract сохраняет изменения договора.
// Сумма не принимается с клиента, а переcчитывается по позициям.
func UpdateContract(db *gorm.DB, c *models.Contract) error {
	stampSignedDate(c)
	if err := validation.ValidateContract(c); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(c).Error; err != nil {
			return err
		}
		return recomputeContractTotal(tx, c.ID)
	})
}

// DeleteContract удаляет договор, освобождая его слоты.
// Договор с платежами удалить нельзя.
func DeleteContract(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var payments int64
		if err := tx.Model(&models.Payment{}).
			Where("contract_id = ?", id).Count(&payments).Error; err != nil {
			return err
		}
		if payments > 0 {
			return ErrContractHasPayments
		}

		var lines []models.ContractAsset
		if err := tx.Where("contract_id = ?", id).Find(&lines).Error; err != nil {
			return err
		}
		for _, line := range lines {
			if line.SlotID != nil {
				if err := releaseSlot(tx, *line.SlotID); err != nil {
					return err
				}
			}
		}
		if err := tx.Where("contract_id = ?", id).
			Delete(&models.ContractAsset{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Contract{}, id).Error
	})
}

// AddContractLine добавляет позицию в договор.
// Если позиция ссылается на слот, слот резервируется условным обновлением,
// и проигравший гонку вызов получает ErrSlotConflict целиком, без позиции.
func AddContractLine(db *gorm.DB, line *models.ContractAsset) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var contract models.Contract
		if err := tx.First(&contract, line.ContractID).Error; err != nil {
			return err
		}

		var slot *models.AvailabilitySlot
		if line.SlotID != nil {
			slot = &models.AvailabilitySlot{}
			if err := tx.First(slot, *line.SlotID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					slot = nil
				} else {
					return err
				}
			}
		}
		if err := validation.ValidateContractLine(line, slot); err != nil {
			return err
		}

		if err := tx.Create(line).Error; err != nil {
			return err
		}
		if line.SlotID != nil {
			if err := reserveSlot(tx, *line.SlotID, line.ContractID); err != nil {
				return err
			}
		}
		return recomputeContractTotal(tx, line.ContractID)
	})
}

// RemoveContractLine удаляет позицию договора и освобождает её слот.
func RemoveContractLine(db *gorm.DB, contractID, lineID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var line models.ContractAsset
		if err := tx.Where("id = ? AND contract_id = ?", lineID, contractID).
			First(&line).Error; err != nil {
			return err
		}
		if err := tx.Delete(&line).Error; err != nil {
			return err
		}
		if line.SlotID != nil {
			if err := releaseSlot(tx, *line.SlotID); err != nil {
				return err
			}
		}
		return recomputeContractTotal(tx, contractID)
	})
}

// recomputeContractTotal перечитывает позиции и выставляет сумму договора.
// Никаких инкрементов: сумма всегда считается заново по текущим строкам.
// После смены суммы заново оценивается и признак полной оплаты.
func recomputeContractTotal(tx *gorm.DB, contractID uint) error {
	var lines []models.ContractAsset
	if err := tx.Where("contract_id = ?", contractID).Find(&lines).Error; err != nil {
		return err
	}
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price)
	}
	if err := tx.Model(&models.Contract{}).Where("id = ?", contractID).
		Update("total_amount", total).Error; err != nil {
		return err
	}
	return refreshFullyPaid(tx, contractID)
}

// stampSignedDate проставляет дату подписания при установке флага.
// Дата подписания не бывает раньше даты начала аренды, поэтому для
// договоров с будущим периодом автодата прижимается к дате начала.
func stampSignedDate(c *models.Contract) {
	if c.Signed && c.SignedDate == nil {
		signed := time.Now().UTC().Truncate(24 * time.Hour)
		if signed.Before(c.StartDate) {
			signed = c.StartDate
		}
		c.SignedDate = &signed
	}
	if !c.Signed {
		c.SignedDate = nil
	}
}
