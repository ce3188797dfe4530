package validation

import (
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"gorm.io/gorm"
)

// ValidateSlot проверяет даты слота и отсутствие пересечений с другими
// слотами той же площадки. Проверка пересечения выполняется одним запросом
// внутри транзакции записи — это единственная точка контроля пересечений.
func ValidateSlot(tx *gorm.DB, s *models.AvailabilitySlot) error {
	errs := Errors{}

	if s.AssetID == 0 {
		errs.Add("assetId", "Не указана площадка")
	}
	if s.EndDate.Before(s.StartDate) {
		errs.Add("endDate", "Дата окончания не может быть раньше даты начала")
	}
	if s.IsAvailable && s.ReservedByID != nil {
		errs.Add("reservedById", "Свободный слот не может ссылаться на договор")
	}
	if err := errs.AsError(); err != nil {
		return err
	}

	var overlapping int64
	q := tx.Model(&models.AvailabilitySlot{}).
		Where("asset_id = ? AND start_date < ? AND end_date > ?", s.AssetID, s.EndDate, s.StartDate)
	if s.ID != 0 {
		q = q.Where("id <> ?", s.ID)
	}
	if err := q.Count(&overlapping).Error; err != nil {
		return err
	}
	if overlapping > 0 {
		errs.Add("startDate", "Период пересекается с существующим слотом")
	}

	return errs.AsError()
}
