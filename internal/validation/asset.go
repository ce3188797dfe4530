package validation

import (
	"strings"

	"github.com/AlgisPropolov/ad-rental-platform/models"
)

// ValidateAsset проверяет локальные инварианты рекламной площадки.
// Дневная ставка строго положительна: нулевые ставки — это всегда ошибка
// заполнения, а не бесплатная площадка.
func ValidateAsset(a *models.Asset) error {
	errs := Errors{}

	if strings.TrimSpace(a.Name) == "" {
		errs.Add("name", "Укажите название площадки")
	}
	if strings.TrimSpace(a.Location) == "" {
		errs.Add("location", "Укажите местоположение")
	}
	if !a.AssetType.Valid() {
		errs.Add("assetType", "Неизвестный тип площадки")
	}
	if a.Zone != "" && !a.Zone.Valid() {
		errs.Add("zone", "Неизвестная зона")
	}
	if !a.DailyRate.IsPositive() {
		errs.Add("dailyRate", "Дневная ставка должна быть положительной")
	}

	return errs.AsError()
}
