package validation

import (
	"strings"

	"github.com/AlgisPropolov/ad-rental-platform/models"
)

// ValidateContract проверяет локальные инварианты договора.
func ValidateContract(c *models.Contract) error {
	errs := Errors{}

	if strings.TrimSpace(c.Number) == "" {
		errs.Add("number", "Укажите номер договора")
	}
	if c.ClientID == 0 {
		errs.Add("clientId", "Не указан клиент")
	}
	if c.EndDate.Before(c.StartDate) {
		errs.Add("endDate", "Дата окончания не может быть раньше даты начала")
	}
	if !c.PaymentType.Valid() {
		errs.Add("paymentType", "Неизвестная схема оплаты")
	}
	if c.SignedDate != nil && c.SignedDate.Before(c.StartDate) {
		errs.Add("signedDate", "Дата подписания не может быть раньше даты начала")
	}
	if c.TotalAmount.IsNegative() {
		errs.Add("totalAmount", "Сумма договора не может быть отрицательной")
	}

	return errs.AsError()
}

// ValidateContractLine проверяет позицию договора перед привязкой.
// Принадлежность слота площадке и его доступность проверяются по
// уже загруженному слоту (загружается в той же транзакции).
func ValidateContractLine(line *models.ContractAsset, slot *models.AvailabilitySlot) error {
	errs := Errors{}

	if line.ContractID == 0 {
		errs.Add("contractId", "Не указан договор")
	}
	if line.AssetID == 0 {
		errs.Add("assetId", "Не указана площадка")
	}
	if line.Price.IsNegative() {
		errs.Add("price", "Цена позиции не может быть отрицательной")
	}

	if line.SlotID != nil {
		switch {
		case slot == nil:
			errs.Add("slotId", "Слот не найден")
		case slot.AssetID != line.AssetID:
			errs.Add("slotId", "Слот принадлежит другой площадке")
		case !slot.IsAvailable:
			errs.Add("slotId", "Слот уже зарезервирован")
		}
	}

	return errs.AsError()
}
