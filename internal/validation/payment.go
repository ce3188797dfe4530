package validation

import (
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/models"
)

// ValidatePayment проверяет локальные инварианты платежа.
func ValidatePayment(p *models.Payment) error {
	errs := Errors{}

	if p.ContractID == 0 {
		errs.Add("contractId", "Не указан договор")
	}
	if !p.Amount.IsPositive() {
		errs.Add("amount", "Сумма платежа должна быть положительной")
	}
	// Сравниваем по началу суток: платёж "сегодня" допустим.
	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	if !p.Date.Before(tomorrow) {
		errs.Add("date", "Дата платежа не может быть в будущем")
	}
	if !p.Method.Valid() {
		errs.Add("method", "Неизвестный способ оплаты")
	}
	if !p.Status.Valid() {
		errs.Add("status", "Неизвестный статус платежа")
	}
	if p.Status == models.PaymentCompleted && !p.IsConfirmed {
		errs.Add("isConfirmed", "Завершённый платёж должен быть подтверждён")
	}

	return errs.AsError()
}
