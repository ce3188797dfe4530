package validation

import (
	"strings"

	"github.com/AlgisPropolov/ad-rental-platform/models"
)

// ValidateDeal проверяет локальные инварианты сделки.
func ValidateDeal(d *models.Deal) error {
	errs := Errors{}

	if strings.TrimSpace(d.Title) == "" {
		errs.Add("title", "Укажите название сделки")
	}
	if d.ClientID == 0 {
		errs.Add("clientId", "Не указан клиент")
	}
	if d.ManagerID == 0 {
		errs.Add("managerId", "Не указан менеджер")
	}
	if !d.Status.Valid() {
		errs.Add("status", "Неизвестный статус сделки")
	}
	if d.Probability < 0 || d.Probability > 100 {
		errs.Add("probability", "Вероятность должна быть в диапазоне 0-100")
	}
	if d.ExpectedAmount.IsNegative() {
		errs.Add("expectedAmount", "Ожидаемая сумма не может быть отрицательной")
	}
	if d.ClosedAt != nil && !d.CreatedAt.IsZero() && d.ClosedAt.Before(d.CreatedAt) {
		errs.Add("closedAt", "Дата закрытия не может быть раньше даты создания")
	}

	return errs.AsError()
}

// ValidateDealTask проверяет локальные инварианты задачи по сделке.
func ValidateDealTask(t *models.DealTask) error {
	errs := Errors{}

	if t.DealID == 0 {
		errs.Add("dealId", "Не указана сделка")
	}
	if strings.TrimSpace(t.Title) == "" {
		errs.Add("title", "Укажите название задачи")
	}
	if !t.Priority.Valid() {
		errs.Add("priority", "Неизвестный приоритет")
	}
	if t.CompletedAt != nil && !t.IsDone {
		errs.Add("completedAt", "Дата выполнения возможна только у завершённой задачи")
	}

	return errs.AsError()
}
