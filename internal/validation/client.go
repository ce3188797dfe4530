package validation

import (
	"strings"

	"github.com/AlgisPropolov/ad-rental-platform/models"
)

// Весовые коэффициенты контрольной суммы 10-значного ИНН.
var innWeights = [9]int{2, 4, 10, 3, 5, 9, 4, 6, 8}

// ValidINN проверяет формат ИНН: 10 или 12 цифр, для 10-значного
// дополнительно сверяется контрольная цифра (сумма по весам, mod 11, mod 10).
func ValidINN(inn string) bool {
	if len(inn) != 10 && len(inn) != 12 {
		return false
	}
	for _, r := range inn {
		if r < '0' || r > '9' {
			return false
		}
	}
	if len(inn) == 10 {
		sum := 0
		for i, w := range innWeights {
			sum += int(inn[i]-'0') * w
		}
		if sum%11%10 != int(inn[9]-'0') {
			return false
		}
	}
	return true
}

// ValidateClient проверяет локальные инварианты клиента.
func ValidateClient(c *models.Client) error {
	errs := Errors{}

	if len(strings.TrimSpace(c.Name)) < 3 {
		errs.Add("name", "Название должно содержать минимум 3 символа")
	}
	if c.INN != nil && *c.INN != "" && !ValidINN(*c.INN) {
		errs.Add("inn", "ИНН должен содержать 10 или 12 цифр и корректную контрольную сумму")
	}
	if c.IsVIP && strings.TrimSpace(c.Phone) == "" {
		errs.Add("phone", "Для VIP клиента телефон обязателен")
	}
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		errs.Add("email", "Некорректный email")
	}

	return errs.AsError()
}
