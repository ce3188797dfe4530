// ad-rental-platform/internal/services/schedule.go
package services

import (
	"fmt"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/Knetic/govaluate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ScheduledPayment — один взнос расчётного графика оплат.
type ScheduledPayment struct {
	Title   string          `json:"title"`
	DueDate time.Time       `json:"dueDate"`
	Amount  decimal.Decimal `json:"amount"`
}

// installmentRule описывает формулу взноса. Формулы записаны в терминах
// переменной "Сумма" и вычисляются govaluate, так что их можно править,
// не трогая код расчёта. atEnd переносит срок взноса на конец аренды.
type installmentRule struct {
	title   string
	formula string
	atEnd   bool
}

var scheduleRules = map[models.PaymentType][]installmentRule{
	models.PaymentFull: {
		{title: "Предоплата 100%", formula: "Сумма"},
	},
	models.PaymentPartial: {
		{title: "Аванс 50%", formula: "Сумма * 0.5"},
		{title: "Доплата 50%", formula: "Сумма - Сумма * 0.5", atEnd: true},
	},
	models.PaymentPostpay: {
		{title: "Постоплата 100%", formula: "Сумма", atEnd: true},
	},
}

// BuildSchedule строит график оплат по договору.
// Последний взнос выравнивается до остатка, чтобы сумма графика
// сходилась с суммой договора копейка в копейку.
func BuildSchedule(db *gorm.DB, contractID uint) ([]ScheduledPayment, error) {
	var contract models.Contract
	if err := db.First(&contract, contractID).Error; err != nil {
		return nil, err
	}
	rules, ok := scheduleRules[contract.PaymentType]
	if !ok {
		return nil, fmt.Errorf("неизвестная схема оплаты: %s", contract.PaymentType)
	}

	total, _ := contract.TotalAmount.Float64()
	params := map[string]interface{}{"Сумма": total}

	schedule := make([]ScheduledPayment, 0, len(rules))
	accrued := decimal.Zero
	for i, rule := range rules {
		var amount decimal.Decimal
		if i == len(rules)-1 {
			amount = contract.TotalAmount.Sub(accrued)
		} else {
			expr, err := govaluate.NewEvaluableExpression(rule.formula)
			if err != nil {
				return nil, fmt.Errorf("формула взноса %q: %w", rule.title, err)
			}
			value, err := expr.Evaluate(params)
			if err != nil {
				return nil, fmt.Errorf("расчёт взноса %q: %w", rule.title, err)
			}
			amount = decimal.NewFromFloat(value.(float64)).Round(2)
		}
		accrued = accrued.Add(amount)

		due := contract.StartDate
		if rule.atEnd {
			due = contract.EndDate
		}
		schedule = append(schedule, ScheduledPayment{
			Title:   rule.title,
			DueDate: due,
			Amount:  amount,
		})
	}
	return schedule, nil
}
