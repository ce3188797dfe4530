// ad-rental-platform/internal/validation/validation.go
//
// Бизнес-валидация сущностей. Каждая проверка возвращает Errors —
// отображение "поле -> причина", которое обработчики отдают клиенту как есть.
// Валидация выполняется до любых производных эффектов и до записи в БД.
package validation

import (
	"sort"
	"strings"
)

// Errors — структурированная ошибка валидации: имя поля -> человекочитаемая причина.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "ошибка валидации"
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// Add записывает причину для поля, если она ещё не записана
// (первая ошибка по полю важнее уточняющих).
func (e Errors) Add(field, reason string) {
	if _, ok := e[field]; !ok {
		e[field] = reason
	}
}

// AsError возвращает e как error либо nil, если ошибок нет.
func (e Errors) AsError() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
