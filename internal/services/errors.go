// ad-rental-platform/internal/services/errors.go
package services

import "errors"

// Ошибки сервисного слоя, видимые вызывающей стороне.
var (
	// ErrSlotConflict — слот успел зарезервировать другой договор.
	// Возникает при проигрыше гонки за условное обновление слота.
	ErrSlotConflict = errors.New("слот уже зарезервирован другим договором")

	// ErrSlotReserved — операция невозможна над зарезервированным слотом.
	ErrSlotReserved = errors.New("слот зарезервирован договором, сначала освободите его")

	// Защита от удаления сущностей с зависимыми записями.
	ErrClientInUse         = errors.New("у клиента есть договоры или сделки, удаление невозможно")
	ErrAssetInUse          = errors.New("площадка используется в договорах, удаление невозможно")
	ErrContractHasPayments = errors.New("по договору есть платежи, удаление невозможно")
	ErrDealHasContracts    = errors.New("по сделке заключены договоры, удаление невозможно")
)
