package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/internal/services"
	"github.com/AlgisPropolov/ad-rental-platform/internal/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError переводит ошибку сервисного слоя в HTTP-ответ.
// Ошибки валидации отдаются с разбивкой по полям, конфликты
// (занятый слот, зависимые записи) получают статус 409.
func respondError(c *gin.Context, err error) {
	var fields validation.Errors
	if errors.As(err, &fields) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные", "fields": fields})
		return
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Запись не найдена"})
	case errors.Is(err, services.ErrSlotConflict),
		errors.Is(err, services.ErrSlotReserved),
		errors.Is(err, services.ErrClientInUse),
		errors.Is(err, services.ErrAssetInUse),
		errors.Is(err, services.ErrContractHasPayments),
		errors.Is(err, services.ErrDealHasContracts):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseID читает числовой параметр :id из пути. При ошибке пишет 400
// и возвращает false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор"})
		return 0, false
	}
	return uint(id), true
}

// parseDate разбирает дату в формате ГГГГ-ММ-ДД.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
