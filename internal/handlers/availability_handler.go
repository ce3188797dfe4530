package handlers

import (
	"net/http"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/internal/services"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/gin-gonic/gin"
)

// SlotInput — входные данные слота доступности. Даты в формате ГГГГ-ММ-ДД.
type SlotInput struct {
	AssetID   uint   `json:"assetId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (in *SlotInput) apply(slot *models.AvailabilitySlot) error {
	start, err := parseDate(in.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return err
	}
	slot.AssetID = in.AssetID
	slot.StartDate = start
	slot.EndDate = end
	return nil
}

// slotView — строка календаря доступности площадки.
type slotView struct {
	ID             uint   `json:"id"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	IsAvailable    bool   `json:"isAvailable"`
	ReservedByName string `json:"reservedByName,omitempty"`
}

// GetAssetSlotsHandler возвращает календарь доступности площадки:
// слоты с отметкой занятости и номером договора-резерватора.
// Поддерживает фильтры from, to (ГГГГ-ММ-ДД) и available.
func GetAssetSlotsHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := config.DB.First(&models.Asset{}, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Площадка не найдена"})
		return
	}

	query := config.DB.Preload("ReservedBy").Where("asset_id = ?", id)
	if from := c.Query("from"); from != "" {
		parsed, err := parseDate(from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
			return
		}
		query = query.Where("end_date >= ?", parsed)
	}
	if to := c.Query("to"); to != "" {
		parsed, err := parseDate(to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
			return
		}
		query = query.Where("start_date <= ?", parsed)
	}
	if available := c.Query("available"); available != "" {
		query = query.Where("is_available = ?", available == "true")
	}

	var slots []models.AvailabilitySlot
	if err := query.Order("start_date").Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить слоты"})
		return
	}

	views := make([]slotView, 0, len(slots))
	for _, slot := range slots {
		view := slotView{
			ID:          slot.ID,
			StartDate:   slot.StartDate.Format("2006-01-02"),
			EndDate:     slot.EndDate.Format("2006-01-02"),
			IsAvailable: slot.IsAvailable,
		}
		if slot.ReservedBy != nil {
			view.ReservedByName = slot.ReservedBy.Number
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, gin.H{"slots": views})
}

// CreateSlotHandler создаёт слот доступности.
// Пересекающийся слот той же площадки отклоняется.
func CreateSlotHandler(c *gin.Context) {
	var input SlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	slot := models.AvailabilitySlot{IsAvailable: true}
	if err := input.apply(&slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
		return
	}
	if err := services.CreateSlot(config.DB, &slot); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// UpdateSlotHandler меняет даты свободного слота.
func UpdateSlotHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var slot models.AvailabilitySlot
	if err := config.DB.First(&slot, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Слот не найден"})
		return
	}
	var input SlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	if err := input.apply(&slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
		return
	}
	if err := services.UpdateSlot(config.DB, &slot); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// DeleteSlotHandler удаляет свободный слот.
func DeleteSlotHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := services.DeleteSlot(config.DB, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Слот удалён"})
}
