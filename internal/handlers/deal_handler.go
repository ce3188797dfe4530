package handlers

import (
	"net/http"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/internal/services"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DealInput — входные данные сделки.
type DealInput struct {
	Title          string            `json:"title"`
	ClientID       uint              `json:"clientId"`
	ManagerID      uint              `json:"managerId"`
	Status         models.DealStatus `json:"status"`
	ExpectedAmount decimal.Decimal   `json:"expectedAmount"`
	Probability    *int              `json:"probability"`
}

func (in *DealInput) apply(deal *models.Deal) {
	deal.Title = in.Title
	deal.ClientID = in.ClientID
	deal.ManagerID = in.ManagerID
	if in.Status != "" {
		deal.Status = in.Status
	}
	deal.ExpectedAmount = in.ExpectedAmount
	if in.Probability != nil {
		deal.Probability = *in.Probability
	}
}

// ListDealsHandler возвращает страницу сделок с фильтрами по статусу,
// клиенту и менеджеру.
func ListDealsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Deal{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if managerID := c.Query("manager_id"); managerID != "" {
		query = query.Where("manager_id = ?", managerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось посчитать сделки"})
		return
	}

	var deals []models.Deal
	if err := query.Scopes(Paginate(c)).
		Preload("Client").Preload("Manager").
		Order("created_at DESC").Find(&deals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить сделки"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, deals, total))
}

// GetDealHandler возвращает сделку с задачами.
func GetDealHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var deal models.Deal
	if err := config.DB.Preload("Client").Preload("Manager").
		Preload("Tasks").First(&deal, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Сделка не найдена"})
		return
	}
	c.JSON(http.StatusOK, deal)
}

// CreateDealHandler создаёт сделку. Задача первичного контакта
// создаётся автоматически.
func CreateDealHandler(c *gin.Context) {
	var input DealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	deal := models.Deal{Status: models.DealNew, Probability: 50}
	input.apply(&deal)

	if err := services.CreateDeal(config.DB, &deal); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, deal)
}

// UpdateDealHandler обновляет сделку.
func UpdateDealHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var deal models.Deal
	if err := config.DB.First(&deal, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Сделка не найдена"})
		return
	}
	var input DealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	input.apply(&deal)

	if err := services.UpdateDeal(config.DB, &deal); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

// DeleteDealHandler удаляет сделку без договоров.
func DeleteDealHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := services.DeleteDeal(config.DB, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Сделка удалена"})
}
