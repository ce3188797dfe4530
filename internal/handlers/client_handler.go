package handlers

import (
	"net/http"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/internal/services"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/gin-gonic/gin"
)

// ListClientsHandler возвращает страницу клиентов.
// Поддерживает поиск по имени/ИНН (search) и фильтры is_vip, is_active.
func ListClientsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Client{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR inn LIKE ?", like, like)
	}
	if vip := c.Query("is_vip"); vip != "" {
		query = query.Where("is_vip = ?", vip == "true")
	}
	if active := c.Query("is_active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось посчитать клиентов"})
		return
	}

	var clients []models.Client
	if err := query.Scopes(Paginate(c)).Preload("Manager").
		Order("created_at DESC").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить клиентов"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, clients, total))
}

// GetClientHandler возвращает одного клиента.
func GetClientHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var client models.Client
	if err := config.DB.Preload("Manager").First(&client, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Клиент не найден"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClientHandler создаёт клиента.
func CreateClientHandler(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	if err := services.CreateClient(config.DB, &client); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClientHandler обновляет клиента.
func UpdateClientHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var client models.Client
	if err := config.DB.First(&client, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Клиент не найден"})
		return
	}
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	client.ID = id
	if err := services.UpdateClient(config.DB, &client); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClientHandler удаляет клиента без договоров и сделок.
func DeleteClientHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := services.DeleteClient(config.DB, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Клиент удалён"})
}
