package handlers

import (
	"net/http"
	"strings"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/gin-gonic/gin"
)

// ListTagsHandler возвращает все теги.
func ListTagsHandler(c *gin.Context) {
	var tags []models.Tag
	if err := config.DB.Order("name").Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить теги"})
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTagHandler создаёт тег.
func CreateTagHandler(c *gin.Context) {
	var tag models.Tag
	if err := c.ShouldBindJSON(&tag); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	if strings.TrimSpace(tag.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите название тега"})
		return
	}
	if err := config.DB.Create(&tag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать тег"})
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// UpdateTagHandler обновляет тег.
func UpdateTagHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var tag models.Tag
	if err := config.DB.First(&tag, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Тег не найден"})
		return
	}
	var input struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	tag.Name = input.Name
	if input.Color != "" {
		tag.Color = input.Color
	}
	if err := config.DB.Save(&tag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить тег"})
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DeleteTagHandler удаляет тег. Связи с площадками снимаются каскадом
// таблицы связей.
func DeleteTagHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if result := config.DB.Delete(&models.Tag{}, id); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить тег"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Тег не найден"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Тег удалён"})
	}
}
