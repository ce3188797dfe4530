package handlers

import (
	"net/http"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/internal/services"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/gin-gonic/gin"
)

// GetDashboardSummaryHandler возвращает живую сводку показателей
// за последние 12 месяцев.
func GetDashboardSummaryHandler(c *gin.Context) {
	now := time.Now().UTC()
	snapshot, err := services.BuildDashboardSnapshot(config.DB, now.AddDate(-1, 0, 0), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось собрать сводку"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetAnalyticsHandler возвращает аналитику за произвольный период
// (query-параметры start и end, ГГГГ-ММ-ДД).
func GetAnalyticsHandler(c *gin.Context) {
	now := time.Now().UTC()
	from := now.AddDate(-1, 0, 0)
	to := now

	if start := c.Query("start"); start != "" {
		parsed, err := parseDate(start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
			return
		}
		from = parsed
	}
	if end := c.Query("end"); end != "" {
		parsed, err := parseDate(end)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
			return
		}
		to = parsed
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Конец периода раньше его начала"})
		return
	}

	snapshot, err := services.BuildDashboardSnapshot(config.DB, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось собрать аналитику"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetTasksDueSoonHandler возвращает задачи со сроком в ближайшие дни.
func GetTasksDueSoonHandler(c *gin.Context) {
	tasks, err := services.TasksDueSoon(config.DB, 3)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить задачи"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// ListDashboardsHandler возвращает сохранённые дашборды.
func ListDashboardsHandler(c *gin.Context) {
	var dashboards []models.Dashboard
	if err := config.DB.Order("is_default DESC, title").Find(&dashboards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить дашборды"})
		return
	}
	c.JSON(http.StatusOK, dashboards)
}

// CreateDashboardHandler создаёт дашборд.
func CreateDashboardHandler(c *gin.Context) {
	var dashboard models.Dashboard
	if err := c.ShouldBindJSON(&dashboard); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	if dashboard.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите название дашборда"})
		return
	}
	if err := config.DB.Create(&dashboard).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать дашборд"})
		return
	}
	c.JSON(http.StatusCreated, dashboard)
}

// UpdateDashboardHandler обновляет дашборд.
func UpdateDashboardHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dashboard models.Dashboard
	if err := config.DB.First(&dashboard, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Дашборд не найден"})
		return
	}
	if err := c.ShouldBindJSON(&dashboard); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	dashboard.ID = id
	if err := config.DB.Save(&dashboard).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить дашборд"})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// DeleteDashboardHandler удаляет дашборд.
func DeleteDashboardHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if result := config.DB.Delete(&models.Dashboard{}, id); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить дашборд"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Дашборд не найден"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Дашборд удалён"})
	}
}

// RefreshDashboardHandler пересчитывает снапшот дашборда.
func RefreshDashboardHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	dashboard, err := services.RefreshDashboard(config.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
