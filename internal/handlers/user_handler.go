package handlers

import (
	"net/http"
	"strings"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/gin-gonic/gin"
)

// ListUsersHandler возвращает страницу пользователей с фильтром по роли.
func ListUsersHandler(c *gin.Context) {
	query := config.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось посчитать пользователей"})
		return
	}

	var users []models.User
	if err := query.Scopes(Paginate(c)).Order("full_name").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить пользователей"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, users, total))
}

// GetUserHandler возвращает одного пользователя.
func GetUserHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUserHandler создаёт пользователя.
func CreateUserHandler(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	if strings.TrimSpace(user.FullName) == "" || strings.TrimSpace(user.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите имя и email"})
		return
	}
	if user.Role == "" {
		user.Role = models.RoleManager
	}
	if !user.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестная роль"})
		return
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать пользователя"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUserHandler обновляет пользователя.
func UpdateUserHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
		return
	}
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	user.ID = id
	if !user.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестная роль"})
		return
	}
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить пользователя"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUserHandler удаляет пользователя.
func DeleteUserHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if result := config.DB.Delete(&models.User{}, id); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить пользователя"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Пользователь удалён"})
	}
}
