package handlers

import (
	"net/http"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/internal/services"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/gin-gonic/gin"
)

// DealTaskInput — входные данные задачи по сделке.
type DealTaskInput struct {
	DealID      uint                `json:"dealId"`
	AssigneeID  *uint               `json:"assigneeId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	DueDate     string              `json:"dueDate"`
	Priority    models.TaskPriority `json:"priority"`
	IsDone      *bool               `json:"isDone"`
}

func (in *DealTaskInput) apply(task *models.DealTask) error {
	if in.DueDate != "" {
		due, err := parseDate(in.DueDate)
		if err != nil {
			return err
		}
		task.DueDate = due
	}
	task.DealID = in.DealID
	task.AssigneeID = in.AssigneeID
	task.Title = in.Title
	task.Description = in.Description
	if in.Priority != "" {
		task.Priority = in.Priority
	}
	if in.IsDone != nil {
		task.IsDone = *in.IsDone
	}
	return nil
}

// ListDealTasksHandler возвращает задачи с фильтрами по сделке,
// исполнителю и завершённости.
func ListDealTasksHandler(c *gin.Context) {
	query := config.DB.Model(&models.DealTask{})

	if dealID := c.Query("deal_id"); dealID != "" {
		query = query.Where("deal_id = ?", dealID)
	}
	if assigneeID := c.Query("assignee_id"); assigneeID != "" {
		query = query.Where("assignee_id = ?", assigneeID)
	}
	if done := c.Query("is_done"); done != "" {
		query = query.Where("is_done = ?", done == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось посчитать задачи"})
		return
	}

	var tasks []models.DealTask
	if err := query.Scopes(Paginate(c)).Preload("Assignee").
		Order("due_date").Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить задачи"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, tasks, total))
}

// CreateDealTaskHandler создаёт задачу по сделке.
func CreateDealTaskHandler(c *gin.Context) {
	var input DealTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	task := models.DealTask{Priority: models.PriorityMedium}
	if err := input.apply(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
		return
	}
	if err := services.SaveDealTask(config.DB, &task); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateDealTaskHandler обновляет задачу. При выставлении is_done
// дата выполнения проставляется автоматически.
func UpdateDealTaskHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var task models.DealTask
	if err := config.DB.First(&task, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Задача не найдена"})
		return
	}
	var input DealTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	if err := input.apply(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
		return
	}
	if err := services.SaveDealTask(config.DB, &task); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteDealTaskHandler удаляет задачу.
func DeleteDealTaskHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if result := config.DB.Delete(&models.DealTask{}, id); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить задачу"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Задача не найдена"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Задача удалена"})
	}
}
