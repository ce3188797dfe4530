package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/internal/tasks"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/gin-gonic/gin"
)

// ReportsDir — каталог готовых файлов отчётов. Переопределяется
// при старте из конфигурации.
var ReportsDir = "./storage/reports"

// ReportInput — заявка на финансовый отчёт.
type ReportInput struct {
	Title       string                  `json:"title"`
	PeriodType  models.ReportPeriodType `json:"periodType"`
	PeriodStart string                  `json:"periodStart"`
	PeriodEnd   string                  `json:"periodEnd"`
	CreatedByID *uint                   `json:"createdById"`
}

// ListReportsHandler возвращает страницу отчётов.
func ListReportsHandler(c *gin.Context) {
	query := config.DB.Model(&models.FinancialReport{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось посчитать отчёты"})
		return
	}

	var reportsList []models.FinancialReport
	if err := query.Scopes(Paginate(c)).Preload("CreatedBy").
		Order("created_at DESC").Find(&reportsList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить отчёты"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, reportsList, total))
}

// GetReportHandler возвращает один отчёт вместе с его данными.
func GetReportHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var report models.FinancialReport
	if err := config.DB.Preload("CreatedBy").First(&report, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Отчёт не найден"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// CreateReportHandler принимает заявку на отчёт и ставит генерацию
// в очередь. Клиент сразу получает отчёт в статусе pending.
func CreateReportHandler(c *gin.Context) {
	var input ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	if input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите название отчёта"})
		return
	}
	periodType := input.PeriodType
	if periodType == "" {
		periodType = models.PeriodMonth
	}
	if !periodType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестная гранулярность отчёта"})
		return
	}
	start, err := parseDate(input.PeriodStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
		return
	}
	end, err := parseDate(input.PeriodEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Конец периода раньше его начала"})
		return
	}

	report := models.FinancialReport{
		Title:       input.Title,
		PeriodType:  periodType,
		PeriodStart: start,
		PeriodEnd:   end,
		Status:      models.ReportPending,
		CreatedByID: input.CreatedByID,
	}
	if err := config.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать отчёт"})
		return
	}
	if err := tasks.EnqueueReport(config.DB, ReportsDir, report.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось поставить отчёт в очередь"})
		return
	}
	c.JSON(http.StatusCreated, report)
}

// DeleteReportHandler удаляет отчёт.
func DeleteReportHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if result := config.DB.Delete(&models.FinancialReport{}, id); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить отчёт"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Отчёт не найден"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Отчёт удалён"})
	}
}

// GenerateReportHandler повторно ставит отчёт в очередь генерации,
// например после сбоя или смены данных за период.
func GenerateReportHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var report models.FinancialReport
	if err := config.DB.First(&report, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Отчёт не найден"})
		return
	}
	if err := config.DB.Model(&report).
		Update("status", models.ReportPending).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить отчёт"})
		return
	}
	if err := tasks.EnqueueReport(config.DB, ReportsDir, report.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось поставить отчёт в очередь"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Генерация отчёта запущена"})
}

// DownloadReportHandler отдаёт готовый файл отчёта.
// Формат задаётся query-параметром format: xlsx (по умолчанию) или docx.
func DownloadReportHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var report models.FinancialReport
	if err := config.DB.First(&report, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Отчёт не найден"})
		return
	}
	if report.Status != models.ReportReady {
		c.JSON(http.StatusConflict, gin.H{"error": "Отчёт ещё не готов"})
		return
	}

	var path string
	switch c.DefaultQuery("format", "xlsx") {
	case "xlsx":
		path = report.ExcelPath
	case "docx":
		path = report.WordPath
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестный формат, доступны xlsx и docx"})
		return
	}
	if path == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Файл отчёта не найден"})
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
