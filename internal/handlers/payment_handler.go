package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/internal/services"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// PaymentInput — входные данные платежа.
type PaymentInput struct {
	ContractID  uint                 `json:"contractId"`
	Amount      decimal.Decimal      `json:"amount"`
	Date        string               `json:"date"`
	Method      models.PaymentMethod `json:"method"`
	Notes       string               `json:"notes"`
	ReceiptPath string               `json:"receiptPath"`
}

func (in *PaymentInput) apply(p *models.Payment) error {
	date, err := parseDate(in.Date)
	if err != nil {
		return err
	}
	p.ContractID = in.ContractID
	p.Amount = in.Amount
	p.Date = date
	if in.Method != "" {
		p.Method = in.Method
	}
	p.Notes = in.Notes
	p.ReceiptPath = in.ReceiptPath
	return nil
}

// ListPaymentsHandler возвращает страницу платежей с фильтрами
// по договору, подтверждённости и периоду.
func ListPaymentsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Payment{})
	if contractID := c.Query("contract_id"); contractID != "" {
		query = query.Where("contract_id = ?", contractID)
	}
	if confirmed := c.Query("is_confirmed"); confirmed != "" {
		query = query.Where("is_confirmed = ?", confirmed == "true")
	}
	if from := c.Query("date_from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("date_to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось посчитать платежи"})
		return
	}

	var payments []models.Payment
	if err := query.Scopes(Paginate(c)).
		Preload("Contract").Preload("ConfirmedBy").
		Order("date DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить платежи"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, payments, total))
}

// GetPaymentHandler возвращает один платёж.
func GetPaymentHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payment models.Payment
	if err := config.DB.Preload("Contract").Preload("ConfirmedBy").
		First(&payment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Платёж не найден"})
		return
	}
	c.JSON(http.StatusOK, payment)
}

// CreatePaymentHandler создаёт платёж по договору.
func CreatePaymentHandler(c *gin.Context) {
	var input PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	payment := models.Payment{
		Method: models.MethodTransfer,
		Status: models.PaymentPending,
	}
	if err := input.apply(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
		return
	}
	if err := services.CreatePayment(config.DB, &payment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// UpdatePaymentHandler обновляет платёж.
func UpdatePaymentHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payment models.Payment
	if err := config.DB.First(&payment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Платёж не найден"})
		return
	}
	var input PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	if err := input.apply(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
		return
	}
	if err := services.UpdatePayment(config.DB, &payment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// DeletePaymentHandler удаляет платёж и пересчитывает оплату договора.
func DeletePaymentHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := services.DeletePayment(config.DB, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Платёж удалён"})
}

// ConfirmPaymentHandler подтверждает платёж. Дата подтверждения
// фиксируется при первом вызове и далее не меняется.
func ConfirmPaymentHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		ConfirmedByID *uint `json:"confirmedById"`
	}
	// Тело не обязательно: подтверждение без указания пользователя допустимо.
	_ = c.ShouldBindJSON(&input)

	payment, err := services.ConfirmPayment(config.DB, id, input.ConfirmedByID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// ExportPaymentsHandler выгружает платежи в Excel с теми же фильтрами,
// что и список.
func ExportPaymentsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Payment{})
	if contractID := c.Query("contract_id"); contractID != "" {
		query = query.Where("contract_id = ?", contractID)
	}
	if confirmed := c.Query("is_confirmed"); confirmed != "" {
		query = query.Where("is_confirmed = ?", confirmed == "true")
	}
	if from := c.Query("date_from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("date_to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var payments []models.Payment
	if err := query.Preload("Contract").Order("date DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить платежи для экспорта"})
		return
	}

	f := excelize.NewFile()
	sheetName := "Платежи"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Договор", "Сумма", "Дата", "Способ", "Статус", "Подтверждён", "Транзакция", "Комментарий"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, p := range payments {
		row := i + 2
		number := ""
		if p.Contract != nil {
			number = p.Contract.Number
		}
		confirmed := "Нет"
		if p.IsConfirmed {
			confirmed = "Да"
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), number)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.Amount.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.Date.Format("02.01.2006"))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), string(p.Method))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), string(p.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), confirmed)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), p.TransactionID)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), p.Notes)
	}

	fileName := fmt.Sprintf("payments_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось записать файл Excel"})
	}
}
