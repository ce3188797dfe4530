package handlers

import (
	"net/http"
	"strconv"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/internal/services"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ContractInput — входные данные договора. Сумма не принимается:
// она всегда равна сумме позиций и считается сервером.
type ContractInput struct {
	Number      string             `json:"number"`
	ClientID    uint               `json:"clientId"`
	DealID      *uint              `json:"dealId"`
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate"`
	PaymentType models.PaymentType `json:"paymentType"`
	Signed      *bool              `json:"signed"`
	IsActive    *bool              `json:"isActive"`
}

func (in *ContractInput) apply(contract *models.Contract) error {
	start, err := parseDate(in.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return err
	}
	contract.Number = in.Number
	contract.ClientID = in.ClientID
	contract.DealID = in.DealID
	contract.StartDate = start
	contract.EndDate = end
	if in.PaymentType != "" {
		contract.PaymentType = in.PaymentType
	}
	if in.Signed != nil {
		contract.Signed = *in.Signed
	}
	if in.IsActive != nil {
		contract.IsActive = *in.IsActive
	}
	return nil
}

// ContractLineInput — позиция договора: площадка, опциональный слот и цена.
type ContractLineInput struct {
	AssetID uint            `json:"assetId"`
	SlotID  *uint           `json:"slotId"`
	Price   decimal.Decimal `json:"price"`
	Notes   string          `json:"notes"`
}

// ListContractsHandler возвращает страницу договоров с фильтрами.
func ListContractsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Contract{})

	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if signed := c.Query("signed"); signed != "" {
		query = query.Where("signed = ?", signed == "true")
	}
	if active := c.Query("is_active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("number LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось посчитать договоры"})
		return
	}

	var contracts []models.Contract
	if err := query.Scopes(Paginate(c)).Preload("Client").
		Order("created_at DESC").Find(&contracts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить договоры"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, contracts, total))
}

// GetContractHandler возвращает договор с позициями и платежами.
func GetContractHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var contract models.Contract
	if err := config.DB.Preload("Client").Preload("Deal").
		Preload("Lines.Asset").Preload("Lines.Slot").
		Preload("Payments").First(&contract, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Договор не найден"})
		return
	}
	c.JSON(http.StatusOK, contract)
}

// CreateContractHandler создаёт договор с нулевой суммой.
func CreateContractHandler(c *gin.Context) {
	var input ContractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	contract := models.Contract{PaymentType: models.PaymentFull, IsActive: true}
	if err := input.apply(&contract); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
		return
	}
	if err := services.CreateContract(config.DB, &contract); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

// UpdateContractHandler обновляет договор.
func UpdateContractHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var contract models.Contract
	if err := config.DB.First(&contract, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Договор не найден"})
		return
	}
	var input ContractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	if err := input.apply(&contract); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Даты указываются в формате ГГГГ-ММ-ДД"})
		return
	}
	if err := services.UpdateContract(config.DB, &contract); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

// DeleteContractHandler удаляет договор без платежей, освобождая слоты.
func DeleteContractHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := services.DeleteContract(config.DB, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Договор удалён"})
}

// AddContractLineHandler добавляет позицию в договор.
// Слот позиции резервируется атомарно; проигравший гонку получает 409.
func AddContractLineHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input ContractLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	line := models.ContractAsset{
		ContractID: id,
		AssetID:    input.AssetID,
		SlotID:     input.SlotID,
		Price:      input.Price,
		Notes:      input.Notes,
	}
	if err := services.AddContractLine(config.DB, &line); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

// RemoveContractLineHandler удаляет позицию договора и освобождает её слот.
func RemoveContractLineHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	lineID, err := strconv.ParseUint(c.Param("lineId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор позиции"})
		return
	}
	if err := services.RemoveContractLine(config.DB, id, uint(lineID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Позиция удалена"})
}

// GetContractScheduleHandler возвращает расчётный график оплат по договору.
func GetContractScheduleHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	schedule, err := services.BuildSchedule(config.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}
