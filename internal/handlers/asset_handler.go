package handlers

import (
	"net/http"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/internal/services"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AssetInput — входные данные площадки. Теги передаются списком
// идентификаторов и привязываются через таблицу связей.
type AssetInput struct {
	Name      string           `json:"name"`
	AssetType models.AssetType `json:"assetType"`
	Zone      models.AssetZone `json:"zone"`
	Location  string           `json:"location"`
	DailyRate decimal.Decimal  `json:"dailyRate"`
	IsActive  *bool            `json:"isActive"`
	Notes     string           `json:"notes"`
	TagIDs    []uint           `json:"tagIds"`
}

func (in *AssetInput) apply(asset *models.Asset) {
	asset.Name = in.Name
	asset.AssetType = in.AssetType
	asset.Zone = in.Zone
	asset.Location = in.Location
	asset.DailyRate = in.DailyRate
	asset.Notes = in.Notes
	if in.IsActive != nil {
		asset.IsActive = *in.IsActive
	}
}

// ListAssetsHandler возвращает страницу площадок с фильтрами по типу,
// зоне и активности.
func ListAssetsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Asset{})

	if assetType := c.Query("asset_type"); assetType != "" {
		query = query.Where("asset_type = ?", assetType)
	}
	if zone := c.Query("zone"); zone != "" {
		query = query.Where("zone = ?", zone)
	}
	if active := c.Query("is_active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR location LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось посчитать площадки"})
		return
	}

	var assets []models.Asset
	if err := query.Scopes(Paginate(c)).Preload("Tags").
		Order("name").Find(&assets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить площадки"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, assets, total))
}

// GetAssetHandler возвращает одну площадку с тегами.
func GetAssetHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var asset models.Asset
	if err := config.DB.Preload("Tags").First(&asset, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Площадка не найдена"})
		return
	}
	c.JSON(http.StatusOK, asset)
}

// CreateAssetHandler создаёт площадку и привязывает теги.
func CreateAssetHandler(c *gin.Context) {
	var input AssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	asset := models.Asset{IsActive: true}
	input.apply(&asset)

	if err := services.CreateAsset(config.DB, &asset); err != nil {
		respondError(c, err)
		return
	}
	if err := replaceAssetTags(&asset, input.TagIDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

// UpdateAssetHandler обновляет площадку и её теги.
func UpdateAssetHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var asset models.Asset
	if err := config.DB.First(&asset, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Площадка не найдена"})
		return
	}
	var input AssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}
	input.apply(&asset)

	if err := services.UpdateAsset(config.DB, &asset); err != nil {
		respondError(c, err)
		return
	}
	if input.TagIDs != nil {
		if err := replaceAssetTags(&asset, input.TagIDs); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, asset)
}

// DeleteAssetHandler удаляет площадку, не занятую договорами.
func DeleteAssetHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := services.DeleteAsset(config.DB, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Площадка удалена"})
}

// replaceAssetTags заменяет набор тегов площадки на переданный.
func replaceAssetTags(asset *models.Asset, tagIDs []uint) error {
	if tagIDs == nil {
		return nil
	}
	var tags []models.Tag
	if len(tagIDs) > 0 {
		if err := config.DB.Find(&tags, tagIDs).Error; err != nil {
			return err
		}
	}
	if err := config.DB.Model(asset).Association("Tags").Replace(&tags); err != nil {
		return err
	}
	asset.Tags = tags
	return nil
}
