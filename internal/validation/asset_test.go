package validation

import (
	"testing"

	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/shopspring/decimal"
)

func TestValidateAssetRequiresPositiveRate(t *testing.T) {
	asset := models.Asset{
		Name:      "Экран на вокзале",
		AssetType: models.AssetScreen,
		Zone:      models.ZoneCenter,
		Location:  "пл. Вокзальная, 1",
		DailyRate: decimal.Zero,
	}
	if err := ValidateAsset(&asset); err == nil {
		t.Fatal("нулевая дневная ставка должна отклоняться")
	}

	asset.DailyRate = decimal.NewFromInt(-10)
	if err := ValidateAsset(&asset); err == nil {
		t.Fatal("отрицательная дневная ставка должна отклоняться")
	}

	asset.DailyRate = decimal.NewFromInt(300)
	if err := ValidateAsset(&asset); err != nil {
		t.Fatalf("корректная площадка не должна отклоняться: %v", err)
	}
}

func TestValidateAssetRejectsUnknownType(t *testing.T) {
	asset := models.Asset{
		Name:      "Дирижабль",
		AssetType: "blimp",
		Location:  "небо",
		DailyRate: decimal.NewFromInt(100),
	}
	if err := ValidateAsset(&asset); err == nil {
		t.Fatal("неизвестный тип площадки должен отклоняться")
	}
}
