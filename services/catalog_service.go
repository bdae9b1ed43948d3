package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/xyzrestro/food-billing-app/models"
	"github.com/xyzrestro/food-billing-app/utils"
)

// fallbackFoods keeps the menu usable when the catalog store is unreachable.
var fallbackFoods = []models.Food{
	{FoodName: "Tea", Price: 20},
	{FoodName: "Coffee", Price: 40},
	{FoodName: "Samosa", Price: 25},
	{FoodName: "Maggi", Price: 60},
	{FoodName: "Fried Rice", Price: 120},
}

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// FetchMenu returns all foods sorted by name, or only those whose name
// starts with the given prefix (case-insensitive). A store failure degrades
// to the built-in fallback set and is never surfaced to the caller.
func (cs *CatalogService) FetchMenu(prefix string) []models.Food {
	query := cs.DB.Order("food_name")
	if prefix != "" {
		query = query.Where("LOWER(food_name) LIKE ?", strings.ToLower(prefix)+"%")
	}

	var foods []models.Food
	if err := query.Find(&foods).Error; err != nil {
		utils.ErrorLogger.Printf("catalog fetch failed, serving fallback menu: %v", err)
		return FallbackMenu(prefix)
	}
	if foods == nil {
		foods = []models.Food{}
	}
	return foods
}

// PriceOf resolves a unit price by case-insensitive name. Unknown names
// resolve to 0 so an order can still be built speculatively.
func (cs *CatalogService) PriceOf(name string) float64 {
	var food models.Food
	err := cs.DB.Where("LOWER(food_name) = ?", strings.ToLower(strings.TrimSpace(name))).First(&food).Error
	if err == nil {
		return food.Price
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ErrorLogger.Printf("catalog lookup for %q failed: %v", name, err)
		// Store unreachable: fall back to the built-in set.
		for _, f := range fallbackFoods {
			if strings.EqualFold(f.FoodName, name) {
				return f.Price
			}
		}
	}
	return 0
}

// Knows reports whether the name resolves in the catalog. Used by the bill
// endpoint to report unresolved names back to the client.
func (cs *CatalogService) Knows(name string) bool {
	var count int64
	err := cs.DB.Model(&models.Food{}).
		Where("LOWER(food_name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Count(&count).Error
	if err != nil {
		// Can't tell: do not flag the item as unknown on a store failure.
		return true
	}
	return count > 0
}

// FallbackMenu returns the built-in item set, optionally prefix-filtered.
func FallbackMenu(prefix string) []models.Food {
	if prefix == "" {
		out := make([]models.Food, len(fallbackFoods))
		copy(out, fallbackFoods)
		return out
	}
	out := make([]models.Food, 0, len(fallbackFoods))
	for _, f := range fallbackFoods {
		if strings.HasPrefix(strings.ToLower(f.FoodName), strings.ToLower(prefix)) {
			out = append(out, f)
		}
	}
	return out
}
