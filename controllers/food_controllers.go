package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xyzrestro/food-billing-app/services"
)

type FoodController struct {
	Catalog *services.CatalogService
}

func NewFoodController(db *gorm.DB) *FoodController {
	return &FoodController{Catalog: services.NewCatalogService(db)}
}

// GetAllFoods -> GET /api/foods[?startsWith=prefix]
// Responds with a bare array of {food_name, price}. Never errors to the
// caller: a store failure degrades to the built-in fallback menu.
func (fc *FoodController) GetAllFoods(c *gin.Context) {
	prefix := c.Query("startsWith")
	c.JSON(http.StatusOK, fc.Catalog.FetchMenu(prefix))
}
