package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xyzrestro/food-billing-app/controllers"
	"github.com/xyzrestro/food-billing-app/database"
	"github.com/xyzrestro/food-billing-app/models"
	"github.com/xyzrestro/food-billing-app/utils"
)

func setupTestDBForFoods(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Food{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := database.SeedFoods(db); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	return db
}

func setupFoodRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	foodCtrl := controllers.NewFoodController(db)
	router.GET("/api/foods", foodCtrl.GetAllFoods)
	return router
}

func TestGetAllFoods(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForFoods(t)
	router := setupFoodRouter(db)

	req, _ := http.NewRequest("GET", "/api/foods", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var foods []models.Food
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
	assert.Len(t, foods, 12)
	// Sorted by name; seeding twice must not duplicate.
	assert.Equal(t, "Burger", foods[0].FoodName)
	assert.NoError(t, database.SeedFoods(db))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
	assert.Len(t, foods, 12)
}

func TestGetFoodsStartsWith(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForFoods(t)
	router := setupFoodRouter(db)

	req, _ := http.NewRequest("GET", "/api/foods?startsWith=pa", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var foods []models.Food
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
	assert.Len(t, foods, 1)
	assert.Equal(t, "Pasta", foods[0].FoodName)
}

func TestGetFoodsFallbackOnStoreFailure(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForFoods(t)
	router := setupFoodRouter(db)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Close())

	req, _ := http.NewRequest("GET", "/api/foods", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	// Never an error to the caller: the built-in menu keeps the UI usable.
	assert.Equal(t, http.StatusOK, w.Code)

	var foods []models.Food
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
	assert.Len(t, foods, 5)
	assert.Equal(t, "Tea", foods[0].FoodName)
}
