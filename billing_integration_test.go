package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xyzrestro/food-billing-app/config"
	"github.com/xyzrestro/food-billing-app/database"
	"github.com/xyzrestro/food-billing-app/models"
	"github.com/xyzrestro/food-billing-app/router"
	"github.com/xyzrestro/food-billing-app/services"
	"github.com/xyzrestro/food-billing-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndBilling exercises the main flow:
// 1. Seeded catalog served at /api/foods
// 2. POST /api/send-bill persists a bill and returns its link
// 3. GET /bills/:id renders the stored bill
// 4. GET /bills/:id/pdf renders the printable form
func TestEndToEndBilling(t *testing.T) {
	db := setupIntegrationDB(t)
	cfg := &config.AppConfig{
		BaseURL:            "http://localhost:8080",
		RestaurantName:     "XYZ Restaurant",
		DefaultCountryCode: "+91",
	}
	r := router.SetupRouter(db, cfg, services.NewDispatcher(cfg))

	// 1. Catalog
	req, _ := http.NewRequest("GET", "/api/foods", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var foods []models.Food
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
	assert.Len(t, foods, 12)

	// 2. Send bill
	payload := map[string]interface{}{
		"customer": map[string]string{
			"name":   "Asha Rao",
			"email":  "asha@example.com",
			"mobile": "9876543210",
		},
		"order": []map[string]interface{}{
			{"name": "Pizza", "qty": 1, "price": 250},
			{"name": "Coke", "qty": 2, "price": 40},
		},
	}
	body, _ := json.Marshal(payload)
	req, _ = http.NewRequest("POST", "/api/send-bill", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	link := resp["link"].(string)
	id := strings.TrimPrefix(link, cfg.BaseURL+"/bills/")
	assert.NotEmpty(t, id)

	// 3. View bill
	req, _ = http.NewRequest("GET", "/bills/"+id, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pizza")
	assert.Contains(t, w.Body.String(), "₹330.00")

	// 4. PDF
	req, _ = http.NewRequest("GET", "/bills/"+id+"/pdf", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Food{}, &models.Bill{}, &models.BillItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := database.SeedFoods(db); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	return db
}
