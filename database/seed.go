package database

import (
	"gorm.io/gorm"

	"github.com/xyzrestro/food-billing-app/models"
	"github.com/xyzrestro/food-billing-app/utils"
)

// sampleFoods is the starter menu loaded on first run.
var sampleFoods = []models.Food{
	{FoodName: "Pizza", Price: 250},
	{FoodName: "Burger", Price: 120},
	{FoodName: "Pasta", Price: 180},
	{FoodName: "Salad", Price: 100},
	{FoodName: "Sandwich", Price: 80},
	{FoodName: "French Fries", Price: 60},
	{FoodName: "Coke", Price: 40},
	{FoodName: "Ice Cream", Price: 50},
	{FoodName: "Chicken Curry", Price: 200},
	{FoodName: "Fried Rice", Price: 150},
	{FoodName: "Noodles", Price: 130},
	{FoodName: "Soup", Price: 90},
}

// SeedFoods inserts the sample menu when the foods table is empty.
// Idempotent: an already-populated catalog is left untouched.
func SeedFoods(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Food{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&sampleFoods).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d sample foods", len(sampleFoods))
	return nil
}
