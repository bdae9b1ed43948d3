package models

// Food is one catalog entry: a dish name and its unit price.
// food_name is a unique, case-insensitive key.
type Food struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	FoodName string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"food_name"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
